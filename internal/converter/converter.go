package converter

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lyricflow/internal/subtitle"
	"github.com/nguyentantai21042004/lyricflow/internal/timecode"
)

func (c *implConverter) Direction() Direction {
	return c.direction
}

// Convert runs read -> parse -> render -> write for one file. Malformed lines
// are logged and skipped; only unreadable input, unwritable output or an empty
// parse fail the file.
func (c *implConverter) Convert(ctx context.Context, src, dst string) (int, error) {
	data, err := os.ReadFile(src)
	if err != nil {
		c.logger.Error(ctx, "Failed to read %s: %v", src, err)
		return 0, ioError(src, err)
	}

	text, err := subtitle.Decode(data)
	if err != nil {
		c.logger.Error(ctx, "Failed to decode %s: %v", src, err)
		return 0, ioError(src, err)
	}

	res := c.parse(text)
	for _, w := range res.Warnings {
		c.logger.Warn(ctx, "%s: skipped %s", filepath.Base(src), w)
	}

	if len(res.Entries) == 0 {
		c.logger.Warn(ctx, "No valid %s entries found in %s", c.direction.From, src)
		return 0, &FileError{Path: src, Kind: KindEmpty, Err: ErrEmptyResult}
	}

	output := c.render(ctx, src, res)

	if dir := filepath.Dir(dst); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			c.logger.Error(ctx, "Failed to create output directory %s: %v", dir, err)
			return 0, ioError(dst, err)
		}
	}
	if err := os.WriteFile(dst, []byte(output), 0644); err != nil {
		c.logger.Error(ctx, "Failed to write %s: %v", dst, err)
		return 0, ioError(dst, err)
	}

	if c.transcript != nil {
		c.writeTranscript(ctx, src, res.Entries)
	}

	c.logger.Info(ctx, "Converted: %s -> %s (%d entries)", filepath.Base(src), filepath.Base(dst), len(res.Entries))
	return len(res.Entries), nil
}

func (c *implConverter) parse(text string) subtitle.Result {
	if c.direction.From == subtitle.FormatSRT {
		return subtitle.ParseSRT(text)
	}
	return subtitle.ParseLRC(text)
}

func (c *implConverter) render(ctx context.Context, src string, res subtitle.Result) string {
	if c.direction.To == subtitle.FormatSRT {
		entries := subtitle.SynthesizeEnds(res.Entries, c.timing)
		for _, e := range entries {
			if e.End.OverflowsExpanded() {
				c.logger.Warn(ctx, "%s: line %d: time %s exceeds 99 hours, hour field widened",
					filepath.Base(src), e.Line, e.End.Expanded())
			}
		}
		return subtitle.RenderSRT(entries)
	}

	for _, e := range res.Entries {
		if e.Start.OverflowsCompact() {
			c.logger.Warn(ctx, "%s: line %d: time %s exceeds %d minutes, minute field widened",
				filepath.Base(src), e.Line, e.Start.Compact(), timecode.MaxCompactMinutes)
		}
	}

	var headers []string
	if c.languageHeader {
		tag := subtitle.DetectLanguage(res.Entries)
		if h := subtitle.LanguageHeader(tag); h != "" {
			c.logger.Debug(ctx, "%s: detected language %s", filepath.Base(src), tag)
			headers = append(headers, h)
		}
	}
	return subtitle.RenderLRC(res.Entries, headers...)
}

// writeTranscript failures are logged but never fail the conversion.
func (c *implConverter) writeTranscript(ctx context.Context, src string, entries []subtitle.Entry) {
	stem := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	out := filepath.Join(c.transcriptDir, stem+".docx")

	if err := c.transcript.Write(stem, entries, out); err != nil {
		c.logger.Warn(ctx, "Failed to write transcript %s: %v", out, err)
		return
	}
	c.logger.Debug(ctx, "Transcript written: %s", out)
}
