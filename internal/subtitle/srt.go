package subtitle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/lyricflow/internal/timecode"
)

const arrow = " --> "

type block struct {
	line  int
	lines []string
}

// ParseSRT parses SRT text. Blocks are separated by blank lines; caption lines
// are joined with a single space.
func ParseSRT(text string) Result {
	var res Result

	for _, b := range splitBlocks(splitLines(text)) {
		if len(b.lines) < 3 {
			res.Warnings = append(res.Warnings, Warning{
				Line: b.line,
				Text: strings.Join(b.lines, " | "),
				Err:  fmt.Errorf("%w: %d lines, need index, time and text", ErrMalformedEntry, len(b.lines)),
			})
			continue
		}

		timeLine := b.lines[1]
		startText, endText, found := strings.Cut(timeLine, arrow)
		if !found {
			res.Warnings = append(res.Warnings, Warning{
				Line: b.line + 1,
				Text: timeLine,
				Err:  fmt.Errorf("%w: missing %q", ErrMalformedEntry, strings.TrimSpace(arrow)),
			})
			continue
		}

		start, err := timecode.ParseExpanded(strings.TrimSpace(startText))
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Line: b.line + 1, Text: timeLine, Err: err})
			continue
		}

		entry := Entry{
			Start: start,
			Text:  strings.Join(b.lines[2:], " "),
			Line:  b.line,
		}

		// Anything after the end stamp (position hints) is ignored.
		if fields := strings.Fields(endText); len(fields) > 0 {
			end, err := timecode.ParseExpanded(fields[0])
			if err != nil {
				res.Warnings = append(res.Warnings, Warning{Line: b.line + 1, Text: timeLine, Err: err})
			} else {
				entry.End = &end
			}
		}

		res.Entries = append(res.Entries, entry)
	}

	return res
}

// RenderSRT numbers entries 1..N in order. Entries without an end time reuse
// their start; call SynthesizeEnds first to avoid that.
func RenderSRT(entries []Entry) string {
	blocks := make([]string, 0, len(entries))
	for i, e := range entries {
		end := e.Start
		if e.End != nil {
			end = *e.End
		}

		var sb strings.Builder
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("\n")
		sb.WriteString(e.Start.Expanded())
		sb.WriteString(arrow)
		sb.WriteString(end.Expanded())
		sb.WriteString("\n")
		sb.WriteString(e.Text)
		sb.WriteString("\n")
		blocks = append(blocks, sb.String())
	}
	return strings.Join(blocks, "\n")
}

func splitBlocks(lines []string) []block {
	var (
		blocks  []block
		current *block
	)

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			if current != nil {
				blocks = append(blocks, *current)
				current = nil
			}
			continue
		}
		if current == nil {
			current = &block{line: i + 1}
		}
		current.lines = append(current.lines, line)
	}
	if current != nil {
		blocks = append(blocks, *current)
	}

	return blocks
}
