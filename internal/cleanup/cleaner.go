package cleanup

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/nguyentantai21042004/lyricflow/internal/subtitle"
)

var timestampLinePattern = regexp.MustCompile(`^(\[\d{2}:\d{2}(?:.\d{2})?\])(.*)$`)

// Process cleans one file's text. Header lines pass through trimmed; blank
// lines and lyric lines emptied by the rules are removed.
func (c *implCleaner) Process(text string) (string, FileStats) {
	stats := FileStats{Replacements: make(map[string]int)}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	var sb strings.Builder
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			stats.BlankRemoved++
			stats.Modified = true
			continue
		}

		m := timestampLinePattern.FindStringSubmatch(line)
		if m == nil {
			sb.WriteString(line)
			sb.WriteString("\n")
			continue
		}

		stamp, lyric := m[1], strings.TrimSpace(m[2])
		for _, r := range c.rules {
			if n := strings.Count(lyric, r.From); n > 0 {
				stats.Replacements[r.From] += n
				lyric = strings.ReplaceAll(lyric, r.From, r.To)
				stats.Modified = true
			}
		}

		if lyric == "" {
			stats.EmptyRemoved++
			stats.Modified = true
			continue
		}

		sb.WriteString(stamp)
		sb.WriteString(lyric)
		sb.WriteString("\n")
	}

	return sb.String(), stats
}

// ProcessFile rewrites path in place when Process changed anything.
func (c *implCleaner) ProcessFile(ctx context.Context, path string) (FileStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FileStats{}, fmt.Errorf("read %s: %w", path, err)
	}

	text, err := subtitle.Decode(data)
	if err != nil {
		return FileStats{}, fmt.Errorf("decode %s: %w", path, err)
	}

	out, stats := c.Process(text)
	if !stats.Modified {
		return stats, nil
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(out), mode); err != nil {
		return stats, fmt.Errorf("write %s: %w", path, err)
	}

	c.logger.Debug(ctx, "Rewrote %s", path)
	return stats, nil
}

// ProcessTree cleans every .lrc file below root and logs the replacement report.
func (c *implCleaner) ProcessTree(ctx context.Context, root string) (TreeStats, error) {
	stats := TreeStats{Replacements: make(map[string]int)}

	c.logger.Info(ctx, "Processing directory: %s", root)

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			c.logger.Warn(ctx, "Skipping unreadable path %s: %v", path, err)
			stats.Errors++
			return nil
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), subtitle.FormatLRC.Ext()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk %s: %w", root, err)
	}
	sort.Strings(files)

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		stats.Total++
		fileStats, err := c.ProcessFile(ctx, path)
		if err != nil {
			c.logger.Error(ctx, "Failed to process %s: %v", path, err)
			stats.Errors++
			continue
		}
		stats.add(fileStats)
	}

	c.report(ctx, stats)
	return stats, nil
}

func (c *implCleaner) report(ctx context.Context, stats TreeStats) {
	c.logger.Info(ctx, "Replacement statistics:")
	for _, rc := range stats.SortedReplacements() {
		c.logger.Info(ctx, "  '%s' replaced %d times", rc.Key, rc.Count)
	}

	if stats.EmptyRemoved > 0 {
		c.logger.Info(ctx, "Removed %d empty lyric lines", stats.EmptyRemoved)
	}

	c.logger.Info(ctx, "Done! Total: %d files, modified: %d files, errors: %d files",
		stats.Total, stats.Modified, stats.Errors)
}
