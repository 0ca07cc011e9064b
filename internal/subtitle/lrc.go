package subtitle

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nguyentantai21042004/lyricflow/internal/timecode"
)

var lrcLinePattern = regexp.MustCompile(`^\[(\d{1,3}:\d{2}\.\d{2})\](.*)$`)

// ParseLRC parses LRC text. Header lines are collected, unknown lines become
// warnings and entries with empty text are dropped.
func ParseLRC(text string) Result {
	var res Result

	for i, raw := range splitLines(text) {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		m := lrcLinePattern.FindStringSubmatch(line)
		if m == nil {
			if strings.HasPrefix(line, "[") && strings.Contains(line, ":") {
				res.Headers = append(res.Headers, line)
				continue
			}
			res.Warnings = append(res.Warnings, Warning{Line: lineNum, Text: line, Err: ErrUnrecognizedLine})
			continue
		}

		start, err := timecode.ParseCompact(m[1])
		if err != nil {
			res.Warnings = append(res.Warnings, Warning{Line: lineNum, Text: line, Err: err})
			continue
		}

		body := strings.TrimSpace(m[2])
		if body == "" {
			continue
		}

		res.Entries = append(res.Entries, Entry{Start: start, Text: body, Line: lineNum})
	}

	return res
}

// RenderLRC renders entries as [MM:SS.CC]text lines. Header lines come first.
// End times are not representable and are dropped.
func RenderLRC(entries []Entry, headers ...string) string {
	lines := make([]string, 0, len(headers)+len(entries))
	lines = append(lines, headers...)
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("[%s]%s", e.Start.Compact(), e.Text))
	}
	return strings.Join(lines, "\n")
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}
