package transcript

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/nguyentantai21042004/lyricflow/internal/subtitle"
)

const (
	fontName  = "Times New Roman"
	fontSize  = 13
	titleSize = 16
)

// Write drops timestamps and keeps one paragraph per caption. Consecutive
// repeats (chorus lines split across timestamps) collapse into one.
func (w *implWriter) Write(title string, entries []subtitle.Entry, outputPath string) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries to write")
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	w.addRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	for _, text := range Lines(entries) {
		w.addRun(doc.AddParagraph(""), text, false, w.fontSize)
	}

	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create transcript dir: %w", err)
		}
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

// Lines returns the transcript paragraphs for entries.
func Lines(entries []subtitle.Entry) []string {
	lines := make([]string, 0, len(entries))
	prev := ""
	for _, e := range entries {
		text := strings.TrimSpace(e.Text)
		if text == "" || text == prev {
			continue
		}
		lines = append(lines, text)
		prev = text
	}
	return lines
}

func (w *implWriter) addRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(w.fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
