package transcript

import "github.com/nguyentantai21042004/lyricflow/internal/subtitle"

// Writer renders parsed entries as a plain reading transcript.
type Writer interface {
	Write(title string, entries []subtitle.Entry, outputPath string) error
}
