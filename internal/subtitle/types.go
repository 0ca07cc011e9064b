package subtitle

import (
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/lyricflow/internal/timecode"
)

var (
	// ErrMalformedEntry marks a structurally incomplete block.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrUnrecognizedLine marks an LRC line that is neither an entry nor a header.
	ErrUnrecognizedLine = errors.New("unrecognized line")
)

// Format is a line-oriented subtitle container.
type Format string

const (
	FormatLRC Format = "LRC"
	FormatSRT Format = "SRT"
)

// Ext returns the file extension for the format, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatLRC:
		return ".lrc"
	case FormatSRT:
		return ".srt"
	}
	return ""
}

// Entry is one timed unit of text.
type Entry struct {
	Start timecode.TimeCode
	End   *timecode.TimeCode // nil when the source carries no end time
	Text  string
	Line  int // 1-based source line the entry started on
}

// Warning describes one skipped line or block.
type Warning struct {
	Line int
	Text string
	Err  error
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %v: %s", w.Line, w.Err, w.Text)
}

// Result is the outcome of parsing one file.
type Result struct {
	Entries  []Entry
	Headers  []string // LRC metadata lines such as [ar:Artist]
	Warnings []Warning
}

// Timing controls end-time synthesis for entries that have none.
type Timing struct {
	DefaultDuration int64 // ms, used for the last entry
	MinDuration     int64 // ms, floor for derived durations
}

// DefaultTiming is 3s for the last entry and a 500ms floor.
func DefaultTiming() Timing {
	return Timing{
		DefaultDuration: 3000,
		MinDuration:     500,
	}
}
