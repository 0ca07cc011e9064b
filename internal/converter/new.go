package converter

import (
	"github.com/nguyentantai21042004/lyricflow/internal/logger"
	"github.com/nguyentantai21042004/lyricflow/internal/subtitle"
	"github.com/nguyentantai21042004/lyricflow/internal/transcript"
)

type implConverter struct {
	direction      Direction
	timing         subtitle.Timing
	languageHeader bool
	transcript     transcript.Writer
	transcriptDir  string
	logger         logger.Logger
}

// Option configures a Converter.
type Option func(*implConverter)

// WithTiming overrides end-time synthesis for LRC->SRT.
func WithTiming(t subtitle.Timing) Option {
	return func(c *implConverter) {
		c.timing = t
	}
}

// WithLanguageHeader makes SRT->LRC output start with a detected [la:xx] tag.
func WithLanguageHeader(enabled bool) Option {
	return func(c *implConverter) {
		c.languageHeader = enabled
	}
}

// WithTranscript additionally writes a DOCX transcript of every converted
// file into dir.
func WithTranscript(w transcript.Writer, dir string) Option {
	return func(c *implConverter) {
		c.transcript = w
		c.transcriptDir = dir
	}
}

// New creates a Converter for the given direction.
func New(direction Direction, log logger.Logger, opts ...Option) Converter {
	c := &implConverter{
		direction: direction,
		timing:    subtitle.DefaultTiming(),
		logger:    log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
