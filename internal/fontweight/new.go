package fontweight

import (
	"github.com/nguyentantai21042004/lyricflow/internal/logger"
	"github.com/nguyentantai21042004/lyricflow/pkg/executor"
)

type implExtractor struct {
	exec       executor.Executor
	fontTools  string
	defaultDir string
	logger     logger.Logger
}

// Option configures an Extractor.
type Option func(*implExtractor)

// WithFontTools sets the fonttools binary used to instance variable fonts.
func WithFontTools(binary string) Option {
	return func(e *implExtractor) {
		e.fontTools = binary
	}
}

// WithOutputDirName sets the directory created next to a font when Extract
// is called without an explicit output directory.
func WithOutputDirName(name string) Option {
	return func(e *implExtractor) {
		e.defaultDir = name
	}
}

// New creates an Extractor.
func New(exec executor.Executor, log logger.Logger, opts ...Option) Extractor {
	e := &implExtractor{
		exec:       exec,
		fontTools:  "fonttools",
		defaultDir: "FontsOutput",
		logger:     log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
