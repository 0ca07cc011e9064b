package watcher

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lyricflow/internal/logger"
)

// DefaultSettle is how long a file must stay quiet before it is handled.
const DefaultSettle = 500 * time.Millisecond

// New watches inputDir for files ending in ext. Files are handled one at a
// time, once no event has arrived for them for settle.
func New(inputDir, ext string, handler EventHandler, log logger.Logger, settle time.Duration) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if settle <= 0 {
		settle = DefaultSettle
	}

	return &implWatcher{
		inputDir: inputDir,
		ext:      strings.ToLower(ext),
		handler:  handler,
		logger:   log,
		watcher:  watcher,
		settle:   settle,
		pending:  make(map[string]time.Time),
	}, nil
}
