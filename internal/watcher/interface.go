package watcher

import "context"

// Watcher monitors a directory and hands settled files to a handler.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles one created or rewritten file.
type EventHandler func(ctx context.Context, filePath string) error
