package cleanup

import "context"

// Cleaner applies an ordered replacement table to timestamped lyric lines.
type Cleaner interface {
	Process(text string) (string, FileStats)
	ProcessFile(ctx context.Context, path string) (FileStats, error)
	ProcessTree(ctx context.Context, root string) (TreeStats, error)
}
