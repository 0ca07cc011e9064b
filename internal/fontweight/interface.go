package fontweight

import "context"

// Extractor reads weight metadata from font files and splits them by weight.
type Extractor interface {
	// Inspect returns one Face per font in the file (several for a collection).
	Inspect(ctx context.Context, path string) ([]Face, error)
	// Extract writes one file per weight into outDir and returns the written paths.
	// An empty outDir means a directory next to the source font.
	Extract(ctx context.Context, path, outDir string) ([]string, error)
}
