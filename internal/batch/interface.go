package batch

import "context"

// Walker drives a converter over every matching file below a directory.
type Walker interface {
	ProcessTree(ctx context.Context, inputRoot, outputRoot string, preserveStructure bool) (Summary, error)
}
