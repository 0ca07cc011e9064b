package cleanup

import "github.com/nguyentantai21042004/lyricflow/internal/logger"

type implCleaner struct {
	rules  []Rule
	logger logger.Logger
}

// New creates a Cleaner. Rules are applied in slice order, so an earlier
// rule's output is visible to later rules.
func New(rules []Rule, log logger.Logger) Cleaner {
	return &implCleaner{
		rules:  append([]Rule(nil), rules...),
		logger: log,
	}
}
