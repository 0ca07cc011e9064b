package batch

import (
	"github.com/nguyentantai21042004/lyricflow/internal/converter"
	"github.com/nguyentantai21042004/lyricflow/internal/logger"
)

type implWalker struct {
	converter converter.Converter
	logger    logger.Logger
}

// New creates a Walker around conv. The source extension and the output
// extension come from conv.Direction().
func New(conv converter.Converter, log logger.Logger) Walker {
	return &implWalker{
		converter: conv,
		logger:    log,
	}
}
