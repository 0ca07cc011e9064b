package converter

import (
	"context"

	"github.com/nguyentantai21042004/lyricflow/internal/subtitle"
)

// Converter converts one subtitle file into the other format.
type Converter interface {
	// Convert reads src, writes dst and returns the number of entries written.
	Convert(ctx context.Context, src, dst string) (int, error)
	Direction() Direction
}

// Direction pairs a source and a target format.
type Direction struct {
	From subtitle.Format
	To   subtitle.Format
}

var (
	LRCToSRT = Direction{From: subtitle.FormatLRC, To: subtitle.FormatSRT}
	SRTToLRC = Direction{From: subtitle.FormatSRT, To: subtitle.FormatLRC}
)

func (d Direction) String() string {
	return string(d.From) + "->" + string(d.To)
}
