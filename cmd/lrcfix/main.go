// Command lrcfix applies a replacement table to the lyric text of every .lrc
// file under a directory.
package main

import (
	"context"
	"os"

	"github.com/nguyentantai21042004/lyricflow/internal/cli"
)

func main() {
	os.Exit(cli.RunLRCFix(context.Background(), os.Args[1:], cli.Streams{Stdout: os.Stdout, Stderr: os.Stderr}))
}
