// Command srt2lrc converts SRT subtitles to LRC lyric files.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/lyricflow/internal/cli"
	"github.com/nguyentantai21042004/lyricflow/internal/converter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	streams := cli.Streams{Stdout: os.Stdout, Stderr: os.Stderr}
	code := cli.RunConvert(ctx, "srt2lrc", converter.SRTToLRC, os.Args[1:], streams)
	stop()
	os.Exit(code)
}
