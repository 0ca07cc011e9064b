package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lyricflow/internal/batch"
	"github.com/nguyentantai21042004/lyricflow/internal/config"
	"github.com/nguyentantai21042004/lyricflow/internal/converter"
	"github.com/nguyentantai21042004/lyricflow/internal/logger"
	"github.com/nguyentantai21042004/lyricflow/internal/subtitle"
	"github.com/nguyentantai21042004/lyricflow/internal/transcript"
	"github.com/nguyentantai21042004/lyricflow/internal/watcher"
)

// target is a resolved input/output pair.
type target struct {
	input  string
	output string
	isDir  bool
}

// RunConvert implements lrc2srt and srt2lrc. Cancelling ctx stops a batch
// between files and ends watch mode.
//
//	name [flags]                 convert the current directory
//	name [flags] input           convert a file or directory to the default location
//	name [flags] input output    convert to an explicit location
func RunConvert(ctx context.Context, name string, dir converter.Direction, args []string, s Streams) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(s.Stderr)
	configPath := fs.String("config", "", "path to config.yaml")
	flat := fs.Bool("flat", false, "write all outputs directly into the output directory")
	watch := fs.Bool("watch", false, "keep converting new files in the input directory")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintf(s.Stderr, "Usage: %s [flags] [input] [output]\n", name)
		fs.PrintDefaults()
	}

	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() > 2 {
		fs.Usage()
		return ExitFailure
	}

	cfg, err := loadConfig(*configPath, *verbose, s)
	if err != nil {
		return ExitFailure
	}
	log := newLogger(cfg, s)

	t, err := resolveTarget(fs.Args(), dir, cfg)
	if err != nil {
		log.Error(ctx, "%v", err)
		return ExitFailure
	}

	conv := newConverter(dir, cfg, log)

	if !t.isDir {
		if *watch {
			log.Warn(ctx, "-watch needs a directory input, converting once")
		}
		if _, err := conv.Convert(ctx, t.input, t.output); err != nil {
			log.Error(ctx, "Conversion failed: %v", err)
			return ExitFailure
		}
		return ExitOK
	}

	preserve := !(*flat || cfg.Convert.Flatten)
	log.Info(ctx, "%s: %s -> %s", dir, t.input, t.output)

	summary, err := batch.New(conv, log).ProcessTree(ctx, t.input, t.output, preserve)
	if *watch {
		if err != nil && !errors.Is(err, batch.ErrNoFiles) {
			log.Error(ctx, "Initial conversion failed: %v", err)
			return ExitFailure
		}
		return runWatch(ctx, conv, t, preserve, log)
	}

	if err != nil {
		log.Error(ctx, "Conversion failed: %v", err)
		return ExitFailure
	}
	for _, job := range summary.Jobs {
		if job.Outcome == batch.Failed {
			log.Error(ctx, "  failed: %s: %v", job.Source, job.Err)
		}
	}
	if !summary.OK() {
		return ExitFailure
	}
	return ExitOK
}

// resolveTarget applies the zero, one and two argument forms.
func resolveTarget(args []string, dir converter.Direction, cfg *config.Config) (target, error) {
	outDirName := cfg.Convert.SRTOutputDir
	if dir.To == subtitle.FormatLRC {
		outDirName = cfg.Convert.LRCOutputDir
	}

	if len(args) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return target{}, fmt.Errorf("get working directory: %w", err)
		}
		return target{input: cwd, output: filepath.Join(cwd, outDirName), isDir: true}, nil
	}

	input := args[0]
	info, err := os.Stat(input)
	if err != nil {
		return target{}, fmt.Errorf("invalid input path %s: %w", input, err)
	}

	if len(args) == 2 {
		return target{input: input, output: args[1], isDir: info.IsDir()}, nil
	}

	if info.IsDir() {
		return target{input: input, output: filepath.Join(input, outDirName), isDir: true}, nil
	}
	output := strings.TrimSuffix(input, filepath.Ext(input)) + dir.To.Ext()
	return target{input: input, output: output}, nil
}

func newConverter(dir converter.Direction, cfg *config.Config, log logger.Logger) converter.Converter {
	opts := []converter.Option{
		converter.WithTiming(subtitle.Timing{
			DefaultDuration: cfg.Convert.DefaultDurationMs,
			MinDuration:     cfg.Convert.MinDurationMs,
		}),
		converter.WithLanguageHeader(cfg.Convert.LanguageHeader),
	}
	if cfg.Transcript.Enabled {
		opts = append(opts, converter.WithTranscript(transcript.New(), cfg.Transcript.Dir))
	}
	return converter.New(dir, log, opts...)
}

// runWatch converts files dropped into the top level of the input directory
// until ctx is cancelled.
func runWatch(ctx context.Context, conv converter.Converter, t target, preserve bool, log logger.Logger) int {
	handler := func(ctx context.Context, path string) error {
		dst := batch.OutputPath(t.input, t.output, path, conv.Direction().To.Ext(), preserve)
		_, err := conv.Convert(ctx, path, dst)
		return err
	}

	w, err := watcher.New(t.input, conv.Direction().From.Ext(), handler, log, watcher.DefaultSettle)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return ExitFailure
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return ExitFailure
	}
	log.Info(ctx, "Watch stopped")
	return ExitOK
}
