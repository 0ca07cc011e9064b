package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lyricflow/internal/fontweight"
	"github.com/nguyentantai21042004/lyricflow/pkg/executor"
)

// RunFontWeight prints the weight of each font, or with -e splits fonts into
// one file per weight.
func RunFontWeight(ctx context.Context, args []string, s Streams) int {
	return runFontWeight(ctx, args, s, executor.New())
}

func runFontWeight(ctx context.Context, args []string, s Streams, exec executor.Executor) int {
	fs := flag.NewFlagSet("fontweight", flag.ContinueOnError)
	fs.SetOutput(s.Stderr)
	configPath := fs.String("config", "", "path to config.yaml")
	recursive := fs.Bool("r", false, "search directories recursively")
	extract := fs.Bool("e", false, "extract fonts by weight")
	outDir := fs.String("o", "", "output directory for -e")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(s.Stderr, "Usage: fontweight [flags] path...")
		fs.PrintDefaults()
	}

	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return ExitFailure
	}

	cfg, err := loadConfig(*configPath, *verbose, s)
	if err != nil {
		return ExitFailure
	}
	log := newLogger(cfg, s)

	files, missing := fontweight.Collect(fs.Args(), *recursive, cfg.Font.Extensions)
	for _, p := range missing {
		log.Warn(ctx, "Path does not exist: %s", p)
	}
	if len(files) == 0 {
		log.Warn(ctx, "No font files found")
		return ExitFailure
	}
	log.Info(ctx, "Found %d font files", len(files))

	ex := fontweight.New(exec, log,
		fontweight.WithFontTools(cfg.Font.FontToolsBinary),
		fontweight.WithOutputDirName(cfg.Font.OutputDir),
	)

	failed := 0
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		if *extract {
			if _, err := ex.Extract(ctx, path, *outDir); err != nil {
				if errors.Is(err, fontweight.ErrUnsupportedFormat) {
					log.Warn(ctx, "Skipping %s: %v", path, err)
					continue
				}
				log.Error(ctx, "Failed to extract %s: %v", path, err)
				failed++
			}
			continue
		}

		faces, err := ex.Inspect(ctx, path)
		if err != nil {
			log.Warn(ctx, "Skipping %s: %v", path, err)
			if !errors.Is(err, fontweight.ErrUnsupportedFormat) {
				failed++
			}
			continue
		}
		for _, face := range faces {
			fmt.Fprintln(s.Stdout, describe(face))
		}
	}

	if failed > 0 {
		log.Warn(ctx, "%d of %d files failed", failed, len(files))
		return ExitFailure
	}
	return ExitOK
}

func describe(face fontweight.Face) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", filepath.Base(face.Path))
	if face.Index > 0 {
		fmt.Fprintf(&b, " #%d", face.Index)
	}
	fmt.Fprintf(&b, ": %s %s", face.Family, face.Subfamily)

	if axis, ok := face.WeightAxis(); ok {
		fmt.Fprintf(&b, " (variable: wght %g-%g, %d instances)", axis.Min, axis.Max, len(face.Instances))
		for _, inst := range face.Instances {
			fmt.Fprintf(&b, "\n    %s: wght=%g", inst.Name, inst.Coordinates["wght"])
		}
		return b.String()
	}

	fmt.Fprintf(&b, " (weight: %s", face.WeightLabel())
	if face.Weight != 0 {
		fmt.Fprintf(&b, ", %d", face.Weight)
	}
	b.WriteString(")")
	return b.String()
}
