// Package cli holds the flag parsing and wiring shared by the binaries under cmd/.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/nguyentantai21042004/lyricflow/internal/config"
	"github.com/nguyentantai21042004/lyricflow/internal/logger"
)

// Exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// Streams are the process outputs a command writes to.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// parseFlags parses args into fs. ok is false when the command should exit
// with code.
func parseFlags(fs *flag.FlagSet, args []string) (code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK, false
		}
		return ExitFailure, false
	}
	return ExitOK, true
}

func loadConfig(path string, verbose bool, s Streams) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		fmt.Fprintf(s.Stderr, "Failed to load config: %v\n", err)
		return nil, err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

func newLogger(cfg *config.Config, s Streams) logger.Logger {
	return logger.NewWithWriter(cfg.Logging.Level, s.Stdout)
}
