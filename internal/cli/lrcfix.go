package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/lyricflow/internal/cleanup"
	"github.com/nguyentantai21042004/lyricflow/internal/config"
	"github.com/nguyentantai21042004/lyricflow/internal/logger"
)

// RunLRCFix applies the cleanup table to every .lrc file under a directory,
// the current one by default.
func RunLRCFix(ctx context.Context, args []string, s Streams) int {
	fs := flag.NewFlagSet("lrcfix", flag.ContinueOnError)
	fs.SetOutput(s.Stderr)
	configPath := fs.String("config", "", "path to config.yaml")
	rulesPath := fs.String("rules", "", "YAML file with an ordered list of {from, to} replacements")
	noLogFile := fs.Bool("nolog", false, "do not write a run log under the log directory")
	verbose := fs.Bool("v", false, "debug logging")
	fs.Usage = func() {
		fmt.Fprintln(s.Stderr, "Usage: lrcfix [flags] [dir]")
		fs.PrintDefaults()
	}

	if code, ok := parseFlags(fs, args); !ok {
		return code
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return ExitFailure
	}

	cfg, err := loadConfig(*configPath, *verbose, s)
	if err != nil {
		return ExitFailure
	}
	if *rulesPath != "" {
		cfg.Cleanup.RulesFile = *rulesPath
	}

	log := newLogger(cfg, s)
	if !*noLogFile {
		fileLog, closer, err := logger.NewWithFile(cfg.Logging.Level, cfg.Cleanup.LogDir, "lrc_process", s.Stdout)
		if err != nil {
			log.Warn(ctx, "Run log disabled: %v", err)
		} else {
			defer closer.Close()
			log = fileLog
		}
	}

	root := "."
	if fs.NArg() == 1 {
		root = fs.Arg(0)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		log.Error(ctx, "Directory does not exist: %s", root)
		return ExitFailure
	}

	ruleConfigs, err := cfg.CleanupRules()
	if err != nil {
		log.Error(ctx, "Failed to load rules: %v", err)
		return ExitFailure
	}

	if _, err := cleanup.New(toRules(ruleConfigs), log).ProcessTree(ctx, root); err != nil {
		log.Error(ctx, "Cleanup failed: %v", err)
		return ExitFailure
	}
	return ExitOK
}

func toRules(in []config.RuleConfig) []cleanup.Rule {
	rules := make([]cleanup.Rule, len(in))
	for i, r := range in {
		rules[i] = cleanup.Rule{From: r.From, To: r.To}
	}
	return rules
}
