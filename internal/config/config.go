package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "LYRICFLOW_CONFIG"
	// EnvLogLevel overrides logging.level.
	EnvLogLevel = "LYRICFLOW_LOG_LEVEL"

	DefaultConfigPath = "config.yaml"
)

type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Convert    ConvertConfig    `yaml:"convert"`
	Cleanup    CleanupConfig    `yaml:"cleanup"`
	Transcript TranscriptConfig `yaml:"transcript"`
	Font       FontConfig       `yaml:"font"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type ConvertConfig struct {
	DefaultDurationMs int64  `yaml:"default_duration_ms"`
	MinDurationMs     int64  `yaml:"min_duration_ms"`
	SRTOutputDir      string `yaml:"srt_output_dir"`
	LRCOutputDir      string `yaml:"lrc_output_dir"`
	Flatten           bool   `yaml:"flatten"`
	LanguageHeader    bool   `yaml:"language_header"`
}

type CleanupConfig struct {
	Rules     []RuleConfig `yaml:"rules"`
	RulesFile string       `yaml:"rules_file"`
	LogDir    string       `yaml:"log_dir"`
}

// RuleConfig is one literal replacement. Order in the YAML list is the order
// of application.
type RuleConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type TranscriptConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type FontConfig struct {
	OutputDir       string   `yaml:"output_dir"`
	Extensions      []string `yaml:"extensions"`
	FontToolsBinary string   `yaml:"fonttools_binary"`
}

// Load reads and validates a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// LoadOrDefault loads the config for a command. A .env file in the working
// directory is loaded first; an empty path resolves through LYRICFLOW_CONFIG,
// then config.yaml. Only the implicit config.yaml may be missing, in which
// case defaults are used.
func LoadOrDefault(path string) (*Config, error) {
	_ = godotenv.Load()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	implicit := path == ""
	if implicit {
		path = DefaultConfigPath
	}

	cfg, err := Load(path)
	if err == nil {
		return cfg, nil
	}
	if !implicit || !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	cfg = &Config{}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if level := strings.TrimSpace(os.Getenv(EnvLogLevel)); level != "" {
		c.Logging.Level = level
	}
}

func (c *Config) Validate() error {
	if c.Convert.DefaultDurationMs < 0 {
		return fmt.Errorf("convert.default_duration_ms must not be negative")
	}
	if c.Convert.MinDurationMs < 0 {
		return fmt.Errorf("convert.min_duration_ms must not be negative")
	}
	for i, r := range c.Cleanup.Rules {
		if r.From == "" {
			return fmt.Errorf("cleanup.rules[%d].from is required", i)
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Convert.DefaultDurationMs == 0 {
		c.Convert.DefaultDurationMs = 3000
	}
	if c.Convert.MinDurationMs == 0 {
		c.Convert.MinDurationMs = 500
	}
	if c.Convert.SRTOutputDir == "" {
		c.Convert.SRTOutputDir = "输出_SRT文件"
	}
	if c.Convert.LRCOutputDir == "" {
		c.Convert.LRCOutputDir = "输出_LRC文件"
	}
	if c.Cleanup.LogDir == "" {
		c.Cleanup.LogDir = "logs"
	}
	if c.Transcript.Dir == "" {
		c.Transcript.Dir = "transcripts"
	}
	if c.Font.OutputDir == "" {
		c.Font.OutputDir = "FontsOutput"
	}
	if len(c.Font.Extensions) == 0 {
		c.Font.Extensions = []string{".ttf", ".otf", ".ttc", ".woff", ".woff2"}
	}
	if c.Font.FontToolsBinary == "" {
		c.Font.FontToolsBinary = "fonttools"
	}

	return nil
}
