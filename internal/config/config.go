// =============================================================================
// Bulk Claim Converter - Configuration Module
// =============================================================================
//
// Application configuration loaded from a single YAML file. The load path is
// read, unmarshal, apply defaults, validate; a missing directory is created
// on validation so a fresh checkout runs without setup.
//
// =============================================================================

package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// InputDir is scanned for submission files to process.
	InputDir string `yaml:"input_dir"`

	// ArchiveDir receives inputs that processed successfully.
	ArchiveDir string `yaml:"archive_dir"`

	// ReportDir receives the XLSX processing summaries.
	ReportDir string `yaml:"report_dir"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// MaxConcurrency caps the number of files processed at once.
	MaxConcurrency int `yaml:"max_concurrency"`

	// ContinueOnError keeps a run going when individual files fail.
	ContinueOnError bool `yaml:"continue_on_error"`
}

// Load reads and validates the configuration file. A missing file yields the
// defaults rather than an error, so the CLI runs without a config present.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.InputDir == "" {
		cfg.InputDir = "./input"
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "./archive"
	}
	if cfg.ReportDir == "" {
		cfg.ReportDir = "./reports"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.MaxConcurrency <= 0 {
		cfg.MaxConcurrency = 4
	}
}

func validate(cfg *Config) error {
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return err
	}

	for _, dir := range []string{cfg.InputDir, cfg.ArchiveDir, cfg.ReportDir} {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
	}
	return nil
}

// ParseLevel maps a config log level onto slog.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", level)
}
