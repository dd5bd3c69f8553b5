// Package config is the single source of truth for runtime configuration
// and artifact paths. Values come from environment variables (TMS_ prefix)
// merged over an optional YAML file; output directories are created only by
// the explicit EnsureDirs step, never as a constructor side effect.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"tmscli/internal/errors"
)

// Artifact file names inside the output directory.
const (
	TrainingDataCSV  = "training_data.csv"
	TrainingDataXLSX = "training_data.xlsx"
	DashboardPNG     = "dashboard.png"
	ReportTXT        = "comprehensive_report.txt"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Program ProgramConfig `yaml:"program" envconfig:"PROGRAM"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
}

// ProgramConfig contains the default training program window
type ProgramConfig struct {
	StartDate string `yaml:"start_date" envconfig:"START_DATE"`
	NumDays   int    `yaml:"num_days" envconfig:"NUM_DAYS"`
}

// Default returns the built-in configuration, matching the original
// four-month program starting January 2024.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Paths:   PathsConfig{OutputDir: "output"},
		Program: ProgramConfig{StartDate: "2024-01-01", NumDays: 120},
	}
}

// Load builds the configuration in three layers: built-in defaults, the
// optional YAML config file, then environment variables, each overriding
// the previous.
func Load() (*Config, error) {
	cfg := Default()

	if err := loadFromFile(configFilePath(), cfg); err != nil {
		return nil, errors.NewConfigError("load config file", err)
	}

	if err := envconfig.Process("TMS", cfg); err != nil {
		return nil, errors.NewConfigError("load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, errors.NewConfigError("config validation failed", err)
	}

	return cfg, nil
}

// loadFromFile overlays the YAML config file onto cfg when present; fields
// absent from the file keep their current values. A missing file is not an
// error.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	return nil
}

func configFilePath() string {
	if path := os.Getenv("TMS_CONFIG_FILE"); path != "" {
		return path
	}
	return "tms-config.yaml"
}

func (c *Config) validate() error {
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	if c.Program.NumDays < 1 {
		return fmt.Errorf("program num_days must be at least 1, got %d", c.Program.NumDays)
	}
	return nil
}

// ArtifactPath returns the path of an artifact inside the output directory.
func (c *Config) ArtifactPath(name string) string {
	return filepath.Join(c.Paths.OutputDir, name)
}

// EnsureDirs prepares the output location. This is the only place the
// application creates directories; the metrics core stays free of
// filesystem side effects.
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.Paths.OutputDir, 0755); err != nil {
		return errors.NewConfigError(
			fmt.Sprintf("create output directory %s", c.Paths.OutputDir), err)
	}
	return nil
}
