// Package config loads termsim settings from a YAML file and command-line
// flags.
package config

import (
	"errors"
	"fmt"

	"termsim/internal/logging"
	"termsim/internal/model"
)

// ErrInvalid is returned for configuration that cannot be used.
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete termsim configuration.
type Config struct {
	// Theme applied to the first tab
	Theme string `mapstructure:"theme"`

	// Hostname shown in the prompt header
	Hostname string `mapstructure:"hostname"`

	Web WebConfig `mapstructure:"web"`
	Log LogConfig `mapstructure:"log"`
}

// WebConfig configures the HTTP front end.
type WebConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig configures the log file.
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// Logging converts the section into a logging.Config.
func (l LogConfig) Logging() logging.Config {
	return logging.Config{
		Level:      l.Level,
		Format:     l.Format,
		Path:       l.Path,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}

// Validate checks the values that the rest of the program relies on.
func (c *Config) Validate() error {
	if _, ok := model.LookupTheme(c.Theme); !ok {
		return fmt.Errorf("%w: unknown theme: %s", ErrInvalid, c.Theme)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: invalid log level: %s", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: invalid log format: %s", ErrInvalid, c.Log.Format)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("%w: log rotation limits cannot be negative", ErrInvalid)
	}
	if c.Web.Addr == "" {
		return fmt.Errorf("%w: web address cannot be empty", ErrInvalid)
	}
	return nil
}
