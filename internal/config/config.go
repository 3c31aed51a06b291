package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Session SessionConfig
	Editor  EditorConfig
	Seed    SeedConfig
	Logging LogConfig
}

// SessionConfig holds synchronization settings.
type SessionConfig struct {
	Debounce      time.Duration `envconfig:"INKWELL_DEBOUNCE" default:"300ms"`
	MaxImageBytes int64         `envconfig:"INKWELL_MAX_IMAGE_BYTES" default:"10485760"`
}

// EditorConfig holds editor surface settings.
type EditorConfig struct {
	LineNumbers bool `envconfig:"INKWELL_LINE_NUMBERS" default:"true"`
	TabWidth    int  `envconfig:"INKWELL_TAB_WIDTH" default:"4"`
}

// SeedConfig selects the initial document. A file wins over generated lines.
type SeedConfig struct {
	Lines int    `envconfig:"INKWELL_SEED_LINES" default:"100000"`
	File  string `envconfig:"INKWELL_SEED_FILE"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"INKWELL_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"INKWELL_LOG_DEV" default:"false"`
	File        string `envconfig:"INKWELL_LOG_FILE"`
}

// Load loads configuration from INKWELL_* environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Session: SessionConfig{
			Debounce:      300 * time.Millisecond,
			MaxImageBytes: 10 << 20,
		},
		Editor: EditorConfig{
			LineNumbers: true,
			TabWidth:    4,
		},
		Seed: SeedConfig{
			Lines: 100000,
		},
		Logging: LogConfig{
			Level: "info",
		},
	}
}

// Validate rejects values no component can run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Session.Debounce < 0 {
		errs = append(errs, fmt.Errorf("debounce must not be negative, got %s", c.Session.Debounce))
	}
	if c.Session.MaxImageBytes < 0 {
		errs = append(errs, fmt.Errorf("max image bytes must not be negative, got %d", c.Session.MaxImageBytes))
	}
	if c.Editor.TabWidth < 0 {
		errs = append(errs, fmt.Errorf("tab width must not be negative, got %d", c.Editor.TabWidth))
	}
	if c.Seed.Lines < 0 {
		errs = append(errs, fmt.Errorf("seed lines must not be negative, got %d", c.Seed.Lines))
	}
	return errors.Join(errs...)
}
