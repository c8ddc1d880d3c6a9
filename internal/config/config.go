// Package config loads ambient settings from the environment.
//
// The game protocol itself has no knobs: the target range is fixed and there
// are no flags or config files. Only operational concerns live here.
package config

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/guess/internal/logging"
	"github.com/caarlos0/env/v11"
)

// Config holds process-level settings.
type Config struct {
	// LogLevel is the minimum level written to stderr.
	LogLevel string `env:"GUESS_LOG_LEVEL" envDefault:"warn"`

	// MaxInputSize bounds an accepted input line, in bytes.
	MaxInputSize int `env:"GUESS_MAX_INPUT_SIZE" envDefault:"4096"`

	// Metrics logs a summary of session counters on exit.
	Metrics bool `env:"GUESS_METRICS" envDefault:"false"`

	// NoColor disables terminal styling (https://no-color.org).
	NoColor bool `env:"NO_COLOR"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.MaxInputSize <= 0 {
		return Config{}, fmt.Errorf("GUESS_MAX_INPUT_SIZE must be positive, got %d", cfg.MaxInputSize)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}
