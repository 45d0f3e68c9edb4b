package app

import (
	"errors"
	"fmt"
	"strings"
)

// Config holds the process-level settings of an App. Zero values leave the
// corresponding configuration file setting untouched.
type Config struct {
	// ConfigPath is the HCL configuration file; empty means defaults.
	ConfigPath string
	// Root overrides corpus.root.
	Root string
	// Workers overrides corpus.workers.
	Workers int
	// AllMismatches forces dependencies.all_mismatches on.
	AllMismatches bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	switch cfg.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.Workers < 0 {
		return nil, errors.New("workers must not be negative")
	}
	return &cfg, nil
}
