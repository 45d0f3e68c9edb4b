package config

import "context"

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads the configuration file at path and merges it over
	// Default(). An empty path yields the defaults.
	Load(ctx context.Context, path string) (*Model, error)
}
