package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/depparse"
	"github.com/vk/speccheck/internal/registry"
)

// ErrConfig marks errors caused by configuration or usage rather than by
// the corpus.
var ErrConfig = errors.New("invalid configuration")

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	runID    string
	registry *registry.Registry
	config   *config.Model
	parser   depparse.Parser
}

// NewApp is the constructor for the main application. Diagnostics are
// written to outW and logs to logW. Without explicit modules the core
// checkers are registered.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	runID := uuid.NewString()
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW).With("run_id", runID)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	cfgModel, err := loader.Load(ctx, appConfig.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	applyOverrides(cfgModel, appConfig)
	if err := cfgModel.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	logger.Debug("Configuration loaded and validated.", "path", appConfig.ConfigPath, "root", cfgModel.Corpus.Root)

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules(cfgModel)
	}
	for _, mod := range modules {
		if err := mod.Register(reg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrConfig, err)
		}
	}
	logger.Debug("All checkers registered.", "checkers", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		runID:    runID,
		registry: reg,
		config:   cfgModel,
		parser:   depparse.NewLineParser(cfgModel.Dependencies.RequiresMarker, cfgModel.Dependencies.RequiredByMarker),
	}, nil
}

func applyOverrides(m *config.Model, c *Config) {
	if c.Root != "" {
		m.Corpus.Root = c.Root
	}
	if c.Workers > 0 {
		m.Corpus.Workers = c.Workers
	}
	if c.AllMismatches {
		m.Dependencies.AllMismatches = true
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the effective configuration.
func (a *App) Model() *config.Model {
	return a.config
}

// RunID identifies this instance in its logs.
func (a *App) RunID() string {
	return a.runID
}

// EnabledChecks returns the registered checkers switched on by the
// configuration, in run order.
func (a *App) EnabledChecks() []string {
	var names []string
	for _, name := range a.registry.Names() {
		if enabled(a.config, name) {
			names = append(names, name)
		}
	}
	return names
}
