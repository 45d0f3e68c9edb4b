package app

import (
	"github.com/vk/speccheck/internal/codecheck"
	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/linkcheck"
	"github.com/vk/speccheck/internal/registry"
	"github.com/vk/speccheck/internal/sectioncheck"
)

// coreModules is the definitive list of checkers compiled into the
// speccheck binary, in the order they run.
func coreModules(cfg *config.Model) []registry.Module {
	return []registry.Module{
		&sectioncheck.Module{Config: cfg.Sections},
		&linkcheck.Module{Config: cfg.Links},
		&codecheck.Module{Config: cfg.Code},
	}
}

// enabled reports whether the configuration turns the named checker on.
// Checkers without a switch are always on.
func enabled(cfg *config.Model, name string) bool {
	switch name {
	case sectioncheck.Name:
		return cfg.Sections.Enabled
	case linkcheck.Name:
		return cfg.Links.Enabled
	case codecheck.Name:
		return cfg.Code.Enabled
	default:
		return true
	}
}
