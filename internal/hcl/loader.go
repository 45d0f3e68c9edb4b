package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/schema"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses the file at path and merges it over config.Default(). A
// relative corpus root is resolved against the directory of the file.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.Default()
	if path == "" {
		logger.Debug("No configuration file given, using defaults.")
		return model, nil
	}
	logger.Debug("HCL loader started.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	dir := filepath.Dir(path)
	var root schema.File
	diags = gohcl.DecodeBody(file.Body, newEvalContext(dir), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	translate(&root, model)
	if root.Corpus != nil && root.Corpus.Root != nil && !filepath.IsAbs(model.Corpus.Root) {
		model.Corpus.Root = filepath.Join(dir, model.Corpus.Root)
	}

	logger.Debug("HCL loading complete.",
		"root", model.Corpus.Root,
		"links", model.Links.Enabled,
		"sections", model.Sections.Enabled,
		"code", model.Code.Enabled,
	)
	return model, nil
}
