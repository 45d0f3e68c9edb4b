package codecheck

import (
	"context"
	"fmt"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/corpus"
	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/registry"
)

// Name is the registry name of the code checker.
const Name = "code"

// Checker is the embedded code checker.
type Checker struct {
	language  string
	extension string
	verifier  Verifier
	// blocks memoises extracted code per key.
	blocks *lru.Cache[int, []string]
}

// New returns a checker for cfg. A nil verifier runs cfg.Command.
func New(cfg config.Code, verifier Verifier) (*Checker, error) {
	cache, err := lru.New[int, []string](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create code block cache: %w", err)
	}
	if verifier == nil {
		if len(cfg.Command) == 0 {
			return nil, fmt.Errorf("code.command is required")
		}
		verifier = CommandVerifier{Command: cfg.Command}
	}
	return &Checker{
		language:  cfg.Language,
		extension: cfg.Extension,
		verifier:  verifier,
		blocks:    cache,
	}, nil
}

// Name implements registry.Checker.
func (c *Checker) Name() string { return Name }

// Check verifies every standard carrying code, in key order, and stops at
// the first rejection.
func (c *Checker) Check(ctx context.Context, in registry.Input) error {
	logger := ctxlog.FromContext(ctx)

	checked := 0
	for _, doc := range in.Corpus.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}

		own := c.codeOf(doc)
		if len(own) == 0 {
			logger.Debug("No embedded code, skipping.", "key", doc.Key, "language", c.language)
			continue
		}

		source, err := c.assemble(doc, own, in)
		if err != nil {
			return err
		}
		logger.Debug("Verifying embedded code.", "key", doc.Key, "dependencies", in.Graph.Dependencies(doc.Key))
		if err := c.verify(ctx, doc.Key, source); err != nil {
			return err
		}
		checked++
	}

	logger.Info("Embedded code verified.", "standards", checked)
	return nil
}

func (c *Checker) codeOf(doc *corpus.Document) []string {
	if blocks, ok := c.blocks.Get(doc.Key); ok {
		return blocks
	}
	blocks := Extract(doc.Text, c.language)
	c.blocks.Add(doc.Key, blocks)
	return blocks
}

// assemble concatenates the code of doc's dependencies, in declaration
// order, followed by its own.
func (c *Checker) assemble(doc *corpus.Document, own []string, in registry.Input) (string, error) {
	var sb strings.Builder
	for _, dep := range in.Graph.Dependencies(doc.Key) {
		depDoc, ok := in.Corpus.ByKey(dep)
		if !ok {
			return "", &MissingDependencyError{Key: doc.Key, Dependency: dep}
		}
		for _, block := range c.codeOf(depDoc) {
			sb.WriteString(block)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	for _, block := range own {
		sb.WriteString(block)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func (c *Checker) verify(ctx context.Context, key int, source string) error {
	f, err := os.CreateTemp("", fmt.Sprintf("speccheck-%d-*%s", key, c.extension))
	if err != nil {
		return fmt.Errorf("failed to create source file: %w", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(source); err != nil {
		f.Close()
		return fmt.Errorf("failed to write source file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write source file: %w", err)
	}

	out, ok, err := c.verifier.Verify(ctx, f.Name())
	if err != nil {
		return fmt.Errorf("failed to run verifier for standard %d: %w", key, err)
	}
	if !ok {
		return &CodeTypeCheckError{Key: key, Output: strings.TrimSpace(string(out))}
	}
	return nil
}

// Module registers the code checker.
type Module struct {
	Config config.Code
	// Verifier overrides the configured command when set.
	Verifier Verifier
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) error {
	c, err := New(m.Config, m.Verifier)
	if err != nil {
		return err
	}
	r.Register(c)
	return nil
}
