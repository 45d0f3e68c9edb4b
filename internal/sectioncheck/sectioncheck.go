// Package sectioncheck enforces the heading template of standard documents.
package sectioncheck

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/corpus"
	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/registry"
)

// Name is the registry name of the section checker.
const Name = "sections"

// ErrSectionMismatch indicates a document that deviates from the heading
// template.
var ErrSectionMismatch = errors.New("section mismatch")

// SectionMismatchError reports the first heading of standard Key that
// deviates from the template. An empty Expected means the heading was not
// expected at all; an empty Found means an expected heading is missing.
// Wraps ErrSectionMismatch.
type SectionMismatchError struct {
	Key      int
	Level    int
	Expected string
	Found    string
}

func (e *SectionMismatchError) Error() string {
	switch {
	case e.Expected == "":
		return fmt.Sprintf("%s: standard %d: unexpected level-%d heading %q", ErrSectionMismatch.Error(), e.Key, e.Level, e.Found)
	case e.Found == "":
		return fmt.Sprintf("%s: standard %d: missing level-%d heading %q", ErrSectionMismatch.Error(), e.Key, e.Level, e.Expected)
	default:
		return fmt.Sprintf("%s: standard %d: expected level-%d heading %q but found %q", ErrSectionMismatch.Error(), e.Key, e.Level, e.Expected, e.Found)
	}
}

func (e *SectionMismatchError) Unwrap() error { return ErrSectionMismatch }

// Checker is the section checker.
type Checker struct {
	required    []string
	requiredSub []string
	skip        map[string]bool
}

// New returns a checker for the template in cfg.
func New(cfg config.Sections) *Checker {
	skip := make(map[string]bool, len(cfg.Skip))
	for _, dir := range cfg.Skip {
		skip[dir] = true
	}
	return &Checker{
		required:    cfg.Required,
		requiredSub: cfg.RequiredSub,
		skip:        skip,
	}
}

// Name implements registry.Checker.
func (c *Checker) Name() string { return Name }

// Check validates the primary document of every standard not on the skip
// list, in key order.
func (c *Checker) Check(ctx context.Context, in registry.Input) error {
	logger := ctxlog.FromContext(ctx)

	for _, doc := range in.Corpus.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.skip[doc.Dir] {
			logger.Debug("Skipping section check.", "key", doc.Key, "dir", doc.Dir)
			continue
		}
		logger.Debug("Checking sections.", "key", doc.Key, "path", doc.Path)
		if err := c.checkDocument(ctx, doc); err != nil {
			return err
		}
	}

	logger.Info("All documents follow the section template.", "documents", len(in.Corpus.Documents))
	return nil
}

func (c *Checker) checkDocument(ctx context.Context, doc *corpus.Document) error {
	byLevel := make(map[int][]string)
	for _, h := range headings(doc.Body()) {
		if h.level == 1 {
			return &SectionMismatchError{Key: doc.Key, Level: 1, Found: h.title}
		}
		byLevel[h.level] = append(byLevel[h.level], h.title)
	}

	second := byLevel[2]
	if err := matchPrefix(doc.Key, 2, c.required, second); err != nil {
		return err
	}
	if len(second) > len(c.required) {
		return &SectionMismatchError{Key: doc.Key, Level: 2, Found: second[len(c.required)]}
	}

	third := byLevel[3]
	if err := matchPrefix(doc.Key, 3, c.requiredSub, third); err != nil {
		return err
	}
	if rest := third[len(c.requiredSub):]; len(rest) > 0 {
		ctxlog.FromContext(ctx).Debug("Remaining sub-sub-sections.", "key", doc.Key, "headings", rest)
	}
	return nil
}

// matchPrefix checks that found starts with expected.
func matchPrefix(key, level int, expected, found []string) error {
	for i, want := range expected {
		if i >= len(found) {
			return &SectionMismatchError{Key: key, Level: level, Expected: want}
		}
		if found[i] != want {
			return &SectionMismatchError{Key: key, Level: level, Expected: want, Found: found[i]}
		}
	}
	return nil
}

type heading struct {
	level int
	title string
}

// headings returns the ATX headings of a markdown text in order, skipping
// fenced code blocks.
func headings(text string) []heading {
	var (
		out   []heading
		fence string
	)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimLeft(line, " ")
		if len(line)-len(trimmed) > 3 {
			continue
		}

		if marker := fenceMarker(trimmed); marker != "" {
			switch {
			case fence == "":
				fence = marker
			case strings.HasPrefix(marker, fence) && strings.TrimSpace(trimmed[len(marker):]) == "":
				fence = ""
			}
			continue
		}
		if fence != "" || !strings.HasPrefix(trimmed, "#") {
			continue
		}

		level := len(trimmed) - len(strings.TrimLeft(trimmed, "#"))
		rest := trimmed[level:]
		if level > 6 || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
			continue
		}
		title := strings.TrimSpace(rest)
		title = strings.TrimSpace(strings.TrimRight(title, "#"))
		out = append(out, heading{level: level, title: title})
	}
	return out
}

// fenceMarker returns the run of backticks or tildes opening line, if it
// is at least three long.
func fenceMarker(line string) string {
	if line == "" || (line[0] != '`' && line[0] != '~') {
		return ""
	}
	n := len(line) - len(strings.TrimLeft(line, line[:1]))
	if n < 3 {
		return ""
	}
	return line[:n]
}

// Module registers the section checker.
type Module struct {
	Config config.Sections
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) error {
	r.Register(New(m.Config))
	return nil
}
