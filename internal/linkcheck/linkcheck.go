// Package linkcheck verifies that cross-document links in a corpus resolve.
//
// Two kinds of link are recognised. Relative directory links such as
// "[client](../ics-002-client-semantics)" must name an existing standard
// directory; a trailing path or "#anchor" is ignored. Numbered references
// matched by a configurable pattern, "[ICS 2](...)" by default, must name an
// existing key.
package linkcheck

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/registry"
)

// Name is the registry name of the link checker.
const Name = "links"

// ErrUnresolvedLink indicates a link to a standard that does not exist.
var ErrUnresolvedLink = errors.New("unresolved link")

// UnresolvedLinkError reports the first dangling link of standard Key.
// Wraps ErrUnresolvedLink.
type UnresolvedLinkError struct {
	Key    int
	Target string
}

func (e *UnresolvedLinkError) Error() string {
	return fmt.Sprintf("%s: standard %d links to %s, which was not found", ErrUnresolvedLink.Error(), e.Key, e.Target)
}

func (e *UnresolvedLinkError) Unwrap() error { return ErrUnresolvedLink }

// Checker is the link checker.
type Checker struct {
	prefix    string
	dirLink   *regexp.Regexp
	reference *regexp.Regexp
}

// New compiles the link patterns of cfg.
func New(cfg config.Links) (*Checker, error) {
	c := &Checker{
		prefix:  cfg.DirPrefix,
		dirLink: regexp.MustCompile(`\[[^\]]*\]\(\.\./` + regexp.QuoteMeta(cfg.DirPrefix) + `([^)]*)\)`),
	}
	if cfg.ReferencePattern != "" {
		re, err := regexp.Compile(cfg.ReferencePattern)
		if err != nil {
			return nil, fmt.Errorf("invalid reference pattern: %w", err)
		}
		if re.NumSubexp() < 1 {
			return nil, fmt.Errorf("reference pattern %q must capture the key", cfg.ReferencePattern)
		}
		c.reference = re
	}
	return c, nil
}

// Name implements registry.Checker.
func (c *Checker) Name() string { return Name }

// Check scans every document resource of every standard, in key order, and
// returns the first unresolved link.
func (c *Checker) Check(ctx context.Context, in registry.Input) error {
	logger := ctxlog.FromContext(ctx)

	dirs := make(map[string]bool, len(in.Corpus.Documents))
	for _, d := range in.Corpus.Documents {
		dirs[d.Dir] = true
	}

	for _, doc := range in.Corpus.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}
		logger.Debug("Checking links.", "key", doc.Key, "path", doc.Path)

		if err := c.checkText(doc.Key, doc.Text, dirs, in); err != nil {
			return err
		}
		for _, extra := range doc.Extra {
			data, err := os.ReadFile(extra)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", extra, err)
			}
			if err := c.checkText(doc.Key, string(data), dirs, in); err != nil {
				return err
			}
		}
	}

	logger.Info("All links resolve.", "documents", len(in.Corpus.Documents))
	return nil
}

func (c *Checker) checkText(key int, text string, dirs map[string]bool, in registry.Input) error {
	for _, m := range c.dirLink.FindAllStringSubmatch(text, -1) {
		target := c.prefix + m[1]
		if !dirs[directoryOf(target)] {
			return &UnresolvedLinkError{Key: key, Target: target}
		}
	}

	if c.reference == nil {
		return nil
	}
	for _, m := range c.reference.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return &UnresolvedLinkError{Key: key, Target: m[0]}
		}
		if _, ok := in.Corpus.ByKey(n); !ok {
			return &UnresolvedLinkError{Key: key, Target: m[0]}
		}
	}
	return nil
}

// directoryOf strips a trailing path and anchor from a link target.
func directoryOf(target string) string {
	if i := strings.IndexAny(target, "/#"); i >= 0 {
		return target[:i]
	}
	return target
}

// Module registers the link checker.
type Module struct {
	Config config.Links
}

// Register implements registry.Module.
func (m *Module) Register(r *registry.Registry) error {
	c, err := New(m.Config)
	if err != nil {
		return err
	}
	r.Register(c)
	return nil
}
