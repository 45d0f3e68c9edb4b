package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/fsutil"
	"golang.org/x/sync/errgroup"
)

// Load enumerates the standard directories under cfg.Root and reads their
// primary documents. Reads run concurrently, bounded by cfg.Workers; the
// returned corpus is ordered by key regardless of completion order.
func Load(ctx context.Context, cfg config.Corpus) (*Corpus, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Corpus loading started.", "root", cfg.Root)

	pattern, err := regexp.Compile(cfg.DirPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid directory pattern: %w", err)
	}

	dirs, err := fsutil.SubDirs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to list corpus root %s: %w", cfg.Root, err)
	}

	// First pass: derive keys from paths. Nothing is read until the whole
	// layout is known to be well formed.
	docs := make([]*Document, 0, len(dirs))
	seen := make(map[int]string, len(dirs))
	for _, dir := range dirs {
		doc, err := locate(cfg, pattern, dir)
		if err != nil {
			return nil, err
		}
		if doc == nil {
			logger.Debug("Skipping directory without documents.", "dir", dir)
			continue
		}
		if first, dup := seen[doc.Key]; dup {
			return nil, &DuplicateKeyError{Key: doc.Key, First: first, Second: dir}
		}
		seen[doc.Key] = dir
		docs = append(docs, doc)
	}
	logger.Debug("Corpus layout resolved.", "documents", len(docs))

	// Second pass: read. Each goroutine owns exactly one document.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for _, doc := range docs {
		doc := doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return read(doc, cfg.HeaderKey)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := newCorpus(cfg.Root, docs)
	logger.Info("Corpus loaded.", "documents", len(c.Documents))
	return c, nil
}

// locate derives the key of a standard directory and finds its
// document resources. A directory holding no documents at all is not a
// standard and yields nil.
func locate(cfg config.Corpus, pattern *regexp.Regexp, dir string) (*Document, error) {
	full := filepath.Join(cfg.Root, dir)

	files, err := fsutil.FindFiles(full, cfg.Documents)
	if err != nil {
		return nil, err
	}

	m := pattern.FindStringSubmatch(dir)
	if m == nil {
		if len(files) == 0 {
			return nil, nil
		}
		return nil, &MalformedPathError{Path: files[0], Reason: fmt.Sprintf("directory %s does not match %q", dir, cfg.DirPattern)}
	}
	key, err := strconv.Atoi(m[1])
	if err != nil || key < 0 {
		return nil, &MalformedPathError{Path: full, Reason: fmt.Sprintf("invalid key %q", m[1])}
	}

	doc := &Document{Key: key, Dir: dir, Slug: m[2]}
	for _, f := range files {
		if filepath.Base(f) == cfg.Primary && filepath.Dir(f) == full {
			doc.Path = f
			continue
		}
		doc.Extra = append(doc.Extra, f)
	}
	if doc.Path == "" {
		return nil, &MalformedPathError{Path: full, Reason: fmt.Sprintf("missing primary document %s", cfg.Primary)}
	}
	return doc, nil
}

func read(doc *Document, headerField string) error {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", doc.Path, err)
	}
	doc.Text = string(data)
	doc.Header = parseHeader(doc.Text)

	if headerField == "" || doc.Header == nil {
		return nil
	}
	if n, ok := headerKey(doc.Header, headerField); ok && n != doc.Key {
		return &HeaderMismatchError{Path: doc.Path, Key: doc.Key, HeaderKey: n}
	}
	return nil
}
