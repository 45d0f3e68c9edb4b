package corpus

import "sort"

// Document is one standard as loaded from disk. It is not modified after
// Load returns.
type Document struct {
	// Key is the numeric identifier derived from Dir.
	Key int
	// Dir is the standard directory name, e.g. "ics-002-client-semantics".
	Dir string
	// Slug is the descriptive part of Dir, e.g. "client-semantics".
	Slug string
	// Path is the primary document file.
	Path string
	// Extra lists the other document resources of the standard.
	Extra []string
	// Text is the raw content of the primary document.
	Text string
	// Header is the YAML front matter of the primary document, nil if
	// absent or unparseable.
	Header map[string]any
}

// Body returns Text without its front matter.
func (d *Document) Body() string {
	_, body, _ := splitFrontMatter(d.Text)
	return body
}

// Corpus is the set of documents of one validation run, ordered by key.
type Corpus struct {
	Root      string
	Documents []*Document

	byKey map[int]*Document
}

func newCorpus(root string, docs []*Document) *Corpus {
	sort.Slice(docs, func(i, j int) bool { return docs[i].Key < docs[j].Key })
	byKey := make(map[int]*Document, len(docs))
	for _, d := range docs {
		byKey[d.Key] = d
	}
	return &Corpus{Root: root, Documents: docs, byKey: byKey}
}

// ByKey returns the document with the given key.
func (c *Corpus) ByKey(key int) (*Document, bool) {
	d, ok := c.byKey[key]
	return d, ok
}

// Keys returns all document keys in ascending order.
func (c *Corpus) Keys() []int {
	keys := make([]int, len(c.Documents))
	for i, d := range c.Documents {
		keys[i] = d.Key
	}
	return keys
}

// Dirs maps every document key to its directory name. Link resolution
// works on directory names.
func (c *Corpus) Dirs() map[int]string {
	dirs := make(map[int]string, len(c.Documents))
	for _, d := range c.Documents {
		dirs[d.Key] = d.Dir
	}
	return dirs
}
