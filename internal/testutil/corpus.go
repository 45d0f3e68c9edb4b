package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteFiles creates a temporary directory and writes every file, keyed by
// slash-separated relative path. It returns the directory.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// WriteCorpus writes one ics-<key>-doc<key>/README.md per entry and returns
// the corpus root.
func WriteCorpus(t *testing.T, docs map[int]string) string {
	t.Helper()
	files := make(map[string]string, len(docs))
	for key, text := range docs {
		files[fmt.Sprintf("%s/README.md", DirName(key))] = text
	}
	return WriteFiles(t, files)
}

// DirName is the directory WriteCorpus uses for key.
func DirName(key int) string {
	return fmt.Sprintf("ics-%03d-doc%d", key, key)
}

// Document renders a README with the given declaration lines and a full
// section template, so that every check passes unless a test says otherwise.
func Document(title string, declarations ...string) string {
	var sb strings.Builder
	sb.WriteString("---\n")
	for _, d := range declarations {
		sb.WriteString(d)
		sb.WriteString("\n")
	}
	sb.WriteString("---\n\n")
	fmt.Fprintf(&sb, "## Synopsis\n\n%s.\n\n", title)
	sb.WriteString("### Motivation\n\n### Definitions\n\n### Desired Properties\n\n")
	for _, s := range []string{
		"Technical Specification",
		"Backwards Compatibility",
		"Forwards Compatibility",
		"Example Implementation",
		"Other Implementations",
		"History",
		"Copyright",
	} {
		fmt.Fprintf(&sb, "## %s\n\n", s)
	}
	return sb.String()
}
