package corpus

import (
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// splitFrontMatter separates a leading "---" delimited block from the rest
// of text. ok is false when text has no complete front matter, in which
// case body is text itself.
func splitFrontMatter(text string) (front, body string, ok bool) {
	trimmed := strings.TrimPrefix(text, "\ufeff")
	if !strings.HasPrefix(trimmed, frontMatterDelimiter+"\n") && !strings.HasPrefix(trimmed, frontMatterDelimiter+"\r\n") {
		return "", text, false
	}
	rest := trimmed[strings.Index(trimmed, "\n")+1:]

	for offset := 0; offset < len(rest); {
		line := rest[offset:]
		next := len(rest)
		if i := strings.IndexByte(line, '\n'); i >= 0 {
			line = line[:i]
			next = offset + i + 1
		}
		if strings.TrimRight(line, "\r") == frontMatterDelimiter {
			return rest[:offset], rest[next:], true
		}
		offset = next
	}
	return "", text, false
}

// parseHeader extracts YAML front matter delimited by "---" lines at the
// top of text. It returns nil when there is none or it does not parse.
func parseHeader(text string) map[string]any {
	front, _, ok := splitFrontMatter(text)
	if !ok {
		return nil
	}

	header := make(map[string]any)
	if err := yaml.Unmarshal([]byte(front), &header); err != nil {
		return nil
	}
	return header
}

// headerKey returns the standard number a header declares under name.
func headerKey(header map[string]any, name string) (int, bool) {
	switch v := header[name].(type) {
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	default:
		return 0, false
	}
}
