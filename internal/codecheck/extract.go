package codecheck

import "strings"

// Extract returns the contents of every fenced code block whose info
// string starts with language, in document order. An unterminated block
// runs to the end of text.
func Extract(text, language string) []string {
	var (
		blocks  []string
		current []string
		fence   string
		capture bool
	)

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimLeft(line, " ")

		if fence == "" {
			marker := fenceMarker(trimmed)
			if marker == "" || len(line)-len(trimmed) > 3 {
				continue
			}
			fence = marker
			info := strings.Fields(trimmed[len(marker):])
			capture = len(info) > 0 && info[0] == language
			current = current[:0]
			continue
		}

		if strings.HasPrefix(trimmed, fence) && strings.TrimSpace(strings.TrimLeft(trimmed, fence[:1])) == "" {
			if capture {
				blocks = append(blocks, strings.Join(current, "\n"))
			}
			fence = ""
			continue
		}
		if capture {
			current = append(current, line)
		}
	}

	if fence != "" && capture {
		blocks = append(blocks, strings.Join(current, "\n"))
	}
	return blocks
}

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
