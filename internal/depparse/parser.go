// Package depparse extracts dependency declarations from document text.
//
// A declaration is a single line made of a marker followed by a comma
// separated list of standard numbers:
//
//	requires: 2, 3
//	required-by: 4
//
// Parsing is purely textual. Keys are not checked against the corpus here;
// that is the job of the graph and its consistency check.
package depparse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrSyntax indicates a declaration line that does not hold a list of
// integers.
var ErrSyntax = errors.New("declaration syntax error")

// SyntaxError reports an invalid entry on a declaration line.
// Wraps ErrSyntax.
type SyntaxError struct {
	Key   int
	Line  int
	Token string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: standard %d line %d: %q is not a standard number", ErrSyntax.Error(), e.Key, e.Line, e.Token)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// Declaration holds what one document declares about its dependencies.
type Declaration struct {
	// Key is the declaring document.
	Key int
	// Requires lists the documents Key depends on, in declaration order.
	Requires []int
	// RequiredBy lists the documents Key claims depend on it.
	RequiredBy []int
}

// Parser turns document text into a Declaration.
type Parser interface {
	Parse(key int, text string) (Declaration, error)
}

// LineParser matches declaration lines by fixed, case-sensitive markers.
type LineParser struct {
	requires   string
	requiredBy string
}

// NewLineParser returns a LineParser for the given markers, e.g.
// "requires:" and "required-by:".
func NewLineParser(requiresMarker, requiredByMarker string) *LineParser {
	return &LineParser{requires: requiresMarker, requiredBy: requiredByMarker}
}

// Parse implements Parser. Repeated lines are unioned in order of first
// appearance; a document without declaration lines yields empty lists.
func (p *LineParser) Parse(key int, text string) (Declaration, error) {
	decl := Declaration{Key: key, Requires: []int{}, RequiredBy: []int{}}
	seenReq := make(map[int]bool)
	seenBy := make(map[int]bool)

	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))

		var (
			list *[]int
			seen map[int]bool
			rest string
		)
		for _, m := range p.markers() {
			if strings.HasPrefix(line, m) {
				rest = line[len(m):]
				if m == p.requiredBy {
					list, seen = &decl.RequiredBy, seenBy
				} else {
					list, seen = &decl.Requires, seenReq
				}
				break
			}
		}
		if list == nil {
			continue
		}

		keys, bad, ok := parseList(rest)
		if !ok {
			return Declaration{}, &SyntaxError{Key: key, Line: i + 1, Token: bad}
		}
		for _, k := range keys {
			if !seen[k] {
				seen[k] = true
				*list = append(*list, k)
			}
		}
	}
	return decl, nil
}

// markers returns both markers, longest first, so that a marker which is
// a prefix of the other cannot shadow it.
func (p *LineParser) markers() [2]string {
	if len(p.requires) > len(p.requiredBy) {
		return [2]string{p.requires, p.requiredBy}
	}
	return [2]string{p.requiredBy, p.requires}
}

// parseList parses "2, 3,4". An empty list is valid. On failure it returns
// the offending token.
func parseList(s string) ([]int, string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", true
	}
	parts := strings.Split(s, ",")
	keys := make([]int, 0, len(parts))
	for _, part := range parts {
		tok := strings.TrimSpace(part)
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, tok, false
		}
		keys = append(keys, n)
	}
	return keys, "", true
}
