package depparse

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParser() *LineParser {
	return NewLineParser("requires:", "required-by:")
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		requires   []int
		requiredBy []int
	}{
		{
			name:       "no declarations",
			text:       "## Synopsis\n\nNothing here.\n",
			requires:   []int{},
			requiredBy: []int{},
		},
		{
			name:       "single forward",
			text:       "requires: 2\n",
			requires:   []int{2},
			requiredBy: []int{},
		},
		{
			name:       "both directions in front matter",
			text:       "---\nics: 3\nrequires: 2, 24\nrequired-by: 4, 18\n---\n",
			requires:   []int{2, 24},
			requiredBy: []int{4, 18},
		},
		{
			name:       "multiple lines are unioned",
			text:       "requires: 2, 3\nbody\nrequires: 3, 5\n",
			requires:   []int{2, 3, 5},
			requiredBy: []int{},
		},
		{
			name:       "loose whitespace and crlf",
			text:       "  requires:2 ,3,  4\r\nrequired-by:   \r\n",
			requires:   []int{2, 3, 4},
			requiredBy: []int{},
		},
		{
			name:       "padding is insignificant",
			text:       "requires: 002, 10\n",
			requires:   []int{2, 10},
			requiredBy: []int{},
		},
		{
			name:       "markers are case sensitive",
			text:       "Requires: 2\nREQUIRED-BY: 3\n",
			requires:   []int{},
			requiredBy: []int{},
		},
		{
			name:       "marker must start the line",
			text:       "This standard requires: 2\n",
			requires:   []int{},
			requiredBy: []int{},
		},
		{
			name:       "last line without newline",
			text:       "required-by: 7",
			requires:   []int{},
			requiredBy: []int{7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decl, err := newParser().Parse(1, tt.text)
			require.NoError(t, err)
			assert.Equal(t, 1, decl.Key)
			assert.Equal(t, tt.requires, decl.Requires)
			assert.Equal(t, tt.requiredBy, decl.RequiredBy)
		})
	}
}

func TestParse_SyntaxError(t *testing.T) {
	tests := []struct {
		text  string
		line  int
		token string
	}{
		{text: "requires: 2, three\n", line: 1, token: "three"},
		{text: "title\nrequired-by: 2,,3\n", line: 2, token: ""},
		{text: "requires: -1\n", line: 1, token: "-1"},
		{text: "requires: ICS 2\n", line: 1, token: "ICS 2"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := newParser().Parse(9, tt.text)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSyntax))

			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, 9, se.Key)
			assert.Equal(t, tt.line, se.Line)
			assert.Equal(t, tt.token, se.Token)
		})
	}
}

func TestParse_CustomMarkers(t *testing.T) {
	p := NewLineParser("depends:", "depended-on-by:")
	decl, err := p.Parse(5, "depends: 1\ndepended-on-by: 6\nrequires: 9\n")
	require.NoError(t, err)
	assert.Equal(t, []int{1}, decl.Requires)
	assert.Equal(t, []int{6}, decl.RequiredBy)
}
