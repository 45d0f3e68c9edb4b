package sectioncheck

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/speccheck/internal/config"
	"github.com/vk/speccheck/internal/corpus"
	"github.com/vk/speccheck/internal/registry"
	"github.com/vk/speccheck/internal/testutil"
)

func check(t *testing.T, cfg config.Sections, docs map[int]string) error {
	t.Helper()
	corpusCfg := config.Default().Corpus
	corpusCfg.Root = testutil.WriteCorpus(t, docs)
	c, err := corpus.Load(context.Background(), corpusCfg)
	require.NoError(t, err)
	return New(cfg).Check(context.Background(), registry.Input{Corpus: c})
}

func TestCheck(t *testing.T) {
	valid := testutil.Document("Client semantics", "requires: 1")

	testCases := []struct {
		name     string
		text     string
		expected *SectionMismatchError
	}{
		{
			name: "complete template",
			text: valid,
		},
		{
			name:     "top-level heading",
			text:     "# Title\n\n" + valid,
			expected: &SectionMismatchError{Key: 2, Level: 1, Found: "Title"},
		},
		{
			name:     "renamed section",
			text:     strings.Replace(valid, "## History", "## Changelog", 1),
			expected: &SectionMismatchError{Key: 2, Level: 2, Expected: "History", Found: "Changelog"},
		},
		{
			name:     "missing trailing section",
			text:     strings.Replace(valid, "## Copyright\n", "", 1),
			expected: &SectionMismatchError{Key: 2, Level: 2, Expected: "Copyright"},
		},
		{
			name:     "extra section",
			text:     valid + "## Appendix\n",
			expected: &SectionMismatchError{Key: 2, Level: 2, Found: "Appendix"},
		},
		{
			name:     "sub-sections out of order",
			text:     strings.Replace(valid, "### Motivation\n\n### Definitions", "### Definitions\n\n### Motivation", 1),
			expected: &SectionMismatchError{Key: 2, Level: 3, Expected: "Motivation", Found: "Definitions"},
		},
		{
			name: "additional sub-sections are allowed",
			text: valid + "### Notes\n",
		},
		{
			name: "headings in code fences are ignored",
			text: valid + "```sh\n# a shell comment\n## not a section\n```\n",
		},
		{
			name: "tilde fences and longer closers",
			text: valid + "~~~~\n# inside\n~~~~~\n",
		},
		{
			name: "closing fence must match the opening character",
			text: valid + "```\n~~~\n# still inside\n```\n",
		},
		{
			name: "hashes without a space are not headings",
			text: "#hashtag\n" + valid,
		},
		{
			name: "indented code is not a heading",
			text: "    # code\n" + valid,
		},
		{
			name: "closing hashes are stripped",
			text: strings.Replace(valid, "## Synopsis", "## Synopsis ##", 1),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := check(t, config.Default().Sections, map[int]string{2: tc.text})
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrSectionMismatch)
			var mismatch *SectionMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tc.expected, mismatch)
		})
	}
}

func TestCheck_SkipList(t *testing.T) {
	cfg := config.Default().Sections
	cfg.Skip = []string{testutil.DirName(1)}

	err := check(t, cfg, map[int]string{
		1: "# Free form\n",
		2: testutil.Document("Client"),
	})
	assert.NoError(t, err)
}

func TestCheck_FirstFailureInKeyOrder(t *testing.T) {
	err := check(t, config.Default().Sections, map[int]string{
		9: "## Nothing\n",
		4: "# Title\n",
	})
	var mismatch *SectionMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 4, mismatch.Key)
}

func TestSectionMismatchError_Message(t *testing.T) {
	assert.Equal(t,
		`section mismatch: standard 3: expected level-2 heading "History" but found "Notes"`,
		(&SectionMismatchError{Key: 3, Level: 2, Expected: "History", Found: "Notes"}).Error())
	assert.Equal(t,
		`section mismatch: standard 3: missing level-3 heading "Definitions"`,
		(&SectionMismatchError{Key: 3, Level: 3, Expected: "Definitions"}).Error())
	assert.Equal(t,
		`section mismatch: standard 3: unexpected level-1 heading "Title"`,
		(&SectionMismatchError{Key: 3, Level: 1, Found: "Title"}).Error())
}
