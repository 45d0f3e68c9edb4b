package dag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/speccheck/internal/depparse"
)

func build(t *testing.T, decls ...depparse.Declaration) *Graph {
	t.Helper()
	g, err := Build(context.Background(), decls)
	require.NoError(t, err)
	return g
}

func TestCheckConsistency(t *testing.T) {
	testCases := []struct {
		name     string
		decls    []depparse.Declaration
		expected *DependencyMismatchError
	}{
		{
			name: "consistent pair",
			decls: []depparse.Declaration{
				{Key: 1, RequiredBy: []int{2}},
				{Key: 2, Requires: []int{1}},
			},
		},
		{
			name: "requires without required-by is fine",
			decls: []depparse.Declaration{
				{Key: 1},
				{Key: 2, Requires: []int{1}},
			},
		},
		{
			name: "claim without requirement",
			decls: []depparse.Declaration{
				{Key: 2, RequiredBy: []int{3}},
				{Key: 3},
			},
			expected: &DependencyMismatchError{Key: 2, RequiredBy: 3},
		},
		{
			name: "claim by an undeclared standard",
			decls: []depparse.Declaration{
				{Key: 1, RequiredBy: []int{9}},
			},
			expected: &DependencyMismatchError{Key: 1, RequiredBy: 9},
		},
		{
			name: "first mismatch in declaration order wins",
			decls: []depparse.Declaration{
				{Key: 1, RequiredBy: []int{2, 3}},
				{Key: 2, Requires: []int{1}},
				{Key: 4, RequiredBy: []int{5}},
			},
			expected: &DependencyMismatchError{Key: 1, RequiredBy: 3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := build(t, tc.decls...)
			err := CheckConsistency(g, tc.decls)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, ErrDependencyMismatch)
			var mismatch *DependencyMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, tc.expected, mismatch)
		})
	}
}

func TestDependencyMismatchError_Message(t *testing.T) {
	err := &DependencyMismatchError{Key: 2, RequiredBy: 3}
	assert.Equal(t, "dependency mismatch: missing requirement from 3 to 2", err.Error())
}

func TestCollectMismatches(t *testing.T) {
	decls := []depparse.Declaration{
		{Key: 1, RequiredBy: []int{2, 3}},
		{Key: 2, Requires: []int{1}},
		{Key: 4, RequiredBy: []int{5}},
	}
	g := build(t, decls...)

	err := CollectMismatches(g, decls)
	require.ErrorIs(t, err, ErrDependencyMismatch)

	joined, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	assert.Equal(t, []error{
		&DependencyMismatchError{Key: 1, RequiredBy: 3},
		&DependencyMismatchError{Key: 4, RequiredBy: 5},
	}, joined.Unwrap())

	assert.NoError(t, CollectMismatches(g, decls[1:2]))
}
