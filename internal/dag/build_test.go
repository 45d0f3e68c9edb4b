package dag

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/speccheck/internal/depparse"
)

func TestBuild(t *testing.T) {
	decls := []depparse.Declaration{
		{Key: 1, Requires: []int{}, RequiredBy: []int{2}},
		{Key: 2, Requires: []int{1, 7}, RequiredBy: []int{}},
		{Key: 3, Requires: []int{}, RequiredBy: []int{}},
	}

	g, err := Build(context.Background(), decls)
	require.NoError(t, err)

	assert.True(t, g.Frozen())
	assert.Equal(t, []int{1, 2, 3, 7}, g.Nodes(), "referenced keys become nodes")
	assert.Equal(t, []Edge{{2, 1}, {2, 7}}, g.Edges())
	assert.False(t, g.HasEdge(1, 2), "required-by claims do not create edges")
}

func TestBuild_Empty(t *testing.T) {
	g, err := Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, FindCycles(g))
}
