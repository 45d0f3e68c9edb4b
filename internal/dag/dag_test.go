package dag

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph(t *testing.T) {
	t.Run("AddNode is idempotent", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddNode(1))
		require.NoError(t, g.AddNode(1))
		assert.Equal(t, 1, g.Len())
	})

	t.Run("AddEdge creates missing nodes", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddEdge(3, 2))
		assert.True(t, g.HasNode(3))
		assert.True(t, g.HasNode(2))
		assert.True(t, g.HasEdge(3, 2))
		assert.False(t, g.HasEdge(2, 3))
	})

	t.Run("duplicate edges are stored once", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddEdge(1, 2))
		require.NoError(t, g.AddEdge(1, 2))
		assert.Equal(t, 1, g.EdgeCount())
		assert.Equal(t, []int{2}, g.Dependencies(1))
	})

	t.Run("dependencies keep declaration order", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddEdge(5, 3))
		require.NoError(t, g.AddEdge(5, 1))
		require.NoError(t, g.AddEdge(5, 4))
		assert.Equal(t, []int{3, 1, 4}, g.Dependencies(5))
	})

	t.Run("dependents are sorted", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddEdge(9, 1))
		require.NoError(t, g.AddEdge(4, 1))
		require.NoError(t, g.AddEdge(6, 1))
		assert.Equal(t, []int{4, 6, 9}, g.Dependents(1))
	})

	t.Run("unknown node has no relations", func(t *testing.T) {
		g := New()
		assert.Nil(t, g.Dependencies(42))
		assert.Nil(t, g.Dependents(42))
		assert.False(t, g.HasEdge(42, 1))
	})

	t.Run("Nodes and Edges are ordered", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddEdge(3, 2))
		require.NoError(t, g.AddEdge(1, 3))
		require.NoError(t, g.AddEdge(3, 1))
		assert.Equal(t, []int{1, 2, 3}, g.Nodes())
		assert.Equal(t, []Edge{{1, 3}, {3, 1}, {3, 2}}, g.Edges())
	})

	t.Run("frozen graph rejects mutation", func(t *testing.T) {
		g := New()
		require.NoError(t, g.AddEdge(1, 2))
		g.Freeze()
		assert.True(t, g.Frozen())
		assert.ErrorIs(t, g.AddNode(3), ErrFrozen)
		assert.ErrorIs(t, g.AddEdge(2, 1), ErrFrozen)
		assert.Equal(t, 2, g.Len())
	})

	t.Run("concurrent readers", func(t *testing.T) {
		g := New()
		for i := 1; i < 50; i++ {
			require.NoError(t, g.AddEdge(i, i+1))
		}
		g.Freeze()

		var wg sync.WaitGroup
		for i := 1; i < 50; i++ {
			wg.Add(1)
			go func(k int) {
				defer wg.Done()
				assert.True(t, g.HasEdge(k, k+1))
				assert.Equal(t, []int{k + 1}, g.Dependencies(k))
			}(i)
		}
		wg.Wait()
	})
}

func TestCycleString(t *testing.T) {
	assert.Equal(t, "1 -> 2 -> 3 -> 1", Cycle{1, 2, 3}.String())
	assert.Equal(t, "7 -> 7", Cycle{7}.String())
	assert.Equal(t, "", Cycle{}.String())
}
