package dag

import (
	"errors"
	"sort"
)

// ErrFrozen is returned when mutating a graph after Freeze.
var ErrFrozen = errors.New("graph is frozen")

// New creates and returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int]*node),
	}
}

// AddNode adds a node with the given key. If the node already exists, the
// function does nothing.
func (g *Graph) AddNode(key int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	g.ensureNode(key)
	return nil
}

// AddEdge records that `from` requires `to`, creating either node if
// needed. Adding an existing edge is a no-op. Self-loops are accepted:
// they are cycles of length one and are reported by FindCycles.
func (g *Graph) AddEdge(from, to int) error {
	g.mutex.Lock()
	defer g.mutex.Unlock()

	if g.frozen {
		return ErrFrozen
	}

	fromNode := g.ensureNode(from)
	toNode := g.ensureNode(to)
	if _, ok := fromNode.depSet[to]; ok {
		return nil
	}

	fromNode.deps = append(fromNode.deps, to)
	fromNode.depSet[to] = struct{}{}
	toNode.dependents[from] = struct{}{}
	g.edgeCount++
	return nil
}

// ensureNode must be called with the write lock held.
func (g *Graph) ensureNode(key int) *node {
	if n, ok := g.nodes[key]; ok {
		return n
	}
	n := &node{
		key:        key,
		depSet:     make(map[int]struct{}),
		dependents: make(map[int]struct{}),
	}
	g.nodes[key] = n
	return n
}

// Freeze makes the graph read-only.
func (g *Graph) Freeze() {
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.frozen = true
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.frozen
}

// HasEdge reports whether `from` requires `to`.
func (g *Graph) HasEdge(from, to int) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[from]
	if !ok {
		return false
	}
	_, ok = n.depSet[to]
	return ok
}

// HasNode reports whether key is part of the graph.
func (g *Graph) HasNode(key int) bool {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	_, ok := g.nodes[key]
	return ok
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.edgeCount
}

// Nodes returns all keys in ascending order.
func (g *Graph) Nodes() []int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	return g.sortedKeys()
}

// Edges returns every edge, ordered by From then To.
func (g *Graph) Edges() []Edge {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	edges := make([]Edge, 0, g.edgeCount)
	for _, k := range g.sortedKeys() {
		for _, to := range sortedCopy(g.nodes[k].deps) {
			edges = append(edges, Edge{From: k, To: to})
		}
	}
	return edges
}

// Dependencies returns the keys `key` requires, in the order they were
// declared. Nil if the node does not exist.
func (g *Graph) Dependencies(key int) []int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return nil
	}
	return append([]int(nil), n.deps...)
}

// Dependents returns the keys that require `key`, in ascending order.
func (g *Graph) Dependents(key int) []int {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	n, ok := g.nodes[key]
	if !ok {
		return nil
	}
	out := make([]int, 0, len(n.dependents))
	for k := range n.dependents {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// sortedKeys must be called with the read lock held.
func (g *Graph) sortedKeys() []int {
	keys := make([]int, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func sortedCopy(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)
	return out
}
