package dag

import (
	"fmt"
	"strings"
	"sync"
)

// Graph is a directed graph keyed by standard number. An edge A -> B
// means standard A requires standard B. All operations on the graph are
// concurrency-safe.
type Graph struct {
	// mutex protects nodes and frozen.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by document key.
	nodes map[int]*node
	// frozen rejects further mutation once set.
	frozen bool
	// edgeCount is the number of distinct edges.
	edgeCount int
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API.
type node struct {
	key int
	// deps holds the keys this node requires, in the order they were added.
	deps []int
	// depSet indexes deps for constant-time edge queries.
	depSet map[int]struct{}
	// dependents holds the keys that require this node.
	dependents map[int]struct{}
}

// Edge is a single directed dependency.
type Edge struct {
	From int
	To   int
}

// Cycle is a closed walk without repeated internal nodes, listed from its
// smallest key. The edge from the last key back to the first is implied.
type Cycle []int

// String renders the cycle as a closed path, e.g. "1 -> 2 -> 1".
func (c Cycle) String() string {
	if len(c) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c)+1)
	for _, k := range c {
		parts = append(parts, fmt.Sprint(k))
	}
	parts = append(parts, fmt.Sprint(c[0]))
	return strings.Join(parts, " -> ")
}
