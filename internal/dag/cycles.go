package dag

import (
	"slices"
)

// FindCycles enumerates every simple cycle of g exactly once using
// Johnson's algorithm. Each cycle starts at its smallest key and the result
// is sorted lexicographically, so output is stable across runs.
//
// Start nodes are taken in ascending order; the search from start s is
// limited to the strongly connected component holding s within the
// subgraph of keys >= s. Each cycle is therefore found only from its
// minimum key.
func FindCycles(g *Graph) []Cycle {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	keys := g.sortedKeys()
	adj := make(map[int][]int, len(keys))
	radj := make(map[int][]int, len(keys))
	for _, k := range keys {
		deps := sortedCopy(g.nodes[k].deps)
		adj[k] = deps
		for _, d := range deps {
			radj[d] = append(radj[d], k)
		}
	}

	var cycles []Cycle
	for _, s := range keys {
		component := componentOf(s, adj, radj)
		if len(component) == 1 && !slices.Contains(adj[s], s) {
			continue
		}
		cycles = append(cycles, circuits(s, adj, component)...)
	}

	slices.SortFunc(cycles, func(a, b Cycle) int { return slices.Compare(a, b) })
	return cycles
}

// CheckCycles returns a *CyclesFoundError listing every cycle, or nil for
// an acyclic graph.
func CheckCycles(g *Graph) error {
	if cycles := FindCycles(g); len(cycles) > 0 {
		return &CyclesFoundError{Cycles: cycles}
	}
	return nil
}

// componentOf returns the strongly connected component of s inside the
// subgraph induced by keys >= s: the nodes both reachable from s and able
// to reach it.
func componentOf(s int, adj, radj map[int][]int) map[int]bool {
	forward := reach(s, adj)
	backward := reach(s, radj)
	out := make(map[int]bool)
	for k := range forward {
		if backward[k] {
			out[k] = true
		}
	}
	return out
}

func reach(s int, edges map[int][]int) map[int]bool {
	seen := map[int]bool{s: true}
	queue := []int{s}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range edges[v] {
			if w < s || seen[w] {
				continue
			}
			seen[w] = true
			queue = append(queue, w)
		}
	}
	return seen
}

// circuits runs the blocking search of Johnson's algorithm from s over the
// given component.
func circuits(s int, adj map[int][]int, component map[int]bool) []Cycle {
	var (
		found   []Cycle
		stack   []int
		blocked = make(map[int]bool)
		waiting = make(map[int]map[int]bool)
	)

	var unblock func(u int)
	unblock = func(u int) {
		blocked[u] = false
		for w := range waiting[u] {
			delete(waiting[u], w)
			if blocked[w] {
				unblock(w)
			}
		}
	}

	var circuit func(v int) bool
	circuit = func(v int) bool {
		closed := false
		stack = append(stack, v)
		blocked[v] = true

		for _, w := range adj[v] {
			if !component[w] {
				continue
			}
			if w == s {
				found = append(found, append(Cycle(nil), stack...))
				closed = true
			} else if !blocked[w] && circuit(w) {
				closed = true
			}
		}

		if closed {
			unblock(v)
		} else {
			for _, w := range adj[v] {
				if !component[w] {
					continue
				}
				if waiting[w] == nil {
					waiting[w] = make(map[int]bool)
				}
				waiting[w][v] = true
			}
		}

		stack = stack[:len(stack)-1]
		return closed
	}

	circuit(s)
	return found
}
