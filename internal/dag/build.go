package dag

import (
	"context"
	"fmt"

	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/depparse"
)

// Build constructs the dependency graph from parsed declarations and
// freezes it. Every declaring document becomes a node, as does every key it
// requires; only forward declarations produce edges.
func Build(ctx context.Context, decls []depparse.Declaration) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "declarations", len(decls))

	g := New()
	for _, d := range decls {
		if err := g.AddNode(d.Key); err != nil {
			return nil, err
		}
		for _, dep := range d.Requires {
			if err := g.AddEdge(d.Key, dep); err != nil {
				return nil, fmt.Errorf("failed to add edge %d -> %d: %w", d.Key, dep, err)
			}
		}
	}
	g.Freeze()

	logger.Debug("Build: Graph construction successful.", "nodes", g.Len(), "edges", g.EdgeCount())
	return g, nil
}
