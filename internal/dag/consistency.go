package dag

import (
	"errors"

	"github.com/vk/speccheck/internal/depparse"
)

// CheckConsistency verifies, in declaration order, that every "required-by"
// claim is backed by an edge. It stops at the first claim that is not and
// returns a *DependencyMismatchError naming both standards.
func CheckConsistency(g *Graph, decls []depparse.Declaration) error {
	for _, d := range decls {
		for _, by := range d.RequiredBy {
			if !g.HasEdge(by, d.Key) {
				return &DependencyMismatchError{Key: d.Key, RequiredBy: by}
			}
		}
	}
	return nil
}

// CollectMismatches is CheckConsistency without the early exit: all
// mismatches are joined into one error, in declaration order.
func CollectMismatches(g *Graph, decls []depparse.Declaration) error {
	var errs []error
	for _, d := range decls {
		for _, by := range d.RequiredBy {
			if !g.HasEdge(by, d.Key) {
				errs = append(errs, &DependencyMismatchError{Key: d.Key, RequiredBy: by})
			}
		}
	}
	return errors.Join(errs...)
}
