package dag

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrDependencyMismatch indicates a "required-by" claim without the
	// matching "requires" declaration.
	ErrDependencyMismatch = errors.New("dependency mismatch")

	// ErrCyclesFound indicates at least one dependency cycle.
	ErrCyclesFound = errors.New("cycles found")
)

// DependencyMismatchError reports that standard Key claims to be required
// by RequiredBy, but RequiredBy does not require Key.
// Wraps ErrDependencyMismatch.
type DependencyMismatchError struct {
	Key        int
	RequiredBy int
}

func (e *DependencyMismatchError) Error() string {
	return fmt.Sprintf("%s: missing requirement from %d to %d", ErrDependencyMismatch.Error(), e.RequiredBy, e.Key)
}

func (e *DependencyMismatchError) Unwrap() error { return ErrDependencyMismatch }

// CyclesFoundError carries every simple cycle of the graph.
// Wraps ErrCyclesFound.
type CyclesFoundError struct {
	Cycles []Cycle
}

func (e *CyclesFoundError) Error() string {
	parts := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s: %s", ErrCyclesFound.Error(), strings.Join(parts, "; "))
}

func (e *CyclesFoundError) Unwrap() error { return ErrCyclesFound }
