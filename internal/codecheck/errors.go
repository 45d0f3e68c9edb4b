package codecheck

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrTypeCheck indicates that the verifier rejected a standard's code.
	ErrTypeCheck = errors.New("embedded code does not type-check")

	// ErrMissingDependency indicates a declared dependency with no document
	// to take code from.
	ErrMissingDependency = errors.New("missing dependency document")
)

// CodeTypeCheckError carries the verifier output for standard Key.
// Wraps ErrTypeCheck.
type CodeTypeCheckError struct {
	Key    int
	Output string
}

func (e *CodeTypeCheckError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: standard %d", ErrTypeCheck.Error(), e.Key)
	}
	return fmt.Sprintf("%s: standard %d:\n%s", ErrTypeCheck.Error(), e.Key, e.Output)
}

func (e *CodeTypeCheckError) Unwrap() error { return ErrTypeCheck }

// MissingDependencyError reports that standard Key requires Dependency,
// which is not part of the corpus.
// Wraps ErrMissingDependency.
type MissingDependencyError struct {
	Key        int
	Dependency int
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("%s: standard %d requires %d", ErrMissingDependency.Error(), e.Key, e.Dependency)
}

func (e *MissingDependencyError) Unwrap() error { return ErrMissingDependency }
