package corpus

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error checking via errors.Is().
var (
	// ErrMalformedPath indicates a storage location that does not follow
	// the corpus naming convention.
	ErrMalformedPath = errors.New("malformed path")

	// ErrDuplicateKey indicates two standard directories with the same key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrHeaderMismatch indicates a document header naming another key
	// than its directory.
	ErrHeaderMismatch = errors.New("header mismatch")
)

// MalformedPathError reports a path that does not match the naming
// convention. Wraps ErrMalformedPath.
type MalformedPathError struct {
	Path   string
	Reason string
}

func (e *MalformedPathError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s", ErrMalformedPath.Error(), e.Path)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedPath.Error(), e.Path, e.Reason)
}

func (e *MalformedPathError) Unwrap() error { return ErrMalformedPath }

// DuplicateKeyError reports two directories deriving the same key, which
// happens when the same number is written with different padding.
// Wraps ErrDuplicateKey.
type DuplicateKeyError struct {
	Key    int
	First  string
	Second string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s: standard %d is defined by both %s and %s", ErrDuplicateKey.Error(), e.Key, e.First, e.Second)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// HeaderMismatchError reports a front-matter key that disagrees with the
// directory key. Wraps ErrHeaderMismatch.
type HeaderMismatchError struct {
	Path      string
	Key       int
	HeaderKey int
}

func (e *HeaderMismatchError) Error() string {
	return fmt.Sprintf("%s: %s is standard %d but its header says %d", ErrHeaderMismatch.Error(), e.Path, e.Key, e.HeaderKey)
}

func (e *HeaderMismatchError) Unwrap() error { return ErrHeaderMismatch }
