// Package dag holds the dependency graph of a corpus and the two
// validations that need the whole of it: reconciliation of "required-by"
// claims against declared edges, and enumeration of every simple cycle.
//
// The graph is written by a single goroutine in Build and frozen before
// either validation runs. A frozen graph is read-only and safe for
// concurrent readers.
package dag
