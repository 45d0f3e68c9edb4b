// Package registry provides the central "glue" for the peripheral checkers.
//
// The Registry maps the names used on the command line and in configuration
// (e.g. "links") to the compiled checkers that implement them. It keeps
// registration order, which is the order checks run in.
//
// During application startup each enabled checker module registers itself.
// A name registered twice is a programmer error and panics.
package registry
