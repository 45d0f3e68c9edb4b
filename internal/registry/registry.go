package registry

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/speccheck/internal/corpus"
	"github.com/vk/speccheck/internal/dag"
)

// Input is everything a checker may inspect: the loaded corpus and its
// frozen dependency graph.
type Input struct {
	Corpus *corpus.Corpus
	Graph  *dag.Graph
}

// Checker is a single validation over the whole corpus. Check returns nil
// on success and the first violation otherwise.
type Checker interface {
	Name() string
	Check(ctx context.Context, in Input) error
}

// Module is the interface that all checker modules must implement to be
// registered.
type Module interface {
	Register(r *Registry) error
}

// Registry holds the registered checkers of a single application instance.
type Registry struct {
	checkers []Checker
	byName   map[string]Checker
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		byName: make(map[string]Checker),
	}
}

// Register adds a checker under its name.
func (r *Registry) Register(c Checker) {
	name := c.Name()
	if _, exists := r.byName[name]; exists {
		panic(fmt.Sprintf("checker with name '%s' already registered", name))
	}
	slog.Debug("Registering checker.", "name", name)
	r.byName[name] = c
	r.checkers = append(r.checkers, c)
}

// Get returns the checker registered under name.
func (r *Registry) Get(name string) (Checker, bool) {
	c, ok := r.byName[name]
	return c, ok
}

// Checkers returns all checkers in registration order.
func (r *Registry) Checkers() []Checker {
	return append([]Checker(nil), r.checkers...)
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.checkers))
	for i, c := range r.checkers {
		names[i] = c.Name()
	}
	return names
}

// Select returns the checkers with the given names, in registration order.
// An unknown name is an error.
func (r *Registry) Select(names ...string) ([]Checker, error) {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := r.byName[n]; !ok {
			return nil, fmt.Errorf("unknown checker %q", n)
		}
		want[n] = true
	}
	var out []Checker
	for _, c := range r.checkers {
		if want[c.Name()] {
			out = append(out, c)
		}
	}
	return out, nil
}
