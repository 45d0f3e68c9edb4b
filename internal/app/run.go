package app

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vk/speccheck/internal/corpus"
	"github.com/vk/speccheck/internal/ctxlog"
	"github.com/vk/speccheck/internal/dag"
	"github.com/vk/speccheck/internal/depparse"
	"github.com/vk/speccheck/internal/registry"
)

// Plan selects what a run validates beyond loading, parsing and building
// the graph.
type Plan struct {
	// Dependencies runs the consistency and cycle stages.
	Dependencies bool
	// Checks names the peripheral checkers to run. They run in registration
	// order regardless of the order given here.
	Checks []string
}

// Result is the outcome of a successful run.
type Result struct {
	Corpus *corpus.Corpus
	Graph  *dag.Graph
}

// Run executes one validation pass over the corpus. Diagnostics for the
// failing stage are written to the output writer before the error is
// returned.
func (a *App) Run(ctx context.Context, plan Plan) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "dependencies", plan.Dependencies, "checks", plan.Checks)

	checkers, err := a.registry.Select(plan.Checks...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}

	a.enter(StageLoading)
	c, err := corpus.Load(ctx, a.config.Corpus)
	if err != nil {
		return nil, a.fail(StageLoading, err)
	}

	a.enter(StageParsing)
	decls, err := a.parse(ctx, c)
	if err != nil {
		return nil, a.fail(StageParsing, err)
	}

	g, err := dag.Build(ctx, decls)
	if err != nil {
		return nil, a.fail(StageGraphBuilt, err)
	}
	a.enter(StageGraphBuilt)

	if plan.Dependencies {
		if err := a.checkDependencies(g, decls); err != nil {
			return nil, err
		}
	}

	in := registry.Input{Corpus: c, Graph: g}
	for _, checker := range checkers {
		stage := checkerStage(checker.Name())
		a.logger.Debug("Running checker.", "checker", checker.Name())
		if err := checker.Check(ctx, in); err != nil {
			fmt.Fprintln(a.outW, err)
			return nil, a.fail(stage, err)
		}
		a.enter(stage)
	}

	a.enter(StageSuccess)
	a.logger.Info("🏁 Validation finished.", "documents", len(c.Documents), "edges", g.EdgeCount())
	return &Result{Corpus: c, Graph: g}, nil
}

// parse runs the dependency parser over every document concurrently. Each
// goroutine writes only its own slot, so the result keeps corpus order.
func (a *App) parse(ctx context.Context, c *corpus.Corpus) ([]depparse.Declaration, error) {
	decls := make([]depparse.Declaration, len(c.Documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Corpus.Workers)
	for i, doc := range c.Documents {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			decl, err := a.parser.Parse(doc.Key, doc.Text)
			if err != nil {
				return err
			}
			decls[i] = decl
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return decls, nil
}

func (a *App) checkDependencies(g *dag.Graph, decls []depparse.Declaration) error {
	check := dag.CheckConsistency
	if a.config.Dependencies.AllMismatches {
		check = dag.CollectMismatches
	}
	if err := check(g, decls); err != nil {
		for _, m := range mismatches(err) {
			fmt.Fprintf(a.outW, "Missing requirement from %d to %d!\n", m.RequiredBy, m.Key)
		}
		return a.fail(StageConsistencyChecked, err)
	}
	a.enter(StageConsistencyChecked)

	a.logger.Info("Scanning for possible cycles...")
	if err := dag.CheckCycles(g); err != nil {
		var found *dag.CyclesFoundError
		if errors.As(err, &found) {
			fmt.Fprintln(a.outW, "Found cycles!")
			for _, cycle := range found.Cycles {
				fmt.Fprintln(a.outW, cycle)
			}
		}
		return a.fail(StageCyclesScanned, err)
	}
	fmt.Fprintln(a.outW, "No cycles!")
	a.enter(StageCyclesScanned)
	return nil
}

// mismatches flattens a single or joined mismatch error.
func mismatches(err error) []*dag.DependencyMismatchError {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*dag.DependencyMismatchError
		for _, e := range joined.Unwrap() {
			out = append(out, mismatches(e)...)
		}
		return out
	}
	var m *dag.DependencyMismatchError
	if errors.As(err, &m) {
		return []*dag.DependencyMismatchError{m}
	}
	return nil
}

func (a *App) enter(s Stage) {
	a.logger.Debug("Stage reached.", "stage", s.String())
}

func (a *App) fail(s Stage, err error) error {
	a.logger.Error("Validation failed.", "stage", s.String(), "error", err)
	return &StageError{Stage: s, Err: err}
}
