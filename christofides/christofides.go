package christofides

import (
	"context"
	"fmt"

	"github.com/tourbound/metrictsp/graph"
)

// Run executes the full pipeline on g and assembles the Result. The input
// graph is only read; see the package documentation for the stage sequence
// and the approximation guarantee.
//
// Validation order: nil graph (ErrNilGraph), vertex count
// (ErrTooFewVertices), options (ErrOptionViolation), start vertex
// (ErrStartVertexNotFound), connectivity (ErrNotConnected). Only then do
// the stages run; the metric precondition is a flag on the result, never an
// abort. Options.Ctx is consulted between stages, and a done context stops
// the run with its error.
//
// On any error the returned Result is zero — no partial stage output leaks.
func Run(g *graph.Graph, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if g == nil {
		return Result{}, ErrNilGraph
	}
	n := g.VertexCount()
	if n < 2 {
		return Result{}, ErrTooFewVertices
	}
	if err := validateOptions(o); err != nil {
		return Result{}, err
	}
	start := o.Start
	if start == "" {
		start = g.Vertices()[0]
	} else if !g.HasVertex(start) {
		return Result{}, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	// Connectivity is the hard precondition: an MST does not exist without
	// it, so the run aborts before any tree work.
	connected, err := checkConnected(g)
	if err != nil {
		return Result{}, err
	}
	if !connected {
		return Result{}, ErrNotConnected
	}
	if err = cancelled(o.Ctx); err != nil {
		return Result{}, err
	}

	// The metric precondition is soft: a violation voids the 1.5 bound but
	// never stops the pipeline.
	var metric MetricReport
	if o.MetricCheck {
		metric = VerifyMetric(g)
	}
	if err = cancelled(o.Ctx); err != nil {
		return Result{}, err
	}

	tree, err := MinimumSpanningTree(g, o.MST)
	if err != nil {
		return Result{}, err
	}
	if err = cancelled(o.Ctx); err != nil {
		return Result{}, err
	}

	odd, err := OddVertices(tree)
	if err != nil {
		return Result{}, err
	}
	if err = cancelled(o.Ctx); err != nil {
		return Result{}, err
	}

	// One shortest-path cache serves matching, composition and tour cost.
	solver := newPathSolver(g)

	matching, err := minWeightMatching(g, odd, o.Matching, solver)
	if err != nil {
		return Result{}, err
	}
	if err = cancelled(o.Ctx); err != nil {
		return Result{}, err
	}

	mg, err := composeMultigraph(g, tree, matching, solver)
	if err != nil {
		return Result{}, err
	}
	if err = cancelled(o.Ctx); err != nil {
		return Result{}, err
	}

	circuit, err := EulerianCircuit(mg, start)
	if err != nil {
		return Result{}, err
	}
	if err = cancelled(o.Ctx); err != nil {
		return Result{}, err
	}

	tour, err := ShortcutToHamiltonian(circuit, n)
	if err != nil {
		return Result{}, err
	}
	canonicalizeTour(tour)

	weight, err := tourWeight(tour, solver)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Tour:       tour,
		TourWeight: weight,
		MSTWeight:  tree.Weight,
		Metric:     metric,
		Stages: Stages{
			Tree:            tree,
			OddVertices:     odd,
			Matching:        matching,
			Multigraph:      mg,
			EulerianCircuit: circuit,
		},
	}, nil
}

// cancelled reports the context's error once it is done. A nil context
// means cancellation was never requested.
func cancelled(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
