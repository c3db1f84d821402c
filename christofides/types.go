// Package christofides defines the pipeline's configuration surface,
// result types and sentinel errors.
package christofides

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by the pipeline.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was supplied.
	ErrNilGraph = errors.New("christofides: graph is nil")

	// ErrTooFewVertices indicates a graph with fewer than two vertices,
	// on which no closed tour is defined.
	ErrTooFewVertices = errors.New("christofides: at least two vertices required")

	// ErrStartVertexNotFound indicates that the configured start vertex does
	// not exist in the graph.
	ErrStartVertexNotFound = errors.New("christofides: start vertex not found")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("christofides: invalid option supplied")

	// ErrNotConnected indicates that the graph fails the connectivity
	// precondition; the pipeline aborts before any MST work.
	ErrNotConnected = errors.New("christofides: graph is not connected")

	// ErrNoPath indicates that no path exists between two vertices whose
	// effective distance was required (possible only on disconnected input
	// reaching a stage function directly).
	ErrNoPath = errors.New("christofides: no path between vertices")

	// ErrInternalConsistency indicates a postcondition failure inside the
	// pipeline: odd-set parity, even-degree composition, circuit closure or
	// tour length. It reports a defect, not bad input, and is never retried.
	ErrInternalConsistency = errors.New("christofides: internal consistency violation")
)

// MSTMethod selects the spanning-tree algorithm.
type MSTMethod string

const (
	// MSTKruskal sorts all edges and merges components via union-find.
	MSTKruskal MSTMethod = "kruskal"

	// MSTPrim grows the tree from the smallest vertex ID via a min-heap.
	MSTPrim MSTMethod = "prim"
)

// MatchingMethod selects the perfect-matching strategy.
type MatchingMethod string

const (
	// MatchExact runs the optimal bitmask dynamic program. Above
	// MaxExactMatching odd vertices it degrades to the greedy strategy
	// (recorded on Matching.Exact).
	MatchExact MatchingMethod = "exact"

	// MatchGreedy pairs the smallest unmatched vertex with its nearest
	// remaining partner.
	MatchGreedy MatchingMethod = "greedy"
)

// Options configures a pipeline run. Use DefaultOptions and the With*
// functional options; zero values of the method fields are invalid.
type Options struct {
	// Ctx allows cancellation and deadlines, checked between stages.
	Ctx context.Context

	// Start is the tour's first and last vertex. Empty selects the
	// smallest vertex ID.
	Start string

	// MST selects the spanning-tree algorithm.
	MST MSTMethod

	// Matching selects the perfect-matching strategy.
	Matching MatchingMethod

	// MetricCheck controls triangle-inequality verification. When false,
	// no triples are inspected and Result.Metric.Checked is false.
	MetricCheck bool
}

// Option configures a Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns the canonical configuration:
//   - Ctx:         context.Background() (no cancellation)
//   - Start:       "" (smallest vertex ID)
//   - MST:         MSTKruskal
//   - Matching:    MatchExact
//   - MetricCheck: true
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Start:       "",
		MST:         MSTKruskal,
		Matching:    MatchExact,
		MetricCheck: true,
	}
}

// WithContext sets a custom context for cooperative cancellation.
// Nil contexts are ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStart fixes the tour's start (and closing) vertex.
// The vertex must exist in the graph; Run rejects unknown IDs with
// ErrStartVertexNotFound.
func WithStart(id string) Option {
	return func(o *Options) {
		o.Start = id
	}
}

// WithMST selects the spanning-tree algorithm (MSTKruskal or MSTPrim).
func WithMST(m MSTMethod) Option {
	return func(o *Options) {
		o.MST = m
	}
}

// WithMatching selects the matching strategy (MatchExact or MatchGreedy).
func WithMatching(m MatchingMethod) Option {
	return func(o *Options) {
		o.Matching = m
	}
}

// WithMetricCheck enables or disables triangle-inequality verification.
// Disabling skips the O(V³) scan; the result then carries
// Metric.Checked = false and the 1.5 bound is not certified.
func WithMetricCheck(enabled bool) Option {
	return func(o *Options) {
		o.MetricCheck = enabled
	}
}

// validateOptions rejects unknown method values with ErrOptionViolation.
func validateOptions(o Options) error {
	switch o.MST {
	case MSTKruskal, MSTPrim:
	default:
		return fmt.Errorf("%w: unknown MST method %q", ErrOptionViolation, o.MST)
	}
	switch o.Matching {
	case MatchExact, MatchGreedy:
	default:
		return fmt.Errorf("%w: unknown matching method %q", ErrOptionViolation, o.Matching)
	}

	return nil
}

// Triple cites a triangle-inequality violation: the direct edge A–C weighs
// more than the detour through B.
type Triple struct {
	A, B, C string  // the violating vertices
	Direct  float64 // weight(A, C)
	Detour  float64 // weight(A, B) + weight(B, C)
}

// MetricReport describes the outcome of the metric precondition check.
//
// Holds is the pipeline's metric flag: true only when the check ran, the
// graph is complete and no triple violates the triangle inequality. The
// 1.5-approximation guarantee is certified exactly in that case.
type MetricReport struct {
	Checked   bool    // false when skipped via WithMetricCheck(false)
	Complete  bool    // every unordered vertex pair has a direct edge
	Holds     bool    // triangle inequality verified over all triples
	Violation *Triple // first violating triple in scan order; nil when none
}

// Stages carries the intermediate artifact of every pipeline stage so an
// interactive caller can render or audit each step.
type Stages struct {
	Tree            SpanningTree // stage 2: minimum spanning tree
	OddVertices     []string     // stage 3: odd-degree vertices, ascending
	Matching        Matching     // stage 4: perfect matching on the odd set
	Multigraph      *Multigraph  // stage 5: tree ∪ matching edge instances
	EulerianCircuit []string     // stage 6: closed walk over all instances
}

// Result is the outcome of one pipeline run.
type Result struct {
	// Tour is the closed Hamiltonian tour: length |V|+1, first and last
	// element equal to the start vertex, orientation canonicalized so the
	// second vertex is the smaller of the start's two tour neighbors.
	Tour []string

	// TourWeight is the tour's total weight over the input graph, with
	// shortest-path substitution for pairs lacking a direct edge.
	// Stabilized to 1e-9.
	TourWeight float64

	// MSTWeight is the spanning tree's total weight, a lower bound on the
	// optimal tour weight. Stabilized to 1e-9.
	MSTWeight float64

	// Metric reports the triangle-inequality precondition; Metric.Holds
	// gates the 1.5-approximation guarantee.
	Metric MetricReport

	// Stages holds every intermediate artifact.
	Stages Stages
}
