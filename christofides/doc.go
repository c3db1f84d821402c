// Package christofides implements the Christofides construction: a
// 1.5-approximation for the metric Traveling Salesman Problem on an
// undirected, weighted graph.
//
// Pipeline (Run orchestrates; every stage is also exported on its own):
//
//  1. Validation — connectivity is a hard precondition; the triangle
//     inequality is a soft one, reported on the result rather than enforced.
//  2. Minimum spanning tree — Kruskal (default) or Prim.
//  3. Odd vertices — the tree's odd-degree vertices; always an even set.
//  4. Matching — minimum-weight perfect matching on the odd set: exact
//     bitmask DP up to MaxExactMatching vertices, greedy pairing beyond.
//  5. Composition — tree ∪ matching as a multigraph; every degree even.
//  6. Eulerian circuit — Hierholzer's walk consuming each edge instance once.
//  7. Shortcut — first-visit reduction of the circuit to a Hamiltonian tour.
//
// Guarantee: when the input graph is complete and satisfies the triangle
// inequality, the returned tour weighs at most 1.5× the optimal tour. The
// MST weight is reported alongside as a lower bound on that optimum.
// Result.Metric records whether the precondition was verified; a violated or
// unverifiable precondition never aborts the run, it only voids the bound.
//
// Incomplete graphs: pairs without a direct edge resolve to their
// shortest-path distance — in the matching weights, in the composed
// multigraph (the pair expands along its path) and in the tour weight.
// Result.Metric.Complete = false tags such runs as uncertified.
//
// Errors are sentinel values matched with errors.Is. Bad input surfaces as
// ErrNilGraph, ErrTooFewVertices, ErrStartVertexNotFound, ErrOptionViolation,
// ErrNotConnected or ErrNoPath before any stage output is produced. A
// postcondition failure inside the pipeline (odd-set parity, even-degree
// composition, circuit closure, tour length) is reported as
// ErrInternalConsistency — a defect, deterministic and non-retryable. The
// package never logs and never panics on user input.
//
// Concurrency: a run is single-threaded and keeps all intermediate state
// per invocation, so concurrent runs — even on one shared graph, which is
// only read — cannot interfere. Long runs are abandoned cooperatively via
// WithContext; cancellation is observed between stages.
//
// Complexity: O(V³) for the metric check on complete graphs, O(E log V) for
// the MST, O(2^k·k²) for the exact matching on k odd vertices (k ≤ 20),
// O(V+E) for composition, circuit and shortcut.
package christofides
