// Package graph provides the weighted, undirected graph model consumed by
// the christofides pipeline.
//
// What it models:
//
//   - Vertices are opaque, non-empty string identifiers, unique per graph.
//   - Edges are unordered pairs of distinct vertices with a finite,
//     non-negative float64 weight. The graph is simple: at most one edge
//     per pair, no self-loops. Undirectedness is structural — an edge is
//     stored once under its canonical (From < To) orientation, so weights
//     cannot drift out of symmetry.
//
// Construction is strict: AddEdge rejects loops, duplicate pairs, negative
// weights and non-finite weights with sentinel errors, so a successfully
// built Graph always satisfies the pipeline's input invariants (connectivity
// excepted — that is a per-run check performed by the pipeline itself).
//
// Concurrency: a Graph guards its state with a sync.RWMutex. Concurrent
// readers are safe; mutation is expected to finish before a graph is handed
// to a pipeline run, which only reads.
//
// Determinism: Vertices, Edges, Neighbors and NeighborIDs return their
// results in sorted order, so algorithms iterating the graph are reproducible
// for a fixed input.
package graph
