// Package metrictsp approximates the metric Traveling Salesman Problem
// with Christofides' construction — a provable 1.5× bound on tour cost
// whenever the input satisfies the triangle inequality.
//
// 🚀 What is metrictsp?
//
//	A small, thread-safe, zero-dependency library that composes four
//	classic graph algorithms into one guaranteed pipeline:
//		• Minimum spanning tree: Kruskal or Prim
//		• Minimum-weight perfect matching on the odd-degree vertices
//		• Eulerian circuit extraction: Hierholzer over the composed multigraph
//		• Shortcutting the circuit to a Hamiltonian tour
//
// ✨ Why choose metrictsp?
//
//   - Guarantee first – the result reports whether the metric precondition
//     held, so callers always know if the 1.5 bound is certified
//   - Inspectable – every intermediate artifact (tree, odd set, matching,
//     multigraph, Eulerian walk) rides along on the result for display
//   - Deterministic – sorted iteration and specified tie-breaks make a
//     fixed input reproduce byte-identical tours
//   - Pure Go – no cgo, no hidden deps; only sentinel errors, never panics
//
// Under the hood, everything is organized under two subpackages:
//
//	graph/        — weighted, undirected graph model with strict construction
//	christofides/ — the validation + MST + matching + Euler + shortcut pipeline
//
// Quick ASCII example:
//
//	    A───B          the four-city square with unit sides A─B and C─D,
//	    │ ╳ │          weight-2 remaining pairs: MST weight 4, and the
//	    C───D          pipeline returns tour A→B→D→C→A of weight 6.
//
// Dive into the package documentation of christofides for the pipeline's
// contracts, error taxonomy and complexity notes.
//
//	go get github.com/tourbound/metrictsp
package metrictsp
