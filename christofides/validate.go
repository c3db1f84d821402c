package christofides

import (
	"github.com/tourbound/metrictsp/graph"
)

// metricTol absorbs floating-point noise when a direct edge is compared
// against a two-edge detour.
const metricTol = 1e-9

// checkConnected reports whether every vertex is reachable from the first
// vertex in ID order. Plain BFS with per-call visited state.
// Complexity: O(V + E).
func checkConnected(g *graph.Graph) (bool, error) {
	vertices := g.Vertices()
	if len(vertices) == 0 {
		return false, nil
	}
	visited := make(map[string]bool, len(vertices))
	queue := []string{vertices[0]}
	visited[vertices[0]] = true
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return false, err
		}
		for _, v := range nbrs {
			if !visited[v] {
				visited[v] = true
				queue = append(queue, v)
			}
		}
	}

	return len(visited) == len(vertices), nil
}

// VerifyMetric checks the triangle inequality over every vertex triple of g.
//
// Semantics:
//   - Incomplete graph: Complete = false and Holds = false with no triple
//     scan — missing pairs leave the precondition uncertifiable. The
//     pipeline still runs on such input, substituting shortest-path
//     distances where a direct edge is absent.
//   - Complete graph: every unordered pair (a, c) must satisfy
//     w(a,c) ≤ w(a,b) + w(b,c) + tol for every intermediate b, tol = 1e-9.
//     The first violation in sorted scan order is cited on the report.
//
// A nil graph yields the zero report. Never an error: the metric
// precondition is a warning surfaced on the result, not an abort.
//
// Complexity: O(V³) on complete graphs, O(E) otherwise.
func VerifyMetric(g *graph.Graph) MetricReport {
	if g == nil {
		return MetricReport{}
	}
	rep := MetricReport{Checked: true, Complete: g.Complete()}
	if !rep.Complete {
		return rep
	}

	// Snapshot weights once; the O(V³) scan below then runs lock-free.
	weights := make(map[[2]string]float64, g.EdgeCount())
	for _, e := range g.Edges() {
		weights[[2]string{e.From, e.To}] = e.Weight
	}
	wt := func(u, v string) float64 {
		if u < v {
			return weights[[2]string{u, v}]
		}

		return weights[[2]string{v, u}]
	}

	vertices := g.Vertices()
	n := len(vertices)
	for i := 0; i < n; i++ {
		for k := i + 1; k < n; k++ {
			direct := wt(vertices[i], vertices[k])
			for j := 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				detour := wt(vertices[i], vertices[j]) + wt(vertices[j], vertices[k])
				if direct > detour+metricTol {
					rep.Violation = &Triple{
						A:      vertices[i],
						B:      vertices[j],
						C:      vertices[k],
						Direct: direct,
						Detour: detour,
					}

					return rep
				}
			}
		}
	}
	rep.Holds = true

	return rep
}
