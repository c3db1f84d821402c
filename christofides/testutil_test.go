// Package christofides_test — shared fixtures and helpers for the pipeline
// tests. Policy: fixed seeds, deterministic geometry, helpers fail fast via
// require so broken fixtures never masquerade as algorithm defects.
package christofides_test

import (
	"fmt"
	"math"
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tourbound/metrictsp/graph"
)

// seedDet seeds every random fixture; tests must not depend on run order.
const seedDet = 42

// weightDelta is the tolerance for comparing reported weights, which are
// stabilized to 1e-9 at the API boundary.
const weightDelta = 1e-6

// vid formats a point index as a zero-padded vertex ID so lexicographic
// order matches numeric order for up to 100 vertices.
func vid(i int) string { return fmt.Sprintf("%02d", i) }

// buildFourCity returns the complete metric 4-vertex instance
// AB=1, BC=2, CD=1, DA=2, AC=2, BD=2. MST weight 4; the pipeline's tour
// weighs 6 — exactly the 1.5×MST ceiling.
func buildFourCity(t testing.TB) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 1},
		{From: "D", To: "A", Weight: 2},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "D", Weight: 2},
	} {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// buildSixCity returns the complete metric 6-vertex instance with MST
// weight 17, odd set {0,1,2,5}, optimal matching {0–2, 1–5} of weight 9 and
// tour weight 24.
func buildSixCity(t testing.TB) *graph.Graph {
	t.Helper()
	weights := [][3]int{
		{0, 1, 4}, {0, 2, 3}, {0, 3, 5}, {0, 4, 6}, {0, 5, 5},
		{1, 2, 5}, {1, 3, 7}, {1, 4, 8}, {1, 5, 6},
		{2, 3, 5}, {2, 4, 7}, {2, 5, 6},
		{3, 4, 3}, {3, 5, 4},
		{4, 5, 2},
	}
	g := graph.New()
	for _, w := range weights {
		require.NoError(t, g.AddEdge(fmt.Sprint(w[0]), fmt.Sprint(w[1]), float64(w[2])))
	}

	return g
}

// buildNonMetricTriangle returns a complete 3-vertex graph where the direct
// edge A–B (10) exceeds the detour through C (1+1).
func buildNonMetricTriangle(t testing.TB) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 10))
	require.NoError(t, g.AddEdge("A", "C", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	return g
}

// buildPathABC returns the connected but incomplete path A–B–C with unit
// weights; the pair (A, C) has no direct edge.
func buildPathABC(t testing.TB) *graph.Graph {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))

	return g
}

// buildTwoIslands returns two disjoint triangles — a disconnected graph.
func buildTwoIslands(t testing.TB) *graph.Graph {
	t.Helper()
	g := graph.New()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}
	for _, e := range [][2]string{{"X", "Y"}, {"Y", "Z"}, {"X", "Z"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	return g
}

// euclidGraph builds the complete graph over pts with Euclidean weights.
// Euclidean distances satisfy the triangle inequality, so these instances
// always pass the metric check.
func euclidGraph(t testing.TB, pts [][2]float64) *graph.Graph {
	t.Helper()
	g := graph.New()
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			d := math.Hypot(pts[i][0]-pts[j][0], pts[i][1]-pts[j][1])
			require.NoError(t, g.AddEdge(vid(i), vid(j), d))
		}
	}

	return g
}

// rippleCircle places n points on a deterministically rippled unit circle,
// avoiding degenerate equal distances.
func rippleCircle(n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := 0; i < n; i++ {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1.0 + 0.02*float64((i*5)%7)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}

// randomPoints draws n points from the unit square using the given rng.
func randomPoints(rng *rand.Rand, n int) [][2]float64 {
	pts := make([][2]float64, n)
	for i := range pts {
		pts[i] = [2]float64{rng.Float64(), rng.Float64()}
	}

	return pts
}

// requireValidTour asserts the closed-tour shape: length |V|+1, closure,
// every graph vertex exactly once.
func requireValidTour(t *testing.T, g *graph.Graph, tour []string) {
	t.Helper()
	n := g.VertexCount()
	require.Len(t, tour, n+1)
	require.Equal(t, tour[0], tour[n], "tour must close")
	seen := make(map[string]bool, n)
	for _, v := range tour[:n] {
		require.True(t, g.HasVertex(v), "tour visits unknown vertex %q", v)
		require.False(t, seen[v], "tour repeats vertex %q", v)
		seen[v] = true
	}
}

// permute invokes visit for every permutation of ids (in-place swaps).
func permute(ids []string, k int, visit func([]string)) {
	if k == len(ids) {
		visit(ids)

		return
	}
	for i := k; i < len(ids); i++ {
		ids[k], ids[i] = ids[i], ids[k]
		permute(ids, k+1, visit)
		ids[k], ids[i] = ids[i], ids[k]
	}
}

// bruteForceTourWeight returns the optimal closed-tour weight of a complete
// graph by enumerating all permutations with a fixed first vertex.
// Feasible for |V| ≤ 8.
func bruteForceTourWeight(t *testing.T, g *graph.Graph) float64 {
	t.Helper()
	vertices := g.Vertices()
	require.GreaterOrEqual(t, len(vertices), 3)
	rest := append([]string(nil), vertices[1:]...)
	best := math.Inf(1)
	permute(rest, 0, func(p []string) {
		total := 0.0
		prev := vertices[0]
		for _, v := range p {
			w, err := g.Weight(prev, v)
			require.NoError(t, err)
			total += w
			prev = v
		}
		closing, err := g.Weight(prev, vertices[0])
		require.NoError(t, err)
		total += closing
		if total < best {
			best = total
		}
	})

	return best
}

// bruteForceMSTWeight returns the minimum spanning weight by enumerating
// every (|V|−1)-edge subset and keeping the cheapest one that connects all
// vertices. Independent of the production MST code; feasible for small E.
func bruteForceMSTWeight(t *testing.T, g *graph.Graph) float64 {
	t.Helper()
	edges := g.Edges()
	vertices := g.Vertices()
	n := len(vertices)
	require.LessOrEqual(t, len(edges), 16, "brute force explodes beyond 16 edges")
	idx := make(map[string]int, n)
	for i, v := range vertices {
		idx[v] = i
	}

	best := math.Inf(1)
	for mask := 0; mask < 1<<uint(len(edges)); mask++ {
		if bits.OnesCount(uint(mask)) != n-1 {
			continue
		}
		parent := make([]int, n)
		for i := range parent {
			parent[i] = i
		}
		find := func(x int) int {
			for parent[x] != x {
				parent[x] = parent[parent[x]]
				x = parent[x]
			}

			return x
		}
		weight := 0.0
		components := n
		for i, e := range edges {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			weight += e.Weight
			if ru, rv := find(idx[e.From]), find(idx[e.To]); ru != rv {
				parent[ru] = rv
				components--
			}
		}
		if components == 1 && weight < best {
			best = weight
		}
	}

	return best
}

// enumerateMatchingWeights returns the total weight of every perfect
// matching of ids under dist. Exponential; callers keep |ids| ≤ 6.
func enumerateMatchingWeights(ids []string, dist func(u, v string) float64) []float64 {
	if len(ids) == 0 {
		return []float64{0}
	}
	u := ids[0]
	rest := ids[1:]
	var totals []float64
	for i, v := range rest {
		others := make([]string, 0, len(rest)-1)
		others = append(others, rest[:i]...)
		others = append(others, rest[i+1:]...)
		for _, sub := range enumerateMatchingWeights(others, dist) {
			totals = append(totals, dist(u, v)+sub)
		}
	}

	return totals
}
