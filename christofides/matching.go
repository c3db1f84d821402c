package christofides

import (
	"fmt"
	"math"
	"math/bits"
	"sort"

	"github.com/tourbound/metrictsp/graph"
)

// MaxExactMatching is the largest odd-set size the exact matcher accepts:
// its DP table is O(2^k), so 20 vertices keep it around a million states.
// Larger sets degrade to the greedy strategy.
const MaxExactMatching = 20

// Matching is the perfect-matching artifact over the odd-degree set.
type Matching struct {
	// Pairs holds one edge per matched pair, From < To, ordered by From.
	// Each pair's Weight is its effective distance: the direct edge when
	// the pair is adjacent, the shortest-path distance otherwise.
	Pairs []graph.Edge

	// Weight is the total effective weight, stabilized to 1e-9.
	Weight float64

	// Exact reports whether the optimal DP produced the matching. False
	// for the greedy strategy, whether selected or degraded to.
	Exact bool
}

// MinWeightPerfectMatching pairs up subset over the complete subgraph it
// induces in g. Pair weights follow the substitution rule: the direct edge
// weight when adjacent, the shortest-path distance otherwise.
//
// Strategies:
//   - MatchExact — bitmask dynamic program, optimal, O(2^k·k²) for
//     k = |subset|; applied when k ≤ MaxExactMatching, greedy beyond.
//   - MatchGreedy — the smallest unmatched vertex takes its nearest
//     remaining partner (distance, then ID on ties), O(k²).
//
// Edge cases: an empty subset yields an empty Matching and no error (the
// tree alone is already Eulerian in that hypothetical). An odd-sized or
// duplicated subset is an upstream defect (ErrInternalConsistency) — the
// selector guarantees even, distinct vertices. Unreachable pairs yield
// ErrNoPath.
func MinWeightPerfectMatching(g *graph.Graph, subset []string, method MatchingMethod) (Matching, error) {
	if g == nil {
		return Matching{}, ErrNilGraph
	}
	switch method {
	case MatchExact, MatchGreedy:
	default:
		return Matching{}, fmt.Errorf("%w: unknown matching method %q", ErrOptionViolation, method)
	}

	return minWeightMatching(g, subset, method, newPathSolver(g))
}

// minWeightMatching is the solver-sharing core of MinWeightPerfectMatching.
func minWeightMatching(g *graph.Graph, subset []string, method MatchingMethod, solver *pathSolver) (Matching, error) {
	if len(subset) == 0 {
		return Matching{Exact: method == MatchExact}, nil
	}
	if len(subset)&1 == 1 {
		return Matching{}, fmt.Errorf("%w: matching subset has odd size %d", ErrInternalConsistency, len(subset))
	}

	ids := append([]string(nil), subset...)
	sort.Strings(ids) // index order is deterministic regardless of caller order
	for i, id := range ids {
		if !g.HasVertex(id) {
			return Matching{}, fmt.Errorf("%w: %q", graph.ErrVertexNotFound, id)
		}
		if i > 0 && ids[i-1] == id {
			return Matching{}, fmt.Errorf("%w: duplicate vertex %q in matching subset", ErrInternalConsistency, id)
		}
	}

	dist, err := effectiveDistances(ids, solver)
	if err != nil {
		return Matching{}, err
	}
	if method == MatchExact && len(ids) <= MaxExactMatching {
		return exactMatching(ids, dist), nil
	}

	return greedyMatching(ids, dist)
}

// effectiveDistances builds the induced complete-subgraph weight matrix for
// ids under the substitution rule. O(k²) lookups; at most k Dijkstra passes
// on incomplete graphs, none on complete ones.
func effectiveDistances(ids []string, solver *pathSolver) ([][]float64, error) {
	k := len(ids)
	dist := make([][]float64, k)
	for i := range dist {
		dist[i] = make([]float64, k)
	}
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			d, err := solver.distance(ids[i], ids[j])
			if err != nil {
				return nil, err
			}
			dist[i][j] = d
			dist[j][i] = d
		}
	}

	return dist, nil
}

// exactMatching solves minimum-weight perfect matching by dynamic
// programming over vertex subsets: f[mask] is the cheapest pairing of the
// vertices in mask. The lowest set bit is always matched first, which
// prunes symmetric states and fixes the reconstruction order. Ties resolve
// to the lowest partner index, so the result is deterministic.
//
// Complexity: O(2^k·k²) time, O(2^k) space. Caller bounds k.
func exactMatching(ids []string, dist [][]float64) Matching {
	k := len(ids)
	size := 1 << uint(k)
	f := make([]float64, size)
	choice := make([]int8, size) // partner of the lowest set bit; k ≤ 20 fits
	for mask := 1; mask < size; mask++ {
		f[mask] = math.Inf(1)
		choice[mask] = -1
	}

	for mask := 1; mask < size; mask++ {
		if bits.OnesCount(uint(mask))&1 == 1 {
			continue // odd masks can never be perfectly paired
		}
		i := bits.TrailingZeros(uint(mask))
		rest := mask &^ (1 << uint(i))
		for j := i + 1; j < k; j++ {
			if rest&(1<<uint(j)) == 0 {
				continue
			}
			if cand := f[rest&^(1<<uint(j))] + dist[i][j]; cand < f[mask] {
				f[mask] = cand
				choice[mask] = int8(j)
			}
		}
	}

	m := Matching{Pairs: make([]graph.Edge, 0, k/2), Exact: true}
	var total float64
	for mask := size - 1; mask != 0; {
		i := bits.TrailingZeros(uint(mask))
		j := int(choice[mask])
		m.Pairs = append(m.Pairs, graph.Edge{From: ids[i], To: ids[j], Weight: dist[i][j]})
		total += dist[i][j]
		mask &^= (1 << uint(i)) | (1 << uint(j))
	}
	m.Weight = round1e9(total)

	return m
}

// greedyMatching pairs the smallest unmatched vertex with its cheapest
// remaining partner; equal distances resolve to the smaller ID. Used above
// the exact DP's size ceiling or when selected outright. Complexity: O(k²).
func greedyMatching(ids []string, dist [][]float64) (Matching, error) {
	k := len(ids)
	used := make([]bool, k)
	m := Matching{Pairs: make([]graph.Edge, 0, k/2)}
	var total float64
	for i := 0; i < k; i++ {
		if used[i] {
			continue
		}
		best := -1
		for j := i + 1; j < k; j++ {
			if used[j] {
				continue
			}
			if best == -1 || dist[i][j] < dist[i][best] {
				best = j
			}
		}
		if best == -1 {
			return Matching{}, fmt.Errorf("%w: greedy matching left %q unpaired", ErrInternalConsistency, ids[i])
		}
		used[i], used[best] = true, true
		m.Pairs = append(m.Pairs, graph.Edge{From: ids[i], To: ids[best], Weight: dist[i][best]})
		total += dist[i][best]
	}
	m.Weight = round1e9(total)

	return m, nil
}
