package christofides

import (
	"fmt"
	"math"

	"github.com/tourbound/metrictsp/graph"
)

// roundScale stabilizes reported totals to 1e-9, keeping accumulated float
// noise out of comparisons and displayed weights.
const roundScale = 1e9

// round1e9 rounds x to the nearest 1e-9.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourWeight sums the consecutive-pair weights of a closed tour over g.
// Pairs without a direct edge resolve to their shortest-path distance, the
// same substitution rule the matcher uses.
//
// The tour must close (first == last); ErrInternalConsistency otherwise.
// An unreachable pair yields ErrNoPath. The total is stabilized to 1e-9.
// Complexity: O(len(tour)) on complete graphs, plus Dijkstra passes for
// vertices with substituted pairs otherwise.
func TourWeight(g *graph.Graph, tour []string) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}

	return tourWeight(tour, newPathSolver(g))
}

// tourWeight is the solver-sharing core of TourWeight.
func tourWeight(tour []string, solver *pathSolver) (float64, error) {
	if len(tour) < 2 {
		return 0, fmt.Errorf("%w: tour of length %d cannot close", ErrInternalConsistency, len(tour))
	}
	if tour[0] != tour[len(tour)-1] {
		return 0, fmt.Errorf("%w: tour does not close", ErrInternalConsistency)
	}

	var total float64
	for i := 1; i < len(tour); i++ {
		d, err := solver.distance(tour[i-1], tour[i])
		if err != nil {
			return 0, err
		}
		total += d
	}

	return round1e9(total), nil
}
