package christofides

import (
	"fmt"
	"sort"
)

// OddVertices returns the vertices of odd degree in the tree, ascending.
//
// By the handshake lemma the result always has even cardinality. That is an
// enforced invariant, not an expectation: violation cannot arise from user
// input and is reported as ErrInternalConsistency. A tree always has at
// least two leaves, so the pipeline never sees an empty odd set; the
// matcher still accepts one (see MinWeightPerfectMatching).
//
// The selector reads only the explicit edge list — no graph state.
// Complexity: O(V + E).
func OddVertices(t SpanningTree) ([]string, error) {
	degree := make(map[string]int, len(t.Edges)+1)
	for _, e := range t.Edges {
		degree[e.From]++
		degree[e.To]++
	}
	odd := make([]string, 0, len(degree))
	for v, d := range degree {
		if d&1 == 1 {
			odd = append(odd, v)
		}
	}
	sort.Strings(odd)
	if len(odd)&1 == 1 {
		return nil, fmt.Errorf("%w: odd-degree set has odd cardinality %d", ErrInternalConsistency, len(odd))
	}

	return odd, nil
}
