package christofides

import "fmt"

// ShortcutToHamiltonian reduces an Eulerian circuit to a Hamiltonian tour:
// every vertex is emitted the first time it is seen, repeats are skipped,
// and the tour closes back to its first vertex. n is the vertex count of
// the underlying graph.
//
// Postconditions (ErrInternalConsistency on violation): the input closes,
// and the output has length n+1 with each vertex exactly once plus the
// closing repeat. Feeding an already-Hamiltonian cycle returns it
// unchanged. Complexity: O(len(circuit)).
func ShortcutToHamiltonian(circuit []string, n int) ([]string, error) {
	if len(circuit) == 0 {
		return nil, fmt.Errorf("%w: empty eulerian circuit", ErrInternalConsistency)
	}
	if circuit[0] != circuit[len(circuit)-1] {
		return nil, fmt.Errorf("%w: eulerian circuit does not close", ErrInternalConsistency)
	}

	seen := make(map[string]bool, n)
	tour := make([]string, 0, n+1)
	for _, v := range circuit {
		if seen[v] {
			continue
		}
		seen[v] = true
		tour = append(tour, v)
	}
	if len(tour) != n {
		return nil, fmt.Errorf("%w: tour covers %d of %d vertices", ErrInternalConsistency, len(tour), n)
	}
	tour = append(tour, tour[0])

	return tour, nil
}

// canonicalizeTour picks one of the two traversal directions of a closed
// tour: when the vertex after the start exceeds the vertex before it, the
// interior reverses in place. Both directions of one cycle therefore
// normalize to identical output. No-op for tours of fewer than three
// distinct vertices.
func canonicalizeTour(tour []string) {
	n := len(tour) - 1 // distinct vertices; tour[n] repeats tour[0]
	if n < 3 {
		return
	}
	if tour[1] > tour[n-1] {
		for i, j := 1, n-1; i < j; i, j = i+1, j-1 {
			tour[i], tour[j] = tour[j], tour[i]
		}
	}
}
