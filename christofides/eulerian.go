package christofides

import (
	"fmt"
)

// EulerianCircuit extracts a closed walk consuming every edge instance of
// mg exactly once, starting and ending at start — Hierholzer's algorithm:
// the current trail extends until it sticks, and the circuits found while
// backtracking splice in at their branch vertices.
//
// Instance bookkeeping makes "exactly once" literal: each parallel instance
// carries its own number, is marked used the moment it is traversed, and a
// per-vertex cursor skips spent instances so the walk stays O(V + E).
//
// Preconditions are those the composer guarantees — all degrees even and
// every instance reachable from start — and they are verified here, because
// a violation is an upstream defect (ErrInternalConsistency), never user
// input. A missing start vertex yields ErrStartVertexNotFound; an empty
// multigraph degenerates to the single-vertex closed walk [start].
//
// Determinism: instances are taken in insertion order at every vertex.
func EulerianCircuit(mg *Multigraph, start string) ([]string, error) {
	if mg == nil {
		return nil, fmt.Errorf("%w: nil multigraph", ErrInternalConsistency)
	}
	si, ok := mg.index[start]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if v := mg.oddDegreeVertex(); v != "" {
		return nil, fmt.Errorf("%w: vertex %q has odd degree", ErrInternalConsistency, v)
	}
	if len(mg.inst) == 0 {
		return []string{start}, nil
	}

	used := make([]bool, len(mg.inst))
	cursor := make([]int, len(mg.order))
	stack := []int{si}
	circuit := make([]int, 0, len(mg.inst)+1)
	consumed := 0
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		// Advance past instances spent by walks through the twin half.
		for cursor[u] < len(mg.adj[u]) && used[mg.adj[u][cursor[u]].inst] {
			cursor[u]++
		}
		if cursor[u] == len(mg.adj[u]) {
			// Stuck: u joins the circuit; its sub-circuit splices in as the
			// stack unwinds.
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]

			continue
		}
		half := mg.adj[u][cursor[u]]
		used[half.inst] = true
		consumed++
		stack = append(stack, half.to)
	}

	if consumed != len(mg.inst) {
		return nil, fmt.Errorf("%w: eulerian walk consumed %d of %d edge instances",
			ErrInternalConsistency, consumed, len(mg.inst))
	}
	if circuit[0] != circuit[len(circuit)-1] {
		return nil, fmt.Errorf("%w: eulerian walk does not close", ErrInternalConsistency)
	}

	walk := make([]string, len(circuit))
	for i, vi := range circuit {
		walk[i] = mg.order[vi]
	}

	return walk, nil
}
