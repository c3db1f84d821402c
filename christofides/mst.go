package christofides

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/tourbound/metrictsp/graph"
)

// SpanningTree is the MST artifact: |V|−1 edges in the order the method
// selected them, plus their total weight stabilized to 1e-9.
type SpanningTree struct {
	Edges  []graph.Edge
	Weight float64
}

// MinimumSpanningTree computes a minimum spanning tree of g with the
// selected method.
//
// Determinism: Kruskal stable-sorts the canonical edge enumeration by
// weight, so equal weights keep their (From, To) order; Prim roots at the
// smallest vertex ID and breaks equal-weight heap entries by (To, From).
// Both methods yield the true MST weight; the edge sets may legally differ
// between methods on ties, never between runs of one method.
//
// Errors:
//   - ErrNilGraph        — g is nil.
//   - ErrTooFewVertices  — fewer than two vertices.
//   - ErrOptionViolation — unknown method.
//   - ErrNotConnected    — no spanning tree covers all vertices.
//
// Complexity: O(E log E) for Kruskal, O(E log V) for Prim.
func MinimumSpanningTree(g *graph.Graph, method MSTMethod) (SpanningTree, error) {
	if g == nil {
		return SpanningTree{}, ErrNilGraph
	}
	if g.VertexCount() < 2 {
		return SpanningTree{}, ErrTooFewVertices
	}
	switch method {
	case MSTKruskal:
		return kruskalMST(g)
	case MSTPrim:
		return primMST(g, g.Vertices()[0])
	default:
		return SpanningTree{}, fmt.Errorf("%w: unknown MST method %q", ErrOptionViolation, method)
	}
}

// kruskalMST sorts edges by weight and merges components via a disjoint-set
// forest with path compression and union by rank.
func kruskalMST(g *graph.Graph) (SpanningTree, error) {
	vertices := g.Vertices()
	edges := g.Edges()
	// Stable sort keeps the canonical (From, To) order between equal weights.
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Weight < edges[j].Weight })

	parent := make(map[string]string, len(vertices))
	rank := make(map[string]int, len(vertices))
	for _, v := range vertices {
		parent[v] = v
		rank[v] = 0
	}
	// Iterative find with path compression.
	find := func(u string) string {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v string) {
		rootU, rootV := find(u), find(v)
		if rootU == rootV {
			return
		}
		if rank[rootU] < rank[rootV] {
			parent[rootU] = rootV
		} else {
			parent[rootV] = rootU
			if rank[rootU] == rank[rootV] {
				rank[rootU]++
			}
		}
	}

	tree := SpanningTree{Edges: make([]graph.Edge, 0, len(vertices)-1)}
	var total float64
	for _, e := range edges {
		if find(e.From) == find(e.To) {
			continue // would close a cycle
		}
		union(e.From, e.To)
		tree.Edges = append(tree.Edges, e)
		total += e.Weight
		if len(tree.Edges) == len(vertices)-1 {
			break
		}
	}
	if len(tree.Edges) < len(vertices)-1 {
		return SpanningTree{}, ErrNotConnected
	}
	tree.Weight = round1e9(total)

	return tree, nil
}

// primMST grows the tree from root, always taking the cheapest edge that
// leaves the visited set (min-heap with stale-entry skipping).
func primMST(g *graph.Graph, root string) (SpanningTree, error) {
	vertices := g.Vertices()
	n := len(vertices)
	visited := make(map[string]bool, n)
	tree := SpanningTree{Edges: make([]graph.Edge, 0, n-1)}
	var total float64

	pq := make(edgePQ, 0, n)
	heap.Init(&pq)
	// push enqueues every frontier edge leaving from.
	push := func(from string) error {
		nbrs, err := g.Neighbors(from)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			if !visited[e.To] {
				heap.Push(&pq, e)
			}
		}

		return nil
	}

	visited[root] = true
	if err := push(root); err != nil {
		return SpanningTree{}, err
	}
	for pq.Len() > 0 && len(tree.Edges) < n-1 {
		e := heap.Pop(&pq).(graph.Edge)
		if visited[e.To] {
			continue // stale entry; both endpoints already in the tree
		}
		visited[e.To] = true
		tree.Edges = append(tree.Edges, canonical(e))
		total += e.Weight
		if err := push(e.To); err != nil {
			return SpanningTree{}, err
		}
	}
	if len(tree.Edges) < n-1 {
		return SpanningTree{}, ErrNotConnected
	}
	tree.Weight = round1e9(total)

	return tree, nil
}

// canonical returns e oriented From < To.
func canonical(e graph.Edge) graph.Edge {
	if e.From > e.To {
		e.From, e.To = e.To, e.From
	}

	return e
}

// edgePQ is a min-heap of candidate edges ordered by (Weight, To, From) so
// equal-weight frontiers pop deterministically.
type edgePQ []graph.Edge

// Len returns the number of edges in the priority queue.
func (pq edgePQ) Len() int { return len(pq) }

// Less orders by ascending weight, then To, then From.
func (pq edgePQ) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}
	if pq[i].To != pq[j].To {
		return pq[i].To < pq[j].To
	}

	return pq[i].From < pq[j].From
}

// Swap swaps elements at indices i and j.
func (pq edgePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new edge; called by heap.Push.
func (pq *edgePQ) Push(x interface{}) { *pq = append(*pq, x.(graph.Edge)) }

// Pop removes and returns the smallest-weight edge; called by heap.Pop.
func (pq *edgePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}
