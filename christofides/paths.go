package christofides

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/tourbound/metrictsp/graph"
)

// pathSolver resolves effective distances between vertex pairs for one
// pipeline run: the direct edge weight when the pair is adjacent, the
// shortest-path distance otherwise (Dijkstra; weights are non-negative by
// the graph model). Distance and predecessor maps are cached per source, so
// k distinct sources cost at most k Dijkstra passes.
//
// A solver is per-invocation state; it is never shared across runs.
type pathSolver struct {
	g    *graph.Graph
	dist map[string]map[string]float64 // source → vertex → distance
	prev map[string]map[string]string  // source → vertex → predecessor
}

func newPathSolver(g *graph.Graph) *pathSolver {
	return &pathSolver{
		g:    g,
		dist: make(map[string]map[string]float64),
		prev: make(map[string]map[string]string),
	}
}

// distance returns the effective weight between u and v: the direct edge
// when present, the shortest-path distance otherwise. ErrNoPath when v is
// unreachable from u.
func (s *pathSolver) distance(u, v string) (float64, error) {
	if !s.g.HasVertex(u) || !s.g.HasVertex(v) {
		return 0, graph.ErrVertexNotFound
	}
	if w, err := s.g.Weight(u, v); err == nil {
		return w, nil
	}
	if err := s.ensure(u); err != nil {
		return 0, err
	}
	d, ok := s.dist[u][v]
	if !ok {
		return 0, fmt.Errorf("%w: %s → %s", ErrNoPath, u, v)
	}

	return d, nil
}

// path returns the shortest path from u to v, both endpoints included.
// Adjacent pairs return the direct two-vertex hop without a Dijkstra pass.
func (s *pathSolver) path(u, v string) ([]string, error) {
	if !s.g.HasVertex(u) || !s.g.HasVertex(v) {
		return nil, graph.ErrVertexNotFound
	}
	if s.g.HasEdge(u, v) {
		return []string{u, v}, nil
	}
	if err := s.ensure(u); err != nil {
		return nil, err
	}
	if _, ok := s.dist[u][v]; !ok {
		return nil, fmt.Errorf("%w: %s → %s", ErrNoPath, u, v)
	}

	// Walk predecessors back from v, then reverse in place.
	seq := []string{v}
	for cur := v; cur != u; {
		cur = s.prev[u][cur]
		seq = append(seq, cur)
	}
	for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq, nil
}

// ensure runs one Dijkstra pass from source unless a cached pass exists.
// Lazy decrease-key: improved distances push duplicates and stale heap
// entries are skipped on pop. Unreachable vertices are stripped from the
// cached map so lookups can tell them apart.
// Complexity: O((V + E) log V) per distinct source.
func (s *pathSolver) ensure(source string) error {
	if _, ok := s.dist[source]; ok {
		return nil
	}

	vertices := s.g.Vertices()
	dist := make(map[string]float64, len(vertices))
	prev := make(map[string]string, len(vertices))
	done := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		dist[v] = math.Inf(1)
		prev[v] = ""
	}
	dist[source] = 0

	pq := make(nodePQ, 0, len(vertices))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		if done[item.id] {
			continue
		}
		done[item.id] = true

		nbrs, err := s.g.Neighbors(item.id)
		if err != nil {
			return err
		}
		for _, e := range nbrs {
			next := dist[item.id] + e.Weight
			if next >= dist[e.To] {
				continue
			}
			dist[e.To] = next
			prev[e.To] = item.id
			heap.Push(&pq, &nodeItem{id: e.To, dist: next})
		}
	}

	for _, v := range vertices {
		if math.IsInf(dist[v], 1) {
			delete(dist, v)
		}
	}
	s.dist[source] = dist
	s.prev[source] = prev

	return nil
}

// nodeItem pairs a vertex with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then ID for
// deterministic ties.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by ascending distance, breaking ties by vertex ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new element; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
