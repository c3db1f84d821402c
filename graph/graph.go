package graph

import (
	"math"
	"sort"
	"sync"
)

// Graph is an undirected simple graph with finite, non-negative edge weights.
//
// The zero value is not usable; construct with New. Methods are safe for
// concurrent use. Edges are held once per unordered pair (mirrored in the
// adjacency map for O(1) lookups from either endpoint), so weight symmetry
// holds by construction.
type Graph struct {
	mu  sync.RWMutex
	adj map[string]map[string]float64 // vertex → neighbor → weight (symmetric entries)
	m   int                           // edge count, each unordered pair counted once
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{adj: make(map[string]map[string]float64)}
}

// ensureVertex inserts id if absent. Caller must hold the write lock.
func (g *Graph) ensureVertex(id string) {
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]float64)
	}
}

// AddVertex inserts the vertex id. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID when id is empty.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureVertex(id)

	return nil
}

// AddEdge connects u and v with weight w, creating missing endpoints.
//
// Validation order:
//  1. empty IDs            → ErrEmptyVertexID
//  2. u == v               → ErrLoopNotAllowed
//  3. NaN or ±Inf weight   → ErrBadWeight
//  4. negative weight      → ErrNegativeWeight
//  5. pair already present → ErrDuplicateEdge
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v string, w float64) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrBadWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[u][v]; ok {
		return ErrDuplicateEdge
	}
	g.ensureVertex(u)
	g.ensureVertex(v)
	g.adj[u][v] = w
	g.adj[v][u] = w
	g.m++

	return nil
}

// HasVertex reports whether id exists in the graph.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[id]

	return ok
}

// HasEdge reports whether the unordered pair {u, v} has an edge.
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[u][v]

	return ok
}

// Weight returns the weight of the edge {u, v}.
// Returns ErrVertexNotFound when either endpoint is absent,
// ErrEdgeNotFound when both endpoints exist but the pair has no edge.
func (g *Graph) Weight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.adj[u]; !ok {
		return 0, ErrVertexNotFound
	}
	if _, ok := g.adj[v]; !ok {
		return 0, ErrVertexNotFound
	}
	w, ok := g.adj[u][v]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.adj))
	for id := range g.adj {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// Edges returns every edge once, in canonical orientation (From < To),
// sorted by (From, To). Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	edges := make([]Edge, 0, g.m)
	for u, nbrs := range g.adj {
		for v, w := range nbrs {
			if u < v {
				edges = append(edges, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}

// EdgeCount returns the number of edges, each unordered pair counted once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.m
}

// Neighbors returns the edges incident to id, re-oriented so From == id,
// sorted by To. Returns ErrVertexNotFound when id is absent.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	edges := make([]Edge, 0, len(nbrs))
	for v, w := range nbrs {
		edges = append(edges, Edge{From: id, To: v, Weight: w})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].To < edges[j].To })

	return edges, nil
}

// NeighborIDs returns the vertex IDs adjacent to id in ascending order.
// Returns ErrVertexNotFound when id is absent.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrVertexNotFound
	}
	ids := make([]string, 0, len(nbrs))
	for v := range nbrs {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

// Degree returns the number of edges incident to id.
// Returns ErrVertexNotFound when id is absent.
func (g *Graph) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	nbrs, ok := g.adj[id]
	if !ok {
		return 0, ErrVertexNotFound
	}

	return len(nbrs), nil
}

// Complete reports whether every unordered vertex pair has an edge.
// Vacuously true for fewer than two vertices. Complexity: O(1).
func (g *Graph) Complete() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := len(g.adj)

	return g.m == n*(n-1)/2
}

// Clone returns a deep copy sharing no state with the receiver.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	c := New()
	c.m = g.m
	for u, nbrs := range g.adj {
		inner := make(map[string]float64, len(nbrs))
		for v, w := range nbrs {
			inner[v] = w
		}
		c.adj[u] = inner
	}

	return c
}
