package christofides

import (
	"fmt"
	"sort"

	"github.com/tourbound/metrictsp/graph"
)

// Multigraph is the union artifact of tree and matching edges: numbered edge
// instances over a fixed vertex set, parallel instances distinct. Incidence
// lists preserve insertion order, so a fixed build sequence is walked
// identically on every run.
//
// A Multigraph is per-run state. It is not safe for concurrent mutation.
type Multigraph struct {
	order []string       // vertex IDs, ascending
	index map[string]int // vertex ID → slot in order
	inst  []graph.Edge   // edge instances in insertion order, From < To
	adj   [][]halfEdge   // per-vertex incident halves, insertion order
}

// halfEdge is one direction of an instance: the opposite endpoint and the
// instance number shared with its twin.
type halfEdge struct {
	to   int // slot of the opposite endpoint
	inst int // instance number, index into inst
}

// NewMultigraph returns an empty multigraph over the given vertices.
// Duplicate IDs collapse; an empty ID is rejected.
func NewMultigraph(vertices []string) (*Multigraph, error) {
	uniq := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		if v == "" {
			return nil, graph.ErrEmptyVertexID
		}
		uniq[v] = struct{}{}
	}
	order := make([]string, 0, len(uniq))
	for v := range uniq {
		order = append(order, v)
	}
	sort.Strings(order)
	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v] = i
	}

	return &Multigraph{
		order: order,
		index: index,
		adj:   make([][]halfEdge, len(order)),
	}, nil
}

// AddEdge appends a new edge instance between u and v. Parallel instances
// accumulate — every call adds one more. Loops are rejected as in the
// simple graph; both endpoints must belong to the vertex set.
func (m *Multigraph) AddEdge(u, v string, w float64) error {
	if u == v {
		return graph.ErrLoopNotAllowed
	}
	ui, ok := m.index[u]
	if !ok {
		return fmt.Errorf("%w: %q", graph.ErrVertexNotFound, u)
	}
	vi, ok := m.index[v]
	if !ok {
		return fmt.Errorf("%w: %q", graph.ErrVertexNotFound, v)
	}
	id := len(m.inst)
	m.inst = append(m.inst, canonical(graph.Edge{From: u, To: v, Weight: w}))
	m.adj[ui] = append(m.adj[ui], halfEdge{to: vi, inst: id})
	m.adj[vi] = append(m.adj[vi], halfEdge{to: ui, inst: id})

	return nil
}

// Vertices returns the vertex IDs in ascending order.
func (m *Multigraph) Vertices() []string {
	return append([]string(nil), m.order...)
}

// Edges returns every edge instance in insertion order, From < To.
// Parallel instances appear as many times as they were added.
func (m *Multigraph) Edges() []graph.Edge {
	return append([]graph.Edge(nil), m.inst...)
}

// EdgeCount returns the number of edge instances, parallels included.
func (m *Multigraph) EdgeCount() int { return len(m.inst) }

// HasVertex reports whether id belongs to the vertex set.
func (m *Multigraph) HasVertex(id string) bool {
	_, ok := m.index[id]

	return ok
}

// Degree returns the number of instance ends incident to id.
func (m *Multigraph) Degree(id string) (int, error) {
	i, ok := m.index[id]
	if !ok {
		return 0, graph.ErrVertexNotFound
	}

	return len(m.adj[i]), nil
}

// oddDegreeVertex returns the first vertex in ID order with odd degree,
// or "" when every degree is even.
func (m *Multigraph) oddDegreeVertex() string {
	for i, v := range m.order {
		if len(m.adj[i])&1 == 1 {
			return v
		}
	}

	return ""
}

// ComposeMultigraph unions tree and matching edges into the Eulerian
// multigraph over g's vertices, preserving multiplicity — a pair present in
// both tree and matching contributes two instances.
//
// Matching pairs with no direct edge in g expand along their shortest path,
// one instance per hop. Parity is unaffected: the pair's endpoints still
// gain one instance end each and every interior vertex gains two.
//
// Postcondition, checked: every vertex has even degree. A violation is an
// upstream defect reported as ErrInternalConsistency.
func ComposeMultigraph(g *graph.Graph, t SpanningTree, m Matching) (*Multigraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return composeMultigraph(g, t, m, newPathSolver(g))
}

// composeMultigraph is the solver-sharing core of ComposeMultigraph.
func composeMultigraph(g *graph.Graph, t SpanningTree, m Matching, solver *pathSolver) (*Multigraph, error) {
	mg, err := NewMultigraph(g.Vertices())
	if err != nil {
		return nil, err
	}
	for _, e := range t.Edges {
		if err = mg.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}
	for _, p := range m.Pairs {
		if w, werr := g.Weight(p.From, p.To); werr == nil {
			if err = mg.AddEdge(p.From, p.To, w); err != nil {
				return nil, err
			}

			continue
		}
		hops, perr := solver.path(p.From, p.To)
		if perr != nil {
			return nil, perr
		}
		for i := 1; i < len(hops); i++ {
			w, werr := g.Weight(hops[i-1], hops[i])
			if werr != nil {
				return nil, fmt.Errorf("%w: path hop %s–%s has no edge", ErrInternalConsistency, hops[i-1], hops[i])
			}
			if err = mg.AddEdge(hops[i-1], hops[i], w); err != nil {
				return nil, err
			}
		}
	}

	if v := mg.oddDegreeVertex(); v != "" {
		return nil, fmt.Errorf("%w: vertex %q has odd degree after composition", ErrInternalConsistency, v)
	}

	return mg, nil
}
