package christofides_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tourbound/metrictsp/christofides"
	"github.com/tourbound/metrictsp/graph"
)

// TestNewMultigraph: scrambled and duplicated IDs collapse into a sorted
// vertex set with zero instances.
func TestNewMultigraph(t *testing.T) {
	mg, err := christofides.NewMultigraph([]string{"C", "A", "B", "A"})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, mg.Vertices())
	assert.Zero(t, mg.EdgeCount())
	assert.True(t, mg.HasVertex("B"))
	assert.False(t, mg.HasVertex("Z"))
	d, err := mg.Degree("A")
	require.NoError(t, err)
	assert.Zero(t, d)

	_, err = christofides.NewMultigraph([]string{"A", ""})
	assert.ErrorIs(t, err, graph.ErrEmptyVertexID)
}

// TestMultigraphAddEdge: parallel instances accumulate and orientation
// normalizes to From < To.
func TestMultigraphAddEdge(t *testing.T) {
	mg, err := christofides.NewMultigraph([]string{"A", "B", "C"})
	require.NoError(t, err)

	require.NoError(t, mg.AddEdge("A", "B", 1))
	require.NoError(t, mg.AddEdge("B", "A", 1)) // reversed orientation, second instance

	assert.Equal(t, 2, mg.EdgeCount())
	assert.Equal(t, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "B", Weight: 1},
	}, mg.Edges())
	d, err := mg.Degree("A")
	require.NoError(t, err)
	assert.Equal(t, 2, d)
	d, err = mg.Degree("C")
	require.NoError(t, err)
	assert.Zero(t, d)

	assert.ErrorIs(t, mg.AddEdge("A", "A", 1), graph.ErrLoopNotAllowed)
	assert.ErrorIs(t, mg.AddEdge("A", "Z", 1), graph.ErrVertexNotFound)
	_, err = mg.Degree("Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

// TestMultigraphEdgesIsACopy: mutating the returned slice must not reach
// the internal instance list.
func TestMultigraphEdgesIsACopy(t *testing.T) {
	mg, err := christofides.NewMultigraph([]string{"A", "B"})
	require.NoError(t, err)
	require.NoError(t, mg.AddEdge("A", "B", 1))

	edges := mg.Edges()
	edges[0].Weight = 99

	assert.InDelta(t, 1.0, mg.Edges()[0].Weight, weightDelta)
}

// TestComposeMultigraphFourCity: tree then matching instances, in order,
// every degree even.
func TestComposeMultigraphFourCity(t *testing.T) {
	g := buildFourCity(t)
	tree := christofides.SpanningTree{
		Edges: []graph.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "C", To: "D", Weight: 1},
			{From: "A", To: "C", Weight: 2},
		},
		Weight: 4,
	}
	matching := christofides.Matching{
		Pairs:  []graph.Edge{{From: "B", To: "D", Weight: 2}},
		Weight: 2,
		Exact:  true,
	}

	mg, err := christofides.ComposeMultigraph(g, tree, matching)
	require.NoError(t, err)

	assert.Equal(t, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "C", To: "D", Weight: 1},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "D", Weight: 2},
	}, mg.Edges())
	for _, v := range mg.Vertices() {
		d, derr := mg.Degree(v)
		require.NoError(t, derr)
		assert.Equal(t, 2, d, "vertex %s", v)
	}
}

// TestComposeMultigraphDoublesSharedPair: the six-city pair 0–2 sits in
// both tree and matching, so the union carries two instances of it.
func TestComposeMultigraphDoublesSharedPair(t *testing.T) {
	g := buildSixCity(t)
	tree, err := christofides.MinimumSpanningTree(g, christofides.MSTKruskal)
	require.NoError(t, err)
	matching, err := christofides.MinWeightPerfectMatching(g, []string{"0", "1", "2", "5"}, christofides.MatchExact)
	require.NoError(t, err)

	mg, err := christofides.ComposeMultigraph(g, tree, matching)
	require.NoError(t, err)

	assert.Equal(t, 7, mg.EdgeCount(), "five tree edges plus two matching pairs")
	zeroTwo := 0
	for _, e := range mg.Edges() {
		if e.From == "0" && e.To == "2" {
			zeroTwo++
		}
	}
	assert.Equal(t, 2, zeroTwo, "shared pair must appear twice")

	wantDegree := map[string]int{"0": 4, "1": 2, "2": 2, "3": 2, "4": 2, "5": 2}
	for v, want := range wantDegree {
		d, derr := mg.Degree(v)
		require.NoError(t, derr)
		assert.Equal(t, want, d, "vertex %s", v)
	}
}

// TestComposeMultigraphExpandsPathPairs: on the incomplete path A–B–C the
// matched pair (A, C) becomes one instance per shortest-path hop, keeping
// all degrees even.
func TestComposeMultigraphExpandsPathPairs(t *testing.T) {
	g := buildPathABC(t)
	tree := christofides.SpanningTree{
		Edges: []graph.Edge{
			{From: "A", To: "B", Weight: 1},
			{From: "B", To: "C", Weight: 1},
		},
		Weight: 2,
	}
	matching := christofides.Matching{
		Pairs:  []graph.Edge{{From: "A", To: "C", Weight: 2}},
		Weight: 2,
		Exact:  true,
	}

	mg, err := christofides.ComposeMultigraph(g, tree, matching)
	require.NoError(t, err)

	assert.Equal(t, []graph.Edge{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 1},
	}, mg.Edges())
	wantDegree := map[string]int{"A": 2, "B": 4, "C": 2}
	for v, want := range wantDegree {
		d, derr := mg.Degree(v)
		require.NoError(t, derr)
		assert.Equal(t, want, d, "vertex %s", v)
	}
}

// TestComposeMultigraphRejectsOddParity: a tree without its matching leaves
// odd degrees, which composition must refuse to pass downstream.
func TestComposeMultigraphRejectsOddParity(t *testing.T) {
	g := graph.New()
	require.NoError(t, g.AddEdge("A", "B", 1))
	tree := christofides.SpanningTree{
		Edges:  []graph.Edge{{From: "A", To: "B", Weight: 1}},
		Weight: 1,
	}

	_, err := christofides.ComposeMultigraph(g, tree, christofides.Matching{})
	assert.ErrorIs(t, err, christofides.ErrInternalConsistency)
}

// TestComposeMultigraphNilGraph rejects a nil base graph.
func TestComposeMultigraphNilGraph(t *testing.T) {
	_, err := christofides.ComposeMultigraph(nil, christofides.SpanningTree{}, christofides.Matching{})
	assert.ErrorIs(t, err, christofides.ErrNilGraph)
}
