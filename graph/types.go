package graph

import "errors"

// Sentinel errors returned by Graph mutators and queries.
var (
	// ErrEmptyVertexID indicates that an empty string was supplied as a vertex ID.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrLoopNotAllowed indicates an attempt to connect a vertex to itself.
	ErrLoopNotAllowed = errors.New("graph: self-loops are not allowed")

	// ErrDuplicateEdge indicates that the unordered vertex pair already has an edge.
	ErrDuplicateEdge = errors.New("graph: edge already exists for vertex pair")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: edge weight must be non-negative")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: edge weight must be finite")

	// ErrVertexNotFound indicates that a queried vertex does not exist in the graph.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates that the queried vertex pair has no edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// Edge is an undirected, weighted edge between two distinct vertices.
//
// Edges returned by Graph.Edges are in canonical orientation (From < To);
// edges returned by Graph.Neighbors are re-oriented so From is the queried
// vertex. Edge is a plain value: copying it never aliases graph state.
type Edge struct {
	From   string  // one endpoint (canonical: the lexicographically smaller)
	To     string  // the other endpoint
	Weight float64 // finite, non-negative
}
