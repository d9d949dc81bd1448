// Package core defines the Graph and Arc types consumed by the tracer
// and the player.
//
// This file declares the Arc record, the Graph container, and the
// sentinel errors for graph construction and queries.
//
// Errors:
//
//	ErrNegativeVertex - a vertex ID below zero was supplied.
//	ErrVertexNotFound - a queried vertex does not exist in the graph.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertex indicates a vertex ID below zero was supplied.
	// Vertex IDs form a dense non-negative integer space.
	ErrNegativeVertex = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Arc is a single outgoing edge of a vertex: the destination vertex
// and the traversal weight. Weight sign is not validated here; the
// tracer rejects negative weights before running (trace.ErrNegativeWeight).
type Arc struct {
	// To is the destination vertex ID.
	To int

	// Weight is the cost of traversing this arc.
	Weight int64
}

// Graph is a directed weighted graph over dense non-negative integer
// vertex IDs. Adjacency is stored per vertex as a slice of Arcs in
// insertion order; that ordering is deliberate and observable, because
// the tracer's event log must be reproducible across runs.
//
// An arc u→v does not imply v→u; callers modelling undirected data add
// both directions explicitly.
//
// Graph is not safe for concurrent mutation. The tracer and player
// treat it as read-only for the duration of a run (see trace.Run).
type Graph struct {
	adj map[int][]Arc
}

// NewGraph returns an empty Graph ready for AddVertex/AddEdge calls.
func NewGraph() *Graph {
	return &Graph{adj: make(map[int][]Arc)}
}
