// This file implements Graph construction, queries, ordered iteration,
// and cloning.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts v with an empty adjacency list if absent.
// Adding an existing vertex is a no-op.
// Returns ErrNegativeVertex if v < 0.
func (g *Graph) AddVertex(v int) error {
	if v < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVertex, v)
	}
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = nil
	}

	return nil
}

// AddEdge appends the arc u→v with the given weight to u's adjacency
// list, auto-adding both endpoints. Arcs accumulate in insertion order.
// Returns ErrNegativeVertex if either endpoint is negative.
//
// Weight sign is intentionally not checked here: the tracer performs an
// upfront scan and fails the whole run on a negative weight, so a graph
// under construction may hold one transiently without silently
// producing a wrong trace.
func (g *Graph) AddEdge(u, v int, weight int64) error {
	if err := g.AddVertex(u); err != nil {
		return err
	}
	if err := g.AddVertex(v); err != nil {
		return err
	}
	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: weight})

	return nil
}

// HasVertex reports whether v exists in the graph.
func (g *Graph) HasVertex(v int) bool {
	_, ok := g.adj[v]

	return ok
}

// Vertices returns all vertex IDs in ascending order.
func (g *Graph) Vertices() []int {
	ids := make([]int, 0, len(g.adj))
	for v := range g.adj {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}

// Neighbors returns a copy of u's outgoing arcs in insertion order.
// Mutating the returned slice never affects the graph.
// Returns ErrVertexNotFound if u does not exist.
func (g *Graph) Neighbors(u int) ([]Arc, error) {
	arcs, ok := g.adj[u]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, u)
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out, nil
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the total number of arcs.
func (g *Graph) EdgeCount() int {
	var n int
	for _, arcs := range g.adj {
		n += len(arcs)
	}

	return n
}

// Arcs calls fn for every arc, visiting vertices in ascending ID order
// and each vertex's arcs in insertion order. The iteration order is
// deterministic so callers (the tracer's pre-scan, encoders) observe a
// stable sequence.
func (g *Graph) Arcs(fn func(from int, a Arc)) {
	for _, u := range g.Vertices() {
		for _, a := range g.adj[u] {
			fn(u, a)
		}
	}
}

// Clone returns a deep copy of the graph: new adjacency map, new arc
// slices. Mutations on either side are invisible to the other.
func (g *Graph) Clone() *Graph {
	c := &Graph{adj: make(map[int][]Arc, len(g.adj))}
	for v, arcs := range g.adj {
		dup := make([]Arc, len(arcs))
		copy(dup, arcs)
		c.adj[v] = dup
	}

	return c
}
