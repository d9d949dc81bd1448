// Package trace defines the event model and sentinel errors for the
// shortest-path tracer.
package trace

import (
	"errors"
	"math"
)

// Inf is the distance sentinel for vertices not (yet) reached from the
// source. Final Result.Distances keeps Inf for unreachable vertices.
const Inf = int64(math.MaxInt64)

// Sentinel errors returned by Run.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Run.
	ErrNilGraph = errors.New("trace: graph is nil")

	// ErrSourceNotFound indicates that the source vertex does not exist
	// in the provided graph.
	ErrSourceNotFound = errors.New("trace: source vertex not found in graph")

	// ErrNegativeWeight indicates that an arc with negative weight was
	// detected. Dijkstra's greedy settlement is not correct under
	// negative weights, so the run aborts before producing any events.
	ErrNegativeWeight = errors.New("trace: negative arc weight encountered")
)

// EventKind is the stable discriminator for Event.
// The string values are part of serialized logs; do not rename.
type EventKind string

const (
	// Settle marks a vertex's distance as finalized: no further
	// improvement is possible.
	Settle EventKind = "settle"

	// Relax marks an edge traversal that strictly improved a neighbor's
	// tentative distance.
	Relax EventKind = "relax"
)

// Edge identifies the directed arc of a relaxation event.
type Edge struct {
	// From is the settled vertex the relaxation departed from.
	From int `json:"from"`

	// To is the neighbor whose distance improved.
	To int `json:"to"`
}

// Event is one immutable record in the log.
//
// Distances and Visited are value snapshots taken at event-creation
// time: freshly allocated maps the run never writes to again. Consumers
// may hold events indefinitely, replay them out of order, or pause
// mid-sequence without ever observing a future state.
//
// For a Settle event the snapshots are taken immediately after the
// vertex joined the settled set; for a Relax event, immediately after
// the distance update, with Visited unchanged from the preceding
// settlement.
type Event struct {
	// Kind discriminates settlement from relaxation.
	Kind EventKind `json:"kind"`

	// Vertex is the vertex being processed: the newly settled vertex for
	// Settle, the relaxation's origin for Relax.
	Vertex int `json:"vertex"`

	// Edge is the improving arc for Relax events; nil for Settle events.
	Edge *Edge `json:"edge,omitempty"`

	// Distances maps every graph vertex to its best-known distance at
	// this instant (Inf if not yet reached).
	Distances map[int]int64 `json:"distances"`

	// Visited holds the settled set at this instant; only settled
	// vertices appear as keys.
	Visited map[int]bool `json:"visited"`
}

// Result is the single immutable handoff from a completed run.
type Result struct {
	// Distances maps every graph vertex to its final shortest distance
	// from the source, or Inf if unreachable.
	Distances map[int]int64

	// Events is the ordered, append-only log produced by the run.
	// It is owned by this Result; consumers read it, never mutate it.
	Events []Event
}

// copyDistances returns a fresh copy of a distance table.
func copyDistances(m map[int]int64) map[int]int64 {
	c := make(map[int]int64, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}

// copyVisited returns a fresh copy of the settled set.
func copyVisited(m map[int]bool) map[int]bool {
	c := make(map[int]bool, len(m))
	for k, v := range m {
		c[k] = v
	}

	return c
}
