// Package player defines tunable options, error definitions, and the
// frame description model for replaying a recorded shortest-path trace.
package player

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathtrace/trace"
)

// Sentinel errors for player construction and playback.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed to New.
	ErrNilGraph = errors.New("player: graph is nil")

	// ErrNilResult is returned if a nil trace result is passed to New.
	ErrNilResult = errors.New("player: trace result is nil")

	// ErrEmptyLog is returned if the trace result carries no events.
	ErrEmptyLog = errors.New("player: event log is empty")

	// ErrMissingLayout is returned when the layout lacks a position for
	// a vertex present in the graph.
	ErrMissingLayout = errors.New("player: layout missing position for vertex")

	// ErrFrameIndex is returned when a requested frame index is out of range.
	ErrFrameIndex = errors.New("player: frame index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("player: invalid option supplied")
)

// Point is a 2D position on the drawing surface.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout maps each vertex to its externally supplied position. The
// player never computes layout; it only validates coverage.
type Layout map[int]Point

// Option configures playback via functional arguments. If an Option is
// invalid (e.g. non-positive scale), it is recorded internally and
// surfaced as ErrOptionViolation when New is invoked.
type Option func(*Options)

// Options holds parameters customizing frame production.
type Options struct {
	// Scale multiplies every layout coordinate, letting raw pixel-space
	// layouts be shrunk to the renderer's coordinate system.
	Scale float64

	// UnreachableLabel is the summary-table marker for vertices whose
	// final distance is trace.Inf.
	UnreachableLabel string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Scale 1 (layout used as-is)
//   - UnreachableLabel "infinity"
func DefaultOptions() Options {
	return Options{
		Scale:            1,
		UnreachableLabel: "infinity",
	}
}

// WithScale multiplies all layout positions by f.
//
//	f > 0:  scale by f
//	f <= 0: invalid option → ErrOptionViolation
func WithScale(f float64) Option {
	return func(o *Options) {
		if f <= 0 {
			o.err = fmt.Errorf("%w: Scale must be positive (%g)", ErrOptionViolation, f)
			return
		}
		o.Scale = f
	}
}

// WithUnreachableLabel sets the summary-table marker for unreachable
// vertices. Empty strings are ignored.
func WithUnreachableLabel(s string) Option {
	return func(o *Options) {
		if s != "" {
			o.UnreachableLabel = s
		}
	}
}

// NodeState is one vertex's visual state within a frame.
type NodeState struct {
	// ID is the vertex identifier.
	ID int `json:"id"`

	// Pos is the (scaled) layout position.
	Pos Point `json:"pos"`

	// Settled marks vertices whose distance was final at this event.
	Settled bool `json:"settled"`

	// Active marks the vertex this event is processing. Renderers
	// highlight it distinctly from merely settled vertices.
	Active bool `json:"active"`

	// Label is the current best distance as text, blank while the
	// vertex is still at the infinite sentinel.
	Label string `json:"label,omitempty"`
}

// EdgeState is one arc's visual state within a frame.
type EdgeState struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Weight int64 `json:"weight"`

	// Active marks the arc under relaxation in this frame. For
	// symmetric graphs the mirror arc is marked too, so the highlighted
	// connection reads as one line however the data was entered.
	Active bool `json:"active"`
}

// Row is one line of the final summary table.
type Row struct {
	Vertex int `json:"vertex"`

	// Distance is the final distance as text, or the unreachable marker.
	Distance string `json:"distance"`
}

// Frame is the complete renderable description of one event. It is
// built exclusively from the event's own snapshots — never from the
// live, further-advanced tables — so frames may be rendered out of
// order or paused on without ever showing a future state.
type Frame struct {
	// Index is the event's position in the log.
	Index int `json:"index"`

	// Final marks the last frame, the only one carrying Table.
	Final bool `json:"final"`

	// Active is the vertex being processed in this event.
	Active int `json:"active"`

	// ActiveEdge is the arc under relaxation, nil for settlement frames.
	ActiveEdge *trace.Edge `json:"activeEdge,omitempty"`

	// Nodes lists every vertex's state, ascending by ID.
	Nodes []NodeState `json:"nodes"`

	// Edges lists every arc's state in the graph's deterministic order.
	Edges []EdgeState `json:"edges"`

	// Table pairs every vertex with its final distance, sorted by
	// vertex ascending. Nil on all but the final frame.
	Table []Row `json:"table,omitempty"`
}

// Renderer consumes frames in order. Implementations draw, encode, or
// transmit; the player only guarantees frame content.
type Renderer interface {
	RenderFrame(Frame) error
}
