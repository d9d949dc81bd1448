// Package player maps a recorded shortest-path trace onto renderable
// frames, one per event, and builds the final summary table.
//
// The player owns no drawing primitives and no timing: Frame is a pure
// function of (event, isFinalEvent), and pacing stays with the caller.
// See the Frame type for the content contract.
package player

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/trace"
)

// Player replays a completed trace as frame descriptions.
//
// A Player is immutable after New: it holds the graph, the result, and
// a scaled private copy of the layout. Frames computed from it depend
// only on the frame index.
type Player struct {
	g      *core.Graph
	res    *trace.Result
	layout Layout // scaled private copy
	opts   Options
}

// New validates inputs eagerly and returns a Player over them.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. res must be non-nil (ErrNilResult) and carry events (ErrEmptyLog).
//  3. Options must be well-formed (ErrOptionViolation).
//  4. layout must cover every vertex of g (ErrMissingLayout, naming the
//     first uncovered vertex in ascending order).
//
// The layout is copied (and scaled) at construction; later mutation of
// the caller's map never affects produced frames.
func New(g *core.Graph, res *trace.Result, layout Layout, opts ...Option) (*Player, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if res == nil {
		return nil, ErrNilResult
	}
	if len(res.Events) == 0 {
		return nil, ErrEmptyLog
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	scaled := make(Layout, len(layout))
	for _, v := range g.Vertices() {
		p, ok := layout[v]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrMissingLayout, v)
		}
		scaled[v] = Point{X: p.X * o.Scale, Y: p.Y * o.Scale}
	}

	return &Player{g: g, res: res, layout: scaled, opts: o}, nil
}

// Len returns the number of frames (one per recorded event).
func (p *Player) Len() int { return len(p.res.Events) }

// Frame builds the renderable description of event i.
// Returns ErrFrameIndex if i is out of [0, Len()).
//
// The description reflects exactly the event's own snapshots, so
// requesting frames out of order never leaks a future state.
func (p *Player) Frame(i int) (Frame, error) {
	if i < 0 || i >= p.Len() {
		return Frame{}, fmt.Errorf("%w: %d of %d", ErrFrameIndex, i, p.Len())
	}
	ev := p.res.Events[i]
	final := i == p.Len()-1

	f := Frame{
		Index:      i,
		Final:      final,
		Active:     ev.Vertex,
		ActiveEdge: ev.Edge,
		Nodes:      p.nodes(ev),
		Edges:      p.edges(ev),
	}
	if final {
		f.Table = p.table()
	}

	return f, nil
}

// Frames builds every frame in order.
func (p *Player) Frames() []Frame {
	out := make([]Frame, p.Len())
	for i := range out {
		out[i], _ = p.Frame(i)
	}

	return out
}

// Play renders every frame in sequence through r, stopping on the
// first renderer error. Frame pacing (intervals, pausing, stepping) is
// the caller's concern.
func (p *Player) Play(r Renderer) error {
	for i := 0; i < p.Len(); i++ {
		f, err := p.Frame(i)
		if err != nil {
			return err
		}
		if err = r.RenderFrame(f); err != nil {
			return fmt.Errorf("player: frame %d: %w", i, err)
		}
	}

	return nil
}

// nodes builds per-vertex states from the event's snapshots, ascending
// by vertex ID.
func (p *Player) nodes(ev trace.Event) []NodeState {
	vertices := p.g.Vertices()
	out := make([]NodeState, 0, len(vertices))
	var label string
	for _, v := range vertices {
		label = ""
		if d := ev.Distances[v]; d != trace.Inf {
			label = strconv.FormatInt(d, 10)
		}
		out = append(out, NodeState{
			ID:      v,
			Pos:     p.layout[v],
			Settled: ev.Visited[v],
			Active:  v == ev.Vertex,
			Label:   label,
		})
	}

	return out
}

// edges builds per-arc states in the graph's deterministic order,
// marking the relaxed arc and, for symmetric data, its mirror.
func (p *Player) edges(ev trace.Event) []EdgeState {
	out := make([]EdgeState, 0, p.g.EdgeCount())
	p.g.Arcs(func(from int, a core.Arc) {
		active := ev.Edge != nil &&
			((from == ev.Edge.From && a.To == ev.Edge.To) ||
				(from == ev.Edge.To && a.To == ev.Edge.From))
		out = append(out, EdgeState{From: from, To: a.To, Weight: a.Weight, Active: active})
	})

	return out
}

// table pairs every vertex with its final distance, sorted by vertex
// ascending, marking unreachable entries with the configured label.
func (p *Player) table() []Row {
	vertices := make([]int, 0, len(p.res.Distances))
	for v := range p.res.Distances {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	rows := make([]Row, 0, len(vertices))
	for _, v := range vertices {
		d := p.res.Distances[v]
		s := p.opts.UnreachableLabel
		if d != trace.Inf {
			s = strconv.FormatInt(d, 10)
		}
		rows = append(rows, Row{Vertex: v, Distance: s})
	}

	return rows
}
