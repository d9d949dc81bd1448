// This file implements Run: priority-queue Dijkstra with per-decision
// event recording.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all arcs (O(E)) to detect negative
//     weights and fail fast, before any event is produced.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the
//     heap and ignoring stale entries at pop time. A stale pop is pure
//     bookkeeping and records no event.
//   - The heap orders by (distance, vertex ID): the secondary key makes
//     the settlement order, and therefore the whole event log,
//     reproducible across runs.
package trace

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathtrace/core"
)

// Run computes shortest distances from source to all vertices of g and
// records the run as an ordered event log.
//
// Returns:
//
//   - Result.Distances: map from vertex ID to minimum distance
//     (Inf if unreachable).
//   - Result.Events: one Settle event per finalized vertex, one Relax
//     event per strict distance improvement, in execution order.
//   - err: ErrNilGraph, ErrSourceNotFound, or ErrNegativeWeight; on
//     error the Result is nil (never a partial log).
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. g must contain source (ErrSourceNotFound).
//  3. No arc in g can have negative weight (ErrNegativeWeight).
//
// Ties between equal-cost frontier entries break by ascending vertex
// ID. Relaxation requires strict improvement (candidate < current), so
// equal-cost alternate paths are never recorded as events.
//
// Complexity: O((V + E) log V) for the search, plus O(V) snapshot
// copying per event.
func Run(g *core.Graph, source int) (*Result, error) {
	// 1) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2) Validate source exists in the graph.
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: vertex %d", ErrSourceNotFound, source)
	}

	// 3) Pre-scan all arcs to detect negative weights. Fail fast with
	//    ErrNegativeWeight and the offending arc.
	var scanErr error
	g.Arcs(func(from int, a core.Arc) {
		if a.Weight < 0 && scanErr == nil {
			scanErr = fmt.Errorf("%w: arc %d→%d weight=%d", ErrNegativeWeight, from, a.To, a.Weight)
		}
	})
	if scanErr != nil {
		return nil, scanErr
	}

	// 4) Prepare per-run state and execute.
	V := g.VertexCount()
	r := &runner{
		g:       g,
		dist:    make(map[int]int64, V),
		visited: make(map[int]bool, V),
		pq:      make(frontier, 0, V),
	}
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	// 5) Hand off the final table and the full log as one immutable value.
	return &Result{Distances: r.dist, Events: r.events}, nil
}

// runner holds the mutable state for a single traced execution.
type runner struct {
	g       *core.Graph   // input graph; read-only within Run
	dist    map[int]int64 // vertex ID → current best distance from source
	visited map[int]bool  // settled set; keys present only once finalized
	pq      frontier      // min-heap of candidate (distance, vertex) entries
	events  []Event       // append-only log, one entry per decision
}

// init sets every known vertex to Inf, the source to 0, and seeds the
// frontier with (0, source).
func (r *runner) init(source int) {
	for _, v := range r.g.Vertices() {
		r.dist[v] = Inf
	}
	r.dist[source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &frontierItem{vertex: source, dist: 0})
}

// process is the core loop. It repeatedly extracts the minimum
// (distance, vertex) entry, settles the vertex, and relaxes its
// outgoing arcs, until the frontier drains.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*frontierItem)
		u := item.vertex

		// 2) Discard stale duplicates left behind by earlier relaxations.
		//    No event: a stale pop is not an algorithmic decision.
		if r.visited[u] {
			continue
		}

		// 3) Settle u: its distance is now final. Snapshots are taken
		//    after this insertion, so the event shows u inside the set.
		r.visited[u] = true
		r.record(Settle, u, nil)

		// 4) Relax all outgoing arcs of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each arc u→v and, on strict improvement, updates the
// distance table, pushes a fresh frontier entry, and records the
// relaxation. Settled neighbors are skipped: their distances are final.
//
// Assumes r.dist[u] is finalized before the call.
func (r *runner) relax(u int) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("trace: failed to get neighbors of %d: %w", u, err)
	}

	var candidate int64
	for _, a := range arcs {
		// Never revisit a settled vertex.
		if r.visited[a.To] {
			continue
		}

		candidate = r.dist[u] + a.Weight

		// Strict improvement only; ties neither requeue nor record.
		if candidate >= r.dist[a.To] {
			continue
		}

		r.dist[a.To] = candidate

		// Lazy decrease-key: push a duplicate rather than update in
		// place; the superseded entry is filtered at pop time.
		heap.Push(&r.pq, &frontierItem{vertex: a.To, dist: candidate})

		// Snapshot after the distance update; the settled set is
		// unchanged from u's settlement event.
		r.record(Relax, u, &Edge{From: u, To: a.To})
	}

	return nil
}

// record appends an event carrying value copies of the live tables.
func (r *runner) record(kind EventKind, vertex int, edge *Edge) {
	r.events = append(r.events, Event{
		Kind:      kind,
		Vertex:    vertex,
		Edge:      edge,
		Distances: copyDistances(r.dist),
		Visited:   copyVisited(r.visited),
	})
}

// frontierItem is one candidate in the priority queue.
type frontierItem struct {
	vertex int   // candidate vertex ID
	dist   int64 // tentative distance when pushed
}

// frontier is a min-heap of *frontierItem ordered by distance
// ascending, ties broken by vertex ID ascending. Under lazy
// decrease-key it may hold several entries for the same vertex; only
// the first one popped matters.
type frontier []*frontierItem

// Len returns the number of entries in the heap.
func (f frontier) Len() int { return len(f) }

// Less orders by distance, then vertex ID. The secondary key is the
// deterministic tie-break the event log depends on.
func (f frontier) Less(i, j int) bool {
	if f[i].dist != f[j].dist {
		return f[i].dist < f[j].dist
	}

	return f[i].vertex < f[j].vertex
}

// Swap swaps two entries.
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push adds x onto the heap; x must be a *frontierItem.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }

// Pop removes and returns the smallest entry.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
