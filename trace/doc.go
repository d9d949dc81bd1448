// Package trace provides a precise implementation of Dijkstra's
// shortest-path algorithm that records every internal decision as an
// ordered, replayable event log.
//
// Overview:
//
//   - Run computes minimum-cost distances from a single source vertex to
//     all reachable vertices in O((V + E) log V) time, where V = |vertices|
//     and E = |arcs|.
//   - It relies on a min-heap (priority queue) to always settle the
//     next-closest vertex, breaking distance ties by ascending vertex ID
//     so that two runs on the same input produce identical event logs.
//   - Alongside the final distances, Run returns an append-only EventLog:
//     one settlement event per finalized vertex and one relaxation event
//     per strict distance improvement, each carrying value-copied
//     snapshots of the distance table and the settled set at that instant.
//
// When to use:
//
//   - Whenever you need exact non-negative shortest paths plus a faithful
//     step-by-step record of how they were found: teaching material,
//     algorithm animation, regression baselines for search behavior.
//   - The player package consumes the log frame-by-frame; any other
//     renderer can too, because events are plain immutable values.
//
// Key properties:
//
//   - Lazy decrease-key: improved distances push duplicate heap entries;
//     stale entries for already-settled vertices are discarded on pop and
//     never recorded as events.
//   - Snapshot-per-event: every Event holds freshly allocated copies of
//     the distance table and settled set. Later mutation of the live run
//     state never retroactively alters a recorded event.
//   - Strict improvement: relaxation requires candidate < current, so an
//     equal-cost alternate path neither requeues a vertex nor records an
//     event.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) for the search itself.
//   - Each settlement and relaxation additionally copies O(V) snapshot
//     state, so a full trace costs O((V + E) · V) space. This is a
//     teaching/demo-scale tool for tens to low hundreds of vertices,
//     not a bulk router.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       a nil *core.Graph was passed to Run.
//   - ErrSourceNotFound: the source vertex does not exist in the graph.
//   - ErrNegativeWeight: an arc with negative weight was detected by the
//     upfront O(E) scan; greedy settlement is only correct without them,
//     so the run aborts rather than produce a plausible-looking wrong trace.
//
// All errors are detected before the search starts; a failed Run returns
// no partial result.
//
// API reference:
//
//	func Run(g *core.Graph, source int) (*Result, error)
//
//	  - g:      pointer to a core.Graph, treated as read-only.
//	  - source: the start vertex; must be present in g.
//	  - Result: Distances (Inf for unreachable vertices) and Events.
//
// Thread safety:
//
//   - Run is synchronous and touches no shared state; concurrent Runs on
//     the same (unmutated) graph are safe.
package trace
