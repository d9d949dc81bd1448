// Package pathtrace computes single-source shortest paths over small
// weighted graphs and records a deterministic, replayable trace of the
// algorithm's decisions, suitable for step-by-step visual playback.
//
// 🚀 What is pathtrace?
//
//	A small, focused library that brings together:
//		• Core primitives: a directed weighted graph over dense integer vertex IDs
//		• Tracing: priority-queue Dijkstra recording settlement & relaxation events
//		• Playback: a player mapping each recorded event to a renderable frame
//		• Scenes: YAML scene files and plain edge-list ingestion
//
// ✨ Why choose pathtrace?
//
//   - Deterministic – identical inputs yield identical event logs
//   - Snapshot-safe – every event carries value copies, never live state
//   - Pure Go core – rendering and frame pacing stay with the caller
//
// Everything is organized under four subpackages plus a demo binary:
//
//	core/         — Graph and Arc types, deterministic adjacency
//	trace/        — the shortest-path tracer and its event log
//	player/       — event→frame mapping and the final summary table
//	scene/        — YAML scenes, edge lists, and the built-in demo scene
//	cmd/pathtrace — CLI: load a scene, trace it, print or emit frames
//
// Quick start:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(0, 1, 6)
//	_ = g.AddEdge(0, 2, 1)
//	res, err := trace.Run(g, 0)
//	if err != nil { ... }
//	// res.Distances holds final distances; res.Events replays the run.
package pathtrace
