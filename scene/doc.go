// Package scene ingests graph/layout input for the tracer and player:
// YAML scene files describing edges, layout positions, the start
// vertex, and an optional coordinate scale, plus plain `u v weight`
// edge lists. A built-in demo scene ships with the package.
//
// Ingestion errors are ErrParse-wrapped and identify the offending
// line; semantic problems (negative weights, layout gaps) surface as
// the trace and player packages' own errors once the data is used.
package scene
