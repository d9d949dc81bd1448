// Package scene_test covers YAML scene loading, edge-list parsing, and
// the built-in demo scene's integrity end to end through the tracer.
package scene_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/player"
	"github.com/katalvlaran/pathtrace/scene"
	"github.com/katalvlaran/pathtrace/trace"
)

//----------------------------------------------------------------------------//
// YAML scenes
//----------------------------------------------------------------------------//

const validScene = `
start: 0
scale: 0.01
edges:
  - {from: 0, to: 1, weight: 6}
  - {from: 0, to: 2, weight: 1}
  - {from: 1, to: 3, weight: 1}
  - {from: 2, to: 3, weight: 10}
layout:
  0: {x: 500, y: 100}
  1: {x: 200, y: 200}
  2: {x: 800, y: 200}
  3: {x: 500, y: 500}
`

func TestLoad_RoundTrip(t *testing.T) {
	s, err := scene.Load(strings.NewReader(validScene))
	require.NoError(t, err)
	require.Equal(t, 0, s.Start)
	require.InDelta(t, 0.01, s.Scale, 1e-12)
	require.Len(t, s.Edges, 4)
	require.Len(t, s.Layout, 4)

	g, err := s.Graph()
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	require.Equal(t, 4, g.EdgeCount())

	// File order of arcs survives into the graph.
	arcs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Equal(t, []core.Arc{{To: 1, Weight: 6}, {To: 2, Weight: 1}}, arcs)
}

func TestLoad_DefaultScale(t *testing.T) {
	s, err := scene.Load(strings.NewReader("start: 0\nlayout:\n  0: {x: 1, y: 2}\n"))
	require.NoError(t, err)
	require.Equal(t, 1.0, s.Scale)
}

func TestLoad_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"NotYAML", "{{{"},
		{"UnknownField", "start: 0\nbogus: 1\n"},
		{"WrongType", "start: zero\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.Load(strings.NewReader(tc.in))
			require.ErrorIs(t, err, scene.ErrParse)
		})
	}
}

// TestLoad_LayoutOnlyVertex verifies a vertex with no arcs still joins
// the graph, keeping layout coverage and graph key set aligned.
func TestLoad_LayoutOnlyVertex(t *testing.T) {
	in := `
start: 0
edges:
  - {from: 0, to: 1, weight: 2}
layout:
  0: {x: 0, y: 0}
  1: {x: 1, y: 0}
  7: {x: 2, y: 0}
`
	s, err := scene.Load(strings.NewReader(in))
	require.NoError(t, err)
	g, err := s.Graph()
	require.NoError(t, err)
	require.True(t, g.HasVertex(7))
}

//----------------------------------------------------------------------------//
// Edge lists
//----------------------------------------------------------------------------//

func TestParseEdgeList_Valid(t *testing.T) {
	in := `
# the diamond
0 1 6
0 2 1

1 3 1
2 3 10
`
	g, err := scene.ParseEdgeList(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, g.Vertices())
	require.Equal(t, 4, g.EdgeCount())

	res, err := trace.Run(g, 0)
	require.NoError(t, err)
	require.Equal(t, int64(7), res.Distances[3])
}

func TestParseEdgeList_Malformed(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string // expected line reference in the error
	}{
		{"MissingField", "0 1 6\n0 2\n", "line 2"},
		{"ExtraField", "0 1 6 9\n", "line 1"},
		{"BadVertex", "0 x 6\n", "line 1"},
		{"BadWeight", "0 1 heavy\n", "line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scene.ParseEdgeList(strings.NewReader(tc.in))
			require.ErrorIs(t, err, scene.ErrParse)
			require.Contains(t, err.Error(), tc.line)
		})
	}
}

// TestParseEdgeList_SemanticErrorKeepsSentinel verifies a structurally
// valid line with a negative vertex surfaces core's error, not ErrParse.
func TestParseEdgeList_SemanticErrorKeepsSentinel(t *testing.T) {
	_, err := scene.ParseEdgeList(strings.NewReader("0 1 6\n-4 1 2\n"))
	require.ErrorIs(t, err, core.ErrNegativeVertex)
	require.NotErrorIs(t, err, scene.ErrParse)
	require.Contains(t, err.Error(), "line 2")
}

//----------------------------------------------------------------------------//
// Built-in scene
//----------------------------------------------------------------------------//

// TestDefault_TracesEndToEnd runs the shipped demo scene through the
// tracer and the player, checking the known shortest distances.
func TestDefault_TracesEndToEnd(t *testing.T) {
	s := scene.Default()
	g, err := s.Graph()
	require.NoError(t, err)
	require.Equal(t, 8, g.VertexCount())

	res, err := trace.Run(g, s.Start)
	require.NoError(t, err)
	want := map[int]int64{0: 0, 1: 6, 2: 1, 3: 7, 4: 4, 5: 8, 6: 11, 7: 7}
	require.Equal(t, want, res.Distances)

	p, err := player.New(g, res, s.PlayerLayout(), player.WithScale(s.Scale))
	require.NoError(t, err)
	require.Equal(t, len(res.Events), p.Len())

	last, err := p.Frame(p.Len() - 1)
	require.NoError(t, err)
	require.Len(t, last.Table, 8)
	require.Equal(t, player.Row{Vertex: 6, Distance: "11"}, last.Table[6])
}
