package core_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/pathtrace/core"
)

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

// TestAddVertex_Errors verifies negative IDs are rejected and duplicates are no-ops.
func TestAddVertex_Errors(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddVertex(-1); !errors.Is(err, core.ErrNegativeVertex) {
		t.Errorf("AddVertex(-1) error = %v; want ErrNegativeVertex", err)
	}
	if err := g.AddVertex(3); err != nil {
		t.Fatalf("AddVertex(3) unexpected error: %v", err)
	}
	if err := g.AddVertex(3); err != nil {
		t.Fatalf("duplicate AddVertex(3) unexpected error: %v", err)
	}
	if got := g.VertexCount(); got != 1 {
		t.Errorf("VertexCount = %d; want 1", got)
	}
}

// TestAddEdge_Errors verifies endpoint validation and auto-added endpoints.
func TestAddEdge_Errors(t *testing.T) {
	cases := []struct {
		name string
		u, v int
		err  error
	}{
		{"NegativeFrom", -1, 2, core.ErrNegativeVertex},
		{"NegativeTo", 0, -2, core.ErrNegativeVertex},
		{"Valid", 0, 2, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := core.NewGraph()
			err := g.AddEdge(tc.u, tc.v, 1)
			if !errors.Is(err, tc.err) {
				t.Errorf("AddEdge(%d,%d) error = %v; want %v", tc.u, tc.v, err, tc.err)
			}
		})
	}

	// Endpoints must both exist after a successful AddEdge.
	g := core.NewGraph()
	if err := g.AddEdge(4, 7, 2); err != nil {
		t.Fatal(err)
	}
	if !g.HasVertex(4) || !g.HasVertex(7) {
		t.Errorf("AddEdge should auto-add both endpoints; have vertices %v", g.Vertices())
	}
}

//----------------------------------------------------------------------------//
// Queries and ordering
//----------------------------------------------------------------------------//

// TestVertices_Sorted verifies ascending vertex listing regardless of insertion order.
func TestVertices_Sorted(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []int{5, 0, 3, 1} {
		if err := g.AddVertex(v); err != nil {
			t.Fatal(err)
		}
	}
	want := []int{0, 1, 3, 5}
	if got := g.Vertices(); !reflect.DeepEqual(got, want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
}

// TestNeighbors_InsertionOrder verifies arcs keep the order they were added in,
// since the tracer's event log depends on it.
func TestNeighbors_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(0, 2, 9); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 4); err != nil {
		t.Fatal(err)
	}
	arcs, err := g.Neighbors(0)
	if err != nil {
		t.Fatal(err)
	}
	want := []core.Arc{{To: 2, Weight: 9}, {To: 1, Weight: 4}}
	if !reflect.DeepEqual(arcs, want) {
		t.Errorf("Neighbors(0) = %v; want %v", arcs, want)
	}
}

// TestNeighbors_ReturnsCopy verifies mutating the returned slice does not
// leak into the graph.
func TestNeighbors_ReturnsCopy(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(0, 1, 4); err != nil {
		t.Fatal(err)
	}
	arcs, _ := g.Neighbors(0)
	arcs[0].Weight = 999

	again, _ := g.Neighbors(0)
	if again[0].Weight != 4 {
		t.Errorf("graph arc weight = %d after caller mutation; want 4", again[0].Weight)
	}
}

// TestNeighbors_UnknownVertex verifies ErrVertexNotFound.
func TestNeighbors_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	if _, err := g.Neighbors(42); !errors.Is(err, core.ErrVertexNotFound) {
		t.Errorf("Neighbors(42) error = %v; want ErrVertexNotFound", err)
	}
}

// TestArcs_Deterministic verifies ordered iteration: vertices ascending,
// arcs in insertion order.
func TestArcs_Deterministic(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(2, 0, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 2, 5); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 3); err != nil {
		t.Fatal(err)
	}

	type rec struct {
		from int
		a    core.Arc
	}
	var got []rec
	g.Arcs(func(from int, a core.Arc) { got = append(got, rec{from, a}) })

	want := []rec{
		{0, core.Arc{To: 2, Weight: 5}},
		{0, core.Arc{To: 1, Weight: 3}},
		{2, core.Arc{To: 0, Weight: 1}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Arcs order = %v; want %v", got, want)
	}
}

// TestEdgeCount counts arcs, not undirected pairs.
func TestEdgeCount(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(0, 1, 1); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(1, 0, 1); err != nil {
		t.Fatal(err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d; want 2", got)
	}
}

//----------------------------------------------------------------------------//
// Clone
//----------------------------------------------------------------------------//

// TestClone_Independence verifies a clone shares nothing with the original.
func TestClone_Independence(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge(0, 1, 6); err != nil {
		t.Fatal(err)
	}
	c := g.Clone()
	if err := c.AddEdge(1, 2, 3); err != nil {
		t.Fatal(err)
	}

	if g.HasVertex(2) {
		t.Error("mutating the clone must not add vertices to the original")
	}
	if got, want := g.EdgeCount(), 1; got != want {
		t.Errorf("original EdgeCount = %d; want %d", got, want)
	}
	if got, want := c.EdgeCount(), 2; got != want {
		t.Errorf("clone EdgeCount = %d; want %d", got, want)
	}
}
