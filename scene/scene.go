package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathtrace/core"
	"github.com/katalvlaran/pathtrace/player"
)

// ErrParse indicates malformed scene or edge-list input. It is distinct
// from the trace/player validation errors: a parse failure means the
// bytes never round-tripped to the data model at all.
var ErrParse = errors.New("scene: malformed input")

// Scene is the external description of one traced run: the graph's
// arcs, a position for every vertex, the start vertex, and an optional
// scale applied to raw layout coordinates.
type Scene struct {
	// Start is the source vertex for the trace.
	Start int `yaml:"start"`

	// Scale multiplies layout coordinates (e.g. shrink pixel-space
	// positions). Zero means 1 (no scaling).
	Scale float64 `yaml:"scale"`

	// Edges lists directed arcs in file order; that order is preserved
	// in the graph and therefore in the recorded trace.
	Edges []SceneEdge `yaml:"edges"`

	// Layout positions every vertex; vertices appearing only here (no
	// arcs) still become graph vertices.
	Layout map[int]ScenePoint `yaml:"layout"`
}

// SceneEdge is one directed arc of a scene.
type SceneEdge struct {
	From   int   `yaml:"from"`
	To     int   `yaml:"to"`
	Weight int64 `yaml:"weight"`
}

// ScenePoint is one 2D layout position.
type ScenePoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load decodes a YAML scene. Unknown fields and type mismatches fail
// with an ErrParse-wrapped error; yaml.v3 includes the offending line.
func Load(r io.Reader) (*Scene, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scene
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if s.Scale == 0 {
		s.Scale = 1
	}

	return &s, nil
}

// LoadFile opens and decodes a YAML scene file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Graph materializes the scene's graph: every layout vertex exists even
// without arcs, and arcs keep file order.
func (s *Scene) Graph() (*core.Graph, error) {
	g := core.NewGraph()
	for v := range s.Layout {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("scene: layout: %w", err)
		}
	}
	for i, e := range s.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("scene: edge %d: %w", i, err)
		}
	}

	return g, nil
}

// PlayerLayout converts the scene's positions to the player's layout
// type. Scaling is left to the player (player.WithScale(s.Scale)).
func (s *Scene) PlayerLayout() player.Layout {
	layout := make(player.Layout, len(s.Layout))
	for v, p := range s.Layout {
		layout[v] = player.Point{X: p.X, Y: p.Y}
	}

	return layout
}
