package scene

// Default returns the built-in eight-vertex demo scene: a symmetric
// mesh with pixel-space layout positions, start vertex 0, and the
// shrink factor that maps the raw coordinates onto a unit-ish canvas.
func Default() *Scene {
	return &Scene{
		Start: 0,
		Scale: 0.0015,
		Edges: []SceneEdge{
			{From: 0, To: 1, Weight: 6}, {From: 0, To: 2, Weight: 1},
			{From: 1, To: 0, Weight: 6}, {From: 1, To: 3, Weight: 1}, {From: 1, To: 5, Weight: 8},
			{From: 2, To: 0, Weight: 1}, {From: 2, To: 4, Weight: 3},
			{From: 3, To: 1, Weight: 1}, {From: 3, To: 5, Weight: 5},
			{From: 4, To: 2, Weight: 3}, {From: 4, To: 5, Weight: 4}, {From: 4, To: 7, Weight: 3},
			{From: 5, To: 1, Weight: 8}, {From: 5, To: 3, Weight: 5}, {From: 5, To: 4, Weight: 4}, {From: 5, To: 6, Weight: 5},
			{From: 6, To: 5, Weight: 5}, {From: 6, To: 7, Weight: 4},
			{From: 7, To: 4, Weight: 3}, {From: 7, To: 6, Weight: 4},
		},
		Layout: map[int]ScenePoint{
			0: {X: 500, Y: 100},
			1: {X: 200, Y: 200},
			2: {X: 800, Y: 200},
			3: {X: 200, Y: 400},
			4: {X: 800, Y: 400},
			5: {X: 500, Y: 500},
			6: {X: 200, Y: 600},
			7: {X: 800, Y: 600},
		},
	}
}
