// Command pathtrace runs the shortest-path tracer over a scene and
// prints every recorded step, either as human-readable text or as one
// JSON frame description per line for an external drawing surface.
//
// Usage:
//
//	pathtrace                         # trace the built-in demo scene
//	pathtrace -scene city.yaml        # trace a YAML scene
//	pathtrace -scene city.yaml -format json
//	pathtrace -edges graph.txt -start 0   # trace-only: no layout, no frames
//
// Frame pacing, colors, and video/GIF export are left to whatever
// consumes the output; this binary only proves frame content.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathtrace/player"
	"github.com/katalvlaran/pathtrace/scene"
	"github.com/katalvlaran/pathtrace/trace"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pathtrace:", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pathtrace", flag.ContinueOnError)
	scenePath := fs.String("scene", "", "YAML scene file (default: built-in demo scene)")
	edgesPath := fs.String("edges", "", "plain `u v weight` edge-list file (trace-only mode)")
	start := fs.Int("start", 0, "start vertex for -edges mode")
	format := fs.String("format", "text", "output format: text or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *format != "text" && *format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", *format)
	}

	// Edge-list mode carries no layout, so there are no frames to build:
	// emit the raw event log and the final distances.
	if *edgesPath != "" {
		f, err := os.Open(*edgesPath)
		if err != nil {
			return err
		}
		defer f.Close()

		g, err := scene.ParseEdgeList(f)
		if err != nil {
			return err
		}
		res, err := trace.Run(g, *start)
		if err != nil {
			return err
		}
		if *format == "json" {
			enc := json.NewEncoder(out)
			for _, ev := range res.Events {
				if err = enc.Encode(ev); err != nil {
					return err
				}
			}

			return nil
		}
		printEvents(out, res)

		return nil
	}

	sc := scene.Default()
	if *scenePath != "" {
		var err error
		if sc, err = scene.LoadFile(*scenePath); err != nil {
			return err
		}
	}

	g, err := sc.Graph()
	if err != nil {
		return err
	}
	res, err := trace.Run(g, sc.Start)
	if err != nil {
		return err
	}
	p, err := player.New(g, res, sc.PlayerLayout(), player.WithScale(sc.Scale))
	if err != nil {
		return err
	}

	if *format == "json" {
		return p.Play(&jsonRenderer{enc: json.NewEncoder(out)})
	}

	return p.Play(&textRenderer{w: out})
}

// jsonRenderer emits one frame description per line, the handoff format
// a browser or plotting frontend consumes.
type jsonRenderer struct {
	enc *json.Encoder
}

func (r *jsonRenderer) RenderFrame(f player.Frame) error { return r.enc.Encode(f) }

// textRenderer prints a compact line per frame and the summary table on
// the last one.
type textRenderer struct {
	w io.Writer
}

func (r *textRenderer) RenderFrame(f player.Frame) error {
	var step string
	if f.ActiveEdge != nil {
		step = fmt.Sprintf("relax  %d→%d", f.ActiveEdge.From, f.ActiveEdge.To)
	} else {
		step = fmt.Sprintf("settle %d", f.Active)
	}

	var settled, dists []string
	for _, n := range f.Nodes {
		if n.Settled {
			settled = append(settled, strconv.Itoa(n.ID))
		}
		if n.Label != "" {
			dists = append(dists, fmt.Sprintf("%d=%s", n.ID, n.Label))
		}
	}
	if _, err := fmt.Fprintf(r.w, "frame %2d  %-12s settled={%s}  dist[%s]\n",
		f.Index, step, strings.Join(settled, ","), strings.Join(dists, " ")); err != nil {
		return err
	}

	if f.Final {
		fmt.Fprintln(r.w, "\nvertex  distance")
		for _, row := range f.Table {
			fmt.Fprintf(r.w, "%6d  %s\n", row.Vertex, row.Distance)
		}
	}

	return nil
}

// printEvents renders a trace without a layout: the event lines plus a
// final table assembled directly from the distances.
func printEvents(w io.Writer, res *trace.Result) {
	for i, ev := range res.Events {
		if ev.Kind == trace.Relax {
			fmt.Fprintf(w, "frame %2d  relax  %d→%d\n", i, ev.Edge.From, ev.Edge.To)
		} else {
			fmt.Fprintf(w, "frame %2d  settle %d\n", i, ev.Vertex)
		}
	}

	vertices := make([]int, 0, len(res.Distances))
	for v := range res.Distances {
		vertices = append(vertices, v)
	}
	sort.Ints(vertices)

	fmt.Fprintln(w, "\nvertex  distance")
	for _, v := range vertices {
		d := "infinity"
		if res.Distances[v] != trace.Inf {
			d = strconv.FormatInt(res.Distances[v], 10)
		}
		fmt.Fprintf(w, "%6d  %s\n", v, d)
	}
}
