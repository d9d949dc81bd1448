package scene

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathtrace/core"
)

// ParseEdgeList reads a plain textual edge list, one `u v weight` per
// line, into a graph. Blank lines and lines starting with '#' are
// skipped. Arcs keep file order, so the format round-trips to the
// graph model exactly.
//
// Any malformed line fails with an ErrParse-wrapped error naming the
// 1-based line number. Semantic failures from the graph itself (e.g.
// a negative vertex ID) keep their own sentinel, also with the line.
func ParseEdgeList(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)

	var lineNo int
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%w: line %d: want `u v weight`, got %q", ErrParse, lineNo, line)
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: vertex %q: %v", ErrParse, lineNo, fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: vertex %q: %v", ErrParse, lineNo, fields[1], err)
		}
		w, err := strconv.ParseInt(fields[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: weight %q: %v", ErrParse, lineNo, fields[2], err)
		}

		if err = g.AddEdge(u, v, w); err != nil {
			return nil, fmt.Errorf("scene: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scene: read: %w", err)
	}

	return g, nil
}
