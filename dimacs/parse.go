package dimacs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kingsene19/graph-coloration/core"
)

// maxLineBytes bounds one input line; archive instances stay far below it.
const maxLineBytes = 1 << 20

// Parse reads a single DIMACS .col instance from r.
//
// Contracts:
//   - The first problem line wins; a second yields ErrDuplicateProblem.
//   - Edge lines need exactly three fields; endpoints must lie in 1..N.
//   - A stream without any problem or edge line parses as the empty graph.
//
// Errors: ErrMissingProblem, ErrDuplicateProblem, ErrMalformedLine,
// ErrVertexRange, core.ErrLoopNotAllowed, all wrapped with the line
// number; scanner failures are wrapped verbatim.
func Parse(r io.Reader) (*core.Graph, error) {
	var (
		g      *core.Graph
		sc     = bufio.NewScanner(r)
		lineNo int
	)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "c":
			// comment

		case "p":
			if g != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrDuplicateProblem)
			}
			if len(fields) < 3 {
				return nil, fmt.Errorf("dimacs: line %d: problem line needs a vertex count: %w", lineNo, ErrMalformedLine)
			}
			n, err := strconv.Atoi(fields[2])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("dimacs: line %d: vertex count %q: %w", lineNo, fields[2], ErrMalformedLine)
			}
			if g, err = core.NewGraph(n); err != nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, err)
			}

		case "e":
			if g == nil {
				return nil, fmt.Errorf("dimacs: line %d: %w", lineNo, ErrMissingProblem)
			}
			if len(fields) != 3 {
				return nil, fmt.Errorf("dimacs: line %d: edge line needs two endpoints: %w", lineNo, ErrMalformedLine)
			}
			u, errU := strconv.Atoi(fields[1])
			v, errV := strconv.Atoi(fields[2])
			if errU != nil || errV != nil {
				return nil, fmt.Errorf("dimacs: line %d: endpoints %q %q: %w", lineNo, fields[1], fields[2], ErrMalformedLine)
			}
			if err := g.AddEdge(u, v); err != nil {
				if errors.Is(err, core.ErrVertexRange) {
					return nil, fmt.Errorf("dimacs: line %d: edge %d-%d: %w", lineNo, u, v, ErrVertexRange)
				}

				return nil, fmt.Errorf("dimacs: line %d: edge %d-%d: %w", lineNo, u, v, err)
			}

		default:
			// Unknown line types are tolerated, like the published readers do.
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dimacs: read: %w", err)
	}

	if g == nil {
		return core.NewGraph(0)
	}

	return g, nil
}

// ParseFile reads one instance from path.
func ParseFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dimacs: open: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
