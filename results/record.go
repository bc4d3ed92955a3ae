package results

import (
	"github.com/kingsene19/graph-coloration/coloring"
	"github.com/kingsene19/graph-coloration/core"
)

// Statuses recognized in record files. StatusOptimal and StatusFeasible
// never originate here; they appear in result sets written by exact
// solvers and count as solved when read back.
const (
	StatusSolved    = string(coloring.StatusSolved)
	StatusNotSolved = string(coloring.StatusNotSolved)
	StatusOptimal   = "OPTIMAL"
	StatusFeasible  = "FEASIBLE"
)

// Record is the on-disk form of one solve outcome.
type Record struct {
	// GraphName is the instance base name the record belongs to.
	GraphName string `json:"graph_name"`

	// Status is the symbolic outcome label.
	Status string `json:"status"`

	// Coloring maps vertex id to color; omitted when not solved.
	Coloring map[int]int `json:"coloring,omitempty"`

	// NumColors is the distinct color count, null when not solved.
	NumColors *int `json:"num_colors"`

	// Duration is the solve wall-clock time in seconds.
	Duration float64 `json:"duration"`

	// NumNodes is the instance vertex count.
	NumNodes int `json:"num_nodes"`

	// EdgeDensity is EdgeCount / (N·(N−1)/2) of the instance.
	EdgeDensity float64 `json:"edge_density"`

	// Solved reports whether a coloring was produced within budget.
	Solved bool `json:"solved"`

	// Edges lists every adjacency pair in both directions, the shape
	// visualization tooling consumes.
	Edges [][2]int `json:"edges"`
}

// NewRecord folds a Summary and its instance graph into a Record.
func NewRecord(name string, sum coloring.Summary, g *core.Graph) Record {
	rec := Record{
		GraphName:   name,
		Status:      string(sum.Status),
		Duration:    sum.Duration.Seconds(),
		NumNodes:    sum.Vertices,
		EdgeDensity: sum.Density,
		Solved:      sum.Solved,
		Edges:       directedPairs(g),
	}
	if sum.Solved {
		count := sum.ColorCount
		rec.NumColors = &count
		rec.Coloring = make(map[int]int, len(sum.Colors))
		for v := 1; v <= len(sum.Colors); v++ {
			rec.Coloring[v] = sum.Colors.Of(v)
		}
	}

	return rec
}

// IsSolved reports whether the record represents a successful solve,
// accepting the legacy statuses of exact-solver result sets.
func (r Record) IsSolved() bool {
	return r.Solved || r.Status == StatusOptimal || r.Status == StatusFeasible
}

// directedPairs flattens the adjacency of g into (u, v) pairs, each
// undirected edge appearing once per direction in ascending vertex order.
func directedPairs(g *core.Graph) [][2]int {
	pairs := make([][2]int, 0, 2*g.EdgeCount())
	for u := 1; u <= g.VertexCount(); u++ {
		for _, v := range g.Neighbors(u) {
			pairs = append(pairs, [2]int{u, v})
		}
	}

	return pairs
}
