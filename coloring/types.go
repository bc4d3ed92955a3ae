package coloring

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("coloring: nil graph")

	// ErrWeightsLength is returned when a weight vector does not have
	// exactly one entry per vertex.
	ErrWeightsLength = errors.New("coloring: weights length does not match vertex count")

	// ErrIncompleteColoring is returned when a coloring does not assign a
	// nonnegative color to every vertex of the graph.
	ErrIncompleteColoring = errors.New("coloring: coloring does not cover every vertex")

	// ErrInvalidColoring is returned by Validate when two adjacent vertices
	// share a color.
	ErrInvalidColoring = errors.New("coloring: adjacent vertices share a color")

	// ErrUnknownAlgorithm is returned for an Algorithm value Solve does not know.
	ErrUnknownAlgorithm = errors.New("coloring: unknown algorithm")

	// ErrDeadlineExceeded is returned when the wall-clock budget or context
	// of a solve expires before its loops complete. Search and Refine
	// return the best result found so far alongside this error.
	ErrDeadlineExceeded = errors.New("coloring: deadline exceeded")
)

// Algorithm selects the strategy Solve dispatches to.
type Algorithm int

const (
	// AlgoProbabilistic runs the adaptive independent-set constructor
	// (Search) followed by the local-search refiner (Refine).
	AlgoProbabilistic Algorithm = iota

	// AlgoDSATUR runs the deterministic saturation-degree greedy (DSATUR).
	AlgoDSATUR
)

// String returns the canonical lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoProbabilistic:
		return "probabilistic"
	case AlgoDSATUR:
		return "dsatur"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a case-insensitive name ("probabilistic", "dsatur")
// to its Algorithm value; unknown names yield ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "probabilistic":
		return AlgoProbabilistic, nil
	case "dsatur":
		return AlgoDSATUR, nil
	default:
		return 0, ErrUnknownAlgorithm
	}
}

// uncolored marks a vertex not yet assigned inside engine state.
// It never appears in a Coloring returned to callers.
const uncolored = -1

// Coloring assigns a color to every vertex of a graph: index v−1 holds the
// color of vertex v. A coloring is valid when every pair of adjacent
// vertices holds distinct colors, and dense when the set of colors used is
// exactly {0, …, k−1} for k = ColorCount. Every coloring returned by this
// package is valid and dense.
type Coloring []int

// Of returns the color of vertex v. v must lie in [1, len(c)].
func (c Coloring) Of(v int) int { return c[v-1] }

// Clone returns an independent copy of c.
func (c Coloring) Clone() Coloring {
	if c == nil {
		return nil
	}
	out := make(Coloring, len(c))
	copy(out, c)

	return out
}

// ColorCount returns the number of distinct colors in c.
// For a dense coloring this equals 1 + the maximum color.
func (c Coloring) ColorCount() int { return distinctCount(c) }

// Result pairs a complete coloring with its distinct color count.
type Result struct {
	// Colors is the per-vertex assignment; nil only when an operation was
	// cut off by its deadline before producing any coloring.
	Colors Coloring

	// ColorCount is the number of distinct colors in Colors.
	ColorCount int
}

// Status labels the outcome of a solve in its Summary.
type Status string

const (
	// StatusSolved marks a solve that produced a valid coloring in budget.
	StatusSolved Status = "SOLVED"

	// StatusNotSolved marks a timed-out or degenerate solve.
	StatusNotSolved Status = "NOT_SOLVED"
)

// Summary is the uniform record produced by Solve regardless of the
// algorithm that ran. A timed-out solve carries Solved=false and a nil
// Colors; callers must not read that as "the graph is not colorable".
type Summary struct {
	// Algo is the algorithm that produced this summary.
	Algo Algorithm

	// Status mirrors Solved as a symbolic label.
	Status Status

	// Colors is the final coloring, nil when not solved.
	Colors Coloring

	// ColorCount is the number of distinct colors used, zero when not solved.
	ColorCount int

	// Duration is the wall-clock time of the solve.
	Duration time.Duration

	// Vertices and Edges describe the input graph.
	Vertices int
	Edges    int

	// Density is EdgeCount / (N·(N−1)/2) of the input graph.
	Density float64

	// Solved reports whether a coloring was produced within the budget.
	Solved bool
}

// statusFor maps the solved flag onto its Status label.
func statusFor(solved bool) Status {
	if solved {
		return StatusSolved
	}

	return StatusNotSolved
}
