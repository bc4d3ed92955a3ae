// Package coloring - unified dispatcher for the coloring engines.
//
// Solve is the canonical entry point: it routes to the requested algorithm
// and folds the outcome into the uniform Summary record consumed by
// reporting, with one RNG stream and one wall-clock budget spanning all
// phases of a run.
//
// Design principles:
//   - Deterministic: seed routing to the heuristics; no time-based randomness.
//   - Strict sentinels: only errors from types.go cross the boundary.
//   - Timeout is reported, not thrown: an expired budget yields a Summary
//     with Solved=false and a nil coloring, never an error.
package coloring

import (
	"errors"
	"time"

	"github.com/kingsene19/graph-coloration/core"
)

// Solve colors g with the algorithm selected by opts.Algo and returns the
// uniform Summary.
//
//   - AlgoDSATUR: the deterministic saturation-degree greedy.
//   - AlgoProbabilistic: adaptive trial search (Search) over the
//     independent-set constructor, refined by local search (Refine), with
//     one seed stream and one deadline spanning both phases.
//
// The empty graph is trivially solved with zero colors by both algorithms.
// When the budget or context expires — or the engines finish only after
// the deadline has already passed — the summary carries Solved=false, no
// coloring, and no error; that outcome must not be read as "not
// colorable". A solved summary always holds a valid, dense coloring.
//
// Errors: ErrNilGraph; ErrUnknownAlgorithm.
//
// Complexity: per chosen algorithm (see DSATUR, Search, Refine).
func Solve(g *core.Graph, opts Options) (Summary, error) {
	if g == nil {
		return Summary{}, ErrNilGraph
	}
	if opts.Algo != AlgoProbabilistic && opts.Algo != AlgoDSATUR {
		return Summary{}, ErrUnknownAlgorithm
	}

	var (
		started = time.Now()
		bgt     = newBudget(opts)
		rng     = rngFromSeed(opts.Seed)
		res     Result
		err     error
	)

	switch opts.Algo {
	case AlgoDSATUR:
		res, err = dsatur(g, bgt)
	case AlgoProbabilistic:
		res, err = search(g, opts, rng, bgt)
		if err == nil {
			// Search completed every trial, so res holds a real coloring.
			res, err = refine(g, res.Colors, opts, rng, bgt)
		}
	}

	summary := Summary{
		Algo:     opts.Algo,
		Duration: time.Since(started),
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Density:  g.Density(),
	}

	switch {
	case errors.Is(err, ErrDeadlineExceeded):
		// Best-effort partials stay internal; the summary reports only
		// that the budget ran out.
	case err != nil:
		return Summary{}, err
	case bgt.expired():
		// The loops finished, but past the deadline: the budget rules.
	default:
		summary.Solved = true
		summary.Colors = res.Colors
		summary.ColorCount = res.ColorCount
	}
	summary.Status = statusFor(summary.Solved)

	return summary, nil
}
