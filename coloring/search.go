// Package coloring - adaptive trial search over constructor restarts.
//
// Search restarts the probabilistic constructor a fixed number of times,
// keeping the construction with the fewest colors. Between trials the seed
// weights adapt: every vertex incident to a conflicting edge of the trial
// coloring gains weight, then the vector renormalizes to sum 1. The
// constructor's output is conflict-free, so with the current engine the
// boost never fires and the weights stay uniform; the mechanism stays
// wired and tested for constructors that can emit conflicts.
package coloring

import (
	"math/rand"

	"github.com/kingsene19/graph-coloration/core"
)

// Search runs opts-many constructor trials (DefaultTrials when unset) over
// g and returns the best construction by color count. The weight vector
// starts uniform at 1/N per vertex and lives only for this call.
//
// The best tracker starts strictly worse than any legal coloring, so the
// first completed trial always becomes the incumbent and a nil result can
// only accompany ErrDeadlineExceeded.
//
// Contracts:
//   - g non-nil; never mutated.
//   - Same seed ⇒ same returned coloring.
//
// Errors: ErrNilGraph; ErrDeadlineExceeded when the budget expires, in
// which case the best coloring found so far (possibly none) is returned
// alongside the error.
//
// Complexity: O(Trials·V·(V+E)) time worst case, O(V) space.
func Search(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	return search(g, opts, rngFromSeed(opts.Seed), newBudget(opts))
}

// search is the engine behind Search; Solve drives it directly so one RNG
// stream and one budget span construction and refinement.
func search(g *core.Graph, opts Options, rng *rand.Rand, bgt *budget) (Result, error) {
	n := g.VertexCount()
	if n == 0 {
		return Result{Colors: Coloring{}, ColorCount: 0}, nil
	}

	weights := make([]float64, n)
	uniform := 1.0 / float64(n)
	for i := range weights {
		weights[i] = uniform
	}

	var (
		best      Coloring
		bestCount = n + 1 // strictly worse than any legal coloring
	)
	bestSoFar := func() Result {
		if best == nil {
			return Result{}
		}

		return Result{Colors: best, ColorCount: bestCount}
	}

	trials := opts.trials()
	for trial := 0; trial < trials; trial++ {
		if bgt.expired() {
			return bestSoFar(), ErrDeadlineExceeded
		}

		colors, count, err := constructOnce(g, weights, rng, bgt)
		if err != nil {
			return bestSoFar(), err
		}

		if count < bestCount {
			best, bestCount = colors, count
		}

		// Boost every vertex incident to a conflicting edge, then
		// renormalize so the vector remains a distribution.
		_, marked := conflictScan(g, colors)
		for v := 1; v <= n; v++ {
			if marked[v] {
				weights[v-1] += conflictWeightBoost
			}
		}
		renormalizeWeights(weights)
	}

	return bestSoFar(), nil
}

// renormalizeWeights scales w in place to sum to 1.
// A non-positive total leaves w unchanged.
func renormalizeWeights(w []float64) {
	var total float64
	for _, x := range w {
		total += x
	}
	if total <= 0 {
		return
	}
	for i := range w {
		w[i] /= total
	}
}
