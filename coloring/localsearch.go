// Package coloring - local-search refiner.
//
// Refine sweeps the vertices in random order, first-fit recoloring each
// one strictly below the incumbent color count. A sweep is kept only when
// it is conflict-free and strictly reduces the distinct color count;
// otherwise the round's working state reverts to its pre-round snapshot
// and a random perturbation kicks the search off the plateau. The
// incumbent only ever advances to valid sweeps, so the returned coloring
// is valid and dense whenever the input is, even though perturbed working
// states may transiently conflict.
package coloring

import (
	"math/rand"

	"github.com/kingsene19/graph-coloration/core"
)

// Refine improves start for up to MaxRounds rounds (DefaultMaxRounds when
// unset) and returns the best coloring seen with its color count.
//
// Per round: snapshot the working coloring; visit every vertex in a fresh
// random order, giving it the first color strictly below bestCount−1 that
// no neighbor holds (vertices with no feasible recolor stay unchanged);
// accept the sweep as the new best only when valid and strictly smaller,
// densifying the stored best; otherwise revert to the snapshot and
// reassign a PerturbFraction share of vertices an independent uniform
// color in [0, current maximum color], unconditionally.
//
// Refinement is best-effort and never fails: the color count of the result
// never exceeds that of start, and the stored best is relabeled densely on
// every improvement (an input returned unimproved keeps its own labels).
//
// Contracts:
//   - g non-nil; start assigns a nonnegative color to every vertex of g.
//   - g is never mutated; start is copied, not modified.
//   - Same seed ⇒ same returned coloring.
//
// Errors: ErrNilGraph; ErrIncompleteColoring for a non-total start;
// ErrDeadlineExceeded when the budget expires, with the best-so-far
// returned alongside the error.
//
// Complexity: O(MaxRounds·V·C·deg) time with C the incumbent color count,
// O(V) space.
func Refine(g *core.Graph, start Coloring, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	return refine(g, start, opts, rngFromSeed(opts.Seed), newBudget(opts))
}

// refine is the engine behind Refine; Solve drives it directly so one RNG
// stream and one budget span construction and refinement.
func refine(g *core.Graph, start Coloring, opts Options, rng *rand.Rand, bgt *budget) (Result, error) {
	n := g.VertexCount()
	if len(start) != n {
		return Result{}, ErrIncompleteColoring
	}
	for _, c := range start {
		if c < 0 {
			return Result{}, ErrIncompleteColoring
		}
	}
	if n == 0 {
		return Result{Colors: Coloring{}, ColorCount: 0}, nil
	}

	var (
		best      = start.Clone()
		bestCount = distinctCount(best)
		working   = start.Clone()
		snapshot  = make(Coloring, n)
		order     = make([]int, n) // sweep order, reshuffled per round
	)
	for i := range order {
		order[i] = i + 1
	}

	var (
		maxRounds = opts.maxRounds()
		fraction  = opts.perturbFraction()
	)
	for round := 0; round < maxRounds; round++ {
		if bgt.expired() {
			return Result{Colors: best, ColorCount: bestCount}, ErrDeadlineExceeded
		}

		copy(snapshot, working)
		shuffleIntsInPlace(order, rng)

		limit := bestCount - 1
		for _, v := range order {
			recolorFirstFit(g, working, v, limit)
		}

		improved := false
		if conflictFree(g, working) {
			if count := distinctCount(working); count < bestCount {
				best = working.Clone()
				bestCount = densifyInPlace(best)
				improved = true
			}
		}
		if !improved {
			copy(working, snapshot)
			perturb(working, rng, fraction)
		}
	}

	return Result{Colors: best, ColorCount: bestCount}, nil
}

// recolorFirstFit gives v the first color in [0, limit) that no neighbor
// of v holds under c, leaving v unchanged when every candidate is blocked.
func recolorFirstFit(g *core.Graph, c Coloring, v, limit int) {
	var cand int
	for cand = 0; cand < limit; cand++ {
		free := true
		for _, u := range g.Neighbors(v) {
			if c[u-1] == cand {
				free = false
				break
			}
		}
		if free {
			c[v-1] = cand

			return
		}
	}
}

// perturb reassigns ⌊fraction·N⌋ distinct random vertices an independent
// uniform color in [0, max(c)]. For ⌊fraction·N⌋ == 0 it is a no-op.
func perturb(c Coloring, rng *rand.Rand, fraction float64) {
	k := int(fraction * float64(len(c)))
	if k <= 0 {
		return
	}

	span := maxColor(c) + 1
	for _, v := range permVertices(len(c), rng)[:k] {
		c[v-1] = rng.Intn(span)
	}
}
