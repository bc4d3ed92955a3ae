// Package coloring - probabilistic independent-set constructor.
//
// One construction pass decomposes the graph into independent sets: sample
// a seed vertex from the still-available pool by weighted probability, grow
// an independent set around it breadth-first, claim the set, and give each
// member the smallest color its neighborhood allows. Repeating passes until
// the pool drains yields a complete valid coloring; the weights steer which
// decompositions repeated trials explore.
//
// Design:
//   - Deterministic given (weights, seed): all randomness flows through
//     the injected *rand.Rand.
//   - Swap-delete available pool with positional index: O(1) claims.
//   - Epoch-stamped color marking: first-fit without per-member clearing.
//   - Soft wall-clock budget, checked once per pass.
package coloring

import (
	"math/rand"

	"github.com/kingsene19/graph-coloration/core"
)

// ConstructOnce runs a single construction pass over g using weights as
// the per-vertex seed distribution and returns a complete, valid, dense
// coloring together with the number of colors allocated.
//
// The sampler restricts weights to the available pool and falls back to a
// uniform draw when the restricted mass is zero. A candidate neighbor of a
// frontier vertex joins the growing set only while still available and
// with no neighbor of its own already a member, which keeps all members
// mutually non-adjacent. Each claimed member prefers the smallest color
// strictly below the pass's current color index that no neighbor holds,
// and allocates the index as a brand-new color otherwise.
//
// Contracts:
//   - g non-nil; len(weights) == g.VertexCount(); entries nonnegative.
//   - g is never mutated; weights are read-only here.
//
// Errors: ErrNilGraph; ErrWeightsLength; ErrDeadlineExceeded when the
// budget expires mid-construction (no partial coloring is returned).
//
// Complexity: O(V·(V+E)) worst-case time over a whole pass sequence,
// O(V) auxiliary space.
func ConstructOnce(g *core.Graph, weights []float64, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if len(weights) != g.VertexCount() {
		return Result{}, ErrWeightsLength
	}

	colors, count, err := constructOnce(g, weights, rngFromSeed(opts.Seed), newBudget(opts))
	if err != nil {
		return Result{}, err
	}

	return Result{Colors: colors, ColorCount: count}, nil
}

// constructOnce is the engine behind ConstructOnce; Search drives it
// directly so that one RNG stream and one budget span all trials.
func constructOnce(g *core.Graph, weights []float64, rng *rand.Rand, bgt *budget) (Coloring, int, error) {
	n := g.VertexCount()
	colors := make(Coloring, n)
	for i := range colors {
		colors[i] = uncolored
	}
	if n == 0 {
		return colors, 0, nil
	}

	var (
		avail    = make([]int, n)    // available pool, order irrelevant
		pos      = make([]int, n+1)  // pos[v] = index in avail; −1 once claimed
		inSet    = make([]bool, n+1) // membership in the growing set
		queue    = make([]int, 0, n) // BFS frontier of the current pass
		members  = make([]int, 0, n) // vertices admitted in the current pass
		markedAt = make([]int, n+1)  // markedAt[c] == epoch ⇒ color c blocked
		epoch    int
	)
	for i := 0; i < n; i++ {
		avail[i] = i + 1
		pos[i+1] = i
	}

	// claim removes v from the pool by swapping it with the tail element.
	claim := func(v int) {
		i, last := pos[v], len(avail)-1
		moved := avail[last]
		avail[i] = moved
		pos[moved] = i
		avail = avail[:last]
		pos[v] = -1
	}

	colorIdx := 0
	for len(avail) > 0 {
		if bgt.expired() {
			return nil, 0, ErrDeadlineExceeded
		}

		seed := sampleCategorical(rng, avail, weights)

		// Grow an independent set breadth-first from the seed.
		members = members[:0]
		queue = queue[:0]
		inSet[seed] = true
		members = append(members, seed)
		queue = append(queue, seed)
		for head := 0; head < len(queue); head++ {
			for _, cand := range g.Neighbors(queue[head]) {
				if pos[cand] < 0 || inSet[cand] {
					continue
				}
				admissible := true
				for _, w := range g.Neighbors(cand) {
					if inSet[w] {
						admissible = false
						break
					}
				}
				if !admissible {
					continue
				}
				inSet[cand] = true
				members = append(members, cand)
				queue = append(queue, cand)
			}
		}

		for _, m := range members {
			claim(m)
		}

		// Color each member: smallest free color below colorIdx, else a
		// brand-new color equal to colorIdx.
		for _, m := range members {
			epoch++
			for _, u := range g.Neighbors(m) {
				if colors[u-1] != uncolored {
					markedAt[colors[u-1]] = epoch
				}
			}

			assigned := -1
			for cand := 0; cand < colorIdx; cand++ {
				if markedAt[cand] != epoch {
					assigned = cand
					break
				}
			}
			if assigned < 0 {
				assigned = colorIdx
				colorIdx++
			}
			colors[m-1] = assigned
		}

		// Reset membership marks for the next pass.
		for _, m := range members {
			inSet[m] = false
		}
	}

	return colors, colorIdx, nil
}
