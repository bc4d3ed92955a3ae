// Package coloring - DSATUR greedy engine.
//
// DSATUR ("degree of saturation") colors vertices one at a time, always
// picking an uncolored vertex whose colored neighborhood shows the most
// distinct colors. The saturation of every vertex is maintained
// incrementally: coloring v updates only the distinct-color sets of v's
// uncolored neighbors, which leaves the selection semantics identical to
// recomputing saturation from scratch at every step.
//
// Design:
//   - Deterministic: fixed initial vertex, strict tie-breaks, no RNG.
//   - Strict sentinels: only errors from types.go.
//   - Soft wall-clock budget, checked once per assignment.
package coloring

import "github.com/kingsene19/graph-coloration/core"

// DSATUR colors g greedily by descending saturation degree and returns a
// valid, dense coloring.
//
// Selection rule, applied until every vertex is colored: among uncolored
// vertices take the maximum saturation degree; break ties by the larger
// static degree, then by the lower vertex identifier. The chosen vertex
// receives the smallest color not used by any of its colored neighbors.
// Vertex 1 is colored first with color 0.
//
// The empty graph yields an empty coloring with zero colors and no error.
//
// Contracts:
//   - g non-nil (ErrNilGraph otherwise); g is never mutated.
//   - Running twice over the same graph yields the same coloring.
//
// Errors: ErrNilGraph; ErrDeadlineExceeded when opts' budget expires, in
// which case no partial coloring is returned.
//
// Complexity: O(V² + E) time (linear selection scan per assignment),
// O(V + E) space for the saturation sets.
func DSATUR(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	return dsatur(g, newBudget(opts))
}

// dsatur runs the greedy under an externally owned budget, so Solve can
// share one deadline across phases.
func dsatur(g *core.Graph, bgt *budget) (Result, error) {
	n := g.VertexCount()
	if n == 0 {
		return Result{Colors: Coloring{}, ColorCount: 0}, nil
	}

	colors := make(Coloring, n)
	for i := range colors {
		colors[i] = uncolored
	}

	// neighborColors[v] holds the distinct colors already assigned among
	// v's neighbors; its length is v's saturation degree. Maps are
	// allocated lazily, only for vertices that gain a colored neighbor.
	neighborColors := make([]map[int]struct{}, n+1)

	assign := func(v, c int) {
		colors[v-1] = c
		for _, u := range g.Neighbors(v) {
			if colors[u-1] != uncolored {
				continue
			}
			set := neighborColors[u]
			if set == nil {
				set = make(map[int]struct{}, 4)
				neighborColors[u] = set
			}
			set[c] = struct{}{}
		}
	}

	// The first vertex is colored outside the selection loop: with all
	// saturations at zero the loop would prefer the maximum-degree vertex,
	// while the contract fixes vertex 1.
	assign(1, 0)

	var (
		colored          = 1  // vertices assigned so far
		v, best          int  // scan cursor and current selection
		sat, deg         int  // candidate saturation and static degree
		bestSat, bestDeg int  // selection maxima
	)
	for colored < n {
		if bgt.expired() {
			// Partial colorings never escape; callers get the sentinel only.
			return Result{}, ErrDeadlineExceeded
		}

		best, bestSat, bestDeg = 0, -1, -1
		for v = 1; v <= n; v++ {
			if colors[v-1] != uncolored {
				continue
			}
			sat = len(neighborColors[v])
			deg = g.Degree(v)
			// Strict comparisons keep the lowest identifier on full ties.
			if sat > bestSat || (sat == bestSat && deg > bestDeg) {
				best, bestSat, bestDeg = v, sat, deg
			}
		}

		assign(best, smallestFree(neighborColors[best]))
		colored++
	}

	return Result{Colors: colors, ColorCount: distinctCount(colors)}, nil
}

// smallestFree returns the least nonnegative color absent from used.
// A nil set yields 0.
func smallestFree(used map[int]struct{}) int {
	var c int
	for {
		if _, ok := used[c]; !ok {
			return c
		}
		c++
	}
}
