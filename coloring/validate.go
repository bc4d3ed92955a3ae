// Package coloring - coloring validation and conflict accounting.
//
// Validate is the exported contract check (total, nonnegative, no
// monochromatic edge). Conflicts is the diagnostic counter feeding the
// adaptive trial reweighting; both treat the graph as read-only.
package coloring

import (
	"slices"

	"github.com/kingsene19/graph-coloration/core"
)

// Validate checks that c is a total, valid coloring of g.
//
// Errors:
//   - ErrNilGraph: g is nil.
//   - ErrIncompleteColoring: c does not assign a nonnegative color to
//     every vertex of g.
//   - ErrInvalidColoring: some edge has endpoints sharing a color.
//
// Complexity: O(V + E) time, O(1) space.
func Validate(g *core.Graph, c Coloring) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(c) != g.VertexCount() {
		return ErrIncompleteColoring
	}

	var u, v int
	for u = 1; u <= len(c); u++ {
		if c[u-1] < 0 {
			return ErrIncompleteColoring
		}
		for _, v = range g.Neighbors(u) {
			if u < v && c[u-1] == c[v-1] {
				return ErrInvalidColoring
			}
		}
	}

	return nil
}

// Conflicts counts the edges of g whose endpoints share a color under c
// (each undirected edge once) and returns the ascending identifiers of
// every vertex incident to such an edge. A conflict-free coloring yields
// (0, nil).
//
// Errors: ErrNilGraph; ErrIncompleteColoring when len(c) ≠ VertexCount.
//
// Complexity: O(V + E) time, O(V) space for the marker set.
func Conflicts(g *core.Graph, c Coloring) (int, []int, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	if len(c) != g.VertexCount() {
		return 0, nil, ErrIncompleteColoring
	}

	count, marked := conflictScan(g, c)
	if count == 0 {
		return 0, nil, nil
	}

	vertices := make([]int, 0, len(marked))
	for v, hit := range marked {
		if hit {
			vertices = append(vertices, v)
		}
	}

	return count, vertices, nil
}

// conflictScan is the allocation-light core of Conflicts: it returns the
// conflicting edge count and a 1-based marker slice of involved vertices.
func conflictScan(g *core.Graph, c []int) (int, []bool) {
	var (
		marked = make([]bool, len(c)+1)
		count  int
		u, v   int
	)
	for u = 1; u <= len(c); u++ {
		for _, v = range g.Neighbors(u) {
			if u < v && c[u-1] == c[v-1] {
				count++
				marked[u] = true
				marked[v] = true
			}
		}
	}

	return count, marked
}

// conflictFree reports whether no edge of g is monochromatic under c.
func conflictFree(g *core.Graph, c []int) bool {
	var u, v int
	for u = 1; u <= len(c); u++ {
		for _, v = range g.Neighbors(u) {
			if u < v && c[u-1] == c[v-1] {
				return false
			}
		}
	}

	return true
}

// distinctCount returns the number of distinct values in c.
func distinctCount(c []int) int {
	seen := make(map[int]struct{}, 8)
	for _, col := range c {
		seen[col] = struct{}{}
	}

	return len(seen)
}

// maxColor returns the largest value in c, or 0 for an empty slice.
func maxColor(c []int) int {
	var m int
	for _, col := range c {
		if col > m {
			m = col
		}
	}

	return m
}

// densifyInPlace relabels c so the colors used become exactly {0, …, k−1},
// preserving the relative order of color values, and returns k. Relabeling
// never changes which vertices share a color, so validity is preserved.
func densifyInPlace(c []int) int {
	if len(c) == 0 {
		return 0
	}

	distinct := make([]int, 0, 8)
	seen := make(map[int]struct{}, 8)
	for _, col := range c {
		if _, ok := seen[col]; !ok {
			seen[col] = struct{}{}
			distinct = append(distinct, col)
		}
	}
	slices.Sort(distinct)

	rank := make(map[int]int, len(distinct))
	for i, col := range distinct {
		rank[col] = i
	}
	for i, col := range c {
		c[i] = rank[col]
	}

	return len(distinct)
}
