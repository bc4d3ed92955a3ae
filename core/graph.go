package core

import "slices"

// NewGraph returns an empty graph over vertices 1..n.
// n may be zero (the empty graph); a negative n yields ErrVertexCount.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrVertexCount
	}

	return &Graph{adj: make([][]int, n)}, nil
}

// VertexCount returns N, the number of vertices.
func (g *Graph) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of undirected edges, each counted once.
func (g *Graph) EdgeCount() int { return g.edges }

// inRange reports whether v is a valid vertex identifier.
func (g *Graph) inRange(v int) bool { return v >= 1 && v <= len(g.adj) }

// AddEdge inserts the undirected edge (u,v).
//
// Duplicate insertions are silent no-ops so that instance files listing an
// edge in both directions do not inflate EdgeCount. Endpoints outside
// [1, N] yield ErrVertexRange; u == v yields ErrLoopNotAllowed.
//
// Complexity: O(deg(u) + deg(v)) for the sorted inserts.
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v {
		return ErrLoopNotAllowed
	}
	if g.hasEdge(u, v) {
		return nil
	}

	g.insert(u, v)
	g.insert(v, u)
	g.edges++

	return nil
}

// insert places w into u's neighbor slice, keeping it sorted ascending.
func (g *Graph) insert(u, w int) {
	i, _ := slices.BinarySearch(g.adj[u-1], w)
	g.adj[u-1] = slices.Insert(g.adj[u-1], i, w)
}

// hasEdge assumes both endpoints are in range.
func (g *Graph) hasEdge(u, v int) bool {
	_, found := slices.BinarySearch(g.adj[u-1], v)

	return found
}

// HasEdge reports whether the undirected edge (u,v) exists.
// Endpoints outside [1, N] report false.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return g.hasEdge(u, v)
}

// Neighbors returns the ascending neighbor identifiers of v as a live view
// into the graph; callers must not modify the returned slice. Vertices
// outside [1, N] return nil.
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}

	return g.adj[v-1]
}

// Degree returns the number of distinct neighbors of v,
// zero when v lies outside [1, N].
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}

	return len(g.adj[v-1])
}

// Density returns EdgeCount divided by the maximum undirected edge count
// N·(N−1)/2. Graphs with fewer than two vertices have density zero.
func (g *Graph) Density() float64 {
	n := len(g.adj)
	if n < 2 {
		return 0
	}

	return float64(g.edges) / float64(n*(n-1)/2)
}

// Edges returns every undirected edge exactly once as {u, v} with u < v,
// ordered by u, then v. The slice is freshly allocated per call.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)

	var u, v int
	for u = 1; u <= len(g.adj); u++ {
		for _, v = range g.adj[u-1] {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}
