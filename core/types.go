package core

import "errors"

var (
	// ErrVertexCount is returned by NewGraph for a negative vertex count.
	ErrVertexCount = errors.New("core: negative vertex count")

	// ErrVertexRange is returned when a vertex identifier lies outside [1, N].
	ErrVertexRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed is returned when both edge endpoints are the same vertex.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Graph is an undirected graph over dense 1-based vertex identifiers.
//
// Graphs are built once via NewGraph and AddEdge and treated as read-only
// afterwards; every query method is safe for concurrent use on a fully
// built graph. The zero value is an empty graph with no vertices.
type Graph struct {
	// adj[v-1] holds the ascending neighbor identifiers of vertex v.
	adj [][]int

	// edges counts undirected edges, each exactly once.
	edges int
}
