// Package core provides the dense undirected graph consumed by every
// coloring package in this module.
//
// What:
//
//   - Graph stores vertices 1..N with sorted per-vertex neighbor sets.
//   - Edges are undirected and deduplicated; self-loops are rejected.
//   - Built once (NewGraph + AddEdge), read-only afterwards: query methods
//     are safe for concurrent readers without locking.
//
// Why:
//
//   - Coloring heuristics walk neighbor lists in tight loops; a dense
//     slice-of-slices layout keeps those reads allocation-free.
//   - Benchmark instances (DIMACS) number vertices 1..N, so identifiers
//     map directly onto slice indices.
//
// Complexity:
//
//   - AddEdge:   O(deg) (sorted insert).
//   - Neighbors: O(1) (live view, do not mutate).
//   - HasEdge:   O(log deg).
//   - Edges:     O(V + E).
//
// Errors:
//
//   - ErrVertexCount: negative vertex count at construction.
//   - ErrVertexRange: vertex identifier outside [1, N].
//   - ErrLoopNotAllowed: attempt to add a self-loop.
package core
