// Package builder constructs well-known graph families on top of core.Graph.
//
// Every constructor returns a fresh undirected simple graph with vertices
// labeled 1..n, built deterministically: the same parameters always yield
// the same edge set, and RandomSparse is reproducible through its seed.
// The generators exist mostly to feed the coloring engines with instances
// whose chromatic structure is known in advance (cycles, cliques, stars,
// bipartite graphs), which makes them the natural fixtures for tests and
// benchmarks.
//
// Errors are sentinel-based: ErrTooFewVertices for size-domain violations
// and ErrBadProbability for RandomSparse probabilities outside [0,1].
// Callers branch with errors.Is.
package builder
