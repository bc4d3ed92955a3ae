// Package dimacs reads graph instances in the DIMACS .col exchange format.
//
// The format is line-oriented:
//
//	c <comment>        ignored
//	p <fmt> <N> [<M>]  declares vertices 1..N (exactly one per file)
//	e <u> <v>          undirected edge between u and v
//
// Anything else is skipped, matching the de-facto tolerance of published
// .col collections. Duplicate and reversed edge lines collapse onto the
// same undirected edge. The declared edge count M is not enforced; many
// archive files disagree with their own edge list.
//
// Parse reads one instance from a stream; ParseFile and Repository wrap it
// for files and directories of instances. Errors are sentinel-based and
// carry the offending line number via %w wrapping.
package dimacs
