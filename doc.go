// Package coloration is a heuristic graph-coloring toolkit for DIMACS
// benchmark instances: parse, color, record, compare.
//
// 🚀 What does it do?
//
//	A small set of composable packages covering the whole benchmark loop:
//		• core     — the undirected simple graph the engines run on
//		• builder  — deterministic shape and random-graph constructors
//		• coloring — DSATUR and the adaptive probabilistic engine with
//		             local-search refinement, under one wall-clock budget
//		• dimacs   — .col parsing and the instance repository
//		• dataset  — benchmark archive bootstrap over HTTP
//		• results  — result records, persistence and comparison tooling
//		• runner   — batch solving: config, logging, metrics, watch mode
//
// ✨ Design notes
//
//   - Deterministic by default – every random choice flows from one seed
//   - Explicit budgets – solves stop at round boundaries when time is up
//   - Plain structs in, plain structs out – no hidden state between calls
//
// The cmd/coloration binary ties the packages together: fetch a dataset,
// solve it in parallel, then compare the records against a reference.
//
// Quick ASCII example:
//
//	    1───2
//	    │   │
//	    3───4
//
//	a square colors with two colors: {1, 4} and {2, 3}.
//
// Start with coloring.Solve for single graphs or runner.Run for batches.
package coloration
