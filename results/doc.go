// Package results persists and compares solve outcomes.
//
// A Record is the JSON form of one solve, keyed by graph name with the
// field names long-running benchmark tooling already expects
// (graph_name, status, coloring, num_colors, duration, num_nodes,
// edge_density, solved, edges). num_colors is null and coloring is
// omitted when a solve did not finish; readers also accept legacy
// OPTIMAL/FEASIBLE statuses as solved so foreign result sets remain
// comparable.
//
// Store reads and writes <name>_results.json files in one directory.
// Compare scores a result set against a reference color count per graph;
// Analyze contrasts two result sets pairwise. Both are pure functions
// over in-memory records.
package results
