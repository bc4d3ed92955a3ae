// Package coloring provides heuristic graph-coloring engines.
//
// It includes two solving strategies over core.Graph:
//
//   - DSATUR — deterministic greedy by saturation degree.
//
//   - Complexity: O(V² + E)
//
//   - Same graph ⇒ same coloring, every run.
//
//   - Probabilistic — adaptive independent-set construction (Search)
//     refined by randomized local search (Refine).
//
//   - Complexity: O(Trials·V·(V+E) + Rounds·V·C·deg)
//
//   - Seeded: same Options.Seed ⇒ same coloring.
//
// Solve dispatches between them and always produces the uniform Summary
// record. Both strategies are anytime under Options.TimeLimit: deadlines
// are checked at round boundaries, a timed-out solve reports Solved=false
// rather than an error, and every solved summary carries a valid coloring
// whose colors are exactly {0, …, k−1}.
//
// Colorings are never optimal by guarantee; they are best-effort upper
// bounds on the chromatic number. Use AlgoDSATUR for reproducible
// baselines and AlgoProbabilistic when extra wall-clock time may buy
// fewer colors.
package coloring
