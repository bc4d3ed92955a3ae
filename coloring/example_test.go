package coloring_test

import (
	"fmt"

	"github.com/kingsene19/graph-coloration/builder"
	"github.com/kingsene19/graph-coloration/coloring"
)

// ExampleDSATUR colors the 4-cycle: the greedy lands on the bipartite
// optimum deterministically.
func ExampleDSATUR() {
	g, _ := builder.Cycle(4)

	res, _ := coloring.DSATUR(g, coloring.DefaultOptions())
	fmt.Println(res.Colors, res.ColorCount)
	// Output:
	// [0 1 0 1] 2
}

// ExampleSolve runs the dispatcher end to end and reads the summary.
func ExampleSolve() {
	g, _ := builder.CompleteBipartite(3, 3)

	opts := coloring.DefaultOptions()
	opts.Algo = coloring.AlgoDSATUR

	sum, _ := coloring.Solve(g, opts)
	fmt.Printf("%s with %d colors on %d vertices\n", sum.Status, sum.ColorCount, sum.Vertices)
	// Output:
	// SOLVED with 2 colors on 6 vertices
}

// ExampleValidate contrasts a proper coloring with a monochromatic edge.
func ExampleValidate() {
	g, _ := builder.Cycle(4)

	fmt.Println(coloring.Validate(g, coloring.Coloring{0, 1, 0, 1}))
	fmt.Println(coloring.Validate(g, coloring.Coloring{0, 0, 1, 1}))
	// Output:
	// <nil>
	// coloring: adjacent vertices share a color
}
