package core_test

import (
	"fmt"

	"github.com/kingsene19/graph-coloration/core"
)

// ExampleGraph builds the 4-cycle 1-2-3-4-1 and queries it.
func ExampleGraph() {
	g, _ := core.NewGraph(4)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 3)
	_ = g.AddEdge(3, 4)
	_ = g.AddEdge(4, 1)

	fmt.Println("vertices:", g.VertexCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("neighbors of 1:", g.Neighbors(1))
	fmt.Printf("density: %.3f\n", g.Density())

	// Output:
	// vertices: 4
	// edges: 4
	// neighbors of 1: [2 4]
	// density: 0.667
}
