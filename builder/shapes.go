package builder

import (
	"fmt"

	"github.com/kingsene19/graph-coloration/core"
)

// Stable method tags for error context.
const (
	methodCycle     = "Cycle"
	methodPath      = "Path"
	methodComplete  = "Complete"
	methodStar      = "Star"
	methodWheel     = "Wheel"
	methodBipartite = "CompleteBipartite"

	minCycleVertices = 3
	minWheelRim      = 3
)

// Cycle builds the simple cycle C_n over vertices 1..n.
//
// Contract:
//   - n >= 3, else ErrTooFewVertices.
//   - Edges are emitted in ascending order i-(i+1), closing with n-1.
//   - Chromatic number: 2 for even n, 3 for odd n.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleVertices {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: edge %d-%d: %w", methodCycle, i, i+1, err)
		}
	}
	if err = g.AddEdge(n, 1); err != nil {
		return nil, fmt.Errorf("%s: edge %d-%d: %w", methodCycle, n, 1, err)
	}
	return g, nil
}

// Path builds the simple path P_n over vertices 1..n (n >= 1).
func Path(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodPath, n, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodPath, err)
	}
	for i := 1; i < n; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("%s: edge %d-%d: %w", methodPath, i, i+1, err)
		}
	}
	return g, nil
}

// Complete builds the clique K_n over vertices 1..n (n >= 1).
// Every proper coloring of K_n needs exactly n colors.
func Complete(n int) (*core.Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodComplete, err)
	}
	for u := 1; u < n; u++ {
		for v := u + 1; v <= n; v++ {
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: edge %d-%d: %w", methodComplete, u, v, err)
			}
		}
	}
	return g, nil
}

// Star builds the star S_leaves: center vertex 1 joined to leaves 2..leaves+1.
// leaves >= 1, else ErrTooFewVertices. Chromatic number is always 2.
func Star(leaves int) (*core.Graph, error) {
	if leaves < 1 {
		return nil, fmt.Errorf("%s: leaves=%d < min=1: %w", methodStar, leaves, ErrTooFewVertices)
	}
	g, err := core.NewGraph(leaves + 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodStar, err)
	}
	for v := 2; v <= leaves+1; v++ {
		if err = g.AddEdge(1, v); err != nil {
			return nil, fmt.Errorf("%s: edge %d-%d: %w", methodStar, 1, v, err)
		}
	}
	return g, nil
}

// Wheel builds the wheel W_rim: hub vertex 1 joined to every vertex of the
// rim cycle 2..rim+1. rim >= 3, else ErrTooFewVertices.
func Wheel(rim int) (*core.Graph, error) {
	if rim < minWheelRim {
		return nil, fmt.Errorf("%s: rim=%d < min=%d: %w", methodWheel, rim, minWheelRim, ErrTooFewVertices)
	}
	g, err := core.NewGraph(rim + 1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWheel, err)
	}
	for i := 0; i < rim; i++ {
		u := 2 + i
		v := 2 + (i+1)%rim
		if err = g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%s: edge %d-%d: %w", methodWheel, u, v, err)
		}
		if err = g.AddEdge(1, u); err != nil {
			return nil, fmt.Errorf("%s: edge %d-%d: %w", methodWheel, 1, u, err)
		}
	}
	return g, nil
}

// CompleteBipartite builds K_{m,n}: left part 1..m fully joined to right
// part m+1..m+n. Both parts must be non-empty. Chromatic number is 2.
func CompleteBipartite(m, n int) (*core.Graph, error) {
	if m < 1 || n < 1 {
		return nil, fmt.Errorf("%s: parts %dx%d: %w", methodBipartite, m, n, ErrTooFewVertices)
	}
	g, err := core.NewGraph(m + n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBipartite, err)
	}
	for u := 1; u <= m; u++ {
		for v := m + 1; v <= m+n; v++ {
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: edge %d-%d: %w", methodBipartite, u, v, err)
			}
		}
	}
	return g, nil
}

// Edgeless builds the graph on vertices 1..n with no edges (n >= 0).
func Edgeless(n int) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("Edgeless: n=%d: %w", n, ErrTooFewVertices)
	}
	return core.NewGraph(n)
}
