package builder

import (
	"fmt"
	"math/rand"

	"github.com/kingsene19/graph-coloration/core"
)

const (
	methodRandomSparse = "RandomSparse"

	probMin = 0.0
	probMax = 1.0
)

// RandomSparse samples an Erdős–Rényi graph G(n, p): every unordered pair
// {u, v} with u < v becomes an edge independently with probability p.
//
// Contract:
//   - n >= 0, else ErrTooFewVertices.
//   - 0 <= p <= 1, else ErrBadProbability.
//   - Trials run in ascending (u, v) order, so a fixed seed always yields
//     the same graph.
func RandomSparse(n int, p float64, seed int64) (*core.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", methodRandomSparse, n, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%v not in [%v,%v]: %w", methodRandomSparse, p, probMin, probMax, ErrBadProbability)
	}
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, err)
	}
	rng := rand.New(rand.NewSource(seed))
	for u := 1; u < n; u++ {
		for v := u + 1; v <= n; v++ {
			if rng.Float64() >= p {
				continue
			}
			if err = g.AddEdge(u, v); err != nil {
				return nil, fmt.Errorf("%s: edge %d-%d: %w", methodRandomSparse, u, v, err)
			}
		}
	}
	return g, nil
}
