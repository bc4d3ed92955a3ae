package coloring_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kingsene19/graph-coloration/coloring"
	"github.com/kingsene19/graph-coloration/core"
)

// requireValidDense asserts the package-wide output contract: the coloring
// is total and conflict-free, the reported count matches the distinct
// colors, and the colors used are exactly {0, …, count−1}.
func requireValidDense(t *testing.T, g *core.Graph, res coloring.Result) {
	t.Helper()

	require.NoError(t, coloring.Validate(g, res.Colors))
	require.Equal(t, res.ColorCount, res.Colors.ColorCount())
	for _, c := range res.Colors {
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, res.ColorCount)
	}
}

// uniformWeights returns the 1/n-per-vertex seed distribution.
func uniformWeights(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 1.0 / float64(n)
	}

	return w
}

// maxDegree returns the largest vertex degree of g, 0 for the empty graph.
func maxDegree(g *core.Graph) int {
	var m int
	for v := 1; v <= g.VertexCount(); v++ {
		if d := g.Degree(v); d > m {
			m = d
		}
	}

	return m
}
