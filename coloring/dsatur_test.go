package coloring_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kingsene19/graph-coloration/builder"
	"github.com/kingsene19/graph-coloration/coloring"
)

// TestDSATUR_NilGraph verifies the nil-graph sentinel.
func TestDSATUR_NilGraph(t *testing.T) {
	_, err := coloring.DSATUR(nil, coloring.DefaultOptions())
	require.ErrorIs(t, err, coloring.ErrNilGraph)
}

// TestDSATUR_EmptyGraph verifies the zero-vertex graph is trivially solved
// with zero colors.
func TestDSATUR_EmptyGraph(t *testing.T) {
	g, err := builder.Edgeless(0)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Empty(t, res.Colors)
	require.Equal(t, 0, res.ColorCount)
}

// TestDSATUR_Edgeless verifies a graph without edges collapses to one color.
func TestDSATUR_Edgeless(t *testing.T) {
	g, err := builder.Edgeless(6)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 1, res.ColorCount)
	for v := 1; v <= 6; v++ {
		require.Equal(t, 0, res.Colors.Of(v))
	}
}

// TestDSATUR_EvenCycle verifies the even cycle gets exactly two colors.
func TestDSATUR_EvenCycle(t *testing.T) {
	g, err := builder.Cycle(4)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, res.ColorCount)
	requireValidDense(t, g, res)
}

// TestDSATUR_OddCycle verifies the odd cycle gets exactly three colors:
// its chromatic number is 3 and the greedy never exceeds Δ+1 = 3.
func TestDSATUR_OddCycle(t *testing.T) {
	g, err := builder.Cycle(5)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, res.ColorCount)
	requireValidDense(t, g, res)
}

// TestDSATUR_Clique verifies K_5 needs all five colors.
func TestDSATUR_Clique(t *testing.T) {
	g, err := builder.Complete(5)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 5, res.ColorCount)
	requireValidDense(t, g, res)
}

// TestDSATUR_Star verifies the star gets exactly two colors no matter how
// many leaves it has.
func TestDSATUR_Star(t *testing.T) {
	g, err := builder.Star(7)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, res.ColorCount)
	requireValidDense(t, g, res)
}

// TestDSATUR_Bipartite verifies exactness on complete bipartite graphs,
// where saturation-degree selection is known to be optimal.
func TestDSATUR_Bipartite(t *testing.T) {
	g, err := builder.CompleteBipartite(4, 3)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 2, res.ColorCount)
	requireValidDense(t, g, res)
}

// TestDSATUR_Wheel verifies the even-rim wheel resolves to three colors
// (two alternating on the rim plus one for the hub).
func TestDSATUR_Wheel(t *testing.T) {
	g, err := builder.Wheel(6)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 3, res.ColorCount)
	requireValidDense(t, g, res)
}

// TestDSATUR_GreedyBound verifies the Δ+1 upper bound and the output
// contract on a random instance.
func TestDSATUR_GreedyBound(t *testing.T) {
	g, err := builder.RandomSparse(80, 0.2, 3)
	require.NoError(t, err)

	res, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.LessOrEqual(t, res.ColorCount, maxDegree(g)+1)
	requireValidDense(t, g, res)
}

// TestDSATUR_Deterministic verifies two runs over the same graph return
// the identical coloring.
func TestDSATUR_Deterministic(t *testing.T) {
	g, err := builder.RandomSparse(60, 0.15, 11)
	require.NoError(t, err)

	first, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	second, err := coloring.DSATUR(g, coloring.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, first.Colors, second.Colors)
	require.Equal(t, first.ColorCount, second.ColorCount)
}

// TestDSATUR_Timeout verifies an expired budget yields the sentinel and
// withholds any partial coloring.
func TestDSATUR_Timeout(t *testing.T) {
	g, err := builder.RandomSparse(300, 0.1, 5)
	require.NoError(t, err)

	opts := coloring.DefaultOptions()
	opts.TimeLimit = time.Nanosecond

	res, err := coloring.DSATUR(g, opts)
	require.ErrorIs(t, err, coloring.ErrDeadlineExceeded)
	require.Nil(t, res.Colors)
}

// TestDSATUR_ContextCanceled verifies cooperative cancellation through
// Options.Ctx.
func TestDSATUR_ContextCanceled(t *testing.T) {
	g, err := builder.RandomSparse(300, 0.1, 5)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := coloring.DefaultOptions()
	opts.TimeLimit = 0
	opts.Ctx = ctx

	_, err = coloring.DSATUR(g, opts)
	require.ErrorIs(t, err, coloring.ErrDeadlineExceeded)
}
