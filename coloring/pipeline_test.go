package coloring_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kingsene19/graph-coloration/builder"
	"github.com/kingsene19/graph-coloration/coloring"
)

// PipelineSuite exercises flows that span several engine entry points.
type PipelineSuite struct {
	suite.Suite
}

// TestConstructorFeedsRefine verifies the production chain: one constructor
// pass yields a valid dense coloring and refinement never hands back more
// colors than it was given.
func (s *PipelineSuite) TestConstructorFeedsRefine() {
	g, err := builder.Wheel(6)
	require.NoError(s.T(), err)

	built, err := coloring.ConstructOnce(g, uniformWeights(g.VertexCount()), coloring.DefaultOptions())
	require.NoError(s.T(), err)
	requireValidDense(s.T(), g, built)

	refined, err := coloring.Refine(g, built.Colors, coloring.DefaultOptions())
	require.NoError(s.T(), err)
	requireValidDense(s.T(), g, refined)
	require.LessOrEqual(s.T(), refined.ColorCount, built.ColorCount)
}

// TestDispatcherMatchesDSATUR verifies Solve adds nothing on top of the
// deterministic engine: same colors, same count.
func (s *PipelineSuite) TestDispatcherMatchesDSATUR() {
	g, err := builder.Wheel(7)
	require.NoError(s.T(), err)

	opts := coloring.DefaultOptions()
	opts.Algo = coloring.AlgoDSATUR

	direct, err := coloring.DSATUR(g, opts)
	require.NoError(s.T(), err)

	sum, err := coloring.Solve(g, opts)
	require.NoError(s.T(), err)
	require.True(s.T(), sum.Solved)
	require.Equal(s.T(), direct.Colors, sum.Colors)
	require.Equal(s.T(), direct.ColorCount, sum.ColorCount)
}

// TestEnginesAgreeOnPath verifies both engines land on the two-color
// optimum of P_3.
func (s *PipelineSuite) TestEnginesAgreeOnPath() {
	g, err := builder.Path(3)
	require.NoError(s.T(), err)

	for _, algo := range []coloring.Algorithm{coloring.AlgoDSATUR, coloring.AlgoProbabilistic} {
		opts := coloring.DefaultOptions()
		opts.Algo = algo

		sum, err := coloring.Solve(g, opts)
		require.NoError(s.T(), err, algo.String())
		require.True(s.T(), sum.Solved, algo.String())
		require.Equal(s.T(), 2, sum.ColorCount, algo.String())
		require.NoError(s.T(), coloring.Validate(g, sum.Colors), algo.String())
	}
}

// TestEdgelessCollapses verifies both engines fold an edgeless instance
// into a single color class.
func (s *PipelineSuite) TestEdgelessCollapses() {
	g, err := builder.Edgeless(12)
	require.NoError(s.T(), err)

	for _, algo := range []coloring.Algorithm{coloring.AlgoDSATUR, coloring.AlgoProbabilistic} {
		opts := coloring.DefaultOptions()
		opts.Algo = algo

		sum, err := coloring.Solve(g, opts)
		require.NoError(s.T(), err, algo.String())
		require.True(s.T(), sum.Solved, algo.String())
		require.Equal(s.T(), 1, sum.ColorCount, algo.String())
	}
}

// TestBudgetRetry verifies the recovery flow: a blown budget reports
// NOT_SOLVED without an error, and the same instance solves on a retry
// with a real budget.
func (s *PipelineSuite) TestBudgetRetry() {
	g, err := builder.RandomSparse(300, 0.05, 7)
	require.NoError(s.T(), err)

	tight := coloring.DefaultOptions()
	tight.TimeLimit = time.Nanosecond

	sum, err := coloring.Solve(g, tight)
	require.NoError(s.T(), err)
	require.False(s.T(), sum.Solved)
	require.Equal(s.T(), coloring.StatusNotSolved, sum.Status)
	require.Nil(s.T(), sum.Colors)

	sum, err = coloring.Solve(g, coloring.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), sum.Solved)
	require.NoError(s.T(), coloring.Validate(g, sum.Colors))
}

// TestTamperingDetected verifies a solved coloring that is corrupted after
// the fact fails validation and the conflict report names both endpoints.
func (s *PipelineSuite) TestTamperingDetected() {
	g, err := builder.Wheel(5)
	require.NoError(s.T(), err)

	opts := coloring.DefaultOptions()
	opts.Algo = coloring.AlgoDSATUR

	sum, err := coloring.Solve(g, opts)
	require.NoError(s.T(), err)
	require.True(s.T(), sum.Solved)

	hubNeighbor := g.Neighbors(1)[0]
	tampered := sum.Colors.Clone()
	tampered[0] = tampered.Of(hubNeighbor)

	require.ErrorIs(s.T(), coloring.Validate(g, tampered), coloring.ErrInvalidColoring)

	count, vertices, err := coloring.Conflicts(g, tampered)
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), count, 1)
	require.Contains(s.T(), vertices, 1)
	require.Contains(s.T(), vertices, hubNeighbor)
}

// Entry point for running the suite.
func TestPipelineSuite(t *testing.T) {
	suite.Run(t, new(PipelineSuite))
}
