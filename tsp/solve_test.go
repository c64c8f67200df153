package tsp_test

import (
	"testing"

	"github.com/katalvlaran/lvtsp/builder"
	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreconditions(t *testing.T) {
	single := core.NewGraph()
	_, err := single.AddVertex(0)
	require.NoError(t, err)

	gap := core.NewGraph()
	require.NoError(t, gap.Connect(0, 2, 1))

	for _, algo := range []tsp.Algorithm{
		tsp.BranchAndBound, tsp.Triangular, tsp.Shipping, tsp.NearestOnly, tsp.Heuristic,
	} {
		opts := tsp.DefaultOptions()
		opts.Algo = algo

		_, err = tsp.Solve(nil, opts)
		assert.ErrorIs(t, err, tsp.ErrNilGraph, algo.String())
		_, err = tsp.Solve(single, opts)
		assert.ErrorIs(t, err, tsp.ErrTooFewVertices, algo.String())
		_, err = tsp.Solve(gap, opts)
		assert.ErrorIs(t, err, tsp.ErrVertexGap, algo.String())
	}
}

func TestSolve_Dispatch(t *testing.T) {
	g := classic4(t)

	for _, algo := range []tsp.Algorithm{tsp.BranchAndBound, tsp.NearestOnly, tsp.Heuristic} {
		res, err := tsp.Solve(g, tsp.Options{Algo: algo, Eps: tsp.DefaultEps})
		require.NoError(t, err, algo.String())
		assert.InDelta(t, 80.0, res.Cost, eps, algo.String())
	}

	_, err := tsp.Solve(g, tsp.Options{Algo: tsp.Algorithm(42)})
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	_, err = tsp.Solve(g, tsp.Options{Algo: tsp.Heuristic, MaxSweeps: -1})
	assert.ErrorIs(t, err, tsp.ErrBadOptions)
}

func TestSolve_NearestOnlySkipsTwoOpt(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Points([]builder.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}))
	require.NoError(t, err)

	nn, err := tsp.NearestNeighbour(g)
	require.NoError(t, err)
	got, err := tsp.Solve(g, tsp.Options{Algo: tsp.NearestOnly, Eps: tsp.DefaultEps})
	require.NoError(t, err)
	assert.Equal(t, nn, got)

	algo, err := tsp.ParseAlgorithm("nearest")
	require.NoError(t, err)
	assert.Equal(t, tsp.NearestOnly, algo)
}

func TestParseAlgorithm(t *testing.T) {
	for _, algo := range []tsp.Algorithm{
		tsp.BranchAndBound, tsp.Triangular, tsp.Shipping, tsp.NearestOnly, tsp.Heuristic,
	} {
		got, err := tsp.ParseAlgorithm(" " + algo.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, algo, got)
	}

	got, err := tsp.ParseAlgorithm("EXACT")
	require.NoError(t, err)
	assert.Equal(t, tsp.BranchAndBound, got)

	_, err = tsp.ParseAlgorithm("christofides")
	assert.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)
	assert.Equal(t, "Algorithm(9)", tsp.Algorithm(9).String())
}

func TestValidateTour(t *testing.T) {
	good := []int{0, 2, 1, 3, 0}
	require.NoError(t, tsp.ValidateTour(good, 4))

	for name, bad := range map[string][]int{
		"short":       {0, 1, 2, 0},
		"open":        {0, 1, 2, 3, 1},
		"wrong start": {1, 0, 2, 3, 1},
		"repeat":      {0, 1, 1, 3, 0},
		"range":       {0, 1, 4, 3, 0},
	} {
		assert.ErrorIs(t, tsp.ValidateTour(bad, 4), tsp.ErrInvalidTour, name)
	}
}

func TestTourCost(t *testing.T) {
	g := classic4(t)

	cost, err := tsp.TourCost(g, []int{0, 1, 3, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, 80.0, cost)

	_, err = tsp.TourCost(isolated2(t), []int{0, 1, 2, 3, 0})
	assert.ErrorIs(t, err, core.ErrNoCoordinates)

	_, err = tsp.TourCost(g, []int{0, 7, 0})
	assert.ErrorIs(t, err, tsp.ErrInvalidTour)
}

func TestTourHelpers(t *testing.T) {
	src := []int{0, 2, 1, 0}
	cp := tsp.CopyTour(src)
	cp[1] = 9
	assert.Equal(t, 2, src[1])
	assert.Nil(t, tsp.CopyTour(nil))

	assert.Equal(t, "0 -> 2 -> 1 -> 0", tsp.FormatTour(src))
	assert.Equal(t, "", tsp.FormatTour(nil))
}

// TestSolvers_ExactIsLowerBound checks the ordering exact ≤ every heuristic on
// small complete metric instances, where every solver returns a full tour.
func TestSolvers_ExactIsLowerBound(t *testing.T) {
	for seed := int64(1); seed <= 4; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Geometric(8))
		require.NoError(t, err)

		exact, err := tsp.TSPBranchAndBound(g)
		require.NoError(t, err)
		require.NoError(t, tsp.ValidateTour(exact.Tour, 8))

		for _, algo := range []tsp.Algorithm{tsp.Triangular, tsp.Shipping, tsp.NearestOnly, tsp.Heuristic} {
			res, err := tsp.Solve(g, tsp.Options{Algo: algo, Eps: tsp.DefaultEps})
			require.NoError(t, err, algo.String())
			require.NoError(t, tsp.ValidateTour(res.Tour, 8), algo.String())
			assert.LessOrEqual(t, exact.Cost, res.Cost+1e-6, "seed %d %s", seed, algo)
		}

		// Metric instance: the MST walk is within twice the optimum.
		tri, err := tsp.TSPTriangular(g)
		require.NoError(t, err)
		assert.LessOrEqual(t, tri.Cost, 2*exact.Cost+1e-6)
	}
}

func TestSolvers_SquareWithCenterEndToEnd(t *testing.T) {
	g := builder.SquareWithCenter()

	exact, err := tsp.TSPBranchAndBound(g)
	require.NoError(t, err)
	tri, err := tsp.TSPTriangular(g)
	require.NoError(t, err)
	h, err := tsp.TSPHeuristic(g, tsp.DefaultOptions())
	require.NoError(t, err)

	assert.LessOrEqual(t, exact.Cost, tri.Cost+eps)
	assert.LessOrEqual(t, exact.Cost, h.Cost+eps)
	assert.Len(t, exact.Tour, 6)
	assert.Equal(t, 0, exact.Tour[0])
	assert.Equal(t, 0, exact.Tour[5])
}
