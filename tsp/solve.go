// Package tsp - unified dispatcher for TSP solvers.
//
// Solve routes a graph to the solver named by Options.Algo. Every solver
// validates its own preconditions, so the dispatcher only checks options.
//
// Design principles:
//   - Deterministic: no randomness, candidates scanned in ascending ID.
//   - Strict sentinels: only errors from types.go (and core.ErrNoCoordinates
//     from the distance resolver).
//   - Stable cost: all returned costs are rounded to 1e-9 to prevent FP drift.

package tsp

import "github.com/katalvlaran/lvtsp/core"

// Solve runs the algorithm selected by opts.Algo on g.
//
// Error Conditions:
//   - ErrBadOptions: negative Eps or MaxSweeps.
//   - ErrUnsupportedAlgorithm: unknown opts.Algo.
//   - anything the selected solver returns.
func Solve(g *core.Graph, opts Options) (TSResult, error) {
	if err := validateOptions(opts); err != nil {
		return TSResult{}, err
	}

	switch opts.Algo {
	case BranchAndBound:
		return TSPBranchAndBound(g)
	case Triangular:
		return TSPTriangular(g)
	case Shipping:
		return TSPShipping(g)
	case NearestOnly:
		return NearestNeighbour(g)
	case Heuristic:
		return TSPHeuristic(g, opts)
	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
}
