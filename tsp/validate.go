package tsp

import (
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// vertexArena checks the solver preconditions and returns the vertices
// indexed by ID: non-nil graph, at least two vertices, no ID gaps.
//
// Complexity: O(V).
func vertexArena(g *core.Graph) ([]*core.Vertex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if n < 2 {
		return nil, ErrTooFewVertices
	}
	vs := g.Vertices()
	if len(vs) != n {
		return nil, ErrVertexGap
	}

	return vs, nil
}

// validateOptions rejects negative or NaN tolerances and negative sweep caps.
func validateOptions(opts Options) error {
	if opts.Eps < 0 || math.IsNaN(opts.Eps) || math.IsInf(opts.Eps, 0) {
		return ErrBadOptions
	}
	if opts.MaxSweeps < 0 {
		return ErrBadOptions
	}

	return nil
}

// ValidateTour checks that tour is a closed Hamiltonian cycle over n
// vertices: len(tour) == n+1, tour[0] == tour[n] == Depot, and
// tour[0..n-1] visits every ID in 0..n-1 exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n < 2 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if tour[0] != Depot || tour[n] != Depot {
		return ErrInvalidTour
	}

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		v := tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}
