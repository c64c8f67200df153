package tsp

import (
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

const roundScale = 1e9

// round1e9 stabilizes floating-point noise so equal tours compare equal
// across solvers that sum the same edges in different orders.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// denseDirect returns an n×n row-major buffer of direct edge weights,
// +Inf where no edge exists.
//
// Complexity: O(n²) time and memory.
func denseDirect(vs []*core.Vertex) []float64 {
	n := len(vs)
	inf := math.Inf(1)
	w := make([]float64, n*n)
	for i := range w {
		w[i] = inf
	}
	for u, v := range vs {
		for _, e := range v.Edges() {
			w[u*n+e.To] = e.Weight
		}
	}

	return w
}

// denseResolved returns an n×n row-major buffer of resolved distances:
// the direct edge if present, else the great-circle distance, else +Inf.
//
// Complexity: O(n²) time and memory.
func denseResolved(vs []*core.Vertex) []float64 {
	n := len(vs)
	w := make([]float64, n*n)
	for u := 0; u < n; u++ {
		for v := u; v < n; v++ {
			d := 0.0
			if u != v {
				var err error
				if d, err = core.ResolvedDistance(vs[u], vs[v]); err != nil {
					d = math.Inf(1)
				}
			}
			w[u*n+v] = d
			w[v*n+u] = d
		}
	}

	return w
}

// TourCost sums the resolved distance of every consecutive pair in tour.
// It returns core.ErrNoCoordinates when some pair has neither a direct
// edge nor coordinates on both ends.
//
// Complexity: O(len(tour)).
func TourCost(g *core.Graph, tour []int) (float64, error) {
	vs, err := vertexArena(g)
	if err != nil {
		return 0, err
	}
	n := len(vs)

	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		a, b := tour[i], tour[i+1]
		if a < 0 || a >= n || b < 0 || b >= n {
			return 0, ErrInvalidTour
		}
		d, err := core.ResolvedDistance(vs[a], vs[b])
		if err != nil {
			return 0, err
		}
		sum += d
	}

	return round1e9(sum), nil
}
