// Package tsp: 2-opt local search (first-improvement, full sweeps).
//
// TwoOpt improves a closed tour T[0..n] (T[0] == T[n] == Depot) by
// replacing two non-adjacent edges (a,b) = (T[i],T[i+1]) and
// (c,d) = (T[j],T[j+1]) with (a,c) and (b,d), which amounts to reversing
// T[i+1..j]:
//
//	Δ = (w(a,c) + w(b,d)) − (w(a,b) + w(c,d)),   accept iff Δ < −eps.
//
// Distances are resolved (direct edge, else great-circle) and prefetched
// into a dense buffer; unresolvable pairs are +Inf and never accepted.
// Resolved distances are symmetric, so the reversed segment keeps its cost.
//
// Index ranges per sweep: 0 ≤ i ≤ n−3, i+2 ≤ j ≤ n−1, skipping (0, n−1)
// where both edges touch the depot. j reaches n−1, so the closing edge
// (T[n−1], Depot) takes part in moves; a sweep over the open path alone
// would miss crossings that run through it. Sweeps repeat until one makes
// no move or Options.MaxSweeps is reached.
//
// Complexity: O(n²) per sweep; O(n²) memory for the prefetch.

package tsp

import (
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// TwoOpt returns an improved copy of init and its cost under the resolved
// metric. init is not modified.
//
// Error Conditions:
//   - ErrNilGraph, ErrTooFewVertices, ErrVertexGap: precondition failures.
//   - ErrBadOptions: negative Eps or MaxSweeps.
//   - ErrInvalidTour: init is not a closed Hamiltonian cycle from the depot.
//   - ErrNotFullyConnected: some leg of init cannot be resolved.
func TwoOpt(g *core.Graph, init []int, opts Options) ([]int, float64, error) {
	vs, err := vertexArena(g)
	if err != nil {
		return nil, 0, err
	}
	if err = validateOptions(opts); err != nil {
		return nil, 0, err
	}
	n := len(vs)
	if err = ValidateTour(init, n); err != nil {
		return nil, 0, err
	}

	w := denseResolved(vs)
	at := func(u, v int) float64 { return w[u*n+v] }

	tour := CopyTour(init)
	var cost float64
	for i := 0; i < n; i++ {
		cost += at(tour[i], tour[i+1])
	}
	if math.IsInf(cost, 1) {
		return nil, 0, ErrNotFullyConnected
	}

	var (
		a, b, c, d int
		added      float64
		delta      float64
		improved   bool
	)
	for sweep := 1; ; sweep++ {
		improved = false
		for i := 0; i <= n-3; i++ {
			a, b = tour[i], tour[i+1]
			for j := i + 2; j <= n-1; j++ {
				if i == 0 && j == n-1 {
					continue
				}
				c, d = tour[j], tour[j+1]
				added = at(a, c) + at(b, d)
				if math.IsInf(added, 1) {
					continue
				}
				delta = added - (at(a, b) + at(c, d))
				if delta < -opts.Eps {
					reverseArcInPlace(tour, i+1, j)
					cost += delta
					b = tour[i+1]
					improved = true
				}
			}
		}
		if !improved || (opts.MaxSweeps > 0 && sweep >= opts.MaxSweeps) {
			break
		}
	}

	return tour, round1e9(cost), nil
}

// TSPHeuristic runs NearestNeighbour and then TwoOpt on its tour.
// It fails exactly when NearestNeighbour does, with Cost = NoTourCost.
func TSPHeuristic(g *core.Graph, opts Options) (TSResult, error) {
	if err := validateOptions(opts); err != nil {
		return TSResult{}, err
	}
	nn, err := NearestNeighbour(g)
	if err != nil {
		return nn, err
	}

	tour, cost, err := TwoOpt(g, nn.Tour, opts)
	if err != nil {
		return TSResult{Cost: NoTourCost}, err
	}

	return TSResult{Tour: tour, Cost: cost}, nil
}
