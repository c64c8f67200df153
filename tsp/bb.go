// Package tsp: Branch-and-Bound (exact search over direct edges).
//
// TSPBranchAndBound enumerates Hamiltonian cycles from the depot by
// depth-first search. Only direct edges are admissible; the great-circle
// fallback is never consulted, so the result is an optimum over the graph
// as stored.
//
// Steps:
//  1. Prefetch direct weights into a dense n×n buffer (+Inf = no edge) to
//     keep the hot loop free of adjacency lookups and locks.
//  2. Search: from the current last vertex, try every unvisited v in
//     ascending ID with a direct edge last→v, pruning when the partial
//     cost plus that edge already reaches the incumbent.
//  3. At depth n, close the cycle with last→depot if that edge exists; keep
//     the candidate only if strictly cheaper than the incumbent, so the
//     first optimum found in ascending-ID order wins ties.
//
// Complexity:
//   - Worst case O(n!) time (exact search); pruning is what keeps it usable.
//   - Memory: O(n²) for the prefetch plus O(n) for path and flags.

package tsp

import (
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// bbEngine holds all search state for one run.
type bbEngine struct {
	n int
	w []float64 // dense direct weights, row-major

	// Current partial path; path[0] == Depot.
	path []int
	used []bool

	// Incumbent.
	bestTour []int
	bestCost float64
}

// at returns the direct weight u→v, +Inf when absent.
func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// TSPBranchAndBound returns the minimum-cost Hamiltonian cycle that starts
// and ends at vertex 0 and uses only direct edges.
//
// When no such cycle exists it returns Cost = +Inf, a nil Tour and ErrNoTour.
//
// Error Conditions:
//   - ErrNilGraph, ErrTooFewVertices, ErrVertexGap: precondition failures.
//   - ErrNoTour: no Hamiltonian cycle over direct edges.
func TSPBranchAndBound(g *core.Graph) (TSResult, error) {
	vs, err := vertexArena(g)
	if err != nil {
		return TSResult{}, err
	}

	n := len(vs)
	e := &bbEngine{
		n:        n,
		w:        denseDirect(vs),
		path:     make([]int, n),
		used:     make([]bool, n),
		bestCost: math.Inf(1),
	}
	e.path[0] = Depot
	e.used[Depot] = true

	e.search(1, 0)

	if e.bestTour == nil {
		return TSResult{Cost: math.Inf(1)}, ErrNoTour
	}

	return TSResult{Tour: e.bestTour, Cost: round1e9(e.bestCost)}, nil
}

// search extends path at position depth; cost is the weight of path[0..depth-1].
func (e *bbEngine) search(depth int, cost float64) {
	last := e.path[depth-1]

	if depth == e.n {
		c := e.at(last, Depot)
		if math.IsInf(c, 1) {
			return
		}
		if total := cost + c; total < e.bestCost {
			e.commit(total)
		}
		return
	}

	var c float64
	for v := 1; v < e.n; v++ {
		if e.used[v] {
			continue
		}
		c = e.at(last, v)
		if math.IsInf(c, 1) || cost+c >= e.bestCost {
			continue
		}
		e.used[v] = true
		e.path[depth] = v
		e.search(depth+1, cost+c)
		e.used[v] = false
	}
}

// commit records the current full path as the new incumbent.
func (e *bbEngine) commit(total float64) {
	e.bestCost = total
	e.bestTour = closeTour(e.path)
}
