package tsp

import (
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// NearestNeighbour builds a tour greedily from the depot: at each step it
// moves to the unvisited vertex reachable by the lightest direct edge,
// scanning IDs in ascending order so the first of equal weights wins.
// The closing leg back to the depot uses ResolvedDistance.
//
// When some step has no unvisited direct neighbour, or the closing leg
// cannot be resolved, it returns Cost = NoTourCost with ErrNotFullyConnected.
//
// Complexity: O(n²) time, O(n) memory.
func NearestNeighbour(g *core.Graph) (TSResult, error) {
	vs, err := vertexArena(g)
	if err != nil {
		return TSResult{}, err
	}

	n := len(vs)
	visited := make([]bool, n)
	tour := make([]int, 0, n+1)
	tour = append(tour, Depot)
	visited[Depot] = true

	var (
		cur  = Depot
		cost float64
		e    *core.Edge
	)
	for len(tour) < n {
		next, best := -1, math.Inf(1)
		for v := 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if e = vs[cur].EdgeTo(v); e != nil && e.Weight < best {
				next, best = v, e.Weight
			}
		}
		if next < 0 {
			return TSResult{Cost: NoTourCost}, ErrNotFullyConnected
		}
		visited[next] = true
		tour = append(tour, next)
		cost += best
		cur = next
	}

	closing, err := core.ResolvedDistance(vs[cur], vs[Depot])
	if err != nil {
		return TSResult{Cost: NoTourCost}, ErrNotFullyConnected
	}
	tour = append(tour, Depot)

	return TSResult{Tour: tour, Cost: round1e9(cost + closing)}, nil
}
