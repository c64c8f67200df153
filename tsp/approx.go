// Package tsp: MST preorder approximations.
//
// Both solvers share one walk: grow the MST from the depot with
// prim_kruskal.Prim, derive child lists from the parent array, and take the
// dfs.Preorder visiting order as the tour. They differ only in how a missing
// direct edge between consecutive tour vertices is priced:
//   - Triangular: great-circle distance between the two coordinates.
//   - Shipping:   the mean MST distance over the visiting order.
//
// Vertices the MST does not reach are left out of the tour. Under the
// triangle inequality the triangular cost is at most twice the optimum.

package tsp

import (
	"github.com/katalvlaran/lvtsp/core"
	"github.com/katalvlaran/lvtsp/dfs"
	"github.com/katalvlaran/lvtsp/prim_kruskal"
)

// TSPTriangular returns the MST preorder tour priced with ResolvedDistance.
//
// Error Conditions:
//   - ErrNilGraph, ErrTooFewVertices, ErrVertexGap: precondition failures.
//   - core.ErrNoCoordinates: a consecutive pair has no direct edge and some
//     endpoint has no coordinate.
func TSPTriangular(g *core.Graph) (TSResult, error) {
	vs, order, _, err := mstWalk(g)
	if err != nil {
		return TSResult{}, err
	}

	tour := closeTour(order)
	var (
		sum float64
		d   float64
	)
	for i := 0; i+1 < len(tour); i++ {
		if d, err = core.ResolvedDistance(vs[tour[i]], vs[tour[i+1]]); err != nil {
			return TSResult{}, err
		}
		sum += d
	}

	return TSResult{Tour: tour, Cost: round1e9(sum)}, nil
}

// TSPShipping returns the MST preorder tour where every missing direct
// edge, the closing one included, is priced at the mean MST distance of the
// visited vertices. It needs no coordinates.
func TSPShipping(g *core.Graph) (TSResult, error) {
	vs, order, m, err := mstWalk(g)
	if err != nil {
		return TSResult{}, err
	}

	mean := ShippingMean(m, order)
	tour := closeTour(order)
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		if w, ok := core.DirectDistance(vs[tour[i]], vs[tour[i+1]]); ok {
			sum += w
		} else {
			sum += mean
		}
	}

	return TSResult{Tour: tour, Cost: round1e9(sum)}, nil
}

// ShippingMean averages m.Dist over the vertices of order.
// The root contributes its zero distance. An empty order yields 0.
func ShippingMean(m *prim_kruskal.MST, order []int) float64 {
	if m == nil || len(order) == 0 {
		return 0
	}
	var sum float64
	for _, v := range order {
		sum += m.Dist[v]
	}

	return sum / float64(len(order))
}

// mstWalk validates g, grows the MST from the depot and returns the
// vertices by ID, the preorder visiting order and the MST itself.
func mstWalk(g *core.Graph) ([]*core.Vertex, []int, *prim_kruskal.MST, error) {
	vs, err := vertexArena(g)
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := prim_kruskal.Prim(g)
	if err != nil {
		return nil, nil, nil, err
	}
	res, err := dfs.Preorder(dfs.TreeFromParents(m.Parent), Depot)
	if err != nil {
		return nil, nil, nil, err
	}

	return vs, res.Order, m, nil
}
