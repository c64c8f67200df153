// Package prim_kruskal provides an implementation of Prim's Minimum Spanning Tree (MST) algorithm.
// It grows the tree from vertex 0 using an indexed min-heap with decrease-key.
package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// Prim computes the MST of g grown from vertex 0 (Root).
//
// Error Conditions:
//   - ErrNilGraph      : graph is nil.
//   - ErrEmptyGraph    : graph has no vertices.
//   - ErrMissingVertex : some ID in 0..Order()-1 has no vertex.
//
// Steps:
//  1. Validate the dense ID range and allocate the per-run arrays
//     (Dist = +Inf, Parent = -1, Edge = nil, visited = false).
//  2. Seed Dist[0] = 0 and insert every vertex into the heap, keeping its handle.
//  3. While the heap is not empty:
//     a. Extract the minimum u, append it to Order, mark it visited.
//     b. If Dist[u] is +Inf, u is unreachable from the root: do not relax from it.
//     c. For each half-edge u→v with v unvisited and Dist[v] > w: set Dist[v] = w,
//     Parent[v] = u, Edge[v] = edge, and decrease v's key.
//
// Disconnected graphs are not an error: unreachable vertices keep
// Dist = +Inf and Parent = -1 and are extracted after the reachable ones.
//
// Complexity: O(E log V) time, O(V) memory.
func Prim(g *core.Graph) (*MST, error) {
	// 1. Validate and allocate.
	vs, err := checkDense(g)
	if err != nil {
		return nil, err
	}
	n := len(vs)
	m := &MST{
		Order:  make([]int, 0, n),
		Parent: make([]int, n),
		Dist:   make([]float64, n),
		Edge:   make([]*core.Edge, n),
	}
	visited := make([]bool, n)
	inf := math.Inf(1)
	for v := 0; v < n; v++ {
		m.Parent[v] = -1
		m.Dist[v] = inf
	}
	m.Dist[Root] = 0

	// 2. Insert everything; handles[v] stays valid for decreaseKey.
	pq := make(vertexPQ, 0, n)
	handles := make([]*pqItem, n)
	for v := 0; v < n; v++ {
		handles[v] = pq.insert(v, m.Dist[v])
	}

	// 3. Grow.
	var (
		u  int
		it *pqItem
		e  *core.Edge
	)
	for pq.Len() > 0 {
		it = pq.extractMin()
		u = it.id
		m.Order = append(m.Order, u)
		visited[u] = true

		if math.IsInf(m.Dist[u], 1) {
			continue
		}
		for _, e = range vs[u].Edges() {
			if visited[e.To] || e.Weight >= m.Dist[e.To] {
				continue
			}
			m.Dist[e.To] = e.Weight
			m.Parent[e.To] = u
			m.Edge[e.To] = e
			pq.decreaseKey(handles[e.To], e.Weight)
		}
	}

	return m, nil
}
