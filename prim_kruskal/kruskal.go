// Package prim_kruskal provides an implementation of Kruskal's Minimum Spanning Tree algorithm.
// It produces the MST edge list of a dense-ID *core.Graph.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/lvtsp/core"
)

// Kruskal computes the Minimum Spanning Tree (MST) of g.
// It uses a disjoint-set (union-find) data structure with path halving and union by rank.
//
// Error Conditions:
//   - ErrNilGraph, ErrEmptyGraph, ErrMissingVertex : see checkDense.
//   - ErrDisconnected : |V| > 1 but the graph has no spanning tree.
//
// Steps:
//  1. Validate the dense ID range; a single vertex yields an empty MST.
//  2. Collect one half-edge per undirected pair (From < To); self-loops are skipped.
//  3. Stable-sort by ascending weight (ties keep ascending (From, To) order).
//  4. Merge components edge by edge until |V|-1 edges are taken.
//
// Complexity: O(E log E + α(V)·E) ≈ O(E log V). Memory: O(E + V).
func Kruskal(g *core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	vs, err := checkDense(g)
	if err != nil {
		return nil, 0, err
	}
	n := len(vs)
	if n == 1 {
		return []core.Edge{}, 0, nil
	}

	// 2. Collect each undirected edge once.
	edges := make([]*core.Edge, 0, g.EdgeCount())
	for _, v := range vs {
		for _, e := range v.Edges() {
			if e.From < e.To {
				edges = append(edges, e)
			}
		}
	}

	// 3. Sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Union-find over IDs.
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}

		return u
	}
	union := func(u, v int) bool {
		ru, rv := find(u), find(v)
		if ru == rv {
			return false
		}
		if rank[ru] < rank[rv] {
			ru, rv = rv, ru
		}
		parent[rv] = ru
		if rank[ru] == rank[rv] {
			rank[ru]++
		}

		return true
	}

	var (
		mst   = make([]core.Edge, 0, n-1)
		total float64
	)
	for _, e := range edges {
		if !union(e.From, e.To) {
			continue
		}
		mst = append(mst, *e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}
	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
