// Package prim_kruskal computes Minimum Spanning Trees on a dense-ID *core.Graph.
//
// What & Why
//
//   - An MST of a connected, weighted, undirected graph G = (V, E) is a subset
//     T ⊆ E that spans V with minimum total weight.
//
//   - In lvtsp the MST is the skeleton of the triangular approximation: its
//     preorder walk from vertex 0 is the approximate tour, and the per-vertex
//     best distances feed the "shipping" cost substitution.
//
// Algorithms Provided
//
//   - Prim(g *core.Graph) (*MST, error)
//
//   - Strategy: every vertex is inserted into an indexed binary min-heap keyed
//     by its current best distance (0 for vertex 0, +Inf otherwise). Extract
//     the minimum, mark it visited, and relax each outgoing edge to an
//     unvisited neighbour, lowering its key in place (decrease-key).
//
//   - Complexity: Time O(E log V), Space O(V).
//
//   - Disconnected graphs are not an error: vertices unreachable from 0 are
//     still extracted (in ID order, after the reachable ones) and keep
//     Dist = +Inf, Parent = -1.
//
//   - Kruskal(g *core.Graph) ([]core.Edge, float64, error)
//
//   - Strategy: sort the undirected edges by weight (stable), merge components
//     with a union-find (path halving, union by rank).
//
//   - Complexity: Time O(E log E), Space O(V + E).
//
//   - Used as an independent cross-check of Prim's total weight.
//
// Errors:
//
//	ErrNilGraph      – nil graph
//	ErrEmptyGraph    – graph without vertices
//	ErrMissingVertex – the ID range 0..Order()-1 has an empty slot
//	ErrDisconnected  – Kruskal/Compute: no spanning tree exists
package prim_kruskal
