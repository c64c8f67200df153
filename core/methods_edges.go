// File: methods_edges.go
// Role: Edge insertion & queries: AddBidirectionalEdge/Connect/EdgeCount/Neighbors,
//       plus the per-vertex half-edge accessors.
//
// Determinism:
//   - Edges() and Neighbors() return half-edges in ascending destination ID.
//   - Re-adding an existing (from,to) pair is a no-op: the first weight wins.
package core

import "math"

// AddBidirectionalEdge inserts the two half-edges v1→v2 and v2→v1 with weight w.
//
// Behavior highlights:
//   - Returns false (and changes nothing) if either vertex is nil, does not
//     belong to g, or if w is negative or NaN.
//   - Each half-edge is stored in its origin's slot slice at the index of
//     the opposite endpoint; the slice grows as needed.
//   - A slot that is already occupied is left untouched (first write wins).
//
// Complexity: O(1) amortized; O(id) when a slot slice grows.
func (g *Graph) AddBidirectionalEdge(v1, v2 *Vertex, w float64) bool {
	if v1 == nil || v2 == nil || w < 0 || math.IsNaN(w) {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.ownsLocked(v1) || !g.ownsLocked(v2) {
		return false
	}

	added := v1.addEdge(v2.id, w)
	if v1 != v2 {
		added = v2.addEdge(v1.id, w) || added
	}
	if added {
		g.edges++
	}

	return true
}

// Connect adds both endpoints (if missing) and the bidirectional edge between them.
// It is the single-call form used by the reader and by fixture builders.
//
// Errors:
//   - ErrNegativeVertexID for a negative endpoint.
//   - ErrBadWeight for a negative or NaN weight.
func (g *Graph) Connect(src, dst int, w float64) error {
	if w < 0 || math.IsNaN(w) {
		return ErrBadWeight
	}
	v1, err := g.AddVertex(src)
	if err != nil {
		return err
	}
	v2, err := g.AddVertex(dst)
	if err != nil {
		return err
	}
	g.AddBidirectionalEdge(v1, v2, w)

	return nil
}

// EdgeCount returns the number of undirected edges (pairs of half-edges).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Neighbors returns the half-edges leaving id, ascending by destination.
func (g *Graph) Neighbors(id int) ([]*Edge, error) {
	v, ok := g.FindVertex(id)
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return v.Edges(), nil
}

// ownsLocked reports whether v is the vertex stored in its own arena slot.
// Caller must hold g.mu.
func (g *Graph) ownsLocked(v *Vertex) bool {
	return v.id >= 0 && v.id < len(g.vertices) && g.vertices[v.id] == v
}

// addEdge stores the half-edge v→to unless the slot is already taken.
func (v *Vertex) addEdge(to int, w float64) bool {
	if to >= len(v.adj) {
		v.adj = growSlots(v.adj, to+1)
	}
	if v.adj[to] != nil {
		return false
	}
	v.adj[to] = &Edge{From: v.id, To: to, Weight: w}
	v.degree++

	return true
}

// EdgeTo returns the half-edge v→to, or nil when there is no direct edge.
//
// Complexity: O(1).
func (v *Vertex) EdgeTo(to int) *Edge {
	if to < 0 || to >= len(v.adj) {
		return nil
	}

	return v.adj[to]
}

// Edges returns the outgoing half-edges in ascending destination ID.
// The returned slice is fresh; the edges themselves are shared.
//
// Complexity: O(len(slots)).
func (v *Vertex) Edges() []*Edge {
	out := make([]*Edge, 0, v.degree)
	for _, e := range v.adj {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}
