// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns vertices in ascending ID order (arena order).
//
// Concurrency:
//   - Arena protected by g.mu. Vertex accessors (ID, Coords, EdgeTo, Edges)
//     read without locking and must not race with building.
package core

// AddVertex inserts a vertex if its slot is empty (idempotent).
//
// Implementation:
//   - Stage 1: Reject negative IDs (ErrNegativeVertexID).
//   - Stage 2: Under the write lock, grow the arena to id+1 slots if needed;
//     new slots are nil.
//   - Stage 3: Allocate the vertex only when the slot is nil.
//
// Returns the (possibly pre-existing) vertex.
//
// Complexity: O(1) amortized; O(id) when the arena grows.
func (g *Graph) AddVertex(id int) (*Vertex, error) {
	if id < 0 {
		return nil, ErrNegativeVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if id >= len(g.vertices) {
		g.vertices = growSlots(g.vertices, id+1)
	}
	if v := g.vertices[id]; v != nil {
		return v, nil
	}
	v := &Vertex{id: id}
	g.vertices[id] = v
	g.present++

	return v, nil
}

// FindVertex returns the vertex stored at id.
// The boolean is false when id is negative, beyond the arena, or the slot is empty.
//
// Complexity: O(1).
func (g *Graph) FindVertex(id int) (*Vertex, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.vertices) {
		return nil, false
	}
	v := g.vertices[id]

	return v, v != nil
}

// SetCoords attaches a coordinate to an existing vertex.
// The vertex must have been created before (usually by the edge file).
func (g *Graph) SetCoords(id int, longitude, latitude float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || id >= len(g.vertices) || g.vertices[id] == nil {
		return ErrVertexNotFound
	}
	v := g.vertices[id]
	v.coords = Coords{Longitude: longitude, Latitude: latitude}
	v.hasCoords = true

	return nil
}

// Order returns the arena length, i.e. the highest vertex ID plus one.
// Some slots may be empty; compare with VertexCount to detect gaps.
func (g *Graph) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// VertexCount returns the number of present vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.present
}

// Vertices returns the present vertices in ascending ID order.
//
// Complexity: O(Order()).
func (g *Graph) Vertices() []*Vertex {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Vertex, 0, g.present)
	for _, v := range g.vertices {
		if v != nil {
			out = append(out, v)
		}
	}

	return out
}

// HasCoords reports whether every present vertex carries a coordinate.
// An empty graph reports false.
func (g *Graph) HasCoords() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.present == 0 {
		return false
	}
	for _, v := range g.vertices {
		if v != nil && !v.hasCoords {
			return false
		}
	}

	return true
}

// growSlots extends s with nil slots up to length n.
func growSlots[T any](s []*T, n int) []*T {
	if n <= len(s) {
		return s
	}
	if n <= cap(s) {
		return s[:n]
	}
	out := make([]*T, n, max(n, 2*cap(s)))
	copy(out, s)

	return out
}
