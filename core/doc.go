// Package core provides the dense, id-indexed Graph store used by every
// solver in lvtsp, together with the distance resolver (direct edge weight
// with a great-circle fallback).
//
// The Graph G = (V,E) is built once, usually by the reader package, and then
// read many times:
//
//   - Vertices live in an arena indexed by their integer ID (0..N-1).
//     AddVertex grows the arena on demand and fills new slots with nil.
//   - Every undirected edge is stored as two half-edges, one in each
//     endpoint's slot slice, indexed by the opposite endpoint's ID.
//   - Edges refer to their endpoints by ID, never by pointer.
//   - Coordinates are optional: Vertex.Coords reports (Coords, false) for
//     vertices loaded without a node file.
//   - A single sync.RWMutex guards the arena; once building is over the
//     Graph is safe for concurrent readers.
//
// Core Methods:
//
//	// Building
//	AddVertex(id int) (*Vertex, error)                    // O(1) amortized
//	AddBidirectionalEdge(v1, v2 *Vertex, w float64) bool  // O(1) amortized, first write wins
//	Connect(src, dst int, w float64) error                // AddVertex×2 + AddBidirectionalEdge
//	SetCoords(id int, lon, lat float64) error             // O(1)
//
//	// Query
//	FindVertex(id int) (*Vertex, bool)    // O(1)
//	Order() int                           // arena length (max ID + 1)
//	VertexCount() int                     // present vertices
//	EdgeCount() int                       // undirected edges
//	Vertices() []*Vertex                  // ascending ID
//
//	// Distance resolver
//	DirectDistance(a, b *Vertex) (float64, bool)
//	Haversine(a, b *Vertex) (float64, error)
//	ResolvedDistance(a, b *Vertex) (float64, error)
//
// Errors:
//
//	ErrNegativeVertexID – AddVertex with id < 0
//	ErrVertexNotFound   – SetCoords/Neighbors on an absent id
//	ErrBadWeight        – Connect with a negative or NaN weight
//	ErrNoCoordinates    – Haversine fallback on a vertex without coordinates
package core
