// Package core defines the Graph, Vertex, Edge and Coords types, the
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNegativeVertexID - vertex ID is negative.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrBadWeight        - edge weight is negative or NaN.
//	ErrNoCoordinates    - a great-circle distance was requested for a vertex without coordinates.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that a vertex ID below zero was supplied.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrBadWeight indicates a negative or NaN edge weight.
	ErrBadWeight = errors.New("core: edge weight must be a non-negative number")

	// ErrNoCoordinates indicates that Haversine was asked for a vertex
	// that was never given a coordinate.
	ErrNoCoordinates = errors.New("core: vertex has no coordinates")
)

// Coords is a geographic position in decimal degrees.
type Coords struct {
	Longitude float64
	Latitude  float64
}

// Edge is one directed half of an undirected connection.
//
// From and To are vertex IDs; the owning Graph resolves them through
// FindVertex. Weight is never negative.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Vertex is a node of the Graph.
//
// adj is indexed by destination ID; a nil slot means "no direct edge".
// The slice only grows, so len(adj) may be smaller than Graph.Order().
type Vertex struct {
	id        int
	coords    Coords
	hasCoords bool
	adj       []*Edge
	degree    int
}

// ID returns the vertex identifier (its index in the Graph arena).
func (v *Vertex) ID() int { return v.id }

// Coords returns the vertex coordinate and whether one was set.
func (v *Vertex) Coords() (Coords, bool) { return v.coords, v.hasCoords }

// Degree returns the number of outgoing half-edges.
func (v *Vertex) Degree() int { return v.degree }

// Graph is the in-memory, id-indexed vertex arena.
//
// mu guards vertices, every Vertex.adj slice and the coordinate fields.
type Graph struct {
	mu       sync.RWMutex
	vertices []*Vertex
	present  int
	edges    int
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{}
}
