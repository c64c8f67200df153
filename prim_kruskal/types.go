// Package prim_kruskal defines the MST result, configuration options and
// sentinel errors for MST computation.
package prim_kruskal

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

// ErrNilGraph indicates that a nil *core.Graph was supplied.
var ErrNilGraph = errors.New("prim_kruskal: graph is nil")

// ErrEmptyGraph indicates that the graph has no vertices at all.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no vertices")

// ErrMissingVertex indicates a gap in the dense ID range 0..Order()-1.
var ErrMissingVertex = errors.New("prim_kruskal: vertex ID range has a gap")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an unsupported MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown MST method")

// Root is the vertex every Prim run grows from.
const Root = 0

// MST is the per-run output of Prim. Every slice is indexed by vertex ID.
//
// Fields:
//
//	Order  – vertices in extraction order (all vertices, reachable first).
//	Parent – tree parent of each vertex; -1 for the root and unreachable vertices.
//	Dist   – weight of the best incoming edge; 0 for the root, +Inf if unreachable.
//	Edge   – best incoming half-edge (Parent[v] → v), nil where Parent[v] == -1.
type MST struct {
	Order  []int
	Parent []int
	Dist   []float64
	Edge   []*core.Edge
}

// Weight returns the total weight of the tree edges.
func (m *MST) Weight() float64 {
	var total float64
	for _, e := range m.Edge {
		if e != nil {
			total += e.Weight
		}
	}

	return total
}

// Reachable returns how many vertices are connected to the root.
func (m *MST) Reachable() int {
	var n int
	for _, d := range m.Dist {
		if !math.IsInf(d, 1) {
			n++
		}
	}

	return n
}

// Edges returns the tree edges in extraction order.
func (m *MST) Edges() []core.Edge {
	out := make([]core.Edge, 0, len(m.Order))
	for _, v := range m.Order {
		if e := m.Edge[v]; e != nil {
			out = append(out, *e)
		}
	}

	return out
}

// MethodPrim selects Prim's algorithm (grow from vertex 0 using an indexed heap).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions for Prim, the method used by the TSP solvers.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodPrim}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute runs the selected algorithm and returns the spanning tree edges and
// their total weight. Unlike Prim, it reports ErrDisconnected when some vertex
// is unreachable from the root.
func Compute(g *core.Graph, opts MSTOptions) ([]core.Edge, float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		m, err := Prim(g)
		if err != nil {
			return nil, 0, err
		}
		if m.Reachable() != len(m.Order) {
			return nil, 0, ErrDisconnected
		}

		return m.Edges(), m.Weight(), nil
	default:
		return nil, 0, ErrUnknownMethod
	}
}

// checkDense verifies that every slot in 0..Order()-1 is present and returns
// the vertices indexed by ID.
func checkDense(g *core.Graph) ([]*core.Vertex, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	vs := g.Vertices()
	if len(vs) != n {
		return nil, ErrMissingVertex
	}

	return vs, nil
}
