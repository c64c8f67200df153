package prim_kruskal_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtsp/core"         // core.Graph and core error types
	"github.com/katalvlaran/lvtsp/prim_kruskal" // package under test
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTriangle constructs a simple weighted triangle graph:
//
//	0—1 (weight 1), 1—2 (weight 2), 0—2 (weight 3).
//
// This graph's MST consists of edges 0—1 and 1—2 with total weight 3.
func buildTriangle(t testing.TB) *core.Graph {
	g := core.NewGraph()
	require.NoError(t, g.Connect(0, 1, 1))
	require.NoError(t, g.Connect(1, 2, 2))
	require.NoError(t, g.Connect(0, 2, 3))

	return g
}

// buildSquare is the 4-vertex fixture with a known MST weight of 4:
// 0—1(1), 2—3(1), 1—2(2) are taken; 1—3(3), 0—3(4), 0—2(5) are not.
func buildSquare(t testing.TB) *core.Graph {
	g := core.NewGraph()
	for _, e := range [][3]float64{{0, 1, 1}, {1, 2, 2}, {2, 3, 1}, {0, 3, 4}, {0, 2, 5}, {1, 3, 3}} {
		require.NoError(t, g.Connect(int(e[0]), int(e[1]), e[2]))
	}

	return g
}

// buildMediumGraph creates a connected weighted graph with n vertices and edgesCount edges.
//   - A chain 0—1—...—(n-1) with weights in [1..11) guarantees connectivity.
//   - Extra random edges with weights in [1..101) are added; duplicates are
//     ignored by the store (first write wins) and do not count.
//
// The generator is seeded for reproducibility.
func buildMediumGraph(t testing.TB, n, edgesCount int) *core.Graph {
	g := core.NewGraph()
	r := rand.New(rand.NewSource(42))

	for i := 1; i < n; i++ {
		require.NoError(t, g.Connect(i-1, i, 1.0+r.Float64()+float64(r.Intn(10))))
	}
	for g.EdgeCount() < edgesCount {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		require.NoError(t, g.Connect(u, v, 1.0+r.Float64()+float64(r.Intn(100))))
	}

	return g
}

func TestPrim_Triangle(t *testing.T) {
	m, err := prim_kruskal.Prim(buildTriangle(t))
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, m.Order)
	assert.Equal(t, []int{-1, 0, 1}, m.Parent)
	assert.Equal(t, []float64{0, 1, 2}, m.Dist)
	assert.Nil(t, m.Edge[0])
	assert.Equal(t, 3.0, m.Weight())
	assert.Equal(t, 3, m.Reachable())
}

// TestPrim_KnownWeight checks that every vertex is extracted exactly once and
// that the incoming-edge weights add up to the hand-computed MST weight.
func TestPrim_KnownWeight(t *testing.T) {
	m, err := prim_kruskal.Prim(buildSquare(t))
	require.NoError(t, err)

	require.Len(t, m.Order, 4)
	seen := make(map[int]bool)
	for _, v := range m.Order {
		assert.False(t, seen[v], "vertex %d extracted twice", v)
		seen[v] = true
	}
	assert.Equal(t, 4.0, m.Weight())

	var sum float64
	for v := 1; v < 4; v++ {
		require.NotNil(t, m.Edge[v])
		assert.Equal(t, m.Parent[v], m.Edge[v].From)
		assert.Equal(t, v, m.Edge[v].To)
		sum += m.Dist[v]
	}
	assert.Equal(t, 4.0, sum)
}

// TestPrim_Disconnected documents that unreachable vertices are extracted
// without an incoming edge and keep an infinite distance.
func TestPrim_Disconnected(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.Connect(0, 1, 2))
	require.NoError(t, g.Connect(2, 3, 5))

	m, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, m.Order)
	assert.Equal(t, []int{-1, 0, -1, -1}, m.Parent)
	assert.True(t, math.IsInf(m.Dist[2], 1))
	assert.True(t, math.IsInf(m.Dist[3], 1))
	assert.Equal(t, 2, m.Reachable())

	_, _, err = prim_kruskal.Compute(g, prim_kruskal.DefaultOptions())
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
	_, _, err = prim_kruskal.Kruskal(g)
	assert.ErrorIs(t, err, prim_kruskal.ErrDisconnected)
}

func TestValidation(t *testing.T) {
	_, err := prim_kruskal.Prim(nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilGraph)

	_, err = prim_kruskal.Prim(core.NewGraph())
	assert.ErrorIs(t, err, prim_kruskal.ErrEmptyGraph)

	gap := core.NewGraph()
	require.NoError(t, gap.Connect(0, 2, 1))
	_, err = prim_kruskal.Prim(gap)
	assert.ErrorIs(t, err, prim_kruskal.ErrMissingVertex)
	_, _, err = prim_kruskal.Kruskal(gap)
	assert.ErrorIs(t, err, prim_kruskal.ErrMissingVertex)

	_, _, err = prim_kruskal.Compute(buildTriangle(t), prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

func TestKruskal_SingleVertex(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddVertex(0)
	edges, total, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, total)
}

// TestPrimMatchesKruskal cross-checks the two algorithms on a random graph.
func TestPrimMatchesKruskal(t *testing.T) {
	g := buildMediumGraph(t, 120, 600)

	m, err := prim_kruskal.Prim(g)
	require.NoError(t, err)
	_, kw, err := prim_kruskal.Kruskal(g)
	require.NoError(t, err)

	assert.InDelta(t, kw, m.Weight(), 1e-9)
	assert.Equal(t, 120, m.Reachable())

	edges, pw, err := prim_kruskal.Compute(g, prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim)))
	require.NoError(t, err)
	assert.Len(t, edges, 119)
	assert.InDelta(t, kw, pw, 1e-9)
}
