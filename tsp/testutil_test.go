package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvtsp/core"
)

const eps = 1e-9

// mustErrIs fails t unless errors.Is(got, want).
func mustErrIs(t *testing.T, got, want error) {
	t.Helper()
	if !errors.Is(got, want) {
		t.Fatalf("error mismatch: got=%v, want=%v", got, want)
	}
}

// floatsClose reports |a-b| <= tol, treating equal infinities as close.
func floatsClose(a, b, tol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) <= tol
}

// edge is one undirected weighted edge of a test fixture.
type edge struct {
	u, v int
	w    float64
}

// graphOf builds a graph over 0..n-1 with the given edges.
func graphOf(t testing.TB, n int, edges ...edge) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		if _, err := g.AddVertex(i); err != nil {
			t.Fatalf("AddVertex(%d): %v", i, err)
		}
	}
	for _, e := range edges {
		if err := g.Connect(e.u, e.v, e.w); err != nil {
			t.Fatalf("Connect(%d,%d): %v", e.u, e.v, err)
		}
	}

	return g
}

// classic4 is the textbook four-city instance with optimum 80 (0-1-3-2-0).
func classic4(t testing.TB) *core.Graph {
	return graphOf(t, 4,
		edge{0, 1, 10}, edge{0, 2, 15}, edge{0, 3, 20},
		edge{1, 2, 35}, edge{1, 3, 25}, edge{2, 3, 30},
	)
}

// isolated2 is K_4 minus every edge touching vertex 2.
func isolated2(t testing.TB) *core.Graph {
	return graphOf(t, 4,
		edge{0, 1, 1}, edge{0, 3, 1}, edge{1, 3, 1},
	)
}

// tourLength sums direct weights along tour, failing on a missing edge.
func tourLength(t *testing.T, g *core.Graph, tour []int) float64 {
	t.Helper()
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		a, _ := g.FindVertex(tour[i])
		b, _ := g.FindVertex(tour[i+1])
		w, ok := core.DirectDistance(a, b)
		if !ok {
			t.Fatalf("no edge %d-%d in tour %v", tour[i], tour[i+1], tour)
		}
		sum += w
	}

	return sum
}
