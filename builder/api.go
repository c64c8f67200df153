package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
)

// Constructor adds vertices and edges to g according to cfg.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts once and applies every
// constructor in order. The first failure aborts construction.
//
// Complexity: sum of the constructors.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// connect adds the undirected edge u-v, wrapping core rejections with method context.
func connect(g *core.Graph, method string, u, v int, w float64) error {
	if err := g.Connect(u, v, w); err != nil {
		return fmt.Errorf("%s: Connect(%d,%d, w=%g): %v: %w", method, u, v, w, err, ErrConstructFailed)
	}

	return nil
}

// addVertices inserts IDs 0..n-1 in ascending order.
func addVertices(g *core.Graph, method string, n int) error {
	for i := 0; i < n; i++ {
		if _, err := g.AddVertex(i); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %v: %w", method, i, err, ErrConstructFailed)
		}
	}

	return nil
}
