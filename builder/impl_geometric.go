// impl_geometric.go: point-based constructors.
//
// Points builds a complete graph from planar coordinates with Euclidean
// weights and attaches no geographic coordinates, so solvers see only the
// stored edges. Geometric samples random lon/lat positions, weighs edges
// with the great-circle distance and attaches the coordinates, so the
// distance fallback agrees with the stored weights.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvtsp/core"
)

const (
	methodPoints    = "Points"
	methodGeometric = "Geometric"
)

// Point is a planar position used by Points.
type Point struct {
	X, Y float64
}

// Points returns a Constructor for the complete graph over pts; vertex i is pts[i].
//
// Complexity: O(n²) time.
func Points(pts []Point) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		n := len(pts)
		if n < minPointNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPoints, n, minPointNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodPoints, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
				if err := connect(g, methodPoints, i, j, d); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Geometric returns a Constructor for n random positions inside cfg.box.
// The ring 0-1-...-(n-1)-0 is always present so a tour exists; every other
// pair is connected with probability cfg.density.
//
// Randomness: n coordinate pairs are drawn first, then one draw per
// non-ring pair in lexicographic order, so a fixed seed fixes the graph.
func Geometric(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPointNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodGeometric, n, minPointNodes, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodGeometric, ErrNeedRandSource)
		}
		if err := addVertices(g, methodGeometric, n); err != nil {
			return err
		}

		pos := make([]core.Coords, n)
		for i := range pos {
			pos[i] = core.Coords{
				Longitude: cfg.box.minLon + cfg.rng.Float64()*(cfg.box.maxLon-cfg.box.minLon),
				Latitude:  cfg.box.minLat + cfg.rng.Float64()*(cfg.box.maxLat-cfg.box.minLat),
			}
			if err := g.SetCoords(i, pos[i].Longitude, pos[i].Latitude); err != nil {
				return fmt.Errorf("%s: SetCoords(%d): %v: %w", methodGeometric, i, err, ErrConstructFailed)
			}
		}

		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				ring := j == i+1 || (i == 0 && j == n-1)
				if !ring && cfg.rng.Float64() >= cfg.density {
					continue
				}
				if err := connect(g, methodGeometric, i, j, core.HaversineCoords(pos[i], pos[j])); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// squareWithCenter is the unit square 0..3 counter-clockwise from the
// origin plus its centre as vertex 4.
var squareWithCenter = []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0.5, 0.5}}

// SquareWithCenter builds the complete Euclidean graph over the unit square
// and its centre. Its optimal tour costs 3 + √2.
func SquareWithCenter() *core.Graph {
	g, err := BuildGraph(nil, Points(squareWithCenter))
	if err != nil {
		// Points only fails on fewer than two points.
		panic(err)
	}

	return g
}
