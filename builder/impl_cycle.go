// impl_cycle.go: Cycle(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices); for n == 2 the ring is a single edge.
//   - Emits edges i-(i+1)%n for i = 0..n-1 in ascending i.
//
// A cycle is the sparsest graph on which every solver still finds a tour,
// which makes it the reference instance for "exactly one Hamiltonian cycle".

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
)

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, methodCycle, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := connect(g, methodCycle, i, (i+1)%n, cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
