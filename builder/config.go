// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   - rng      = nil          (stochastic constructors refuse to run)
//   - weightFn = DefaultWeightFn
//   - density  = 1.0          (Geometric emits the complete graph)
//   - box      = Iberian peninsula, roughly the area of the bundled datasets

package builder

import "math/rand"

// Probability bounds accepted by WithDensity.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// Minimum sizes per constructor.
const (
	minCompleteNodes = 2
	minCycleNodes    = 2
	minPointNodes    = 2
)

// box is a lon/lat rectangle in decimal degrees.
type box struct {
	minLon, minLat float64
	maxLon, maxLat float64
}

var defaultBox = box{minLon: -9.5, minLat: 36.0, maxLon: 3.3, maxLat: 43.8}

// builderConfig aggregates all knobs used by constructors.
// It is passed by value so constructors cannot leak changes to callers.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	density  float64
	box      box
}

// newBuilderConfig starts from the defaults and applies opts in order;
// later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		density:  MaxProbability,
		box:      defaultBox,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
