// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors they configure never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before graph construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic constructors.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator of Complete and Cycle.
// Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithDensity sets the probability that Geometric keeps a non-ring edge.
// Panics unless 0 <= p <= 1.
func WithDensity(p float64) BuilderOption {
	if p < MinProbability || p > MaxProbability {
		panic("builder: WithDensity(p outside [0,1])")
	}
	return func(c *builderConfig) {
		c.density = p
	}
}

// WithBox sets the lon/lat bounding box Geometric samples from, in degrees.
// Panics when the box is empty or leaves the valid coordinate range.
func WithBox(minLon, minLat, maxLon, maxLat float64) BuilderOption {
	if minLon >= maxLon || minLat >= maxLat ||
		minLon < -180 || maxLon > 180 || minLat < -90 || maxLat > 90 {
		panic("builder: WithBox(invalid bounds)")
	}
	return func(c *builderConfig) {
		c.box = box{minLon: minLon, minLat: minLat, maxLon: maxLon, maxLat: maxLat}
	}
}
