package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvtsp/builder"
	"github.com/katalvlaran/lvtsp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertPanics fails the test if fn does not panic.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic, but none occurred", name)
		}
	}()
	fn()
}

func TestOptionConstructorsPanic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand_nil", func() { builder.WithRand(nil) }},
		{"WithWeightFn_nil", func() { builder.WithWeightFn(nil) }},
		{"WithDensity_negative", func() { builder.WithDensity(-0.1) }},
		{"WithDensity_aboveOne", func() { builder.WithDensity(1.5) }},
		{"WithBox_empty", func() { builder.WithBox(1, 1, 1, 2) }},
		{"WithBox_outOfRange", func() { builder.WithBox(-200, 0, 10, 10) }},
		{"ConstantWeightFn_negative", func() { builder.ConstantWeightFn(-1) }},
		{"UniformWeightFn_maxLessThanMin", func() { builder.UniformWeightFn(5, 4) }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assertPanics(t, tc.fn, tc.name)
		})
	}
}

func TestWeightFnBehavior(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, 7.0, builder.ConstantWeightFn(7)(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(2, 9)(nil))
	assert.Equal(t, 3.0, builder.UniformWeightFn(3, 3)(rng))

	for i := 0; i < 100; i++ {
		w := builder.UniformWeightFn(2, 9)(rng)
		assert.GreaterOrEqual(t, w, 2.0)
		assert.Less(t, w, 9.0)
	}
}

func TestComplete(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(5))},
		builder.Complete(5),
	)
	require.NoError(t, err)

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 10, g.EdgeCount())
	for _, v := range g.Vertices() {
		assert.Equal(t, 4, v.Degree())
		for _, e := range v.Edges() {
			assert.Equal(t, 5.0, e.Weight)
		}
	}
}

func TestCycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	assert.Equal(t, 4, g.EdgeCount())
	v0, _ := g.FindVertex(0)
	require.NotNil(t, v0.EdgeTo(1))
	require.NotNil(t, v0.EdgeTo(3))
	assert.Nil(t, v0.EdgeTo(2))
}

func TestTooFewVertices(t *testing.T) {
	for name, c := range map[string]builder.Constructor{
		"complete":  builder.Complete(1),
		"cycle":     builder.Cycle(0),
		"points":    builder.Points([]builder.Point{{0, 0}}),
		"geometric": builder.Geometric(1),
	} {
		_, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(1)}, c)
		assert.ErrorIs(t, err, builder.ErrTooFewVertices, name)
	}

	_, err := builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestSquareWithCenter(t *testing.T) {
	g := builder.SquareWithCenter()

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 10, g.EdgeCount())
	assert.False(t, g.HasCoords())

	v0, _ := g.FindVertex(0)
	v4, _ := g.FindVertex(4)
	w, ok := core.DirectDistance(v0, v4)
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2/2, w, 1e-12)
}

func TestGeometric(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Geometric(5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	opts := []builder.BuilderOption{builder.WithSeed(7), builder.WithDensity(0)}
	g, err := builder.BuildGraph(opts, builder.Geometric(6))
	require.NoError(t, err)

	// Density 0 leaves only the ring.
	assert.Equal(t, 6, g.EdgeCount())
	assert.True(t, g.HasCoords())

	// Stored weights agree with the great-circle fallback.
	v0, _ := g.FindVertex(0)
	v1, _ := g.FindVertex(1)
	w, ok := core.DirectDistance(v0, v1)
	require.True(t, ok)
	h, err := core.Haversine(v0, v1)
	require.NoError(t, err)
	assert.Equal(t, h, w)

	// Same seed, same graph.
	again, err := builder.BuildGraph(opts, builder.Geometric(6))
	require.NoError(t, err)
	a0, _ := again.FindVertex(0)
	c1, _ := g.FindVertex(3)
	c2, _ := again.FindVertex(3)
	p1, _ := c1.Coords()
	p2, _ := c2.Coords()
	assert.Equal(t, p1, p2)
	assert.Equal(t, v0.Degree(), a0.Degree())

	full, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.Geometric(6))
	require.NoError(t, err)
	assert.Equal(t, 15, full.EdgeCount())
}
