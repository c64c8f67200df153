// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach method context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that n (or the number of points) is below the
// minimum the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG; supply WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a core insertion that
// was rejected.
var ErrConstructFailed = errors.New("builder: construction failed")
