// Package builder constructs deterministic fixture graphs for tests,
// benchmarks and the generate command.
//
// The package follows a functional-options style:
//
//   - Constructor:   func(*core.Graph, builderConfig) error, composed by BuildGraph.
//   - BuilderOption: mutates builderConfig (RNG, weight policy, edge density,
//     coordinate bounding box) before any constructor runs.
//   - WeightFn:      per-edge weight generator for topology constructors.
//
// Constructors:
//
//   - Complete(n):  K_n over IDs 0..n-1, weights from the configured WeightFn.
//   - Cycle(n):     ring 0-1-...-(n-1)-0, weights from the configured WeightFn.
//   - Points(pts):  complete graph over planar points, Euclidean weights.
//   - Geometric(n): n random lon/lat positions inside the bounding box,
//     great-circle weights, coordinates attached; edges other than the
//     ring are kept with probability equal to the density.
//
// SquareWithCenter is a ready-made five-vertex instance: the unit square
// 0..3 plus its centre 4.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed; without WithSeed/WithRand the
//     stochastic constructors fail with ErrNeedRandSource.
//   - Option constructors panic on meaningless arguments; constructors
//     themselves only return sentinel errors wrapped with context.
package builder
