package tsp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors returned by the solvers.
var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrTooFewVertices indicates a graph with fewer than two vertices.
	ErrTooFewVertices = errors.New("tsp: at least two vertices are required")

	// ErrVertexGap indicates that some ID in 0..Order()-1 has no vertex.
	ErrVertexGap = errors.New("tsp: vertex ID range has a gap")

	// ErrNoTour is returned by the exact solver when no Hamiltonian cycle
	// exists over direct edges. The accompanying Cost is +Inf.
	ErrNoTour = errors.New("tsp: no Hamiltonian cycle over direct edges")

	// ErrNotFullyConnected is returned by the heuristic when nearest-neighbour
	// construction gets stuck or the closing distance cannot be resolved.
	// The accompanying Cost is NoTourCost.
	ErrNotFullyConnected = errors.New("tsp: graph is not fully connected")

	// ErrInvalidTour indicates a tour that is not a closed Hamiltonian cycle
	// starting and ending at the depot.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrBadOptions indicates a negative Eps or MaxSweeps.
	ErrBadOptions = errors.New("tsp: invalid options")
)

// Depot is the vertex every tour starts and ends at.
const Depot = 0

// NoTourCost is the Cost reported by the heuristic when it finds no tour.
const NoTourCost = -1.0

// DefaultEps is the minimal 2-opt gain treated as an improvement.
const DefaultEps = 1e-12

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex IDs, starting and ending at Depot.
	// For a complete tour over n vertices, len(Tour) == n+1.
	// The approximation solvers may return a shorter Tour when the MST does
	// not reach every vertex. Tour is nil when no tour was found.
	Tour []int

	// Cost is the total distance of the cycle, rounded to 1e-9.
	Cost float64
}

// Found reports whether r carries a usable tour.
func (r TSResult) Found() bool {
	return len(r.Tour) > 0 && r.Cost >= 0
}

// Algorithm selects a solver.
type Algorithm int

const (
	// BranchAndBound is the exact search over direct edges.
	BranchAndBound Algorithm = iota
	// Triangular is the MST preorder walk with great-circle fallback.
	Triangular
	// Shipping is the MST preorder walk with mean-MST-distance fallback.
	Shipping
	// NearestOnly is the greedy nearest-neighbour construction alone, without 2-opt.
	NearestOnly
	// Heuristic is nearest-neighbour followed by 2-opt.
	Heuristic
)

var algorithmNames = map[Algorithm]string{
	BranchAndBound:   "exact",
	Triangular:       "triangular",
	Shipping:         "shipping",
	NearestOnly:      "nearest",
	Heuristic:        "heuristic",
}

// String returns the CLI name of a.
func (a Algorithm) String() string {
	if s, ok := algorithmNames[a]; ok {
		return s
	}

	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm maps a CLI name (case-insensitive) back to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range algorithmNames {
		if name == s {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Options configures Solve and TwoOpt.
type Options struct {
	// Algo selects the solver used by Solve.
	Algo Algorithm

	// Eps is the minimal gain a 2-opt move must achieve.
	Eps float64

	// MaxSweeps bounds the number of full 2-opt sweeps; 0 means until
	// no improving move is left.
	MaxSweeps int
}

// DefaultOptions returns the heuristic with DefaultEps and unbounded sweeps.
func DefaultOptions() Options {
	return Options{
		Algo:      Heuristic,
		Eps:       DefaultEps,
		MaxSweeps: 0,
	}
}
