// Package tsp provides Travelling Salesman Problem solvers over *core.Graph.
//
// Every tour starts and ends at vertex 0 (Depot) and is returned closed:
// Tour[0] == Tour[len(Tour)-1] == Depot. Costs are rounded to 1e-9.
//
// Solvers:
//
//   - TSPBranchAndBound: exact depth-first search over direct edges only.
//     Complexity: O(n!) worst case; practical for n ≲ 12.
//     No tour → Cost = +Inf and ErrNoTour.
//
//   - TSPTriangular: preorder walk of the Prim MST grown from the depot,
//     priced with the direct edge or the great-circle fallback.
//     Complexity: O(E log V + V).
//
//   - TSPShipping: the same walk, with every missing direct edge priced at
//     the mean MST distance. Needs no coordinates.
//
//   - NearestNeighbour / TSPHeuristic: greedy construction over direct
//     edges, then TwoOpt over resolved distances.
//     Complexity: O(n²) construction, O(n²) per 2-opt sweep.
//     Stuck construction → Cost = NoTourCost (-1) and ErrNotFullyConnected.
//
// Preconditions shared by all solvers: the graph is non-nil, has at least
// two vertices, and every ID in 0..Order()-1 is present.
//
// Solve dispatches on Options.Algo; TourCost and ValidateTour are helpers
// for checking tours produced elsewhere.
package tsp
