// Package lvtsp solves the Travelling Salesman Problem over graphs loaded
// from CSV datasets, exactly and approximately.
//
// What is inside:
//
//   - core:         id-indexed graph store, optional coordinates, distance
//     resolver (direct edge, great-circle fallback).
//   - prim_kruskal: Prim MST with a decrease-key heap; Kruskal cross-check.
//   - dfs:          preorder walk over MST child lists.
//   - tsp:          branch-and-bound, triangular and shipping MST walks,
//     nearest-neighbour + 2-opt, and the Solve dispatcher.
//   - builder:      deterministic fixture graphs.
//   - reader:       CSV edge/node loading and writing.
//   - printer:      console rendering of graphs and tours.
//   - config:       YAML dataset catalogue.
//   - cmd/lvtsp:    CLI and interactive menu.
//
// Quick start:
//
//	g, err := reader.LoadFiles("data/real_graphs/graph1/edges.csv", "data/real_graphs/graph1/nodes.csv")
//	if err != nil { ... }
//	res, err := tsp.Solve(g, tsp.DefaultOptions())
//	fmt.Println(tsp.FormatTour(res.Tour), res.Cost)
//
// Every tour starts and ends at vertex 0; vertex IDs must be dense 0..N-1.
package lvtsp
