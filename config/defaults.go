package config

import (
	"fmt"
	"path"
)

// Catalogue groups, in menu order.
const (
	GroupReal   = "real"
	GroupToy    = "toy"
	GroupMedium = "medium"
)

// mediumSizes lists the vertex counts of the bundled medium graphs.
var mediumSizes = []int{25, 50, 75, 100, 200, 300, 400, 500, 600, 700, 800, 900}

// Default returns the built-in catalogue: three real graphs with coordinate
// files, three toy graphs (shipping priced with the shipping rule) and the
// twelve complete medium graphs.
func Default() Config {
	cfg := Config{
		DataDir:  "data",
		LogLevel: "info",
	}

	for i := 1; i <= 3; i++ {
		dir := path.Join("real_graphs", fmt.Sprintf("graph%d", i))
		cfg.Datasets = append(cfg.Datasets, Dataset{
			Name:  fmt.Sprintf("real-%d", i),
			Title: fmt.Sprintf("Real graph %d", i),
			Group: GroupReal,
			Edges: path.Join(dir, "edges.csv"),
			Nodes: path.Join(dir, "nodes.csv"),
		})
	}

	cfg.Datasets = append(cfg.Datasets,
		Dataset{Name: "shipping", Title: "Shipping graph", Group: GroupToy, Edges: "toys_graph/shipping.csv", Shipping: true},
		Dataset{Name: "stadiums", Title: "Stadiums graph", Group: GroupToy, Edges: "toys_graph/stadiums.csv"},
		Dataset{Name: "tourism", Title: "Tourism graph", Group: GroupToy, Edges: "toys_graph/tourism.csv"},
	)

	for _, n := range mediumSizes {
		cfg.Datasets = append(cfg.Datasets, Dataset{
			Name:  fmt.Sprintf("medium-%d", n),
			Title: fmt.Sprintf("Graph with %d nodes", n),
			Group: GroupMedium,
			Edges: fmt.Sprintf("medium_graphs/edges_%d.csv", n),
		})
	}

	return cfg
}
