package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvtsp/core"
)

// ExampleGraph demonstrates building a small graph and querying distances.
func ExampleGraph() {
	g := core.NewGraph()
	v0, _ := g.AddVertex(0)
	v1, _ := g.AddVertex(1)
	v2, _ := g.AddVertex(2)

	g.AddBidirectionalEdge(v0, v1, 4)
	g.AddBidirectionalEdge(v1, v2, 3)
	g.AddBidirectionalEdge(v0, v1, 100) // ignored: first write wins

	w, ok := core.DirectDistance(v1, v0)
	fmt.Println("0-1:", w, ok)
	_, ok = core.DirectDistance(v0, v2)
	fmt.Println("0-2 direct?", ok)
	fmt.Println("vertices:", g.VertexCount(), "edges:", g.EdgeCount())

	// Output:
	// 0-1: 4 true
	// 0-2 direct? false
	// vertices: 3 edges: 2
}
