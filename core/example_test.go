package core_test

import (
	"fmt"

	"github.com/katalvlaran/cellgraph/core"
)

// ExampleGraph builds a tiny triangle of centroids by hand and inspects it.
func ExampleGraph() {
	ps := core.PointSet{{0, 0, 0}, {1, 0, 0}, {0.5, 1, 0}}
	g := core.NewGraphFrom(ps)

	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)
	_ = g.AddEdge(2, 0)
	_ = g.AddEdge(0, 1) // duplicate: silently ignored

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.Edges())
	nbrs, _ := g.NeighborIDs(0)
	fmt.Println("neighbors of 0:", nbrs)
	// Output:
	// nodes: 3
	// edges: [[0 1] [0 2] [1 2]]
	// neighbors of 0: [1 2]
}
