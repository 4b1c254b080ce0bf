package knn_test

import (
	"fmt"

	"github.com/katalvlaran/cellgraph/cloud"
	"github.com/katalvlaran/cellgraph/knn"
)

// ExampleAdjacency builds the k=3 chain over 10 collinear centroids.
func ExampleAdjacency() {
	ps, _ := cloud.Collinear(10, cloud.WithBounds(0, 9))
	g, _ := knn.Adjacency(ps, 3)

	d0, _ := g.Degree(0)
	d5, _ := g.Degree(5)
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	fmt.Println("endpoint degree:", d0, "interior degree:", d5)
	// Output:
	// nodes: 10 edges: 11
	// endpoint degree: 2 interior degree: 2
}
