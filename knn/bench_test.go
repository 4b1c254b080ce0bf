package knn_test

import (
	"testing"

	"github.com/katalvlaran/cellgraph/cloud"
	"github.com/katalvlaran/cellgraph/knn"
)

// BenchmarkAdjacency_50 measures k-NN graph construction at the intended
// 50-centroid scale.
func BenchmarkAdjacency_50(b *testing.B) {
	ps, err := cloud.Clusters(50, 5, cloud.WithSeed(2))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = knn.Adjacency(ps, 4)
	}
}
