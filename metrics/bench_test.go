package metrics_test

import (
	"testing"

	"github.com/katalvlaran/cellgraph/cloud"
	"github.com/katalvlaran/cellgraph/knn"
	"github.com/katalvlaran/cellgraph/metrics"
)

// BenchmarkCompute_KNN50 measures the full metric pass over a 50-centroid
// k-NN graph, the upper end of the library's intended scale.
func BenchmarkCompute_KNN50(b *testing.B) {
	ps, err := cloud.Clusters(50, 4, cloud.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	g, err := knn.Adjacency(ps, 4)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = metrics.Compute(g)
	}
}
