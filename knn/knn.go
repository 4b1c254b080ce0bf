package knn

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/cellgraph/core"
)

// MinNeighbors is the smallest admissible k. k counts the query point itself,
// so k=2 is the first value that produces any edges.
const MinNeighbors = 2

// ErrBadK indicates k outside the admissible range [MinNeighbors, n-1].
// k ≥ n would ask for the whole cloud as "neighbors" of every point; the
// builder fails fast rather than truncating.
var ErrBadK = errors.New("knn: k out of range")

// Adjacency builds the k-nearest-neighbor graph of ps: one node per point,
// positioned at that point, and for every point an undirected edge to each of
// its k−1 nearest neighbors (self excluded). Edges are inserted with set
// semantics, so the final degree of a node is ≥ k−1 in general — see the
// package comment for why this asymmetry is intentional.
//
// Errors: ErrBadK unless MinNeighbors ≤ k < len(ps).
// Complexity: O(n·log n) to build the index, O(n·(log n + k)) to query.
func Adjacency(ps core.PointSet, k int) (*core.Graph, error) {
	n := len(ps)
	if k < MinNeighbors || k >= n {
		return nil, fmt.Errorf("%w: need %d <= k < len(points)=%d, got k=%d", ErrBadK, MinNeighbors, n, k)
	}

	g := core.NewGraphFrom(ps)

	indexed := make(nodes, n)
	for i, p := range ps {
		indexed[i] = node{pt: p, id: i}
	}
	// kdtree.New partitions the slice in place, so iterate the permuted
	// nodes and rely on the id each one carries, never on slice position.
	tree := kdtree.New(indexed, false)

	for _, q := range indexed {
		keep := kdtree.NewNKeeper(k)
		tree.NearestSet(keep, q)
		for _, cd := range keep.Heap {
			if cd.Comparable == nil {
				continue // keeper placeholder: fewer than k candidates
			}
			nbr := cd.Comparable.(node)
			if nbr.id == q.id {
				continue // the point itself, nearest at distance 0
			}
			if err := g.AddEdge(q.id, nbr.id); err != nil {
				return nil, fmt.Errorf("knn: edge {%d,%d}: %w", q.id, nbr.id, err)
			}
		}
	}

	return g, nil
}
