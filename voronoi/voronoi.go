package voronoi

import (
	"fmt"

	"github.com/katalvlaran/cellgraph/core"
)

// Adjacency builds the Voronoi ridge-sharing graph of ps using the default
// DelaunayRidges backend: one node per input point, positioned at that point,
// and an undirected edge for every ridge-sharing pair. No edge weights.
//
// Errors: ErrTooFewPoints for len(ps) < MinPoints — fail fast, no silent
// truncation.
// Complexity: dominated by the backend; O(n⁵) with the default.
func Adjacency(ps core.PointSet) (*core.Graph, error) {
	return AdjacencyWith(ps, DelaunayRidges{})
}

// AdjacencyWith is Adjacency with a caller-supplied geometry backend.
// The backend's pairs are inserted into a fresh graph over ps; any pair the
// core graph rejects (unknown id, self-pair) propagates as an error.
func AdjacencyWith(ps core.PointSet, rp RidgePairer) (*core.Graph, error) {
	if rp == nil {
		return nil, ErrNilRidgePairer
	}
	if len(ps) < MinPoints {
		return nil, fmt.Errorf("%w: need >= %d, got %d", ErrTooFewPoints, MinPoints, len(ps))
	}

	pairs, err := rp.RidgePairs(ps)
	if err != nil {
		return nil, fmt.Errorf("voronoi: ridge pairing: %w", err)
	}

	g := core.NewGraphFrom(ps)
	for _, pair := range pairs {
		if err = g.AddEdge(pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("voronoi: ridge pair %v: %w", pair, err)
		}
	}

	return g, nil
}
