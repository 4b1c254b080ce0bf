package metrics

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/cellgraph/bfs"
	"github.com/katalvlaran/cellgraph/core"
)

// Compute analyzes g and returns its metrics Record.
//
// Algorithm:
//  1. Average local clustering coefficient: for node v with degree d, the
//     fraction of the d(d−1)/2 possible neighbor pairs that are themselves
//     adjacent; degree < 2 contributes 0. Mean over all nodes.
//  2. Mean degree: 2·E / N.
//  3. Connectivity guard, then — connected only — per-node eccentricities by
//     BFS from every node; their mean, minimum (radius), maximum (diameter).
//     Disconnected: the three distance metrics are undefined and the
//     WithOnDisconnected hook fires once.
//
// Errors: ErrGraphNil, ErrEmptyGraph. Disconnection is not an error.
// Complexity: O(V·(V+E)) time for the eccentricity sweep, O(V) space.
func Compute(g *core.Graph, opts ...Option) (Record, error) {
	if g == nil {
		return Record{}, ErrGraphNil
	}
	n := g.NodeCount()
	if n == 0 {
		return Record{}, ErrEmptyGraph
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rec := Record{
		AverageClustering: averageClustering(g),
		MeanDegree:        float64(2*g.EdgeCount()) / float64(n),
	}

	reached, err := componentSize(g)
	if err != nil {
		return Record{}, err
	}
	rec.Connected = reached == n
	if !rec.Connected {
		o.onDisconnected(reached, n)
		rec.MeanEccentricity = undefined()
		rec.Radius = undefined()
		rec.Diameter = undefined()

		return rec, nil
	}

	eccs, err := eccentricities(g)
	if err != nil {
		return Record{}, err
	}
	rec.MeanEccentricity = defined(stat.Mean(eccs, nil))
	rec.Radius = defined(floats.Min(eccs))
	rec.Diameter = defined(floats.Max(eccs))

	return rec, nil
}

// averageClustering returns the mean local clustering coefficient.
// Complexity: O(Σ d(v)²) edge-existence checks.
func averageClustering(g *core.Graph) float64 {
	ids := g.NodeIDs()
	coeffs := make([]float64, len(ids))
	for i, v := range ids {
		coeffs[i] = localClustering(g, v)
	}

	return stat.Mean(coeffs, nil)
}

// localClustering returns the clustering coefficient of one node:
// links-among-neighbors / (d·(d−1)/2), with 0 for degree < 2.
func localClustering(g *core.Graph, v int) float64 {
	nbrs, err := g.NeighborIDs(v)
	if err != nil || len(nbrs) < 2 {
		return 0
	}

	links := 0
	for a := 0; a < len(nbrs)-1; a++ {
		for b := a + 1; b < len(nbrs); b++ {
			if g.HasEdge(nbrs[a], nbrs[b]) {
				links++
			}
		}
	}
	possible := len(nbrs) * (len(nbrs) - 1) / 2

	return float64(links) / float64(possible)
}

// componentSize returns the number of nodes reachable from the lowest node
// id. The graph is a single connected component iff this equals NodeCount.
func componentSize(g *core.Graph) (int, error) {
	res, err := bfs.BFS(g, g.NodeIDs()[0])
	if err != nil {
		return 0, fmt.Errorf("metrics: connectivity guard: %w", err)
	}

	return len(res.Order), nil
}

// eccentricities returns every node's eccentricity (max hop distance to any
// other node) as float64s, in node id order. Caller guarantees connectivity.
func eccentricities(g *core.Graph) ([]float64, error) {
	ids := g.NodeIDs()
	out := make([]float64, len(ids))
	for i, v := range ids {
		res, err := bfs.BFS(g, v)
		if err != nil {
			return nil, fmt.Errorf("metrics: eccentricity of %d: %w", v, err)
		}
		out[i] = float64(res.Eccentricity())
	}

	return out, nil
}
