// kdtree.go — adapters between core types and gonum's kd-tree interfaces.
//
// gonum's kdtree package is generic over a Comparable element and an
// Interface collection; the node/nodes/plane triple below is the standard
// wiring, with the node carrying its PointSet index so query results map
// back to graph ids.

package knn

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/cellgraph/core"
)

// node is one indexed centroid in the kd-tree.
type node struct {
	pt core.Point
	id int
}

// Compare returns the signed distance of n from the plane through c along
// dimension d.
func (n node) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(node)

	return n.pt[d] - q.pt[d]
}

// Dims returns the spatial dimensionality.
func (n node) Dims() int { return core.Dims }

// Distance returns the squared Euclidean distance to c; the kd-tree only
// needs a monotone distance, so the square root is skipped.
func (n node) Distance(c kdtree.Comparable) float64 {
	q := c.(node)

	return n.pt.SquaredDistanceTo(q.pt)
}

// nodes is the kd-tree collection over indexed centroids.
type nodes []node

func (p nodes) Index(i int) kdtree.Comparable         { return p[i] }
func (p nodes) Len() int                              { return len(p) }
func (p nodes) Pivot(d kdtree.Dim) int                { return plane{nodes: p, Dim: d}.Pivot() }
func (p nodes) Slice(start, end int) kdtree.Interface { return p[start:end] }

// plane is the per-dimension sort helper gonum's partitioning requires.
type plane struct {
	kdtree.Dim
	nodes
}

func (p plane) Less(i, j int) bool { return p.nodes[i].pt[p.Dim] < p.nodes[j].pt[p.Dim] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Swap(i, j int)      { p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i] }

func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.nodes = p.nodes[start:end]

	return p
}
