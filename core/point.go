package core

import "math"

// Dims is the spatial dimensionality of every Point in the library.
// Centroids come from volumetric (3D) segmentations.
const Dims = 3

// Point is an immutable 3D coordinate marking a cell's estimated center.
// Points are plain value types: copying one copies its coordinates.
type Point [Dims]float64

// X returns the first coordinate.
func (p Point) X() float64 { return p[0] }

// Y returns the second coordinate.
func (p Point) Y() float64 { return p[1] }

// Z returns the third coordinate.
func (p Point) Z() float64 { return p[2] }

// SquaredDistanceTo returns the squared Euclidean distance between p and q.
// Preferred over DistanceTo when only the ordering of distances matters,
// since it avoids the square root.
// Complexity: O(1).
func (p Point) SquaredDistanceTo(q Point) float64 {
	var sum float64
	for d := 0; d < Dims; d++ {
		diff := p[d] - q[d]
		sum += diff * diff
	}

	return sum
}

// DistanceTo returns the Euclidean distance between p and q.
// Complexity: O(1).
func (p Point) DistanceTo(q Point) float64 {
	return math.Sqrt(p.SquaredDistanceTo(q))
}

// PointSet is an ordered sequence of Points. The index position of a point is
// the node identifier used by every graph builder: point i becomes node i.
type PointSet []Point

// Len returns the number of points in the set.
func (ps PointSet) Len() int { return len(ps) }

// Clone returns an independent copy of the point set.
// Complexity: O(n).
func (ps PointSet) Clone() PointSet {
	out := make(PointSet, len(ps))
	copy(out, ps)

	return out
}
