// Package voronoi builds proximity graphs from 3D centroids by Voronoi
// ridge-sharing: two points become adjacent exactly when their Voronoi cells
// share a bounding ridge (a face of the tessellation). That relation is the
// Delaunay neighbor relation, which is how this package computes it.
//
// The geometry primitive is a capability interface, RidgePairer: given
// points, return the ridge-sharing index pairs. The default implementation,
// DelaunayRidges, runs a brute-force empty-circumsphere test over all
// 4-subsets of the input — O(n⁵) worst case, which is perfectly serviceable
// at the ≤50-centroid scale this library targets and keeps the package free
// of a full tessellation engine. Callers with bigger clouds can plug any
// other backend through AdjacencyWith.
//
// Degenerate input (collinear or near-coplanar clouds) yields numerically
// unstable ridge sets: 4-subsets whose circumsphere is undefined are skipped,
// so a fully collinear cloud produces a graph with no edges at all. This is
// an accepted limitation, not defended against.
//
// Errors:
//
//	ErrTooFewPoints   - fewer than 4 points (3D tessellation needs 4).
//	ErrNilRidgePairer - AdjacencyWith received a nil backend.
package voronoi
