// Package knn builds proximity graphs by k-nearest-neighbor limiting: each
// centroid contributes undirected edges to its k−1 nearest neighbors under
// Euclidean distance (k counts the point itself, which is always nearest at
// distance 0 and is excluded).
//
// The spatial index is gonum's kd-tree (gonum.org/v1/gonum/spatial/kdtree),
// queried once per point with an n-nearest keeper.
//
// Degree asymmetry is by design: the k-NN relation is directed, and
// symmetrizing it by set insertion into an undirected edge set means a node's
// final degree is generally ≥ k−1 — extra edges appear wherever the node is
// someone else's near neighbor without the reverse holding. Ties at the k-th
// distance are resolved by the index's ordering; any choice among equidistant
// neighbors is acceptable.
//
// Errors:
//
//	ErrBadK - k outside [2, len(points)-1]; fail fast, no silent truncation.
package knn
