// This file declares the RidgePairer capability interface and the package's
// sentinel errors and constants.
package voronoi

import (
	"errors"

	"github.com/katalvlaran/cellgraph/core"
)

// MinPoints is the smallest point count for which a 3D Voronoi tessellation
// is defined: four non-degenerate points.
const MinPoints = 4

// Sentinel errors for Voronoi adjacency construction.
var (
	// ErrTooFewPoints indicates fewer than MinPoints input points.
	ErrTooFewPoints = errors.New("voronoi: too few points for 3D tessellation")

	// ErrNilRidgePairer indicates AdjacencyWith received a nil backend.
	ErrNilRidgePairer = errors.New("voronoi: nil ridge pairer")
)

// RidgePairer is the geometry capability this package depends on: given a
// point set, return every unordered index pair {i,j} whose Voronoi cells
// share a bounding ridge. Implementations must not return self-pairs or
// duplicates and must not mutate ps.
//
// DelaunayRidges is the in-tree implementation; anything producing the same
// relation (e.g. bindings to a tessellation library) can be substituted via
// AdjacencyWith.
type RidgePairer interface {
	RidgePairs(ps core.PointSet) ([][2]int, error)
}
