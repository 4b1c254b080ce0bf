// delaunay.go — the default RidgePairer: brute-force Delaunay neighbors.
//
// Two Voronoi cells share a ridge exactly when their generating points are
// joined by a Delaunay edge, and a tetrahedron is Delaunay exactly when its
// circumsphere contains no other input point. At the small scale this
// library targets we can afford to test every 4-subset directly instead of
// maintaining an incremental tessellation.

package voronoi

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cellgraph/core"
)

// defaultEps is the slack subtracted from the squared circumradius in the
// in-sphere test, so points on the sphere boundary (cospherical input) do
// not flip tetrahedra in and out of the tessellation on rounding noise.
const defaultEps = 1e-9

// DelaunayRidges is the brute-force empty-circumsphere RidgePairer.
// The zero value is ready to use.
type DelaunayRidges struct {
	// Eps overrides the in-sphere tolerance; 0 selects defaultEps.
	Eps float64
}

// RidgePairs returns every Delaunay edge of ps as unordered index pairs,
// sorted lexicographically with pair[0] < pair[1].
//
// Implementation:
//   - Stage 1: for each 4-subset, solve for its circumcenter; singular
//     (coplanar/collinear) subsets are skipped.
//   - Stage 2: keep the tetrahedron iff no other point lies strictly inside
//     the circumsphere (squared distance < r² − eps).
//   - Stage 3: collect the 6 edges of every kept tetrahedron into a set,
//     then emit them in deterministic order.
//
// Complexity: O(n⁵) time worst case, O(n²) space for the edge set.
func (dr DelaunayRidges) RidgePairs(ps core.PointSet) ([][2]int, error) {
	if len(ps) < MinPoints {
		return nil, ErrTooFewPoints
	}

	eps := dr.Eps
	if eps == 0 {
		eps = defaultEps
	}

	n := len(ps)
	edges := make(map[[2]int]struct{})
	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				for l := k + 1; l < n; l++ {
					tet := [4]int{i, j, k, l}
					center, r2, ok := circumsphere(ps, tet)
					if !ok {
						continue // degenerate 4-subset
					}
					if !sphereEmpty(ps, center, r2-eps, tet) {
						continue
					}
					addTetraEdges(edges, tet)
				}
			}
		}
	}

	out := make([][2]int, 0, len(edges))
	for e := range edges {
		out = append(out, e)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a][0] != out[b][0] {
			return out[a][0] < out[b][0]
		}

		return out[a][1] < out[b][1]
	})

	return out, nil
}

// circumsphere solves for the center equidistant from the four tetrahedron
// vertices: 2(q−p₀)·c = |q|²−|p₀|² for each of the three non-base vertices q.
// Reports ok=false when the system is singular, i.e. the four points are
// coplanar or worse.
// Complexity: O(1) — one 3×3 solve.
func circumsphere(ps core.PointSet, tet [4]int) (center core.Point, r2 float64, ok bool) {
	base := ps[tet[0]]

	a := mat.NewDense(core.Dims, core.Dims, nil)
	b := mat.NewVecDense(core.Dims, nil)
	for row := 0; row < core.Dims; row++ {
		q := ps[tet[row+1]]
		for d := 0; d < core.Dims; d++ {
			a.Set(row, d, 2*(q[d]-base[d]))
		}
		b.SetVec(row, squaredNorm(q)-squaredNorm(base))
	}

	var c mat.VecDense
	if err := c.SolveVec(a, b); err != nil {
		return core.Point{}, 0, false
	}

	for d := 0; d < core.Dims; d++ {
		center[d] = c.AtVec(d)
	}

	return center, center.SquaredDistanceTo(base), true
}

// sphereEmpty reports whether no point of ps outside the tetrahedron lies
// strictly inside the sphere of squared radius bound around center.
// Complexity: O(n).
func sphereEmpty(ps core.PointSet, center core.Point, bound float64, tet [4]int) bool {
	for m := range ps {
		if m == tet[0] || m == tet[1] || m == tet[2] || m == tet[3] {
			continue
		}
		if center.SquaredDistanceTo(ps[m]) < bound {
			return false
		}
	}

	return true
}

// addTetraEdges inserts the 6 undirected edges of a kept tetrahedron,
// normalized to pair[0] < pair[1]. Indices in tet arrive ascending.
func addTetraEdges(edges map[[2]int]struct{}, tet [4]int) {
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			edges[[2]int{tet[a], tet[b]}] = struct{}{}
		}
	}
}

// squaredNorm returns |p|².
func squaredNorm(p core.Point) float64 {
	return p.SquaredDistanceTo(core.Point{})
}
