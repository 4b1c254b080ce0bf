// generators.go — the three synthetic centroid generators.
//
// Shared contract:
//   • Validate parameters early and return sentinel errors (no panics).
//   • Same inputs + same resolved options ⇒ byte-identical PointSet.
//   • Generators return a fresh PointSet; they never retain state.

package cloud

import (
	"github.com/katalvlaran/cellgraph/core"
)

// Clusters generates n centroids grouped into the given number of Gaussian
// blobs, the usual stand-in for cells packed into tissue regions.
//
// Cluster centers are drawn uniformly from the generation box; point i is
// assigned to cluster i%clusters (deterministic round-robin, so every cluster
// receives ⌈n/clusters⌉ or ⌊n/clusters⌋ points) and displaced from its center
// by an isotropic Gaussian with the configured standard deviation.
//
// Errors: ErrTooFewPoints (n < 1), ErrBadClusterCount (clusters outside
// [1,n]), ErrOptionViolation.
// Complexity: O(n).
func Clusters(n, clusters int, opts ...Option) (core.PointSet, error) {
	cfg := newCloudConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < MinClusterPoints {
		return nil, cloudErrorf(generatorClusters, ErrTooFewPoints, "need n >= %d, got %d", MinClusterPoints, n)
	}
	if clusters < 1 || clusters > n {
		return nil, cloudErrorf(generatorClusters, ErrBadClusterCount, "need 1 <= clusters <= %d, got %d", n, clusters)
	}

	// Draw all cluster centers first so the stream layout is stable:
	// centers, then displacements, in index order.
	centers := make(core.PointSet, clusters)
	for c := range centers {
		centers[c] = uniformPoint(cfg)
	}

	out := make(core.PointSet, n)
	for i := 0; i < n; i++ {
		center := centers[i%clusters]
		var p core.Point
		for d := 0; d < core.Dims; d++ {
			p[d] = center[d] + cfg.rng.NormFloat64()*cfg.stddev
		}
		out[i] = p
	}

	return out, nil
}

// UniformBox generates n centroids drawn uniformly from the generation box.
//
// Errors: ErrTooFewPoints (n < 1), ErrOptionViolation.
// Complexity: O(n).
func UniformBox(n int, opts ...Option) (core.PointSet, error) {
	cfg := newCloudConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < MinUniformPoints {
		return nil, cloudErrorf(generatorUniformBox, ErrTooFewPoints, "need n >= %d, got %d", MinUniformPoints, n)
	}

	out := make(core.PointSet, n)
	for i := range out {
		out[i] = uniformPoint(cfg)
	}

	return out, nil
}

// Collinear generates n evenly spaced centroids on the x-axis segment from
// minBound to maxBound (y = z = 0). Deterministic: no randomness consumed.
// This is the canonical degenerate input for tessellation-based builders and
// the reference shape for k-NN chain behavior.
//
// Errors: ErrTooFewPoints (n < 2), ErrOptionViolation.
// Complexity: O(n).
func Collinear(n int, opts ...Option) (core.PointSet, error) {
	cfg := newCloudConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}
	if n < MinCollinearPoints {
		return nil, cloudErrorf(generatorCollinear, ErrTooFewPoints, "need n >= %d, got %d", MinCollinearPoints, n)
	}

	step := (cfg.maxBound - cfg.minBound) / float64(n-1)
	out := make(core.PointSet, n)
	for i := range out {
		out[i] = core.Point{cfg.minBound + float64(i)*step, 0, 0}
	}

	return out, nil
}

// uniformPoint draws one point uniformly from the configured box.
// Consumes exactly core.Dims values from the RNG stream.
func uniformPoint(cfg cloudConfig) core.Point {
	var p core.Point
	span := cfg.maxBound - cfg.minBound
	for d := 0; d < core.Dims; d++ {
		p[d] = cfg.minBound + cfg.rng.Float64()*span
	}

	return p
}
