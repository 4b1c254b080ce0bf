// Package cloud generates synthetic 3D centroid clouds for proximity-graph
// construction, with strictly reproducible randomness.
//
// Real centroid sets come from image segmentation; these generators stand in
// for them in tests, examples, and teaching material. Three shapes cover the
// cases the rest of the library cares about:
//
//	Clusters(n, clusters, ...)  — Gaussian blobs around scattered centers,
//	                              the closest stand-in for tissue
//	UniformBox(n, ...)          — uniform points in an axis-aligned box
//	Collinear(n, ...)           — evenly spaced points on a line (the
//	                              classic degenerate input)
//
// Reproducibility contract: every stochastic path is driven by an explicit
// *rand.Rand resolved from functional options. WithSeed(s) freezes a run;
// seed 0 maps to a fixed default seed so the zero value is still
// deterministic. There is no ambient RNG state anywhere in the package.
//
// Errors:
//
//	ErrTooFewPoints    - n below the generator's minimum.
//	ErrBadClusterCount - clusters < 1 or clusters > n.
//	ErrOptionViolation - a WithX option received a meaningless value.
package cloud
