// Package cellgraph turns 3D point clouds — typically simulated cell
// centroids from segmented microscopy images — into proximity graphs and
// descriptive graph statistics.
//
// 🚀 What is cellgraph?
//
//	A small, deterministic library that brings together:
//		• Core primitives: an undirected spatial graph whose nodes carry 3D positions
//		• Synthetic clouds: reproducible centroid generators (clusters, boxes, lines)
//		• Voronoi adjacency: edges between points whose Voronoi cells share a ridge
//		• k-NN adjacency: edges to each point's k−1 nearest neighbors, symmetrized
//		• Traversal: BFS with unweighted shortest-path depths
//		• Metrics: clustering coefficient, mean degree, eccentricity, radius, diameter
//
// ✨ Why choose cellgraph?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Reproducible – every stochastic path takes an explicit seed, no ambient state
//   - Honest about geometry – disconnected graphs report undefined distance metrics
//     instead of guessing
//
// Everything is organized under six subpackages:
//
//	core/    — Point, PointSet and the undirected spatial Graph type
//	cloud/   — seeded synthetic centroid generators
//	voronoi/ — Voronoi ridge-sharing adjacency builder
//	knn/     — k-nearest-neighbor adjacency builder
//	bfs/     — breadth-first traversal over a core.Graph
//	metrics/ — descriptive statistics with a disconnection guard
//
// Quick ASCII example:
//
//	    ●───●          two centroids whose Voronoi cells share a face
//	     \ /           become adjacent nodes in the proximity graph
//	      ●
//
// Dive into the per-package docs for full examples and complexity notes.
//
//	go get github.com/katalvlaran/cellgraph
package cellgraph
