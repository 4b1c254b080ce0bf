// This file declares the Graph type, its sentinel errors, and the NewGraph
// constructor. Query and mutation methods live in methods.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node id outside 0..N-1.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates AddEdge was called with identical endpoints.
	ErrSelfLoop = errors.New("core: self-loop not allowed")
)

// Graph is the in-memory spatial graph: undirected, unweighted, simple.
//
// Nodes are dense int identifiers assigned by AddNode in insertion order, so
// a graph built from a PointSet has node i positioned at point i. Adjacency
// is mirrored (adjacency[u][v] and adjacency[v][u]) so neighbor lookups are
// O(1) from either endpoint.
//
// mu guards positions, adjacency, and edgeCount. All read methods take the
// read lock, so a fully built graph is safe for concurrent readers.
type Graph struct {
	mu sync.RWMutex

	// positions[id] is the spatial location of node id.
	positions []Point

	// adjacency[u][v] = struct{}{} ⇔ undirected edge {u,v} exists.
	adjacency map[int]map[int]struct{}

	// edgeCount tracks the number of undirected edges (each pair counted once).
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		positions: make([]Point, 0),
		adjacency: make(map[int]map[int]struct{}),
	}
}

// NewGraphFrom creates a Graph with one node per point in ps, positioned at
// that point, and no edges. Node i corresponds to ps[i].
// Complexity: O(n).
func NewGraphFrom(ps PointSet) *Graph {
	g := NewGraph()
	for _, p := range ps {
		g.AddNode(p)
	}

	return g
}
