// Package core provides the spatial graph primitives shared by every
// cellgraph builder and analysis pass.
//
// The central types are:
//
//   - Point    — an immutable 3D coordinate (a cell centroid).
//   - PointSet — an ordered sequence of Points; the index position of a point
//     is the node identifier used throughout the library.
//   - Graph    — an undirected, unweighted, simple graph whose nodes are the
//     dense identifiers 0..N-1, each carrying a Point position.
//
// Graph G = (V,E) is deliberately narrow compared to a general-purpose graph
// type: no weights, no direction, no self-loops, no parallel edges. Proximity
// graphs over centroids need none of those, and the restriction lets every
// algorithm package assume set semantics for edges — inserting an edge that
// already exists is a silent no-op, which is exactly what symmetrizing a
// directed k-NN relation relies on.
//
// Behavior guarantees:
//
//   - Thread safety — a single sync.RWMutex guards nodes and adjacency, so a
//     graph may be read concurrently after construction.
//   - Deterministic iteration — NodeIDs(), NeighborIDs(), and Edges() all
//     return sorted results.
//   - Read-only lifecycle — builders construct a graph once; analysis passes
//     only read it. Nothing in this package removes nodes or edges.
//
// Core Methods:
//
//	// Node lifecycle & queries
//	AddNode(p Point) int              // O(1) amortized
//	HasNode(id int) bool              // O(1)
//	Position(id int) (Point, error)   // O(1)
//	NodeIDs() []int                   // O(V)
//	NodeCount() int                   // O(1)
//
//	// Edge lifecycle & queries
//	AddEdge(u, v int) error           // O(1); duplicate insert is a no-op
//	HasEdge(u, v int) bool            // O(1)
//	NeighborIDs(id int) ([]int, error)// O(d·log d), unique, sorted asc
//	Degree(id int) (int, error)       // O(1)
//	Edges() [][2]int                  // O(E·log E), each pair u<v, sorted
//	EdgeCount() int                   // O(1)
//
//	// Cloning
//	Clone() *Graph                    // O(V+E) deep copy
//
// Errors:
//
//	ErrNodeNotFound - an operation referenced a node id outside 0..N-1.
//	ErrSelfLoop     - AddEdge was called with u == v.
package core
