// File: methods.go
// Role: node/edge lifecycle and query APIs for Graph.
// Determinism:
//   - NodeIDs() returns ids in ascending order.
//   - NeighborIDs() returns unique ids sorted asc.
//   - Edges() returns pairs with u<v, sorted lexicographically.
// Concurrency:
//   - Mutators take the write lock; queries take the read lock.

package core

import "sort"

// AddNode appends a node positioned at p and returns its id (0,1,2,…).
// Complexity: amortized O(1).
func (g *Graph) AddNode(p Point) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := len(g.positions)
	g.positions = append(g.positions, p)
	g.adjacency[id] = make(map[int]struct{})

	return id
}

// HasNode reports whether id names an existing node.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasNodeLocked(id)
}

// hasNodeLocked is the lock-free existence check used under either lock.
func (g *Graph) hasNodeLocked(id int) bool {
	return id >= 0 && id < len(g.positions)
}

// Position returns the spatial location of node id.
// Errors: ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Position(id int) (Point, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return Point{}, ErrNodeNotFound
	}

	return g.positions[id], nil
}

// AddEdge inserts the undirected edge {u,v}.
//
// Set semantics: inserting an edge that already exists is a silent no-op
// success. Symmetrized k-NN construction depends on this — the same pair is
// routinely offered from both endpoints.
//
// Errors: ErrNodeNotFound if either endpoint is missing; ErrSelfLoop if u==v.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.hasNodeLocked(u) || !g.hasNodeLocked(v) {
		return ErrNodeNotFound
	}
	if u == v {
		return ErrSelfLoop
	}
	if _, ok := g.adjacency[u][v]; ok {
		return nil // already present; set semantics
	}

	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}
	g.edgeCount++

	return nil
}

// HasEdge reports whether the undirected edge {u,v} exists.
// Unknown endpoints simply report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// NeighborIDs returns the ids adjacent to node id, unique and sorted asc.
// The returned slice is independent of internal storage.
// Errors: ErrNodeNotFound.
// Complexity: O(d·log d) where d = deg(id).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return nil, ErrNodeNotFound
	}

	out := make([]int, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		out = append(out, nbr)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to node id.
// Errors: ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.hasNodeLocked(id) {
		return 0, ErrNodeNotFound
	}

	return len(g.adjacency[id]), nil
}

// NodeIDs returns every node id in ascending order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, len(g.positions))
	for i := range out {
		out[i] = i
	}

	return out
}

// Edges returns every undirected edge exactly once as a pair [u v] with u<v,
// sorted lexicographically. The result is safe for the caller to retain.
// Complexity: O(E·log E).
func (g *Graph) Edges() [][2]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([][2]int, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v := range nbrs {
			if u < v {
				out = append(out, [2]int{u, v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}

		return out[i][1] < out[j][1]
	})

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.positions)
}

// EdgeCount returns the number of undirected edges, each pair counted once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of g: positions, adjacency, and edge count are
// all independent of the original.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		positions: make([]Point, len(g.positions)),
		adjacency: make(map[int]map[int]struct{}, len(g.adjacency)),
		edgeCount: g.edgeCount,
	}
	copy(out.positions, g.positions)
	for u, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		out.adjacency[u] = cp
	}

	return out
}
