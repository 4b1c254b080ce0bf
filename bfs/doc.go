// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances (hop counts), parent links, and visit
// order.
//
// BFS explores nodes in increasing hop distance from a start node. The
// metrics package builds its eccentricity and connectivity computations on
// top of it; the package is exported because layered traversal is generally
// useful on proximity graphs.
//
// Options follow the library-wide functional pattern: a context for
// cancellation, an OnVisit hook, and an optional depth limit. Invalid option
// values surface as ErrOptionViolation at invocation, never as panics.
package bfs
