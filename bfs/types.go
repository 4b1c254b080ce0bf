// This file declares tunable options, sentinel errors, and the Result type
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start id names no node.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments. An invalid value
// (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS is invoked.
type Option func(*options)

// options holds parameters and callbacks to customize BFS execution.
type options struct {
	// ctx allows cancellation and deadlines.
	ctx context.Context

	// onVisit is called when visiting a node with its hop depth from the
	// start. A returned error aborts the search and propagates.
	onVisit func(id, depth int) error

	// maxDepth, if > 0, stops exploring beyond this depth. 0 = no limit.
	maxDepth int

	// err records the first option violation.
	err error
}

// defaultOptions returns options with sane defaults: background context,
// no-op visit hook, no depth limit.
func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		onVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on each visit; returning an error
// from the callback stops the BFS.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no depth limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.maxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node id to its hop distance from the start.
//   - Parent: map from node id to its predecessor in the BFS tree
//     (the start node has no entry).
type Result struct {
	Order  []int
	Depth  map[int]int
	Parent map[int]int
}

// PathTo reconstructs the start→dest path along parent links.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}

	// walk parents back to the root, then reverse
	path := []int{}
	cur := dest
	for {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Eccentricity returns the maximum hop depth reached from the start node.
// Meaningful as the start node's graph eccentricity only when the traversal
// covered the whole graph (single connected component, no depth limit).
// Complexity: O(V) over the visited set.
func (r *Result) Eccentricity() int {
	max := 0
	for _, d := range r.Depth {
		if d > max {
			max = d
		}
	}

	return max
}
