// Package bfs: tunable options, sentinel errors, and the Result type
// for breadth-first search.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when the start index is outside [0, V).
	ErrStartOutOfRange = errors.New("bfs: start vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreachable is returned by Result.PathTo for a vertex the
	// traversal never reached.
	ErrUnreachable = errors.New("bfs: vertex not reached")
)

// Sentinel values in Result slices.
const (
	// Unreached marks a vertex the frontier never touched in Dist.
	Unreached = -1

	// NoParent marks roots and unreached vertices in Parent.
	NoParent = -1
)

// Option configures BFS behavior via functional arguments. An invalid
// option (e.g. negative depth) is recorded internally and surfaced as
// ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued for visiting. A
	// non-nil error aborts the traversal and is propagated wrapped.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 explicitly disables the limit.
	MaxDepth int

	// FilterNeighbor can skip arcs by returning false.
	// Called for each arc curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal restarts the search from every unvisited vertex,
	// covering disconnected components.
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, no depth limit, no filtering, no-op visit hook,
// single-source mode.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int, int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback invoked at visit time; returning an
// error aborts the traversal.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond the given depth.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips arcs for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithFullTraversal enables forest mode: after the start vertex's
// component is exhausted, the search restarts from every remaining
// unvisited vertex in ascending index order.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a BFS traversal.
type Result struct {
	// Order lists vertices in visit sequence.
	Order []int

	// Dist maps each vertex to its edge-count distance from its
	// traversal root; Unreached for vertices never touched.
	Dist []int

	// Parent maps each vertex to its predecessor in the BFS tree;
	// NoParent for roots and unreached vertices.
	Parent []int
}

// PathTo reconstructs the root-to-dest path by walking Parent links.
// Returns ErrUnreachable if dest was never reached and ErrStartOutOfRange
// for an invalid index.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Dist) {
		return nil, ErrStartOutOfRange
	}
	if r.Dist[dest] == Unreached {
		return nil, ErrUnreachable
	}
	path := []int{dest}
	for cur := dest; r.Parent[cur] != NoParent; cur = r.Parent[cur] {
		path = append(path, r.Parent[cur])
	}
	// reverse to get root → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
