// Package dfs: options, sentinel errors, and the Result type shared by
// the depth-first entry points.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Vertex colors for the three-color visitation scheme.
const (
	white = iota // not yet visited
	gray         // on the traversal stack (in progress)
	black        // fully explored
)

// NoParent marks roots and unreached vertices in Result.Parent.
const NoParent = -1

// Sentinel errors for depth-first queries.
var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrStartOutOfRange is returned when the start index is outside [0, V).
	ErrStartOutOfRange = errors.New("dfs: start vertex out of range")

	// ErrCycleDetected is returned by topological sorts on cyclic input.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNotDirected is returned when a directed-only query receives an
	// undirected graph.
	ErrNotDirected = errors.New("dfs: operation requires a directed graph")

	// ErrNotUndirected is returned when an undirected-only query
	// receives a directed graph.
	ErrNotUndirected = errors.New("dfs: operation requires an undirected graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V + E) when hooks and filters are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to Background.
	Ctx context.Context

	// OnVisit, if non-nil, runs on vertex discovery (preorder).
	// A non-nil error aborts the traversal.
	OnVisit func(v int) error

	// OnExit, if non-nil, runs after a vertex's descendants are fully
	// explored (postorder). A non-nil error aborts the traversal.
	OnExit func(v int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// 0 explicitly disables the limit.
	MaxDepth int

	// FilterNeighbor, if non-nil, runs per arc curr→neighbor before
	// descent; return false to skip that arc.
	FilterNeighbor func(curr, neighbor int) bool

	// FullTraversal restarts from every unvisited vertex in ascending
	// index order, covering disconnected components.
	FullTraversal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no hooks, no
// depth limit, no filtering, single-source mode.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers the preorder hook.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit registers the postorder hook.
func WithOnExit(fn func(v int) error) Option {
	return func(o *Options) { o.OnExit = fn }
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
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest mode over disconnected inputs.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result holds the outcome of a DFS traversal.
type Result struct {
	// Preorder lists vertices in discovery order.
	Preorder []int

	// Postorder lists vertices in finish order. On a DAG, the reverse
	// of Postorder is a valid topological order.
	Postorder []int

	// Parent maps each vertex to its predecessor in the DFS forest;
	// NoParent for roots and unreached vertices.
	Parent []int

	// Visited marks every vertex the traversal reached.
	Visited []bool
}
