// Package core declares the Edge and Arc value types, the read-only
// Graph contract shared by all representations, sentinel errors, and
// the functional options applied at store construction.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrOutOfRange indicates a vertex index outside [0, VertexCount).
	ErrOutOfRange = errors.New("core: vertex index out of range")

	// ErrEdgeNotFound indicates RemoveEdge referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNilGraph indicates a nil Graph was passed to a conversion.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrNegativeCount indicates a negative vertex count at construction.
	ErrNegativeCount = errors.New("core: vertex count must be non-negative")
)

// Edge is a weighted (U, V, Weight) triple — the canonical bulk-load
// and bulk-export form. For undirected graphs Edges() reports each
// edge once with U ≤ V.
type Edge struct {
	// U is the source vertex index.
	U int

	// V is the destination vertex index.
	V int

	// Weight is the cost (or capacity, for flow callers) of the edge.
	Weight float64
}

// Arc is one neighbor entry of a vertex: the far endpoint and the
// weight of the connecting edge.
type Arc struct {
	// To is the neighbor vertex index.
	To int

	// Weight is the weight of the edge leading to To.
	Weight float64
}

// Graph is the read contract every algorithm package consumes. All
// three stores (Adjacency, Dense, EdgeList) implement it; algorithms
// depend on nothing beyond it, so any representation can serve any
// query. Implementations must return copies from Neighbors and Edges —
// callers never observe store internals.
type Graph interface {
	// VertexCount returns V, the number of vertices. Indices are [0, V).
	VertexCount() int

	// EdgeCount returns the number of stored edges. An undirected edge
	// counts once.
	EdgeCount() int

	// Directed reports whether edges are one-way.
	Directed() bool

	// HasEdge reports whether an edge u→v exists.
	// Fails with ErrOutOfRange when u or v is outside [0, V).
	HasEdge(u, v int) (bool, error)

	// Weight returns the weight of edge u→v and whether it exists.
	// With parallel edges (EdgeList), the first inserted edge wins.
	// Fails with ErrOutOfRange when u or v is outside [0, V).
	Weight(u, v int) (float64, bool, error)

	// Neighbors returns the arcs leaving u, in a stable order
	// (ascending neighbor index for Dense, insertion order otherwise).
	// Fails with ErrOutOfRange when u is outside [0, V).
	Neighbors(u int) ([]Arc, error)

	// Degree returns the number of arcs leaving u.
	// Fails with ErrOutOfRange when u is outside [0, V).
	Degree(u int) (int, error)

	// Edges returns every stored edge as a flat list. Undirected edges
	// appear once with U ≤ V. The slice is a copy owned by the caller.
	Edges() []Edge
}

// Option configures a store at construction time.
type Option func(*config)

// config holds construction-time flags shared by all stores.
type config struct {
	directed bool
}

// WithDirected sets edge directedness for the store (default false:
// undirected, every edge visible from both endpoints).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// buildConfig applies opts left-to-right over the defaults.
func buildConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// checkVertex validates a single index against [0, n).
func checkVertex(u, n int) error {
	if u < 0 || u >= n {
		return ErrOutOfRange
	}

	return nil
}

// checkPair validates both endpoints against [0, n).
func checkPair(u, v, n int) error {
	if err := checkVertex(u, n); err != nil {
		return err
	}

	return checkVertex(v, n)
}

// GraphStats is a read-only summary snapshot of a store, useful for
// quick admission checks and test assertions.
type GraphStats struct {
	// Directed reports the store's edge orientation policy.
	Directed bool

	// VertexCount is V at snapshot time.
	VertexCount int

	// EdgeCount is the stored edge count (undirected edges count once).
	EdgeCount int

	// SelfLoops is the number of edges with both endpoints equal.
	SelfLoops int
}

// Stats computes a GraphStats snapshot of g in a single Edges() pass.
// Complexity: O(E).
func Stats(g Graph) GraphStats {
	s := GraphStats{
		Directed:    g.Directed(),
		VertexCount: g.VertexCount(),
		EdgeCount:   g.EdgeCount(),
	}
	for _, e := range g.Edges() {
		if e.U == e.V {
			s.SelfLoops++
		}
	}

	return s
}
