// Package core: Dense is the V×V weight-table store for graphs the
// caller has declared dense (edge count above roughly 0.3·V²).
package core

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dense stores a graph as a V×V weight matrix backed by gonum's
// mat.Dense. Absent edges hold NaN so that a stored weight of zero
// stays distinguishable from "no edge". Lookups are O(1); space is
// O(V²) regardless of edge count. AddEdge overwrites existing weights,
// so Dense is always a simple graph.
type Dense struct {
	directed  bool
	w         *mat.Dense
	n         int
	edgeCount int
}

// NewDense creates an empty dense store with vertexCount vertices.
// Fails with ErrNegativeCount when vertexCount < 0.
// Complexity: O(V²).
func NewDense(vertexCount int, opts ...Option) (*Dense, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeCount
	}
	cfg := buildConfig(opts)

	return &Dense{
		directed: cfg.directed,
		w:        newNaNDense(vertexCount),
		n:        vertexCount,
	}, nil
}

// newNaNDense allocates an n×n matrix filled with the NaN sentinel.
// mat.NewDense rejects zero dimensions, so n == 0 maps to nil.
func newNaNDense(n int) *mat.Dense {
	if n == 0 {
		return nil
	}
	data := make([]float64, n*n)
	for i := range data {
		data[i] = math.NaN()
	}

	return mat.NewDense(n, n, data)
}

// VertexCount returns V. Complexity: O(1).
func (g *Dense) VertexCount() int { return g.n }

// EdgeCount returns the number of edges (undirected edges count once).
// Complexity: O(1).
func (g *Dense) EdgeCount() int { return g.edgeCount }

// Directed reports whether edges are one-way. Complexity: O(1).
func (g *Dense) Directed() bool { return g.directed }

// Grow extends the vertex range to n, keeping existing cells. Values
// below the current count are a no-op (monotone-V invariant).
// Complexity: O(n²).
func (g *Dense) Grow(n int) {
	if n <= g.n {
		return
	}
	grown := newNaNDense(n)
	if g.n > 0 {
		grown.Slice(0, g.n, 0, g.n).(*mat.Dense).Copy(g.w)
	}
	g.w = grown
	g.n = n
}

// AddEdge sets cell (u, v) — and (v, u) for undirected stores — to
// weight, overwriting any previous value. Fails with ErrOutOfRange on
// bad indices. Complexity: O(1).
func (g *Dense) AddEdge(u, v int, weight float64) error {
	if err := checkPair(u, v, g.n); err != nil {
		return err
	}
	if math.IsNaN(g.w.At(u, v)) {
		g.edgeCount++
	}
	g.w.Set(u, v, weight)
	if !g.directed {
		g.w.Set(v, u, weight)
	}

	return nil
}

// RemoveEdge clears cell (u, v) — and (v, u) for undirected stores —
// back to the NaN sentinel. Fails with ErrOutOfRange on bad indices
// and ErrEdgeNotFound when the cell is already empty.
// Complexity: O(1).
func (g *Dense) RemoveEdge(u, v int) error {
	if err := checkPair(u, v, g.n); err != nil {
		return err
	}
	if math.IsNaN(g.w.At(u, v)) {
		return ErrEdgeNotFound
	}
	g.w.Set(u, v, math.NaN())
	if !g.directed {
		g.w.Set(v, u, math.NaN())
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether edge u→v exists. Complexity: O(1).
func (g *Dense) HasEdge(u, v int) (bool, error) {
	if err := checkPair(u, v, g.n); err != nil {
		return false, err
	}

	return !math.IsNaN(g.w.At(u, v)), nil
}

// Weight returns the weight of edge u→v and whether it exists.
// Complexity: O(1).
func (g *Dense) Weight(u, v int) (float64, bool, error) {
	if err := checkPair(u, v, g.n); err != nil {
		return 0, false, err
	}
	w := g.w.At(u, v)
	if math.IsNaN(w) {
		return 0, false, nil
	}

	return w, true, nil
}

// Neighbors returns u's arcs in ascending neighbor order (a row scan).
// Complexity: O(V).
func (g *Dense) Neighbors(u int) ([]Arc, error) {
	if err := checkVertex(u, g.n); err != nil {
		return nil, err
	}
	var out []Arc
	for v := 0; v < g.n; v++ {
		if w := g.w.At(u, v); !math.IsNaN(w) {
			out = append(out, Arc{To: v, Weight: w})
		}
	}

	return out, nil
}

// Degree returns the number of arcs leaving u. Complexity: O(V).
func (g *Dense) Degree(u int) (int, error) {
	if err := checkVertex(u, g.n); err != nil {
		return 0, err
	}
	deg := 0
	for v := 0; v < g.n; v++ {
		if !math.IsNaN(g.w.At(u, v)) {
			deg++
		}
	}

	return deg, nil
}

// Edges returns every edge as a flat copy in row-major cell order.
// Undirected edges appear once with U ≤ V. Complexity: O(V²).
func (g *Dense) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u := 0; u < g.n; u++ {
		start := 0
		if !g.directed {
			start = u // upper triangle only, including the diagonal
		}
		for v := start; v < g.n; v++ {
			if w := g.w.At(u, v); !math.IsNaN(w) {
				out = append(out, Edge{U: u, V: v, Weight: w})
			}
		}
	}

	return out
}

// Matrix returns a read-only view of the underlying weight table.
// Cells holding NaN mean "no edge". The view shares storage with the
// store; treat it as invalid after any mutation. Complexity: O(1).
func (g *Dense) Matrix() mat.Matrix { return g.w }

// Clone returns an independent deep copy of the store.
// Complexity: O(V²).
func (g *Dense) Clone() *Dense {
	c := &Dense{directed: g.directed, n: g.n, edgeCount: g.edgeCount}
	if g.n > 0 {
		c.w = mat.DenseCopyOf(g.w)
	}

	return c
}
