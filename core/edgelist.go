// Package core: EdgeList is the flat, unindexed store — the required
// input/output form for Kruskal and for bulk construction.
package core

// EdgeList stores a graph as a flat edge slice with no per-vertex
// index. Insertion is O(1) and preserves input order (Kruskal's
// deterministic tie-break relies on that); lookups and neighbor
// iteration are O(E). Unlike the indexed stores, AddEdge on an
// existing pair appends a parallel edge — EdgeList is the multigraph
// representation. Callers needing simple-graph semantics must check
// HasEdge first.
type EdgeList struct {
	directed bool
	n        int
	edges    []Edge
}

// NewEdgeList creates an empty edge-list store with vertexCount
// vertices. Fails with ErrNegativeCount when vertexCount < 0.
// Complexity: O(1).
func NewEdgeList(vertexCount int, opts ...Option) (*EdgeList, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeCount
	}
	cfg := buildConfig(opts)

	return &EdgeList{directed: cfg.directed, n: vertexCount}, nil
}

// VertexCount returns V. Complexity: O(1).
func (g *EdgeList) VertexCount() int { return g.n }

// EdgeCount returns the number of stored edges, counting parallels.
// Complexity: O(1).
func (g *EdgeList) EdgeCount() int { return len(g.edges) }

// Directed reports whether edges are one-way. Complexity: O(1).
func (g *EdgeList) Directed() bool { return g.directed }

// Grow extends the vertex range to n; values below the current count
// are a no-op (monotone-V invariant). Complexity: O(1).
func (g *EdgeList) Grow(n int) {
	if n > g.n {
		g.n = n
	}
}

// matches reports whether stored edge e connects u→v, honoring
// undirected symmetry.
func (g *EdgeList) matches(e Edge, u, v int) bool {
	if e.U == u && e.V == v {
		return true
	}

	return !g.directed && e.U == v && e.V == u
}

// AddEdge appends edge u→v with the given weight. An existing (u, v)
// pair is not overwritten — a parallel edge is created. Fails with
// ErrOutOfRange on bad indices. Complexity: O(1) amortized.
func (g *EdgeList) AddEdge(u, v int, weight float64) error {
	if err := checkPair(u, v, g.n); err != nil {
		return err
	}
	g.edges = append(g.edges, Edge{U: u, V: v, Weight: weight})

	return nil
}

// RemoveEdge deletes every edge between u and v, parallels included
// (for undirected stores, either orientation matches). Fails with
// ErrOutOfRange on bad indices and ErrEdgeNotFound when no edge
// matches. Complexity: O(E).
func (g *EdgeList) RemoveEdge(u, v int) error {
	if err := checkPair(u, v, g.n); err != nil {
		return err
	}
	kept := g.edges[:0]
	removed := 0
	for _, e := range g.edges {
		if g.matches(e, u, v) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return ErrEdgeNotFound
	}
	g.edges = kept

	return nil
}

// HasEdge reports whether any edge u→v exists. Complexity: O(E).
func (g *EdgeList) HasEdge(u, v int) (bool, error) {
	if err := checkPair(u, v, g.n); err != nil {
		return false, err
	}
	for _, e := range g.edges {
		if g.matches(e, u, v) {
			return true, nil
		}
	}

	return false, nil
}

// Weight returns the weight of the first-inserted edge u→v and whether
// one exists. Complexity: O(E).
func (g *EdgeList) Weight(u, v int) (float64, bool, error) {
	if err := checkPair(u, v, g.n); err != nil {
		return 0, false, err
	}
	for _, e := range g.edges {
		if g.matches(e, u, v) {
			return e.Weight, true, nil
		}
	}

	return 0, false, nil
}

// Neighbors returns u's arcs in edge-insertion order, one arc per
// stored edge (parallels yield repeated entries). Complexity: O(E).
func (g *EdgeList) Neighbors(u int) ([]Arc, error) {
	if err := checkVertex(u, g.n); err != nil {
		return nil, err
	}
	var out []Arc
	for _, e := range g.edges {
		switch {
		case e.U == u:
			out = append(out, Arc{To: e.V, Weight: e.Weight})
		case !g.directed && e.V == u && e.U != u:
			out = append(out, Arc{To: e.U, Weight: e.Weight})
		}
	}

	return out, nil
}

// Degree returns the number of arcs leaving u. Complexity: O(E).
func (g *EdgeList) Degree(u int) (int, error) {
	arcs, err := g.Neighbors(u)
	if err != nil {
		return 0, err
	}

	return len(arcs), nil
}

// Edges returns a copy of the stored edges in insertion order. For
// undirected stores each edge is normalized to U ≤ V (orientation is
// meaningless there). Complexity: O(E).
func (g *EdgeList) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	if !g.directed {
		for i, e := range out {
			if e.U > e.V {
				out[i].U, out[i].V = e.V, e.U
			}
		}
	}

	return out
}

// Clone returns an independent deep copy of the store.
// Complexity: O(E).
func (g *EdgeList) Clone() *EdgeList {
	edges := make([]Edge, len(g.edges))
	copy(edges, g.edges)

	return &EdgeList{directed: g.directed, n: g.n, edges: edges}
}
