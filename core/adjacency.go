// Package core: Adjacency is the default graph store — per-vertex arc
// lists with O(1) amortized insertion and O(degree) lookup.
package core

// Adjacency stores a graph as per-vertex ordered arc lists. Arcs keep
// insertion order; AddEdge on an existing (u, v) pair overwrites the
// weight in place, so Adjacency is always a simple graph (plus at most
// one self-loop per vertex).
type Adjacency struct {
	directed  bool
	adj       [][]Arc
	edgeCount int
}

// NewAdjacency creates an empty adjacency store with vertexCount
// vertices. Fails with ErrNegativeCount when vertexCount < 0.
// Complexity: O(V).
func NewAdjacency(vertexCount int, opts ...Option) (*Adjacency, error) {
	if vertexCount < 0 {
		return nil, ErrNegativeCount
	}
	cfg := buildConfig(opts)

	return &Adjacency{
		directed: cfg.directed,
		adj:      make([][]Arc, vertexCount),
	}, nil
}

// VertexCount returns V. Complexity: O(1).
func (g *Adjacency) VertexCount() int { return len(g.adj) }

// EdgeCount returns the number of edges (undirected edges count once).
// Complexity: O(1).
func (g *Adjacency) EdgeCount() int { return g.edgeCount }

// Directed reports whether edges are one-way. Complexity: O(1).
func (g *Adjacency) Directed() bool { return g.directed }

// Grow extends the vertex range to n, keeping existing indices valid.
// Shrinking is not supported: n below the current count is a no-op,
// preserving the monotone-V invariant. Complexity: O(n) worst case.
func (g *Adjacency) Grow(n int) {
	for len(g.adj) < n {
		g.adj = append(g.adj, nil)
	}
}

// arcIndex returns the position of v in u's arc list, or -1.
func (g *Adjacency) arcIndex(u, v int) int {
	for i, a := range g.adj[u] {
		if a.To == v {
			return i
		}
	}

	return -1
}

// AddEdge inserts edge u→v with the given weight, overwriting the
// weight if the edge already exists. Undirected stores mirror the arc
// at both endpoints atomically. Fails with ErrOutOfRange on bad
// indices. Complexity: O(degree(u)) for the duplicate check.
func (g *Adjacency) AddEdge(u, v int, weight float64) error {
	if err := checkPair(u, v, len(g.adj)); err != nil {
		return err
	}

	if i := g.arcIndex(u, v); i >= 0 {
		// Overwrite in place; keep the mirror arc in sync.
		g.adj[u][i].Weight = weight
		if !g.directed && u != v {
			g.adj[v][g.arcIndex(v, u)].Weight = weight
		}

		return nil
	}

	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: weight})
	if !g.directed && u != v {
		g.adj[v] = append(g.adj[v], Arc{To: u, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// RemoveEdge deletes edge u→v (and the mirror arc for undirected
// stores). Fails with ErrOutOfRange on bad indices and ErrEdgeNotFound
// when the edge is absent. Complexity: O(degree(u) + degree(v)).
func (g *Adjacency) RemoveEdge(u, v int) error {
	if err := checkPair(u, v, len(g.adj)); err != nil {
		return err
	}
	i := g.arcIndex(u, v)
	if i < 0 {
		return ErrEdgeNotFound
	}

	g.adj[u] = append(g.adj[u][:i], g.adj[u][i+1:]...)
	if !g.directed && u != v {
		j := g.arcIndex(v, u)
		g.adj[v] = append(g.adj[v][:j], g.adj[v][j+1:]...)
	}
	g.edgeCount--

	return nil
}

// HasEdge reports whether edge u→v exists.
// Complexity: O(degree(u)).
func (g *Adjacency) HasEdge(u, v int) (bool, error) {
	if err := checkPair(u, v, len(g.adj)); err != nil {
		return false, err
	}

	return g.arcIndex(u, v) >= 0, nil
}

// Weight returns the weight of edge u→v and whether it exists.
// Complexity: O(degree(u)).
func (g *Adjacency) Weight(u, v int) (float64, bool, error) {
	if err := checkPair(u, v, len(g.adj)); err != nil {
		return 0, false, err
	}
	if i := g.arcIndex(u, v); i >= 0 {
		return g.adj[u][i].Weight, true, nil
	}

	return 0, false, nil
}

// Neighbors returns a copy of u's arc list in insertion order.
// Complexity: O(degree(u)).
func (g *Adjacency) Neighbors(u int) ([]Arc, error) {
	if err := checkVertex(u, len(g.adj)); err != nil {
		return nil, err
	}
	out := make([]Arc, len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Degree returns the number of arcs leaving u. Complexity: O(1).
func (g *Adjacency) Degree(u int) (int, error) {
	if err := checkVertex(u, len(g.adj)); err != nil {
		return 0, err
	}

	return len(g.adj[u]), nil
}

// Edges returns every edge as a flat copy. Undirected edges appear
// once with U ≤ V; self-loops appear once. Complexity: O(V + E).
func (g *Adjacency) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u, arcs := range g.adj {
		for _, a := range arcs {
			if !g.directed && a.To < u {
				continue // mirror arc; reported from the smaller endpoint
			}
			out = append(out, Edge{U: u, V: a.To, Weight: a.Weight})
		}
	}

	return out
}

// Clone returns an independent deep copy of the store.
// Complexity: O(V + E).
func (g *Adjacency) Clone() *Adjacency {
	c := &Adjacency{
		directed:  g.directed,
		adj:       make([][]Arc, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for u, arcs := range g.adj {
		if len(arcs) == 0 {
			continue
		}
		c.adj[u] = make([]Arc, len(arcs))
		copy(c.adj[u], arcs)
	}

	return c
}
