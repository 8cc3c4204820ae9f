// Package core: explicit, pure conversions between the three stores,
// plus the canonical bulk-load constructor.
package core

// maxIndex returns the largest vertex index referenced by edges, or -1.
func maxIndex(edges []Edge) int {
	m := -1
	for _, e := range edges {
		if e.U > m {
			m = e.U
		}
		if e.V > m {
			m = e.V
		}
	}

	return m
}

// FromEdges bulk-loads an Adjacency store from the canonical edge-list
// format. vertexCount of 0 derives V from the largest referenced index
// plus one; a positive vertexCount that is too small for some edge
// fails with ErrOutOfRange. Parallel input edges collapse to the last
// one (Adjacency overwrite semantics). Complexity: O(V + E).
func FromEdges(vertexCount int, directed bool, edges []Edge) (*Adjacency, error) {
	if vertexCount == 0 {
		vertexCount = maxIndex(edges) + 1
	}
	g, err := NewAdjacency(vertexCount, WithDirected(directed))
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// ToAdjacency produces a new Adjacency store with g's vertices and
// edges. Parallel edges in an EdgeList source collapse to the last
// one. Fails with ErrNilGraph on nil input. Complexity: O(V + E).
func ToAdjacency(g Graph) (*Adjacency, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out, err := NewAdjacency(g.VertexCount(), WithDirected(g.Directed()))
	if err != nil {
		return nil, err
	}
	copyEdges(out, g)

	return out, nil
}

// ToDense produces a new Dense store with g's vertices and edges.
// Parallel edges in an EdgeList source collapse to the last one.
// Fails with ErrNilGraph on nil input. Complexity: O(V² + E).
func ToDense(g Graph) (*Dense, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out, err := NewDense(g.VertexCount(), WithDirected(g.Directed()))
	if err != nil {
		return nil, err
	}
	copyEdges(out, g)

	return out, nil
}

// ToEdgeList produces a new EdgeList store with g's vertices and
// edges, in g.Edges() order. Fails with ErrNilGraph on nil input.
// Complexity: O(E).
func ToEdgeList(g Graph) (*EdgeList, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out, err := NewEdgeList(g.VertexCount(), WithDirected(g.Directed()))
	if err != nil {
		return nil, err
	}
	copyEdges(out, g)

	return out, nil
}

// edgeAdder is the mutation slice of a store used by conversions.
type edgeAdder interface {
	AddEdge(u, v int, weight float64) error
}

// copyEdges replays src.Edges() into dst. Indices are valid by
// construction (dst was sized from src), so AddEdge cannot fail.
func copyEdges(dst edgeAdder, src Graph) {
	for _, e := range src.Edges() {
		_ = dst.AddEdge(e.U, e.V, e.Weight)
	}
}
