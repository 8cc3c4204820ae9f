package mst

import (
	"sort"

	"github.com/arbelite/gravix/core"
)

// Kruskal computes a minimum spanning tree by scanning the edge list
// in ascending weight order and accepting every edge whose endpoints
// lie in different components, merging them through a UnionFind. The
// scan stops once V−1 edges are accepted; finishing with fewer means
// no spanning tree exists (ErrDisconnected).
//
// The sort is stable, so edges of equal weight are considered in input
// order and the selection is deterministic. Negative weights are fine:
// the greedy exchange argument does not depend on sign.
//
// Complexity: O(E log E) time, O(V + E) memory.
func Kruskal(g core.Graph) ([]core.Edge, float64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, 0, nil
	}

	edges := g.Edges()
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	uf := NewUnionFind(n)
	tree := make([]core.Edge, 0, n-1)
	total := 0.0
	for _, e := range edges {
		if !uf.Union(e.U, e.V) {
			continue // endpoints already connected
		}
		tree = append(tree, e)
		total += e.Weight
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}
