package shortest

import (
	"math"

	"github.com/arbelite/gravix/core"
)

// BellmanFord computes single-source shortest paths from source under
// arbitrary edge weights, negative included.
//
// It runs up to V−1 relaxation rounds over the full edge set, stopping
// early once a round changes nothing, then performs one extra
// detection round: any further improvement proves a negative-weight
// cycle reachable from source, reported through Tree.NegativeCycle
// rather than an error. Callers must check the flag before reading
// Dist or Parent.
//
// On an undirected graph every negative edge is itself a negative
// cycle (u→v→u), so the flag fires whenever one is reachable.
//
// Complexity: O(V · E) time, O(V + E) memory.
func BellmanFord(g core.Graph, source int) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}

	// Flatten to directed relaxation arcs once; undirected edges relax
	// in both orientations.
	edges := g.Edges()
	arcs := make([]core.Edge, 0, len(edges)*2)
	for _, e := range edges {
		arcs = append(arcs, e)
		if !g.Directed() {
			arcs = append(arcs, core.Edge{U: e.V, V: e.U, Weight: e.Weight})
		}
	}

	t := newTree(source, n)
	for round := 0; round < n-1; round++ {
		changed := false
		for _, a := range arcs {
			if relax(t, a) {
				changed = true
			}
		}
		if !changed {
			return t, nil
		}
	}

	// Detection round: a relaxation still finding improvement means a
	// reachable negative cycle.
	for _, a := range arcs {
		if !math.IsInf(t.Dist[a.U], 1) && t.Dist[a.U]+a.Weight < t.Dist[a.V] {
			t.NegativeCycle = true
			break
		}
	}
	return t, nil
}

// relax applies one edge relaxation and reports whether it improved
// the tentative distance of the head vertex.
func relax(t *Tree, a core.Edge) bool {
	if math.IsInf(t.Dist[a.U], 1) {
		return false
	}
	if next := t.Dist[a.U] + a.Weight; next < t.Dist[a.V] {
		t.Dist[a.V] = next
		t.Parent[a.V] = a.U
		return true
	}
	return false
}
