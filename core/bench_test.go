package core_test

import (
	"math/rand"
	"testing"

	"github.com/arbelite/gravix/core"
)

// randomEdges builds a deterministic random edge list over n vertices.
func randomEdges(n, m int) []core.Edge {
	r := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, 0, m)
	for len(edges) < m {
		u, v := r.Intn(n), r.Intn(n)
		if u == v {
			continue
		}
		edges = append(edges, core.Edge{U: u, V: v, Weight: 1 + r.Float64()*99})
	}

	return edges
}

// BenchmarkAdjacency_AddEdge measures amortized insertion into the
// default store.
func BenchmarkAdjacency_AddEdge(b *testing.B) {
	edges := randomEdges(1000, 5000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := core.NewAdjacency(1000)
		for _, e := range edges {
			_ = g.AddEdge(e.U, e.V, e.Weight)
		}
	}
}

// BenchmarkDense_Weight measures O(1) lookup in the dense store.
func BenchmarkDense_Weight(b *testing.B) {
	g, _ := core.FromEdges(500, false, randomEdges(500, 20000))
	d, _ := core.ToDense(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = d.Weight(i%500, (i*7)%500)
	}
}

// BenchmarkToDense measures the explicit conversion cost.
func BenchmarkToDense(b *testing.B) {
	g, _ := core.FromEdges(500, false, randomEdges(500, 20000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = core.ToDense(g)
	}
}
