package mst_test

import (
	"math/rand"
	"testing"

	"github.com/arbelite/gravix/core"
	"github.com/arbelite/gravix/mst"
)

// benchGraph builds a connected random undirected graph: a spanning
// path plus m extra edges.
func benchGraph(b *testing.B, n, m int) *core.Adjacency {
	b.Helper()
	rng := rand.New(rand.NewSource(42))
	edges := make([]core.Edge, 0, n-1+m)
	for v := 1; v < n; v++ {
		edges = append(edges, core.Edge{U: v - 1, V: v, Weight: 1 + rng.Float64()*9})
	}
	for i := 0; i < m; i++ {
		edges = append(edges, core.Edge{
			U:      rng.Intn(n),
			V:      rng.Intn(n),
			Weight: 1 + rng.Float64()*9,
		})
	}
	g, err := core.FromEdges(n, false, edges)
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGraph(b, 10_000, 40_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Kruskal(g); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrim(b *testing.B) {
	g := benchGraph(b, 10_000, 40_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := mst.Prim(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
