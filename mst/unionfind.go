package mst

// UnionFind is a disjoint-set forest over vertices [0, n) with path
// compression and union by rank; Find and Union run in near-constant
// amortized time. The zero value is unusable — construct with
// NewUnionFind.
//
// Exported beyond Kruskal's needs: incremental connectivity queries
// (adding edges and asking "same component?") use it directly.
type UnionFind struct {
	parent []int
	rank   []int
	count  int
}

// NewUnionFind creates n singleton sets, one per vertex.
func NewUnionFind(n int) *UnionFind {
	uf := &UnionFind{
		parent: make([]int, n),
		rank:   make([]int, n),
		count:  n,
	}
	for v := range uf.parent {
		uf.parent[v] = v
	}
	return uf
}

// Find returns the canonical representative of v's set, compressing
// the path it walks.
func (uf *UnionFind) Find(v int) int {
	for uf.parent[v] != v {
		uf.parent[v] = uf.parent[uf.parent[v]] // halve the path
		v = uf.parent[v]
	}
	return v
}

// Union merges the sets containing u and v, attaching the shallower
// tree under the deeper. It reports whether a merge happened: false
// means u and v were already connected.
func (uf *UnionFind) Union(u, v int) bool {
	ru, rv := uf.Find(u), uf.Find(v)
	if ru == rv {
		return false
	}
	switch {
	case uf.rank[ru] < uf.rank[rv]:
		uf.parent[ru] = rv
	case uf.rank[ru] > uf.rank[rv]:
		uf.parent[rv] = ru
	default:
		uf.parent[rv] = ru
		uf.rank[ru]++
	}
	uf.count--
	return true
}

// Connected reports whether u and v share a component.
func (uf *UnionFind) Connected(u, v int) bool {
	return uf.Find(u) == uf.Find(v)
}

// Components returns the number of disjoint sets remaining.
func (uf *UnionFind) Components() int {
	return uf.count
}
