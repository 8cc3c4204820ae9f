package mst

import (
	"container/heap"

	"github.com/arbelite/gravix/core"
)

// Prim computes a minimum spanning tree by growing a single tree from
// root: a min-priority queue holds the cheapest known crossing edge to
// each fringe vertex, and each step claims the minimum and relaxes the
// claimed vertex's neighbors. Lazy decrease-key, as in the shortest
// package: stale queue entries are skipped once their vertex is in the
// tree.
//
// Negative weights are rejected upfront with ErrNegativeWeight; use
// Kruskal when the graph carries them. A queue that drains before all
// vertices join the tree means the graph is disconnected.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Prim(g core.Graph, root int) ([]core.Edge, float64, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}
	n := g.VertexCount()
	if root < 0 || root >= n {
		return nil, 0, ErrRootOutOfRange
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, 0, ErrNegativeWeight
		}
	}

	inTree := make([]bool, n)
	tree := make([]core.Edge, 0, n-1)
	total := 0.0

	pq := &crossHeap{{to: root, weight: 0, from: NoEdge}}
	for pq.Len() > 0 {
		c := heap.Pop(pq).(crossing)
		if inTree[c.to] {
			continue // stale entry
		}
		inTree[c.to] = true
		if c.from != NoEdge {
			tree = append(tree, core.Edge{U: c.from, V: c.to, Weight: c.weight})
			total += c.weight
		}

		arcs, err := g.Neighbors(c.to)
		if err != nil {
			return nil, 0, err
		}
		for _, a := range arcs {
			if !inTree[a.To] {
				heap.Push(pq, crossing{to: a.To, weight: a.Weight, from: c.to})
			}
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}
	return tree, total, nil
}

// NoEdge marks the root's queue entry, which claims a vertex without
// consuming an edge.
const NoEdge = -1

// crossing is a candidate tree edge: the cheapest known way to reach
// the fringe vertex to.
type crossing struct {
	to     int
	weight float64
	from   int
}

// crossHeap is a min-heap over crossing weight, then far endpoint.
type crossHeap []crossing

func (h crossHeap) Len() int { return len(h) }

func (h crossHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].to < h[j].to
}

func (h crossHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *crossHeap) Push(x any) { *h = append(*h, x.(crossing)) }

func (h *crossHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
