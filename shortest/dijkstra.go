package shortest

import (
	"container/heap"

	"github.com/arbelite/gravix/core"
)

// Dijkstra computes single-source shortest paths from source under
// non-negative edge weights. An upfront O(E) scan rejects negative
// weights with ErrNegativeWeight before any work is done.
//
// The priority queue uses lazy decrease-key: a relaxation pushes a
// fresh entry instead of updating the old one, and stale entries are
// skipped on pop. Each vertex is settled exactly once; ties between
// equal tentative distances resolve to the lower vertex index.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Dijkstra(g core.Graph, source int, opts ...Option) (*Tree, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	if scanNegative(g.Edges()) {
		return nil, ErrNegativeWeight
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	t := newTree(source, n)
	settled := make([]bool, n)

	pq := &distHeap{{v: source, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(distItem)
		if settled[item.v] {
			continue // stale duplicate
		}
		settled[item.v] = true

		arcs, err := g.Neighbors(item.v)
		if err != nil {
			return nil, err
		}
		for _, a := range arcs {
			next := item.dist + a.Weight
			if next > o.maxDistance || next >= t.Dist[a.To] {
				continue
			}
			t.Dist[a.To] = next
			t.Parent[a.To] = item.v
			heap.Push(pq, distItem{v: a.To, dist: next})
		}
	}
	return t, nil
}

// distItem is a heap entry: a vertex with its tentative distance at
// push time.
type distItem struct {
	v    int
	dist float64
}

// distHeap is a min-heap over tentative distance, then vertex index.
type distHeap []distItem

func (h distHeap) Len() int { return len(h) }

func (h distHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].v < h[j].v
}

func (h distHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *distHeap) Push(x any) { *h = append(*h, x.(distItem)) }

func (h *distHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
