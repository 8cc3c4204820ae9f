package shortest

import (
	"container/heap"
	"math"

	"github.com/arbelite/gravix/core"
)

// Heuristic estimates the remaining distance from a vertex to the
// search target. AStar is optimal only when the estimate never exceeds
// the true remaining distance (admissibility); that property is the
// caller's responsibility and is not checked at runtime.
type Heuristic func(v int) float64

// AStar computes one shortest path from source to target, guided by
// the heuristic h. It returns the path cost and the vertex sequence
// source→target; an unreachable target yields (+Inf, nil, nil) — not
// an error. Like Dijkstra it requires non-negative edge weights and
// fails fast with ErrNegativeWeight otherwise.
//
// The open set orders vertices by f = g + h with lazy decrease-key;
// ties resolve to lower f, then lower vertex index. A popped entry is
// stale (and skipped) when its g-value no longer matches the vertex's
// best known distance; a vertex whose distance improves after
// expansion simply gets expanded again. That reopening is what keeps
// the result optimal for heuristics that are admissible but not
// consistent. With h ≡ 0 the search degenerates to Dijkstra stopped at
// target.
//
// Complexity: O((V + E) log V) time with a consistent heuristic;
// inconsistent ones can force re-expansions beyond that bound.
// Memory: O(V + E).
func AStar(g core.Graph, source, target int, h Heuristic, opts ...Option) (float64, []int, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}
	n := g.VertexCount()
	if source < 0 || source >= n {
		return 0, nil, ErrSourceOutOfRange
	}
	if target < 0 || target >= n {
		return 0, nil, ErrTargetOutOfRange
	}
	if h == nil {
		return 0, nil, ErrNilHeuristic
	}
	if scanNegative(g.Edges()) {
		return 0, nil, ErrNegativeWeight
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	dist := make([]float64, n)
	parent := make([]int, n)
	for v := 0; v < n; v++ {
		dist[v] = math.Inf(1)
		parent[v] = NoParent
	}
	dist[source] = 0

	pq := &fScoreHeap{{v: source, f: h(source), g: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(fScoreItem)
		if item.g > dist[item.v] {
			continue // stale entry
		}
		if item.v == target {
			break
		}

		arcs, err := g.Neighbors(item.v)
		if err != nil {
			return 0, nil, err
		}
		for _, a := range arcs {
			next := dist[item.v] + a.Weight
			if next > o.maxDistance || next >= dist[a.To] {
				continue
			}
			dist[a.To] = next
			parent[a.To] = item.v
			heap.Push(pq, fScoreItem{v: a.To, f: next + h(a.To), g: next})
		}
	}

	if math.IsInf(dist[target], 1) {
		return math.Inf(1), nil, nil
	}
	path := []int{target}
	for v := target; v != source; {
		v = parent[v]
		path = append(path, v)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return dist[target], path, nil
}

// fScoreItem is an open-set entry: the f-score orders the heap, the
// g-value at push time identifies stale entries on pop.
type fScoreItem struct {
	v int
	f float64
	g float64
}

// fScoreHeap is a min-heap over f = g + h, then vertex index.
type fScoreHeap []fScoreItem

func (h fScoreHeap) Len() int { return len(h) }

func (h fScoreHeap) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].v < h[j].v
}

func (h fScoreHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *fScoreHeap) Push(x any) { *h = append(*h, x.(fScoreItem)) }

func (h *fScoreHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
