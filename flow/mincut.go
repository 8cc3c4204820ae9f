package flow

import (
	"sort"

	"github.com/arbelite/gravix/core"
)

// Cut is a partition of the network's vertices induced by a max-flow
// result: SourceSide is everything still residual-reachable from the
// source, SinkSide is the rest.
type Cut struct {
	// SourceSide and SinkSide list the two partitions in ascending
	// vertex order. The source is always in SourceSide, the sink in
	// SinkSide.
	SourceSide []int
	SinkSide   []int

	// Edges are the original arcs crossing from SourceSide into
	// SinkSide, with their capacities as weights. Every one is
	// saturated by the flow.
	Edges []core.Edge

	// Capacity is the total capacity of the crossing arcs. By max-flow
	// min-cut duality it equals the Result's Value.
	Capacity float64
}

// MinCut derives the minimum s–t cut from a completed max-flow run: a
// residual traversal from the source marks SourceSide, and the
// saturated arcs leaving it form the cut.
//
// Complexity: O(V + E) time and memory.
func MinCut(r *Result) (*Cut, error) {
	if r == nil || r.res == nil {
		return nil, ErrNotComputed
	}

	reach := make([]bool, r.n)
	reach[r.source] = true
	queue := []int{r.source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.adj[u] {
			if reach[v] || r.res[arcKey{u, v}] <= r.epsilon {
				continue
			}
			reach[v] = true
			queue = append(queue, v)
		}
	}

	cut := &Cut{}
	for v := 0; v < r.n; v++ {
		if reach[v] {
			cut.SourceSide = append(cut.SourceSide, v)
		} else {
			cut.SinkSide = append(cut.SinkSide, v)
		}
	}
	for k, c := range r.caps {
		if c > r.epsilon && reach[k.u] && !reach[k.v] {
			cut.Edges = append(cut.Edges, core.Edge{U: k.u, V: k.v, Weight: c})
			cut.Capacity += c
		}
	}
	// Map iteration order is random; pin the report.
	sort.Slice(cut.Edges, func(i, j int) bool {
		if cut.Edges[i].U != cut.Edges[j].U {
			return cut.Edges[i].U < cut.Edges[j].U
		}
		return cut.Edges[i].V < cut.Edges[j].V
	})
	return cut, nil
}
