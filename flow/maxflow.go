package flow

import (
	"math"
)

// Result holds a completed max-flow computation: the flow value plus
// the residual state needed for per-arc lookups and MinCut.
type Result struct {
	// Value is the total flow pushed from source to sink.
	Value float64

	source, sink int
	n            int
	caps         map[arcKey]float64
	res          map[arcKey]float64
	adj          [][]int // residual adjacency: forward and reverse arcs
	epsilon      float64
}

// Flow returns the flow assigned to the arc u→v; zero when the arc
// carries none.
func (r *Result) Flow(u, v int) float64 {
	f := r.caps[arcKey{u, v}] - r.res[arcKey{u, v}]
	if f < 0 {
		return 0
	}
	return f
}

// Residual returns the remaining capacity on the arc u→v, reverse
// residual arcs included.
func (r *Result) Residual(u, v int) float64 {
	return r.res[arcKey{u, v}]
}

// MaxFlow computes the maximum source→sink flow of the network.
// Augmenting paths are found by BFS (Edmonds–Karp) unless
// WithFordFulkerson selects depth-first search. The network itself is
// never mutated; all bookkeeping lives in the returned Result.
//
// Complexity: O(V · E²) time with BFS selection, O(V + E) memory.
func MaxFlow(net *Network, opts ...Option) (*Result, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Result{
		source:  net.source,
		sink:    net.sink,
		n:       net.n,
		caps:    make(map[arcKey]float64, len(net.caps)),
		res:     make(map[arcKey]float64, len(net.caps)),
		adj:     make([][]int, net.n),
		epsilon: o.epsilon,
	}
	// Residual adjacency carries both orientations of every arc so a
	// search can walk reverse residual capacity. Built from the
	// network's insertion-ordered lists, not the capacity map, to keep
	// path selection reproducible. Capacities are copied, not aliased:
	// the Result stays a faithful snapshot even if arcs are added to
	// the network afterwards.
	seen := make(map[arcKey]bool, len(net.caps)*2)
	link := func(u, v int) {
		if !seen[arcKey{u, v}] {
			seen[arcKey{u, v}] = true
			r.adj[u] = append(r.adj[u], v)
		}
	}
	for u, vs := range net.adj {
		for _, v := range vs {
			k := arcKey{u, v}
			c := net.caps[k]
			r.caps[k] = c
			r.res[k] = c
			link(u, v)
			link(v, u)
		}
	}

	parent := make([]int, r.n)
	for {
		var (
			bottle float64
			found  bool
			err    error
		)
		if o.dfs {
			found, bottle, err = r.dfsPath(&o, parent)
		} else {
			found, bottle, err = r.bfsPath(&o, parent)
		}
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}
		r.augment(parent, bottle, &o)
	}
	return r, nil
}

// augment pushes bottle units of flow along the parent-encoded path
// and fires the OnAugment hook.
func (r *Result) augment(parent []int, bottle float64, o *options) {
	r.Value += bottle
	for v := r.sink; v != r.source; v = parent[v] {
		u := parent[v]
		r.res[arcKey{u, v}] -= bottle
		r.res[arcKey{v, u}] += bottle
	}
	if o.onAugment != nil {
		o.onAugment(r.pathFromParents(parent), bottle)
	}
}

// pathFromParents decodes the source→sink path for the hook.
func (r *Result) pathFromParents(parent []int) []int {
	path := []int{r.sink}
	for v := r.sink; v != r.source; v = parent[v] {
		path = append(path, parent[v])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// bfsPath finds a fewest-arcs augmenting path, filling parent and
// returning its bottleneck capacity.
func (r *Result) bfsPath(o *options, parent []int) (bool, float64, error) {
	visited := make([]bool, r.n)
	visited[r.source] = true
	bottle := make([]float64, r.n)
	bottle[r.source] = math.Inf(1)

	queue := []int{r.source}
	for len(queue) > 0 {
		select {
		case <-o.ctx.Done():
			return false, 0, o.ctx.Err()
		default:
		}
		u := queue[0]
		queue = queue[1:]
		for _, v := range r.adj[u] {
			if visited[v] || r.res[arcKey{u, v}] <= o.epsilon {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], r.res[arcKey{u, v}])
			if v == r.sink {
				return true, bottle[v], nil
			}
			queue = append(queue, v)
		}
	}
	return false, 0, nil
}

// dfsPath finds any augmenting path by iterative depth-first search.
func (r *Result) dfsPath(o *options, parent []int) (bool, float64, error) {
	visited := make([]bool, r.n)
	visited[r.source] = true
	bottle := make([]float64, r.n)
	bottle[r.source] = math.Inf(1)

	stack := []int{r.source}
	for len(stack) > 0 {
		select {
		case <-o.ctx.Done():
			return false, 0, o.ctx.Err()
		default:
		}
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, v := range r.adj[u] {
			if visited[v] || r.res[arcKey{u, v}] <= o.epsilon {
				continue
			}
			visited[v] = true
			parent[v] = u
			bottle[v] = math.Min(bottle[u], r.res[arcKey{u, v}])
			if v == r.sink {
				return true, bottle[v], nil
			}
			stack = append(stack, v)
		}
	}
	return false, 0, nil
}
