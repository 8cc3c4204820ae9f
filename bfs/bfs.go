// Package bfs implements the breadth-first traversal engine over the
// core.Graph read contract.
package bfs

import (
	"fmt"

	"github.com/arbelite/gravix/core"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g starting from start, applying any
// number of functional Options. With WithFullTraversal the whole graph
// is covered; otherwise only start's component.
// Returns ErrNilGraph or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or a context/hook error.
// Complexity: O(V + E) time, O(V) memory.
func BFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	// Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Dist:   make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Dist[v] = Unreached
		w.res.Parent[v] = NoParent
	}

	// Seed with the start vertex, then drain its component.
	w.enqueue(start, 0, NoParent)
	if err := w.loop(); err != nil {
		return nil, err
	}

	// Forest mode: restart from every remaining unvisited vertex.
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if w.res.Dist[v] != Unreached {
				continue
			}
			w.enqueue(v, 0, NoParent)
			if err := w.loop(); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

// enqueue marks v reached at depth d with the given parent and adds it
// to the frontier. Dist doubles as the visited set.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Dist[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per dequeue)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.v)
		if err := w.opts.OnVisit(item.v, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors retrieves arcs of the dequeued vertex, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) error {
	arcs, err := w.graph.Neighbors(item.v)
	if err != nil {
		return fmt.Errorf("bfs: neighbors of %d: %w", item.v, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, a := range arcs {
		if !w.opts.FilterNeighbor(item.v, a.To) {
			continue
		}
		if w.res.Dist[a.To] == Unreached {
			w.enqueue(a.To, nextDepth, item.v)
		}
	}

	return nil
}
