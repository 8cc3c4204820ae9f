// Package dfs: the explicit-stack traversal core.
package dfs

import (
	"fmt"

	"github.com/arbelite/gravix/core"
)

// frame is one explicit-stack entry: a vertex, its fetched arcs, and
// the cursor of the next arc to examine. Keeping the cursor in the
// frame lets the walk resume mid-iteration after exploring a child,
// exactly like a recursive call would.
type frame struct {
	v      int
	depth  int
	arcs   []core.Arc
	cursor int
}

// walker holds mutable DFS state for a single run.
type walker struct {
	graph core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on g from start. With
// WithFullTraversal the whole graph is covered (forest mode);
// otherwise only start's component. The traversal is iterative, so
// stack depth is bounded by O(V) heap, never by the goroutine stack.
// Returns ErrNilGraph or ErrStartOutOfRange for invalid input, or a
// context/hook error. Complexity: O(V + E) time, O(V) memory.
func DFS(g core.Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
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
		res: &Result{
			Preorder:  make([]int, 0, n),
			Postorder: make([]int, 0, n),
			Parent:    make([]int, n),
			Visited:   make([]bool, n),
		},
	}
	for v := range w.res.Parent {
		w.res.Parent[v] = NoParent
	}

	if err := w.explore(start); err != nil {
		return nil, err
	}
	if o.FullTraversal {
		for v := 0; v < n; v++ {
			if w.res.Visited[v] {
				continue
			}
			if err := w.explore(v); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

// explore drains one DFS tree rooted at root using the explicit stack.
func (w *walker) explore(root int) error {
	if err := w.push(root, 0); err != nil {
		return err
	}
	for len(w.stack) > 0 {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		if top.cursor >= len(top.arcs) {
			// All arcs examined: finish the vertex (postorder).
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(top.v); err != nil {
					return fmt.Errorf("dfs: OnExit hook for %d: %w", top.v, err)
				}
			}
			w.res.Postorder = append(w.res.Postorder, top.v)
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		a := top.arcs[top.cursor]
		top.cursor++

		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(top.v, a.To) {
			continue
		}
		if w.res.Visited[a.To] {
			continue
		}
		if w.opts.MaxDepth > 0 && top.depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[a.To] = top.v
		if err := w.push(a.To, top.depth+1); err != nil {
			return err
		}
	}

	return nil
}

// push discovers v: marks it visited, records preorder, runs the
// OnVisit hook, fetches its arcs once, and stacks a fresh frame.
func (w *walker) push(v, depth int) error {
	w.res.Visited[v] = true
	w.res.Preorder = append(w.res.Preorder, v)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", v, err)
		}
	}
	arcs, err := w.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %d: %w", v, err)
	}
	w.stack = append(w.stack, frame{v: v, depth: depth, arcs: arcs})

	return nil
}
