// Package dfs: cycle detection for directed and undirected graphs.
package dfs

import (
	"fmt"

	"github.com/arbelite/gravix/core"
)

// HasCycleDirected reports whether the directed graph g contains a
// cycle, using the three-color scheme: a back edge into a gray
// (in-progress) vertex is a cycle. Self-loops count as cycles.
// Fails with ErrNilGraph on nil input and ErrNotDirected on an
// undirected graph (use HasCycleUndirected there).
// Complexity: O(V + E) time, O(V) memory.
func HasCycleDirected(g core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.Directed() {
		return false, ErrNotDirected
	}

	n := g.VertexCount()
	color := make([]int, n)
	var stack []frame

	for root := 0; root < n; root++ {
		if color[root] != white {
			continue
		}
		color[root] = gray
		arcs, err := g.Neighbors(root)
		if err != nil {
			return false, fmt.Errorf("dfs: neighbors of %d: %w", root, err)
		}
		stack = append(stack, frame{v: root, arcs: arcs})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.cursor >= len(top.arcs) {
				color[top.v] = black
				stack = stack[:len(stack)-1]
				continue
			}
			next := top.arcs[top.cursor].To
			top.cursor++

			switch color[next] {
			case gray:
				// Back edge into the active path: cycle.
				return true, nil
			case white:
				color[next] = gray
				arcs, err = g.Neighbors(next)
				if err != nil {
					return false, fmt.Errorf("dfs: neighbors of %d: %w", next, err)
				}
				stack = append(stack, frame{v: next, arcs: arcs})
			}
		}
	}

	return false, nil
}

// HasCycleUndirected reports whether the undirected graph g contains a
// cycle: any visited neighbor that is not the vertex we arrived from
// closes one. Self-loops count as cycles. Fails with ErrNilGraph on
// nil input and ErrNotUndirected on a directed graph.
// Complexity: O(V + E) time, O(V) memory.
func HasCycleUndirected(g core.Graph) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if g.Directed() {
		return false, ErrNotUndirected
	}

	n := g.VertexCount()
	visited := make([]bool, n)
	parent := make([]int, n)
	var stack []frame

	for root := 0; root < n; root++ {
		if visited[root] {
			continue
		}
		visited[root] = true
		parent[root] = NoParent
		arcs, err := g.Neighbors(root)
		if err != nil {
			return false, fmt.Errorf("dfs: neighbors of %d: %w", root, err)
		}
		stack = append(stack, frame{v: root, arcs: arcs})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.cursor >= len(top.arcs) {
				stack = stack[:len(stack)-1]
				continue
			}
			next := top.arcs[top.cursor].To
			top.cursor++

			if next == top.v {
				return true, nil // self-loop
			}
			if !visited[next] {
				visited[next] = true
				parent[next] = top.v
				arcs, err = g.Neighbors(next)
				if err != nil {
					return false, fmt.Errorf("dfs: neighbors of %d: %w", next, err)
				}
				stack = append(stack, frame{v: next, arcs: arcs})
				continue
			}
			if next != parent[top.v] {
				return true, nil // visited non-parent neighbor
			}
		}
	}

	return false, nil
}
