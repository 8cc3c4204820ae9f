// Package dfs: topological ordering of directed acyclic graphs, in a
// DFS-postorder variant and a Kahn in-degree variant. The two variants
// may return different orderings; both are valid (every edge u→v has u
// positioned before v).
package dfs

import (
	"fmt"

	"github.com/arbelite/gravix/core"
)

// TopologicalSort computes a topological ordering of the directed
// graph g by reversing the DFS finish order. Ties are broken by the
// traversal order (ascending roots, store arc order), which keeps the
// output stable on a fixed graph.
// Fails with ErrNilGraph on nil input, ErrNotDirected on an undirected
// graph, and ErrCycleDetected when g is not a DAG.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort(g core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	if g.VertexCount() == 0 {
		return []int{}, nil
	}

	// A topological order exists iff the graph is acyclic; the
	// three-color pass doubles as the cycle check.
	cyclic, err := HasCycleDirected(g)
	if err != nil {
		return nil, err
	}
	if cyclic {
		return nil, ErrCycleDetected
	}

	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Reverse the postorder in place.
	order := res.Postorder
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}

// TopologicalKahn computes a topological ordering of the directed
// graph g with Kahn's algorithm: repeatedly emit a vertex of in-degree
// zero and decrement its successors. The ready queue is FIFO and is
// seeded in ascending vertex order, so ties resolve deterministically.
// Fails with ErrNilGraph on nil input, ErrNotDirected on an undirected
// graph, and ErrCycleDetected when some vertices never reach in-degree
// zero (a cycle).
// Complexity: O(V + E) time, O(V) memory.
func TopologicalKahn(g core.Graph) ([]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}

	n := g.VertexCount()
	indeg := make([]int, n)
	for u := 0; u < n; u++ {
		arcs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %d: %w", u, err)
		}
		for _, a := range arcs {
			indeg[a.To]++
		}
	}

	queue := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		order = append(order, u)

		arcs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %d: %w", u, err)
		}
		for _, a := range arcs {
			indeg[a.To]--
			if indeg[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	// Vertices left with positive in-degree sit on a cycle.
	if len(order) < n {
		return nil, ErrCycleDetected
	}

	return order, nil
}
