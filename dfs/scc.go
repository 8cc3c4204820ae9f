// Package dfs: strongly connected components via Kosaraju's two-pass
// algorithm.
package dfs

import (
	"fmt"
	"sort"

	"github.com/arbelite/gravix/core"
)

// StronglyConnectedComponents partitions the directed graph g into its
// strongly connected components. Kosaraju's scheme: the first DFS pass
// (over all roots, so disconnected inputs are covered) records finish
// times; the second pass walks the edge-reversed graph in decreasing
// finish-time order, and each tree it grows is one SCC.
// Components are returned in the order the second pass discovers them,
// with member vertices sorted ascending inside each component.
// Fails with ErrNilGraph on nil input and ErrNotDirected on an
// undirected graph (where components coincide with connected
// components and BFS suffices).
// Complexity: O(V + E) time and memory.
func StronglyConnectedComponents(g core.Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrNotDirected
	}
	n := g.VertexCount()
	if n == 0 {
		return nil, nil
	}

	// Pass 1: full-forest DFS on g for the finish order.
	res, err := DFS(g, 0, WithFullTraversal())
	if err != nil {
		return nil, err
	}

	// Materialize the reversed adjacency once.
	rev := make([][]int, n)
	for u := 0; u < n; u++ {
		arcs, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("dfs: neighbors of %d: %w", u, err)
		}
		for _, a := range arcs {
			rev[a.To] = append(rev[a.To], u)
		}
	}

	// Pass 2: explicit-stack DFS on the reversed graph, roots taken in
	// decreasing finish time.
	assigned := make([]bool, n)
	var comps [][]int
	stack := make([]int, 0, n)
	for i := len(res.Postorder) - 1; i >= 0; i-- {
		root := res.Postorder[i]
		if assigned[root] {
			continue
		}
		var comp []int
		assigned[root] = true
		stack = append(stack[:0], root)
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			for _, u := range rev[v] {
				if !assigned[u] {
					assigned[u] = true
					stack = append(stack, u)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}

	return comps, nil
}
