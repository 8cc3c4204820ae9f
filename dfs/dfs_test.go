package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arbelite/gravix/core"
	"github.com/arbelite/gravix/dfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDAG constructs the directed DAG
//
//	0 → 1 → 3
//	0 → 2 → 3 → 4
func buildDAG(t *testing.T) core.Graph {
	t.Helper()
	g, err := core.FromEdges(5, true, []core.Edge{
		{U: 0, V: 1}, {U: 0, V: 2}, {U: 1, V: 3}, {U: 2, V: 3}, {U: 3, V: 4},
	})
	require.NoError(t, err)

	return g
}

// TestDFS_PrePostOrder verifies discovery and finish sequences on a
// simple path.
func TestDFS_PrePostOrder(t *testing.T) {
	g, err := core.FromEdges(3, true, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Preorder)
	assert.Equal(t, []int{2, 1, 0}, res.Postorder)
	assert.Equal(t, dfs.NoParent, res.Parent[0])
	assert.Equal(t, 1, res.Parent[2])
}

// TestDFS_DeepPath verifies the explicit stack survives a path graph
// far deeper than any recursion limit would allow.
func TestDFS_DeepPath(t *testing.T) {
	const n = 200_000
	edges := make([]core.Edge, n-1)
	for i := range edges {
		edges[i] = core.Edge{U: i, V: i + 1}
	}
	g, err := core.FromEdges(n, true, edges)
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Preorder, n)
	assert.Equal(t, n-1, res.Preorder[n-1])
	assert.Equal(t, n-1, res.Postorder[0], "deepest vertex finishes first")
}

// TestDFS_FullTraversal verifies forest mode covers disconnected
// components in ascending root order.
func TestDFS_FullTraversal(t *testing.T) {
	g, err := core.FromEdges(4, true, []core.Edge{{U: 0, V: 1}, {U: 2, V: 3}})
	require.NoError(t, err)

	single, err := dfs.DFS(g, 0)
	require.NoError(t, err)
	assert.False(t, single.Visited[2])

	forest, err := dfs.DFS(g, 0, dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, forest.Preorder)
}

// TestDFS_Hooks verifies preorder/postorder hook sequencing and abort.
func TestDFS_Hooks(t *testing.T) {
	g, err := core.FromEdges(3, true, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	require.NoError(t, err)

	var trace []string
	_, err = dfs.DFS(g, 0,
		dfs.WithOnVisit(func(v int) error {
			trace = append(trace, "pre")
			return nil
		}),
		dfs.WithOnExit(func(v int) error {
			trace = append(trace, "post")
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"pre", "pre", "pre", "post", "post", "post"}, trace)

	boom := errors.New("boom")
	_, err = dfs.DFS(g, 0, dfs.WithOnExit(func(v int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

// TestDFS_MaxDepthAndFilter verifies depth limiting and arc filtering.
func TestDFS_MaxDepthAndFilter(t *testing.T) {
	g, err := core.FromEdges(4, true, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)

	res, err := dfs.DFS(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.True(t, res.Visited[1])
	assert.False(t, res.Visited[2])

	// Zero explicitly disables the limit, matching bfs.WithMaxDepth.
	res, err = dfs.DFS(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.True(t, res.Visited[3])

	_, err = dfs.DFS(g, 0, dfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)

	res, err = dfs.DFS(g, 0, dfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.True(t, res.Visited[1])
	assert.False(t, res.Visited[2])
}

// TestDFS_Validation covers the input error surface and cancellation.
func TestDFS_Validation(t *testing.T) {
	_, err := dfs.DFS(nil, 0)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)

	g, err := core.FromEdges(2, true, []core.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	_, err = dfs.DFS(g, 2)
	assert.ErrorIs(t, err, dfs.ErrStartOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = dfs.DFS(g, 0, dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestHasCycleDirected covers the three-color detector on cyclic,
// acyclic, and self-loop inputs.
func TestHasCycleDirected(t *testing.T) {
	dag := buildDAG(t)
	cyclic, err := dfs.HasCycleDirected(dag)
	require.NoError(t, err)
	assert.False(t, cyclic, "diamond DAG has no cycle")

	ring, err := core.FromEdges(3, true, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}})
	require.NoError(t, err)
	cyclic, err = dfs.HasCycleDirected(ring)
	require.NoError(t, err)
	assert.True(t, cyclic)

	loop, err := core.FromEdges(2, true, []core.Edge{{U: 1, V: 1}})
	require.NoError(t, err)
	cyclic, err = dfs.HasCycleDirected(loop)
	require.NoError(t, err)
	assert.True(t, cyclic, "self-loop is a cycle")

	undirected, err := core.FromEdges(2, false, []core.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	_, err = dfs.HasCycleDirected(undirected)
	assert.ErrorIs(t, err, dfs.ErrNotDirected)
}

// TestHasCycleUndirected covers tree versus cyclic undirected input.
func TestHasCycleUndirected(t *testing.T) {
	tree, err := core.FromEdges(4, false, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}, {U: 2, V: 3}})
	require.NoError(t, err)
	cyclic, err := dfs.HasCycleUndirected(tree)
	require.NoError(t, err)
	assert.False(t, cyclic, "a tree has no cycle")

	triangle, err := core.FromEdges(3, false, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 0, V: 2}})
	require.NoError(t, err)
	cyclic, err = dfs.HasCycleUndirected(triangle)
	require.NoError(t, err)
	assert.True(t, cyclic)

	directed, err := core.FromEdges(2, true, []core.Edge{{U: 0, V: 1}})
	require.NoError(t, err)
	_, err = dfs.HasCycleUndirected(directed)
	assert.ErrorIs(t, err, dfs.ErrNotUndirected)
}
