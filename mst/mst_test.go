package mst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelite/gravix/core"
	"github.com/arbelite/gravix/mst"
)

// buildGraph assembles an undirected Adjacency store from an edge
// list.
func buildGraph(t *testing.T, n int, edges []core.Edge) *core.Adjacency {
	t.Helper()
	g, err := core.FromEdges(n, false, edges)
	require.NoError(t, err)
	return g
}

// meshEdges is the hand-solved fixture: Kruskal accepts, in ascending
// order, (0,2,1), (1,2,2), (3,4,2), (0,1,4) for a total of 9.
func meshEdges() []core.Edge {
	return []core.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 2, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 1, V: 3, Weight: 5},
		{U: 2, V: 3, Weight: 8},
		{U: 3, V: 4, Weight: 2},
	}
}

func TestKruskal_KnownTree(t *testing.T) {
	g := buildGraph(t, 5, meshEdges())

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, 9.0, total)
	assert.Len(t, tree, 4, "spanning tree of 5 vertices has 4 edges")
}

func TestPrim_KnownTree(t *testing.T) {
	g := buildGraph(t, 5, meshEdges())

	tree, total, err := mst.Prim(g, 0)
	require.NoError(t, err)

	assert.Equal(t, 9.0, total)
	assert.Len(t, tree, 4)
}

func TestKruskalPrim_EqualWeightFromEveryRoot(t *testing.T) {
	g := buildGraph(t, 5, meshEdges())

	_, want, err := mst.Kruskal(g)
	require.NoError(t, err)

	for root := 0; root < 5; root++ {
		_, total, err := mst.Prim(g, root)
		require.NoError(t, err)
		assert.Equal(t, want, total, "root %d", root)
	}
}

func TestKruskal_Disconnected(t *testing.T) {
	g := buildGraph(t, 4, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: 1},
	})

	_, _, err := mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrDisconnected)

	_, _, err = mst.Prim(g, 0)
	assert.ErrorIs(t, err, mst.ErrDisconnected)
}

func TestKruskal_RejectsDirected(t *testing.T) {
	g, err := core.FromEdges(3, true, []core.Edge{{U: 0, V: 1, Weight: 1}})
	require.NoError(t, err)

	_, _, err = mst.Kruskal(g)
	assert.ErrorIs(t, err, mst.ErrNotUndirected)

	_, _, err = mst.Prim(g, 0)
	assert.ErrorIs(t, err, mst.ErrNotUndirected)
}

func TestKruskal_NegativeWeightsAccepted(t *testing.T) {
	g := buildGraph(t, 3, []core.Edge{
		{U: 0, V: 1, Weight: -2},
		{U: 1, V: 2, Weight: 3},
		{U: 0, V: 2, Weight: 1},
	})

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, -1.0, total)
	assert.Len(t, tree, 2)
}

func TestPrim_RejectsNegativeWeights(t *testing.T) {
	g := buildGraph(t, 3, []core.Edge{
		{U: 0, V: 1, Weight: -2},
		{U: 1, V: 2, Weight: 3},
	})

	_, _, err := mst.Prim(g, 0)
	assert.ErrorIs(t, err, mst.ErrNegativeWeight)
}

func TestPrim_RootOutOfRange(t *testing.T) {
	g := buildGraph(t, 3, []core.Edge{{U: 0, V: 1, Weight: 1}})

	_, _, err := mst.Prim(g, 3)
	assert.ErrorIs(t, err, mst.ErrRootOutOfRange)

	_, _, err = mst.Prim(g, -1)
	assert.ErrorIs(t, err, mst.ErrRootOutOfRange)
}

func TestMST_NilGraph(t *testing.T) {
	_, _, err := mst.Kruskal(nil)
	assert.ErrorIs(t, err, mst.ErrNilGraph)

	_, _, err = mst.Prim(nil, 0)
	assert.ErrorIs(t, err, mst.ErrNilGraph)
}

func TestMST_SingleVertex(t *testing.T) {
	g := buildGraph(t, 1, nil)

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)

	tree, total, err = mst.Prim(g, 0)
	require.NoError(t, err)
	assert.Empty(t, tree)
	assert.Zero(t, total)
}

func TestKruskal_EqualWeightsInputOrder(t *testing.T) {
	// Triangle of equal weights: the first two edges in input order
	// must win.
	g, err := core.NewEdgeList(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 7))
	require.NoError(t, g.AddEdge(1, 2, 7))
	require.NoError(t, g.AddEdge(0, 2, 7))

	tree, total, err := mst.Kruskal(g)
	require.NoError(t, err)

	assert.Equal(t, 14.0, total)
	require.Len(t, tree, 2)
	assert.Equal(t, core.Edge{U: 0, V: 1, Weight: 7}, tree[0])
	assert.Equal(t, core.Edge{U: 1, V: 2, Weight: 7}, tree[1])
}

func TestCompute_Dispatch(t *testing.T) {
	g := buildGraph(t, 5, meshEdges())

	_, kTotal, err := mst.Compute(g)
	require.NoError(t, err)
	assert.Equal(t, 9.0, kTotal)

	_, pTotal, err := mst.Compute(g,
		mst.WithAlgorithm(mst.AlgorithmPrim), mst.WithRoot(3))
	require.NoError(t, err)
	assert.Equal(t, 9.0, pTotal)

	_, _, err = mst.Compute(g, mst.WithAlgorithm(mst.Algorithm(99)))
	assert.ErrorIs(t, err, mst.ErrUnknownAlgorithm)
}

func TestUnionFind(t *testing.T) {
	uf := mst.NewUnionFind(5)
	assert.Equal(t, 5, uf.Components())

	assert.True(t, uf.Union(0, 1))
	assert.True(t, uf.Union(1, 2))
	assert.False(t, uf.Union(0, 2), "already connected")

	assert.True(t, uf.Connected(0, 2))
	assert.False(t, uf.Connected(0, 3))
	assert.Equal(t, 3, uf.Components())
}
