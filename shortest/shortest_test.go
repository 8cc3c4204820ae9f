package shortest_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arbelite/gravix/core"
	"github.com/arbelite/gravix/shortest"
)

// buildGraph assembles an Adjacency store from an edge list, deriving
// the vertex count when n == 0.
func buildGraph(t *testing.T, n int, directed bool, edges []core.Edge) *core.Adjacency {
	t.Helper()
	g, err := core.FromEdges(n, directed, edges)
	require.NoError(t, err)
	return g
}

// roadEdges is the shared directed fixture:
//
//	0 →1→ 1 →2→ 2
//	0 →4→ 2,  1 →7→ 3,  2 →3→ 3,  3 →1→ 4
//
// Vertex 5 is isolated.
func roadEdges() []core.Edge {
	return []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: 2},
		{U: 0, V: 2, Weight: 4},
		{U: 1, V: 3, Weight: 7},
		{U: 2, V: 3, Weight: 3},
		{U: 3, V: 4, Weight: 1},
	}
}

func TestDijkstra_Distances(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 1, 3, 6, 7, math.Inf(1)}, tree.Dist)
	assert.Equal(t, shortest.NoParent, tree.Parent[0])
	assert.Equal(t, 2, tree.Parent[3], "0→1→2→3 beats 0→1→3")
}

func TestDijkstra_PathTo(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	path, err := tree.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)

	self, err := tree.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, self)
}

func TestDijkstra_UnreachableIsInf(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	assert.True(t, math.IsInf(tree.Dist[5], 1))
	assert.Equal(t, shortest.NoParent, tree.Parent[5])

	path, err := tree.PathTo(5)
	require.NoError(t, err)
	assert.Nil(t, path, "unreachable vertex has no path, not an error")
}

func TestDijkstra_RejectsNegativeWeight(t *testing.T) {
	g := buildGraph(t, 3, true, []core.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 1, V: 2, Weight: -1},
	})

	_, err := shortest.Dijkstra(g, 0)
	assert.ErrorIs(t, err, shortest.ErrNegativeWeight)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	tree, err := shortest.Dijkstra(g, 0, shortest.WithMaxDistance(3))
	require.NoError(t, err)

	assert.Equal(t, 3.0, tree.Dist[2])
	assert.True(t, math.IsInf(tree.Dist[3], 1), "3 lies beyond the radius")
	assert.True(t, math.IsInf(tree.Dist[4], 1))
}

func TestDijkstra_Validation(t *testing.T) {
	g := buildGraph(t, 3, true, nil)

	_, err := shortest.Dijkstra(nil, 0)
	assert.ErrorIs(t, err, shortest.ErrNilGraph)

	_, err = shortest.Dijkstra(g, -1)
	assert.ErrorIs(t, err, shortest.ErrSourceOutOfRange)

	_, err = shortest.Dijkstra(g, 3)
	assert.ErrorIs(t, err, shortest.ErrSourceOutOfRange)
}

func TestDijkstra_Undirected(t *testing.T) {
	g := buildGraph(t, 0, false, []core.Edge{
		{U: 0, V: 1, Weight: 5},
		{U: 1, V: 2, Weight: 5},
		{U: 0, V: 2, Weight: 20},
	})

	tree, err := shortest.Dijkstra(g, 2)
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 5, 0}, tree.Dist)
}

func TestDijkstra_TriangleInequality(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	// Settled distances admit no further relaxation.
	for _, e := range g.Edges() {
		if math.IsInf(tree.Dist[e.U], 1) {
			continue
		}
		assert.LessOrEqual(t, tree.Dist[e.V], tree.Dist[e.U]+e.Weight,
			"edge (%d,%d) still relaxable", e.U, e.V)
	}
}

func TestBellmanFord_MatchesDijkstraOnNonNegative(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	dj, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	bf, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)

	assert.False(t, bf.NegativeCycle)
	assert.Equal(t, dj.Dist, bf.Dist)
}

func TestBellmanFord_NegativeEdges(t *testing.T) {
	// Negative edge, no negative cycle.
	g := buildGraph(t, 4, true, []core.Edge{
		{U: 0, V: 1, Weight: 4},
		{U: 0, V: 2, Weight: 2},
		{U: 2, V: 1, Weight: -3},
		{U: 1, V: 3, Weight: 1},
	})

	tree, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)

	assert.False(t, tree.NegativeCycle)
	assert.Equal(t, []float64{0, -1, 2, 0}, tree.Dist)

	path, err := tree.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)
}

func TestBellmanFord_NegativeCycleFlag(t *testing.T) {
	g := buildGraph(t, 3, true, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: -3},
		{U: 2, V: 0, Weight: 1},
	})

	tree, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, tree.NegativeCycle)

	_, err = tree.PathTo(2)
	assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	// The cycle 2⇄3 is negative but not reachable from 0.
	g := buildGraph(t, 4, true, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 2, V: 3, Weight: -2},
		{U: 3, V: 2, Weight: 1},
	})

	tree, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)

	assert.False(t, tree.NegativeCycle)
	assert.Equal(t, 1.0, tree.Dist[1])
}

func TestBellmanFord_UndirectedNegativeEdgeIsCycle(t *testing.T) {
	g := buildGraph(t, 0, false, []core.Edge{
		{U: 0, V: 1, Weight: -1},
	})

	tree, err := shortest.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.True(t, tree.NegativeCycle)
}

func TestFloydWarshall_AllPairs(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	ap, err := shortest.FloydWarshall(g)
	require.NoError(t, err)

	// Every row agrees with a single-source run.
	for src := 0; src < 6; src++ {
		tree, err := shortest.Dijkstra(g, src)
		require.NoError(t, err)
		for v := 0; v < 6; v++ {
			d, err := ap.Distance(src, v)
			require.NoError(t, err)
			assert.Equal(t, tree.Dist[v], d, "pair (%d,%d)", src, v)
		}
	}
}

func TestFloydWarshall_Path(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	ap, err := shortest.FloydWarshall(g)
	require.NoError(t, err)

	path, err := ap.Path(0, 4)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, path)

	hop, err := ap.Next(0, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, hop)

	hop, err = ap.Next(0, 5)
	require.NoError(t, err)
	assert.Equal(t, shortest.NoParent, hop)

	none, err := ap.Path(0, 5)
	require.NoError(t, err)
	assert.Nil(t, none)

	_, err = ap.Path(0, 9)
	assert.ErrorIs(t, err, shortest.ErrVertexOutOfRange)
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	g := buildGraph(t, 3, true, []core.Edge{
		{U: 0, V: 1, Weight: 1},
		{U: 1, V: 2, Weight: -3},
		{U: 2, V: 0, Weight: 1},
	})

	_, err := shortest.FloydWarshall(g)
	assert.ErrorIs(t, err, shortest.ErrNegativeCycle)
}

func TestFloydWarshall_EmptyGraph(t *testing.T) {
	g := buildGraph(t, 0, true, nil)

	ap, err := shortest.FloydWarshall(g)
	require.NoError(t, err)
	assert.Nil(t, ap.Dist)
}

func TestAStar_ZeroHeuristicMatchesDijkstra(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	cost, path, err := shortest.AStar(g, 0, 4, func(int) float64 { return 0 })
	require.NoError(t, err)

	assert.Equal(t, tree.Dist[4], cost)
	want, err := tree.PathTo(4)
	require.NoError(t, err)
	assert.Equal(t, want, path)
}

func TestAStar_AdmissibleHeuristic(t *testing.T) {
	// 3×3 grid, unit weights; Manhattan distance to the corner is
	// admissible and must preserve the true cost.
	const side = 3
	var edges []core.Edge
	at := func(r, c int) int { return r*side + c }
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			if c+1 < side {
				edges = append(edges, core.Edge{U: at(r, c), V: at(r, c+1), Weight: 1})
			}
			if r+1 < side {
				edges = append(edges, core.Edge{U: at(r, c), V: at(r+1, c), Weight: 1})
			}
		}
	}
	g := buildGraph(t, side*side, false, edges)

	manhattan := func(v int) float64 {
		r, c := v/side, v%side
		return float64((side - 1 - r) + (side - 1 - c))
	}
	cost, path, err := shortest.AStar(g, at(0, 0), at(side-1, side-1), manhattan)
	require.NoError(t, err)

	assert.Equal(t, 4.0, cost)
	assert.Len(t, path, 5)
	assert.Equal(t, at(0, 0), path[0])
	assert.Equal(t, at(side-1, side-1), path[len(path)-1])
}

func TestAStar_InconsistentHeuristicStaysOptimal(t *testing.T) {
	// Vertex 1 is reached cheaply (0→1 = 2, f = 2) before the better
	// route 0→2→1 = 1.5 surfaces, because h overestimates the step
	// 2→1 (h[2] = 3 > 0.5 + h[1]). The heuristic never overestimates
	// the true remaining distances {4.5, 3, 3.5, 0}, so it is
	// admissible but not consistent, and vertex 1 must be re-expanded
	// after its distance improves.
	g := buildGraph(t, 4, true, []core.Edge{
		{U: 0, V: 1, Weight: 2},
		{U: 0, V: 2, Weight: 1},
		{U: 2, V: 1, Weight: 0.5},
		{U: 1, V: 3, Weight: 3},
	})
	h := []float64{0, 0, 3, 0}
	heuristic := func(v int) float64 { return h[v] }

	cost, path, err := shortest.AStar(g, 0, 3, heuristic)
	require.NoError(t, err)

	assert.Equal(t, 4.5, cost)
	assert.Equal(t, []int{0, 2, 1, 3}, path)

	// The returned cost must agree with a sign-off from Dijkstra and
	// with the weights along the returned path itself.
	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, tree.Dist[3], cost)

	walked := 0.0
	for i := 0; i+1 < len(path); i++ {
		w, ok, err := g.Weight(path[i], path[i+1])
		require.NoError(t, err)
		require.True(t, ok)
		walked += w
	}
	assert.Equal(t, cost, walked)
}

func TestAStar_UnreachableTarget(t *testing.T) {
	g := buildGraph(t, 6, true, roadEdges())

	cost, path, err := shortest.AStar(g, 0, 5, func(int) float64 { return 0 })
	require.NoError(t, err)
	assert.True(t, math.IsInf(cost, 1))
	assert.Nil(t, path)
}

func TestAStar_Validation(t *testing.T) {
	g := buildGraph(t, 3, true, nil)
	zero := func(int) float64 { return 0 }

	_, _, err := shortest.AStar(nil, 0, 1, zero)
	assert.ErrorIs(t, err, shortest.ErrNilGraph)

	_, _, err = shortest.AStar(g, 5, 1, zero)
	assert.ErrorIs(t, err, shortest.ErrSourceOutOfRange)

	_, _, err = shortest.AStar(g, 0, 5, zero)
	assert.ErrorIs(t, err, shortest.ErrTargetOutOfRange)

	_, _, err = shortest.AStar(g, 0, 1, nil)
	assert.ErrorIs(t, err, shortest.ErrNilHeuristic)
}

func TestAStar_RejectsNegativeWeight(t *testing.T) {
	g := buildGraph(t, 2, true, []core.Edge{{U: 0, V: 1, Weight: -1}})

	_, _, err := shortest.AStar(g, 0, 1, func(int) float64 { return 0 })
	assert.ErrorIs(t, err, shortest.ErrNegativeWeight)
}

func TestTree_PathToOutOfRange(t *testing.T) {
	g := buildGraph(t, 3, true, nil)

	tree, err := shortest.Dijkstra(g, 0)
	require.NoError(t, err)

	_, err = tree.PathTo(3)
	assert.ErrorIs(t, err, shortest.ErrVertexOutOfRange)
}
