package shortest

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arbelite/gravix/core"
)

// NoParent marks a vertex without a predecessor in a Tree: the source
// itself and every unreachable vertex.
const NoParent = -1

var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("shortest: graph is nil")

	// ErrSourceOutOfRange is returned when the source vertex lies
	// outside [0, VertexCount).
	ErrSourceOutOfRange = errors.New("shortest: source out of range")

	// ErrTargetOutOfRange is returned by AStar when the target vertex
	// lies outside [0, VertexCount).
	ErrTargetOutOfRange = errors.New("shortest: target out of range")

	// ErrNegativeWeight is returned by Dijkstra and AStar when any
	// edge weight is negative; they never run on such input.
	ErrNegativeWeight = errors.New("shortest: negative edge weight")

	// ErrNegativeCycle is returned by FloydWarshall when the graph
	// contains a negative-weight cycle, and by Tree.PathTo when the
	// tree was produced by a BellmanFord run that detected one.
	ErrNegativeCycle = errors.New("shortest: negative-weight cycle")

	// ErrNilHeuristic is returned by AStar when no heuristic is given.
	ErrNilHeuristic = errors.New("shortest: heuristic is nil")

	// ErrVertexOutOfRange is returned by PathTo and AllPairs.Path for
	// a vertex outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("shortest: vertex out of range")
)

// Tree is the result of a single-source run: a shortest-path tree
// rooted at Source.
type Tree struct {
	// Source is the root vertex of the tree.
	Source int

	// Dist[v] is the shortest distance from Source to v, or +Inf when
	// v is unreachable.
	Dist []float64

	// Parent[v] is the predecessor of v on a shortest path from
	// Source, or NoParent for the source and unreachable vertices.
	Parent []int

	// NegativeCycle is set by BellmanFord when a negative-weight cycle
	// is reachable from Source. Dist and Parent carry no meaning when
	// it is true.
	NegativeCycle bool
}

// PathTo reconstructs the shortest path from the tree's source to dest
// by walking Parent links. It returns nil (with a nil error) when dest
// is unreachable, and ErrNegativeCycle when the tree's NegativeCycle
// flag is set.
func (t *Tree) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(t.Dist) {
		return nil, ErrVertexOutOfRange
	}
	if t.NegativeCycle {
		return nil, ErrNegativeCycle
	}
	if math.IsInf(t.Dist[dest], 1) {
		return nil, nil
	}
	path := []int{dest}
	for v := dest; v != t.Source; {
		v = t.Parent[v]
		path = append(path, v)
	}
	// Reverse into source→dest order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// AllPairs is the result of FloydWarshall: a dense distance matrix and
// a next-hop table for path reconstruction.
type AllPairs struct {
	// Dist holds the shortest distance between every ordered vertex
	// pair; Dist.At(u, v) is +Inf when v is unreachable from u. Nil
	// for an empty graph.
	Dist *mat.Dense

	// next[u][v] is the vertex following u on a shortest u→v path, or
	// NoParent when no path exists.
	next [][]int
}

// Distance returns the shortest distance from u to v, +Inf when v is
// unreachable from u.
func (ap *AllPairs) Distance(u, v int) (float64, error) {
	if err := ap.check(u, v); err != nil {
		return 0, err
	}
	return ap.Dist.At(u, v), nil
}

// Next returns the vertex following u on a shortest u→v path, or
// NoParent when v is unreachable from u.
func (ap *AllPairs) Next(u, v int) (int, error) {
	if err := ap.check(u, v); err != nil {
		return 0, err
	}
	return ap.next[u][v], nil
}

// Path reconstructs a shortest u→v path from the next-hop table. It
// returns nil (with a nil error) when v is unreachable from u.
func (ap *AllPairs) Path(u, v int) ([]int, error) {
	if err := ap.check(u, v); err != nil {
		return nil, err
	}
	if math.IsInf(ap.Dist.At(u, v), 1) {
		return nil, nil
	}
	path := []int{u}
	for u != v {
		u = ap.next[u][v]
		path = append(path, u)
	}
	return path, nil
}

func (ap *AllPairs) check(u, v int) error {
	if u < 0 || u >= len(ap.next) || v < 0 || v >= len(ap.next) {
		return ErrVertexOutOfRange
	}
	return nil
}

// Option adjusts a Dijkstra or AStar run.
type Option func(*options)

type options struct {
	maxDistance float64
}

func defaultOptions() options {
	return options{maxDistance: math.Inf(1)}
}

// WithMaxDistance bounds the search radius: vertices whose tentative
// distance exceeds limit are never settled and stay at +Inf in the
// result. The default is no bound.
func WithMaxDistance(limit float64) Option {
	return func(o *options) { o.maxDistance = limit }
}

// newTree allocates an all-unreached tree rooted at source.
func newTree(source, n int) *Tree {
	t := &Tree{
		Source: source,
		Dist:   make([]float64, n),
		Parent: make([]int, n),
	}
	for v := 0; v < n; v++ {
		t.Dist[v] = math.Inf(1)
		t.Parent[v] = NoParent
	}
	t.Dist[source] = 0
	return t
}

// scanNegative reports whether any edge carries a negative weight.
func scanNegative(edges []core.Edge) bool {
	for _, e := range edges {
		if e.Weight < 0 {
			return true
		}
	}
	return false
}
