package mst

import (
	"errors"

	"github.com/arbelite/gravix/core"
)

var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrNotUndirected is returned when the input graph is directed;
	// spanning trees are defined over undirected graphs only.
	ErrNotUndirected = errors.New("mst: graph must be undirected")

	// ErrDisconnected is returned when no spanning tree exists: fewer
	// than V−1 edges could be assembled without forming a cycle.
	ErrDisconnected = errors.New("mst: graph is disconnected")

	// ErrRootOutOfRange is returned by Prim when the root vertex lies
	// outside [0, VertexCount).
	ErrRootOutOfRange = errors.New("mst: root out of range")

	// ErrNegativeWeight is returned by Prim when any edge weight is
	// negative. Kruskal has no such precondition.
	ErrNegativeWeight = errors.New("mst: negative edge weight")

	// ErrUnknownAlgorithm is returned by Compute for an Algorithm
	// value it does not recognize.
	ErrUnknownAlgorithm = errors.New("mst: unknown algorithm")
)

// Algorithm selects the spanning-tree strategy used by Compute.
type Algorithm int

const (
	// AlgorithmKruskal sorts the global edge list and unions
	// components. The default.
	AlgorithmKruskal Algorithm = iota

	// AlgorithmPrim grows a single tree from a root vertex.
	AlgorithmPrim
)

// Option adjusts a Compute run.
type Option func(*options)

type options struct {
	algorithm Algorithm
	root      int
}

func defaultOptions() options {
	return options{algorithm: AlgorithmKruskal}
}

// WithAlgorithm selects the spanning-tree strategy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *options) { o.algorithm = a }
}

// WithRoot sets the vertex Prim grows from. Ignored by Kruskal.
// The default is vertex 0.
func WithRoot(root int) Option {
	return func(o *options) { o.root = root }
}

// Compute builds a minimum spanning tree with the configured
// algorithm, returning the selected edges and their total weight.
func Compute(g core.Graph, opts ...Option) ([]core.Edge, float64, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	switch o.algorithm {
	case AlgorithmKruskal:
		return Kruskal(g)
	case AlgorithmPrim:
		return Prim(g, o.root)
	default:
		return nil, 0, ErrUnknownAlgorithm
	}
}

// validate runs the shared preconditions of both algorithms.
func validate(g core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	if g.Directed() {
		return ErrNotUndirected
	}
	return nil
}
