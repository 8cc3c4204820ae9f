package flow

import (
	"github.com/arbelite/gravix/core"
)

// arcKey identifies a directed capacity entry.
type arcKey struct{ u, v int }

// Network is a capacitated directed graph with a designated source and
// sink. It is a build-once input to MaxFlow: the engine copies its
// capacity table into a private residual view and never writes back.
type Network struct {
	n            int
	source, sink int
	caps         map[arcKey]float64
	adj          [][]int // forward neighbors per vertex, insertion order
}

// NewNetwork creates an empty network over vertices [0, n) with the
// given source and sink.
func NewNetwork(n, source, sink int) (*Network, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if source < 0 || source >= n {
		return nil, ErrVertexOutOfRange
	}
	if sink < 0 || sink >= n {
		return nil, ErrVertexOutOfRange
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}
	return &Network{
		n:      n,
		source: source,
		sink:   sink,
		caps:   make(map[arcKey]float64),
		adj:    make([][]int, n),
	}, nil
}

// FromGraph reinterprets a core.Graph as a flow network: edge weights
// become arc capacities, and each undirected edge contributes a pair
// of opposing arcs of the same capacity. A negative weight is rejected
// with an ArcError.
func FromGraph(g core.Graph, source, sink int) (*Network, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	net, err := NewNetwork(g.VertexCount(), source, sink)
	if err != nil {
		return nil, err
	}
	for _, e := range g.Edges() {
		if err := net.AddArc(e.U, e.V, e.Weight); err != nil {
			return nil, err
		}
		if !g.Directed() && e.U != e.V {
			if err := net.AddArc(e.V, e.U, e.Weight); err != nil {
				return nil, err
			}
		}
	}
	return net, nil
}

// AddArc adds capacity on the arc u→v. Capacities of parallel
// insertions accumulate. Negative capacity and out-of-range endpoints
// are rejected with an ArcError.
func (net *Network) AddArc(u, v int, capacity float64) error {
	if u < 0 || u >= net.n || v < 0 || v >= net.n {
		return &ArcError{From: u, To: v, Cap: capacity, Reason: ErrVertexOutOfRange}
	}
	if capacity < 0 {
		return &ArcError{From: u, To: v, Cap: capacity, Reason: ErrNegativeCapacity}
	}
	k := arcKey{u, v}
	if _, seen := net.caps[k]; !seen {
		net.adj[u] = append(net.adj[u], v)
	}
	net.caps[k] += capacity
	return nil
}

// VertexCount returns the number of vertices in the network.
func (net *Network) VertexCount() int { return net.n }

// Source returns the designated source vertex.
func (net *Network) Source() int { return net.source }

// Sink returns the designated sink vertex.
func (net *Network) Sink() int { return net.sink }

// Capacity returns the total capacity on the arc u→v; zero when no
// such arc exists.
func (net *Network) Capacity(u, v int) float64 {
	return net.caps[arcKey{u, v}]
}
