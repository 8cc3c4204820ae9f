// Package flow computes maximum flow on capacitated networks and the
// two classic reductions built on it: minimum s–t cuts and maximum
// bipartite matching.
//
// # Networks
//
// A Network is built apart from the core stores: NewNetwork plus
// AddArc, or FromGraph to reinterpret an existing core.Graph's weights
// as capacities (each undirected edge becomes a pair of opposing
// arcs). Parallel arcs sum their capacities. Negative capacity is
// rejected at insertion with a typed ArcError naming the offending
// arc.
//
// # Algorithms
//
// MaxFlow runs Edmonds–Karp by default: BFS picks a shortest
// augmenting path, which bounds the augmentation count by O(V·E)
// independent of capacity values. WithFordFulkerson switches path
// selection to depth-first search — fewer allocations per probe on
// shallow networks, but the augmentation count is bounded only by
// value/epsilon, so keep it away from adversarial capacities. Both
// work on an engine-local residual table; the input Network and any
// source core.Graph are never mutated.
//
// Capacities within WithEpsilon of zero (default 1e-9) are treated as
// exhausted, keeping float64 arithmetic from manufacturing endless
// hair-thin augmenting paths.
//
// # Reductions
//
// MinCut partitions vertices by residual reachability from the source
// after a max-flow run; by strong duality the cut's capacity always
// equals the flow value. BipartiteMatching reduces to unit-capacity
// max flow: a super-source feeds the left partition, the right drains
// into a super-sink, and each saturated middle arc is one matched
// pair.
//
// Complexity (V = |vertices|, E = |arcs|):
//
//   - Edmonds–Karp:   O(V · E²) time, O(V + E) memory
//   - Ford–Fulkerson: O(E · value/ε) time, O(V + E) memory
//   - MinCut:         O(V + E) on top of a completed run
//   - BipartiteMatching: O(V · E²) on the unit network, in practice
//     far below the bound since every augmentation adds a whole unit
package flow
