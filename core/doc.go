// Package core provides the graph store every gravix algorithm reads:
// three interchangeable representations of a weighted graph over dense
// integer vertices, plus explicit conversions between them.
//
// # Data model
//
// Vertices are indices in [0, V). V is fixed at construction and may
// only grow (Grow); vertex removal is not supported — rebuild a new
// store instead. Edges are (u, v, weight) triples with float64 weights.
// An undirected edge is modeled as two directed arcs with the same
// weight, added and removed together; it is visible as a neighbor
// entry at both endpoints but reported once by Edges().
//
// # Representations
//
//   - Adjacency — per-vertex arc lists. O(1) amortized insertion,
//     O(degree) neighbor iteration and lookup. The default store;
//     AddEdge on an existing pair overwrites the weight.
//   - Dense — V×V weight table (gonum mat.Dense, NaN = no edge).
//     O(1) edge lookup, O(V²) space; for graphs the caller knows are
//     dense (edge count above roughly 0.3·V²). Overwrite semantics.
//   - EdgeList — flat edge collection with no per-vertex index.
//     O(1) insertion, O(E) lookup; AddEdge on an existing pair creates
//     a parallel edge. Canonical input form for Kruskal and bulk loads.
//
// Callers needing strict simple-graph semantics on an EdgeList must
// check HasEdge before AddEdge.
//
// # Conversions
//
// ToAdjacency, ToDense, and ToEdgeList are pure functions producing a
// new store; no representation supports every operation optimally, so
// the cost of switching is explicit, never implicit. FromEdges is the
// bulk-load constructor from the canonical edge-list format.
//
// # Concurrency
//
// Stores are not internally synchronized. Concurrent readers are safe
// as long as no writer runs; algorithms never retain references to
// store internals beyond a call (Neighbors and Edges return copies).
//
// Errors:
//
//	ErrOutOfRange     — vertex index outside [0, V).
//	ErrEdgeNotFound   — RemoveEdge on a missing edge.
//	ErrNilGraph       — nil Graph passed to a conversion.
//	ErrNegativeCount  — negative vertex count at construction.
package core
