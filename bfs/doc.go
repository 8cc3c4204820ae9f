// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and
// visit order.
//
// BFS explores vertices in non-decreasing distance (edge count) from a
// start vertex using a FIFO frontier; every edge is treated as weight
// one regardless of stored weights. The result contains:
//
//   - Order:  vertices in visit sequence
//   - Dist:   per-vertex edge-count distance from the start
//     (Unreached for vertices the frontier never touched)
//   - Parent: per-vertex predecessor in the BFS tree (NoParent for
//     roots and unreached vertices)
//
// Forest mode (WithFullTraversal) restarts the frontier from every
// still-unvisited vertex in ascending index order, so disconnected
// inputs are fully covered; distances are then relative to the root of
// each component.
//
// Complexity (V = |vertices|, E = |edges|):
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options:
//
//   - WithContext(ctx):       cancellation between dequeues.
//   - WithMaxDepth(d):        do not explore beyond depth d (> 0).
//   - WithFilterNeighbor(fn): skip arcs for which fn returns false.
//   - WithOnVisit(fn):        hook at visit time; an error aborts.
//   - WithFullTraversal():    cover all components (forest mode).
//
// Errors:
//
//   - ErrNilGraph        if the graph is nil.
//   - ErrStartOutOfRange if the start index is outside [0, V).
//   - ErrOptionViolation if an invalid option was supplied.
//   - context and hook errors are propagated as-is or wrapped.
package bfs
