// Package mst computes minimum spanning trees of connected undirected
// weighted graphs with two interchangeable algorithms:
//
//   - Kruskal — global edge sort plus a disjoint-set (UnionFind) over
//     components; the natural fit when the input is already an edge
//     list. Accepts negative weights.
//   - Prim — grows one tree from a root with a min-priority queue of
//     crossing edges; the natural fit for adjacency representations.
//     Requires non-negative weights (ErrNegativeWeight otherwise).
//
// Both require an undirected graph (ErrNotUndirected) and a connected
// one: when fewer than V−1 edges can be assembled without a cycle the
// run fails with ErrDisconnected. On the same graph both return the
// same total weight; the selected edge set may differ when equal
// weights admit several minimum trees.
//
// # Determinism
//
// Kruskal sorts ascending by weight with a stable sort, so equal
// weights keep their input order and the selection is reproducible.
// Prim breaks priority-queue ties by lower far-endpoint index. These
// policies pin which of several equal-cost trees is returned; they
// never change the total.
//
// Compute dispatches between the two via options for callers that
// choose the algorithm at runtime. The UnionFind type is exported: it
// is useful on its own for incremental connectivity.
//
// Complexity (V = |vertices|, E = |edges|):
//
//   - Kruskal: O(E log E) time, O(V + E) memory
//   - Prim:    O((V + E) log V) time, O(V + E) memory
package mst
