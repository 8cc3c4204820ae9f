// Package dfs implements depth-first traversal and the classical
// queries built on it: cycle detection, topological ordering, and
// strongly connected components.
//
// The traversal core uses an explicit stack of (vertex, neighbor
// cursor) frames instead of recursion, so path-shaped graphs with tens
// of thousands of vertices cannot overflow the call stack. All
// entry points accept any core.Graph representation.
//
//   - DFS(g, start, opts…): preorder/postorder visitation with parent
//     links; WithFullTraversal covers disconnected components.
//   - HasCycleDirected(g): three-color scheme — a back edge to an
//     in-progress (gray) vertex signals a cycle.
//   - HasCycleUndirected(g): flags any visited non-parent neighbor.
//   - TopologicalSort(g): reversed DFS postorder; fails with
//     ErrCycleDetected on non-DAGs.
//   - TopologicalKahn(g): in-degree queue variant; same error surface,
//     possibly a different (equally valid) ordering.
//   - StronglyConnectedComponents(g): Kosaraju's two passes — finish
//     times on g, then DFS trees on the edge-reversed graph in
//     decreasing finish-time order.
//
// Determinism: traversal roots and the Kahn queue are seeded in
// ascending vertex order, and neighbors are explored in the order the
// store reports them, so every query is reproducible on a fixed graph.
//
// Complexity: all operations run in O(V + E) time and O(V) memory
// (StronglyConnectedComponents materializes the reversed adjacency,
// O(V + E) memory).
//
// Errors:
//
//	ErrNilGraph          — nil graph.
//	ErrStartOutOfRange   — start index outside [0, V).
//	ErrCycleDetected     — topological sort on a cyclic graph.
//	ErrNotDirected       — a directed-only query on an undirected graph.
//	ErrNotUndirected     — an undirected-only query on a directed graph.
package dfs
