// Package gravix is an in-process engine for weighted graph queries:
// traversal, shortest paths, minimum spanning trees, and maximum flow
// with minimum-cut extraction.
//
// Vertices are dense integer indices in [0, V); callers keep their own
// mapping from external identifiers. Graphs are stored in one of three
// interchangeable representations behind a common read contract, and
// every algorithm treats the graph it receives as a read-only snapshot
// for the duration of the call.
//
// Subpackages:
//
//	core/     — graph storage: adjacency structure (default), dense
//	            matrix, edge list; mutation, queries, and explicit
//	            conversions between representations.
//	bfs/      — breadth-first traversal: edge-count distances, parent
//	            links, visit order, forest mode.
//	dfs/      — depth-first traversal with an explicit stack, cycle
//	            detection, topological orderings (DFS and Kahn), and
//	            strongly connected components (Kosaraju).
//	shortest/ — single-source shortest paths (Dijkstra, Bellman-Ford,
//	            A*) and all-pairs distances (Floyd-Warshall).
//	mst/      — minimum spanning trees: Kruskal (union-find) and
//	            Prim (min-heap).
//	flow/     — maximum flow (Edmonds-Karp default, Ford-Fulkerson
//	            optional), minimum cut, bipartite matching.
//
// Concurrency: stores are not internally synchronized. Any number of
// queries may run concurrently over the same graph as long as no
// mutation happens during them; writers need external coordination.
//
// Errors are sentinel values per package, checked with errors.Is.
// "Unreachable" is never an error: shortest-path results report +Inf
// distances and empty paths for vertices the source cannot reach.
package gravix
