// Package shortest implements the shortest-path engine over the
// core.Graph read contract: single-source queries under non-negative
// weights (Dijkstra), general weights (BellmanFord), heuristic-guided
// point-to-point search (AStar), and all-pairs distances
// (FloydWarshall).
//
// # Results
//
// Single-source queries return a *Tree: per-vertex distances (+Inf for
// unreachable — "unreachable" is an expected answer, never an error)
// and parent links for path reconstruction via Tree.PathTo.
// FloydWarshall returns an *AllPairs with a gonum mat.Dense distance
// matrix and a next-hop table for AllPairs.Path.
//
// # Preconditions
//
// Dijkstra and AStar require non-negative weights and fail fast with
// ErrNegativeWeight after an upfront O(E) scan — they never return
// silently wrong distances. BellmanFord accepts any weights and
// reports a reachable negative cycle through Tree.NegativeCycle;
// distances and parents are unusable when that flag is set, so callers
// must check it first. FloydWarshall fails with ErrNegativeCycle when
// any diagonal distance turns negative.
//
// AStar's optimality additionally requires an admissible heuristic
// (never overestimating the true remaining distance). Admissibility is
// not verified at runtime: an inadmissible heuristic still terminates
// but may return a suboptimal path. That trade-off belongs to the
// caller.
//
// # Determinism
//
// The priority queues break distance ties by lower vertex index, so
// reconstructed paths are stable across runs on a fixed graph; which
// of several equal-cost paths wins is unspecified beyond that rule.
//
// Complexity (V = |vertices|, E = |edges|):
//
//   - Dijkstra:         O((V + E) log V) time, O(V + E) memory
//     (lazy decrease-key: duplicates stay in the heap)
//   - AStar:            same bound with a consistent heuristic; an
//     admissible-but-inconsistent one can force re-expansions
//   - BellmanFord:      O(V · E) time, O(V + E) memory
//   - FloydWarshall:    O(V³) time, O(V²) memory — intended for small
//     V (a few hundred); cost is cubic regardless of density
package shortest
