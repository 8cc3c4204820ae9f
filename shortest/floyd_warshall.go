package shortest

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/arbelite/gravix/core"
)

// FloydWarshall computes shortest distances between every ordered
// vertex pair by dynamic programming over allowed intermediate
// vertices (the classic k → i → j loop order). Negative weights are
// accepted; a negative-weight cycle surfaces as a negative diagonal
// entry and aborts the run with ErrNegativeCycle.
//
// Parallel edges collapse to their minimum weight during
// initialization. The result is intended for small graphs: the cost is
// Θ(V³) regardless of density.
//
// Complexity: O(V³) time, O(V²) memory.
func FloydWarshall(g core.Graph) (*AllPairs, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.VertexCount()
	ap := &AllPairs{next: make([][]int, n)}
	if n == 0 {
		return ap, nil
	}

	dist := mat.NewDense(n, n, nil)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		ap.next[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i == j {
				dist.Set(i, j, 0)
				ap.next[i][j] = j
				continue
			}
			dist.Set(i, j, inf)
			ap.next[i][j] = NoParent
		}
	}
	for _, e := range g.Edges() {
		if e.Weight < dist.At(e.U, e.V) {
			dist.Set(e.U, e.V, e.Weight)
			ap.next[e.U][e.V] = e.V
		}
		if !g.Directed() && e.Weight < dist.At(e.V, e.U) {
			dist.Set(e.V, e.U, e.Weight)
			ap.next[e.V][e.U] = e.U
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist.At(i, k)
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if via := ik + dist.At(k, j); via < dist.At(i, j) {
					dist.Set(i, j, via)
					ap.next[i][j] = ap.next[i][k]
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		if dist.At(i, i) < 0 {
			return nil, ErrNegativeCycle
		}
	}
	ap.Dist = dist
	return ap, nil
}
