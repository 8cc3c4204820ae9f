package flow

import (
	"sort"
)

// BipartiteMatching computes a maximum matching between a left
// partition of `left` vertices and a right partition of `right`
// vertices, where pairs lists the allowed (leftIndex, rightIndex)
// combinations.
//
// The reduction is the textbook one: a super-source feeds every left
// vertex with a unit arc, every right vertex drains into a super-sink
// with a unit arc, and each allowed pair is a unit arc across the
// middle. The max-flow value equals the matching size, and the
// saturated middle arcs are the matched pairs, returned sorted by left
// index. The size never exceeds min(left, right).
//
// Complexity: O(V · E²) worst case via Edmonds–Karp; each augmentation
// adds one whole unit, so in practice min(left, right) rounds.
func BipartiteMatching(left, right int, pairs [][2]int) ([][2]int, error) {
	if left < 0 || right < 0 {
		return nil, ErrNegativeCount
	}
	if left == 0 || right == 0 {
		return nil, nil
	}

	// Layout: 0 = source, [1, left] = left partition,
	// [left+1, left+right] = right partition, last = sink.
	n := left + right + 2
	source, sink := 0, n-1
	net, err := NewNetwork(n, source, sink)
	if err != nil {
		return nil, err
	}
	for l := 0; l < left; l++ {
		if err := net.AddArc(source, 1+l, 1); err != nil {
			return nil, err
		}
	}
	for r := 0; r < right; r++ {
		if err := net.AddArc(1+left+r, sink, 1); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		l, r := p[0], p[1]
		if l < 0 || l >= left || r < 0 || r >= right {
			return nil, ErrVertexOutOfRange
		}
		if net.Capacity(1+l, 1+left+r) > 0 {
			continue // duplicate pair
		}
		if err := net.AddArc(1+l, 1+left+r, 1); err != nil {
			return nil, err
		}
	}

	res, err := MaxFlow(net)
	if err != nil {
		return nil, err
	}

	var matched [][2]int
	taken := make(map[arcKey]bool, len(pairs))
	for _, p := range pairs {
		k := arcKey{1 + p[0], 1 + left + p[1]}
		if taken[k] || res.Flow(k.u, k.v) < 0.5 {
			continue
		}
		taken[k] = true
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i][0] < matched[j][0]
	})
	return matched, nil
}
