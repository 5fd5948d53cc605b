package superx

// LookaheadSolve builds a superstring greedily starting from strs[0].
//
// At each step the next string is the unused one maximizing
// overlap(tail, next) plus, when depth > 0, half of the best overlap
// from next to any other unused string. Ties keep the lowest index.
// Depth 0 is plain nearest-overlap chaining.
func LookaheadSolve(strs []string, depth int) string {
	switch len(strs) {
	case 0:
		return ""
	case 1:
		return strs[0]
	}
	overlap := NewOverlapMatrix(strs)
	return MergePath(strs, lookaheadPath(overlap, depth), overlap)
}

func lookaheadPath(overlap *OverlapMatrix, depth int) []int {
	n := overlap.Len()
	used := make([]bool, n)
	path := make([]int, 0, n)
	path = append(path, 0)
	used[0] = true

	for len(path) < n {
		cur := path[len(path)-1]
		bestNext, bestScore := -1, 0
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			score := overlap.At(cur, j)
			if depth > 0 {
				future := 0
				for k := 0; k < n; k++ {
					if !used[k] && k != j {
						future = max(future, overlap.At(j, k))
					}
				}
				score += future / 2
			}
			if bestNext == -1 || score > bestScore {
				bestNext, bestScore = j, score
			}
		}
		path = append(path, bestNext)
		used[bestNext] = true
	}
	return path
}
