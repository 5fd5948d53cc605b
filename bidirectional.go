package superx

// BidirectionalSolve grows a working string outward from a seed.
//
// The seed is the string with the largest overlap (in either direction) with
// any other string; among equal seeds the highest index wins. Each step
// splices in the unused string with the largest overlap against the right end
// (appended) or the left end (prepended), preferring the right end on ties.
// When nothing overlaps, the lowest unused index is concatenated as is.
func BidirectionalSolve(strs []string) string {
	n := len(strs)
	switch n {
	case 0:
		return ""
	case 1:
		return strs[0]
	}
	overlap := NewOverlapMatrix(strs)

	seed, seedOverlap := -1, -1
	for i := 0; i < n; i++ {
		mx := 0
		for j := 0; j < n; j++ {
			if i != j {
				mx = max(mx, overlap.Max(i, j))
			}
		}
		if mx >= seedOverlap {
			seed, seedOverlap = i, mx
		}
	}

	used := make([]bool, n)
	used[seed] = true
	result := strs[seed]

	for remaining := n - 1; remaining > 0; remaining-- {
		bestIdx, bestOverlap, right := -1, 0, true
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			if k := Overlap(result, strs[i]); k > bestOverlap {
				bestIdx, bestOverlap, right = i, k, true
			}
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			if k := Overlap(strs[i], result); k > bestOverlap {
				bestIdx, bestOverlap, right = i, k, false
			}
		}

		if bestIdx == -1 {
			for i := 0; i < n; i++ {
				if !used[i] {
					bestIdx = i
					break
				}
			}
		}
		used[bestIdx] = true
		if right {
			result = Merge(result, strs[bestIdx], bestOverlap)
		} else {
			result = Merge(strs[bestIdx], result, bestOverlap)
		}
	}
	return result
}
