package superx

import (
	"fmt"
	"math"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/utils/errkit"
)

// MaxExactStrings is the largest input the exact solver accepts.
// Memory grows as 2^n * n, so anything above this must use a heuristic.
const MaxExactStrings = 18

var (
	ErrTooManyStrings = errkit.New("too many strings for the exact solver")
)

// ExactSolve returns a shortest superstring of strs obtainable by merging
// the strings in some order with maximal overlaps.
//
// It returns "" when len(strs) exceeds MaxExactStrings, callers are expected
// to check the size first. See ExactSolveE for an error returning variant.
func ExactSolve(strs []string) string {
	res, err := ExactSolveE(strs)
	if err != nil {
		gologger.Warning().Msgf("exact solver skipped: %v", err)
		return ""
	}
	return res
}

// ExactSolveE is ExactSolve but reports oversized inputs as ErrTooManyStrings
func ExactSolveE(strs []string) (string, error) {
	n := len(strs)
	switch {
	case n == 0:
		return "", nil
	case n == 1:
		return strs[0], nil
	case n > MaxExactStrings:
		return "", fmt.Errorf("%w: got %v, max %v", ErrTooManyStrings, n, MaxExactStrings)
	}
	overlap := NewOverlapMatrix(strs)
	return MergePath(strs, exactPath(strs, overlap), overlap), nil
}

// exactPath runs the bitmask dynamic program over (subset, last) states.
//
// dp[mask*n+last] is the length of the shortest merge of exactly the strings
// in mask that ends with strs[last]. Both tables are flat slices to keep
// allocations bounded at 2^18 subsets.
func exactPath(strs []string, overlap *OverlapMatrix) []int {
	n := len(strs)
	full := 1<<n - 1
	dp := make([]int, (full+1)*n)
	parent := make([]int, (full+1)*n)
	for i := range dp {
		dp[i] = math.MaxInt
		parent[i] = -1
	}
	for i := 0; i < n; i++ {
		dp[(1<<i)*n+i] = len(strs[i])
	}

	for mask := 0; mask <= full; mask++ {
		for last := 0; last < n; last++ {
			cur := dp[mask*n+last]
			if mask&(1<<last) == 0 || cur == math.MaxInt {
				continue
			}
			for next := 0; next < n; next++ {
				if mask&(1<<next) != 0 {
					continue
				}
				state := (mask|1<<next)*n + next
				// strict < keeps the first candidate found on ties
				if cand := cur + len(strs[next]) - overlap.At(last, next); cand < dp[state] {
					dp[state] = cand
					parent[state] = last
				}
			}
		}
	}

	best, last := math.MaxInt, -1
	for i := 0; i < n; i++ {
		if v := dp[full*n+i]; v < best {
			best, last = v, i
		}
	}

	// walk predecessors back from the best end, filling the path right to left
	path := make([]int, n)
	mask := full
	for pos := n - 1; pos >= 0; pos-- {
		path[pos] = last
		prev := parent[mask*n+last]
		mask ^= 1 << last
		last = prev
	}
	return path
}
