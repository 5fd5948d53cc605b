package superx

// Overlap returns the length of the longest suffix of a that is also a prefix of b.
// The result is always between 0 and min(len(a), len(b)).
//
// It runs the KMP failure table of b over a, so the cost is O(len(a)+len(b))
// instead of comparing every candidate length.
func Overlap(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	table := prefixTable(b)
	j := 0
	for i := 0; i < len(a); i++ {
		if j == len(b) {
			// b occurs inside a; keep matching with the longest proper border
			j = table[j-1]
		}
		for j > 0 && a[i] != b[j] {
			j = table[j-1]
		}
		if a[i] == b[j] {
			j++
		}
	}
	return j
}

// prefixTable returns the KMP failure table of pattern
// table[i] is the length of the longest proper prefix of pattern[:i+1]
// that is also its suffix
func prefixTable(pattern string) []int {
	table := make([]int, len(pattern))
	for i := 1; i < len(pattern); i++ {
		j := table[i-1]
		for j > 0 && pattern[i] != pattern[j] {
			j = table[j-1]
		}
		if pattern[i] == pattern[j] {
			j++
		}
		table[i] = j
	}
	return table
}

// Merge appends b to a dropping the first k bytes of b.
// k must be a valid overlap of a and b.
func Merge(a, b string, k int) string {
	return a + b[k:]
}

// OverlapMatrix holds the all-pairs overlap lengths of a string set.
// The diagonal is always zero.
type OverlapMatrix struct {
	n      int
	values []int
}

// NewOverlapMatrix computes Overlap(strs[i], strs[j]) for every ordered pair i != j
func NewOverlapMatrix(strs []string) *OverlapMatrix {
	n := len(strs)
	m := &OverlapMatrix{n: n, values: make([]int, n*n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				m.values[i*n+j] = Overlap(strs[i], strs[j])
			}
		}
	}
	return m
}

// Len returns the number of strings the matrix was built from
func (m *OverlapMatrix) Len() int {
	return m.n
}

// At returns the overlap of string i followed by string j
func (m *OverlapMatrix) At(i, j int) int {
	return m.values[i*m.n+j]
}

// Max returns the larger of At(i, j) and At(j, i)
func (m *OverlapMatrix) Max(i, j int) int {
	return max(m.At(i, j), m.At(j, i))
}

// MergePath merges strs in the order given by path using the overlaps recorded in m
func MergePath(strs []string, path []int, m *OverlapMatrix) string {
	if len(path) == 0 {
		return ""
	}
	result := strs[path[0]]
	for i := 1; i < len(path); i++ {
		result = Merge(result, strs[path[i]], m.At(path[i-1], path[i]))
	}
	return result
}
