package superx

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// naiveOverlap checks every candidate length from the longest down
func naiveOverlap(a, b string) int {
	for k := min(len(a), len(b)); k > 0; k-- {
		if a[len(a)-k:] == b[:k] {
			return k
		}
	}
	return 0
}

func randomStrings(r *rand.Rand, n, maxLen int, alphabet string) []string {
	strs := make([]string, n)
	for i := range strs {
		var sb strings.Builder
		size := 1 + r.Intn(maxLen)
		for j := 0; j < size; j++ {
			sb.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
		strs[i] = sb.String()
	}
	return strs
}

func TestOverlap(t *testing.T) {
	testcases := []struct {
		a, b     string
		expected int
	}{
		{a: "AAG", b: "AGT", expected: 2},
		{a: "AGT", b: "GTT", expected: 2},
		{a: "AGT", b: "AAG", expected: 0},
		{a: "abc", b: "abc", expected: 3},
		{a: "aaaa", b: "aa", expected: 2},
		{a: "xabcab", b: "abcabd", expected: 5},
		{a: "abab", b: "babab", expected: 3},
		{a: "abc", b: "", expected: 0},
		{a: "", b: "abc", expected: 0},
		{a: "abcd", b: "bc", expected: 0},
	}
	for _, v := range testcases {
		require.Equalf(t, v.expected, Overlap(v.a, v.b), "overlap(%q, %q)", v.a, v.b)
	}
}

func TestOverlapMatchesNaive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		pair := randomStrings(r, 2, 8, "ab")
		a, b := pair[0], pair[1]
		k := Overlap(a, b)
		require.Equalf(t, naiveOverlap(a, b), k, "overlap(%q, %q)", a, b)
		require.LessOrEqual(t, k, min(len(a), len(b)))

		merged := Merge(a, b, k)
		require.Len(t, merged, len(a)+len(b)-k)
		require.True(t, strings.HasPrefix(merged, a))
		require.True(t, strings.HasSuffix(merged, b))
	}
}

func TestOverlapMatrix(t *testing.T) {
	strs := []string{"AAG", "AGT", "GTT"}
	m := NewOverlapMatrix(strs)
	require.Equal(t, 3, m.Len())
	require.Equal(t, 2, m.At(0, 1))
	require.Equal(t, 2, m.At(1, 2))
	require.Equal(t, 1, m.At(0, 2))
	require.Equal(t, 0, m.At(2, 0))
	require.Equal(t, 2, m.Max(1, 0))
	for i := range strs {
		require.Zero(t, m.At(i, i), "diagonal must be zero")
	}
}

func TestMergePath(t *testing.T) {
	strs := []string{"AAG", "AGT", "GTT"}
	m := NewOverlapMatrix(strs)
	require.Equal(t, "AAGTT", MergePath(strs, []int{0, 1, 2}, m))
	require.Equal(t, "GTTAAGT", MergePath(strs, []int{2, 0, 1}, m))
	require.Equal(t, "", MergePath(strs, nil, m))
}
