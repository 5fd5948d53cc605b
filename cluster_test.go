package superx

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPartition(t *testing.T) {
	strs := []string{"ab", "xy", "bc", "yz", "cd"}
	m := NewOverlapMatrix(strs)
	require.Equal(t, [][]int{{0, 2, 4}, {1, 3}}, Partition(m, 14))
	require.Equal(t, [][]int{{0, 2}, {1, 3}, {4}}, Partition(m, 2))
	require.Equal(t, [][]int{{0}, {1}, {2}, {3}, {4}}, Partition(m, 1))
}

func TestPartitionEitherDirection(t *testing.T) {
	// "ab" overlaps into "bc" but the seed is "bc"
	m := NewOverlapMatrix([]string{"bc", "ab"})
	require.Equal(t, [][]int{{0, 1}}, Partition(m, 2))
}

func TestPartitionNoOverlap(t *testing.T) {
	m := NewOverlapMatrix([]string{"ab", "cd", "ef"})
	require.Equal(t, [][]int{{0}, {1}, {2}}, Partition(m, 14))
	require.Empty(t, Partition(NewOverlapMatrix(nil), 14))
}

func TestPartitionCoversAllIndices(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		n := 1 + r.Intn(60)
		maxSize := 1 + r.Intn(16)
		clusters := Partition(NewOverlapMatrix(randomStrings(r, n, 6, "abcd")), maxSize)

		var all []int
		for _, cluster := range clusters {
			require.NotEmpty(t, cluster)
			require.LessOrEqual(t, len(cluster), maxSize)
			all = append(all, cluster...)
		}
		sort.Ints(all)
		require.Len(t, all, n, "clusters must be disjoint and cover every index")
		for idx, v := range all {
			require.Equal(t, idx, v)
		}
	}
}
