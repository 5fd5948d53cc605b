package superx

// Partition splits the indices of overlap into disjoint clusters of at most
// maxSize members.
//
// Each cluster is seeded with the lowest unclustered index and grown with the
// unclustered candidate that has the largest positive overlap, in either
// direction, with any current member. Growth stops at maxSize or when no
// candidate overlaps. Every index ends up in exactly one cluster.
func Partition(overlap *OverlapMatrix, maxSize int) [][]int {
	n := overlap.Len()
	if maxSize < 1 {
		maxSize = 1
	}
	used := make([]bool, n)
	var clusters [][]int

	for start := 0; start < n; start++ {
		if used[start] {
			continue
		}
		cluster := []int{start}
		used[start] = true

		for len(cluster) < maxSize {
			bestNext, bestOverlap := -1, 0
			for _, member := range cluster {
				for j := 0; j < n; j++ {
					if used[j] {
						continue
					}
					if k := overlap.Max(member, j); k > bestOverlap {
						bestNext, bestOverlap = j, k
					}
				}
			}
			if bestNext == -1 {
				break
			}
			cluster = append(cluster, bestNext)
			used[bestNext] = true
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}
