package clustering

import (
	"math"

	"github.com/musicmatch/music-match/internal/feature"
)

// Silhouette computes the mean silhouette coefficient of a partition:
// for each point, the normalized difference between the mean distance
// to its own cluster and the mean distance to the nearest other
// cluster, averaged over all points. Range [-1,1]; higher means
// better-separated clusters.
//
// Returns 0 for an empty partition or one with a single cluster, where
// the coefficient is undefined. A point alone in its cluster scores 0.
func Silhouette(vectors []feature.Vector, assignments []int) float64 {
	n := len(vectors)
	if n == 0 || n != len(assignments) {
		return 0
	}

	labels := make(map[int]bool)
	for _, a := range assignments {
		labels[a] = true
	}
	if len(labels) < 2 {
		return 0
	}

	distances := distanceMatrix(vectors)

	var total float64
	for i := 0; i < n; i++ {
		total += pointSilhouette(i, assignments, distances)
	}
	return total / float64(n)
}

// pointSilhouette computes the coefficient for one point.
func pointSilhouette(i int, assignments []int, distances [][]float64) float64 {
	own := assignments[i]

	a := meanDistanceToCluster(i, own, assignments, distances, true)
	if a < 0 {
		// Sole member of its cluster.
		return 0
	}

	b := math.Inf(1)
	seen := make(map[int]bool)
	for _, label := range assignments {
		if label == own || seen[label] {
			continue
		}
		seen[label] = true
		if d := meanDistanceToCluster(i, label, assignments, distances, false); d >= 0 && d < b {
			b = d
		}
	}

	denom := math.Max(a, b)
	if denom == 0 {
		return 0
	}
	return (b - a) / denom
}

// meanDistanceToCluster returns the mean distance from point i to the
// members of the given cluster, excluding i itself when excludeSelf is
// set. Returns -1 when the cluster has no other members.
func meanDistanceToCluster(i, label int, assignments []int, distances [][]float64, excludeSelf bool) float64 {
	var sum float64
	count := 0
	for j, l := range assignments {
		if l != label || (excludeSelf && j == i) {
			continue
		}
		sum += distances[i][j]
		count++
	}
	if count == 0 {
		return -1
	}
	return sum / float64(count)
}

// distanceMatrix computes pairwise Euclidean distances.
func distanceMatrix(vectors []feature.Vector) [][]float64 {
	n := len(vectors)
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := vectors[i].DistanceTo(vectors[j])
			m[i][j] = d
			m[j][i] = d
		}
	}
	return m
}
