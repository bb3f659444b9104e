package morse

import (
	"math"
	"sort"
)

// kMeans clusters one-dimensional data into k groups and returns the
// cluster centers along with a label per input point.
func kMeans(data []float64, k int) (centers []float64, labels []int) {
	if len(data) == 0 || k <= 0 {
		return nil, nil
	}

	// Seed centers from evenly spaced order statistics.
	sorted := append([]float64(nil), data...)
	sort.Float64s(sorted)
	step := len(sorted) / k
	for i := 0; i < k; i++ {
		idx := i * step
		if idx > len(sorted)-1 {
			idx = len(sorted) - 1
		}
		centers = append(centers, sorted[idx])
	}

	labels = make([]int, len(data))
	for iter := 0; iter < 100; iter++ {
		counts := make([]int, k)
		sums := make([]float64, k)
		for i, d := range data {
			best := 0
			bestDist := math.Abs(d - centers[0])
			for c := 1; c < k; c++ {
				if dist := math.Abs(d - centers[c]); dist < bestDist {
					best, bestDist = c, dist
				}
			}
			labels[i] = best
			counts[best]++
			sums[best] += d
		}

		moved := false
		for c := 0; c < k; c++ {
			next := centers[c]
			if counts[c] > 0 {
				next = sums[c] / float64(counts[c])
			}
			if math.Abs(next-centers[c]) > 1e-6 {
				moved = true
			}
			centers[c] = next
		}
		if !moved {
			break
		}
	}

	return centers, labels
}
