// Package sweep analyses sonar sweep depth readings.
//
// CountIncreases counts readings deeper than their predecessor; WindowSums
// collapses readings into sliding-window totals so the same count can be
// taken over smoothed data. Both run in O(n).
package sweep

// CountIncreases returns how many depths are strictly greater than the one
// before them.
func CountIncreases(depths []int) int {
	n := 0
	for i := 1; i < len(depths); i++ {
		if depths[i] > depths[i-1] {
			n++
		}
	}
	return n
}

// WindowSums returns the sums of every window of size consecutive depths.
// Returns nil when size <= 0 or there are fewer than size depths.
func WindowSums(depths []int, size int) []int {
	if size <= 0 || len(depths) < size {
		return nil
	}
	sums := make([]int, 0, len(depths)-size+1)
	sum := 0
	for i, d := range depths {
		sum += d
		if i >= size {
			sum -= depths[i-size]
		}
		if i >= size-1 {
			sums = append(sums, sum)
		}
	}
	return sums
}

// CountWindowIncreases counts increases between consecutive window sums.
func CountWindowIncreases(depths []int, size int) int {
	return CountIncreases(WindowSums(depths, size))
}
