// Package stats provides the scalar statistics the data-preparation
// stages are built on: mean, median, mode, standard deviation and
// linearly interpolated quantiles.
package stats

import (
	"math"
	"sort"
)

// Mean computes the average of a slice. NaN entries are skipped.
func Mean(x []float64) float64 {
	sum, n := 0.0, 0
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// Variance computes the population variance in a single pass, skipping NaNs.
func Variance(x []float64) float64 {
	sum, sumSq, n := 0.0, 0.0, 0
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		sumSq += v * v
		n++
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	return (sumSq / float64(n)) - (mean * mean)
}

// Std computes the standard deviation of a slice.
func Std(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Median returns the median of the non-NaN values (allocates a copy).
func Median(x []float64) float64 {
	cp := dropNaN(x)
	n := len(cp)
	if n == 0 {
		return 0
	}
	sort.Float64s(cp)
	mid := n >> 1
	if n&1 == 0 {
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Mode returns the most frequent value. On a frequency tie the smallest
// value wins so repeated runs agree.
func Mode(x []float64) float64 {
	counts := make(map[float64]int)
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		counts[v]++
	}
	if len(counts) == 0 {
		return 0
	}
	mode, best := math.Inf(1), 0
	for v, c := range counts {
		if c > best || (c == best && v < mode) {
			mode, best = v, c
		}
	}
	return mode
}

// ModeString returns the most frequent string, ignoring empty values.
// Ties break to the lexicographically smallest candidate.
func ModeString(x []string) string {
	counts := make(map[string]int)
	for _, v := range x {
		if v == "" {
			continue
		}
		counts[v]++
	}
	mode, best := "", 0
	for v, c := range counts {
		if c > best || (c == best && (mode == "" || v < mode)) {
			mode, best = v, c
		}
	}
	return mode
}

// Quantile returns the q-th quantile (0 <= q <= 1) of the non-NaN values
// using linear interpolation between order statistics.
func Quantile(x []float64, q float64) float64 {
	cp := dropNaN(x)
	n := len(cp)
	if n == 0 {
		return 0
	}
	sort.Float64s(cp)
	if q <= 0 {
		return cp[0]
	}
	if q >= 1 {
		return cp[n-1]
	}
	rank := q * float64(n-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= n {
		return cp[lower]
	}
	weight := rank - float64(lower)
	return cp[lower]*(1-weight) + cp[upper]*weight
}

// MinMax returns the minimum and maximum of the non-NaN values.
func MinMax(x []float64) (float64, float64) {
	min, max := math.NaN(), math.NaN()
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if math.IsNaN(min) || v < min {
			min = v
		}
		if math.IsNaN(max) || v > max {
			max = v
		}
	}
	if math.IsNaN(min) {
		return 0, 0
	}
	return min, max
}

func dropNaN(x []float64) []float64 {
	out := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
