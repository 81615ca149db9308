// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// DescriptiveStats summarizes the location, spread, and shape of a
// sample.
type DescriptiveStats struct {
	Count int

	Mean   float64
	Median float64
	// Mode is the most frequent value in the sample. Ties are
	// broken by first appearance.
	Mode float64

	Min, Max, Range float64

	// Variance is the sample (Bessel-corrected) variance and
	// StdDev its square root. Both are 0 for a single-element
	// sample.
	Variance, StdDev float64

	Q1, Q3, IQR float64

	// Skewness and Kurtosis are the third and fourth standardized
	// sample moments; Kurtosis is excess kurtosis (normal = 0).
	Skewness, Kurtosis float64

	// Percentiles maps percentile (0-100) to value for a fixed
	// set of commonly reported percentiles.
	Percentiles map[int]float64

	// Valid is false when the sample was too small for the spread
	// and shape fields to be meaningful.
	Valid bool
}

// describePercentiles is the percentile set reported in
// DescriptiveStats.Percentiles.
var describePercentiles = []int{1, 5, 25, 50, 75, 95, 99}

// Describe computes descriptive statistics for xs.
//
// An empty sample yields Count 0 with every other numeric field NaN.
// A single-element sample has zero variance, standard deviation, and
// range, and NaN shape moments.
func Describe(xs []float64) DescriptiveStats {
	n := len(xs)
	if n == 0 {
		return DescriptiveStats{
			Count: 0,
			Mean:  nan, Median: nan, Mode: nan,
			Min: nan, Max: nan, Range: nan,
			Variance: nan, StdDev: nan,
			Q1: nan, Q3: nan, IQR: nan,
			Skewness: nan, Kurtosis: nan,
		}
	}

	sum, min, max := 0.0, xs[0], xs[0]
	for _, x := range xs {
		sum += x
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}
	mean := sum / float64(n)

	// Central moments in one pass over the centered values.
	var m2, m3, m4 float64
	for _, x := range xs {
		d := x - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	m2 /= float64(n)
	m3 /= float64(n)
	m4 /= float64(n)

	variance := 0.0
	if n > 1 {
		variance = m2 * float64(n) / float64(n-1)
	}

	skew, kurt := nan, nan
	if m2 > 0 {
		skew = m3 / math.Pow(m2, 1.5)
		kurt = m4/(m2*m2) - 3
	}

	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	q1 := quantileSorted(sorted, 0.25)
	median := quantileSorted(sorted, 0.5)
	q3 := quantileSorted(sorted, 0.75)

	pcts := make(map[int]float64, len(describePercentiles))
	for _, p := range describePercentiles {
		pcts[p] = quantileSorted(sorted, float64(p)/100)
	}

	return DescriptiveStats{
		Count:  n,
		Mean:   mean,
		Median: median,
		Mode:   mode(xs),
		Min:    min, Max: max, Range: max - min,
		Variance: variance, StdDev: math.Sqrt(variance),
		Q1: q1, Q3: q3, IQR: q3 - q1,
		Skewness: skew, Kurtosis: kurt,
		Percentiles: pcts,
		Valid:       n > 1,
	}
}

// quantileSorted returns the q'th quantile of the sorted sample xs
// using linear interpolation between order statistics (the R-7
// definition). q outside [0, 1] is clamped.
func quantileSorted(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return nan
	}
	h := q * float64(n-1)
	switch {
	case h <= 0:
		return sorted[0]
	case h >= float64(n-1):
		return sorted[n-1]
	}
	lo := int(h)
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Quantile returns the q'th quantile of xs by the R-7 definition. It
// sorts a copy of xs; callers computing several quantiles of the same
// sample should prefer Describe.
func Quantile(xs []float64, q float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, q)
}

// mode returns the most frequent value in xs, breaking ties by first
// appearance.
func mode(xs []float64) float64 {
	counts := make(map[float64]int, len(xs))
	firstIdx := make(map[float64]int, len(xs))
	for i, x := range xs {
		if _, ok := counts[x]; !ok {
			firstIdx[x] = i
		}
		counts[x]++
	}
	best, bestCount := xs[0], counts[xs[0]]
	for x, c := range counts {
		if c > bestCount || (c == bestCount && firstIdx[x] < firstIdx[best]) {
			best, bestCount = x, c
		}
	}
	return best
}
