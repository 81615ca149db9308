// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

// Decomposition is an additive split of a series into trend,
// seasonal, and residual components. All three slices have the same
// length as the input and sum back to it element-wise.
type Decomposition struct {
	Trend    []float64
	Seasonal []float64
	Residual []float64
	Period   int
	Valid    bool
}

// Decompose performs classical additive decomposition with the given
// seasonal period. The trend is a centered moving average, the
// seasonal component is the mean-centered average of detrended values
// by phase, and the residual is what remains.
//
// A period less than 2 or a series shorter than two full periods is
// degenerate: the components still match the input length, with a
// flat-mean trend, zero seasonal, and the rest in the residual.
func Decompose(values []float64, period int) Decomposition {
	n := len(values)
	if period < 2 || n < 2*period {
		trend := make([]float64, n)
		residual := make([]float64, n)
		m := mean(values)
		for i, v := range values {
			trend[i] = m
			residual[i] = v - m
		}
		return Decomposition{
			Trend:    trend,
			Seasonal: make([]float64, n),
			Residual: residual,
			Period:   period,
		}
	}

	trend := centeredMA(values, period)

	// Average the detrended values by phase, then center the
	// seasonal pattern so it carries no level.
	pattern := make([]float64, period)
	counts := make([]int, period)
	for i, v := range values {
		pattern[i%period] += v - trend[i]
		counts[i%period]++
	}
	patternMean := 0.0
	for p := range pattern {
		pattern[p] /= float64(counts[p])
		patternMean += pattern[p]
	}
	patternMean /= float64(period)
	for p := range pattern {
		pattern[p] -= patternMean
	}

	seasonal := make([]float64, n)
	residual := make([]float64, n)
	for i, v := range values {
		seasonal[i] = pattern[i%period]
		residual[i] = v - trend[i] - seasonal[i]
	}
	return Decomposition{
		Trend:    trend,
		Seasonal: seasonal,
		Residual: residual,
		Period:   period,
		Valid:    true,
	}
}

// centeredMA computes a centered moving average of width period. For
// even periods it uses a period+1 window with half weight on the two
// ends. Edges where the window does not fit take the nearest interior
// value.
func centeredMA(values []float64, period int) []float64 {
	n := len(values)
	out := make([]float64, n)

	half := period / 2
	even := period%2 == 0
	lo, hi := half, n-1-half
	if lo > hi {
		// Window never fits. Fall back to a flat trend at the
		// overall mean.
		m := mean(values)
		for i := range out {
			out[i] = m
		}
		return out
	}

	for i := lo; i <= hi; i++ {
		if even {
			sum := values[i-half]/2 + values[i+half]/2
			for j := i - half + 1; j < i+half; j++ {
				sum += values[j]
			}
			out[i] = sum / float64(period)
		} else {
			sum := 0.0
			for j := i - half; j <= i+half; j++ {
				sum += values[j]
			}
			out[i] = sum / float64(period)
		}
	}
	for i := 0; i < lo; i++ {
		out[i] = out[lo]
	}
	for i := hi + 1; i < n; i++ {
		out[i] = out[hi]
	}
	return out
}
