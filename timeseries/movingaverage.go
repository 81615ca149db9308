// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

// MAKind selects the moving average variant.
type MAKind int

const (
	// SMA is the simple (unweighted) trailing average.
	SMA MAKind = iota

	// EMA is the exponential moving average with smoothing
	// factor 2/(window+1).
	EMA

	// WMA is the linearly weighted trailing average, newest
	// value weighted highest.
	WMA
)

func (k MAKind) String() string {
	switch k {
	case SMA:
		return "sma"
	case EMA:
		return "ema"
	case WMA:
		return "wma"
	}
	return "unknown"
}

// MovingAverage returns the moving average of values with the given
// trailing window.
//
// SMA and WMA are undefined until the window fills, so the first
// window-1 entries are NaN. EMA is defined from index 0 by the
// standard recurrence. A window of 1 (or less) returns the values
// unchanged for every kind.
func MovingAverage(values []float64, window int, kind MAKind) []float64 {
	n := len(values)
	out := make([]float64, n)
	if n == 0 {
		return out
	}
	if window <= 1 {
		copy(out, values)
		return out
	}

	switch kind {
	case EMA:
		alpha := 2 / float64(window+1)
		out[0] = values[0]
		for i := 1; i < n; i++ {
			out[i] = alpha*values[i] + (1-alpha)*out[i-1]
		}

	case WMA:
		// Weights 1..window over the trailing window, newest
		// highest.
		denom := float64(window*(window+1)) / 2
		for i := 0; i < n; i++ {
			if i < window-1 {
				out[i] = nan
				continue
			}
			sum := 0.0
			for w := 0; w < window; w++ {
				sum += values[i-window+1+w] * float64(w+1)
			}
			out[i] = sum / denom
		}

	default: // SMA
		sum := 0.0
		for i := 0; i < n; i++ {
			sum += values[i]
			if i >= window {
				sum -= values[i-window]
			}
			if i < window-1 {
				out[i] = nan
				continue
			}
			out[i] = sum / float64(window)
		}
	}
	return out
}
