// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import "math"

// RollingStats holds per-index trailing window statistics. Mean and
// StdDev are NaN until the window fills. Min and Max are computed over
// the partial window.
type RollingStats struct {
	Mean   []float64
	Min    []float64
	Max    []float64
	StdDev []float64
}

// Rolling computes trailing window statistics over values. The window
// is clamped to at least 1. StdDev uses the sample (n-1) definition
// and is NaN for a window of 1.
func Rolling(values []float64, window int) RollingStats {
	n := len(values)
	if window < 1 {
		window = 1
	}
	rs := RollingStats{
		Mean:   make([]float64, n),
		Min:    make([]float64, n),
		Max:    make([]float64, n),
		StdDev: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		lo := i - window + 1
		if lo < 0 {
			lo = 0
		}
		win := values[lo : i+1]

		mn, mx := win[0], win[0]
		for _, v := range win[1:] {
			if v < mn {
				mn = v
			}
			if v > mx {
				mx = v
			}
		}
		rs.Min[i] = mn
		rs.Max[i] = mx

		if i < window-1 {
			rs.Mean[i] = nan
			rs.StdDev[i] = nan
			continue
		}
		m := mean(win)
		rs.Mean[i] = m
		if window == 1 {
			rs.StdDev[i] = nan
			continue
		}
		ss := 0.0
		for _, v := range win {
			d := v - m
			ss += d * d
		}
		rs.StdDev[i] = math.Sqrt(ss / float64(window-1))
	}
	return rs
}
