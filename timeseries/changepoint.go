// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import "math"

// ChangePoint marks an index where the series mean shifts.
type ChangePoint struct {
	// Index is the first point of the new regime.
	Index int

	// Before and After are the window means on either side.
	Before, After float64

	// Shift is the magnitude of the mean shift in pooled standard
	// deviations.
	Shift float64
}

// ChangePoints scans for mean shifts by comparing trailing and
// leading windows at every candidate index. The window is a tenth of
// the series length, clamped to [5, 50]. A shift is reported when the
// window means differ by more than twice the pooled standard
// deviation, and detected points are at least one window apart.
func ChangePoints(values []float64) []ChangePoint {
	n := len(values)
	w := n / 10
	if w < 5 {
		w = 5
	}
	if w > 50 {
		w = 50
	}
	if n < 2*w {
		return nil
	}

	var out []ChangePoint
	lastIdx := -w
	for i := w; i <= n-w; i++ {
		before := values[i-w : i]
		after := values[i : i+w]
		mb, vb := meanVar(before)
		ma, va := meanVar(after)

		pooled := math.Sqrt((vb + va) / 2)
		var shift float64
		if pooled == 0 {
			if mb == ma {
				continue
			}
			// Clean step between two constant regimes.
			shift = math.Inf(1)
		} else {
			shift = math.Abs(ma-mb) / pooled
		}
		if shift <= 2 {
			continue
		}
		if i-lastIdx < w {
			// Within the suppression span of the previous
			// detection. Keep the stronger of the two.
			if len(out) > 0 && shift > out[len(out)-1].Shift {
				out[len(out)-1] = ChangePoint{
					Index:  i,
					Before: mb,
					After:  ma,
					Shift:  shift,
				}
				lastIdx = i
			}
			continue
		}
		out = append(out, ChangePoint{
			Index:  i,
			Before: mb,
			After:  ma,
			Shift:  shift,
		})
		lastIdx = i
	}
	return out
}

func meanVar(xs []float64) (m, v float64) {
	m = mean(xs)
	for _, x := range xs {
		d := x - m
		v += d * d
	}
	v /= float64(len(xs))
	return m, v
}
