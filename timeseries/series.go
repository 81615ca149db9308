// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"math"
	"time"
)

// A DataPoint is one timestamped observation.
type DataPoint struct {
	Time  time.Time
	Value float64
}

// FromValues builds a DataPoint series from values, spacing
// timestamps by step starting at start.
func FromValues(values []float64, start time.Time, step time.Duration) []DataPoint {
	points := make([]DataPoint, len(values))
	for i, v := range values {
		points[i] = DataPoint{Time: start.Add(time.Duration(i) * step), Value: v}
	}
	return points
}

// Values extracts the value sequence from a DataPoint series.
func Values(points []DataPoint) []float64 {
	vs := make([]float64, len(points))
	for i, p := range points {
		vs[i] = p.Value
	}
	return vs
}

var nan = math.NaN()

// mean returns the arithmetic mean of xs, or NaN for an empty slice.
func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return nan
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
