// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"math"

	"github.com/juliej2026-source/openclaw-sub003/stats"
)

// Direction classifies the sign of a fitted trend.
type Direction int

const (
	Flat Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Flat:
		return "flat"
	}
	return "unknown"
}

// TrendResult describes the least-squares line fitted to a series
// against its index.
type TrendResult struct {
	// Slope and Intercept define the fitted line value = Slope*i
	// + Intercept over indexes i = 0..n-1.
	Slope     float64
	Intercept float64

	// RSquared is the coefficient of determination of the fit.
	RSquared float64

	// Direction is Up or Down when the slope is meaningfully
	// nonzero relative to the scale of the data, else Flat.
	Direction Direction

	// Significant reports whether the index/value correlation is
	// significant at the 0.05 level.
	Significant bool

	Valid bool
}

// DetectTrend fits a least-squares line to values against their
// indexes. Series with fewer than two points are degenerate.
func DetectTrend(values []float64) TrendResult {
	n := len(values)
	if n < 2 {
		return TrendResult{Slope: nan, Intercept: nan, RSquared: nan}
	}

	idx := make([]float64, n)
	for i := range idx {
		idx[i] = float64(i)
	}
	reg := stats.LinearRegression(idx, values)
	if !reg.Valid {
		// Constant series still has a well-defined flat trend.
		if allEqual(values) {
			return TrendResult{
				Slope:     0,
				Intercept: values[0],
				RSquared:  nan,
				Direction: Flat,
				Valid:     true,
			}
		}
		return TrendResult{Slope: nan, Intercept: nan, RSquared: nan}
	}

	res := TrendResult{
		Slope:     reg.Coefficients[0],
		Intercept: reg.Intercept,
		RSquared:  reg.RSquared,
		Valid:     true,
	}

	// A slope is flat when it is negligible next to the magnitude
	// of the data.
	scale := math.Max(1, math.Abs(mean(values)))
	switch {
	case math.Abs(res.Slope) < 1e-6*scale:
		res.Direction = Flat
	case res.Slope > 0:
		res.Direction = Up
	default:
		res.Direction = Down
	}

	if res.Direction != Flat {
		corr := stats.Correlation(idx, values)
		res.Significant = corr.Valid && corr.P < 0.05
	}
	return res
}

func allEqual(values []float64) bool {
	for _, v := range values[1:] {
		if v != values[0] {
			return false
		}
	}
	return true
}
