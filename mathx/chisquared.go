// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// A ChiSquaredDist is a χ² distribution with K degrees of freedom.
type ChiSquaredDist struct {
	K float64
}

// CDF returns the value of the cumulative distribution function for
// this distribution at x. This is the regularized lower incomplete
// gamma function P(k/2, x/2).
func (d ChiSquaredDist) CDF(x float64) float64 {
	switch {
	case d.K <= 0 || math.IsNaN(x):
		return nan
	case x <= 0:
		return 0
	}
	return GammaInc(d.K/2, x/2)
}

// InvCDF returns the inverse of the CDF for p by bisection on the
// CDF. InvCDF(0) is 0 and InvCDF(1) is +Inf; behavior for p outside
// [0, 1] is undefined.
func (d ChiSquaredDist) InvCDF(p float64) float64 {
	switch {
	case d.K <= 0 || math.IsNaN(p):
		return nan
	case p <= 0:
		return 0
	case p >= 1:
		return inf
	}

	lo, hi := 0.0, d.K
	for d.CDF(hi) < p {
		hi *= 2
	}
	for i := 0; i < 100; i++ {
		mid := (lo + hi) / 2
		if d.CDF(mid) < p {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// Bounds returns reasonable bounds for this distribution's CDF.
func (d ChiSquaredDist) Bounds() (float64, float64) {
	return 0, d.K + 4*math.Sqrt(2*d.K)
}
