// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// A TDist is a Student's t-distribution with Df degrees of freedom.
type TDist struct {
	Df float64
}

// CDF returns the value of the cumulative distribution function for
// this distribution at t, via the regularized incomplete beta
// function.
func (d TDist) CDF(t float64) float64 {
	switch {
	case d.Df <= 0 || math.IsNaN(t):
		return nan
	case t == 0:
		return 0.5
	}
	ib := BetaInc(d.Df/(d.Df+t*t), d.Df/2, 0.5)
	if t > 0 {
		return 1 - ib/2
	}
	return ib / 2
}

// TwoTailP returns the two-tailed p-value for the statistic t, that
// is, the probability that |T| ≥ |t| under this distribution. This
// uses the identity p = I_{df/(df+t²)}(df/2, 1/2).
func (d TDist) TwoTailP(t float64) float64 {
	if d.Df <= 0 || math.IsNaN(t) {
		return nan
	}
	if math.IsInf(t, 0) {
		return 0
	}
	return BetaInc(d.Df/(d.Df+t*t), d.Df/2, 0.5)
}

// InvCDF returns the inverse of the CDF for p. InvCDF(0) and
// InvCDF(1) are -Inf and +Inf respectively; behavior for p outside
// [0, 1] is undefined.
//
// For more than 30 degrees of freedom this falls back to the normal
// quantile. Below that it applies the Cornish-Fisher expansion to
// third order, which is accurate to a few parts in a thousand over
// the central range used for confidence intervals.
func (d TDist) InvCDF(p float64) float64 {
	switch {
	case d.Df <= 0 || math.IsNaN(p):
		return nan
	case p <= 0:
		return math.Inf(-1)
	case p >= 1:
		return inf
	}

	z := StdNormal.InvCDF(p)
	if d.Df > 30 {
		return z
	}

	z2 := z * z
	g1 := z * (z2 + 1) / 4
	g2 := z * (5*z2*z2 + 16*z2 + 3) / 96
	g3 := z * (3*z2*z2*z2 + 19*z2*z2 + 17*z2 - 15) / 384
	v := d.Df
	return z + g1/v + g2/(v*v) + g3/(v*v*v)
}

// Bounds returns reasonable bounds for this distribution's CDF.
func (d TDist) Bounds() (float64, float64) {
	return -4, 4
}
