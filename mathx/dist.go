// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

// A Dist is a continuous statistical distribution.
type Dist interface {
	// CDF returns the value of the cumulative distribution
	// function for this distribution at x.
	CDF(x float64) float64

	// InvCDF returns the inverse of the CDF for p. That is,
	// InvCDF(CDF(x)) = x. The value of p must be in [0, 1]; at
	// the boundaries the result is ∓Inf. Behavior outside [0, 1]
	// is undefined.
	InvCDF(p float64) float64

	// Bounds returns reasonable bounds for this distribution's
	// CDF. The total weight outside of these bounds should be
	// approximately 0.
	Bounds() (float64, float64)
}

var (
	_ Dist = NormalDist{}
	_ Dist = TDist{}
	_ Dist = ChiSquaredDist{}
)
