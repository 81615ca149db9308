// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/juliej2026-source/openclaw-sub003/mathx"

// JarqueBera tests the null hypothesis that xs is drawn from a normal
// distribution, using the Jarque-Bera statistic
//
//	JB = n/6 · (S² + K²/4)
//
// where S is the sample skewness and K the excess kurtosis. Under the
// null, JB is asymptotically χ² with 2 degrees of freedom.
//
// Skewness and kurtosis estimates are unstable on tiny samples, so
// fewer than four observations (or a zero-variance sample) short-
// circuit to "normal": statistic 0, P = 1, not significant.
func JarqueBera(xs []float64, alpha float64) HypothesisTest {
	alpha = normAlpha(alpha)
	ht := HypothesisTest{Name: "jarque-bera", P: 1, DF: 2, ConfidenceLevel: 1 - alpha}
	n := len(xs)
	if n < 4 {
		return ht
	}

	d := Describe(xs)
	if d.StdDev == 0 {
		return ht
	}

	jb := float64(n) / 6 * (d.Skewness*d.Skewness + d.Kurtosis*d.Kurtosis/4)
	ht.Statistic = jb
	ht.P = 1 - mathx.ChiSquaredDist{K: 2}.CDF(jb)
	ht.Significant = ht.P < alpha
	ht.Valid = true
	return ht
}
