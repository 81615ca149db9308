// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "github.com/juliej2026-source/openclaw-sub003/mathx"

// ChiSquaredTest performs a χ² goodness-of-fit test of observed
// counts against expected counts.
//
// Categories with an expected count of zero are skipped. The degrees
// of freedom are the number of categories used minus one. Mismatched
// lengths or fewer than two usable categories fail closed: P = 1, not
// significant, Valid false.
func ChiSquaredTest(observed, expected []float64, alpha float64) HypothesisTest {
	alpha = normAlpha(alpha)
	ht := HypothesisTest{Name: "chi-squared", P: 1, ConfidenceLevel: 1 - alpha}
	if len(observed) != len(expected) || len(observed) < 2 {
		return ht
	}

	var stat float64
	used := 0
	for i, e := range expected {
		if e == 0 {
			continue
		}
		d := observed[i] - e
		stat += d * d / e
		used++
	}
	if used < 2 {
		return ht
	}

	df := float64(used - 1)
	ht.Statistic = stat
	ht.DF = df
	ht.P = 1 - mathx.ChiSquaredDist{K: df}.CDF(stat)
	ht.Significant = ht.P < alpha
	ht.Valid = true
	return ht
}
