// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

// An Interval is a closed interval [Lo, Hi].
type Interval struct {
	Lo, Hi float64
}

// A HypothesisTest is the outcome of a statistical significance test.
type HypothesisTest struct {
	// Name identifies the test that produced this result.
	Name string

	// Statistic is the test statistic (t, χ², U, ... depending on
	// the test).
	Statistic float64

	// P is the p-value of the test. Degenerate input (samples too
	// small, zero variance) resolves to 1 rather than an error.
	P float64

	// DF is the degrees of freedom of the reference distribution,
	// or 0 where the test has none.
	DF float64

	// Significant reports whether P < 1 - ConfidenceLevel.
	Significant bool

	// ConfidenceLevel is 1 - α for the α the test was run at.
	ConfidenceLevel float64

	// CI, when non-nil, is the confidence interval of the
	// quantity under test at ConfidenceLevel.
	CI *Interval

	// Valid is false when a degeneracy policy decided the result
	// instead of the test statistic.
	Valid bool
}

// defaultAlpha is used by tests invoked with a non-positive α.
const defaultAlpha = 0.05

func normAlpha(alpha float64) float64 {
	if alpha <= 0 || alpha >= 1 {
		return defaultAlpha
	}
	return alpha
}
