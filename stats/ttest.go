// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/juliej2026-source/openclaw-sub003/mathx"
)

// TTestOptions configures TTest. The zero value runs an independent
// two-sample test at α = 0.05.
type TTestOptions struct {
	// Paired runs a paired test on the elementwise differences
	// instead of an independent two-sample test.
	Paired bool

	// Alpha is the significance level; 0 means 0.05.
	Alpha float64
}

// TTest compares the means of samples a and b.
//
// The independent test uses the pooled-variance statistic with
// nA+nB-2 degrees of freedom; the paired test reduces to a one-sample
// test on the pairwise differences with n-1 degrees of freedom.
//
// Degenerate input follows the no-error policy: fewer than two
// observations per group gives P = 1 and no significance. A zero
// standard error gives statistic 0 and P = 1 when the means are equal
// or P = 0 when they differ.
func TTest(a, b []float64, opts TTestOptions) HypothesisTest {
	alpha := normAlpha(opts.Alpha)
	if opts.Paired {
		return pairedTTest(a, b, alpha)
	}
	return independentTTest(a, b, alpha)
}

func independentTTest(a, b []float64, alpha float64) HypothesisTest {
	ht := HypothesisTest{Name: "t-test", P: 1, ConfidenceLevel: 1 - alpha}
	na, nb := len(a), len(b)
	if na < 2 || nb < 2 {
		return ht
	}

	ma, va := meanVariance(a)
	mb, vb := meanVariance(b)
	df := float64(na + nb - 2)
	sp2 := (float64(na-1)*va + float64(nb-1)*vb) / df
	se := math.Sqrt(sp2 * (1/float64(na) + 1/float64(nb)))

	return finishMeanTest(&ht, ma-mb, se, df, alpha)
}

func pairedTTest(a, b []float64, alpha float64) HypothesisTest {
	ht := HypothesisTest{Name: "paired t-test", P: 1, ConfidenceLevel: 1 - alpha}
	n := len(a)
	if n != len(b) || n < 2 {
		return ht
	}

	diffs := make([]float64, n)
	for i := range a {
		diffs[i] = a[i] - b[i]
	}
	md, vd := meanVariance(diffs)
	df := float64(n - 1)
	se := math.Sqrt(vd / float64(n))

	return finishMeanTest(&ht, md, se, df, alpha)
}

// finishMeanTest fills in a t-statistic test of a mean difference
// against zero, applying the zero-standard-error policy.
func finishMeanTest(ht *HypothesisTest, diff, se, df, alpha float64) HypothesisTest {
	ht.DF = df
	if se == 0 {
		// Zero spread in both groups: the observed difference
		// is exact, so equality of means decides the test
		// outright.
		ht.Statistic = 0
		if diff == 0 {
			ht.P = 1
		} else {
			ht.P = 0
			ht.Significant = true
		}
		ht.CI = &Interval{diff, diff}
		return *ht
	}

	t := diff / se
	ht.Statistic = t
	ht.P = mathx.TDist{Df: df}.TwoTailP(t)
	ht.Significant = ht.P < alpha
	ht.Valid = true

	tcrit := mathx.TDist{Df: df}.InvCDF(1 - alpha/2)
	ht.CI = &Interval{diff - tcrit*se, diff + tcrit*se}
	return *ht
}

// meanVariance returns the mean and sample variance of xs.
func meanVariance(xs []float64) (mean, variance float64) {
	n := len(xs)
	if n == 0 {
		return nan, nan
	}
	for _, x := range xs {
		mean += x
	}
	mean /= float64(n)
	if n < 2 {
		return mean, 0
	}
	for _, x := range xs {
		d := x - mean
		variance += d * d
	}
	variance /= float64(n - 1)
	return mean, variance
}

// An EffectSizeResult is Cohen's d with its conventional magnitude
// label.
type EffectSizeResult struct {
	D float64

	// Magnitude is "negligible", "small", "medium", or "large"
	// using the 0.2/0.5/0.8 thresholds on |D|.
	Magnitude string

	Valid bool
}

// EffectSize computes Cohen's d for samples a and b: the mean
// difference normalized by the pooled standard deviation.
func EffectSize(a, b []float64) EffectSizeResult {
	na, nb := len(a), len(b)
	if na < 2 || nb < 2 {
		return EffectSizeResult{D: nan, Magnitude: "negligible"}
	}

	ma, va := meanVariance(a)
	mb, vb := meanVariance(b)
	sp := math.Sqrt((float64(na-1)*va + float64(nb-1)*vb) / float64(na+nb-2))
	if sp == 0 {
		return EffectSizeResult{D: nan, Magnitude: "negligible"}
	}

	d := (ma - mb) / sp
	return EffectSizeResult{D: d, Magnitude: magnitude(math.Abs(d)), Valid: true}
}

func magnitude(d float64) string {
	switch {
	case d < 0.2:
		return "negligible"
	case d < 0.5:
		return "small"
	case d < 0.8:
		return "medium"
	}
	return "large"
}

// A MeanCI is a confidence interval for a population mean.
type MeanCI struct {
	Mean     float64
	Interval Interval
	Level    float64
	Valid    bool
}

// ConfidenceInterval returns the t-based confidence interval for the
// mean of xs at the given confidence level: mean ± t(level, n-1)·SE.
//
// An empty sample yields NaN throughout; a single observation yields
// a degenerate point interval at that value.
func ConfidenceInterval(xs []float64, level float64) MeanCI {
	if level <= 0 || level >= 1 {
		level = 0.95
	}
	n := len(xs)
	switch n {
	case 0:
		return MeanCI{Mean: nan, Interval: Interval{nan, nan}, Level: level}
	case 1:
		return MeanCI{Mean: xs[0], Interval: Interval{xs[0], xs[0]}, Level: level}
	}

	mean, variance := meanVariance(xs)
	se := math.Sqrt(variance / float64(n))
	tcrit := mathx.TDist{Df: float64(n - 1)}.InvCDF(0.5 + level/2)
	return MeanCI{
		Mean:     mean,
		Interval: Interval{mean - tcrit*se, mean + tcrit*se},
		Level:    level,
		Valid:    true,
	}
}

// SampleSize returns the per-group sample size needed for a
// two-sample test to detect the standardized effect size es with the
// given power at significance level alpha:
//
//	n = ⌈(z_{1-α/2} + z_{power})² · 2 / es²⌉
//
// A non-positive effect size needs infinitely many samples and
// returns +Inf.
func SampleSize(es, power, alpha float64) float64 {
	if es <= 0 {
		return inf
	}
	alpha = normAlpha(alpha)
	if power <= 0 || power >= 1 {
		power = 0.8
	}
	zAlpha := mathx.StdNormal.InvCDF(1 - alpha/2)
	zPower := mathx.StdNormal.InvCDF(power)
	return math.Ceil((zAlpha + zPower) * (zAlpha + zPower) * 2 / (es * es))
}
