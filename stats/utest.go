// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/juliej2026-source/openclaw-sub003/mathx"
)

// MannWhitneyU performs a Mann-Whitney U-test of the null hypothesis
// that samples a and b come from the same population against the
// alternative that one tends to have larger or smaller values than
// the other.
//
// This is similar to a t-test, but non-parametric: it does not assume
// a normal distribution. Ties are handled by assigning tied values
// the average of the ranks they span, and U is counted with 0.5 per
// tied pair, so U is always an integer multiple of 0.5 in the range
// [0, n1·n2]. The statistic reported is the smaller of the two
// possible U values.
//
// The p-value uses the normal approximation with both the tie
// correction and the continuity correction. Degenerate input follows
// the engine-wide policy: an empty sample, or pooled data with zero
// rank variance (all values equal), gives P = 1 and no significance
// rather than an error.
func MannWhitneyU(a, b []float64, alpha float64) HypothesisTest {
	alpha = normAlpha(alpha)
	ht := HypothesisTest{Name: "mann-whitney", P: 1, ConfidenceLevel: 1 - alpha}
	n1, n2 := len(a), len(b)
	if n1 == 0 || n2 == 0 {
		return ht
	}

	// Compute the rank sum of the first sample over the pooled,
	// sorted data, averaging ranks across tie runs.
	x1 := append([]float64(nil), a...)
	x2 := append([]float64(nil), b...)
	sort.Float64s(x1)
	sort.Float64s(x2)
	merged, labels := labeledMerge(x1, x2)

	R1 := 0.0
	for i := 0; i < len(merged); {
		rank1, nx1, v1 := i+1, 0, merged[i]
		// Consume samples that tie this sample (including itself).
		for ; i < len(merged) && merged[i] == v1; i++ {
			if labels[i] == 1 {
				nx1++
			}
		}
		// Assign all tied samples the average rank of the
		// samples, where merged[0] has rank 1.
		if nx1 != 0 {
			rank := float64(i+rank1) / 2
			R1 += rank * float64(nx1)
		}
	}
	U1 := R1 - float64(n1*(n1+1))/2

	// Report the smaller of U1 and U2.
	U2 := float64(n1*n2) - U1
	if U2 < U1 {
		U1, U2 = U2, U1
	}
	ht.Statistic = U1

	// Normal approximation with tie and continuity correction.
	t := tieCorrection(merged)
	N := float64(n1 + n2)
	muU := float64(n1*n2) / 2
	sigmaU := math.Sqrt(float64(n1*n2) * ((N + 1) - t/(N*(N-1))) / 12)
	if sigmaU == 0 {
		// All pooled values are equal; the test carries no
		// information.
		return ht
	}

	numer := U1 - muU
	numer -= sign(numer) * 0.5
	z := numer / sigmaU
	ht.P = 2 * math.Min(mathx.StdNormal.CDF(z), 1-mathx.StdNormal.CDF(z))
	if ht.P > 1 {
		ht.P = 1
	}
	ht.Significant = ht.P < alpha
	ht.Valid = true
	return ht
}

// labeledMerge merges sorted lists x1 and x2 into sorted list merged.
// labels[i] is 1 or 2 depending on whether merged[i] is a value from
// x1 or x2, respectively.
func labeledMerge(x1, x2 []float64) (merged []float64, labels []byte) {
	merged = make([]float64, len(x1)+len(x2))
	labels = make([]byte, len(x1)+len(x2))

	i, j, o := 0, 0, 0
	for i < len(x1) && j < len(x2) {
		if x1[i] < x2[j] {
			merged[o] = x1[i]
			labels[o] = 1
			i++
		} else {
			merged[o] = x2[j]
			labels[o] = 2
			j++
		}
		o++
	}
	for ; i < len(x1); i++ {
		merged[o] = x1[i]
		labels[o] = 1
		o++
	}
	for ; j < len(x2); j++ {
		merged[o] = x2[j]
		labels[o] = 2
		o++
	}
	return
}

// tieCorrection computes the tie correction factor Σ_j (t_j³ - t_j)
// where t_j is the number of ties in the j'th rank.
func tieCorrection(xs []float64) float64 {
	t := 0
	for i := 0; i < len(xs); {
		i1, v1 := i, xs[i]
		for ; i < len(xs) && xs[i] == v1; i++ {
		}
		run := i - i1
		t += run*run*run - run
	}
	return float64(t)
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
