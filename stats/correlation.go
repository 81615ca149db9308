// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/juliej2026-source/openclaw-sub003/mathx"
)

// A CorrelationResult reports the association between two paired
// samples.
type CorrelationResult struct {
	// N is the number of paired observations.
	N int

	// Pearson is the Pearson product-moment correlation
	// coefficient, or NaN if either sample has zero variance.
	Pearson float64

	// Spearman is the rank correlation coefficient with
	// tie-averaged ranks.
	Spearman float64

	// P is the two-tailed p-value of a t-test on Pearson with
	// N-2 degrees of freedom.
	P float64

	// Valid is false when there were fewer than two pairs or a
	// sample was constant.
	Valid bool
}

// Correlation computes the Pearson and Spearman correlation between
// the paired samples x and y.
//
// If x and y differ in length or have fewer than two elements, the
// coefficients are NaN and P is 1.
func Correlation(x, y []float64) CorrelationResult {
	n := len(x)
	if n != len(y) || n < 2 {
		return CorrelationResult{N: min(n, len(y)), Pearson: nan, Spearman: nan, P: 1}
	}

	r := pearson(x, y)
	rho := pearson(rankAvg(x), rankAvg(y))

	if math.IsNaN(r) {
		return CorrelationResult{N: n, Pearson: r, Spearman: rho, P: 1}
	}

	// Two-tailed t-test of r against 0 with n-2 degrees of
	// freedom. |r| = 1 pins the statistic at infinity and p at 0.
	p := 0.0
	if r*r < 1 {
		t := r * math.Sqrt(float64(n-2)/(1-r*r))
		p = mathx.TDist{Df: float64(n - 2)}.TwoTailP(t)
	}
	return CorrelationResult{N: n, Pearson: r, Spearman: rho, P: p, Valid: true}
}

// pearson returns the Pearson correlation of equal-length x and y, or
// NaN if either has zero variance.
func pearson(x, y []float64) float64 {
	n := float64(len(x))
	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= n
	my /= n

	var sxy, sxx, syy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return nan
	}
	r := sxy / math.Sqrt(sxx*syy)
	// Clamp rounding excursions outside [-1, 1].
	return math.Max(-1, math.Min(1, r))
}

// rankAvg returns the 1-based ranks of xs, assigning tied values the
// average of the ranks they span.
func rankAvg(xs []float64) []float64 {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, len(xs))
	for i := 0; i < len(idx); {
		j := i
		for j < len(idx) && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		// Ranks i+1..j averaged across the tie run.
		avg := float64(i+j+1) / 2
		for ; i < j; i++ {
			ranks[idx[i]] = avg
		}
	}
	return ranks
}

// A CorrelationMatrixResult is the pairwise Pearson correlation of a
// set of named variables.
type CorrelationMatrixResult struct {
	// Variables lists the variable names in lexicographic order;
	// Matrix rows and columns follow this order.
	Variables []string

	// Matrix is symmetric with a unit diagonal.
	Matrix [][]float64
}

// CorrelationMatrix computes the pairwise Pearson correlation of
// every pair of variables in named. The diagonal is exactly 1 and the
// matrix is symmetric by construction.
func CorrelationMatrix(named map[string][]float64) CorrelationMatrixResult {
	vars := make([]string, 0, len(named))
	for name := range named {
		vars = append(vars, name)
	}
	sort.Strings(vars)

	m := make([][]float64, len(vars))
	for i := range m {
		m[i] = make([]float64, len(vars))
		m[i][i] = 1
	}
	for i := 0; i < len(vars); i++ {
		for j := i + 1; j < len(vars); j++ {
			r := Correlation(named[vars[i]], named[vars[j]]).Pearson
			m[i][j] = r
			m[j][i] = r
		}
	}
	return CorrelationMatrixResult{Variables: vars, Matrix: m}
}
