// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "gonum.org/v1/gonum/mat"

// RegressionKind identifies the model a RegressionResult was fit
// with.
type RegressionKind int

const (
	Linear RegressionKind = iota
	Polynomial
	Multivariate
)

func (k RegressionKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Polynomial:
		return "polynomial"
	case Multivariate:
		return "multivariate"
	}
	return "unknown"
}

// A RegressionResult is an ordinary least squares fit.
type RegressionResult struct {
	Kind RegressionKind

	// Coefficients holds one coefficient per feature. For
	// Polynomial fits these are the coefficients of x, x², ... in
	// ascending degree; the constant term is Intercept.
	Coefficients []float64
	Intercept    float64

	// RSquared is 1 - SS_res/SS_tot. It lies in [0, 1] for
	// well-posed fits; degenerate input (constant target,
	// singular design) yields 0 with Valid false.
	RSquared float64

	// Predictions and Residuals have one entry per input row,
	// with Residuals[i] = target[i] - Predictions[i].
	Predictions []float64
	Residuals   []float64

	Valid bool
}

// LinearRegression fits y = a·x + b by ordinary least squares.
//
// Fewer than two points or constant x yield an all-degenerate result
// with NaN coefficients.
func LinearRegression(x, y []float64) RegressionResult {
	n := len(x)
	if n != len(y) || n < 2 {
		return degenerateRegression(Linear, 1, len(y))
	}

	var mx, my float64
	for i := range x {
		mx += x[i]
		my += y[i]
	}
	mx /= float64(n)
	my /= float64(n)

	var sxx, sxy float64
	for i := range x {
		dx := x[i] - mx
		sxx += dx * dx
		sxy += dx * (y[i] - my)
	}
	if sxx == 0 {
		return degenerateRegression(Linear, 1, n)
	}

	slope := sxy / sxx
	intercept := my - slope*mx

	res := RegressionResult{
		Kind:         Linear,
		Coefficients: []float64{slope},
		Intercept:    intercept,
		Valid:        true,
	}
	res.finish(y, func(i int) float64 { return slope*x[i] + intercept })
	return res
}

// PolynomialRegression fits y as a degree-d polynomial of x by least
// squares over the Vandermonde-expanded features x, x², ..., x^d.
func PolynomialRegression(x, y []float64, degree int) RegressionResult {
	if degree < 1 {
		degree = 1
	}
	if len(x) != len(y) || len(x) < degree+1 {
		return degenerateRegression(Polynomial, degree, len(y))
	}

	features := make([][]float64, len(x))
	for i, xi := range x {
		row := make([]float64, degree)
		p := 1.0
		for d := 0; d < degree; d++ {
			p *= xi
			row[d] = p
		}
		features[i] = row
	}
	res := MultivariateRegression(features, y)
	res.Kind = Polynomial
	return res
}

// MultivariateRegression fits target as a linear combination of the
// feature columns plus an intercept by ordinary least squares. Each
// row of features is one observation.
//
// A singular design matrix (collinear or constant features, too few
// rows) yields a degenerate result rather than an error.
func MultivariateRegression(features [][]float64, target []float64) RegressionResult {
	rows := len(features)
	if rows == 0 || rows != len(target) {
		return degenerateRegression(Multivariate, 0, len(target))
	}
	cols := len(features[0])
	for _, row := range features {
		if len(row) != cols {
			return degenerateRegression(Multivariate, cols, rows)
		}
	}
	if cols == 0 || rows < cols+1 {
		return degenerateRegression(Multivariate, cols, rows)
	}

	// Design matrix with a leading column of ones for the
	// intercept, solved in the least-squares sense via QR.
	X := mat.NewDense(rows, cols+1, nil)
	for i, row := range features {
		X.Set(i, 0, 1)
		for j, v := range row {
			X.Set(i, j+1, v)
		}
	}

	var qr mat.QR
	qr.Factorize(X)
	var beta mat.VecDense
	if err := qr.SolveVecTo(&beta, false, mat.NewVecDense(rows, append([]float64(nil), target...))); err != nil {
		return degenerateRegression(Multivariate, cols, rows)
	}

	coefs := make([]float64, cols)
	for j := 0; j < cols; j++ {
		coefs[j] = beta.AtVec(j + 1)
	}
	res := RegressionResult{
		Kind:         Multivariate,
		Coefficients: coefs,
		Intercept:    beta.AtVec(0),
		Valid:        true,
	}
	res.finish(target, func(i int) float64 {
		p := res.Intercept
		for j, c := range coefs {
			p += c * features[i][j]
		}
		return p
	})
	return res
}

// finish fills Predictions, Residuals, and RSquared from the fitted
// predictor.
func (r *RegressionResult) finish(target []float64, predict func(i int) float64) {
	n := len(target)
	r.Predictions = make([]float64, n)
	r.Residuals = make([]float64, n)

	var mean float64
	for _, y := range target {
		mean += y
	}
	mean /= float64(n)

	var ssRes, ssTot float64
	for i, y := range target {
		p := predict(i)
		r.Predictions[i] = p
		r.Residuals[i] = y - p
		ssRes += (y - p) * (y - p)
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot == 0 {
		// Constant target: the intercept-only model already
		// explains everything, so R² is not informative.
		r.RSquared = 0
		r.Valid = false
		return
	}
	r.RSquared = 1 - ssRes/ssTot
}

// degenerateRegression returns the all-NaN result used when a fit is
// not well posed.
func degenerateRegression(kind RegressionKind, cols, rows int) RegressionResult {
	coefs := make([]float64, cols)
	preds := make([]float64, rows)
	resid := make([]float64, rows)
	for i := range coefs {
		coefs[i] = nan
	}
	for i := range preds {
		preds[i] = nan
		resid[i] = nan
	}
	return RegressionResult{
		Kind:         kind,
		Coefficients: coefs,
		Intercept:    nan,
		RSquared:     nan,
		Predictions:  preds,
		Residuals:    resid,
	}
}
