// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"
)

func TestLinearRegressionExact(t *testing.T) {
	// y = 2x + 1 with no noise must be recovered exactly.
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{3, 5, 7, 9, 11}

	r := LinearRegression(x, y)
	if !r.Valid {
		t.Fatalf("Valid = false: %+v", r)
	}
	if !aeq(2, r.Coefficients[0]) {
		t.Errorf("slope = %v, want 2", r.Coefficients[0])
	}
	if !aeq(1, r.Intercept) {
		t.Errorf("intercept = %v, want 1", r.Intercept)
	}
	if !aeq(1, r.RSquared) {
		t.Errorf("R² = %v, want 1", r.RSquared)
	}
	if len(r.Predictions) != 5 || len(r.Residuals) != 5 {
		t.Fatalf("predictions/residuals lengths = %d/%d, want 5/5", len(r.Predictions), len(r.Residuals))
	}
	for i := range y {
		if !aeq(y[i], r.Predictions[i]) || !aeq(0, r.Residuals[i]) {
			t.Errorf("row %d: prediction %v, residual %v", i, r.Predictions[i], r.Residuals[i])
		}
	}
}

func TestLinearRegressionNoisy(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5, 6}
	y := []float64{2.1, 3.9, 6.2, 7.8, 10.1, 11.9}
	r := LinearRegression(x, y)
	if r.RSquared < 0.99 || r.RSquared > 1 {
		t.Errorf("R² = %v, want in [0.99, 1]", r.RSquared)
	}
	// residuals[i] = y[i] - predictions[i] by definition.
	for i := range y {
		if !aeq(y[i]-r.Predictions[i], r.Residuals[i]) {
			t.Errorf("residual identity broken at %d", i)
		}
	}
}

func TestLinearRegressionDegenerate(t *testing.T) {
	for _, c := range []struct {
		name string
		x, y []float64
	}{
		{"empty", nil, nil},
		{"single", []float64{1}, []float64{2}},
		{"constant x", []float64{3, 3, 3}, []float64{1, 2, 3}},
		{"mismatch", []float64{1, 2}, []float64{1, 2, 3}},
	} {
		r := LinearRegression(c.x, c.y)
		if r.Valid || !math.IsNaN(r.Intercept) {
			t.Errorf("%s: got %+v, want invalid NaN result", c.name, r)
		}
	}
	// Constant target fits perfectly but R² is uninformative.
	r := LinearRegression([]float64{1, 2, 3}, []float64{5, 5, 5})
	if r.Valid {
		t.Errorf("constant target: Valid = true, want false")
	}
}

func TestPolynomialRegression(t *testing.T) {
	// y = x² - 2x + 3, exactly quadratic.
	x := []float64{-2, -1, 0, 1, 2, 3}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = xi*xi - 2*xi + 3
	}

	r := PolynomialRegression(x, y, 2)
	if !r.Valid {
		t.Fatalf("Valid = false: %+v", r)
	}
	if r.Kind != Polynomial {
		t.Errorf("Kind = %v, want polynomial", r.Kind)
	}
	if !aeqTol(-2, r.Coefficients[0], 1e-8) || !aeqTol(1, r.Coefficients[1], 1e-8) {
		t.Errorf("coefficients = %v, want [-2 1]", r.Coefficients)
	}
	if !aeqTol(3, r.Intercept, 1e-8) {
		t.Errorf("intercept = %v, want 3", r.Intercept)
	}
	if !aeq(1, r.RSquared) {
		t.Errorf("R² = %v, want 1", r.RSquared)
	}
}

func TestMultivariateRegression(t *testing.T) {
	// target = 1 + 2a + 3b over a small full-rank design.
	features := [][]float64{
		{1, 2}, {2, 1}, {3, 4}, {4, 3}, {5, 6}, {0, 1},
	}
	target := make([]float64, len(features))
	for i, f := range features {
		target[i] = 1 + 2*f[0] + 3*f[1]
	}

	r := MultivariateRegression(features, target)
	if !r.Valid {
		t.Fatalf("Valid = false: %+v", r)
	}
	if !aeqTol(2, r.Coefficients[0], 1e-8) || !aeqTol(3, r.Coefficients[1], 1e-8) {
		t.Errorf("coefficients = %v, want [2 3]", r.Coefficients)
	}
	if !aeqTol(1, r.Intercept, 1e-8) {
		t.Errorf("intercept = %v, want 1", r.Intercept)
	}
	if !aeq(1, r.RSquared) {
		t.Errorf("R² = %v, want 1", r.RSquared)
	}
}

func TestMultivariateRegressionSingular(t *testing.T) {
	// Second feature is a copy of the first: collinear design.
	features := [][]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}}
	target := []float64{1, 2, 3, 4}
	r := MultivariateRegression(features, target)
	if r.Valid {
		t.Errorf("collinear design: Valid = true, want false")
	}
}

func TestRegressionKindString(t *testing.T) {
	if Linear.String() != "linear" || Polynomial.String() != "polynomial" || Multivariate.String() != "multivariate" {
		t.Error("RegressionKind strings wrong")
	}
}
