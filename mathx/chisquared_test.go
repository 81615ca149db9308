// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestChiSquaredCDF(t *testing.T) {
	for _, k := range []float64{1, 2, 3, 5, 10, 30} {
		ref := distuv.ChiSquared{K: k}
		for _, x := range []float64{0.1, 0.5, 1, 2, 5, 10, 20, 50} {
			want := ref.CDF(x)
			if got := (ChiSquaredDist{k}).CDF(x); !aeqTol(want, got, 1e-10) {
				t.Errorf("ChiSquaredDist{%v}.CDF(%v) = %v, want %v", k, x, got, want)
			}
		}
	}

	// k=2 is exponential: CDF(x) = 1 - e^{-x/2}.
	if got := (ChiSquaredDist{2}).CDF(1.2); !aeq(1-math.Exp(-0.6), got) {
		t.Errorf("ChiSquaredDist{2}.CDF(1.2) = %v", got)
	}
}

func TestChiSquaredInvCDF(t *testing.T) {
	d := ChiSquaredDist{5}
	for _, p := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
		x := d.InvCDF(p)
		if got := d.CDF(x); !aeqTol(p, got, 1e-9) {
			t.Errorf("CDF(InvCDF(%v)) = %v", p, got)
		}
	}
	if got := d.InvCDF(0); got != 0 {
		t.Errorf("InvCDF(0) = %v, want 0", got)
	}
	if got := d.InvCDF(1); !math.IsInf(got, 1) {
		t.Errorf("InvCDF(1) = %v, want +Inf", got)
	}
}
