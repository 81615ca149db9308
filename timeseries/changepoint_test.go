// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangePointsStep(t *testing.T) {
	// A level shift from ~0 to ~10 at index 30, with small
	// deterministic jitter so the windows have variance.
	vals := make([]float64, 60)
	for i := range vals {
		vals[i] = 0.1 * float64(i%3)
		if i >= 30 {
			vals[i] += 10
		}
	}

	cps := ChangePoints(vals)
	require.Len(t, cps, 1)
	cp := cps[0]
	assert.InDelta(t, 30, float64(cp.Index), 2)
	assert.InDelta(t, 0.1, cp.Before, 0.2)
	assert.InDelta(t, 10.1, cp.After, 0.2)
	assert.Greater(t, cp.Shift, 2.0)
}

func TestChangePointsCleanStep(t *testing.T) {
	// Two constant regimes produce an infinite shift at the exact
	// boundary.
	vals := make([]float64, 60)
	for i := 30; i < 60; i++ {
		vals[i] = 1
	}
	cps := ChangePoints(vals)
	require.Len(t, cps, 1)
	assert.Equal(t, 30, cps[0].Index)
	assert.Equal(t, 0.0, cps[0].Before)
	assert.Equal(t, 1.0, cps[0].After)
}

func TestChangePointsStable(t *testing.T) {
	vals := make([]float64, 100)
	for i := range vals {
		vals[i] = 5 + 0.2*float64(i%4)
	}
	assert.Empty(t, ChangePoints(vals))
}

func TestChangePointsMultiple(t *testing.T) {
	// Shifts at 40 and 80, far enough apart to both survive the
	// separation rule.
	vals := make([]float64, 120)
	for i := range vals {
		vals[i] = 0.1 * float64(i%3)
		switch {
		case i >= 80:
			vals[i] += 40
		case i >= 40:
			vals[i] += 20
		}
	}
	cps := ChangePoints(vals)
	require.Len(t, cps, 2)
	assert.InDelta(t, 40, float64(cps[0].Index), 2)
	assert.InDelta(t, 80, float64(cps[1].Index), 2)
}

func TestChangePointsShort(t *testing.T) {
	assert.Empty(t, ChangePoints(nil))
	assert.Empty(t, ChangePoints([]float64{1, 2, 3, 100, 101, 102}))
}
