// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovingAverageSMA(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3, SMA)
	require.Len(t, got, 5)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 2, got[2], 1e-12)
	assert.InDelta(t, 3, got[3], 1e-12)
	assert.InDelta(t, 4, got[4], 1e-12)
}

func TestMovingAverageEMA(t *testing.T) {
	// Window 3 gives alpha = 0.5.
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3, EMA)
	want := []float64{1, 1.5, 2.25, 3.125, 4.0625}
	require.Len(t, got, 5)
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "index %d", i)
	}
}

func TestMovingAverageWMA(t *testing.T) {
	got := MovingAverage([]float64{1, 2, 3, 4, 5}, 3, WMA)
	require.Len(t, got, 5)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 14.0/6, got[2], 1e-12)
	assert.InDelta(t, 20.0/6, got[3], 1e-12)
	assert.InDelta(t, 26.0/6, got[4], 1e-12)
}

func TestMovingAverageEdges(t *testing.T) {
	assert.Empty(t, MovingAverage(nil, 3, SMA))

	// Window 1 is the identity for every kind.
	in := []float64{3, 1, 4, 1, 5}
	for _, kind := range []MAKind{SMA, EMA, WMA} {
		assert.Equal(t, in, MovingAverage(in, 1, kind), kind.String())
	}

	// A window larger than the series leaves SMA all NaN.
	got := MovingAverage([]float64{1, 2}, 5, SMA)
	for i, v := range got {
		assert.True(t, math.IsNaN(v), "index %d", i)
	}
}

func TestMovingAverageNoMutate(t *testing.T) {
	in := []float64{1, 2, 3, 4}
	MovingAverage(in, 2, SMA)
	assert.Equal(t, []float64{1, 2, 3, 4}, in)
}

func TestMAKindString(t *testing.T) {
	assert.Equal(t, "sma", SMA.String())
	assert.Equal(t, "ema", EMA.String())
	assert.Equal(t, "wma", WMA.String())
}
