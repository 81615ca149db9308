// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForecastSESConstant(t *testing.T) {
	vals := []float64{10, 10, 10, 10, 10}
	r := Forecast(vals, 3, SES, nil)
	require.True(t, r.Valid)
	require.Len(t, r.Forecast, 3)
	for _, f := range r.Forecast {
		assert.InDelta(t, 10, f, 1e-12)
	}
	require.Len(t, r.Fitted, 5)
	for _, f := range r.Fitted {
		assert.InDelta(t, 10, f, 1e-12)
	}
}

func TestForecastSESLevels(t *testing.T) {
	// Alpha 0.5 halves the distance to each new observation.
	r := Forecast([]float64{0, 8, 8, 8}, 2, SES, &ForecastOptions{Alpha: 0.5})
	require.True(t, r.Valid)
	assert.InDelta(t, 0, r.Fitted[1], 1e-12)
	assert.InDelta(t, 4, r.Fitted[2], 1e-12)
	assert.InDelta(t, 6, r.Fitted[3], 1e-12)
	// Final level after the last observation.
	assert.InDelta(t, 7, r.Forecast[0], 1e-12)
	assert.Equal(t, r.Forecast[0], r.Forecast[1])
}

func TestForecastHoltLinear(t *testing.T) {
	vals := make([]float64, 10)
	for i := range vals {
		vals[i] = float64(i + 1)
	}
	r := Forecast(vals, 3, Holt, nil)
	require.True(t, r.Valid)
	// Holt tracks a clean linear trend exactly.
	assert.InDelta(t, 11, r.Forecast[0], 1e-9)
	assert.InDelta(t, 12, r.Forecast[1], 1e-9)
	assert.InDelta(t, 13, r.Forecast[2], 1e-9)
	for i := 1; i < len(vals); i++ {
		assert.InDelta(t, vals[i], r.Fitted[i], 1e-9, "fitted %d", i)
	}
}

func TestForecastHoltSinglePoint(t *testing.T) {
	r := Forecast([]float64{5}, 2, Holt, nil)
	require.True(t, r.Valid)
	assert.Equal(t, []float64{5, 5}, r.Forecast)
}

func TestForecastDegenerate(t *testing.T) {
	assert.False(t, Forecast(nil, 3, SES, nil).Valid)
	assert.False(t, Forecast([]float64{1, 2}, 0, SES, nil).Valid)
	assert.False(t, Forecast([]float64{1, 2}, -1, Holt, nil).Valid)
}

func TestForecastMethodString(t *testing.T) {
	assert.Equal(t, "ses", SES.String())
	assert.Equal(t, "holt", Holt.String())
}
