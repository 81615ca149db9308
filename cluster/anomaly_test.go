// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectAnomaliesIQR(t *testing.T) {
	values := []float64{50000, 52000, 48000, 55000, 47000, 200000}
	res := DetectAnomalies(values, IQR, AnomalyOptions{})
	require.True(t, res.Valid)
	require.Len(t, res.Anomalies, 1)

	a := res.Anomalies[0]
	assert.Equal(t, 5, a.Index)
	assert.Equal(t, 200000.0, a.Value)
	assert.Equal(t, IQR, a.Method)
	assert.Greater(t, a.Score, 0.0)

	assert.Equal(t, 6, res.TotalPoints)
	assert.InDelta(t, 1.0/6, res.AnomalyRate, 1e-12)
	assert.Equal(t, 1.5, res.Threshold)
}

func TestDetectAnomaliesZScore(t *testing.T) {
	// A constant series has zero stddev; nothing can be flagged.
	res := DetectAnomalies([]float64{7, 7, 7, 7, 7}, ZScore, AnomalyOptions{Threshold: 3})
	assert.Empty(t, res.Anomalies)
	assert.Equal(t, 0.0, res.AnomalyRate)

	// One wild value in an otherwise tight series.
	values := []float64{10, 11, 9, 10, 12, 10, 9, 11, 10, 11, 9, 10, 100}
	res = DetectAnomalies(values, ZScore, AnomalyOptions{})
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, 12, res.Anomalies[0].Index)
	assert.Equal(t, 3.0, res.Threshold)

	// A lower threshold can only flag more.
	loose := DetectAnomalies(values, ZScore, AnomalyOptions{Threshold: 1})
	assert.GreaterOrEqual(t, len(loose.Anomalies), len(res.Anomalies))
}

func TestDetectAnomaliesEmpty(t *testing.T) {
	res := DetectAnomalies(nil, ZScore, AnomalyOptions{})
	assert.Equal(t, 0, res.TotalPoints)
	assert.Equal(t, 0.0, res.AnomalyRate)
	assert.Empty(t, res.Anomalies)
	assert.False(t, res.Valid)
}

func TestDetectAnomaliesMahalanobis1D(t *testing.T) {
	// In one dimension Mahalanobis reduces to |z|, so both
	// methods agree.
	values := []float64{10, 11, 9, 10, 12, 10, 9, 11, 10, 11, 9, 10, 100}
	z := DetectAnomalies(values, ZScore, AnomalyOptions{})
	m := DetectAnomalies(values, Mahalanobis, AnomalyOptions{})
	require.Equal(t, len(z.Anomalies), len(m.Anomalies))
	for i := range z.Anomalies {
		assert.Equal(t, z.Anomalies[i].Index, m.Anomalies[i].Index)
		assert.InDelta(t, z.Anomalies[i].Score, m.Anomalies[i].Score, 1e-12)
	}
}

// outlierData returns count tight inliers around center plus one far
// outlier as the final row. The inlier count matters: with the
// outlier included in the covariance estimate, its Mahalanobis
// distance is bounded by (n-1)/√n, so small fixtures cannot clear a
// threshold of 3 no matter how far the outlier sits.
func outlierData(center, outlier []float64, count int) [][]float64 {
	data := make([][]float64, 0, count+1)
	for i := 0; i < count; i++ {
		row := make([]float64, len(center))
		for j := range center {
			row[j] = center[j] + 0.05*float64((i+j)%5-2)
		}
		data = append(data, row)
	}
	return append(data, outlier)
}

func TestDetectMultivariateAnomalies(t *testing.T) {
	// Mahalanobis covariance estimation is O(n·d²); the 2-D path
	// uses the closed-form inverse.
	data := outlierData([]float64{1, 2}, []float64{8, -5}, 20)
	res := DetectMultivariateAnomalies(data, AnomalyOptions{})
	require.True(t, res.Valid)
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, 20, res.Anomalies[0].Index)
	assert.True(t, math.IsNaN(res.Anomalies[0].Value))
	assert.Greater(t, res.Anomalies[0].Score, 3.0)
	assert.Equal(t, Mahalanobis, res.Anomalies[0].Method)
	assert.InDelta(t, 1.0/21, res.AnomalyRate, 1e-12)
}

func TestDetectMultivariateFullCovariance(t *testing.T) {
	// Three dimensions: the default path approximates with the
	// diagonal, the FullCovariance flag inverts the full matrix.
	// Both must flag the planted outlier.
	data := outlierData([]float64{1, 2, 3}, []float64{20, 20, 20}, 20)
	diag := DetectMultivariateAnomalies(data, AnomalyOptions{})
	full := DetectMultivariateAnomalies(data, AnomalyOptions{FullCovariance: true})

	require.NotEmpty(t, diag.Anomalies)
	require.NotEmpty(t, full.Anomalies)
	assert.Equal(t, 20, diag.Anomalies[len(diag.Anomalies)-1].Index)
	assert.Equal(t, 20, full.Anomalies[len(full.Anomalies)-1].Index)
}

func TestDetectMultivariateDegenerateCovariance(t *testing.T) {
	// Perfectly correlated 2-D data has a singular covariance;
	// the analytic inverse must fall back to the diagonal rather
	// than divide by zero.
	data := [][]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}, {5, 5}}
	res := DetectMultivariateAnomalies(data, AnomalyOptions{})
	require.True(t, res.Valid)
	for _, a := range res.Anomalies {
		assert.False(t, math.IsNaN(a.Score))
		assert.False(t, math.IsInf(a.Score, 0))
	}
}

func TestMethodString(t *testing.T) {
	assert.Equal(t, "zscore", ZScore.String())
	assert.Equal(t, "iqr", IQR.String())
	assert.Equal(t, "mahalanobis", Mahalanobis.String())
}
