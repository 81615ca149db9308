// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/juliej2026-source/openclaw-sub003/stats"
)

// Method selects the anomaly detection algorithm. It is a closed
// enum; DetectAnomalies switches exhaustively over it.
type Method int

const (
	// ZScore flags values whose |z| exceeds the threshold
	// (default 3).
	ZScore Method = iota

	// IQR flags values outside [Q1 - k·IQR, Q3 + k·IQR]
	// (default k = 1.5).
	IQR

	// Mahalanobis flags rows whose Mahalanobis distance from the
	// mean exceeds the threshold (default 3).
	Mahalanobis
)

func (m Method) String() string {
	switch m {
	case ZScore:
		return "zscore"
	case IQR:
		return "iqr"
	case Mahalanobis:
		return "mahalanobis"
	}
	return "unknown"
}

// defaultThreshold returns the conventional cutoff for each method.
func (m Method) defaultThreshold() float64 {
	if m == IQR {
		return 1.5
	}
	return 3.0
}

// An Anomaly is one flagged observation.
type Anomaly struct {
	// Index is the row index in the input.
	Index int

	// Value is the observed value for univariate methods and NaN
	// for multivariate Mahalanobis detection.
	Value float64

	// Score is the method's outlier score: |z| for ZScore,
	// distance beyond the fence in IQR units for IQR, and the
	// Mahalanobis distance for Mahalanobis.
	Score float64

	Method Method
}

// An AnomalyResult lists every flagged observation.
type AnomalyResult struct {
	Anomalies   []Anomaly
	Threshold   float64
	Method      Method
	TotalPoints int

	// AnomalyRate is len(Anomalies)/TotalPoints, or 0 for empty
	// input.
	AnomalyRate float64

	Valid bool
}

// AnomalyOptions configures detection. The zero value uses each
// method's conventional threshold.
type AnomalyOptions struct {
	// Threshold overrides the method default when positive.
	Threshold float64

	// FullCovariance makes Mahalanobis detection invert the full
	// covariance matrix at any dimension instead of falling back
	// to a diagonal approximation above two dimensions. More
	// accurate on correlated features, O(d³) instead of O(d).
	FullCovariance bool
}

// DetectAnomalies finds outliers in a univariate series.
//
// Degenerate spread follows the engine policy: zero standard
// deviation (ZScore, Mahalanobis) flags nothing, and a zero IQR
// scores distances in absolute units instead of IQR units.
func DetectAnomalies(values []float64, method Method, opts AnomalyOptions) AnomalyResult {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = method.defaultThreshold()
	}
	res := AnomalyResult{
		Anomalies:   []Anomaly{},
		Threshold:   threshold,
		Method:      method,
		TotalPoints: len(values),
	}
	if len(values) == 0 {
		return res
	}

	switch method {
	case ZScore, Mahalanobis:
		// In one dimension the Mahalanobis distance reduces to
		// |z|.
		d := stats.Describe(values)
		if d.StdDev == 0 {
			break
		}
		for i, v := range values {
			z := math.Abs(v-d.Mean) / d.StdDev
			if z > threshold {
				res.Anomalies = append(res.Anomalies, Anomaly{i, v, z, method})
			}
		}
		res.Valid = true

	case IQR:
		d := stats.Describe(values)
		iqr := d.IQR
		lo := d.Q1 - threshold*iqr
		hi := d.Q3 + threshold*iqr
		// A zero IQR collapses the fences onto the quartiles;
		// score in absolute units to avoid dividing by zero.
		unit := iqr
		if unit == 0 {
			unit = 1
		}
		for i, v := range values {
			var score float64
			switch {
			case v < lo:
				score = (lo - v) / unit
			case v > hi:
				score = (v - hi) / unit
			default:
				continue
			}
			res.Anomalies = append(res.Anomalies, Anomaly{i, v, score, method})
		}
		res.Valid = true
	}

	res.AnomalyRate = float64(len(res.Anomalies)) / float64(res.TotalPoints)
	return res
}

// DetectMultivariateAnomalies finds rows of data whose Mahalanobis
// distance from the mean vector exceeds the threshold (default 3).
//
// The covariance inverse is exact for one and two dimensions (closed
// form, falling back to the diagonal inverse when |det| < 1e-10) and
// a diagonal approximation above that unless opts.FullCovariance is
// set, which requests the exact inverse at any dimension.
func DetectMultivariateAnomalies(data [][]float64, opts AnomalyOptions) AnomalyResult {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = Mahalanobis.defaultThreshold()
	}
	res := AnomalyResult{
		Anomalies:   []Anomaly{},
		Threshold:   threshold,
		Method:      Mahalanobis,
		TotalPoints: len(data),
	}
	n := len(data)
	if n == 0 || len(data[0]) == 0 {
		return res
	}
	dims := len(data[0])

	cov := covarianceMatrix(data, dims)
	means := make([]float64, dims)
	for _, row := range data {
		for j := 0; j < dims; j++ {
			means[j] += row[j]
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	inv := invertCovariance(cov, dims, opts.FullCovariance)

	for i, row := range data {
		diff := make([]float64, dims)
		for j := 0; j < dims; j++ {
			diff[j] = row[j] - means[j]
		}
		// d² = diffᵀ Σ⁻¹ diff.
		d2 := 0.0
		for a := 0; a < dims; a++ {
			for b := 0; b < dims; b++ {
				d2 += diff[a] * inv.At(a, b) * diff[b]
			}
		}
		if d2 < 0 {
			d2 = 0
		}
		d := math.Sqrt(d2)
		if d > threshold {
			res.Anomalies = append(res.Anomalies, Anomaly{i, nan, d, Mahalanobis})
		}
	}
	res.AnomalyRate = float64(len(res.Anomalies)) / float64(res.TotalPoints)
	res.Valid = true
	return res
}

// invertCovariance returns an inverse (or approximate inverse) of
// cov. One and two dimensions invert in closed form; higher
// dimensions use the diagonal approximation unless full is set.
// Singular matrices always fall back to the diagonal inverse.
func invertCovariance(cov *mat.SymDense, dims int, full bool) mat.Matrix {
	switch {
	case dims == 1:
		v := cov.At(0, 0)
		if math.Abs(v) < 1e-10 {
			return diagonalInverse(cov, dims)
		}
		return mat.NewDense(1, 1, []float64{1 / v})

	case dims == 2:
		a, b, c, d := cov.At(0, 0), cov.At(0, 1), cov.At(1, 0), cov.At(1, 1)
		det := a*d - b*c
		if math.Abs(det) < 1e-10 {
			return diagonalInverse(cov, dims)
		}
		return mat.NewDense(2, 2, []float64{d / det, -b / det, -c / det, a / det})

	case full:
		var inv mat.Dense
		if err := inv.Inverse(cov); err != nil {
			return diagonalInverse(cov, dims)
		}
		return &inv
	}
	return diagonalInverse(cov, dims)
}

// diagonalInverse inverts only the variances of cov, treating
// features as uncorrelated. Zero variances invert to 0 so constant
// features contribute no distance.
func diagonalInverse(cov *mat.SymDense, dims int) mat.Matrix {
	inv := mat.NewDense(dims, dims, nil)
	for j := 0; j < dims; j++ {
		if v := cov.At(j, j); math.Abs(v) >= 1e-10 {
			inv.Set(j, j, 1/v)
		}
	}
	return inv
}
