// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// A PCAResult is a principal component analysis of standardized
// input.
type PCAResult struct {
	// Eigenvalues of the covariance matrix, sorted descending.
	Eigenvalues []float64

	// Eigenvectors[i] is the unit eigenvector paired with
	// Eigenvalues[i].
	Eigenvectors [][]float64

	// ExplainedVariance[i] is Eigenvalues[i] normalized by the
	// total variance; CumulativeVariance is its non-decreasing
	// running sum, ending at ~1 when all components are kept.
	ExplainedVariance  []float64
	CumulativeVariance []float64

	// Projections is the standardized input projected onto the
	// retained components, one row per input row.
	Projections [][]float64

	Valid bool
}

// PCA standardizes data, eigendecomposes its covariance matrix, and
// projects the data onto the top components principal axes.
// components ≤ 0 keeps min(features, rows) components.
//
// Empty input returns the zero result; a single row has a zero
// covariance matrix and yields zero eigenvalues.
func PCA(data [][]float64, components int) PCAResult {
	n := len(data)
	if n == 0 || len(data[0]) == 0 {
		return PCAResult{
			Eigenvalues:        []float64{},
			Eigenvectors:       [][]float64{},
			ExplainedVariance:  []float64{},
			CumulativeVariance: []float64{},
			Projections:        [][]float64{},
		}
	}
	dims := len(data[0])
	if components <= 0 || components > dims {
		components = dims
		if n < components {
			components = n
		}
	}

	std := Normalize(data)
	cov := covarianceMatrix(std, dims)

	var es mat.EigenSym
	if !es.Factorize(cov, true) {
		return PCAResult{
			Eigenvalues:        []float64{},
			Eigenvectors:       [][]float64{},
			ExplainedVariance:  []float64{},
			CumulativeVariance: []float64{},
			Projections:        [][]float64{},
		}
	}

	// EigenSym reports eigenvalues in ascending order; PCA wants
	// them descending.
	vals := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	order := make([]int, dims)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return vals[order[a]] > vals[order[b]] })

	eigenvalues := make([]float64, dims)
	eigenvectors := make([][]float64, dims)
	total := 0.0
	for rank, idx := range order {
		eigenvalues[rank] = vals[idx]
		v := make([]float64, dims)
		mat.Col(v, idx, &vecs)
		eigenvectors[rank] = v
		total += vals[idx]
	}

	explained := make([]float64, dims)
	cumulative := make([]float64, dims)
	run := 0.0
	for i, ev := range eigenvalues {
		if total > 0 {
			explained[i] = ev / total
		}
		run += explained[i]
		cumulative[i] = run
	}

	projections := make([][]float64, n)
	for i, row := range std {
		p := make([]float64, components)
		for c := 0; c < components; c++ {
			for j, v := range row {
				p[c] += v * eigenvectors[c][j]
			}
		}
		projections[i] = p
	}

	return PCAResult{
		Eigenvalues:        eigenvalues,
		Eigenvectors:       eigenvectors,
		ExplainedVariance:  explained,
		CumulativeVariance: cumulative,
		Projections:        projections,
		Valid:              true,
	}
}

// covarianceMatrix returns the sample covariance matrix of the rows
// of data over the first dims columns. Fewer than two rows give the
// zero matrix.
func covarianceMatrix(data [][]float64, dims int) *mat.SymDense {
	cov := mat.NewSymDense(dims, nil)
	n := len(data)
	if n < 2 {
		return cov
	}

	means := make([]float64, dims)
	for _, row := range data {
		for j := 0; j < dims; j++ {
			means[j] += row[j]
		}
	}
	for j := range means {
		means[j] /= float64(n)
	}

	for i := 0; i < dims; i++ {
		for j := i; j < dims; j++ {
			s := 0.0
			for _, row := range data {
				s += (row[i] - means[i]) * (row[j] - means[j])
			}
			cov.SetSym(i, j, s/float64(n-1))
		}
	}
	return cov
}
