// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import "math"

// Normalize z-score standardizes each feature column of data: the
// result has per-column mean 0 and, for columns with nonzero
// variance, standard deviation 1. Zero-variance columns divide by 1
// instead, so they become constant zero after centering.
//
// The input is not modified; rows shorter than the first are left
// untouched beyond their own length.
func Normalize(data [][]float64) [][]float64 {
	n := len(data)
	if n == 0 {
		return [][]float64{}
	}
	cols := len(data[0])

	means, stds := columnStats(data, cols)
	out := make([][]float64, n)
	for i, row := range data {
		r := make([]float64, len(row))
		for j := range row {
			if j < cols {
				r[j] = (row[j] - means[j]) / stds[j]
			} else {
				r[j] = row[j]
			}
		}
		out[i] = r
	}
	return out
}

// columnStats returns the per-column mean and sample standard
// deviation of the first cols columns. Zero standard deviations are
// mapped to 1.
func columnStats(data [][]float64, cols int) (means, stds []float64) {
	n := float64(len(data))
	means = make([]float64, cols)
	stds = make([]float64, cols)

	for _, row := range data {
		for j := 0; j < cols && j < len(row); j++ {
			means[j] += row[j]
		}
	}
	for j := range means {
		means[j] /= n
	}

	for _, row := range data {
		for j := 0; j < cols && j < len(row); j++ {
			d := row[j] - means[j]
			stds[j] += d * d
		}
	}
	for j := range stds {
		if n > 1 {
			stds[j] = math.Sqrt(stds[j] / (n - 1))
		}
		if stds[j] == 0 {
			stds[j] = 1
		}
	}
	return means, stds
}
