// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import "gonum.org/v1/gonum/floats"

// Silhouette returns the mean silhouette score of a labeled
// partition: per point, s = (b-a)/max(a,b) where a is the mean
// distance to the point's own cluster and b the smallest mean
// distance to any other cluster.
//
// The score is 0 for a single point, a single cluster, or any point
// where max(a, b) is 0. This is O(n²) in the number of points.
func Silhouette(data [][]float64, labels []int) float64 {
	n := len(data)
	if n < 2 || len(labels) != n {
		return 0
	}

	members := make(map[int][]int)
	for i, l := range labels {
		members[l] = append(members[l], i)
	}
	if len(members) < 2 {
		return 0
	}

	total := 0.0
	for i, point := range data {
		own := labels[i]

		a := 0.0
		if len(members[own]) > 1 {
			for _, j := range members[own] {
				if j != i {
					a += floats.Distance(point, data[j], 2)
				}
			}
			a /= float64(len(members[own]) - 1)
		}

		b := 0.0
		first := true
		for l, idxs := range members {
			if l == own {
				continue
			}
			mean := 0.0
			for _, j := range idxs {
				mean += floats.Distance(point, data[j], 2)
			}
			mean /= float64(len(idxs))
			if first || mean < b {
				b, first = mean, false
			}
		}

		denom := a
		if b > denom {
			denom = b
		}
		if denom > 0 {
			total += (b - a) / denom
		}
	}
	return total / float64(n)
}
