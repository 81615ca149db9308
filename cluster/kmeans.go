// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// A Cluster is one group from a k-means partition.
type Cluster struct {
	Centroid []float64
	Points   [][]float64
	Size     int
}

// A ClusterResult is a complete k-means partition of the input.
type ClusterResult struct {
	// K is the number of clusters actually used. It never exceeds
	// the number of input points.
	K int

	Clusters []Cluster

	// Labels[i] is the cluster index of input row i; every point
	// belongs to exactly one cluster.
	Labels []int

	// SilhouetteScore is the mean silhouette over all points, or
	// 0 when it is degenerate (n ≤ k).
	SilhouetteScore float64

	// Inertia is the total squared distance from each point to
	// its assigned centroid.
	Inertia float64

	Valid bool
}

// KMeansOptions configures KMeans. The zero value runs up to 100
// iterations from a fixed seed, so results are reproducible by
// default.
type KMeansOptions struct {
	// MaxIterations bounds the Lloyd iteration; 0 means 100.
	MaxIterations int

	// Seed seeds centroid initialization. Equal seeds on equal
	// input give bit-identical results.
	Seed int64
}

const defaultMaxIterations = 100

// KMeans partitions data into k clusters by Lloyd's algorithm:
// assign each point to its nearest centroid, recompute centroids as
// cluster means, and repeat to convergence or MaxIterations.
//
// k is clamped to the number of points. Empty data or k ≤ 0 returns
// the zero result.
func KMeans(data [][]float64, k int, opts KMeansOptions) ClusterResult {
	n := len(data)
	if n == 0 || k <= 0 {
		return ClusterResult{Clusters: []Cluster{}, Labels: []int{}}
	}
	if k > n {
		k = n
	}
	maxIter := opts.MaxIterations
	if maxIter <= 0 {
		maxIter = defaultMaxIterations
	}

	// Initialize centroids from k distinct input points.
	rng := rand.New(rand.NewSource(opts.Seed))
	centroids := make([][]float64, k)
	for i, p := range rng.Perm(n)[:k] {
		centroids[i] = append([]float64(nil), data[p]...)
	}

	labels := make([]int, n)
	for iter := 0; iter < maxIter; iter++ {
		changed := false
		for i, point := range data {
			best := nearestCentroid(point, centroids)
			if best != labels[i] || iter == 0 {
				labels[i] = best
				changed = true
			}
		}
		if !changed {
			break
		}

		// Recompute centroids as cluster means. A cluster that
		// lost all its points keeps its previous centroid.
		sums := make([][]float64, k)
		counts := make([]int, k)
		for i := range sums {
			sums[i] = make([]float64, len(data[0]))
		}
		for i, point := range data {
			floats.Add(sums[labels[i]], point)
			counts[labels[i]]++
		}
		for c := range centroids {
			if counts[c] == 0 {
				continue
			}
			floats.Scale(1/float64(counts[c]), sums[c])
			centroids[c] = sums[c]
		}
	}

	clusters := make([]Cluster, k)
	for c := range clusters {
		clusters[c] = Cluster{Centroid: centroids[c], Points: [][]float64{}}
	}
	inertia := 0.0
	for i, point := range data {
		c := labels[i]
		clusters[c].Points = append(clusters[c].Points, append([]float64(nil), point...))
		clusters[c].Size++
		d := floats.Distance(point, centroids[c], 2)
		inertia += d * d
	}

	score := 0.0
	if n > k {
		score = Silhouette(data, labels)
	}
	return ClusterResult{
		K:               k,
		Clusters:        clusters,
		Labels:          labels,
		SilhouetteScore: score,
		Inertia:         inertia,
		Valid:           true,
	}
}

// nearestCentroid returns the index of the centroid closest to point.
func nearestCentroid(point []float64, centroids [][]float64) int {
	best, bestDist := 0, floats.Distance(point, centroids[0], 2)
	for c := 1; c < len(centroids); c++ {
		if d := floats.Distance(point, centroids[c], 2); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// ElbowCurve runs KMeans for every k from 1 to maxK (clamped to the
// number of points) and returns the inertia at each k. Interpreting
// the knee of the curve is left to the caller.
func ElbowCurve(data [][]float64, maxK int) []float64 {
	if len(data) == 0 || maxK <= 0 {
		return []float64{}
	}
	if maxK > len(data) {
		maxK = len(data)
	}
	curve := make([]float64, maxK)
	for k := 1; k <= maxK; k++ {
		curve[k-1] = KMeans(data, k, KMeansOptions{}).Inertia
	}
	return curve
}
