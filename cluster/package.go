// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// cluster implements k-means clustering, silhouette scoring,
// principal component analysis, z-score normalization, and outlier
// detection over in-memory float64 matrices (rows are observations,
// columns are features).
//
// Like the rest of the module, every function is pure: inputs are
// never mutated, results are value objects, and degenerate input
// (empty data, k out of range, singular covariance) resolves to
// documented zero results rather than errors.
package cluster // import "github.com/juliej2026-source/openclaw-sub003/cluster"

import "math"

var nan = math.NaN()
