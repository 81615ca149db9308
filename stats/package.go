// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// stats implements descriptive statistics, correlation, least-squares
// regression, and classical hypothesis tests over in-memory float64
// samples.
//
// Every function is pure and returns a value object; none of them
// mutate their arguments or keep references to them. Statistical
// degeneracies (empty samples, zero variance, tied data) resolve to
// documented sentinel values rather than errors, and each result
// carries a Valid flag that is false when such a policy fired.
package stats // import "github.com/juliej2026-source/openclaw-sub003/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
