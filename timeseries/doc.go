// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// timeseries provides moving averages, trend detection, classical
// seasonal decomposition, change-point detection, exponential
// smoothing forecasts, and rolling statistics over ordered float64
// series.
//
// Functions accept plain value slices; the DataPoint type carries an
// optional timestamp for callers that track one. Timestamps are
// assumed non-decreasing but never enforced. All functions are pure
// and follow the module-wide degenerate-value policy: short series
// produce NaN-padded or empty results, never errors.
package timeseries // import "github.com/juliej2026-source/openclaw-sub003/timeseries"
