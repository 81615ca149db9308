// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// mathx implements the special functions and distribution
// approximations underlying the statistical tests in this module:
// the log-gamma function, the regularized incomplete gamma and beta
// functions, and the normal, Student's t, and chi-squared
// distributions.
//
// These are shared by every p-value computation in the stats package
// and are tested against reference values on their own; nothing else
// in this module implements its own approximations.
package mathx // import "github.com/juliej2026-source/openclaw-sub003/mathx"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
