// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timeseries

// ForecastMethod selects the exponential smoothing variant.
type ForecastMethod int

const (
	// SES is simple exponential smoothing. Forecasts continue the
	// final smoothed level flat.
	SES ForecastMethod = iota

	// Holt is double exponential smoothing with a trend
	// component. Forecasts extend the final level linearly.
	Holt
)

func (m ForecastMethod) String() string {
	switch m {
	case SES:
		return "ses"
	case Holt:
		return "holt"
	}
	return "unknown"
}

// ForecastOptions tunes the smoothing constants. Zero values take the
// defaults.
type ForecastOptions struct {
	// Alpha is the level smoothing factor. Default 0.3.
	Alpha float64

	// Beta is the trend smoothing factor, used by Holt only.
	// Default 0.1.
	Beta float64
}

// ForecastResult carries the forecast horizon and the fitted
// in-sample values.
type ForecastResult struct {
	// Forecast holds the next-horizon predicted values.
	Forecast []float64

	// Fitted holds the one-step-ahead fitted value for each input
	// point.
	Fitted []float64

	Method ForecastMethod
	Valid  bool
}

// Forecast extends values by horizon steps using exponential
// smoothing. An empty series or a non-positive horizon is degenerate.
func Forecast(values []float64, horizon int, method ForecastMethod, opts *ForecastOptions) ForecastResult {
	n := len(values)
	if n == 0 || horizon <= 0 {
		return ForecastResult{Method: method}
	}

	alpha, beta := 0.3, 0.1
	if opts != nil {
		if opts.Alpha > 0 {
			alpha = opts.Alpha
		}
		if opts.Beta > 0 {
			beta = opts.Beta
		}
	}

	fitted := make([]float64, n)
	fc := make([]float64, horizon)

	switch method {
	case Holt:
		if n < 2 {
			// Not enough points to initialize a trend. Fall
			// back to a flat continuation.
			for i := range fitted {
				fitted[i] = values[0]
			}
			for h := range fc {
				fc[h] = values[0]
			}
			break
		}
		level := values[0]
		trend := values[1] - values[0]
		fitted[0] = values[0]
		for i := 1; i < n; i++ {
			fitted[i] = level + trend
			prevLevel := level
			level = alpha*values[i] + (1-alpha)*(level+trend)
			trend = beta*(level-prevLevel) + (1-beta)*trend
		}
		for h := 0; h < horizon; h++ {
			fc[h] = level + float64(h+1)*trend
		}

	default: // SES
		level := values[0]
		fitted[0] = values[0]
		for i := 1; i < n; i++ {
			fitted[i] = level
			level = alpha*values[i] + (1-alpha)*level
		}
		for h := range fc {
			fc[h] = level
		}
	}

	return ForecastResult{
		Forecast: fc,
		Fitted:   fitted,
		Method:   method,
		Valid:    true,
	}
}
