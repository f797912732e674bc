// SPDX-License-Identifier: MIT

package report

import (
	"math"
	"time"
)

// Defaults.
const (
	// DefaultBandLow and DefaultBandHigh bound the blink band in Hz.
	DefaultBandLow  = 0.5
	DefaultBandHigh = 4.0

	// MaxAttenuationDB caps AttenuationDB when the cleaned band is silent.
	MaxAttenuationDB = 200.0

	// DefaultWarpWindow is the lag, in seconds, WarpDistance tolerates.
	DefaultWarpWindow = 0.04
)

const (
	panicBandInvalid = "report: WithBand: need 0 <= lo < hi, both finite"
	panicWarpInvalid = "report: WithWarpWindow: seconds must be finite and >= 0"
)

// Option configures Compare.
type Option func(*options)

type options struct {
	lo, hi     float64
	warp       float64
	suppressed []int
	now        func() time.Time
}

// WithBand sets the frequency band, in Hz, used for the band power columns.
// Panics when the band is empty or not finite.
func WithBand(lo, hi float64) Option {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo < 0 || hi <= lo {
		panic(panicBandInvalid)
	}

	return func(o *options) { o.lo, o.hi = lo, hi }
}

// WithWarpWindow sets how far, in seconds, the warp distance may shift one
// trace against the other. Zero turns it into the mean absolute difference.
func WithWarpWindow(seconds float64) Option {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		panic(panicWarpInvalid)
	}

	return func(o *options) { o.warp = seconds }
}

// WithSuppressed records which components were removed to produce the
// cleaned matrix. It only annotates the report.
func WithSuppressed(components []int) Option {
	cp := append([]int(nil), components...)

	return func(o *options) { o.suppressed = cp }
}

// WithClock overrides the time source for Report.Created.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

func gatherOptions(user ...Option) options {
	o := options{lo: DefaultBandLow, hi: DefaultBandHigh, warp: DefaultWarpWindow, now: time.Now}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
