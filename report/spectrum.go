// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// periodogram holds the FFT plan, window and scratch buffers for one signal
// length. It is not safe for concurrent use.
type periodogram struct {
	n, size int
	norm    float64 // N_fft * Σw²
	window  []float64
	plan    *algofft.Plan[complex128]
	buf     []float64
	in, out []complex128
	re, im  []float64
	power   []float64
}

// newPeriodogram prepares a Hann-windowed periodogram for n-sample signals,
// zero-padded to the next power of two.
func newPeriodogram(n int) (*periodogram, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: %d samples, need at least 2", ErrInvalidBand, n)
	}
	size := nextPowerOf2(n)
	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("report: fft plan of size %d: %w", size, err)
	}

	w := hann(n)
	half := size/2 + 1

	return &periodogram{
		n:      n,
		size:   size,
		norm:   float64(size) * floats.Dot(w, w),
		window: w,
		plan:   plan,
		buf:    make([]float64, n),
		in:     make([]complex128, size),
		out:    make([]complex128, size),
		re:     make([]float64, half),
		im:     make([]float64, half),
		power:  make([]float64, half),
	}, nil
}

// bandPower returns the power of x between lo and hi Hz, both inclusive.
func (p *periodogram) bandPower(x []float64, fs, lo, hi float64) (float64, error) {
	if len(x) != p.n {
		return 0, fmt.Errorf("%w: %d samples, plan built for %d", ErrInvalidBand, len(x), p.n)
	}

	copy(p.buf, x)
	floats.AddConst(-floats.Sum(p.buf)/float64(p.n), p.buf)
	vecmath.MulBlockInPlace(p.buf, p.window)

	clear(p.in)
	for i, v := range p.buf {
		p.in[i] = complex(v, 0)
	}
	if err := p.plan.Forward(p.out, p.in); err != nil {
		return 0, fmt.Errorf("report: fft: %w", err)
	}
	for k := range p.re {
		p.re[k], p.im[k] = real(p.out[k]), imag(p.out[k])
	}
	vecmath.Power(p.power, p.re, p.im)

	df := fs / float64(p.size)
	nyquist := len(p.power) - 1
	var sum float64
	for k, pk := range p.power {
		f := float64(k) * df
		if f < lo || f > hi {
			continue
		}
		if k == 0 || k == nyquist {
			sum += pk
		} else {
			sum += 2 * pk
		}
	}

	return sum / p.norm, nil
}

// BandPower returns the power of x between lo and hi Hz, sampled at fs.
//
// Implementation:
//   - Stage 1: remove the mean, apply a Hann window, zero-pad to a power of two.
//   - Stage 2: FFT, one-sided |X[k]|², summed over bins with lo <= f <= hi.
//
// Behavior highlights:
//   - Normalised by N_fft·Σw², so a sinusoid of amplitude A inside the band
//     reports ≈ A²/2 and silence reports 0.
//
// Errors:
//   - ErrInvalidBand when fs is not positive, the band leaves [0, fs/2],
//     or x has fewer than two samples.
//
// Complexity:
//   - Time O(N log N), Space O(N).
func BandPower(x []float64, fs, lo, hi float64) (float64, error) {
	if err := checkBand(fs, lo, hi); err != nil {
		return 0, err
	}
	p, err := newPeriodogram(len(x))
	if err != nil {
		return 0, err
	}

	return p.bandPower(x, fs, lo, hi)
}

func checkBand(fs, lo, hi float64) error {
	if !(fs > 0) || math.IsInf(fs, 0) {
		return fmt.Errorf("%w: sampling rate %v", ErrInvalidBand, fs)
	}
	if !(lo >= 0) || !(hi > lo) || hi > fs/2 {
		return fmt.Errorf("%w: [%v, %v] Hz not inside [0, %v]", ErrInvalidBand, lo, hi, fs/2)
	}

	return nil
}

// hann returns the symmetric Hann window of length n.
func hann(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for i := range w {
		w[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
	}

	return w
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
