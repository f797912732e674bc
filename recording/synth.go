// SPDX-License-Identifier: MIT

package recording

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/eegica/matrix"
)

// Synthesizer defaults.
const (
	DefaultSynthChannels = 4
	DefaultSynthSamples  = 1000
	DefaultSynthFs       = 250.0
	DefaultBlinkEvery    = 2.0 // seconds between blinks
	DefaultBlinkWidth    = 0.1 // blink Gaussian sigma, seconds
	DefaultBlinkAmp      = 8.0
)

// SynthConfig describes a synthetic recording. Component 0 is always the
// blink source; the others are sinusoids plus a little noise.
type SynthConfig struct {
	Channels   int     `validate:"min=1,max=256"`
	Samples    int     `validate:"min=2"`
	Fs         float64 `validate:"gt=0"`
	BlinkEvery float64 `validate:"gt=0"`
	BlinkWidth float64 `validate:"gt=0"`
	BlinkAmp   float64 `validate:"gte=0"`
	Seed       uint64
}

// DefaultSynthConfig returns a 4-channel, 4-second recording at 250 Hz.
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		Channels:   DefaultSynthChannels,
		Samples:    DefaultSynthSamples,
		Fs:         DefaultSynthFs,
		BlinkEvery: DefaultBlinkEvery,
		BlinkWidth: DefaultBlinkWidth,
		BlinkAmp:   DefaultBlinkAmp,
		Seed:       1,
	}
}

// ErrSynthConfig indicates an unusable SynthConfig.
var ErrSynthConfig = errors.New("recording: invalid synth config")

var synthValidate = validator.New()

// tenTwenty are the midline 10-20 positions, front to back.
var tenTwenty = []string{"Fpz", "Fz", "Cz", "Pz", "Oz", "Iz"}

// ChannelNames returns n channel labels: the midline 10-20 sites first,
// then E7, E8, ...
func ChannelNames(n int) []string {
	out := make([]string, n)
	for i := range out {
		if i < len(tenTwenty) {
			out[i] = tenTwenty[i]
		} else {
			out[i] = fmt.Sprintf("E%d", i+1)
		}
	}

	return out
}

// Synthesize builds a recording with as many components as channels.
// The mixing matrix is row diagonally dominant, so it is always invertible,
// and its first column decays from the front channel backwards, the way a
// blink loads on frontal electrodes. The unmixing matrix is its exact inverse.
// The same config always yields the same recording.
func Synthesize(cfg SynthConfig) (*Recording, error) {
	if err := synthValidate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthConfig, err)
	}
	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	n := cfg.Channels

	sources, err := matrix.NewDense(n, cfg.Samples)
	if err != nil {
		return nil, err
	}
	freqs := make([]float64, n)
	for k := 1; k < n; k++ {
		freqs[k] = 6 + 14*rng.Float64() // theta to beta
	}
	err = sources.Apply(func(k, j int, _ float64) float64 {
		t := float64(j) / cfg.Fs
		if k == 0 {
			return cfg.BlinkAmp * blinkTrain(t, cfg.BlinkEvery, cfg.BlinkWidth)
		}
		return math.Sin(2*math.Pi*freqs[k]*t) + 0.05*rng.NormFloat64()
	})
	if err != nil {
		return nil, err
	}

	mixing, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		var off float64
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			v := 0.5 * rng.Float64()
			if k == 0 {
				v = 2 / float64(1+i)
			}
			off += v
			if err = mixing.Set(i, k, v); err != nil {
				return nil, err
			}
		}
		if err = mixing.Set(i, i, off+1); err != nil {
			return nil, err
		}
	}

	unmixing, err := matrix.Inverse(mixing)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	eeg, err := matrix.Mul(mixing, sources)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	return newRecording("synthetic", "uV", cfg.Fs, ChannelNames(n), eeg, mixing, unmixing)
}

// blinkTrain is a sum of unit Gaussian bumps centred every period seconds,
// starting half a period in.
func blinkTrain(t, period, sigma float64) float64 {
	c := period * (math.Floor(t/period) + 0.5)
	var v float64
	for _, centre := range []float64{c - period, c, c + period} {
		d := (t - centre) / sigma
		v += math.Exp(-0.5 * d * d)
	}

	return v
}
