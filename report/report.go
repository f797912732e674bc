// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"
	"time"

	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/google/uuid"
	"github.com/katalvlaran/eegica/matrix"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// Report compares one raw recording with its cleaned reconstruction.
type Report struct {
	RunID        string         `yaml:"run_id"`
	Created      time.Time      `yaml:"created"`
	SamplingRate float64        `yaml:"fs"`
	NumChannels  int            `yaml:"channels"`
	NumSamples   int            `yaml:"samples"`
	Suppressed   []int          `yaml:"suppressed,flow"`
	Band         [2]float64     `yaml:"band_hz,flow"`
	WarpWindow   float64        `yaml:"warp_window_s"`
	PerChannel   []ChannelStats `yaml:"per_channel"`
}

// ChannelStats are the metrics of one electrode.
type ChannelStats struct {
	Name             string  `yaml:"name"`
	RMSRaw           float64 `yaml:"rms_raw"`
	RMSCleaned       float64 `yaml:"rms_cleaned"`
	RMSResidual      float64 `yaml:"rms_residual"`
	PeakRaw          float64 `yaml:"peak_raw"`
	PeakCleaned      float64 `yaml:"peak_cleaned"`
	Correlation      float64 `yaml:"correlation"`
	WarpDistance     float64 `yaml:"warp_distance"`
	RoundTripError   float64 `yaml:"round_trip_error"`
	BandPowerRaw     float64 `yaml:"band_power_raw"`
	BandPowerCleaned float64 `yaml:"band_power_cleaned"`
	AttenuationDB    float64 `yaml:"attenuation_db"`
}

// Compare measures raw against cleaned, channel by channel.
//
// Inputs:
//   - raw: the electrode data as loaded (channels × samples).
//   - reconstructed: raw passed through the decomposition with nothing
//     removed; only used for RoundTripError.
//   - cleaned: the reconstruction with artifacts removed.
//   - channels: one name per row.
//   - fs: sampling rate in Hz.
//
// Errors:
//   - ErrShapeMismatch when the three matrices differ in shape or the
//     channel list has the wrong length.
//   - ErrInvalidBand when the configured band does not fit fs or the
//     recording has fewer than two samples.
func Compare(raw, reconstructed, cleaned *matrix.Dense, channels []string, fs float64, opts ...Option) (*Report, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateSameShape(raw, reconstructed); err != nil {
		return nil, fmt.Errorf("Compare: reconstructed: %w: %w", ErrShapeMismatch, err)
	}
	if err := matrix.ValidateSameShape(raw, cleaned); err != nil {
		return nil, fmt.Errorf("Compare: cleaned: %w: %w", ErrShapeMismatch, err)
	}
	if len(channels) != raw.Rows() {
		return nil, fmt.Errorf("Compare: %d channel names for %d rows: %w", len(channels), raw.Rows(), ErrShapeMismatch)
	}
	if err := checkBand(fs, o.lo, o.hi); err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	n := raw.Cols()
	p, err := newPeriodogram(n)
	if err != nil {
		return nil, fmt.Errorf("Compare: %w", err)
	}

	rep := &Report{
		RunID:        uuid.NewString(),
		Created:      o.now().UTC(),
		SamplingRate: fs,
		NumChannels:  raw.Rows(),
		NumSamples:   n,
		Suppressed:   o.suppressed,
		Band:         [2]float64{o.lo, o.hi},
		WarpWindow:   o.warp,
		PerChannel:   make([]ChannelStats, raw.Rows()),
	}
	if rep.Suppressed == nil {
		rep.Suppressed = []int{}
	}

	window := warpWindow(o.warp, fs)
	residual := make([]float64, n)
	for i := range rep.PerChannel {
		x, _ := raw.Row(i)
		y, _ := cleaned.Row(i)
		z, _ := reconstructed.Row(i)

		// residual = x - y
		vecmath.ScaleBlock(residual, y, -1)
		vecmath.AddBlockInPlace(residual, x)

		cs := ChannelStats{
			Name:           channels[i],
			RMSRaw:         rms(x),
			RMSCleaned:     rms(y),
			RMSResidual:    rms(residual),
			PeakRaw:        peakAbs(x),
			PeakCleaned:    peakAbs(y),
			Correlation:    correlation(x, y),
			RoundTripError: floats.Distance(x, z, math.Inf(1)),
		}
		if cs.BandPowerRaw, err = p.bandPower(x, fs, o.lo, o.hi); err != nil {
			return nil, fmt.Errorf("Compare: channel %s: %w", channels[i], err)
		}
		if cs.BandPowerCleaned, err = p.bandPower(y, fs, o.lo, o.hi); err != nil {
			return nil, fmt.Errorf("Compare: channel %s: %w", channels[i], err)
		}
		cs.AttenuationDB = attenuationDB(cs.BandPowerRaw, cs.BandPowerCleaned)
		if cs.WarpDistance, err = warpDistance(x, y, window); err != nil {
			return nil, fmt.Errorf("Compare: channel %s: %w", channels[i], err)
		}
		rep.PerChannel[i] = cs
	}

	return rep, nil
}

// MeanAttenuationDB averages AttenuationDB over all channels.
func (r *Report) MeanAttenuationDB() float64 {
	if len(r.PerChannel) == 0 {
		return 0
	}
	var sum float64
	for _, c := range r.PerChannel {
		sum += c.AttenuationDB
	}

	return sum / float64(len(r.PerChannel))
}

// MaxRoundTripError is the worst round-trip error over all channels.
func (r *Report) MaxRoundTripError() float64 {
	var m float64
	for _, c := range r.PerChannel {
		m = math.Max(m, c.RoundTripError)
	}

	return m
}

// Encode writes r as a YAML document.
func (r *Report) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("report: encode: %w", err)
	}

	return enc.Close()
}

// Summary renders one aligned line per channel.
func (r *Report) Summary() string {
	var b strings.Builder
	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "channel\trms raw\trms clean\tcorr\twarp\tband raw\tband clean\tatten dB\n")
	for _, c := range r.PerChannel {
		fmt.Fprintf(tw, "%s\t%.4g\t%.4g\t%.3f\t%.4g\t%.4g\t%.4g\t%.1f\n",
			c.Name, c.RMSRaw, c.RMSCleaned, c.Correlation, c.WarpDistance,
			c.BandPowerRaw, c.BandPowerCleaned, c.AttenuationDB)
	}
	_ = tw.Flush()

	return b.String()
}

func rms(x []float64) float64 {
	return math.Sqrt(floats.Dot(x, x) / float64(len(x)))
}

func peakAbs(x []float64) float64 {
	return math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x)))
}

// correlation is Pearson's r, defined as 0 when either side is constant.
func correlation(x, y []float64) float64 {
	r := stat.Correlation(x, y, nil)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}

	return r
}

// attenuationDB is 10·log10(before/after), clamped to ±MaxAttenuationDB.
func attenuationDB(before, after float64) float64 {
	switch {
	case before == 0 && after == 0:
		return 0
	case after == 0:
		return MaxAttenuationDB
	case before == 0:
		return -MaxAttenuationDB
	}
	db := 10 * math.Log10(before/after)

	return math.Max(-MaxAttenuationDB, math.Min(MaxAttenuationDB, db))
}
