// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"
	"math"

	"github.com/katalvlaran/eegica/ica"
	"github.com/katalvlaran/eegica/matrix"
)

// Recording is one loaded EEG bundle. All shapes have been checked against
// each other; the zero value is not usable, build one with Load, Decode or New.
type Recording struct {
	subject  string
	units    string
	fs       float64
	channels []string
	index    map[string]int
	eeg      *matrix.Dense // channels × samples
	mixing   *matrix.Dense // channels × components
	unmixing *matrix.Dense // components × channels
}

// Meta carries the optional descriptive fields of a bundle.
type Meta struct {
	Subject string
	Units   string
}

// New assembles a Recording from in-memory parts and applies the same checks
// as Load. The matrices are copied.
func New(meta Meta, fs float64, channels []string, eeg, mixing, unmixing matrix.Matrix) (*Recording, error) {
	var parts [3]*matrix.Dense
	for i, m := range []matrix.Matrix{eeg, mixing, unmixing} {
		d, err := matrix.DenseCopy(m)
		if err != nil {
			return nil, formatErrorf("%s: %v", fieldNames[i], err)
		}
		parts[i] = d
	}
	names := append([]string(nil), channels...)

	return newRecording(meta.Subject, meta.Units, fs, names, parts[0], parts[1], parts[2])
}

var fieldNames = [...]string{"eeg", "mixing_matrix", "unmixing_matrix"}

// newRecording takes ownership of its arguments and checks cross-field shapes.
func newRecording(subject, units string, fs float64, channels []string, eeg, mixing, unmixing *matrix.Dense) (*Recording, error) {
	if !(fs > 0) || math.IsInf(fs, 1) {
		return nil, formatErrorf("fs: must be a positive finite rate, got %v", fs)
	}

	index := make(map[string]int, len(channels))
	for i, name := range channels {
		if name == "" {
			return nil, formatErrorf("channels[%d]: empty name", i)
		}
		if j, dup := index[name]; dup {
			return nil, formatErrorf("channels[%d]: %q repeats channels[%d]", i, name, j)
		}
		index[name] = i
	}

	nCh := len(channels)
	if eeg.Rows() != nCh {
		return nil, formatErrorf("eeg: %d rows for %d channels", eeg.Rows(), nCh)
	}
	if mixing.Rows() != nCh {
		return nil, formatErrorf("mixing_matrix: %d rows for %d channels", mixing.Rows(), nCh)
	}
	if unmixing.Cols() != nCh {
		return nil, formatErrorf("unmixing_matrix: %d columns for %d channels", unmixing.Cols(), nCh)
	}
	if unmixing.Rows() != mixing.Cols() {
		return nil, formatErrorf("unmixing_matrix: %d rows for %d mixing components",
			unmixing.Rows(), mixing.Cols())
	}

	return &Recording{
		subject:  subject,
		units:    units,
		fs:       fs,
		channels: channels,
		index:    index,
		eeg:      eeg,
		mixing:   mixing,
		unmixing: unmixing,
	}, nil
}

// Subject returns the optional subject label.
func (r *Recording) Subject() string { return r.subject }

// Units returns the optional amplitude unit label.
func (r *Recording) Units() string { return r.units }

// SamplingRate returns fs in Hz.
func (r *Recording) SamplingRate() float64 { return r.fs }

// NumChannels returns the electrode count.
func (r *Recording) NumChannels() int { return len(r.channels) }

// NumSamples returns the number of time points per channel.
func (r *Recording) NumSamples() int { return r.eeg.Cols() }

// NumComponents returns the number of independent components.
func (r *Recording) NumComponents() int { return r.mixing.Cols() }

// Duration returns the recording length in seconds.
func (r *Recording) Duration() float64 { return float64(r.eeg.Cols()) / r.fs }

// Channels returns a copy of the channel names in row order.
func (r *Recording) Channels() []string { return append([]string(nil), r.channels...) }

// EEG returns a copy of the electrode data (channels × samples).
func (r *Recording) EEG() *matrix.Dense { return r.eeg.CloneDense() }

// Mixing returns a copy of the mixing matrix (channels × components).
func (r *Recording) Mixing() *matrix.Dense { return r.mixing.CloneDense() }

// Unmixing returns a copy of the unmixing matrix (components × channels).
func (r *Recording) Unmixing() *matrix.Dense { return r.unmixing.CloneDense() }

// ChannelIndex returns the row of the named channel.
func (r *Recording) ChannelIndex(name string) (int, error) {
	i, ok := r.index[name]
	if !ok {
		return -1, fmt.Errorf("ChannelIndex(%q): %w", name, ErrUnknownChannel)
	}

	return i, nil
}

// SelectChannels returns the electrode rows at indices, in the given order.
// Repeated indices give repeated rows.
func (r *Recording) SelectChannels(indices []int) (*matrix.Dense, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("SelectChannels: no channels: %w", ErrUnknownChannel)
	}
	n := r.eeg.Cols()
	data := make([]float64, 0, len(indices)*n)
	for _, i := range indices {
		row, err := r.eeg.Row(i)
		if err != nil {
			return nil, fmt.Errorf("SelectChannels: index %d of %d: %w", i, len(r.channels), ErrUnknownChannel)
		}
		data = append(data, row...)
	}

	return matrix.NewDenseFromData(len(indices), n, data)
}

// SelectChannelsByName resolves names with ChannelIndex and calls SelectChannels.
func (r *Recording) SelectChannelsByName(names []string) (*matrix.Dense, error) {
	indices := make([]int, len(names))
	for k, name := range names {
		i, err := r.ChannelIndex(name)
		if err != nil {
			return nil, err
		}
		indices[k] = i
	}

	return r.SelectChannels(indices)
}

// SampleTimes returns the time of every sample in seconds, starting at 0.
func (r *Recording) SampleTimes() []float64 {
	ts := make([]float64, r.eeg.Cols())
	for i := range ts {
		ts[i] = float64(i) / r.fs
	}

	return ts
}

// Decomposition pairs the bundle's mixing and unmixing matrices.
func (r *Recording) Decomposition(opts ...ica.Option) (*ica.Decomposition, error) {
	return ica.NewDecomposition(r.mixing, r.unmixing, opts...)
}
