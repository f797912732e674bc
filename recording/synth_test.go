// SPDX-License-Identifier: MIT
package recording_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/eegica/recording"
	"github.com/stretchr/testify/require"
)

func TestChannelNames(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"Fpz", "Fz"}, recording.ChannelNames(2))
	require.Equal(t, []string{"Fpz", "Fz", "Cz", "Pz", "Oz", "Iz", "E7", "E8"}, recording.ChannelNames(8))
}

func TestSynthesize(t *testing.T) {
	t.Parallel()
	cfg := recording.DefaultSynthConfig()
	cfg.Channels = 5

	rec, err := recording.Synthesize(cfg)
	require.NoError(t, err)
	require.Equal(t, 5, rec.NumChannels())
	require.Equal(t, 5, rec.NumComponents())
	require.Equal(t, cfg.Samples, rec.NumSamples())
	require.Equal(t, cfg.Fs, rec.SamplingRate())
	require.Equal(t, "Fpz", rec.Channels()[0])

	again, err := recording.Synthesize(cfg)
	require.NoError(t, err)
	require.Equal(t, rec.EEG().ToRows(), again.EEG().ToRows())

	d, err := rec.Decomposition()
	require.NoError(t, err)
	rt, err := d.RoundTripError(rec.EEG())
	require.NoError(t, err)
	require.Less(t, rt, 1e-9)

	// removing the blink component flattens the frontal channel most
	raw, err := rec.SelectChannels([]int{0})
	require.NoError(t, err)
	res, err := d.Clean(rec.EEG(), []int{0})
	require.NoError(t, err)
	front, err := res.Cleaned.Row(0)
	require.NoError(t, err)
	rawFront, err := raw.Row(0)
	require.NoError(t, err)
	require.Less(t, peak(front), peak(rawFront)/2)
}

func TestSynthesize_InvalidConfig(t *testing.T) {
	t.Parallel()
	for _, mut := range []func(*recording.SynthConfig){
		func(c *recording.SynthConfig) { c.Channels = 0 },
		func(c *recording.SynthConfig) { c.Samples = 1 },
		func(c *recording.SynthConfig) { c.Fs = 0 },
		func(c *recording.SynthConfig) { c.BlinkWidth = -1 },
	} {
		cfg := recording.DefaultSynthConfig()
		mut(&cfg)
		_, err := recording.Synthesize(cfg)
		require.ErrorIs(t, err, recording.ErrSynthConfig)
	}
}

func peak(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		m = math.Max(m, math.Abs(x))
	}

	return m
}
