// Package report compares a recording before and after artifact removal.
//
// For every channel it measures how much signal was taken away (RMS of the
// residual), how similar the cleaned trace still is to the raw one (Pearson
// correlation), how exactly the decomposition reproduces the input when no
// component is removed (round-trip error), and how much power in the blink
// band (0.5–4 Hz by default) was attenuated.
//
// Band power is estimated from a single Hann-windowed, zero-padded FFT
// periodogram of the mean-removed channel. It is scaled so that a sinusoid
// of amplitude A inside the band reports ≈ A²/2.
//
// Reports are plain values: Encode writes YAML, Summary a short table.
package report
