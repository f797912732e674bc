// SPDX-License-Identifier: MIT
package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWarpDistance(t *testing.T) {
	t.Parallel()

	a := []float64{0, 1, 2, 3, 2, 1, 0, 0}
	shifted := []float64{0, 0, 1, 2, 3, 2, 1, 0}

	tests := []struct {
		name   string
		a, b   []float64
		window int
		want   float64
	}{
		{"identical", a, a, 3, 0},
		{"window zero is mean abs diff", a, shifted, 0, 6.0 / 8},
		{"one-sample lag absorbed", a, shifted, 1, 0},
		{"negative window clamps to zero", a, shifted, -2, 6.0 / 8},
		{"single sample", []float64{2}, []float64{5}, 4, 3},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := warpDistance(tc.a, tc.b, tc.window)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestWarpDistance_Errors(t *testing.T) {
	t.Parallel()
	_, err := warpDistance(nil, nil, 1)
	require.ErrorIs(t, err, ErrShapeMismatch)
	_, err = warpDistance([]float64{1, 2}, []float64{1}, 1)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestWarpWindow(t *testing.T) {
	t.Parallel()
	require.Equal(t, 10, warpWindow(0.04, 250))
	require.Equal(t, 0, warpWindow(0, 250))
}
