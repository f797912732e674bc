// SPDX-License-Identifier: MIT
package ica_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/eegica/ica"
	"github.com/katalvlaran/eegica/matrix"
	"github.com/stretchr/testify/require"
)

func TestTransforms_ShapePropagation(t *testing.T) {
	t.Parallel()

	tests := []struct{ channels, components, samples int }{
		{4, 4, 100},
		{8, 3, 250},
		{1, 1, 1},
		{32, 16, 512},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(fmt.Sprintf("%dch_%dcomp_%dsamp", tc.channels, tc.components, tc.samples), func(t *testing.T) {
			t.Parallel()
			x := randDense(t, tc.channels, tc.samples, 1)
			u := randDense(t, tc.components, tc.channels, 2)
			m := randDense(t, tc.channels, tc.components, 3)

			act, err := ica.TransformToSourceSpace(x, u)
			require.NoError(t, err)
			require.Equal(t, tc.components, act.Rows())
			require.Equal(t, tc.samples, act.Cols())

			back, err := ica.TransformToElectrodeSpace(act, m)
			require.NoError(t, err)
			require.Equal(t, tc.channels, back.Rows())
			require.Equal(t, tc.samples, back.Cols())
		})
	}
}

func TestTransformToSourceSpace_Mismatch(t *testing.T) {
	t.Parallel()
	x := randDense(t, 4, 100, 1)
	u := randDense(t, 3, 3, 2) // 3-channel unmixing against 4-channel data

	act, err := ica.TransformToSourceSpace(x, u)
	require.ErrorIs(t, err, ica.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.Nil(t, act)
	require.Contains(t, err.Error(), "TransformToSourceSpace")
}

func TestTransformToElectrodeSpace_Mismatch(t *testing.T) {
	t.Parallel()
	act := randDense(t, 5, 100, 1)
	m := randDense(t, 4, 4, 2)

	out, err := ica.TransformToElectrodeSpace(act, m)
	require.ErrorIs(t, err, ica.ErrShapeMismatch)
	require.Nil(t, out)
	require.Contains(t, err.Error(), "TransformToElectrodeSpace")
}

func TestTransforms_NilOperands(t *testing.T) {
	t.Parallel()
	x := randDense(t, 2, 2, 1)

	_, err := ica.TransformToSourceSpace(nil, x)
	require.ErrorIs(t, err, ica.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = ica.TransformToElectrodeSpace(x, typedNil)
	require.ErrorIs(t, err, ica.ErrShapeMismatch)
}

func TestTransforms_RoundTripIdentity(t *testing.T) {
	t.Parallel()
	for _, n := range []int{2, 4, 16} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			x := syntheticEEG(t, n, 300)
			mixing, unmixing := invertiblePair(t, n, int64(n))

			act, err := ica.TransformToSourceSpace(x, unmixing)
			require.NoError(t, err)
			back, err := ica.TransformToElectrodeSpace(act, mixing)
			require.NoError(t, err)

			diff, err := matrix.MaxAbsDiff(back, x)
			require.NoError(t, err)
			require.Less(t, diff, 1e-6)
		})
	}
}

// TestTransforms_RankLoss: with fewer components than channels the round
// trip is the orthogonal projection onto the mixing column space.
func TestTransforms_RankLoss(t *testing.T) {
	t.Parallel()
	// mixing has orthonormal columns e0 and e1 in R^3; unmixing = mixingᵀ.
	mixing, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}, {0, 0}})
	require.NoError(t, err)
	unmixing, err := matrix.NewDenseFromRows([][]float64{{1, 0, 0}, {0, 1, 0}})
	require.NoError(t, err)
	x, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	act, err := ica.TransformToSourceSpace(x, unmixing)
	require.NoError(t, err)
	back, err := ica.TransformToElectrodeSpace(act, mixing)
	require.NoError(t, err)

	require.Equal(t, [][]float64{{1, 2}, {3, 4}, {0, 0}}, back.ToRows())
}

func TestTransforms_ProductWorkersMatchSerial(t *testing.T) {
	t.Parallel()
	x := randDense(t, 8, 2048, 5)
	u := randDense(t, 8, 8, 6)

	serial, err := ica.TransformToSourceSpace(x, u)
	require.NoError(t, err)
	chunked, err := ica.TransformToSourceSpace(x, u, ica.WithProductWorkers(4))
	require.NoError(t, err)

	ok, err := matrix.AllClose(chunked, serial, 0, 1e-12)
	require.NoError(t, err)
	require.True(t, ok)
	require.Panics(t, func() { ica.WithProductWorkers(0) })
}

func TestTransforms_Deterministic(t *testing.T) {
	t.Parallel()
	x := randDense(t, 6, 400, 7)
	u := randDense(t, 6, 6, 8)

	a, err := ica.TransformToSourceSpace(x, u)
	require.NoError(t, err)
	b, err := ica.TransformToSourceSpace(x, u)
	require.NoError(t, err)
	require.Equal(t, a.ToRows(), b.ToRows())
}
