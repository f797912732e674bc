// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense storage and accessors.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/eegica/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{4, 100},
	} {
		tc := tc
		t.Run(fmt.Sprintf("%dx%d", tc.rows, tc.cols), func(t *testing.T) {
			t.Parallel()
			m := MustDense(t, tc.rows, tc.cols)
			require.Equal(t, tc.rows, m.Rows())
			require.Equal(t, tc.cols, m.Cols())
			m.Do(func(i, j int, v float64) bool {
				require.Zerof(t, v, "element [%d,%d] of a new Dense must be 0", i, j)
				return true
			})
		})
	}
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ rows, cols int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.rows, tc.cols)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"ok 2x3", [][]float64{{1, 2, 3}, {4, 5, 6}}, nil},
		{"nil", nil, matrix.ErrBadShape},
		{"zero width", [][]float64{{}}, matrix.ErrBadShape},
		{"ragged", [][]float64{{1, 2}, {3}}, matrix.ErrBadShape},
		{"nan", [][]float64{{1, math.NaN()}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{math.Inf(-1)}}, matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m, err := matrix.NewDenseFromRows(tc.rows)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, m)
				return
			}
			require.NoError(t, err)
			CompareExact(t, tc.rows, m)
		})
	}
}

func TestNewDenseFromRows_DoesNotAlias(t *testing.T) {
	t.Parallel()
	rows := [][]float64{{1, 2}, {3, 4}}
	m := FromRows(t, rows)
	rows[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewDenseFromData(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDenseFromData(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 2}, {3, 4}}, m)

	_, err = matrix.NewDenseFromData(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDenseFromData(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDenseFromData(1, 2, []float64{math.Inf(-1), 0})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_AtSet_Bounds(t *testing.T) {
	t.Parallel()
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7))
	require.Equal(t, 7.0, MustAt(t, m, 1, 2))

	for _, ij := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestDense_CloneIndependence(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	cp := m.CloneDense()
	require.NoError(t, cp.Set(0, 0, -1))
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	viaIface := m.Clone()
	require.NoError(t, viaIface.Set(1, 1, -4))
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

func TestDense_Row(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 42 // copy, not a view
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestDense_ToRows(t *testing.T) {
	t.Parallel()
	in := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := FromRows(t, in)
	require.Equal(t, in, m.ToRows())
}

func TestDense_ZeroRows(t *testing.T) {
	t.Parallel()

	base := [][]float64{{1, 2}, {3, 4}, {5, 6}}
	tests := []struct {
		name    string
		rows    []int
		want    [][]float64
		wantErr error
	}{
		{"nil is no-op", nil, base, nil},
		{"single", []int{1}, [][]float64{{1, 2}, {0, 0}, {5, 6}}, nil},
		{"duplicates", []int{2, 2, 0}, [][]float64{{0, 0}, {3, 4}, {0, 0}}, nil},
		{"out of range leaves data intact", []int{0, 3}, base, matrix.ErrOutOfRange},
		{"negative", []int{-1}, base, matrix.ErrOutOfRange},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := FromRows(t, base)
			err := m.ZeroRows(tc.rows)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			CompareExact(t, tc.want, m)
		})
	}
}

func TestDense_ApplyAndString(t *testing.T) {
	t.Parallel()
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return 2 * v }))
	require.Equal(t, "[2, 4]\n[6, 8]\n", m.String())

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 0 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestIdentity(t *testing.T) {
	t.Parallel()
	id, err := matrix.Identity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id)

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
