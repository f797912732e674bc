// SPDX-License-Identifier: MIT
package ica_test

import (
	"testing"

	"github.com/katalvlaran/eegica/ica"
	"github.com/katalvlaran/eegica/matrix"
	"github.com/stretchr/testify/require"
)

func TestSuppressSources_EmptySetIsValueCopy(t *testing.T) {
	t.Parallel()
	a := randDense(t, 5, 50, 1)

	for _, set := range [][]int{nil, {}} {
		got, err := ica.SuppressSources(a, set)
		require.NoError(t, err)
		require.Equal(t, a.ToRows(), got.ToRows())
		require.NotSame(t, a, got)
	}
}

func TestSuppressSources_ZeroingCompleteness(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		remove []int
	}{
		{"first", []int{0}},
		{"last", []int{9}},
		{"several", []int{1, 4, 7}},
		{"duplicates", []int{3, 3, 3}},
		{"all", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := randDense(t, 10, 64, 2)
			got, err := ica.SuppressSources(a, tc.remove)
			require.NoError(t, err)

			removed := map[int]bool{}
			for _, i := range tc.remove {
				removed[i] = true
			}
			for i := 0; i < a.Rows(); i++ {
				row := rowOf(t, got, i)
				if removed[i] {
					for j, v := range row {
						require.Equalf(t, 0.0, v, "row %d sample %d", i, j)
					}
					continue
				}
				require.Equal(t, rowOf(t, a, i), row, "row %d must be unchanged", i)
			}
		})
	}
}

func TestSuppressSources_NonMutation(t *testing.T) {
	t.Parallel()
	a := randDense(t, 4, 32, 3)
	before := a.ToRows()

	cleaned, err := ica.SuppressSources(a, []int{0, 2})
	require.NoError(t, err)
	baseline, err := ica.SuppressSources(a, nil)
	require.NoError(t, err)

	require.Equal(t, before, a.ToRows())
	require.Equal(t, before, baseline.ToRows())
	require.NotEqual(t, cleaned.ToRows(), baseline.ToRows())
}

func TestSuppressSources_OutOfRange(t *testing.T) {
	t.Parallel()
	a := randDense(t, 10, 20, 4)
	before := a.ToRows()

	for _, set := range [][]int{{10}, {0, 10}, {-1}, {2, 3, 99}} {
		got, err := ica.SuppressSources(a, set)
		require.ErrorIs(t, err, ica.ErrIndexOutOfRange)
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.Nil(t, got)
	}
	require.Equal(t, before, a.ToRows())

	_, err := ica.SuppressSources(a, []int{10})
	require.Contains(t, err.Error(), "row 10")
}

func TestSuppressSources_Nil(t *testing.T) {
	t.Parallel()
	_, err := ica.SuppressSources(nil, []int{0})
	require.ErrorIs(t, err, ica.ErrShapeMismatch)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestPipeline_IdentityScenario: 4 channels, 100 samples, identity
// mixing/unmixing; removing component 2 zeroes electrode row 2 only.
func TestPipeline_IdentityScenario(t *testing.T) {
	t.Parallel()
	x := syntheticEEG(t, 4, 100)
	id := identity(t, 4)

	act, err := ica.TransformToSourceSpace(x, id)
	require.NoError(t, err)
	edited, err := ica.SuppressSources(act, []int{2})
	require.NoError(t, err)
	for _, v := range rowOf(t, edited, 2) {
		require.Equal(t, 0.0, v)
	}

	cleaned, err := ica.TransformToElectrodeSpace(edited, id)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		if i == 2 {
			require.Equal(t, make([]float64, 100), rowOf(t, cleaned, i))
			continue
		}
		require.Equal(t, rowOf(t, x, i), rowOf(t, cleaned, i))
	}
}

func TestParseIndexSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"   ", nil, false},
		{"3", []int{3}, false},
		{"0, 3,7", []int{0, 3, 7}, false},
		{"7 3\t0 3", []int{0, 3, 7}, false},
		{"1,,2", []int{1, 2}, false},
		{"a", nil, true},
		{"-1", []int{-1}, false},
		{"3,-1", []int{-1, 3}, false},
		{"1.5", nil, true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()
			got, err := ica.ParseIndexSet(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, ica.ErrInvalidIndexSet)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
