// SPDX-License-Identifier: MIT
package ica_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/eegica/matrix"
	"github.com/stretchr/testify/require"
)

// randDense returns an r×c matrix of standard-normal values from seed.
func randDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, r*c)
	for i := range data {
		data[i] = rng.NormFloat64()
	}
	m, err := matrix.NewDenseFromData(r, c, data)
	require.NoError(t, err)

	return m
}

// syntheticEEG builds channels × samples of mixed sinusoids in [-1,1].
func syntheticEEG(t *testing.T, channels, samples int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(channels, samples)
	require.NoError(t, err)
	for i := 0; i < channels; i++ {
		for j := 0; j < samples; j++ {
			v := 0.5*math.Sin(2*math.Pi*float64((i+1)*j)/float64(samples)) +
				0.5*math.Cos(2*math.Pi*float64(j)/float64(7+i))
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// invertiblePair returns a well-conditioned n×n mixing matrix and its inverse.
func invertiblePair(t *testing.T, n int, seed int64) (mixing, unmixing *matrix.Dense) {
	t.Helper()
	mixing = randDense(t, n, n, seed)
	// diagonal dominance keeps the condition number small
	for i := 0; i < n; i++ {
		v, err := mixing.At(i, i)
		require.NoError(t, err)
		require.NoError(t, mixing.Set(i, i, v+float64(2*n)))
	}
	unmixing, err := matrix.Inverse(mixing)
	require.NoError(t, err)

	return mixing, unmixing
}

func identity(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	id, err := matrix.Identity(n)
	require.NoError(t, err)

	return id
}

func rowOf(t *testing.T, m *matrix.Dense, i int) []float64 {
	t.Helper()
	row, err := m.Row(i)
	require.NoError(t, err)

	return row
}
