// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"
)

// warpDistance is the dynamic time warping distance between a and b,
// restricted to a Sakoe–Chiba band of ±window samples and divided by len(a),
// so it reads as a mean per-sample deviation that tolerates small lags.
//
// Algorithm Outline (rolling rows):
//  1. D[0][0] = 0, every other border cell = +∞.
//  2. For i = 1..n, j in [i-window, i+window] ∩ [1, m]:
//     D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j], D[i][j-1], D[i-1][j-1])
//  3. distance = D[n][m] / n.
//
// Only two rows are kept, so memory is O(m) and time O(n·window).
// len(a) and len(b) must be equal; Compare guarantees it.
func warpDistance(a, b []float64, window int) (float64, error) {
	n, m := len(a), len(b)
	if n == 0 || n != m {
		return 0, fmt.Errorf("report: warp: lengths %d and %d: %w", n, m, ErrShapeMismatch)
	}
	if window < 0 {
		window = 0
	}

	inf := math.Inf(1)
	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		lo, hi := max(1, i-window), min(m, i+window)
		// the next row reads curr only within [lo-1, hi+1]
		curr[lo-1] = inf
		for j := lo; j <= hi; j++ {
			curr[j] = math.Abs(a[i-1]-b[j-1]) + min(prev[j], curr[j-1], prev[j-1])
		}
		if hi < m {
			curr[hi+1] = inf
		}
		prev, curr = curr, prev
	}

	return prev[m] / float64(n), nil
}

// warpWindow converts a lag tolerance in seconds to whole samples.
func warpWindow(seconds, fs float64) int {
	return int(math.Round(seconds * fs))
}
