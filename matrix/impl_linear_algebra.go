// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication (plain and column-chunked), transpose, inverse and
// tolerance comparisons. All functions perform strict fail-fast validation
// and return clear errors on dimension mismatches.
//
// Purpose:
//   - Keep the product as a primitive: *Dense operands are handed to gonum's
//     BLAS-backed mat.Dense.Mul over the SAME flat buffers (no copies in or out).
//   - Keep a generic At/Set fallback so any Matrix implementation works.
//
// Notes:
//   - All kernels use the central validators and wrap failures via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

// ZeroSum is the initial sum value for accumulation in generic kernels.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul        = "Mul"
	opMulChunked = "MulChunked"
	opInverse    = "Inverse"
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// gonumView exposes the flat buffer of m to gonum without copying.
// Writes through the returned value land in m.
func (m *Dense) gonumView() *mat.Dense { return mat.NewDense(m.r, m.c, m.data) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, wrap the three flat buffers as gonum
//     matrices and call mat.Dense.Mul; otherwise use i→j→k with At/Set.
//
// Behavior highlights:
//   - One allocation for C; operands are never mutated.
//   - Deterministic for a given build: identical inputs give bit-identical output.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c).
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
//
// AI-Hints:
//   - Keep operands as *Dense to reach the BLAS path; wrappers hiding the
//     concrete type fall back to the scalar triple loop.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			res.gonumView().Mul(da.gonumView(), db.gonumView())
			return res, nil
		}
	}

	if err = mulGeneric(a, b, res); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return res, nil
}

// mulGeneric is the interface fallback (i-j-k) writing into res.
func mulGeneric(a, b Matrix, res *Dense) error {
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var (
		i, j, k         int
		av, bv, current float64
		err             error
	)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return fmt.Errorf("At(%d,%d): %w", i, k, err)
				}
				if bv, err = b.At(k, j); err != nil {
					return fmt.Errorf("At(%d,%d): %w", k, j, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return nil
}

// MulChunked computes C = A × B by splitting the columns of B into
// WithWorkers(n) contiguous blocks and multiplying them concurrently.
// Implementation:
//   - Stage 1: same validation as Mul; fall back to Mul for one worker,
//     non-Dense operands, or fewer columns than workers.
//   - Stage 2: block w covers columns [w*c/n, (w+1)*c/n); each goroutine
//     writes only its own column band of C through a gonum slice view.
//
// Behavior highlights:
//   - Each output column depends only on the matching column of B, so the
//     result equals Mul up to floating-point summation order.
//   - A and B are shared read-only between goroutines.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c / workers) wall clock, Space O(r*c).
//
// AI-Hints:
//   - EEG products are short and wide (components × samples); chunk samples,
//     not components.
func MulChunked(a, b Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMulChunked, err)
	}

	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	workers := o.workers
	if workers > b.Cols() {
		workers = b.Cols()
	}
	if !okA || !okB || workers <= 1 {
		return Mul(a, b)
	}

	res, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMulChunked, err)
	}

	ga, gb, gr := da.gonumView(), db.gonumView(), res.gonumView()
	cols := b.Cols()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		j0, j1 := w*cols/workers, (w+1)*cols/workers
		wg.Add(1)
		go func() {
			defer wg.Done()
			dst := gr.Slice(0, res.r, j0, j1).(*mat.Dense)
			dst.Mul(ga, gb.Slice(0, db.r, j0, j1))
		}()
	}
	wg.Wait()

	return res, nil
}

// Inverse returns m⁻¹ for a square, non-singular matrix via gonum (LU with
// partial pivoting). Ill-conditioned inputs are rejected as singular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if m.Rows() != m.Cols() {
		return nil, matrixErrorf(opInverse, ErrNonSquare)
	}

	src, ok := m.(*Dense)
	if !ok {
		src = toDense(m)
	}
	res, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = res.gonumView().Inverse(src.gonumView()); err != nil {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	return res, nil
}

// toDense materializes any Matrix as *Dense; indices are in range by construction.
func toDense(m Matrix) *Dense {
	if d, ok := m.(*Dense); ok {
		return d
	}
	r, c := m.Rows(), m.Cols()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j], _ = m.At(i, j)
		}
	}

	return out
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances are rejected.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	da, db := toDense(a), toDense(b)
	for idx := range da.data {
		if math.Abs(da.data[idx]-db.data[idx]) > atol+rtol*math.Abs(db.data[idx]) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}

// MaxAbsDiff returns max |a(i,j) - b(i,j)| over identically shaped matrices.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}

	da, db := toDense(a), toDense(b)
	var worst float64
	for idx := range da.data {
		if d := math.Abs(da.data[idx] - db.data[idx]); d > worst {
			worst = d
		}
	}

	return worst, nil
}
