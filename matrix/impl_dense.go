// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): the flat
//     data slice is handed to gonum without copying.
//   - Use Clone before any in-place edit (ZeroRows, Apply) when the input is still
//     referenced elsewhere.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(c); ZeroRows: O(k*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxZeroRows = "ZeroRows" // method tag used in error wrappers
	ctxFromRows = "NewDenseFromRows"
	ctxFromData = "NewDenseFromData"
	ctxCopy     = "DenseCopy"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - every write path (constructors, Set, Apply) rejects NaN and ±Inf.
type Dense struct {
	r, c int       // row and column counts (>0 for every public constructor)
	data []float64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]float64, rows*cols),
	}, nil
}

// NewDenseFromRows copies a slice-of-rows literal into a new Dense.
// MAIN DESCRIPTION:
//   - Ingestion entry point for decoded documents (bundle loaders, tests).
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows (ErrBadShape).
//   - Stage 2: copy each row into the flat buffer, rejecting NaN/±Inf.
//
// Behavior highlights:
//   - The result never aliases the input rows.
//   - The first non-finite value is reported with its coordinates.
//
// Inputs:
//   - rows: rectangular, non-empty, finite [][]float64.
//
// Returns:
//   - *Dense with shape len(rows)×len(rows[0]).
//
// Errors:
//   - ErrBadShape (empty / zero-width / ragged), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrBadShape)
	}

	r, c := len(rows), len(rows[0])
	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d columns, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if isNonFinite(rows[i][j]) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromRows, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// NewDenseFromData copies a row-major buffer of length rows*cols into a new Dense.
func NewDenseFromData(rows, cols int, data []float64) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromData, ErrInvalidDimensions)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%s: len %d, want %d: %w", ctxFromData, len(data), rows*cols, ErrBadShape)
	}

	for idx, v := range data {
		if isNonFinite(v) {
			return nil, fmt.Errorf("%s(%d,%d): %w", ctxFromData, idx/cols, idx%cols, ErrNaNInf)
		}
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Dense{r: rows, c: cols, data: buf}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Dense, error) {
	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns sentinel error wrapped with coordinates.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own buffer.
func (m *Dense) Clone() Matrix { return m.CloneDense() }

// CloneDense is Clone without the interface conversion.
// Mutations of the copy never reach the original.
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// DenseCopy returns an independent *Dense holding the values of any Matrix.
// Values of a foreign implementation are checked like NewDenseFromRows input.
func DenseCopy(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.CloneDense(), nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			if isNonFinite(v) {
				return nil, fmt.Errorf("%s(%d,%d): %w", ctxCopy, i, j, ErrNaNInf)
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}

// Row returns a copy of row i.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// rawRow returns the no-copy slice backing row i. Callers must not retain it
// past the lifetime of an operation that may mutate m.
func (m *Dense) rawRow(i int) []float64 { return m.data[i*m.c : (i+1)*m.c] }

// ToRows returns the matrix as freshly allocated rows (for encoders).
func (m *Dense) ToRows() [][]float64 {
	out := make([][]float64, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]float64, m.c)
		copy(out[i], m.rawRow(i))
	}

	return out
}

// ZeroRows sets every element of the listed rows to exactly 0.0, in place.
// MAIN DESCRIPTION:
//   - Hard zeroing of whole rows (not attenuation); the building block of
//     source suppression.
//
// Implementation:
//   - Stage 1: validate EVERY index via ValidateRowIndices before touching data.
//   - Stage 2: clear each listed row with the builtin clear over its flat slice.
//
// Behavior highlights:
//   - All-or-nothing: on ErrOutOfRange the matrix is left untouched.
//   - Duplicate indices are harmless (zeroing is idempotent).
//   - An empty or nil list is a no-op.
//
// Inputs:
//   - rows: zero-based row indices.
//
// Errors:
//   - ErrOutOfRange (wrapped with the first offending index).
//
// Complexity:
//   - Time O(k*c) for k listed rows, Space O(1).
//
// AI-Hints:
//   - Call on a CloneDense when the caller still needs the unedited matrix.
func (m *Dense) ZeroRows(rows []int) error {
	if err := ValidateRowIndices(m, rows); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxZeroRows, err)
	}
	for _, i := range rows {
		clear(m.rawRow(i))
	}

	return nil
}

// String provides a readable row-wise dump for diagnostics.
// Not for hot paths; for large matrices prefer printing a few rows.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
//
// Behavior highlights:
//   - Deterministic row-major order; no extra allocations.
//   - Rejects NaN/±Inf results with ErrNaNInf.
//   - Early error aborts; elements written before the error remain updated.
//
// Notes:
//   - For all-or-nothing semantics, transform into a clone and swap on success.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if isNonFinite(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
