// Package matrix provides the dense numeric contract shared by the eegica
// pipeline: a row-major Dense type with safe accessors, canonical shape and
// index validators, and the matrix product used to move EEG data between
// electrode space and source (component) space.
//
// The package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set, deep Clone,
//     row copies and all-or-nothing row zeroing. NaN and ±Inf never get in.
//   - Mul / MulChunked: C = A × B, delegating *Dense operands to gonum's
//     BLAS-backed mat.Dense.Mul over the shared flat buffers.
//   - Inverse, Identity, AllClose and MaxAbsDiff for round-trip checks.
//   - Sentinel errors (ErrDimensionMismatch, ErrOutOfRange, ...) matched with errors.Is.
//
// Every kernel allocates its result; operands are never mutated except by
// the explicitly in-place methods (Set, Apply, ZeroRows).
//
// See the examples in this package for usage patterns.
package matrix
