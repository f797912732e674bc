// SPDX-License-Identifier: MIT

package ica

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch indicates operands whose dimensions cannot be
	// multiplied (unmixing vs electrode data, mixing vs activations) or a
	// mixing/unmixing pair that does not describe the same decomposition.
	ErrShapeMismatch = errors.New("ica: shape mismatch")

	// ErrIndexOutOfRange indicates a suppression index that is not a valid
	// component row.
	ErrIndexOutOfRange = errors.New("ica: component index out of range")

	// ErrInvalidIndexSet indicates a component list that cannot be parsed.
	ErrInvalidIndexSet = errors.New("ica: invalid component list")
)

// Operation tags used in error wrapping.
const (
	opToSource    = "TransformToSourceSpace"
	opToElectrode = "TransformToElectrodeSpace"
	opSuppress    = "SuppressSources"
	opDecompose   = "NewDecomposition"
	opCandidates  = "CleanCandidates"
	opParse       = "ParseIndexSet"
)

// icaErrorf tags cause with the operation and the package sentinel so that
// errors.Is matches both kind (ErrShapeMismatch) and origin (matrix.Err...).
func icaErrorf(op string, kind, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, kind, cause)
}
