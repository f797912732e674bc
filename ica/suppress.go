// SPDX-License-Identifier: MIT

package ica

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/eegica/matrix"
)

// SuppressSources returns a copy of activations with every listed component
// row set to exactly 0.0.
// MAIN DESCRIPTION:
//   - Hard zeroing, not attenuation: a suppressed component contributes
//     nothing to any later reconstruction.
//
// Implementation:
//   - Stage 1: validate every index against activations.Rows() (eager).
//   - Stage 2: deep-copy activations.
//   - Stage 3: zero the listed rows of the copy.
//
// Behavior highlights:
//   - Copy-on-edit: the caller's matrix is never mutated, so one set of
//     activations can feed a "cleaned" and an "unedited" reconstruction.
//   - All-or-nothing: an invalid index fails before any copy exists.
//   - nil or empty indicesToRemove returns a value-equal copy (the
//     reconstruction baseline). Duplicate indices are allowed.
//
// Errors:
//   - ErrIndexOutOfRange (also matching matrix.ErrOutOfRange), naming the index.
//   - ErrShapeMismatch for a nil activations matrix.
//
// Complexity:
//   - Time O(components*samples) for the copy, Space the same.
func SuppressSources(activations matrix.Matrix, indicesToRemove []int) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(activations); err != nil {
		return nil, icaErrorf(opSuppress, ErrShapeMismatch, err)
	}
	if err := matrix.ValidateRowIndices(activations, indicesToRemove); err != nil {
		return nil, icaErrorf(opSuppress, ErrIndexOutOfRange, err)
	}

	edited, err := matrix.DenseCopy(activations)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSuppress, err)
	}
	if err = edited.ZeroRows(indicesToRemove); err != nil {
		return nil, icaErrorf(opSuppress, ErrIndexOutOfRange, err)
	}

	return edited, nil
}

// ParseIndexSet parses a component list such as "0, 3 7" (commas and/or
// whitespace) into a sorted set without duplicates. An empty string yields
// an empty set. Every integer parses, negatives included; range checks
// happen later, against the actual activations, and report ErrIndexOutOfRange.
func ParseIndexSet(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) == 0 {
		return nil, nil
	}

	seen := make(map[int]struct{}, len(fields))
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		idx, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", opParse, f, ErrInvalidIndexSet)
		}
		if _, dup := seen[idx]; dup {
			continue
		}
		seen[idx] = struct{}{}
		out = append(out, idx)
	}
	sort.Ints(out)

	return out, nil
}
