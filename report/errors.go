// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrShapeMismatch indicates raw, reconstructed and cleaned matrices that
	// do not share a shape, or a channel list of the wrong length.
	ErrShapeMismatch = errors.New("report: shape mismatch")

	// ErrInvalidBand indicates a frequency band outside [0, fs/2] or a
	// signal too short to analyse.
	ErrInvalidBand = errors.New("report: invalid band")
)
