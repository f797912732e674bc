// SPDX-License-Identifier: MIT

package ica

import "github.com/katalvlaran/eegica/matrix"

// TransformToSourceSpace projects electrode data into source space:
// activations = unmixing × electrodeData.
// Implementation:
//   - Stage 1: validate unmixing.Cols == electrodeData.Rows (channel counts).
//   - Stage 2: delegate the product to matrix.MulChunked.
//
// Inputs:
//   - electrodeData: numChannels × numSamples.
//   - unmixing:      numComponents × numChannels.
//
// Returns:
//   - *matrix.Dense numComponents × numSamples; rows follow unmixing's rows.
//
// Errors:
//   - ErrShapeMismatch (also matching matrix.ErrDimensionMismatch or
//     matrix.ErrNilMatrix); no partial result is returned.
//
// Complexity:
//   - Time O(components*channels*samples), Space O(components*samples).
func TransformToSourceSpace(electrodeData, unmixing matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return project(opToSource, unmixing, electrodeData, opts)
}

// TransformToElectrodeSpace projects (edited or unedited) activations back
// into electrode space: electrodes = mixing × activations.
//
// Inputs:
//   - activations: numComponents × numSamples.
//   - mixing:      numChannels × numComponents.
//
// Returns:
//   - *matrix.Dense numChannels × numSamples, the recording's shape.
//
// Errors:
//   - ErrShapeMismatch when mixing.Cols != activations.Rows.
func TransformToElectrodeSpace(activations, mixing matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	return project(opToElectrode, mixing, activations, opts)
}

// project computes weights × data under the shared shape contract.
func project(op string, weights, data matrix.Matrix, opts []Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	if err := matrix.ValidateMulCompatible(weights, data); err != nil {
		return nil, icaErrorf(op, ErrShapeMismatch, err)
	}

	out, err := matrix.MulChunked(weights, data, matrix.WithWorkers(o.productWorkers))
	if err != nil {
		return nil, icaErrorf(op, ErrShapeMismatch, err)
	}

	return out, nil
}
