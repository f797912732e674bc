// Package ica moves multi-channel EEG between electrode space and source
// (component) space using a precomputed linear decomposition, and removes
// artifact components such as eye blinks.
//
// The pipeline is a straight-line composition of three pure operations:
//
//	activations := U × X          TransformToSourceSpace   (components × samples)
//	edited      := zero rows S    SuppressSources          (copy-on-edit)
//	cleaned     := M × edited     TransformToElectrodeSpace (channels × samples)
//
// where X is the electrode matrix, U the unmixing matrix and M the paired
// mixing matrix. With an empty suppression set the result reconstructs X up
// to floating-point error (and rank loss when there are fewer components
// than channels).
//
// None of the operations keeps state between calls, and none mutates its
// inputs: SuppressSources always edits an independent copy, so the same
// activations can feed any number of differently edited reconstructions,
// concurrently if desired (see Decomposition.CleanCandidates).
//
// Errors:
//
//	ErrShapeMismatch    operand dimensions incompatible for a product
//	ErrIndexOutOfRange  a suppression index is not a valid component
//
// Both also match the underlying matrix sentinels
// (matrix.ErrDimensionMismatch, matrix.ErrOutOfRange) via errors.Is.
//
// Estimating the decomposition itself (running ICA) is out of scope.
package ica
