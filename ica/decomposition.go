// SPDX-License-Identifier: MIT

package ica

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/eegica/matrix"
	"golang.org/x/sync/errgroup"
)

// Decomposition is a validated mixing/unmixing pair for one recording.
// It is immutable after construction and safe for concurrent use.
type Decomposition struct {
	mixing   *matrix.Dense // channels × components
	unmixing *matrix.Dense // components × channels
	opts     []Option
}

// Result is one pass of the pipeline.
type Result struct {
	// Suppressed is the sorted, de-duplicated suppression set.
	Suppressed []int
	// Sources holds the unedited activations (components × samples).
	// CleanCandidates shares one Sources value between results; treat it as read-only.
	Sources *matrix.Dense
	// Edited holds Sources with the suppressed rows zeroed.
	Edited *matrix.Dense
	// Cleaned is Edited projected back to electrode space (channels × samples).
	Cleaned *matrix.Dense
}

// NewDecomposition pairs mixing (channels × components) with unmixing
// (components × channels). Both are copied.
//
// Errors:
//   - ErrShapeMismatch when either is nil or the shapes are not transposed
//     counterparts of each other.
func NewDecomposition(mixing, unmixing matrix.Matrix, opts ...Option) (*Decomposition, error) {
	if err := matrix.ValidateNotNil(mixing); err != nil {
		return nil, icaErrorf(opDecompose, ErrShapeMismatch, fmt.Errorf("mixing: %w", err))
	}
	if err := matrix.ValidateNotNil(unmixing); err != nil {
		return nil, icaErrorf(opDecompose, ErrShapeMismatch, fmt.Errorf("unmixing: %w", err))
	}
	if unmixing.Rows() != mixing.Cols() || unmixing.Cols() != mixing.Rows() {
		return nil, icaErrorf(opDecompose, ErrShapeMismatch, fmt.Errorf(
			"mixing %dx%d, unmixing %dx%d: %w",
			mixing.Rows(), mixing.Cols(), unmixing.Rows(), unmixing.Cols(), matrix.ErrDimensionMismatch))
	}

	m, err := matrix.DenseCopy(mixing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}
	u, err := matrix.DenseCopy(unmixing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecompose, err)
	}

	return &Decomposition{mixing: m, unmixing: u, opts: opts}, nil
}

// NumChannels is the electrode count the decomposition expects.
func (d *Decomposition) NumChannels() int { return d.mixing.Rows() }

// NumComponents is the number of sources.
func (d *Decomposition) NumComponents() int { return d.mixing.Cols() }

// Mixing returns a copy of the mixing matrix.
func (d *Decomposition) Mixing() *matrix.Dense { return d.mixing.CloneDense() }

// Unmixing returns a copy of the unmixing matrix.
func (d *Decomposition) Unmixing() *matrix.Dense { return d.unmixing.CloneDense() }

// Sources is TransformToSourceSpace with this decomposition's unmixing matrix.
func (d *Decomposition) Sources(eeg matrix.Matrix) (*matrix.Dense, error) {
	return TransformToSourceSpace(eeg, d.unmixing, d.opts...)
}

// Reconstruct is TransformToElectrodeSpace with this decomposition's mixing matrix.
func (d *Decomposition) Reconstruct(activations matrix.Matrix) (*matrix.Dense, error) {
	return TransformToElectrodeSpace(activations, d.mixing, d.opts...)
}

// Clean runs transform → suppress → reconstruct. A nil or empty remove set
// yields the unedited reconstruction.
func (d *Decomposition) Clean(eeg matrix.Matrix, remove []int) (*Result, error) {
	sources, err := d.Sources(eeg)
	if err != nil {
		return nil, err
	}

	return d.cleanFrom(sources, remove)
}

// cleanFrom edits a copy of sources and reconstructs it.
func (d *Decomposition) cleanFrom(sources *matrix.Dense, remove []int) (*Result, error) {
	edited, err := SuppressSources(sources, remove)
	if err != nil {
		return nil, err
	}
	cleaned, err := d.Reconstruct(edited)
	if err != nil {
		return nil, err
	}

	return &Result{
		Suppressed: normalizeSet(remove),
		Sources:    sources,
		Edited:     edited,
		Cleaned:    cleaned,
	}, nil
}

// RoundTripError returns max |Reconstruct(Sources(eeg)) - eeg|, the
// information the decomposition loses on this recording with nothing removed.
func (d *Decomposition) RoundTripError(eeg matrix.Matrix) (float64, error) {
	sources, err := d.Sources(eeg)
	if err != nil {
		return 0, err
	}
	back, err := d.Reconstruct(sources)
	if err != nil {
		return 0, err
	}

	return matrix.MaxAbsDiff(back, eeg)
}

// CleanCandidates computes one cleaned reconstruction per suppression set,
// sharing a single source projection of eeg.
// Implementation:
//   - Stage 1: project eeg once.
//   - Stage 2: run each set in an errgroup bounded by WithCandidateWorkers;
//     every worker edits its own copy of the shared activations.
//
// Behavior highlights:
//   - Results are returned in the order of sets.
//   - The first failure cancels pending candidates and is returned alone.
//   - Cancelling ctx stops candidates that have not started yet.
func (d *Decomposition) CleanCandidates(ctx context.Context, eeg matrix.Matrix, sets [][]int) ([]*Result, error) {
	o := gatherOptions(d.opts...)
	sources, err := d.Sources(eeg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCandidates, err)
	}

	results := make([]*Result, len(sets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.candidateWorkers)
	for i, set := range sets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := d.cleanFrom(sources, set)
			if err != nil {
				return fmt.Errorf("candidate %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opCandidates, err)
	}

	return results, nil
}

// normalizeSet returns a sorted copy of set without duplicates.
func normalizeSet(set []int) []int {
	if len(set) == 0 {
		return []int{}
	}
	out := append([]int(nil), set...)
	sort.Ints(out)
	n := 1
	for i := 1; i < len(out); i++ {
		if out[i] != out[n-1] {
			out[n] = out[i]
			n++
		}
	}

	return out[:n]
}
