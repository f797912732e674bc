// Package eegica removes eye-blink and other artifacts from multi-channel EEG
// using a precomputed independent component analysis (ICA) decomposition.
//
// 🚀 What does it do?
//
//	Given electrode data X (channels × samples), a mixing matrix M and an
//	unmixing matrix U = M⁻¹, it runs a straight three-step pipeline:
//		• Source transform: activations = U × X
//		• Source editing: zero the rows of the artifact components
//		• Reconstruction: cleaned = M × edited activations
//
// ✨ Why this shape?
//
//   - Every step is a pure function: inputs are never mutated.
//   - Validation is eager: a bad index or shape fails before any work.
//   - Pure Go on gonum: products go through BLAS-backed mat.Dense.
//
// Packages:
//
//	matrix/      — row-major Dense, validators, products, tolerances
//	ica/         — the three transforms, Decomposition, concurrent candidates
//	recording/   — YAML/JSON bundle loader and synthetic recordings
//	report/      — per-channel before/after metrics and blink-band power
//	logging/     — slog setup for the command
//	cmd/eegica/  — the command-line driver
//
// Quick example:
//
//	rec, _ := recording.Load("subject01.yaml")
//	d, _ := rec.Decomposition()
//	res, _ := d.Clean(rec.EEG(), []int{0}) // component 0 is the blink
//	rep, _ := report.Compare(rec.EEG(), rec.EEG(), res.Cleaned, rec.Channels(), rec.SamplingRate())
//	fmt.Print(rep.Summary())
//
//	go install github.com/katalvlaran/eegica/cmd/eegica@latest
package eegica
