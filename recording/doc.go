// Package recording is the Recording Store: it loads a persisted EEG bundle
// (electrode data, sampling rate, channel names and the paired
// mixing/unmixing matrices) once, validates it as a whole, and hands out
// read-only views to the rest of the pipeline.
//
// Bundle format: a YAML or JSON document using the keys of the original
// dataset dictionary:
//
//	fs: 256                      # sampling rate, Hz
//	channels: [Fpz, Cz, Iz]      # ordered, one per eeg row
//	eeg: [[...], [...], [...]]   # channels × samples
//	mixing_matrix: [[...], ...]  # channels × components
//	unmixing_matrix: [[...], ...] # components × channels
//	subject: S01                 # optional
//	units: uV                    # optional
//
// A bundle that misses a field or whose shapes disagree fails with
// ErrDataFormat; no partially loaded Recording is ever returned.
//
// A Recording is immutable after load: every matrix accessor returns a
// copy, so any number of goroutines may read it concurrently.
package recording
