// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the product kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers is the number of column blocks MulChunked uses when the
	// caller does not override it.
	DefaultWorkers = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid = "matrix: WithWorkers: workers must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	workers int // >= 1; DefaultWorkers
}

// WithWorkers sets how many column blocks MulChunked computes concurrently.
// Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Nil setters are skipped; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
