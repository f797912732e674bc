// SPDX-License-Identifier: MIT

package ica

// Defaults.
const (
	// DefaultProductWorkers keeps transforms single-threaded unless asked.
	DefaultProductWorkers = 1

	// DefaultCandidateWorkers bounds concurrent candidate reconstructions.
	DefaultCandidateWorkers = 4
)

const (
	panicProductWorkers   = "ica: WithProductWorkers: n must be >= 1"
	panicCandidateWorkers = "ica: WithCandidateWorkers: n must be >= 1"
)

// Option configures the transforms and batch helpers.
type Option func(*options)

type options struct {
	productWorkers   int
	candidateWorkers int
}

// WithProductWorkers splits each matrix product into n sample blocks computed
// concurrently. Results match the single-threaded product up to
// floating-point summation order. Panics when n < 1.
func WithProductWorkers(n int) Option {
	if n < 1 {
		panic(panicProductWorkers)
	}

	return func(o *options) { o.productWorkers = n }
}

// WithCandidateWorkers bounds how many candidate reconstructions
// CleanCandidates runs at once. Panics when n < 1.
func WithCandidateWorkers(n int) Option {
	if n < 1 {
		panic(panicCandidateWorkers)
	}

	return func(o *options) { o.candidateWorkers = n }
}

func gatherOptions(user ...Option) options {
	o := options{
		productWorkers:   DefaultProductWorkers,
		candidateWorkers: DefaultCandidateWorkers,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
