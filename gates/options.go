// SPDX-License-Identifier: MIT

package gates

import "github.com/katalvlaran/qlab/cmatrix"

// Option configures Expand/Apply.
type Option func(*options)

type options struct {
	maxQubits   int  // cmatrix.DefaultMaxQubits
	strictShape bool // false: gate/target mismatches pass through silently
}

func defaultOptions() options {
	return options{maxQubits: cmatrix.DefaultMaxQubits}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithMaxQubits overrides the qubit ceiling. It panics on a non-positive
// limit, which is a programmer error.
func WithMaxQubits(limit int) Option {
	if limit <= 0 {
		panic("gates: WithMaxQubits: limit must be positive")
	}

	return func(o *options) { o.maxQubits = limit }
}

// WithStrictShape makes Expand reject a gate whose dimension is not exactly
// 2^len(targets) with cmatrix.ErrDimensionMismatch. Without it, oversized
// gates are folded onto the target bits as described on Expand.
func WithStrictShape() Option {
	return func(o *options) { o.strictShape = true }
}

// Ceiling returns the qubit ceiling opts resolve to. Packages that accept
// gates.Option for their own 2^n allocations use it to honour WithMaxQubits.
func Ceiling(opts ...Option) int {
	return gatherOptions(opts).maxQubits
}
