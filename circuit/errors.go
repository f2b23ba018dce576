// SPDX-License-Identifier: MIT

package circuit

import "errors"

var (
	// ErrInvalidQubitCount is returned by New for a register of fewer than one qubit.
	ErrInvalidQubitCount = errors.New("circuit: qubit count must be at least 1")

	// ErrQubitOutOfRange is returned by Add when a target or control index
	// does not name a qubit of the register.
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrInvalidSeed is returned by New when the seed environment variable is
	// set but is not an integer.
	ErrInvalidSeed = errors.New("circuit: seed must be an integer")

	// ErrInvalidShots is returned by Measure for a negative shot count.
	ErrInvalidShots = errors.New("circuit: shot count must be non-negative")

	// ErrMarkedOutOfRange is returned by GroverOracle when the marked basis
	// index is outside [0, 2^n).
	ErrMarkedOutOfRange = errors.New("circuit: marked index out of range")
)
