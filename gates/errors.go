// SPDX-License-Identifier: MIT
// Package gates: sentinel error set.
// ErrUnknownGate and ErrMissingParameter both match ErrInvalidArgument via
// errors.Is, so callers can treat every configuration error uniformly.

package gates

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the umbrella for gate configuration errors.
	ErrInvalidArgument = errors.New("gates: invalid argument")

	// ErrUnknownGate is returned when a name resolves to no gate kind.
	ErrUnknownGate = fmt.Errorf("%w: unknown gate", ErrInvalidArgument)

	// ErrMissingParameter is returned when a rotation is resolved without an angle.
	ErrMissingParameter = fmt.Errorf("%w: missing rotation parameter", ErrInvalidArgument)

	// ErrQubitOutOfRange is returned by Expand when a target or control index
	// does not address a qubit of the register.
	ErrQubitOutOfRange = errors.New("gates: qubit index out of range")
)
