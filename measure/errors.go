// SPDX-License-Identifier: MIT

package measure

import "errors"

var (
	// ErrInvalidArgument is returned for negative shot counts and malformed
	// Pauli strings.
	ErrInvalidArgument = errors.New("measure: invalid argument")

	// ErrQubitOutOfRange is returned when a projection qubit does not exist.
	ErrQubitOutOfRange = errors.New("measure: qubit index out of range")
)
