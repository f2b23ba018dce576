// SPDX-License-Identifier: MIT

package states

import "errors"

var (
	// ErrInvalidSelector is returned for a Bell index outside {0,1,2,3}.
	ErrInvalidSelector = errors.New("states: selector out of range")

	// ErrInvalidBit is returned when a ket literal holds something other than 0 or 1.
	ErrInvalidBit = errors.New("states: ket entries must be 0 or 1")
)
