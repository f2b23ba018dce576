// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// Vector is a dense complex vector. The simulator uses it as its StateVector:
// a length-2^n amplitude vector over the computational basis, indexed
// big-endian (qubit 0 is the most significant bit of the basis index).
type Vector []complex128

// NewBasisVector returns the dim-length vector with a single 1 at index.
func NewBasisVector(dim, index int) (Vector, error) {
	if dim <= 0 {
		return nil, ErrInvalidDimensions
	}
	if index < 0 || index >= dim {
		return nil, fmt.Errorf("NewBasisVector(%d,%d): %w", dim, index, ErrOutOfRange)
	}
	v := make(Vector, dim)
	v[index] = 1

	return v, nil
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// Norm returns the L2 norm of v.
func (v Vector) Norm() float64 {
	var sum float64
	for _, a := range v {
		sum += real(a)*real(a) + imag(a)*imag(a)
	}

	return math.Sqrt(sum)
}

// Normalize returns v/‖v‖ as a new vector, or ErrZeroNorm.
func (v Vector) Normalize() (Vector, error) {
	n := v.Norm()
	if n == 0 {
		return nil, ErrZeroNorm
	}
	out := make(Vector, len(v))
	inv := complex(1/n, 0)
	for i, a := range v {
		out[i] = a * inv
	}

	return out, nil
}

// Inner returns ⟨v|w⟩ = Σ conj(v_i)·w_i.
func (v Vector) Inner(w Vector) (complex128, error) {
	if len(v) != len(w) {
		return 0, fmt.Errorf("Inner: %d vs %d: %w", len(v), len(w), ErrDimensionMismatch)
	}
	var acc complex128
	for i := range v {
		acc += cmplx.Conj(v[i]) * w[i]
	}

	return acc, nil
}

// AllClose reports whether v and w have equal length and every pair of
// entries satisfies |v_i - w_i| <= eps + DefaultRelTolerance*|w_i|.
func (v Vector) AllClose(w Vector, eps float64) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if !isClose(v[i], w[i], eps) {
			return false
		}
	}

	return true
}

// QubitCount returns n such that length == 2^n, or ErrBadShape.
func QubitCount(length int) (int, error) {
	if length <= 0 || length&(length-1) != 0 {
		return 0, fmt.Errorf("QubitCount(%d): %w", length, ErrBadShape)
	}

	return bits.TrailingZeros(uint(length)), nil
}

// CheckQubits fails with ErrTooManyQubits when n exceeds limit.
// A non-positive limit falls back to DefaultMaxQubits.
func CheckQubits(n, limit int) error {
	if limit <= 0 {
		limit = DefaultMaxQubits
	}
	if n > limit {
		return fmt.Errorf("%d qubits > limit %d: %w", n, limit, ErrTooManyQubits)
	}

	return nil
}

// isClose applies the mixed absolute/relative tolerance test to one pair.
func isClose(a, b complex128, eps float64) bool {
	return cmplx.Abs(a-b) <= eps+DefaultRelTolerance*cmplx.Abs(b)
}
