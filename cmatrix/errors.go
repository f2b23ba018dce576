// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// Every kernel returns one of these sentinels, optionally wrapped with an
// operation tag via fmt.Errorf("%s: %w", op, err). Callers match with errors.Is.

package cmatrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNotHermitian signals that a Hermitian matrix was required but the input
	// deviates from its adjoint by more than the tolerance.
	ErrNotHermitian = errors.New("cmatrix: matrix is not hermitian within eps")

	// ErrNilMatrix indicates that a nil *Dense was passed.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrEigenFailed indicates that the Jacobi sweeps did not converge.
	ErrEigenFailed = errors.New("cmatrix: eigen decomposition failed")

	// ErrBadShape is returned when a vector length is not a power of two and
	// therefore cannot describe a qubit register.
	ErrBadShape = errors.New("cmatrix: length is not a power of two")

	// ErrZeroNorm is returned when a vector with zero L2 norm must be normalized.
	ErrZeroNorm = errors.New("cmatrix: zero norm")

	// ErrTooManyQubits is the resource-exhaustion error raised when a register
	// exceeds the configured qubit ceiling.
	ErrTooManyQubits = errors.New("cmatrix: qubit count exceeds ceiling")
)
