// SPDX-License-Identifier: MIT

package cmatrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by AllClose-style checks.
	DefaultEpsilon = 1e-8

	// DefaultRelTolerance is the relative tolerance term of AllClose
	// (|a-b| <= eps + rel*|b|).
	DefaultRelTolerance = 1e-5

	// DefaultEigenTol bounds the off-diagonal Frobenius norm at which the
	// Jacobi sweeps are considered converged.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxSweeps caps the number of full Jacobi sweeps.
	DefaultEigenMaxSweeps = 100

	// DefaultMaxQubits is the largest register the dense kernels will allocate
	// for. A 10-qubit operator already holds 2^20 complex entries.
	DefaultMaxQubits = 10
)
