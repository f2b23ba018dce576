// SPDX-License-Identifier: MIT

// Package cmatrix provides the complex-valued dense linear algebra used by the
// qlab simulator: a row-major Dense matrix, a Vector type that doubles as the
// simulator's StateVector, Kronecker products, adjoints, and a Jacobi-based
// Hermitian eigen solver.
//
// Conventions:
//   - Storage is row-major: element (i, j) lives at offset i*cols + j.
//   - Public accessors return sentinel errors (see errors.go) instead of panicking.
//   - Kernels never mutate their operands; every result is freshly allocated.
//   - Loop orders are fixed, so results are bitwise reproducible for equal inputs.
//
// Qubit registers of n qubits live in 2^n-dimensional spaces. Every helper that
// allocates operator-sized buffers is bounded by a qubit ceiling
// (DefaultMaxQubits, see CheckQubits) and fails with ErrTooManyQubits instead of
// allocating unboundedly.
package cmatrix
