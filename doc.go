// SPDX-License-Identifier: MIT

// Package qlab is a dense-statevector quantum circuit simulator for small
// registers: explicit 2^n amplitude vectors, full 2^n×2^n gate expansion and
// Kraus-operator noise.
//
// Subpackages:
//
//	cmatrix/ — complex128 Dense matrices and Vectors, Kronecker products,
//	           Hermitian eigen-decomposition (Jacobi), the qubit ceiling
//	states/  — |0⟩, |1⟩, |±⟩, Bell states, computational basis kets
//	gates/   — named and rotation gates, Kind lookup, Expand/Apply onto
//	           ordered targets with an optional control set
//	noise/   — depolarizing, dephasing and amplitude-damping channels,
//	           CPTP check, pure-state Kraus projection, exact mixed state
//	measure/ — probabilities, marginals, expectations, Pauli strings, CHSH,
//	           seeded shot sampling with raw counts
//	circuit/ — append-only Circuit with per-operation noise, normalised
//	           frequency measurement, QFT and Grover operators
//
// Conventions:
//
//   - Big-endian qubit order: qubit 0 is the most significant bit of a basis
//     index and the leftmost character of a bitstring.
//   - Every constructor that allocates 2^n-sized objects enforces a qubit
//     ceiling (cmatrix.DefaultMaxQubits unless overridden) and fails with
//     cmatrix.ErrTooManyQubits.
//   - Errors are package sentinels wrapped with an operation tag; match them
//     with errors.Is.
//
// Quick start:
//
//	c, _ := circuit.New(2, circuit.WithSeed(7))
//	_ = c.Add("H", []int{0}, nil, nil)
//	_ = c.Add("CNOT", []int{0, 1}, nil, nil)
//	state, _ := c.Run(nil, nil)
//	freq, _ := c.Measure(state, 1000) // ≈ {"00": 0.5, "11": 0.5}
package qlab
