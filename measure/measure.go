// SPDX-License-Identifier: MIT

// Package measure holds stateless functions over a StateVector: Born-rule
// probabilities, marginals over a qubit subset, observable expectations, and
// seeded shot sampling.
//
// Bitstrings are big-endian: character 0 is qubit 0.
package measure

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qlab/cmatrix"
)

// Probabilities returns |amplitude|² for every basis state.
func Probabilities(state cmatrix.Vector) []float64 {
	out := make([]float64, len(state))
	for i, a := range state {
		out[i] = real(a)*real(a) + imag(a)*imag(a)
	}

	return out
}

// MarginalProbabilities sums diagonal probability mass onto the ordered qubit
// subset: outcome b of the full register contributes to the subset pattern
// formed by reading b's bits at qubits[0], qubits[1], …. Coherences are not
// traced, so this is not a reduced density matrix.
func MarginalProbabilities(state cmatrix.Vector, qubits []int) ([]float64, error) {
	n, err := cmatrix.QubitCount(len(state))
	if err != nil {
		return nil, fmt.Errorf("MarginalProbabilities: %w", err)
	}
	if err = checkQubits(qubits, n); err != nil {
		return nil, fmt.Errorf("MarginalProbabilities: %w", err)
	}
	out := make([]float64, 1<<len(qubits))
	for idx, p := range Probabilities(state) {
		out[project(idx, n, qubits)] += p
	}

	return out, nil
}

// Expectation returns Re⟨state|observable|state⟩. The observable is assumed
// Hermitian; this is not checked.
func Expectation(state cmatrix.Vector, observable *cmatrix.Dense) (float64, error) {
	mv, err := cmatrix.MatVec(observable, state)
	if err != nil {
		return 0, fmt.Errorf("Expectation: %w", err)
	}
	v, err := state.Inner(mv)
	if err != nil {
		return 0, fmt.Errorf("Expectation: %w", err)
	}

	return real(v), nil
}

// Bitstring renders basis index idx as an n-character, zero-padded,
// big-endian bitstring.
func Bitstring(idx, n int) string {
	if n <= 0 {
		return ""
	}
	s := strconv.FormatInt(int64(idx), 2)
	if len(s) >= n {
		return s
	}

	return strings.Repeat("0", n-len(s)) + s
}

// project reads the bits of idx at the given qubits into a smaller index.
func project(idx, n int, qubits []int) int {
	out := 0
	for _, q := range qubits {
		out = out<<1 | (idx>>(n-1-q))&1
	}

	return out
}

func checkQubits(qubits []int, n int) error {
	for _, q := range qubits {
		if q < 0 || q >= n {
			return fmt.Errorf("qubit %d of %d: %w", q, n, ErrQubitOutOfRange)
		}
	}

	return nil
}
