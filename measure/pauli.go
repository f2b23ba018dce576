// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlab/cmatrix"
	"github.com/katalvlaran/qlab/gates"
)

// PauliOperator builds the tensor product of single-qubit Paulis named by
// paulis, e.g. "ZZ" or "XIY". Qubit 0 is the leftmost character. Only
// gates.WithMaxQubits is consulted among opts.
func PauliOperator(paulis string, opts ...gates.Option) (*cmatrix.Dense, error) {
	if paulis == "" {
		return nil, fmt.Errorf("PauliOperator: empty string: %w", ErrInvalidArgument)
	}
	if err := cmatrix.CheckQubits(len(paulis), gates.Ceiling(opts...)); err != nil {
		return nil, fmt.Errorf("PauliOperator: %w", err)
	}
	op, _ := cmatrix.NewIdentity(1)
	for i, r := range paulis {
		var factor *cmatrix.Dense
		switch r {
		case 'I', 'i':
			factor, _ = cmatrix.NewIdentity(2)
		case 'X', 'x':
			factor = gates.PauliX()
		case 'Y', 'y':
			factor = gates.PauliY()
		case 'Z', 'z':
			factor = gates.PauliZ()
		default:
			return nil, fmt.Errorf("PauliOperator: %q at %d: %w", r, i, ErrInvalidArgument)
		}
		next, err := cmatrix.Kron(op, factor)
		if err != nil {
			return nil, fmt.Errorf("PauliOperator: %w", err)
		}
		op = next
	}

	return op, nil
}

// PauliExpectation returns ⟨state|P|state⟩ for the Pauli string paulis.
func PauliExpectation(state cmatrix.Vector, paulis string, opts ...gates.Option) (float64, error) {
	op, err := PauliOperator(paulis, opts...)
	if err != nil {
		return 0, err
	}

	return Expectation(state, op)
}

// CHSH returns the CHSH S-value of a two-qubit state for the standard
// settings A0=Z, A1=X, B0=(Z+X)/√2, B1=(Z−X)/√2:
// S = E(A0B0) + E(A0B1) + E(A1B0) − E(A1B1).
// Local hidden-variable models satisfy |S| ≤ 2; Φ+ reaches 2√2.
func CHSH(state cmatrix.Vector) (float64, error) {
	z, x := gates.PauliZ(), gates.PauliX()
	inv := complex(1/math.Sqrt2, 0)
	sum, _ := cmatrix.Add(z, x)
	b0, _ := cmatrix.Scale(sum, inv)
	negX, _ := cmatrix.Scale(x, -1)
	diff, _ := cmatrix.Add(z, negX)
	b1, _ := cmatrix.Scale(diff, inv)

	terms := []struct {
		a, b *cmatrix.Dense
		sign float64
	}{
		{z, b0, 1}, {z, b1, 1}, {x, b0, 1}, {x, b1, -1},
	}
	var s float64
	for _, term := range terms {
		op, err := cmatrix.Kron(term.a, term.b)
		if err != nil {
			return 0, fmt.Errorf("CHSH: %w", err)
		}
		e, err := Expectation(state, op)
		if err != nil {
			return 0, fmt.Errorf("CHSH: %w", err)
		}
		s += term.sign * e
	}

	return s, nil
}
