// SPDX-License-Identifier: MIT

// Package states builds canonical reference states: computational basis
// states, the |+⟩/|−⟩ superpositions, the four Bell pairs, and Kronecker
// compositions of any of them.
//
// All states use the big-endian convention: in a basis index, qubit 0 is the
// most significant bit.
package states

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlab/cmatrix"
)

// invSqrt2 is the 1/√2 normalisation shared by the superposition states.
var invSqrt2 = complex(1/math.Sqrt2, 0)

// Zero returns |0⟩.
func Zero() cmatrix.Vector { return cmatrix.Vector{1, 0} }

// One returns |1⟩.
func One() cmatrix.Vector { return cmatrix.Vector{0, 1} }

// Plus returns |+⟩ = (|0⟩ + |1⟩)/√2.
func Plus() cmatrix.Vector { return cmatrix.Vector{invSqrt2, invSqrt2} }

// Minus returns |−⟩ = (|0⟩ − |1⟩)/√2.
func Minus() cmatrix.Vector { return cmatrix.Vector{invSqrt2, -invSqrt2} }

// Bell returns one of the four maximally entangled two-qubit states:
//
//	0: (|00⟩ + |11⟩)/√2   Φ+
//	1: (|01⟩ + |10⟩)/√2   Ψ+
//	2: (|00⟩ − |11⟩)/√2   Φ−
//	3: (|01⟩ − |10⟩)/√2   Ψ−
func Bell(index int) (cmatrix.Vector, error) {
	switch index {
	case 0:
		return cmatrix.Vector{invSqrt2, 0, 0, invSqrt2}, nil
	case 1:
		return cmatrix.Vector{0, invSqrt2, invSqrt2, 0}, nil
	case 2:
		return cmatrix.Vector{invSqrt2, 0, 0, -invSqrt2}, nil
	case 3:
		return cmatrix.Vector{0, invSqrt2, -invSqrt2, 0}, nil
	}

	return nil, fmt.Errorf("Bell(%d): index must be 0-3: %w", index, ErrInvalidSelector)
}

// Basis returns the computational basis state |k_0 k_1 … k_{n-1}⟩ for the
// given ket bits, qubit 0 first, under cmatrix.DefaultMaxQubits.
func Basis(ket ...int) (cmatrix.Vector, error) {
	return BasisWithLimit(0, ket...)
}

// BasisWithLimit is Basis under an explicit qubit ceiling. A non-positive
// limit means cmatrix.DefaultMaxQubits.
func BasisWithLimit(limit int, ket ...int) (cmatrix.Vector, error) {
	if len(ket) == 0 {
		return nil, fmt.Errorf("Basis: %w", cmatrix.ErrInvalidDimensions)
	}
	if err := cmatrix.CheckQubits(len(ket), limit); err != nil {
		return nil, fmt.Errorf("Basis: %w", err)
	}
	index := 0
	for i, b := range ket {
		if b != 0 && b != 1 {
			return nil, fmt.Errorf("Basis: ket[%d]=%d: %w", i, b, ErrInvalidBit)
		}
		index = index<<1 | b
	}

	return cmatrix.NewBasisVector(1<<len(ket), index)
}

// AllZero returns |0…0⟩ on n qubits.
func AllZero(n int) (cmatrix.Vector, error) {
	return AllZeroWithLimit(n, 0)
}

// AllZeroWithLimit is AllZero under an explicit qubit ceiling.
func AllZeroWithLimit(n, limit int) (cmatrix.Vector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("AllZero(%d): %w", n, cmatrix.ErrInvalidDimensions)
	}

	return BasisWithLimit(limit, make([]int, n)...)
}

// Kron folds factors left to right into a joint state, starting from the
// scalar unit. With no factors it returns the one-element vector [1].
func Kron(factors ...cmatrix.Vector) cmatrix.Vector {
	out := cmatrix.Vector{1}
	for _, f := range factors {
		out = cmatrix.KronVec(out, f)
	}

	return out
}
