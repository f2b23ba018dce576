// SPDX-License-Identifier: MIT

package gates

import (
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qlab/cmatrix"
)

// Fixed gate matrices. They are shared and must never be mutated; the
// exported constructors below hand out clones.
var (
	pauliX = cmatrix.MustFromRows([][]complex128{
		{0, 1},
		{1, 0},
	})
	pauliY = cmatrix.MustFromRows([][]complex128{
		{0, -1i},
		{1i, 0},
	})
	pauliZ = cmatrix.MustFromRows([][]complex128{
		{1, 0},
		{0, -1},
	})
	hadamard = cmatrix.MustFromRows([][]complex128{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	})
	phaseS = cmatrix.MustFromRows([][]complex128{
		{1, 0},
		{0, 1i},
	})
	phaseT = cmatrix.MustFromRows([][]complex128{
		{1, 0},
		{0, cmplx.Exp(complex(0, math.Pi/4))},
	})
	cnot = cmatrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	})
	swap = cmatrix.MustFromRows([][]complex128{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	})
)

// PauliX returns the bit-flip gate.
func PauliX() *cmatrix.Dense { return pauliX.Clone() }

// PauliY returns the Pauli-Y gate.
func PauliY() *cmatrix.Dense { return pauliY.Clone() }

// PauliZ returns the phase-flip gate.
func PauliZ() *cmatrix.Dense { return pauliZ.Clone() }

// Hadamard returns H = (X + Z)/√2.
func Hadamard() *cmatrix.Dense { return hadamard.Clone() }

// PhaseS returns S = diag(1, i).
func PhaseS() *cmatrix.Dense { return phaseS.Clone() }

// PhaseT returns T = diag(1, e^{iπ/4}).
func PhaseT() *cmatrix.Dense { return phaseT.Clone() }

// CNOT returns the controlled-NOT on (control, target) in local basis order.
func CNOT() *cmatrix.Dense { return cnot.Clone() }

// SWAP returns the two-qubit exchange gate.
func SWAP() *cmatrix.Dense { return swap.Clone() }

// RotationX returns exp(−iθX/2).
func RotationX(theta float64) *cmatrix.Dense {
	c, s := math.Cos(theta/2), math.Sin(theta/2)

	return cmatrix.MustFromRows([][]complex128{
		{complex(c, 0), complex(0, -s)},
		{complex(0, -s), complex(c, 0)},
	})
}

// RotationY returns exp(−iθY/2).
func RotationY(theta float64) *cmatrix.Dense {
	c, s := math.Cos(theta/2), math.Sin(theta/2)

	return cmatrix.MustFromRows([][]complex128{
		{complex(c, 0), complex(-s, 0)},
		{complex(s, 0), complex(c, 0)},
	})
}

// RotationZ returns exp(−iθZ/2) = diag(e^{−iθ/2}, e^{iθ/2}).
func RotationZ(theta float64) *cmatrix.Dense {
	return cmatrix.MustFromRows([][]complex128{
		{cmplx.Exp(complex(0, -theta/2)), 0},
		{0, cmplx.Exp(complex(0, theta/2))},
	})
}
