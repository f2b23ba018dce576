// SPDX-License-Identifier: MIT
// Package cmatrix provides universal operations on Dense matrices and Vectors:
// multiplication, matrix-vector products, Kronecker products, adjoints,
// outer products, sums and scaling. All functions validate shapes up front
// and return wrapped sentinels on mismatches.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opAdd     = "Add"
	opMul     = "Mul"
	opMatVec  = "MatVec"
	opKron    = "Kron"
	opAdjoint = "Adjoint"
	opScale   = "Scale"
	opOuter   = "Outer"
	opEigen   = "EigenHermitian"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the matrix product a·b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: i→k→j loop order so the inner loop walks both b and the result row-wise.
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	out := &Dense{r: a.r, c: b.c, data: make([]complex128, a.r*b.c)}
	var i, k, j int
	for i = 0; i < a.r; i++ {
		row := out.data[i*b.c : (i+1)*b.c]
		for k = 0; k < a.c; k++ {
			aik := a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			bk := b.data[k*b.c : (k+1)*b.c]
			for j = 0; j < b.c; j++ {
				row[j] += aik * bk[j]
			}
		}
	}

	return out, nil
}

// MatVec returns m·v.
// Complexity: O(r·c).
func MatVec(m *Dense, v Vector) (Vector, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if m.c != len(v) {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("%dx%d · len %d: %w", m.r, m.c, len(v), ErrDimensionMismatch))
	}
	out := make(Vector, m.r)
	for i := 0; i < m.r; i++ {
		var acc complex128
		row := m.data[i*m.c : (i+1)*m.c]
		for j, x := range row {
			acc += x * v[j]
		}
		out[i] = acc
	}

	return out, nil
}

// Kron returns the Kronecker product a⊗b of shape (a.r·b.r)×(a.c·b.c).
// The left operand owns the most significant index digits, matching the
// big-endian qubit ordering used throughout qlab.
// Complexity: O(a.r·a.c·b.r·b.c).
func Kron(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opKron, ErrNilMatrix)
	}
	rows, cols := a.r*b.r, a.c*b.c
	out := &Dense{r: rows, c: cols, data: make([]complex128, rows*cols)}
	var ai, aj, bi, bj int
	for ai = 0; ai < a.r; ai++ {
		for aj = 0; aj < a.c; aj++ {
			x := a.data[ai*a.c+aj]
			if x == 0 {
				continue
			}
			for bi = 0; bi < b.r; bi++ {
				base := (ai*b.r+bi)*cols + aj*b.c
				for bj = 0; bj < b.c; bj++ {
					out.data[base+bj] = x * b.data[bi*b.c+bj]
				}
			}
		}
	}

	return out, nil
}

// KronVec returns the Kronecker product a⊗b of two vectors.
func KronVec(a, b Vector) Vector {
	out := make(Vector, len(a)*len(b))
	for i, x := range a {
		for j, y := range b {
			out[i*len(b)+j] = x * y
		}
	}

	return out
}

// Adjoint returns the conjugate transpose m†.
// Complexity: O(r·c).
func Adjoint(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opAdjoint, ErrNilMatrix)
	}
	out := &Dense{r: m.c, c: m.r, data: make([]complex128, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// Add returns a + b for equally shaped operands.
func Add(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opAdd, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return nil, matrixErrorf(opAdd, ErrDimensionMismatch)
	}
	out := &Dense{r: a.r, c: a.c, data: make([]complex128, len(a.data))}
	for i := range a.data {
		out.data[i] = a.data[i] + b.data[i]
	}

	return out, nil
}

// Scale returns s·m.
func Scale(m *Dense, s complex128) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	out := &Dense{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, x := range m.data {
		out.data[i] = s * x
	}

	return out, nil
}

// Outer returns |u⟩⟨v| (entries u_i·conj(v_j)).
func Outer(u, v Vector) (*Dense, error) {
	if len(u) == 0 || len(v) == 0 {
		return nil, matrixErrorf(opOuter, ErrInvalidDimensions)
	}
	out := &Dense{r: len(u), c: len(v), data: make([]complex128, len(u)*len(v))}
	for i, x := range u {
		for j, y := range v {
			out.data[i*len(v)+j] = x * cmplx.Conj(y)
		}
	}

	return out, nil
}

// Sandwich returns k·ρ·k†, the building block of every Kraus map.
func Sandwich(k, rho *Dense) (*Dense, error) {
	left, err := Mul(k, rho)
	if err != nil {
		return nil, err
	}
	kd, err := Adjoint(k)
	if err != nil {
		return nil, err
	}

	return Mul(left, kd)
}

// AllClose reports whether a and b share a shape and every entry pair is
// within eps + DefaultRelTolerance·|b_ij|.
func AllClose(a, b *Dense, eps float64) bool {
	if a == nil || b == nil || a.r != b.r || a.c != b.c {
		return false
	}
	for i := range a.data {
		if !isClose(a.data[i], b.data[i], eps) {
			return false
		}
	}

	return true
}

// IsUnitary reports whether m†·m ≈ I within eps.
func IsUnitary(m *Dense, eps float64) bool {
	if m == nil || !m.IsSquare() {
		return false
	}
	md, _ := Adjoint(m)
	prod, err := Mul(md, m)
	if err != nil {
		return false
	}
	id, _ := NewIdentity(m.r)

	return AllClose(prod, id, eps)
}

// IsHermitian reports whether m ≈ m† within eps.
func IsHermitian(m *Dense, eps float64) bool {
	if m == nil || !m.IsSquare() {
		return false
	}
	for i := 0; i < m.r; i++ {
		for j := i; j < m.c; j++ {
			if cmplx.Abs(m.data[i*m.c+j]-cmplx.Conj(m.data[j*m.c+i])) > eps {
				return false
			}
		}
	}

	return true
}
