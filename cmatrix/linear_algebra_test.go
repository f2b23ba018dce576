// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlab/cmatrix"
)

func TestMul_KnownProduct(t *testing.T) {
	a := MustRows(t, [][]complex128{{1, 1i}, {0, 2}})
	b := MustRows(t, [][]complex128{{1, 0}, {1i, 1}})
	got, err := cmatrix.Mul(a, b)
	require.NoError(t, err)
	want := MustRows(t, [][]complex128{{0, 1i}, {2i, 2}})
	assert.True(t, cmatrix.AllClose(got, want, tol), "got\n%v", got)

	_, err = cmatrix.Mul(a, MustRows(t, [][]complex128{{1, 2, 3}}))
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)

	_, err = cmatrix.Mul(nil, b)
	require.ErrorIs(t, err, cmatrix.ErrNilMatrix)
}

func TestMatVec(t *testing.T) {
	m := MustRows(t, [][]complex128{{0, 1}, {1, 0}})
	v, err := cmatrix.MatVec(m, cmatrix.Vector{1, 2i})
	require.NoError(t, err)
	assert.Equal(t, cmatrix.Vector{2i, 1}, v)

	_, err = cmatrix.MatVec(m, cmatrix.Vector{1})
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

// TestKron_BigEndian checks that the left factor owns the high index digits.
func TestKron_BigEndian(t *testing.T) {
	x := MustRows(t, [][]complex128{{0, 1}, {1, 0}})
	id, err := cmatrix.NewIdentity(2)
	require.NoError(t, err)

	xi, err := cmatrix.Kron(x, id)
	require.NoError(t, err)
	require.Equal(t, 4, xi.Rows())
	// X⊗I maps |00⟩ → |10⟩, i.e. column 0 has its 1 at row 2.
	assert.Equal(t, complex128(1), MustAt(t, xi, 2, 0))
	assert.Equal(t, complex128(0), MustAt(t, xi, 1, 0))

	v := cmatrix.KronVec(cmatrix.Vector{0, 1}, cmatrix.Vector{1, 0})
	assert.Equal(t, cmatrix.Vector{0, 0, 1, 0}, v)
}

func TestAdjointAndUnitary(t *testing.T) {
	s := complex(1/math.Sqrt2, 0)
	h := MustRows(t, [][]complex128{{s, s}, {s, -s}})
	assert.True(t, cmatrix.IsUnitary(h, tol))
	assert.True(t, cmatrix.IsHermitian(h, tol))

	y := MustRows(t, [][]complex128{{0, -1i}, {1i, 0}})
	yd, err := cmatrix.Adjoint(y)
	require.NoError(t, err)
	assert.True(t, cmatrix.AllClose(y, yd, tol))

	notUnitary := MustRows(t, [][]complex128{{1, 1}, {0, 1}})
	assert.False(t, cmatrix.IsUnitary(notUnitary, tol))
	assert.False(t, cmatrix.IsHermitian(notUnitary, tol))
}

func TestOuterAndSandwich(t *testing.T) {
	psi := cmatrix.Vector{complex(1/math.Sqrt2, 0), complex(0, 1/math.Sqrt2)}
	rho, err := cmatrix.Outer(psi, psi)
	require.NoError(t, err)
	assert.True(t, cmatrix.IsHermitian(rho, tol))
	assert.InDelta(t, 0.5, real(MustAt(t, rho, 0, 0)), tol)
	assert.InDelta(t, -0.5, imag(MustAt(t, rho, 0, 1)), tol)

	x := MustRows(t, [][]complex128{{0, 1}, {1, 0}})
	flipped, err := cmatrix.Sandwich(x, rho)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, real(MustAt(t, flipped, 1, 1)), tol)
	assert.InDelta(t, 0.5, imag(MustAt(t, flipped, 0, 1)), tol)
}

func TestAddScale(t *testing.T) {
	a := MustRows(t, [][]complex128{{1, 2}})
	sum, err := cmatrix.Add(a, a)
	require.NoError(t, err)
	scaled, err := cmatrix.Scale(a, 2)
	require.NoError(t, err)
	assert.True(t, cmatrix.AllClose(sum, scaled, tol))

	_, err = cmatrix.Add(a, MustRows(t, [][]complex128{{1}}))
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}
