// SPDX-License-Identifier: MIT
// Package cmatrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures for kernel tests.

package cmatrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlab/cmatrix"
)

// tol is the comparison tolerance shared by kernel tests.
const tol = 1e-9

// MustRows builds a Dense from a literal or fails the test.
func MustRows(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t *testing.T, m *cmatrix.Dense, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RandomHermitian returns a seeded random n×n Hermitian matrix.
func RandomHermitian(t *testing.T, n int, seed int64) *cmatrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := cmatrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.Set(i, i, complex(rng.NormFloat64(), 0)))
		for j := i + 1; j < n; j++ {
			z := complex(rng.NormFloat64(), rng.NormFloat64())
			require.NoError(t, m.Set(i, j, z))
			require.NoError(t, m.Set(j, i, complex(real(z), -imag(z))))
		}
	}

	return m
}
