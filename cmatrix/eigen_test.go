// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlab/cmatrix"
)

// TestEigenHermitian_Reconstruct verifies H·v = λ·v and orthonormality for
// random Hermitian matrices of several sizes.
func TestEigenHermitian_Reconstruct(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 8} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			h := RandomHermitian(t, n, int64(42+n))
			vals, vecs, err := cmatrix.EigenHermitian(h, 0, 0)
			require.NoError(t, err)
			require.Len(t, vals, n)

			for j := 1; j < n; j++ {
				assert.LessOrEqual(t, vals[j-1], vals[j]+1e-12, "eigenvalues must ascend")
			}
			assert.True(t, cmatrix.IsUnitary(vecs, 1e-7), "eigenvectors must be orthonormal")

			for j := 0; j < n; j++ {
				v, err := vecs.Col(j)
				require.NoError(t, err)
				hv, err := cmatrix.MatVec(h, v)
				require.NoError(t, err)
				for i := range v {
					assert.InDelta(t, real(complex(vals[j], 0)*v[i]), real(hv[i]), 1e-7)
					assert.InDelta(t, imag(complex(vals[j], 0)*v[i]), imag(hv[i]), 1e-7)
				}
			}
		})
	}
}

func TestEigenHermitian_Rejects(t *testing.T) {
	_, _, err := cmatrix.EigenHermitian(MustRows(t, [][]complex128{{1, 2}}), 0, 0)
	require.ErrorIs(t, err, cmatrix.ErrNonSquare)

	_, _, err = cmatrix.EigenHermitian(MustRows(t, [][]complex128{{1, 2}, {3, 4}}), 0, 0)
	require.ErrorIs(t, err, cmatrix.ErrNotHermitian)

	_, _, err = cmatrix.EigenHermitian(nil, 0, 0)
	require.ErrorIs(t, err, cmatrix.ErrNilMatrix)
}

// TestDominantEigenvector_PureProjector recovers |ψ⟩ from |ψ⟩⟨ψ| with the
// phase convention applied.
func TestDominantEigenvector_PureProjector(t *testing.T) {
	s := 1 / math.Sqrt(3)
	psi := cmatrix.Vector{complex(s, 0), complex(0, s), complex(-s, 0), 0}
	rho, err := cmatrix.Outer(psi, psi)
	require.NoError(t, err)

	val, v, err := cmatrix.DominantEigenvector(rho)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, val, 1e-9)
	assert.InDelta(t, 1.0, v.Norm(), 1e-9)

	// First maximal-magnitude entry becomes real positive: psi[0] already is.
	assert.True(t, v.AllClose(psi, 1e-7), "got %v", v)
}
