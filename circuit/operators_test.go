// SPDX-License-Identifier: MIT

package circuit_test

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlab/circuit"
	"github.com/katalvlaran/qlab/cmatrix"
	"github.com/katalvlaran/qlab/states"
)

func TestOperators_Unitary(t *testing.T) {
	for n := 1; n <= 3; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			qft, err := circuit.QFTMatrix(n)
			require.NoError(t, err)
			assert.True(t, cmatrix.IsUnitary(qft, 1e-9))

			inv, err := circuit.InverseQFTMatrix(n)
			require.NoError(t, err)
			prod, err := cmatrix.Mul(inv, qft)
			require.NoError(t, err)
			id, _ := cmatrix.NewIdentity(1 << n)
			assert.True(t, cmatrix.AllClose(prod, id, 1e-9))

			diff, err := circuit.GroverDiffusion(n)
			require.NoError(t, err)
			assert.True(t, cmatrix.IsUnitary(diff, 1e-9))
			assert.True(t, cmatrix.IsHermitian(diff, 1e-12))

			oracle, err := circuit.GroverOracle(n, (1<<n)-1)
			require.NoError(t, err)
			assert.True(t, cmatrix.IsUnitary(oracle, 1e-12))
		})
	}
}

func TestQFTMatrix_Entries(t *testing.T) {
	qft, err := circuit.QFTMatrix(2)
	require.NoError(t, err)
	// dim 4: ω = i, F[1][1] = i/2, F[2][3] = ω^6 = −1 → −1/2.
	v, _ := qft.At(1, 1)
	assert.InDelta(t, 0, cmplx.Abs(v-0.5i), 1e-12)
	v, _ = qft.At(2, 3)
	assert.InDelta(t, 0, cmplx.Abs(v+0.5), 1e-12)

	// QFT of |0…0⟩ is the uniform superposition.
	zero, _ := states.AllZero(3)
	qft3, _ := circuit.QFTMatrix(3)
	out, err := cmatrix.MatVec(qft3, zero)
	require.NoError(t, err)
	for _, a := range out {
		assert.InDelta(t, 1/math.Sqrt(8), real(a), 1e-12)
	}
}

func TestGroverOracle_Errors(t *testing.T) {
	_, err := circuit.GroverOracle(2, 4)
	assert.ErrorIs(t, err, circuit.ErrMarkedOutOfRange)
	_, err = circuit.GroverOracle(2, -1)
	assert.ErrorIs(t, err, circuit.ErrMarkedOutOfRange)
	_, err = circuit.QFTMatrix(0)
	assert.ErrorIs(t, err, circuit.ErrInvalidQubitCount)
	_, err = circuit.GroverDiffusion(4, circuit.WithMaxQubits(3))
	assert.ErrorIs(t, err, cmatrix.ErrTooManyQubits)
}

func TestGroverSuccessProbabilities(t *testing.T) {
	// Two qubits: a single iteration finds the marked item with certainty.
	probs, err := circuit.GroverSuccessProbabilities(2, 2, 1)
	require.NoError(t, err)
	require.Len(t, probs, 1)
	assert.InDelta(t, 1, probs[0], 1e-9)

	// Three qubits: sin²((2k+1)θ) with sin θ = 1/√8.
	theta := math.Asin(1 / math.Sqrt(8))
	probs, err = circuit.GroverSuccessProbabilities(3, 5, 3)
	require.NoError(t, err)
	for k, p := range probs {
		want := math.Pow(math.Sin(float64(2*(k+1)+1)*theta), 2)
		assert.InDelta(t, want, p, 1e-9, "iteration %d", k+1)
	}

	probs, err = circuit.GroverSuccessProbabilities(2, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, probs)
}
