// SPDX-License-Identifier: MIT

package gates_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qlab/cmatrix"
	"github.com/katalvlaran/qlab/gates"
	"github.com/katalvlaran/qlab/states"
)

const tol = 1e-9

func TestLibrary_AllUnitary(t *testing.T) {
	for name, m := range map[string]*cmatrix.Dense{
		"X": gates.PauliX(), "Y": gates.PauliY(), "Z": gates.PauliZ(),
		"H": gates.Hadamard(), "S": gates.PhaseS(), "T": gates.PhaseT(),
		"CNOT": gates.CNOT(), "SWAP": gates.SWAP(),
		"RX": gates.RotationX(0.3), "RY": gates.RotationY(-1.2), "RZ": gates.RotationZ(2.5),
	} {
		assert.True(t, cmatrix.IsUnitary(m, tol), "%s must be unitary", name)
	}
}

func TestLookup(t *testing.T) {
	assert.Equal(t, gates.KindH, gates.Lookup("h"))
	assert.Equal(t, gates.KindCNOT, gates.Lookup("CNOT"))
	assert.Equal(t, gates.KindRZ, gates.Lookup("Rz"))
	assert.Equal(t, gates.KindUnknown, gates.Lookup("toffoli"))
	assert.Equal(t, "SWAP", gates.KindSWAP.String())
	assert.True(t, gates.KindRY.IsRotation())
	assert.False(t, gates.KindT.IsRotation())
}

func TestMatrix_Resolution(t *testing.T) {
	h, err := gates.Matrix("H")
	require.NoError(t, err)
	assert.True(t, cmatrix.AllClose(h, gates.Hadamard(), tol))

	rx, err := gates.Matrix("rx", math.Pi)
	require.NoError(t, err)
	assert.True(t, cmatrix.AllClose(rx, gates.RotationX(math.Pi), tol))

	_, err = gates.Matrix("RY")
	require.ErrorIs(t, err, gates.ErrMissingParameter)
	require.ErrorIs(t, err, gates.ErrInvalidArgument)

	_, err = gates.Matrix("FOO", 1)
	require.ErrorIs(t, err, gates.ErrUnknownGate)
	require.ErrorIs(t, err, gates.ErrInvalidArgument)

	// Returned matrices are private copies.
	require.NoError(t, h.Set(0, 0, 42))
	again, err := gates.Matrix("H")
	require.NoError(t, err)
	assert.NotEqual(t, complex128(42), again.Data()[0])
}

func TestApply_HadamardOnZero(t *testing.T) {
	out, err := gates.Apply(gates.Hadamard(), states.Zero(), []int{0}, nil)
	require.NoError(t, err)
	s := 1 / math.Sqrt2
	assert.True(t, out.AllClose(cmatrix.Vector{complex(s, 0), complex(s, 0)}, tol))
}

// TestApply_BigEndianTargets: X on qubit 0 of |00⟩ yields |10⟩ (index 2).
func TestApply_BigEndianTargets(t *testing.T) {
	zero, err := states.AllZero(2)
	require.NoError(t, err)

	out, err := gates.Apply(gates.PauliX(), zero, []int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), out[2])

	out, err = gates.Apply(gates.PauliX(), zero, []int{1}, nil)
	require.NoError(t, err)
	assert.Equal(t, complex128(1), out[1])
}

// TestApply_TargetOrderMatters: CNOT on [0,1] vs [1,0] picks different controls.
func TestApply_TargetOrderMatters(t *testing.T) {
	in, err := states.Basis(1, 0)
	require.NoError(t, err)

	out, err := gates.Apply(gates.CNOT(), in, []int{0, 1}, nil)
	require.NoError(t, err)
	want, _ := states.Basis(1, 1)
	assert.True(t, out.AllClose(want, tol))

	out, err = gates.Apply(gates.CNOT(), in, []int{1, 0}, nil)
	require.NoError(t, err)
	assert.True(t, out.AllClose(in, tol), "qubit 1 is 0, so nothing flips")
}

// TestApply_ControlSet: X on qubit 2 controlled by {0,1} is a Toffoli.
func TestApply_ControlSet(t *testing.T) {
	for ket, want := range map[[3]int][3]int{
		{1, 1, 0}: {1, 1, 1},
		{1, 0, 0}: {1, 0, 0},
		{0, 1, 1}: {0, 1, 1},
		{1, 1, 1}: {1, 1, 0},
	} {
		in, err := states.Basis(ket[:]...)
		require.NoError(t, err)
		exp, err := states.Basis(want[:]...)
		require.NoError(t, err)
		out, err := gates.Apply(gates.PauliX(), in, []int{2}, []int{0, 1})
		require.NoError(t, err)
		assert.True(t, out.AllClose(exp, tol), "ket %v", ket)
	}
}

// TestApply_SwapMatchesKron checks SWAP on non-adjacent qubits of a product state.
func TestApply_SwapMatchesKron(t *testing.T) {
	in := states.Kron(states.One(), states.Plus(), states.Zero())
	out, err := gates.Apply(gates.SWAP(), in, []int{0, 2}, nil)
	require.NoError(t, err)
	assert.True(t, out.AllClose(states.Kron(states.Zero(), states.Plus(), states.One()), tol))
}

// TestExpand_Unitary: random gate sequences keep the expanded operator unitary
// and the state normalised.
func TestExpand_Unitary(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	names := []string{"X", "Y", "Z", "H", "S", "T", "RX", "RY", "RZ"}
	for n := 1; n <= 4; n++ {
		state, err := states.AllZero(n)
		require.NoError(t, err)
		for step := 0; step < 12; step++ {
			g, err := gates.Matrix(names[rng.Intn(len(names))], rng.Float64()*2*math.Pi)
			require.NoError(t, err)
			target := rng.Intn(n)
			full, err := gates.Expand(g, n, []int{target}, nil)
			require.NoError(t, err)
			require.True(t, cmatrix.IsUnitary(full, 1e-9))
			state, err = cmatrix.MatVec(full, state)
			require.NoError(t, err)
		}
		assert.InDelta(t, 1.0, state.Norm(), 1e-9)
	}
}

func TestExpand_Errors(t *testing.T) {
	_, err := gates.Expand(gates.PauliX(), 2, []int{2}, nil)
	require.ErrorIs(t, err, gates.ErrQubitOutOfRange)

	_, err = gates.Expand(gates.PauliX(), 2, []int{0}, []int{-1})
	require.ErrorIs(t, err, gates.ErrQubitOutOfRange)

	_, err = gates.Expand(gates.PauliX(), cmatrix.DefaultMaxQubits+1, []int{0}, nil)
	require.ErrorIs(t, err, cmatrix.ErrTooManyQubits)

	_, err = gates.Expand(gates.PauliX(), 3, []int{0}, nil, gates.WithMaxQubits(2))
	require.ErrorIs(t, err, cmatrix.ErrTooManyQubits)

	// A 2x2 gate cannot be indexed by two target bits.
	_, err = gates.Expand(gates.PauliX(), 2, []int{0, 1}, nil)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)

	_, err = gates.Apply(gates.PauliX(), cmatrix.Vector{1, 0, 0}, []int{0}, nil)
	require.ErrorIs(t, err, cmatrix.ErrBadShape)
}

// TestExpand_OversizedGatePermissive documents the silent folding of a
// 4x4 gate onto a single target, and its strict-mode rejection.
func TestExpand_OversizedGatePermissive(t *testing.T) {
	full, err := gates.Expand(gates.CNOT(), 1, []int{0}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, full.Rows())

	_, err = gates.Expand(gates.CNOT(), 1, []int{0}, nil, gates.WithStrictShape())
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	in := states.Zero()
	_, err := gates.Apply(gates.PauliX(), in, []int{0}, nil)
	require.NoError(t, err)
	assert.Equal(t, states.Zero(), in)
}

func TestCeiling(t *testing.T) {
	assert.Equal(t, cmatrix.DefaultMaxQubits, gates.Ceiling())
	assert.Equal(t, 12, gates.Ceiling(gates.WithMaxQubits(12)))
	assert.Equal(t, 4, gates.Ceiling(gates.WithStrictShape(), gates.WithMaxQubits(4)))
}
