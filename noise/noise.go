// SPDX-License-Identifier: MIT

// Package noise models decoherence through Kraus-operator channels.
//
// A Channel {K_i} is physical (CPTP) when Σ K_i†K_i = I. Constructors do not
// validate their probability arguments: values outside [0,1] silently yield a
// non-physical channel, which IsCPTP detects.
//
// ApplyKraus does not return the mixed state ρ' = Σ K_i ρ K_i†. It projects ρ'
// onto its dominant eigenvector and returns that pure state. The information
// in the remaining eigenvalues is discarded; MixedState returns the exact ρ'.
package noise

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qlab/cmatrix"
	"github.com/katalvlaran/qlab/gates"
)

// Channel is an ordered tuple of Kraus operators.
type Channel []*cmatrix.Dense

// Dim returns the operator dimension, or 0 for an empty channel.
func (ch Channel) Dim() int {
	if len(ch) == 0 || ch[0] == nil {
		return 0
	}

	return ch[0].Rows()
}

func scaled(s float64, rows [][]complex128) *cmatrix.Dense {
	m := cmatrix.MustFromRows(rows)
	data := m.Data()
	for i := range data {
		data[i] *= complex(s, 0)
	}

	return m
}

// Depolarizing returns the channel that replaces the state with the maximally
// mixed state with probability p:
// K0 = √(1−3p/4)·I, K1..3 = √(p/4)·{X, Y, Z}.
func Depolarizing(p float64) Channel {
	a, b := math.Sqrt(1-3*p/4), math.Sqrt(p/4)

	return Channel{
		scaled(a, [][]complex128{{1, 0}, {0, 1}}),
		scaled(b, [][]complex128{{0, 1}, {1, 0}}),
		scaled(b, [][]complex128{{0, -1i}, {1i, 0}}),
		scaled(b, [][]complex128{{1, 0}, {0, -1}}),
	}
}

// Dephasing returns the phase-damping channel with probability p:
// K0 = diag(1, √(1−p)), K1 = diag(0, √p).
func Dephasing(p float64) Channel {
	return Channel{
		cmatrix.MustFromRows([][]complex128{{1, 0}, {0, complex(math.Sqrt(1-p), 0)}}),
		cmatrix.MustFromRows([][]complex128{{0, 0}, {0, complex(math.Sqrt(p), 0)}}),
	}
}

// AmplitudeDamping returns the energy-relaxation channel with rate gamma:
// K0 = diag(1, √(1−γ)), K1 = √γ·|0⟩⟨1|.
func AmplitudeDamping(gamma float64) Channel {
	return Channel{
		cmatrix.MustFromRows([][]complex128{{1, 0}, {0, complex(math.Sqrt(1-gamma), 0)}}),
		cmatrix.MustFromRows([][]complex128{{0, complex(math.Sqrt(gamma), 0)}, {0, 0}}),
	}
}

// IsCPTP reports whether Σ K_i†K_i ≈ I within cmatrix.DefaultEpsilon.
// It is never invoked implicitly.
func IsCPTP(ch Channel) bool {
	d := ch.Dim()
	if d == 0 {
		return false
	}
	total, err := cmatrix.NewDense(d, d)
	if err != nil {
		return false
	}
	for _, k := range ch {
		kd, err := cmatrix.Adjoint(k)
		if err != nil {
			return false
		}
		term, err := cmatrix.Mul(kd, k)
		if err != nil {
			return false
		}
		if total, err = cmatrix.Add(total, term); err != nil {
			return false
		}
	}
	id, _ := cmatrix.NewIdentity(d)

	return cmatrix.AllClose(total, id, cmatrix.DefaultEpsilon)
}

// TensorChannel extends a single-qubit channel to n qubits by appending
// identity factors on the right: K_i ⊗ I ⊗ … ⊗ I. The result therefore always
// acts on qubit 0 (the most significant qubit). Use ChannelOn to address a
// different qubit. Only gates.WithMaxQubits is consulted among opts.
func TensorChannel(ch Channel, n int, opts ...gates.Option) (Channel, error) {
	if len(ch) == 0 {
		return nil, ErrEmptyChannel
	}
	if err := cmatrix.CheckQubits(n, gates.Ceiling(opts...)); err != nil {
		return nil, fmt.Errorf("TensorChannel: %w", err)
	}
	id, _ := cmatrix.NewIdentity(2)
	out := make(Channel, len(ch))
	for i, k := range ch {
		op := k
		for q := 1; q < n; q++ {
			next, err := cmatrix.Kron(op, id)
			if err != nil {
				return nil, fmt.Errorf("TensorChannel: %w", err)
			}
			op = next
		}
		if op == k {
			op = k.Clone()
		}
		out[i] = op
	}

	return out, nil
}

// ChannelOn lifts a single-qubit channel onto qubit target of an n-qubit
// register, using the same basis decomposition as gate expansion.
// ChannelOn(ch, n, 0) equals TensorChannel(ch, n).
func ChannelOn(ch Channel, n, target int, opts ...gates.Option) (Channel, error) {
	if len(ch) == 0 {
		return nil, ErrEmptyChannel
	}
	out := make(Channel, len(ch))
	for i, k := range ch {
		op, err := gates.Expand(k, n, []int{target}, nil, opts...)
		if err != nil {
			return nil, fmt.Errorf("ChannelOn: %w", err)
		}
		out[i] = op
	}

	return out, nil
}

// MixedState returns the exact density matrix Σ K_i ρ K_i† for ρ = |state⟩⟨state|.
func MixedState(ch Channel, state cmatrix.Vector) (*cmatrix.Dense, error) {
	if len(ch) == 0 {
		return nil, ErrEmptyChannel
	}
	rho, err := cmatrix.Outer(state, state)
	if err != nil {
		return nil, fmt.Errorf("MixedState: %w", err)
	}
	var acc *cmatrix.Dense
	for _, k := range ch {
		term, err := cmatrix.Sandwich(k, rho)
		if err != nil {
			return nil, fmt.Errorf("MixedState: %w", err)
		}
		if acc == nil {
			acc = term
			continue
		}
		if acc, err = cmatrix.Add(acc, term); err != nil {
			return nil, fmt.Errorf("MixedState: %w", err)
		}
	}

	return acc, nil
}

// ApplyKraus applies ch to state and returns the renormalised eigenvector of
// the largest eigenvalue of the resulting density matrix: the most likely
// pure state, not the exact mixed state. The global phase is fixed so that
// the largest-magnitude amplitude is real and positive.
func ApplyKraus(ch Channel, state cmatrix.Vector) (cmatrix.Vector, error) {
	rho, err := MixedState(ch, state)
	if err != nil {
		return nil, err
	}
	_, v, err := cmatrix.DominantEigenvector(rho)
	if err != nil {
		return nil, fmt.Errorf("ApplyKraus: %w", err)
	}
	out, err := v.Normalize()
	if err != nil {
		return nil, fmt.Errorf("ApplyKraus: %w", err)
	}

	return out, nil
}
