// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/qlab/cmatrix"
	"github.com/katalvlaran/qlab/measure"
)

// Operator constructor names for error wrapping.
const (
	opQFT       = "QFTMatrix"
	opInvQFT    = "InverseQFTMatrix"
	opDiffusion = "GroverDiffusion"
	opOracle    = "GroverOracle"
	opGrover    = "GroverSuccessProbabilities"
)

// operatorDim validates n against the ceiling carried by opts and returns 2^n.
func operatorDim(op string, n int, opts []Option) (int, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if n < 1 {
		return 0, fmt.Errorf("%s: n=%d: %w", op, n, ErrInvalidQubitCount)
	}
	if err := cmatrix.CheckQubits(n, cfg.maxQubits); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return 1 << n, nil
}

// QFTMatrix returns the n-qubit Quantum Fourier Transform,
// F[r][c] = ω^(r·c)/√dim with ω = e^(2πi/dim). Only WithMaxQubits is
// consulted among opts.
//
// The exponent r·c is reduced mod dim before exponentiation, so large
// powers of ω do not accumulate phase error.
func QFTMatrix(n int, opts ...Option) (*cmatrix.Dense, error) {
	dim, err := operatorDim(opQFT, n, opts)
	if err != nil {
		return nil, err
	}

	return fourier(dim, 1), nil
}

// InverseQFTMatrix returns the adjoint of QFTMatrix(n).
func InverseQFTMatrix(n int, opts ...Option) (*cmatrix.Dense, error) {
	dim, err := operatorDim(opInvQFT, n, opts)
	if err != nil {
		return nil, err
	}

	return fourier(dim, -1), nil
}

func fourier(dim int, sign float64) *cmatrix.Dense {
	data := make([]complex128, dim*dim)
	norm := complex(1/math.Sqrt(float64(dim)), 0)
	step := sign * 2 * math.Pi / float64(dim)
	var r, c int
	for r = 0; r < dim; r++ {
		for c = 0; c < dim; c++ {
			data[r*dim+c] = cmplx.Exp(complex(0, step*float64((r*c)%dim))) * norm
		}
	}
	m, _ := cmatrix.NewFromData(dim, dim, data)

	return m
}

// GroverDiffusion returns 2·|s⟩⟨s| − I for the uniform superposition |s⟩
// over n qubits: every entry is 2/dim, minus one on the diagonal.
func GroverDiffusion(n int, opts ...Option) (*cmatrix.Dense, error) {
	dim, err := operatorDim(opDiffusion, n, opts)
	if err != nil {
		return nil, err
	}
	data := make([]complex128, dim*dim)
	off := complex(2/float64(dim), 0)
	for i := range data {
		data[i] = off
	}
	for i := 0; i < dim; i++ {
		data[i*dim+i] -= 1
	}

	return cmatrix.NewFromData(dim, dim, data)
}

// GroverOracle returns the diagonal phase oracle that flips the sign of
// basis state marked.
func GroverOracle(n, marked int, opts ...Option) (*cmatrix.Dense, error) {
	dim, err := operatorDim(opOracle, n, opts)
	if err != nil {
		return nil, err
	}
	if marked < 0 || marked >= dim {
		return nil, fmt.Errorf("%s: marked=%d of %d: %w", opOracle, marked, dim, ErrMarkedOutOfRange)
	}
	m, _ := cmatrix.NewIdentity(dim)
	m.Data()[marked*dim+marked] = -1

	return m, nil
}

// GroverSuccessProbabilities starts from the uniform superposition and
// returns the probability of observing marked after each of iterations
// oracle+diffusion rounds.
func GroverSuccessProbabilities(n, marked, iterations int, opts ...Option) ([]float64, error) {
	oracle, err := GroverOracle(n, marked, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGrover, err)
	}
	diffusion, err := GroverDiffusion(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGrover, err)
	}
	iterate, err := cmatrix.Mul(diffusion, oracle)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGrover, err)
	}

	dim := 1 << n
	state := make(cmatrix.Vector, dim)
	amp := complex(1/math.Sqrt(float64(dim)), 0)
	for i := range state {
		state[i] = amp
	}
	out := make([]float64, 0, max(iterations, 0))
	for k := 0; k < iterations; k++ {
		if state, err = cmatrix.MatVec(iterate, state); err != nil {
			return nil, fmt.Errorf("%s: %w", opGrover, err)
		}
		out = append(out, measure.Probabilities(state)[marked])
	}

	return out, nil
}
