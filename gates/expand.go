// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"

	"github.com/katalvlaran/qlab/cmatrix"
)

const (
	opExpand = "Expand"
	opApply  = "Apply"
)

// Expand lifts a local k-qubit gate onto an n-qubit register.
//
// Implementation:
//   - Stage 1: enforce the qubit ceiling and index bounds.
//   - Stage 2: for every basis index b (column of the result), if a control
//     set is given and any control bit of b is 0, copy b through unchanged.
//   - Stage 3: otherwise read the target bits of b, in targets order, as the
//     local column index; for every row r of that gate column, write the low
//     k bits of r back into the target positions (non-target bits fixed) and
//     store the amplitude at (that index, b).
//
// Behavior highlights:
//   - Targets are ordered: targets[0] is the most significant local bit.
//   - Entries are assigned, not accumulated, so a gate with more than 2^k rows
//     silently aliases onto the low target bits and the last row wins. Pass
//     WithStrictShape to turn any shape mismatch into ErrDimensionMismatch.
//   - A gate with fewer than 2^k columns cannot be indexed and always fails.
//
// Complexity:
//   - Time O(4^n), Space O(4^n). Bounded by the qubit ceiling.
func Expand(gate *cmatrix.Dense, n int, targets, control []int, opts ...Option) (*cmatrix.Dense, error) {
	cfg := gatherOptions(opts)
	if gate == nil {
		return nil, fmt.Errorf("%s: %w", opExpand, cmatrix.ErrNilMatrix)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", opExpand, n, cmatrix.ErrInvalidDimensions)
	}
	if err := cmatrix.CheckQubits(n, cfg.maxQubits); err != nil {
		return nil, fmt.Errorf("%s: %w", opExpand, err)
	}
	for _, q := range targets {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%s: target %d of %d qubits: %w", opExpand, q, n, ErrQubitOutOfRange)
		}
	}
	for _, q := range control {
		if q < 0 || q >= n {
			return nil, fmt.Errorf("%s: control %d of %d qubits: %w", opExpand, q, n, ErrQubitOutOfRange)
		}
	}

	k := len(targets)
	local := 1 << k
	if gate.Cols() < local || (cfg.strictShape && (gate.Rows() != local || gate.Cols() != local)) {
		return nil, fmt.Errorf("%s: %dx%d gate on %d targets: %w",
			opExpand, gate.Rows(), gate.Cols(), k, cmatrix.ErrDimensionMismatch)
	}

	// Bit masks: qubit q sits at bit position n-1-q of a basis index.
	targetMask := make([]int, k)
	for l, q := range targets {
		targetMask[l] = 1 << (n - 1 - q)
	}
	controlMask := 0
	for _, q := range control {
		controlMask |= 1 << (n - 1 - q)
	}

	dim := 1 << n
	full := make([]complex128, dim*dim)
	g := gate.Data()
	gRows, gCols := gate.Rows(), gate.Cols()
	var b, l, row, out, col int
	for b = 0; b < dim; b++ {
		if controlMask != 0 && b&controlMask != controlMask {
			full[b*dim+b] = 1
			continue
		}
		col = 0
		for l = 0; l < k; l++ {
			col <<= 1
			if b&targetMask[l] != 0 {
				col |= 1
			}
		}
		for row = 0; row < gRows; row++ {
			out = b
			for l = 0; l < k; l++ {
				if (row>>(k-1-l))&1 == 1 {
					out |= targetMask[l]
				} else {
					out &^= targetMask[l]
				}
			}
			full[out*dim+b] = g[row*gCols+col]
		}
	}

	return cmatrix.NewFromData(dim, dim, full)
}

// Apply expands gate onto the register described by state and returns the
// new state. The input state is not modified.
func Apply(gate *cmatrix.Dense, state cmatrix.Vector, targets, control []int, opts ...Option) (cmatrix.Vector, error) {
	n, err := cmatrix.QubitCount(len(state))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}
	full, err := Expand(gate, n, targets, control, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opApply, err)
	}

	return cmatrix.MatVec(full, state)
}
