// SPDX-License-Identifier: MIT

package circuit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/qlab/cmatrix"
	"github.com/katalvlaran/qlab/gates"
)

// Operation is one gate application: the tuple (Name, Targets, Params,
// Control). Targets are ordered to match the local gate basis; Control is an
// unordered set that gates the action per basis branch. Exporters rely on
// this tuple, so its shape is stable.
type Operation struct {
	Name    string
	Targets []int
	Params  []float64
	Control []int
}

// clone returns a deep copy so callers never share slices with the Circuit.
func (op Operation) clone() Operation {
	return Operation{
		Name:    op.Name,
		Targets: cloneInts(op.Targets),
		Params:  cloneFloats(op.Params),
		Control: cloneInts(op.Control),
	}
}

// Kind returns the gate kind Name resolves to, or gates.KindUnknown.
// An Operation rebuilt from its four exported fields resolves the same way.
func (op Operation) Kind() gates.Kind { return gates.Lookup(op.Name) }

// Matrix resolves the local gate matrix: a named gate first, then a rotation
// family keyed by name using Params[0]. The result is a private copy.
func (op Operation) Matrix() (*cmatrix.Dense, error) {
	m, err := gates.MatrixShared(op.Kind(), op.Name, op.Params)
	if err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// String renders the operation compactly, e.g. "RX(0.5) [0] ctrl [1]".
func (op Operation) String() string {
	var sb strings.Builder
	sb.WriteString(op.Name)
	if len(op.Params) > 0 {
		sb.WriteByte('(')
		for i, p := range op.Params {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
		}
		sb.WriteByte(')')
	}
	fmt.Fprintf(&sb, " %v", op.Targets)
	if len(op.Control) > 0 {
		fmt.Fprintf(&sb, " ctrl %v", op.Control)
	}

	return sb.String()
}

func cloneInts(in []int) []int {
	if in == nil {
		return nil
	}

	return append(make([]int, 0, len(in)), in...)
}

func cloneFloats(in []float64) []float64 {
	if in == nil {
		return nil
	}

	return append(make([]float64, 0, len(in)), in...)
}
