// SPDX-License-Identifier: MIT

package gates

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qlab/cmatrix"
)

// Kind enumerates the gates the library can resolve. Names are parsed into a
// Kind once (Lookup); resolution afterwards is a table index.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindX
	KindY
	KindZ
	KindH
	KindS
	KindT
	KindCNOT
	KindSWAP
	KindRX
	KindRY
	KindRZ

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown: "UNKNOWN",
	KindX:       "X",
	KindY:       "Y",
	KindZ:       "Z",
	KindH:       "H",
	KindS:       "S",
	KindT:       "T",
	KindCNOT:    "CNOT",
	KindSWAP:    "SWAP",
	KindRX:      "RX",
	KindRY:      "RY",
	KindRZ:      "RZ",
}

// byName is the case-folded name index consulted by Lookup.
var byName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindX; k < kindCount; k++ {
		m[kindNames[k]] = k
	}

	return m
}()

// Lookup maps a gate name (case-insensitive) to its Kind, or KindUnknown.
func Lookup(name string) Kind {
	return byName[strings.ToUpper(name)]
}

// String returns the canonical upper-case gate name.
func (k Kind) String() string {
	if k >= kindCount {
		return kindNames[KindUnknown]
	}

	return kindNames[k]
}

// IsRotation reports whether k needs an angle parameter.
func (k Kind) IsRotation() bool {
	return k == KindRX || k == KindRY || k == KindRZ
}

// resolver produces the local matrix for one Kind.
type resolver func(params []float64) (*cmatrix.Dense, error)

func fixed(m *cmatrix.Dense) resolver {
	return func([]float64) (*cmatrix.Dense, error) { return m, nil }
}

func rotation(gen func(float64) *cmatrix.Dense) resolver {
	return func(params []float64) (*cmatrix.Dense, error) {
		if len(params) == 0 {
			return nil, ErrMissingParameter
		}

		return gen(params[0]), nil
	}
}

// resolvers is indexed by Kind. Fixed gates come first, rotation families
// after, unknown names have no entry.
var resolvers = [kindCount]resolver{
	KindX:    fixed(pauliX),
	KindY:    fixed(pauliY),
	KindZ:    fixed(pauliZ),
	KindH:    fixed(hadamard),
	KindS:    fixed(phaseS),
	KindT:    fixed(phaseT),
	KindCNOT: fixed(cnot),
	KindSWAP: fixed(swap),
	KindRX:   rotation(RotationX),
	KindRY:   rotation(RotationY),
	KindRZ:   rotation(RotationZ),
}

// resolve returns the shared (read-only) matrix for k. name is used only for
// error messages.
func resolve(k Kind, name string, params []float64) (*cmatrix.Dense, error) {
	if k >= kindCount || resolvers[k] == nil {
		return nil, fmt.Errorf("gate %q: %w", name, ErrUnknownGate)
	}
	m, err := resolvers[k](params)
	if err != nil {
		return nil, fmt.Errorf("gate %q: %w", name, err)
	}

	return m, nil
}

// Resolve returns a private copy of the matrix for k with the given params.
func Resolve(k Kind, params []float64) (*cmatrix.Dense, error) {
	m, err := resolve(k, k.String(), params)
	if err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// Matrix looks a gate up by name and resolves it: named fixed gates first,
// then rotation families keyed by name using params[0]. Unknown names fail
// with ErrUnknownGate, rotations without an angle with ErrMissingParameter.
func Matrix(name string, params ...float64) (*cmatrix.Dense, error) {
	m, err := resolve(Lookup(name), name, params)
	if err != nil {
		return nil, err
	}

	return m.Clone(), nil
}

// MatrixShared is Matrix without the clone, for callers that only
// read the result (the circuit executor). The returned matrix must not be
// modified.
func MatrixShared(k Kind, name string, params []float64) (*cmatrix.Dense, error) {
	return resolve(k, name, params)
}
