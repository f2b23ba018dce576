// SPDX-License-Identifier: MIT

package gates_test

import (
	"fmt"

	"github.com/katalvlaran/qlab/gates"
	"github.com/katalvlaran/qlab/states"
)

// ExampleApply flips qubit 2 of a three-qubit register, gated on qubits 0
// and 1 (a Toffoli built from X plus a control set).
func ExampleApply() {
	in, _ := states.Basis(1, 1, 0)
	out, err := gates.Apply(gates.PauliX(), in, []int{2}, []int{0, 1})
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, a := range out {
		if a != 0 {
			fmt.Printf("|%03b⟩ %.1f\n", i, real(a))
		}
	}
	// Output:
	// |111⟩ 1.0
}

// ExampleLookup resolves gate names case-insensitively.
func ExampleLookup() {
	fmt.Println(gates.Lookup("cnot"), gates.Lookup("Rz").IsRotation(), gates.Lookup("foo"))
	// Output:
	// CNOT true UNKNOWN
}
