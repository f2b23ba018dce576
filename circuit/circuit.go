// SPDX-License-Identifier: MIT

// Package circuit orchestrates statevector simulation: an append-only list
// of gate Operations, executed in order against an initial state with an
// optional noise channel applied after every operation, plus shot-based
// measurement from a random source fixed at construction.
//
// A Circuit moves from building (Add) to executed (Run) but stays
// append-only afterwards; Run never retains or mutates caller state.
//
// Measure draws from the Circuit's own random source; a Circuit is safe for
// concurrent use, but the sequence of draws then depends on call order.
package circuit

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"

	"github.com/katalvlaran/qlab/cmatrix"
	"github.com/katalvlaran/qlab/gates"
	"github.com/katalvlaran/qlab/measure"
	"github.com/katalvlaran/qlab/noise"
)

const (
	opNew     = "New"
	opAdd     = "Add"
	opRun     = "Run"
	opMeasure = "Measure"
)

// Circuit is a fixed-width register program.
type Circuit struct {
	mu        sync.Mutex
	id        uuid.UUID
	numQubits int
	ops       []Operation
	rng       *rand.Rand
	cfg       config
	executed  bool
}

// New creates an empty circuit over numQubits qubits.
//
// Implementation:
//   - Stage 1: apply options over the defaults and enforce 1 ≤ n ≤ ceiling.
//   - Stage 2: resolve the random source once: injected, explicit seed,
//     environment, else seeded from the clock.
//   - Stage 3: assign a fresh ID and log the construction.
func New(numQubits int, opts ...Option) (*Circuit, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if numQubits < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", opNew, numQubits, ErrInvalidQubitCount)
	}
	if err := cmatrix.CheckQubits(numQubits, cfg.maxQubits); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	rng, source, err := resolveRand(cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	c := &Circuit{
		id:        uuid.New(),
		numQubits: numQubits,
		rng:       rng,
		cfg:       cfg,
	}
	errnie.Info(
		"circuit.New - id %v, qubits %v, seed source %v",
		c.id,
		numQubits,
		source,
	)

	return c, nil
}

func resolveRand(cfg config) (*rand.Rand, string, error) {
	switch {
	case cfg.rng != nil:
		return cfg.rng, seedInjected, nil
	case cfg.hasSeed:
		return rand.New(rand.NewSource(cfg.seed)), seedExplicit, nil
	case cfg.envKey != "":
		raw := os.Getenv(cfg.envKey)
		if raw == "" {
			break
		}
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, "", fmt.Errorf("%s=%q: %w", cfg.envKey, raw, ErrInvalidSeed)
		}
		if seed != 0 {
			return rand.New(rand.NewSource(seed)), seedEnv, nil
		}
	}

	return rand.New(rand.NewSource(time.Now().UnixNano())), seedRandom, nil
}

// ID returns the circuit's unique identifier.
func (c *Circuit) ID() uuid.UUID { return c.id }

// NumQubits returns the register width.
func (c *Circuit) NumQubits() int { return c.numQubits }

// Len returns the number of operations added so far.
func (c *Circuit) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.ops)
}

// Executed reports whether Run has completed successfully at least once.
func (c *Circuit) Executed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.executed
}

// Operations returns a deep copy of the operation list in insertion order.
func (c *Circuit) Operations() []Operation {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Operation, len(c.ops))
	for i, op := range c.ops {
		out[i] = op.clone()
	}

	return out
}

// Add appends a gate application. Target and control indices are checked
// against the register immediately; the gate name is not, so an unknown
// gate or a missing rotation angle surfaces from Run. The slices are copied.
func (c *Circuit) Add(name string, targets []int, params []float64, control []int) error {
	for _, q := range targets {
		if q < 0 || q >= c.numQubits {
			return fmt.Errorf("%s %s: target %d of %d qubits: %w", opAdd, name, q, c.numQubits, ErrQubitOutOfRange)
		}
	}
	for _, q := range control {
		if q < 0 || q >= c.numQubits {
			return fmt.Errorf("%s %s: control %d of %d qubits: %w", opAdd, name, q, c.numQubits, ErrQubitOutOfRange)
		}
	}
	op := Operation{Name: name, Targets: targets, Params: params, Control: control}.clone()
	if len(op.Control) == 0 {
		op.Control = nil
	}

	c.mu.Lock()
	c.ops = append(c.ops, op)
	c.mu.Unlock()

	return nil
}

// Run executes the circuit and returns the final state.
//
// Implementation:
//   - Stage 1: start from a copy of init, or |0…0⟩ when init is nil. A
//     non-nil init must have length 2^n.
//   - Stage 2: for each operation in order, resolve its matrix and apply it
//     through gates.Apply (fail late on unknown gates).
//   - Stage 3: when ch is non-empty, apply noise.ApplyKraus after every
//     operation. ch must act on the full register (see noise.TensorChannel).
//
// The caller's init is never modified and Run keeps no reference to the
// returned state.
func (c *Circuit) Run(init cmatrix.Vector, ch noise.Channel) (cmatrix.Vector, error) {
	var (
		state cmatrix.Vector
		err   error
	)
	if init == nil {
		// New already enforced the configured ceiling.
		if state, err = cmatrix.NewBasisVector(1<<c.numQubits, 0); err != nil {
			return nil, fmt.Errorf("%s: %w", opRun, err)
		}
	} else {
		if len(init) != 1<<c.numQubits {
			return nil, fmt.Errorf("%s: init length %d for %d qubits: %w",
				opRun, len(init), c.numQubits, cmatrix.ErrBadShape)
		}
		state = init.Clone()
	}

	ops := c.Operations()
	gateOpts := []gates.Option{gates.WithMaxQubits(c.cfg.maxQubits)}
	if c.cfg.strictShapes {
		gateOpts = append(gateOpts, gates.WithStrictShape())
	}
	noisy := len(ch) > 0
	errnie.Info(
		"circuit.Run - id %v, operations %v, noise %v",
		c.id,
		len(ops),
		noisy,
	)

	for i, op := range ops {
		m, err := gates.MatrixShared(op.Kind(), op.Name, op.Params)
		if err != nil {
			return nil, fmt.Errorf("%s: op %d: %w", opRun, i, err)
		}
		if state, err = gates.Apply(m, state, op.Targets, op.Control, gateOpts...); err != nil {
			return nil, fmt.Errorf("%s: op %d (%s): %w", opRun, i, op, err)
		}
		if noisy {
			if state, err = noise.ApplyKraus(ch, state); err != nil {
				return nil, fmt.Errorf("%s: noise after op %d: %w", opRun, i, err)
			}
		}
	}

	c.mu.Lock()
	c.executed = true
	c.mu.Unlock()

	return state, nil
}

// Measure samples shots outcomes of state from the Born distribution using
// the Circuit's random source and returns normalised frequencies keyed by
// n-character bitstrings. Unobserved outcomes are absent. Zero shots yield
// an empty map.
func (c *Circuit) Measure(state cmatrix.Vector, shots int) (map[string]float64, error) {
	if shots < 0 {
		return nil, fmt.Errorf("%s: shots=%d: %w", opMeasure, shots, ErrInvalidShots)
	}
	if len(state) != 1<<c.numQubits {
		return nil, fmt.Errorf("%s: state length %d for %d qubits: %w",
			opMeasure, len(state), c.numQubits, cmatrix.ErrBadShape)
	}
	freq := make(map[string]float64)
	if shots == 0 {
		return freq, nil
	}

	c.mu.Lock()
	draws, err := measure.Sample(c.rng, measure.Probabilities(state), shots)
	c.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMeasure, err)
	}
	counts := make(map[int]int)
	for _, idx := range draws {
		counts[idx]++
	}
	for idx, n := range counts {
		freq[measure.Bitstring(idx, c.numQubits)] = float64(n) / float64(shots)
	}

	return freq, nil
}
