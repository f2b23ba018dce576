// SPDX-License-Identifier: MIT

package circuit

import (
	"math/rand"

	"github.com/katalvlaran/qlab/cmatrix"
)

// DefaultSeedEnv is the environment variable conventionally passed to
// WithSeedFromEnv.
const DefaultSeedEnv = "QLAB_SEED"

// Seed sources reported in logs.
const (
	seedRandom   = "random"
	seedExplicit = "explicit"
	seedInjected = "injected"
	seedEnv      = "env"
)

// Option configures a Circuit at construction.
type Option func(*config)

type config struct {
	rng          *rand.Rand
	seed         int64
	hasSeed      bool
	envKey       string
	maxQubits    int
	strictShapes bool
}

func defaultConfig() config {
	return config{maxQubits: cmatrix.DefaultMaxQubits}
}

// WithSeed fixes the measurement random source. Every seed, including 0, is
// taken literally.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed, c.hasSeed = seed, true
		c.rng, c.envKey = nil, ""
	}
}

// WithRand injects a caller-owned random source. The Circuit takes exclusive
// use of it. It panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("circuit: WithRand: nil source")
	}

	return func(c *config) {
		c.rng = rng
		c.hasSeed, c.envKey = false, ""
	}
}

// WithSeedFromEnv resolves the seed once, in New, from the environment
// variable key. An absent, empty or "0" value means an unseeded (random)
// source; a non-integer value makes New fail with ErrInvalidSeed.
func WithSeedFromEnv(key string) Option {
	return func(c *config) {
		c.envKey = key
		c.rng, c.hasSeed = nil, false
	}
}

// WithMaxQubits overrides the qubit ceiling for New, Run and the operator
// constructors. It panics on a non-positive limit.
func WithMaxQubits(limit int) Option {
	if limit <= 0 {
		panic("circuit: WithMaxQubits: limit must be positive")
	}

	return func(c *config) { c.maxQubits = limit }
}

// WithStrictShapes makes Run reject any operation whose gate dimension is
// not exactly 2^len(targets), instead of folding it onto the target bits.
func WithStrictShapes() Option {
	return func(c *config) { c.strictShapes = true }
}
