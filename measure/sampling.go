// SPDX-License-Identifier: MIT

package measure

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/katalvlaran/qlab/cmatrix"
)

// SampleOption configures SampleCounts.
type SampleOption func(*sampleOptions)

type sampleOptions struct {
	rng    *rand.Rand
	qubits []int
	subset bool
}

// WithSeed makes sampling deterministic.
func WithSeed(seed int64) SampleOption {
	return func(o *sampleOptions) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand draws from a caller-owned source.
func WithRand(rng *rand.Rand) SampleOption {
	return func(o *sampleOptions) { o.rng = rng }
}

// WithQubits projects every sampled bitstring onto the ordered qubit subset.
func WithQubits(qubits ...int) SampleOption {
	return func(o *sampleOptions) {
		o.qubits = append([]int(nil), qubits...)
		o.subset = true
	}
}

// Sample draws shots i.i.d. basis indices from the categorical distribution
// probs (renormalised by its total) using rng. The cumulative table is built
// once; each draw is a binary search.
func Sample(rng *rand.Rand, probs []float64, shots int) ([]int, error) {
	if shots < 0 {
		return nil, fmt.Errorf("Sample: shots=%d: %w", shots, ErrInvalidArgument)
	}
	cdf := make([]float64, len(probs))
	var total float64
	for i, p := range probs {
		total += p
		cdf[i] = total
	}
	if total <= 0 {
		return nil, fmt.Errorf("Sample: %w", cmatrix.ErrZeroNorm)
	}
	out := make([]int, shots)
	last := len(cdf) - 1
	for s := range out {
		u := rng.Float64() * total
		idx := sort.Search(len(cdf), func(i int) bool { return cdf[i] > u })
		if idx > last {
			idx = last
		}
		// Only the clamp above can land on a zero-probability tail entry.
		for idx > 0 && probs[idx] == 0 {
			idx--
		}
		out[s] = idx
	}

	return out, nil
}

// SampleCounts draws shots outcomes from the full-register Born distribution
// and returns raw integer counts keyed by bitstring. With WithQubits, each
// sampled bitstring is projected onto the subset before counting. Without
// WithSeed/WithRand the draw is seeded from the clock.
func SampleCounts(state cmatrix.Vector, shots int, opts ...SampleOption) (map[string]int, error) {
	var o sampleOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	n, err := cmatrix.QubitCount(len(state))
	if err != nil {
		return nil, fmt.Errorf("SampleCounts: %w", err)
	}
	if o.subset {
		if err = checkQubits(o.qubits, n); err != nil {
			return nil, fmt.Errorf("SampleCounts: %w", err)
		}
	}
	draws, err := Sample(o.rng, Probabilities(state), shots)
	if err != nil {
		return nil, fmt.Errorf("SampleCounts: %w", err)
	}
	counts := make(map[string]int)
	for _, idx := range draws {
		if o.subset {
			counts[Bitstring(project(idx, n, o.qubits), len(o.qubits))]++
			continue
		}
		counts[Bitstring(idx, n)]++
	}

	return counts, nil
}
