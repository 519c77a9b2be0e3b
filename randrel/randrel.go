// SPDX-License-Identifier: MIT
// File: randrel.go
// Role: Bernoulli-trial random O2M factory.
// Determinism:
//   - Stable trial order (for each element asc, node asc), so a fixed
//     seed yields an identical relation on every run.

package randrel

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vbrankov/sparserel/o2m"
)

var (
	// ErrNegativeCount indicates a negative element or node count.
	ErrNegativeCount = errors.New("randrel: counts must be non-negative")

	// ErrInvalidDensity indicates a density outside [0, 1].
	ErrInvalidDensity = errors.New("randrel: density not in [0,1]")
)

// Option configures RandomO2M.
type Option func(*config)

type config struct {
	seed   int64
	seeded bool
}

// WithSeed fixes the random source, making the result reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.seed = seed
		c.seeded = true
	}
}

// RandomO2M samples an O2M of elementCount rows over the node domain
// [0, nodeCount): each (element, node) pair is included by an
// independent Bernoulli trial at the given density. Without WithSeed the
// source is drawn from the global generator and results vary per call.
func RandomO2M(elementCount, nodeCount int, density float64, opts ...Option) (*o2m.O2M, error) {
	if elementCount < 0 || nodeCount < 0 {
		return nil, fmt.Errorf("%w: elements=%d nodes=%d", ErrNegativeCount, elementCount, nodeCount)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if !cfg.seeded {
		cfg.seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(cfg.seed))

	out := o2m.NewWithCapacity(elementCount)
	for e := 0; e < elementCount; e++ {
		row := make(o2m.Row, 0)
		for n := 0; n < nodeCount; n++ {
			if rng.Float64() < density {
				row = append(row, n)
			}
		}
		out.AppendElement(row)
	}

	return out, nil
}
