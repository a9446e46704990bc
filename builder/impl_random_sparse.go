// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p), an Erdős–Rényi-like directed network.
// Contract:
//   - n ≥ 1, 0 ≤ p ≤ 1.
//   - cfg.rng is required for 0 < p < 1; p ∈ {0,1} is deterministic without it.
//   - No self-loops.
// Determinism:
//   - One Bernoulli trial per ordered pair (i asc, j asc), so a fixed seed
//     yields the same edge set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvroute/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that keeps each ordered pair (i,j),
// i ≠ j, independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		keys, err := addIndexedVertices(g, methodRandomSparse, cfg, n)
		if err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		for i := range keys {
			for j := range keys {
				if i == j {
					continue
				}
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, methodRandomSparse, cfg, keys[i], keys[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
