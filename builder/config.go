// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: internal configuration and deterministic defaults.
// Defaults:
//   - idFn     = DefaultIDFn ("0","1","2",...)
//   - rng      = nil (no randomness unless seeded)
//   - weightFn = DefaultWeightFn

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value so constructors cannot leak changes to each other.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
