// SPDX-License-Identifier: MIT
// Package: costflow/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng        = nil                            (pure unless seeded)
//   • capacityFn = ConstantWeightFn(DefaultCapacity)
//   • costFn     = ConstantWeightFn(DefaultCost)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Per-edge capacity generator (must return >= 0).
	capacityFn WeightFn
	// Per-edge cost generator.
	costFn WeightFn
}

// newBuilderConfig applies options in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		capacityFn: ConstantWeightFn(DefaultCapacity),
		costFn:     ConstantWeightFn(DefaultCost),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
