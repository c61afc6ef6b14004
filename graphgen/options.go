// SPDX-License-Identifier: MIT
// Package: graphgen
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Generate itself never panics.
//   • Determinism is explicit: WithSeed or WithRand. Without either, the
//     fixed default seed is used.

package graphgen

import (
	"fmt"
	"math/rand"
)

// Default inclusive weight range, matching the classic benchmark setup.
const (
	DefaultMinWeight = 1
	DefaultMaxWeight = 100
)

// genConfig is the resolved option set.
type genConfig struct {
	rng        *rand.Rand
	minW, maxW int
}

func defaultConfig() genConfig {
	return genConfig{
		rng:  rngFromSeed(0),
		minW: DefaultMinWeight,
		maxW: DefaultMaxWeight,
	}
}

// Option customizes Generate.
type Option func(*genConfig)

// WithSeed uses a fresh *rand.Rand seeded with seed (0 maps to a fixed default).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rngFromSeed(seed)
	}
}

// WithRand uses r as the random source. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithWeightRange sets the inclusive integer weight range [lo, hi].
// Panics unless 1 <= lo <= hi: weights must stay strictly positive.
func WithWeightRange(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("graphgen: WithWeightRange(%d, %d): need 1 <= lo <= hi", lo, hi))
	}
	return func(c *genConfig) {
		c.minW, c.maxW = lo, hi
	}
}
