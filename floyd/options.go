// SPDX-License-Identifier: MIT
// Package: floyd
//
// options.go — functional options for the parallel solver.
//
// Contract:
//   • Options are functional (type Option func(*parallelConfig)).
//   • Option constructors PANIC on meaningless inputs; Solve never panics.

package floyd

import (
	"fmt"
	"strings"
)

// Strategy selects how stage work is fanned out to workers.
type Strategy int

const (
	// StrategyPool starts N goroutines once per Solve and reuses them for every
	// stage, meeting at a barrier after each one.
	StrategyPool Strategy = iota

	// StrategySpawn starts a fresh set of N goroutines for every stage and
	// joins them before the next. It carries the per-stage spawn/join cost that
	// makes speedup sub-linear (or below 1) on small graphs.
	StrategySpawn
)

const (
	strategyPoolName  = "pool"
	strategySpawnName = "spawn"
)

// String returns the strategy's flag/config name.
func (s Strategy) String() string {
	switch s {
	case StrategyPool:
		return strategyPoolName
	case StrategySpawn:
		return strategySpawnName
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "pool" / "spawn" (case-insensitive) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case strategyPoolName:
		return StrategyPool, nil
	case strategySpawnName:
		return StrategySpawn, nil
	default:
		return 0, fmt.Errorf("ParseStrategy(%q): %w", name, ErrUnknownStrategy)
	}
}

// parallelConfig is the resolved option set of a Parallel solver.
type parallelConfig struct {
	strategy Strategy
}

func defaultParallelConfig() parallelConfig {
	return parallelConfig{strategy: StrategyPool}
}

// Option customizes a Parallel solver.
type Option func(*parallelConfig)

// WithStrategy selects the fan-out strategy. Panics on an unknown value.
func WithStrategy(s Strategy) Option {
	if s != StrategyPool && s != StrategySpawn {
		panic(fmt.Sprintf("floyd: WithStrategy(%d): unknown strategy", int(s)))
	}
	return func(c *parallelConfig) {
		c.strategy = s
	}
}
