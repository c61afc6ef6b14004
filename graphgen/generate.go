// SPDX-License-Identifier: MIT
// Package graphgen builds random directed weighted graphs as distance matrices.
//
// Model:
//   - Every ordered pair (i, j) with i != j independently carries an edge with
//     probability p (Erdős–Rényi G(n, p), directed, no self-loops).
//   - Each edge weight is an integer drawn uniformly from [lo, hi] (default 1..100).
//
// Determinism:
//   - Trial order is fixed: i asc, then j asc. One Float64 draw per pair, one
//     Intn draw per accepted edge. A fixed seed therefore fixes the graph.
//
// Complexity:
//   - Time O(n^2) Bernoulli trials; Space O(n^2) for the matrix.
package graphgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fwbench/matrix"
)

const methodGenerate = "Generate"

// Generate samples a directed graph on nodes vertices with edge probability p.
// Errors: matrix.ErrInvalidSize (nodes < 1), ErrInvalidProbability (p ∉ [0,1]).
func Generate(nodes int, p float64, opts ...Option) (*matrix.Distance, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", methodGenerate, p, ErrInvalidProbability)
	}
	d, err := matrix.NewDistance(nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: nodes=%d: %w", methodGenerate, nodes, err)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.rng

	var (
		i, j int
		w    int
	)
	for i = 0; i < nodes; i++ {
		for j = 0; j < nodes; j++ {
			if i == j {
				continue
			}
			// Bernoulli trial: strict < makes p=0 empty and p=1 complete.
			if rng.Float64() < p {
				w = intBetween(rng, cfg.minW, cfg.maxW)
				if err = d.SetEdge(i, j, float64(w)); err != nil {
					return nil, fmt.Errorf("%s: SetEdge(%d→%d, w=%d): %w", methodGenerate, i, j, w, err)
				}
			}
		}
	}

	return d, nil
}
