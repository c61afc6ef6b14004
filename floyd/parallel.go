// SPDX-License-Identifier: MIT
// Package: floyd
//
// Purpose:
//   - Same recurrence as Sequential with the (i, j) work of each stage split
//     by rows across N workers.
//
// Decomposition:
//   - Work is partitioned WITHIN a stage, never across stages. Stage k+1 starts
//     only after every worker of stage k has returned (barrier per stage).
//   - Each worker writes only rows of its own Block (see Partition); reads of
//     row k are shared and safe because row k is a fixed point of stage k.
//
// Determinism:
//   - Output is bit-identical to Sequential for every worker count: each cell
//     sees the same operands in the same order regardless of ownership.

package floyd

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/fwbench/internal/workpool"
	"github.com/katalvlaran/fwbench/matrix"
)

const (
	opNewParallel = "NewParallel"
	opParallel    = "Parallel.Solve"
)

// Parallel is a reusable parallel solver with a fixed worker count.
// A Parallel value is safe for concurrent Solve calls; each call owns its
// own workers and its own result matrix.
type Parallel struct {
	workers int
	cfg     parallelConfig
}

// NewParallel returns a solver using the given number of workers.
// Returns ErrInvalidWorkerCount if workers < 1.
func NewParallel(workers int, opts ...Option) (*Parallel, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%s(%d): %w", opNewParallel, workers, ErrInvalidWorkerCount)
	}
	cfg := defaultParallelConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Parallel{workers: workers, cfg: cfg}, nil
}

// Workers returns the configured worker count.
func (p *Parallel) Workers() int {
	return p.workers
}

// Strategy returns the configured fan-out strategy.
func (p *Parallel) Strategy() Strategy {
	return p.cfg.strategy
}

// Solve returns the all-pairs shortest-path matrix for d. The input is not
// mutated. When workers > Size(), surplus workers own empty blocks and only
// take part in the barrier.
func (p *Parallel) Solve(d *matrix.Distance) (*matrix.Distance, error) {
	if err := matrix.ValidateDistance(d); err != nil {
		return nil, floydErrorf(opParallel, err)
	}

	dist := d.Clone()
	blocks, err := Partition(dist.Size(), p.workers)
	if err != nil {
		return nil, floydErrorf(opParallel, err)
	}

	switch p.cfg.strategy {
	case StrategySpawn:
		err = solveSpawn(dist, blocks)
	default:
		err = solvePool(dist, blocks)
	}
	if err != nil {
		return nil, err
	}

	return dist, nil
}

// solvePool runs all stages on one workpool.Pool sized len(blocks).
func solvePool(d *matrix.Distance, blocks []Block) error {
	pool, err := workpool.New(len(blocks))
	if err != nil {
		return floydErrorf(opParallel, err)
	}
	defer pool.Close()

	n := d.Size()
	data := d.Raw()
	for k := 0; k < n; k++ {
		// Run returns only after every worker finished stage k.
		err = pool.Run(func(w int) {
			b := blocks[w]
			if b.Empty() {
				return
			}
			relaxRows(data, n, k, b.Lo, b.Hi)
		})
		if err != nil {
			return fmt.Errorf("%s: stage %d: %w: %w", opParallel, k, ErrSolverFailed, err)
		}
	}

	return nil
}

// solveSpawn starts len(blocks) fresh goroutines per stage and joins them.
// A panicking goroutine is recovered and fails the stage, as in the pool.
func solveSpawn(d *matrix.Distance, blocks []Block) error {
	n := d.Size()
	data := d.Raw()
	for k := 0; k < n; k++ {
		var g errgroup.Group
		for w, b := range blocks {
			w, b := w, b
			g.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("worker %d: %v: %w", w, r, workpool.ErrTaskPanic)
					}
				}()
				if !b.Empty() {
					relaxRows(data, n, k, b.Lo, b.Hi)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("%s: stage %d: %w: %w", opParallel, k, ErrSolverFailed, err)
		}
	}

	return nil
}
