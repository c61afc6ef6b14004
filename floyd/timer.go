// SPDX-License-Identifier: MIT
// Package: floyd
//
// timer.go — wall-clock measurement kept outside the solvers, so the
// relaxation code can be tested without timing noise.

package floyd

import (
	"time"

	"github.com/katalvlaran/fwbench/matrix"
)

// SolveFunc is any solver invocation producing a distance matrix.
type SolveFunc func() (*matrix.Distance, error)

// Timing is the outcome of one timed solve.
type Timing struct {
	Elapsed time.Duration
	Result  *matrix.Distance
}

// Seconds returns Elapsed as fractional seconds.
func (t Timing) Seconds() float64 {
	return t.Elapsed.Seconds()
}

// Timed runs solve and measures its wall-clock duration.
// On error the Timing still carries the elapsed time but no Result.
func Timed(solve SolveFunc) (Timing, error) {
	start := time.Now()
	res, err := solve()
	elapsed := time.Since(start)
	if err != nil {
		return Timing{Elapsed: elapsed}, err
	}

	return Timing{Elapsed: elapsed, Result: res}, nil
}

// TimeSequential is Timed(Sequential(d)).
func TimeSequential(d *matrix.Distance) (Timing, error) {
	return Timed(func() (*matrix.Distance, error) { return Sequential(d) })
}

// TimeParallel is Timed(p.Solve(d)).
func TimeParallel(p *Parallel, d *matrix.Distance) (Timing, error) {
	return Timed(func() (*matrix.Distance, error) { return p.Solve(d) })
}
