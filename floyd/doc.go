// Package floyd computes all-pairs shortest paths with the Floyd–Warshall
// recurrence, sequentially or with the per-stage work split across workers.
//
// Stage k relaxes every cell through intermediate vertex k:
//
//	d[i][j] = min(d[i][j], d[i][k] + d[k][j])
//
// Stages run strictly in order. Parallel splits the rows of one stage into
// contiguous blocks (Partition), one per worker, and waits for all workers
// at a barrier before the next stage begins. Because row k and column k do
// not change during stage k, workers can read them without locks while each
// writes only its own rows.
//
// Two fan-out strategies exist:
//
//	StrategyPool   N goroutines for the whole solve, barrier per stage (default)
//	StrategySpawn  N fresh goroutines per stage, joined per stage
//
// Both return a matrix identical, cell for cell, to Sequential. Timing lives
// in Timed, outside the solvers.
//
// Negative cycles are out of scope; inputs are validated to have a zero
// diagonal and non-negative entries.
package floyd
