// SPDX-License-Identifier: MIT
// Package: floyd
//
// Purpose:
//   - Reference all-pairs shortest paths with the classic k → i → j loop.
//   - Baseline for the parallel solver: same kernel, one row block [0, n).
//
// Contract:
//   - Input is validated (non-nil, zero diagonal, no NaN / negative cells).
//   - Input is never mutated; the result is a fresh matrix.

package floyd

import "github.com/katalvlaran/fwbench/matrix"

const opSequential = "Sequential"

// Sequential returns the all-pairs shortest-path matrix for d.
// dist[i][j] is the shortest i→j path length over the input edges, or
// matrix.Inf if j is unreachable from i.
// Time: O(n^3); Space: O(n^2) for the result clone.
func Sequential(d *matrix.Distance) (*matrix.Distance, error) {
	if err := matrix.ValidateDistance(d); err != nil {
		return nil, floydErrorf(opSequential, err)
	}

	dist := d.Clone()
	sequentialInPlace(dist)

	return dist, nil
}

// sequentialInPlace runs every stage over the full row range.
func sequentialInPlace(d *matrix.Distance) {
	n := d.Size()
	data := d.Raw()
	for k := 0; k < n; k++ {
		relaxRows(data, n, k, 0, n)
	}
}
