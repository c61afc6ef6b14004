// SPDX-License-Identifier: MIT
// Package: floyd
//
// Purpose:
//   - The single relaxation kernel shared by every solver variant.
//   - Sequential and parallel paths differ only in which row range they hand in.
//
// Contract:
//   - Square row-major buffer; +Inf means "no path"; diagonal 0.
//   - Row k and column k are fixed points of stage k: relaxing d[k][j] through k
//     yields d[k][k]+d[k][j] = d[k][j], and symmetrically for d[i][k]. Workers may
//     therefore read row k while another worker owns it.

package floyd

import "math"

// relaxRows applies stage k of the recurrence to rows [lo, hi):
//
//	d[i][j] = min(d[i][j], d[i][k] + d[k][j])
//
// Loop order is fixed (i → j) and ties keep the existing value, so every
// partition of the rows produces bit-identical output.
// Time: O((hi-lo)·n); no allocations.
func relaxRows(data []float64, n, k, lo, hi int) {
	var (
		i, j         int
		baseK, baseI int
		ik, kj       float64
		cand         float64
	)
	baseK = k * n
	rowK := data[baseK : baseK+n]

	for i = lo; i < hi; i++ {
		baseI = i * n
		ik = data[baseI+k]
		if math.IsInf(ik, 1) { // i cannot reach k
			continue
		}
		rowI := data[baseI : baseI+n]

		for j = 0; j < n; j++ {
			kj = rowK[j]
			if math.IsInf(kj, 1) { // k cannot reach j
				continue
			}
			cand = ik + kj
			if cand < rowI[j] {
				rowI[j] = cand
			}
		}
	}
}
