// SPDX-License-Identifier: MIT

// Package matrix - Distance storage (row-major) & safe accessors.
//
// Purpose:
//   - Own the V×V table of path weights shared by every solver variant.
//   - Cache-friendly row-major buffer with the explicit index formula i*n + j.
//   - Guarantee safety at the public surface: At/SetEdge return errors instead of panicking.
//
// Numeric policy:
//   - "No known path" is +Inf (see Inf). IEEE-754 keeps Inf+Inf and Inf+w at +Inf,
//     so relaxation sums can never wrap below a real distance.
//   - Edge weights are finite and strictly positive.
//
// Complexity quicksheet:
//   - NewDistance: O(n^2); At/SetEdge: O(1); Clone/Equal: O(n^2).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// Inf is the "unreachable" sentinel stored in off-diagonal cells.
var Inf = math.Inf(1)

const (
	ctxNew     = "NewDistance"
	ctxAt      = "At"
	ctxSetEdge = "SetEdge"
	ctxRow     = "Row"
	ctxFrom    = "NewDistanceFromRows"
)

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtInf      = "∞"
)

// distanceErrorf wraps an error with a uniform Distance context and callsite indices.
func distanceErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Distance.%s(%d,%d): %w", method, row, col, err)
}

// Distance is a square, row-major matrix of path weights.
//   - n is the vertex count (fixed at construction).
//   - data is a flat buffer of length n*n (offset = i*n + j).
type Distance struct {
	n    int
	data []float64
}

// NewDistance allocates an n×n distance matrix with 0 on the diagonal and Inf elsewhere.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n^2).
func NewDistance(n int) (*Distance, error) {
	if n < 1 {
		return nil, fmt.Errorf("%s(%d): %w", ctxNew, n, ErrInvalidSize)
	}

	data := make([]float64, n*n)
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i != j {
				data[base+j] = Inf
			}
		}
	}

	return &Distance{n: n, data: data}, nil
}

// NewDistanceFromRows builds a Distance from a literal table (tests, fixtures, CLI).
// Rows must form a non-empty square; the diagonal must be 0; off-diagonal
// entries must be positive (Inf means no edge) and not NaN, the same weights
// SetEdge accepts.
func NewDistanceFromRows(rows [][]float64) (*Distance, error) {
	n := len(rows)
	if n < 1 {
		return nil, matrixErrorf(ctxFrom, ErrInvalidSize)
	}

	d := &Distance{n: n, data: make([]float64, n*n)}
	var v float64
	for i := 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("%s: row %d has %d cols, want %d: %w", ctxFrom, i, len(rows[i]), n, ErrNonSquare)
		}
		for j := 0; j < n; j++ {
			v = rows[i][j]
			switch {
			case math.IsNaN(v):
				return nil, distanceErrorf(ctxFrom, i, j, ErrNaN)
			case v < 0:
				return nil, distanceErrorf(ctxFrom, i, j, ErrNegativeDistance)
			case i == j && v != 0:
				return nil, distanceErrorf(ctxFrom, i, j, ErrNonZeroDiagonal)
			case i != j && v == 0:
				return nil, distanceErrorf(ctxFrom, i, j, ErrInvalidEdge)
			}
			d.data[i*n+j] = v
		}
	}

	return d, nil
}

// Size returns the number of vertices.
// Complexity: O(1).
func (d *Distance) Size() int {
	return d.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (d *Distance) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= d.n || col < 0 || col >= d.n {
		return 0, distanceErrorf(method, row, col, ErrOutOfRange)
	}

	return row*d.n + col, nil
}

// At returns the current distance from i to j. No side effects.
// Complexity: O(1).
func (d *Distance) At(i, j int) (float64, error) {
	idx, err := d.indexOf(ctxAt, i, j)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// SetEdge records a directed edge src→dest with weight w.
// Requires 0 ≤ src,dest < n, src ≠ dest, w finite and > 0.
// The reverse cell [dest][src] is never touched.
// All violations are reported as ErrInvalidEdge (wrapping ErrOutOfRange for bad indices).
func (d *Distance) SetEdge(src, dest int, w float64) error {
	idx, err := d.indexOf(ctxSetEdge, src, dest)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEdge, err)
	}
	if src == dest {
		return fmt.Errorf("%w: self-loop on %d", ErrInvalidEdge, src)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
		return fmt.Errorf("%w: weight %g on %d→%d must be finite and > 0", ErrInvalidEdge, w, src, dest)
	}
	d.data[idx] = w

	return nil
}

// Row returns row i as a read-only view of the backing buffer.
// Callers must not retain it across solver runs on the same matrix.
func (d *Distance) Row(i int) ([]float64, error) {
	if i < 0 || i >= d.n {
		return nil, distanceErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return d.data[i*d.n : (i+1)*d.n : (i+1)*d.n], nil
}

// Raw exposes the flat row-major buffer for solver kernels.
// Cell (i,j) lives at Raw()[i*Size()+j].
func (d *Distance) Raw() []float64 {
	return d.data
}

// Clone returns a fully independent deep copy.
// Complexity: O(n^2).
func (d *Distance) Clone() *Distance {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Distance{n: d.n, data: cp}
}

// Equal reports exact cell-for-cell equality; Inf equals Inf.
// A nil matrix equals only another nil matrix.
func (d *Distance) Equal(o *Distance) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.n != o.n {
		return false
	}
	for i, v := range d.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer; Inf prints as ∞.
func (d *Distance) String() string {
	var sb strings.Builder
	var i, j int
	var v float64
	for i = 0; i < d.n; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < d.n; j++ {
			v = d.data[i*d.n+j]
			if math.IsInf(v, 1) {
				sb.WriteString(_fmtInf)
			} else {
				sb.WriteString(fmt.Sprintf("%g", v))
			}
			if j < d.n-1 {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
