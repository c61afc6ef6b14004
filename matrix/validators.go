// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks solvers run
//    before touching a distance matrix.
//  - Keep kernels minimal by delegating nil/diagonal checks here.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Diagonal).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(d *Distance) error {
	if d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateDistance is the solver precondition: non-nil, zero diagonal,
// no NaN and no negative entries.
// Complexity: O(n^2).
func ValidateDistance(d *Distance) error {
	if err := ValidateNotNil(d); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}

	n := d.n
	var v float64
	for i := 0; i < n; i++ {
		if d.data[i*n+i] != 0 {
			return validatorErrorf("ValidateDistance", distanceErrorf("At", i, i, ErrNonZeroDiagonal))
		}
	}
	for idx := range d.data {
		v = d.data[idx]
		if math.IsNaN(v) {
			return validatorErrorf("ValidateDistance", distanceErrorf("At", idx/n, idx%n, ErrNaN))
		}
		if v < 0 {
			return validatorErrorf("ValidateDistance", distanceErrorf("At", idx/n, idx%n, ErrNegativeDistance))
		}
	}

	return nil
}

// EdgeCount returns the number of finite off-diagonal cells.
// On a freshly generated matrix this is the number of directed edges.
func EdgeCount(d *Distance) int {
	if d == nil {
		return 0
	}
	var cnt int
	for idx, v := range d.data {
		if idx/d.n != idx%d.n && !math.IsInf(v, 1) {
			cnt++
		}
	}

	return cnt
}
