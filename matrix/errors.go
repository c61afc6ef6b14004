// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Constructors and mutators MUST return these sentinels (optionally
// wrapped with call-site context) and tests MUST check them via errors.Is.
// Nothing in this package panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// fmt.Errorf("ctx: %w", ErrX); callers still match with errors.Is.

var (
	// ErrInvalidSize is returned when a vertex count is not positive.
	ErrInvalidSize = errors.New("matrix: size must be >= 1")

	// ErrInvalidEdge covers every rejected edge assignment: self-loop,
	// out-of-range endpoint, or non-positive / non-finite weight.
	ErrInvalidEdge = errors.New("matrix: invalid edge")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public readers MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil *Distance (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a fixture was not V×V.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNonZeroDiagonal signals a distance matrix whose diagonal is not 0.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero")

	// ErrNegativeDistance signals a negative entry; negative weights are out of scope.
	ErrNegativeDistance = errors.New("matrix: negative distance")

	// ErrNaN signals a NaN entry in a fixture.
	ErrNaN = errors.New("matrix: NaN encountered")
)

// matrixErrorf wraps err with an operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
