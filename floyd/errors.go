// SPDX-License-Identifier: MIT
// Package: floyd
//
// errors.go — sentinel errors for the floyd package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers use errors.Is.
//   • Implementations attach context with `%w` via floydErrorf.
//   • Solvers never panic at runtime; option constructors may panic on
//     programmer error (nil or unknown values).

package floyd

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkerCount indicates a worker count below 1.
var ErrInvalidWorkerCount = errors.New("floyd: worker count must be >= 1")

// ErrUnknownStrategy indicates a strategy name that ParseStrategy does not know.
var ErrUnknownStrategy = errors.New("floyd: unknown strategy")

// ErrSolverFailed indicates a stage could not be completed (e.g. a worker panicked).
// The returned matrix is nil whenever this is reported.
var ErrSolverFailed = errors.New("floyd: solver failed")

// floydErrorf wraps err with an operation tag.
func floydErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
