// SPDX-License-Identifier: MIT
// Package: graphgen
//
// errors.go — sentinel errors for the graph generator.
//
// Callers branch with errors.Is; context is attached with %w at the
// detection site. Vertex-count violations surface matrix.ErrInvalidSize.

package graphgen

import "errors"

// ErrInvalidProbability indicates that p is NaN or outside [0, 1].
var ErrInvalidProbability = errors.New("graphgen: probability out of range")
