// SPDX-License-Identifier: MIT
// Package: floyd
//
// partition.go — static row ownership for the parallel solver.
//
// Rule:
//   - Rows 0..v-1 split into n contiguous, disjoint, exhaustive blocks.
//   - The first v mod n blocks hold one extra row, so sizes differ by at most 1.
//   - With n > v the trailing n-v blocks are empty (Lo == Hi).
//   - Depends only on (v, n), never on data: the same blocks serve every stage.

package floyd

import (
	"fmt"

	"github.com/katalvlaran/fwbench/matrix"
)

const opPartition = "Partition"

// Block is the half-open row range [Lo, Hi) owned by one worker.
type Block struct {
	Lo, Hi int
}

// Len returns the number of rows in the block.
func (b Block) Len() int {
	return b.Hi - b.Lo
}

// Empty reports whether the block owns no rows.
func (b Block) Empty() bool {
	return b.Hi <= b.Lo
}

// String renders the block as "[lo,hi)".
func (b Block) String() string {
	return fmt.Sprintf("[%d,%d)", b.Lo, b.Hi)
}

// Partition splits v rows among n workers.
// Errors: matrix.ErrInvalidSize if v < 1; ErrInvalidWorkerCount if n < 1.
// Complexity: O(n).
func Partition(v, n int) ([]Block, error) {
	if v < 1 {
		return nil, fmt.Errorf("%s(v=%d): %w", opPartition, v, matrix.ErrInvalidSize)
	}
	if n < 1 {
		return nil, fmt.Errorf("%s(n=%d): %w", opPartition, n, ErrInvalidWorkerCount)
	}

	blocks := make([]Block, n)
	size, extra := v/n, v%n
	lo := 0
	for w := 0; w < n; w++ {
		hi := lo + size
		if w < extra {
			hi++
		}
		blocks[w] = Block{Lo: lo, Hi: hi}
		lo = hi
	}

	return blocks, nil
}
