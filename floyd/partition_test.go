// SPDX-License-Identifier: MIT
package floyd_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fwbench/floyd"
	"github.com/katalvlaran/fwbench/matrix"
)

func TestPartition_Errors(t *testing.T) {
	t.Parallel()

	_, err := floyd.Partition(0, 2)
	assert.ErrorIs(t, err, matrix.ErrInvalidSize)
	_, err = floyd.Partition(4, 0)
	assert.ErrorIs(t, err, floyd.ErrInvalidWorkerCount)
	_, err = floyd.Partition(4, -2)
	assert.ErrorIs(t, err, floyd.ErrInvalidWorkerCount)
}

func TestPartition_Layout(t *testing.T) {
	t.Parallel()

	cases := []struct {
		v, n int
		want []floyd.Block
	}{
		{1, 1, []floyd.Block{{0, 1}}},
		{10, 1, []floyd.Block{{0, 10}}},
		{10, 3, []floyd.Block{{0, 4}, {4, 7}, {7, 10}}},
		{9, 3, []floyd.Block{{0, 3}, {3, 6}, {6, 9}}},
		{2, 4, []floyd.Block{{0, 1}, {1, 2}, {2, 2}, {2, 2}}},
		{5, 2, []floyd.Block{{0, 3}, {3, 5}}},
	}

	for _, tc := range cases {
		got, err := floyd.Partition(tc.v, tc.n)
		require.NoError(t, err)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("Partition(%d,%d) mismatch (-want +got):\n%s", tc.v, tc.n, diff)
		}
	}
}

// TestPartition_Exhaustive checks disjointness, coverage and balance for a
// grid of (V, N).
func TestPartition_Exhaustive(t *testing.T) {
	t.Parallel()

	for v := 1; v <= 40; v++ {
		for n := 1; n <= 45; n++ {
			blocks, err := floyd.Partition(v, n)
			require.NoError(t, err)
			require.Len(t, blocks, n)

			owner := make([]int, v)
			minLen, maxLen := v+1, -1
			next := 0
			for w, b := range blocks {
				require.Equal(t, next, b.Lo, "v=%d n=%d block %d not contiguous", v, n, w)
				require.GreaterOrEqual(t, b.Hi, b.Lo)
				for r := b.Lo; r < b.Hi; r++ {
					owner[r]++
				}
				minLen = min(minLen, b.Len())
				maxLen = max(maxLen, b.Len())
				next = b.Hi
			}
			require.Equal(t, v, next, "v=%d n=%d rows not covered", v, n)
			for r, c := range owner {
				require.Equal(t, 1, c, "v=%d n=%d row %d owned %d times", v, n, r, c)
			}
			require.LessOrEqual(t, maxLen-minLen, 1, "v=%d n=%d unbalanced", v, n)
		}
	}
}

func TestBlock_Helpers(t *testing.T) {
	t.Parallel()

	b := floyd.Block{Lo: 2, Hi: 5}
	assert.Equal(t, 3, b.Len())
	assert.False(t, b.Empty())
	assert.Equal(t, "[2,5)", b.String())
	assert.True(t, floyd.Block{Lo: 4, Hi: 4}.Empty())
}
