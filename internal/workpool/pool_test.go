// SPDX-License-Identifier: MIT
package workpool_test

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fwbench/internal/workpool"
)

func TestNewBarrier_Invalid(t *testing.T) {
	_, err := workpool.NewBarrier(0)
	require.ErrorIs(t, err, workpool.ErrInvalidSize)
}

// TestBarrier_ReleasesTogether checks that nobody leaves a generation before
// the last party arrives, across several generations.
func TestBarrier_ReleasesTogether(t *testing.T) {
	const parties, rounds = 6, 50
	b, err := workpool.NewBarrier(parties)
	require.NoError(t, err)
	require.Equal(t, parties, b.Parties())

	var arrived [rounds]atomic.Int32
	var violations atomic.Int32
	var wg sync.WaitGroup
	wg.Add(parties)
	for p := 0; p < parties; p++ {
		go func() {
			defer wg.Done()
			for r := 0; r < rounds; r++ {
				arrived[r].Add(1)
				gen := b.Await()
				if gen != uint64(r) {
					violations.Add(1)
				}
				if arrived[r].Load() != parties {
					violations.Add(1)
				}
			}
		}()
	}
	wg.Wait()
	assert.Zero(t, violations.Load())
}

func TestNew_Invalid(t *testing.T) {
	for _, n := range []int{0, -3} {
		p, err := workpool.New(n)
		require.ErrorIs(t, err, workpool.ErrInvalidSize)
		assert.Nil(t, p)
	}
}

func TestRun_EveryWorkerOncePerRound(t *testing.T) {
	const n = 4
	p, err := workpool.New(n)
	require.NoError(t, err)
	defer p.Close()
	require.Equal(t, n, p.Size())

	var hits [n]atomic.Int32
	for round := 1; round <= 10; round++ {
		require.NoError(t, p.Run(func(w int) { hits[w].Add(1) }))
		for w := 0; w < n; w++ {
			// Run returned, so the round is complete for every worker
			assert.EqualValues(t, round, hits[w].Load(), "worker %d", w)
		}
	}
}

// TestRun_StageOrdering asserts no task of round r+1 starts before every
// task of round r has finished.
func TestRun_StageOrdering(t *testing.T) {
	const n, rounds = 8, 30
	p, err := workpool.New(n)
	require.NoError(t, err)
	defer p.Close()

	var finished atomic.Int64
	var bad atomic.Int32
	for r := 0; r < rounds; r++ {
		want := int64(r * n)
		require.NoError(t, p.Run(func(w int) {
			if finished.Load() < want {
				bad.Add(1)
			}
			if w%2 == 0 {
				time.Sleep(100 * time.Microsecond)
			}
			finished.Add(1)
		}))
	}
	assert.Zero(t, bad.Load())
	assert.EqualValues(t, rounds*n, finished.Load())
}

func TestRun_PanicIsReported(t *testing.T) {
	p, err := workpool.New(3)
	require.NoError(t, err)
	defer p.Close()

	err = p.Run(func(w int) {
		if w == 1 {
			panic("boom")
		}
	})
	require.ErrorIs(t, err, workpool.ErrTaskPanic)

	// pool is still usable and the error does not leak into the next round
	require.NoError(t, p.Run(func(int) {}))
}

func TestClose_Idempotent(t *testing.T) {
	p, err := workpool.New(2)
	require.NoError(t, err)

	p.Close()
	p.Close()
	assert.ErrorIs(t, p.Run(func(int) {}), workpool.ErrClosed)
}
