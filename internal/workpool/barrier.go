// SPDX-License-Identifier: MIT
// Package: internal/workpool
//
// barrier.go — reusable (cyclic) barrier.
//
// Contract:
//   - Exactly `parties` goroutines call Await per generation.
//   - The last arrival releases everyone and starts the next generation.
//   - All writes made before Await by any party happen-before every party
//     returns from that Await (the mutex provides the edge).

package workpool

import "sync"

// Barrier blocks callers of Await until a fixed number of parties have arrived.
type Barrier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	parties int
	waiting int
	gen     uint64
}

// NewBarrier returns a cyclic barrier for the given number of parties.
// Returns ErrInvalidSize if parties < 1.
func NewBarrier(parties int) (*Barrier, error) {
	if parties < 1 {
		return nil, ErrInvalidSize
	}
	b := &Barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b, nil
}

// Parties returns the number of goroutines that must arrive per generation.
func (b *Barrier) Parties() int {
	return b.parties
}

// Await blocks until all parties of the current generation have arrived.
// It returns the generation number that was just completed.
func (b *Barrier) Await() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	gen := b.gen
	b.waiting++
	if b.waiting == b.parties {
		// last one in: flip generation and wake the rest
		b.waiting = 0
		b.gen++
		b.cond.Broadcast()

		return gen
	}
	for gen == b.gen {
		b.cond.Wait()
	}

	return gen
}
