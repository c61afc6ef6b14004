// SPDX-License-Identifier: MIT
// Package workpool runs one task on a fixed set of goroutines per round and
// waits for all of them at a barrier before the round returns.
//
// The pool is built for stage-synchronous kernels: the coordinator calls Run
// once per stage, every worker executes the same task with its own worker
// index, and Run does not return until every worker has finished. Workers
// are started once by New and reused for every Run until Close.
//
// Concurrency:
//   - Run and Close may be called from different goroutines; Run calls are
//     serialized (one stage at a time).
//   - Workers never block except while waiting for a task or at the barrier.
package workpool

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrInvalidSize is returned when a pool or barrier is sized below 1.
	ErrInvalidSize = errors.New("workpool: size must be >= 1")

	// ErrClosed is returned by Run after Close.
	ErrClosed = errors.New("workpool: pool is closed")

	// ErrTaskPanic is returned by Run when a task panicked on some worker.
	ErrTaskPanic = errors.New("workpool: task panicked")
)

// Task is executed by every worker in a round; worker is in [0, Size()).
type Task func(worker int)

// Pool is a fixed set of goroutines synchronized by a cyclic barrier.
type Pool struct {
	n       int
	inbox   []chan Task
	barrier *Barrier
	exited  sync.WaitGroup

	mu     sync.Mutex // serializes Run/Close
	closed bool

	panicMu  sync.Mutex
	panicked error
}

// New starts n workers. Returns ErrInvalidSize if n < 1.
func New(n int) (*Pool, error) {
	if n < 1 {
		return nil, fmt.Errorf("New(%d): %w", n, ErrInvalidSize)
	}
	// workers + coordinator meet at the barrier every round
	b, err := NewBarrier(n + 1)
	if err != nil {
		return nil, err
	}

	p := &Pool{
		n:       n,
		inbox:   make([]chan Task, n),
		barrier: b,
	}
	p.exited.Add(n)
	for w := 0; w < n; w++ {
		p.inbox[w] = make(chan Task)
		go p.worker(w)
	}

	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int {
	return p.n
}

func (p *Pool) worker(id int) {
	defer p.exited.Done()
	for task := range p.inbox[id] {
		p.exec(id, task)
		p.barrier.Await()
	}
}

// exec runs task and converts a panic into a recorded error so the worker
// still reaches the barrier.
func (p *Pool) exec(id int, task Task) {
	defer func() {
		if r := recover(); r != nil {
			p.panicMu.Lock()
			if p.panicked == nil {
				p.panicked = fmt.Errorf("worker %d: %v: %w", id, r, ErrTaskPanic)
			}
			p.panicMu.Unlock()
		}
	}()
	task(id)
}

// Run hands task to every worker and blocks until all of them have finished it.
func (p *Pool) Run(task Task) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}

	for w := 0; w < p.n; w++ {
		p.inbox[w] <- task
	}
	p.barrier.Await()

	p.panicMu.Lock()
	err := p.panicked
	p.panicked = nil
	p.panicMu.Unlock()

	return err
}

// Close stops all workers and waits for them to exit. Safe to call twice.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, ch := range p.inbox {
		close(ch)
	}
	p.mu.Unlock()

	p.exited.Wait()
}
