package vector

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// ErrInjectedFailure is the cause of allocation errors produced by
// TrackingAllocator.FailAfter and FailNext.
var ErrInjectedFailure = errors.New("injected allocation failure")

// TrackingAllocator wraps another Allocator and records every block it hands
// out. Deallocating a block twice, or one it never handed out, panics.
// It can also be told to fail upcoming allocations.
//
// Unlike Vector, TrackingAllocator is safe for concurrent use, so a single
// instance can back vectors owned by different goroutines.
type TrackingAllocator[T any] struct {
	mu   sync.Mutex
	next Allocator[T]

	// live counts outstanding blocks per base address; zero-size element
	// types share one address across blocks.
	live      map[*T]int
	blocks    int
	slots     int
	allocs    int
	deallocs  int
	failures  int
	failAfter int // successful allocations left before failing; <0 disables
}

// NewTrackingAllocator wraps next, or HeapAllocator when next is nil.
func NewTrackingAllocator[T any](next Allocator[T]) *TrackingAllocator[T] {
	if next == nil {
		next = HeapAllocator[T]{}
	}
	return &TrackingAllocator[T]{
		next:      next,
		live:      make(map[*T]int),
		failAfter: -1,
	}
}

// Allocate forwards to the wrapped allocator unless a failure is pending.
func (a *TrackingAllocator[T]) Allocate(n int) ([]T, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.failAfter == 0 {
		a.failures++
		Logger().Debug("vector: injected allocation failure", zap.Int("slots", n))
		return nil, newError("allocate", KindAllocation, -1, ErrInjectedFailure)
	}
	block, err := a.next.Allocate(n)
	if err != nil {
		a.failures++
		return nil, err
	}
	if a.failAfter > 0 {
		a.failAfter--
	}
	if len(block) > 0 {
		a.live[&block[0]]++
	}
	a.blocks++
	a.slots += len(block)
	a.allocs++
	return block, nil
}

// Deallocate forwards to the wrapped allocator after checking that block is
// outstanding.
func (a *TrackingAllocator[T]) Deallocate(block []T) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(block) == 0 {
		fail("deallocate of an empty block")
	}
	base := &block[0]
	switch a.live[base] {
	case 0:
		fail("deallocate of unknown or already released block %p", base)
	case 1:
		delete(a.live, base)
	default:
		a.live[base]--
	}
	a.blocks--
	a.slots -= len(block)
	a.deallocs++
	a.next.Deallocate(block)
}

// FailAfter lets the next n allocations through and fails every one after
// that until FailAfter is called again. A negative n disables failures.
func (a *TrackingAllocator[T]) FailAfter(n int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failAfter = n
}

// FailNext makes every allocation fail, starting with the next one.
func (a *TrackingAllocator[T]) FailNext() {
	a.FailAfter(0)
}

// CheckLeaks returns an error if any block handed out has not come back.
func (a *TrackingAllocator[T]) CheckLeaks() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.blocks == 0 {
		return nil
	}
	Logger().Warn("vector: leaked blocks",
		zap.Int("blocks", a.blocks),
		zap.Int("slots", a.slots),
	)
	return fmt.Errorf("vector: %d blocks (%d slots) not released", a.blocks, a.slots)
}
