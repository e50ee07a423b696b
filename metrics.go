package vector

// LiveBlocks returns the number of blocks handed out and not yet released.
func (a *TrackingAllocator[T]) LiveBlocks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.blocks
}

// LiveSlots returns the total capacity of the outstanding blocks.
func (a *TrackingAllocator[T]) LiveSlots() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.slots
}

// Metrics returns a snapshot of allocator statistics.
func (a *TrackingAllocator[T]) Metrics() AllocMetrics {
	a.mu.Lock()
	defer a.mu.Unlock()
	return AllocMetrics{
		LiveBlocks:    a.blocks,
		LiveSlots:     a.slots,
		Allocations:   a.allocs,
		Deallocations: a.deallocs,
		Failures:      a.failures,
	}
}

// AllocMetrics contains statistical information about a TrackingAllocator.
type AllocMetrics struct {
	LiveBlocks    int // Blocks currently outstanding
	LiveSlots     int // Slots in outstanding blocks
	Allocations   int // Successful allocations
	Deallocations int // Blocks returned
	Failures      int // Failed allocations, injected or not
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}
