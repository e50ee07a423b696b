package vector

// Storage owns one contiguous block of element slots obtained from an
// Allocator. It tracks capacity only: it never constructs, copies or
// destroys the values in its slots, and it cannot tell which slots are live.
//
// A Storage must not be copied by value once it owns a block; transfer it
// with Take or MoveFrom, or exchange blocks with Swap.
type Storage[T any] struct {
	buf   []T // nil iff capacity is 0
	alloc Allocator[T]
}

// NewStorage reserves a block of exactly capacity slots from alloc. A nil
// alloc means HeapAllocator. Capacity 0 allocates nothing.
func NewStorage[T any](alloc Allocator[T], capacity int) (Storage[T], error) {
	checkNonNegative("capacity", capacity)
	if alloc == nil {
		alloc = HeapAllocator[T]{}
	}
	s := Storage[T]{alloc: alloc}
	if capacity == 0 {
		return s, nil
	}
	buf, err := alloc.Allocate(capacity)
	if err != nil {
		return Storage[T]{}, withOp("allocate", KindAllocation, err)
	}
	if len(buf) != capacity {
		fail("allocator returned %d slots, want %d", len(buf), capacity)
	}
	s.buf = buf
	return s, nil
}

// Release returns the block to its allocator and leaves s empty. Any live
// values in the block must have been destroyed by the caller.
func (s *Storage[T]) Release() {
	if s.buf != nil {
		s.alloc.Deallocate(s.buf)
	}
	s.buf = nil
}

// Take moves the block out of s. s is left empty.
func (s *Storage[T]) Take() Storage[T] {
	out := *s
	s.buf = nil
	return out
}

// MoveFrom releases the block s owns, then adopts the block of other.
// other is left empty. Moving a Storage onto itself does nothing.
func (s *Storage[T]) MoveFrom(other *Storage[T]) {
	if s == other {
		return
	}
	s.Release()
	*s = other.Take()
}

// Swap exchanges the blocks (and their allocators) of s and other.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.buf, other.buf = other.buf, s.buf
	s.alloc, other.alloc = other.alloc, s.alloc
}

// Slot returns the address of slot i. i must be in [0, Capacity()).
func (s *Storage[T]) Slot(i int) *T {
	checkIndex("storage", i, len(s.buf))
	return &s.buf[i]
}

// From returns the slots [off, Capacity()). off may equal Capacity(), which
// yields an empty slice.
func (s *Storage[T]) From(off int) []T {
	if off < 0 || off > len(s.buf) {
		fail("storage offset %d out of range [0,%d]", off, len(s.buf))
	}
	return s.buf[off:]
}

// Capacity returns the number of slots in the block.
func (s *Storage[T]) Capacity() int {
	return len(s.buf)
}

// Allocator returns the allocator the block came from, or nil for a zero Storage.
func (s *Storage[T]) Allocator() Allocator[T] {
	return s.alloc
}
