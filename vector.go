package vector

import (
	"iter"

	"golang.org/x/exp/slices"
)

// Vector is a growable contiguous sequence of T. Slots [0, Size()) hold
// live elements; the rest of the block is uninitialized. Vector is the only
// code that runs element hooks on its Storage.
//
// The zero value is an empty vector that allocates from the Go heap.
// Not safe for concurrent use.
type Vector[T any] struct {
	data  Storage[T]
	size  int
	alloc Allocator[T]
}

// New returns an empty vector with no capacity.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n default-constructed elements on the heap.
func NewSized[T any](n int) (*Vector[T], error) {
	return NewWithAllocator[T](nil, n)
}

// NewWithAllocator returns a vector of n default-constructed elements whose
// blocks come from alloc (HeapAllocator when nil). If constructing any
// element fails, the ones already built are destroyed, the block is
// released, and the error is returned.
func NewWithAllocator[T any](alloc Allocator[T], n int) (*Vector[T], error) {
	checkNonNegative("size", n)
	v := &Vector[T]{alloc: alloc}
	data, err := NewStorage(v.allocator(), n)
	if err != nil {
		return nil, withOp("new", KindAllocation, err)
	}
	committed := false
	defer func() {
		if !committed {
			data.Release()
		}
	}()
	if err := constructRange(data.buf, 0); err != nil {
		return nil, withOp("new", KindConstruct, err)
	}
	committed = true
	v.data = data.Take()
	v.size = n
	return v, nil
}

// Clone returns a deep copy of v in a block of exactly Size() slots from the
// same allocator. v is never modified. On failure nothing is leaked.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith("clone", v.alloc)
}

func (v *Vector[T]) cloneWith(op string, alloc Allocator[T]) (*Vector[T], error) {
	if traitsOf[T]().moveOnly {
		return nil, newError(op, KindNotCopyable, -1, nil)
	}
	out := &Vector[T]{alloc: alloc}
	data, err := NewStorage(out.allocator(), v.size)
	if err != nil {
		return nil, withOp(op, KindAllocation, err)
	}
	committed := false
	defer func() {
		if !committed {
			data.Release()
		}
	}()
	if err := relocate(data.buf, v.data.buf[:v.size], 0, false); err != nil {
		return nil, withOp(op, KindCopy, err)
	}
	committed = true
	out.data = data.Take()
	out.size = v.size
	return out, nil
}

// Take moves the contents of v into a new vector in O(1). v is left empty
// with no capacity.
func (v *Vector[T]) Take() *Vector[T] {
	out := &Vector[T]{data: v.data.Take(), size: v.size, alloc: v.alloc}
	v.size = 0
	return out
}

// Release destroys every live element and returns the block to the
// allocator. v remains usable as an empty vector.
func (v *Vector[T]) Release() {
	destroyRange(v.data.buf[:v.size])
	v.size = 0
	v.data.Release()
}

// Assign makes v a copy of src. When src does not fit in v's capacity, a
// full copy is built first and swapped in, so a failure leaves v unchanged.
// Otherwise v's block is reused: the common prefix is copy-assigned, then the
// excess tail destroyed or the missing suffix copy-constructed. In that case
// a failing CopyFrom can leave the prefix partly overwritten, but v's size
// and element count stay consistent.
func (v *Vector[T]) Assign(src *Vector[T]) error {
	if v == src {
		return nil
	}
	if traitsOf[T]().moveOnly {
		return newError("assign", KindNotCopyable, -1, nil)
	}
	if src.size > v.data.Capacity() {
		tmp, err := src.cloneWith("assign", v.alloc)
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	buf := v.data.buf
	common := min(v.size, src.size)
	for i := 0; i < common; i++ {
		if err := copyOver(&buf[i], &src.data.buf[i]); err != nil {
			return newError("assign", KindCopy, i, err)
		}
	}
	if src.size < v.size {
		destroyRange(buf[src.size:v.size])
	} else if src.size > v.size {
		if err := relocate(buf[v.size:src.size], src.data.buf[v.size:src.size], v.size, false); err != nil {
			return withOp("assign", KindCopy, err)
		}
	}
	v.size = src.size
	return nil
}

// MoveAssign destroys v's elements, releases its block, and takes over the
// block, size and allocator of src. src is left empty.
func (v *Vector[T]) MoveAssign(src *Vector[T]) {
	if v == src {
		return
	}
	destroyRange(v.data.buf[:v.size])
	v.data.MoveFrom(&src.data)
	v.size = src.size
	v.alloc = src.alloc
	src.size = 0
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
	v.alloc, other.alloc = other.alloc, v.alloc
}

// At returns the address of element i. The caller must ensure i < Size();
// builds tagged vectordebug check it, others only check against Capacity().
// The address is invalidated by any operation that reallocates.
func (v *Vector[T]) At(i int) *T {
	if debugChecks {
		checkIndex("vector", i, v.size)
	}
	return v.data.Slot(i)
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots in the current block.
func (v *Vector[T]) Capacity() int {
	return v.data.Capacity()
}

// Empty reports whether v has no live elements.
func (v *Vector[T]) Empty() bool {
	return v.size == 0
}

// Allocator returns the allocator new blocks come from.
func (v *Vector[T]) Allocator() Allocator[T] {
	return v.allocator()
}

// All iterates over the live elements by address. v must not be mutated
// during iteration.
func (v *Vector[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, &v.data.buf[i]) {
				return
			}
		}
	}
}

// Values returns a shallow copy of the live elements. No hooks run.
func (v *Vector[T]) Values() []T {
	return slices.Clone(v.data.buf[:v.size])
}

func (v *Vector[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return HeapAllocator[T]{}
	}
	return v.alloc
}
