package vector

import (
	"fmt"
	"math"
	"reflect"
	"unsafe"

	"modernc.org/memory"
)

// Allocator hands out raw blocks of n element slots and takes them back.
// A block's contents are unspecified; Storage never reads a slot that a
// Vector has not constructed.
type Allocator[T any] interface {
	// Allocate returns a block of exactly n slots. n is always > 0.
	Allocate(n int) ([]T, error)
	// Deallocate returns a block obtained from Allocate. It must not be
	// called twice for the same block.
	Deallocate(block []T)
}

// maxHeapBytes bounds a single heap block, below the runtime's own limit so
// oversized requests surface as errors instead of a makeslice panic.
const maxHeapBytes uint64 = 1 << 47

// HeapAllocator allocates blocks on the Go heap. Deallocate drops the block
// and leaves reclamation to the garbage collector.
type HeapAllocator[T any] struct{}

// Allocate returns a block of n slots backed by make.
func (HeapAllocator[T]) Allocate(n int) ([]T, error) {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	if size != 0 && uint64(n) > maxHeapBytes/size {
		return nil, newError("allocate", KindAllocation, -1,
			fmt.Errorf("%d slots of %d bytes exceed the heap block limit", n, size))
	}
	return make([]T, n), nil
}

// Deallocate is a no-op for heap blocks.
func (HeapAllocator[T]) Deallocate([]T) {}

// offHeapAlign is the alignment modernc.org/memory guarantees for its blocks.
const offHeapAlign = 16

// OffHeapAllocator allocates blocks outside the Go heap using
// modernc.org/memory. The garbage collector does not scan those blocks, so
// the element type must not contain pointers; NewOffHeapAllocator rejects
// such types. Not safe for concurrent use.
type OffHeapAllocator[T any] struct {
	mem memory.Allocator
}

// NewOffHeapAllocator returns an allocator for T, or an ErrUnsupported error
// if T holds pointers or needs more than 16-byte alignment.
func NewOffHeapAllocator[T any]() (*OffHeapAllocator[T], error) {
	typ := reflect.TypeFor[T]()
	if hasPointers(typ) {
		return nil, newError("new_off_heap_allocator", KindUnsupported, -1,
			fmt.Errorf("element type %s contains pointers", typ))
	}
	if typ.Align() > offHeapAlign {
		return nil, newError("new_off_heap_allocator", KindUnsupported, -1,
			fmt.Errorf("element type %s needs %d-byte alignment", typ, typ.Align()))
	}
	return &OffHeapAllocator[T]{}, nil
}

// Allocate returns an uninitialized block of n slots.
func (a *OffHeapAllocator[T]) Allocate(n int) ([]T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return make([]T, n), nil
	}
	if uint64(n) > uint64(math.MaxInt)/uint64(size) {
		return nil, newError("allocate", KindAllocation, -1,
			fmt.Errorf("%d slots of %d bytes overflow", n, size))
	}
	p, err := a.mem.UnsafeMalloc(n * int(size))
	if err != nil {
		return nil, newError("allocate", KindAllocation, -1, err)
	}
	return unsafe.Slice((*T)(p), n), nil
}

// Deallocate frees a block returned by Allocate.
func (a *OffHeapAllocator[T]) Deallocate(block []T) {
	var zero T
	if len(block) == 0 || unsafe.Sizeof(zero) == 0 {
		return
	}
	if err := a.mem.UnsafeFree(unsafe.Pointer(unsafe.SliceData(block))); err != nil {
		fail("off-heap free: %v", err)
	}
}

// Close releases every page the allocator obtained from the OS. Blocks still
// held by a Storage become invalid.
func (a *OffHeapAllocator[T]) Close() error {
	return a.mem.Close()
}

// hasPointers reports whether values of typ contain anything the garbage
// collector must trace.
func hasPointers(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typ.Len() > 0 && hasPointers(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			if hasPointers(typ.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
