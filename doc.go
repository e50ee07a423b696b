// Package vector implements a growable contiguous sequence with explicit
// element lifetimes.
//
// # Overview
//
// The package is split in two layers:
//
//   - Storage owns a block of uninitialized slots obtained from an Allocator.
//     It knows its capacity and nothing about which slots are live.
//   - Vector owns a Storage and a size, and is the only code that constructs,
//     copies, moves and destroys elements inside it.
//
// Element types opt into lifetime hooks by implementing Initializer,
// Copier, Mover, NothrowMover, MoveOnly or Destroyer on their pointer type.
// A type without hooks behaves like a plain Go value.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.PushBack(1)
//	_ = v.PushBack(3)
//	_, _ = v.Insert(1, 2) // [1 2 3]
//	_, _ = v.Erase(0)     // [2 3]
//
//	w, err := v.Clone() // deep copy, v is untouched
//
// # Failure Safety
//
// Every operation that constructs elements is all-or-nothing. When the
// block has to grow, a complete new block is built first; only after every
// element has been constructed in it are the old elements destroyed and the
// blocks swapped. If an allocation or a hook fails part way, whatever was
// built in the new block is destroyed, the block is released, and the vector
// is left exactly as it was.
//
// Existing elements are relocated by move when the move cannot fail (no
// hooks, or a Mover that is also a NothrowMover) or when the type is
// MoveOnly, and by copy otherwise, so a failed copy leaves the originals
// intact.
//
// Erase, and the shifting step of an in-place Emplace, only offer the
// guarantee of the element's MoveFrom: a failing move leaves every slot
// live but the order unspecified.
//
// Contract violations (an index out of range, PopBack on an empty vector,
// a negative size) panic. At checks the index against Size() only in builds
// tagged vectordebug.
//
// # Allocators
//
//   - HeapAllocator (default) allocates on the Go heap.
//   - OffHeapAllocator allocates outside the Go heap with modernc.org/memory,
//     for pointer-free element types.
//   - TrackingAllocator wraps either and records outstanding blocks, detects
//     double releases and injects allocation failures.
//
// # Thread Safety
//
// Vector and Storage are not safe for concurrent use. TrackingAllocator is.
//
// # Logging
//
// Reallocations and rollbacks are logged at debug level through a zap
// logger installed with SetLogger; the default logger discards everything.
package vector
