package vector_test

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pavanmanishd/vector"
)

// Example demonstrates basic vector usage
func Example() {
	v := vector.New[int]()
	defer v.Release() // Always clean up

	_ = v.PushBack(1)
	_ = v.PushBack(3)
	fmt.Printf("Values: %v, capacity: %d\n", v.Values(), v.Capacity())

	// Insert grows the block when it is full
	_, _ = v.Insert(1, 2)
	fmt.Printf("After insert: %v, capacity: %d\n", v.Values(), v.Capacity())

	_, _ = v.Erase(0)
	fmt.Printf("After erase: %v, size: %d\n", v.Values(), v.Size())

	*v.At(0) = 20
	for i, p := range v.All() {
		fmt.Printf("v[%d] = %d\n", i, *p)
	}

	// Output:
	// Values: [1 3], capacity: 2
	// After insert: [1 2 3], capacity: 4
	// After erase: [2 3], size: 2
	// v[0] = 20
	// v[1] = 3
}

// ExampleVector_Clone shows that a clone is independent of its source
func ExampleVector_Clone() {
	v := vector.New[string]()
	defer v.Release()
	_ = v.PushBack("a")
	_ = v.PushBack("b")
	_ = v.PushBack("c")

	w, err := v.Clone()
	if err != nil {
		panic(err)
	}
	defer w.Release()
	*w.At(0) = "z"

	fmt.Println(v.Values(), v.Capacity())
	fmt.Println(w.Values(), w.Capacity())

	// Output:
	// [a b c] 4
	// [z b c] 3
}

// conn is a move-only element type.
type conn struct {
	id   int
	open bool
}

func (c *conn) MoveFrom(src *conn) error {
	*c = *src
	*src = conn{}
	return nil
}

func (c *conn) NothrowMove() {}
func (c *conn) MoveOnly()    {}

func (c *conn) Destroy() {
	if c.open {
		fmt.Printf("closing %d\n", c.id)
		c.open = false
	}
}

// ExampleVector_EmplaceBack constructs move-only elements in place
func ExampleVector_EmplaceBack() {
	v := vector.New[conn]()

	for i := 1; i <= 3; i++ {
		_, _ = v.EmplaceBack(func(c *conn) error {
			c.id, c.open = i, true
			return nil
		})
	}

	if _, err := v.Clone(); errors.Is(err, vector.ErrNotCopyable) {
		fmt.Println("clone:", err)
	}

	v.PopBack()
	v.Release()

	// Output:
	// clone: vector: clone: not_copyable
	// closing 3
	// closing 1
	// closing 2
}

// ExampleTrackingAllocator demonstrates failure injection and leak checks
func ExampleTrackingAllocator() {
	track := vector.NewTrackingAllocator[int](nil)
	v, _ := vector.NewWithAllocator[int](track, 0)

	_ = v.PushBack(1)
	_ = v.PushBack(2)

	// The vector is full, so the next push must allocate
	track.FailNext()
	err := v.PushBack(3)
	fmt.Println(err)
	fmt.Println(errors.Is(err, vector.ErrAllocation), errors.Is(err, vector.ErrInjectedFailure))
	fmt.Println("unchanged:", v.Values())

	track.FailAfter(-1)
	_ = v.PushBack(3)
	fmt.Printf("Metrics: %+v\n", track.Metrics())

	v.Release()
	fmt.Println("leaks:", track.CheckLeaks())

	// Output:
	// vector: push_back: allocation (caused by: injected allocation failure)
	// true true
	// unchanged: [1 2]
	// Metrics: {LiveBlocks:1 LiveSlots:4 Allocations:3 Deallocations:2 Failures:1}
	// leaks: <nil>
}

// ExampleOffHeapAllocator keeps the elements outside the Go heap
func ExampleOffHeapAllocator() {
	type point struct{ X, Y int32 }

	alloc, err := vector.NewOffHeapAllocator[point]()
	if err != nil {
		panic(err)
	}
	defer alloc.Close()

	v, _ := vector.NewWithAllocator[point](alloc, 0)
	defer v.Release()
	for i := int32(0); i < 4; i++ {
		_ = v.PushBack(point{i, i * i})
	}
	fmt.Println(v.Values())

	_, err = vector.NewOffHeapAllocator[*point]()
	fmt.Println(errors.Is(err, vector.ErrUnsupported))

	// Output:
	// [{0 0} {1 1} {2 4} {3 9}]
	// true
}

// ExampleTrackingAllocator_concurrent shows one tracker shared by vectors
// owned by different goroutines
func ExampleTrackingAllocator_concurrent() {
	track := vector.NewTrackingAllocator[int](nil)
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			v, _ := vector.NewWithAllocator[int](track, 0)
			defer v.Release()
			for j := 0; j < 100; j++ {
				_ = v.PushBack(id*100 + j)
			}
		}(i)
	}

	wg.Wait()
	m := track.Metrics()
	fmt.Printf("Allocations: %d, live blocks: %d\n", m.Allocations, m.LiveBlocks)

	// Output:
	// Allocations: 32, live blocks: 0
}
