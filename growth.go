package vector

import (
	"fmt"
	"math"
)

// Reserve ensures Capacity() >= n. When the block has to grow, the elements
// are relocated into a new block of exactly n slots; if that fails the new
// block is discarded and v is left as it was.
func (v *Vector[T]) Reserve(n int) error {
	checkNonNegative("capacity", n)
	if n <= v.data.Capacity() {
		return nil
	}
	return v.rebuild("reserve", KindConstruct, n, v.size, false, nil)
}

// Resize destroys the elements past n, or grows the vector to n elements by
// default-constructing the new ones. If a construction fails the ones built
// by this call are destroyed and Size() is unchanged, though the capacity
// may already have grown.
func (v *Vector[T]) Resize(n int) error {
	checkNonNegative("size", n)
	switch {
	case n < v.size:
		destroyRange(v.data.buf[n:v.size])
	case n > v.size:
		if err := v.Reserve(n); err != nil {
			return withOp("resize", KindAllocation, err)
		}
		if err := constructRange(v.data.buf[v.size:n], v.size); err != nil {
			return withOp("resize", KindConstruct, err)
		}
	}
	v.size = n
	return nil
}

// grownCapacity is the capacity after an append-triggered growth: 1 for an
// empty block, double otherwise.
func (v *Vector[T]) grownCapacity(op string) (int, error) {
	c := v.data.Capacity()
	if c == 0 {
		return 1, nil
	}
	if c > math.MaxInt/2 {
		return 0, newError(op, KindAllocation, -1, fmt.Errorf("capacity %d cannot double", c))
	}
	return c * 2, nil
}

// rebuild moves v onto a fresh block of newCap slots. With insert set, a new
// element is first constructed by init directly at pos in the new block, and
// the elements from pos onward land one slot to the right of where they were.
// Existing elements are relocated by move or copy according to the element's
// hooks. Either v ends up on the new block, or the new block is unwound and
// released and v keeps its old block untouched.
func (v *Vector[T]) rebuild(op string, kind Kind, newCap, pos int, insert bool, init func(*T) error) (err error) {
	fresh, err := NewStorage(v.allocator(), newCap)
	if err != nil {
		return withOp(op, KindAllocation, err)
	}
	move := traitsOf[T]().relocateByMove()

	var committed, built, prefixBuilt bool
	defer func() {
		if committed {
			return
		}
		if prefixBuilt {
			destroyRange(fresh.buf[:pos])
		}
		if built {
			destroy(&fresh.buf[pos])
		}
		fresh.Release()
		logRollback(op, newCap, err)
	}()

	old := v.data.buf[:v.size]
	if insert {
		if err = constructWith(&fresh.buf[pos], init); err != nil {
			return newError(op, kind, pos, err)
		}
		built = true
		if err = relocate(fresh.buf[:pos], old[:pos], 0, move); err != nil {
			return withOp(op, relocateKind(move), err)
		}
		prefixBuilt = true
		if err = relocate(fresh.buf[pos+1:v.size+1], old[pos:], pos, move); err != nil {
			return withOp(op, relocateKind(move), err)
		}
	} else {
		if err = relocate(fresh.buf[:v.size], old, 0, move); err != nil {
			return withOp(op, relocateKind(move), err)
		}
	}
	committed = true

	oldCap := v.data.Capacity()
	destroyRange(old)
	v.data.Swap(&fresh)
	fresh.Release()
	if insert {
		v.size++
	}
	logReallocate(op, oldCap, newCap, v.size, move)
	return nil
}
