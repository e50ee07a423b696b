package vector

// PushBack appends a copy of value. If the block is full it grows (1, then
// doubling) and the copy is constructed in the new block before the existing
// elements are relocated. On failure v is unchanged.
func (v *Vector[T]) PushBack(value T) error {
	if traitsOf[T]().moveOnly {
		return newError("push_back", KindNotCopyable, -1, nil)
	}
	_, err := v.emplaceAt("push_back", KindCopy, v.size, func(p *T) error {
		return copyAssign(p, &value)
	})
	return err
}

// PushBackMove appends by moving from *value. On failure v is unchanged;
// *value may be moved-from if its MoveFrom failed part way.
func (v *Vector[T]) PushBackMove(value *T) error {
	_, err := v.emplaceAt("push_back", KindMove, v.size, func(p *T) error {
		return moveAssign(p, value)
	})
	return err
}

// EmplaceBack appends an element constructed in place: init runs on the
// zeroed destination slot. It returns the element's address, valid until
// the next reallocation. On failure v is unchanged.
func (v *Vector[T]) EmplaceBack(init func(*T) error) (*T, error) {
	i, err := v.emplaceAt("emplace_back", KindConstruct, v.size, init)
	if err != nil {
		return nil, err
	}
	return &v.data.buf[i], nil
}

// Emplace inserts an element constructed by init before position pos, which
// must be in [0, Size()]. It returns the index of the new element, or -1 and
// an error.
//
// When the block is full, the element is built at its final slot in a new
// block and the elements around it are relocated; any failure leaves v
// exactly as it was. Otherwise the element is built in a temporary first, so
// a failing init changes nothing; the remaining steps move elements within
// the block and only fail if the element's MoveFrom can, in which case every
// slot stays live but the order is unspecified.
func (v *Vector[T]) Emplace(pos int, init func(*T) error) (int, error) {
	return v.emplaceAt("emplace", KindConstruct, pos, init)
}

// Insert inserts a copy of value before pos. See Emplace.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if traitsOf[T]().moveOnly {
		return -1, newError("insert", KindNotCopyable, -1, nil)
	}
	return v.emplaceAt("insert", KindCopy, pos, func(p *T) error {
		return copyAssign(p, &value)
	})
}

// InsertMove inserts before pos by moving from *value. See Emplace.
func (v *Vector[T]) InsertMove(pos int, value *T) (int, error) {
	return v.emplaceAt("insert", KindMove, pos, func(p *T) error {
		return moveAssign(p, value)
	})
}

func (v *Vector[T]) emplaceAt(op string, kind Kind, pos int, init func(*T) error) (int, error) {
	if pos < 0 || pos > v.size {
		fail("%s position %d out of range [0,%d]", op, pos, v.size)
	}
	if v.size == v.data.Capacity() {
		newCap, err := v.grownCapacity(op)
		if err != nil {
			return -1, err
		}
		if err := v.rebuild(op, kind, newCap, pos, true, init); err != nil {
			return -1, err
		}
		return pos, nil
	}
	if pos == v.size {
		if err := constructWith(&v.data.buf[pos], init); err != nil {
			return -1, newError(op, kind, pos, err)
		}
		v.size++
		return pos, nil
	}
	if err := v.shiftInsert(op, kind, pos, init); err != nil {
		return -1, err
	}
	return pos, nil
}

// shiftInsert inserts at pos < Size() without reallocating: build the value
// in a temporary, move the last element into the spare slot, shift
// [pos, Size()-1) right by move-assignment, then move the temporary into pos.
func (v *Vector[T]) shiftInsert(op string, kind Kind, pos int, init func(*T) error) error {
	var tmp T
	if err := constructWith(&tmp, init); err != nil {
		return newError(op, kind, pos, err)
	}
	defer destroy(&tmp)

	buf := v.data.buf
	last := v.size - 1
	if err := moveConstruct(&buf[v.size], &buf[last]); err != nil {
		return newError(op, KindMove, last, err)
	}
	v.size++

	for i := last; i > pos; i-- {
		if err := moveOver(&buf[i], &buf[i-1]); err != nil {
			return newError(op, KindMove, i-1, err)
		}
	}
	if err := moveOver(&buf[pos], &tmp); err != nil {
		return newError(op, KindMove, pos, err)
	}
	return nil
}

// Erase removes the element at pos, which must be in [0, Size()), shifting
// the later elements left by move-assignment. It returns pos, now the index
// of the element that followed the erased one.
//
// Erase only offers the guarantee of the element's MoveFrom: if a move fails
// part way the error is returned, Size() is unchanged and every slot is
// still live, but some elements may be moved-from or duplicated.
func (v *Vector[T]) Erase(pos int) (int, error) {
	checkIndex("erase", pos, v.size)
	buf := v.data.buf
	for i := pos; i < v.size-1; i++ {
		if err := moveOver(&buf[i], &buf[i+1]); err != nil {
			return -1, newError("erase", KindMove, i+1, err)
		}
	}
	v.size--
	destroy(&buf[v.size])
	return pos, nil
}

// PopBack destroys the last element. It panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		fail("pop_back on empty vector")
	}
	v.size--
	destroy(&v.data.buf[v.size])
}
