package vector

// Element hooks. Each one is optional and is looked up on *T. A type with
// no hooks is copied by assignment and moved by assignment followed by
// zeroing the source; neither can fail.
//
// Copy and move hooks run on a zeroed receiver when they construct a slot
// and on a live receiver when they assign over one, so they must release
// whatever the receiver held in the second case.

// Initializer is implemented by types whose zero value needs further setup
// to be a valid default.
type Initializer interface {
	Init() error
}

// Copier is implemented by types that deep-copy. A failing CopyFrom must
// leave src untouched.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Mover is implemented by types with a custom move. A failing MoveFrom may
// leave src in a moved-from state.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// NothrowMover marks a Mover whose MoveFrom never fails.
type NothrowMover interface {
	NothrowMove()
}

// MoveOnly marks a type that has no copy capability. Operations that would
// copy such an element return ErrNotCopyable.
type MoveOnly interface {
	MoveOnly()
}

// Destroyer is implemented by types that release resources when their slot
// is destroyed. Destroy is also called on moved-from values, and on the zero
// value left behind by a default move, so it must tolerate both.
type Destroyer interface {
	Destroy()
}

type traits struct {
	copier      bool
	mover       bool
	nothrowMove bool
	moveOnly    bool
}

func traitsOf[T any]() traits {
	p := any((*T)(nil))
	var t traits
	_, t.copier = p.(Copier[T])
	_, t.mover = p.(Mover[T])
	_, t.nothrowMove = p.(NothrowMover)
	_, t.moveOnly = p.(MoveOnly)
	return t
}

// relocateByMove applies the move-or-copy rule: move when moving cannot
// fail or when copying is impossible, copy otherwise so a failure leaves
// the source elements intact.
func (t traits) relocateByMove() bool {
	if t.moveOnly {
		return true
	}
	if t.mover {
		return t.nothrowMove
	}
	return !t.copier
}

func constructDefault[T any](p *T) error {
	var zero T
	*p = zero
	if in, ok := any(p).(Initializer); ok {
		if err := in.Init(); err != nil {
			*p = zero
			return err
		}
	}
	return nil
}

func constructWith[T any](p *T, init func(*T) error) error {
	var zero T
	*p = zero
	if init == nil {
		return constructDefault(p)
	}
	if err := init(p); err != nil {
		*p = zero
		return err
	}
	return nil
}

func copyConstruct[T any](dst, src *T) error {
	var zero T
	*dst = zero
	if err := copyAssign(dst, src); err != nil {
		*dst = zero
		return err
	}
	return nil
}

func moveConstruct[T any](dst, src *T) error {
	var zero T
	*dst = zero
	if err := moveAssign(dst, src); err != nil {
		*dst = zero
		return err
	}
	return nil
}

func copyAssign[T any](dst, src *T) error {
	if c, ok := any(dst).(Copier[T]); ok {
		return c.CopyFrom(src)
	}
	*dst = *src
	return nil
}

// moveAssign falls back to CopyFrom for types that copy but do not move.
func moveAssign[T any](dst, src *T) error {
	if m, ok := any(dst).(Mover[T]); ok {
		return m.MoveFrom(src)
	}
	if c, ok := any(dst).(Copier[T]); ok {
		return c.CopyFrom(src)
	}
	var zero T
	*dst = *src
	*src = zero
	return nil
}

// copyOver and moveOver assign onto a slot that already holds a live
// element. Hooked types release the old value inside CopyFrom or MoveFrom;
// the default assignment just overwrites it, so it is destroyed first.
func copyOver[T any](dst, src *T) error {
	if _, ok := any(dst).(Copier[T]); !ok {
		runDestroy(dst)
	}
	return copyAssign(dst, src)
}

func moveOver[T any](dst, src *T) error {
	t := traitsOf[T]()
	if !t.mover && !t.copier {
		runDestroy(dst)
	}
	return moveAssign(dst, src)
}

func runDestroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
}

func destroy[T any](p *T) {
	runDestroy(p)
	var zero T
	*p = zero
}

func destroyRange[T any](s []T) {
	for i := range s {
		destroy(&s[i])
	}
}

// relocate constructs dst[i] from src[i] for every i; base is the index of
// src[0] for error reporting. If it fails or a hook panics, the slots of dst
// built so far are destroyed before it returns.
func relocate[T any](dst, src []T, base int, move bool) (err error) {
	n := 0
	defer func() {
		if n < len(src) {
			destroyRange(dst[:n])
		}
	}()
	for ; n < len(src); n++ {
		if move {
			err = moveConstruct(&dst[n], &src[n])
		} else {
			err = copyConstruct(&dst[n], &src[n])
		}
		if err != nil {
			return newError("relocate", relocateKind(move), base+n, err)
		}
	}
	return nil
}

// constructRange default-constructs every slot of dst with the same
// unwinding as relocate.
func constructRange[T any](dst []T, base int) (err error) {
	n := 0
	defer func() {
		if n < len(dst) {
			destroyRange(dst[:n])
		}
	}()
	for ; n < len(dst); n++ {
		if err = constructDefault(&dst[n]); err != nil {
			return newError("construct", KindConstruct, base+n, err)
		}
	}
	return nil
}

func relocateKind(move bool) Kind {
	if move {
		return KindMove
	}
	return KindCopy
}
