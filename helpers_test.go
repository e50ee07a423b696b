package vector

import (
	"errors"
	"testing"

	"golang.org/x/exp/slices"
)

var errBoom = errors.New("boom")

// ledger counts live hooked elements and fails (or panics in) the hook call
// with a chosen number. Tests using it must not run in parallel.
type ledger struct {
	live    int
	calls   int
	failAt  int
	panicAt int
	copies  int
	moves   int
	closed  []int // values of destroyed plainItems, in order
}

var led ledger

func resetLedger(t *testing.T) {
	t.Helper()
	led = ledger{}
	t.Cleanup(func() { led = ledger{} })
}

// failOnCall makes the n-th fallible hook call from now return errBoom.
func failOnCall(n int) {
	led.calls = 0
	led.failAt = n
}

// panicOnCall makes the n-th fallible hook call from now panic.
func panicOnCall(n int) {
	led.calls = 0
	led.panicAt = n
}

func (l *ledger) tick() error {
	l.calls++
	if l.panicAt > 0 && l.calls == l.panicAt {
		panic("hook panic")
	}
	if l.failAt > 0 && l.calls == l.failAt {
		return errBoom
	}
	return nil
}

// copyItem deep-copies and has no move, so it is relocated by copy.
type copyItem struct {
	val   int
	alive bool
}

func (c *copyItem) Init() error {
	if err := led.tick(); err != nil {
		return err
	}
	led.live++
	c.alive = true
	return nil
}

func (c *copyItem) CopyFrom(src *copyItem) error {
	if !src.alive {
		panic("copy from a dead copyItem")
	}
	if err := led.tick(); err != nil {
		return err
	}
	if !c.alive {
		led.live++
		c.alive = true
	}
	c.val = src.val
	led.copies++
	return nil
}

func (c *copyItem) Destroy() {
	if !c.alive {
		panic("destroy of a dead copyItem")
	}
	led.live--
	c.alive = false
}

// moveItem copies and moves; its move never fails, so it is relocated by move.
type moveItem struct {
	val   int
	alive bool
}

func (m *moveItem) Init() error {
	if err := led.tick(); err != nil {
		return err
	}
	led.live++
	m.alive = true
	return nil
}

func (m *moveItem) CopyFrom(src *moveItem) error {
	if err := led.tick(); err != nil {
		return err
	}
	if !m.alive {
		led.live++
		m.alive = true
	}
	m.val = src.val
	led.copies++
	return nil
}

func (m *moveItem) MoveFrom(src *moveItem) error {
	if !m.alive {
		led.live++
		m.alive = true
	}
	m.val = src.val
	src.val = -1
	led.moves++
	return nil
}

func (m *moveItem) NothrowMove() {}

func (m *moveItem) Destroy() {
	if !m.alive {
		panic("destroy of a dead moveItem")
	}
	led.live--
	m.alive = false
}

// uniqueItem cannot be copied and its move can fail.
type uniqueItem struct {
	val   int
	alive bool
}

func (u *uniqueItem) Init() error {
	if err := led.tick(); err != nil {
		return err
	}
	led.live++
	u.alive = true
	return nil
}

func (u *uniqueItem) MoveFrom(src *uniqueItem) error {
	if err := led.tick(); err != nil {
		return err
	}
	if !u.alive {
		led.live++
		u.alive = true
	}
	u.val = src.val
	src.val = -1
	led.moves++
	return nil
}

func (u *uniqueItem) MoveOnly() {}

func (u *uniqueItem) Destroy() {
	if !u.alive {
		panic("destroy of a dead uniqueItem")
	}
	led.live--
	u.alive = false
}

// fallibleMover can copy and move, but its move may fail, so it is
// relocated by copy.
type fallibleMover struct{ val int }

func (f *fallibleMover) CopyFrom(src *fallibleMover) error { f.val = src.val; return nil }
func (f *fallibleMover) MoveFrom(src *fallibleMover) error { f.val = src.val; return nil }

// plainItem has Init and Destroy but no copy or move hook, so it is copied
// and moved by the default assignment. Destroy tolerates the zero value a
// default move leaves behind.
type plainItem struct {
	val   int
	alive bool
}

func (p *plainItem) Init() error {
	if err := led.tick(); err != nil {
		return err
	}
	led.live++
	p.alive = true
	return nil
}

func (p *plainItem) Destroy() {
	if !p.alive {
		return
	}
	led.live--
	led.closed = append(led.closed, p.val)
	p.alive = false
}

// valueOf returns an init func for EmplaceBack/Emplace that default
// constructs an element and sets its value.
func valueOf[T any, P interface {
	*T
	Initializer
	setVal(int)
}](val int) func(*T) error {
	return func(p *T) error {
		if err := P(p).Init(); err != nil {
			return err
		}
		P(p).setVal(val)
		return nil
	}
}

func (c *copyItem) setVal(v int)   { c.val = v }
func (m *moveItem) setVal(v int)   { m.val = v }
func (u *uniqueItem) setVal(v int) { u.val = v }
func (p *plainItem) setVal(v int)  { p.val = v }

func (c copyItem) value() int   { return c.val }
func (m moveItem) value() int   { return m.val }
func (u uniqueItem) value() int { return u.val }
func (p plainItem) value() int  { return p.val }

// fill builds a vector on alloc holding vals, constructed in place.
func fill[T any, P interface {
	*T
	Initializer
	setVal(int)
}](t *testing.T, alloc Allocator[T], vals ...int) *Vector[T] {
	t.Helper()
	v, err := NewWithAllocator[T](alloc, 0)
	if err != nil {
		t.Fatalf("NewWithAllocator: %v", err)
	}
	if err := v.Reserve(len(vals)); err != nil {
		t.Fatalf("Reserve(%d): %v", len(vals), err)
	}
	for _, val := range vals {
		if _, err := v.EmplaceBack(valueOf[T, P](val)); err != nil {
			t.Fatalf("EmplaceBack(%d): %v", val, err)
		}
	}
	return v
}

// valuesOf returns the values held by a vector of hooked elements.
func valuesOf[T interface{ value() int }](v *Vector[T]) []int {
	out := make([]int, 0, v.Size())
	for _, p := range v.All() {
		out = append(out, (*p).value())
	}
	return out
}

// ints builds a plain int vector.
func ints(t *testing.T, vals ...int) *Vector[int] {
	t.Helper()
	v := New[int]()
	for _, val := range vals {
		if err := v.PushBack(val); err != nil {
			t.Fatalf("PushBack(%d): %v", val, err)
		}
	}
	return v
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func checkClosed(t *testing.T, want ...int) {
	t.Helper()
	if !slices.Equal(led.closed, want) {
		t.Errorf("destroyed = %v, want %v", led.closed, want)
	}
}

func checkLive(t *testing.T, want int) {
	t.Helper()
	if led.live != want {
		t.Errorf("live elements = %d, want %d", led.live, want)
	}
}
