package vector

import (
	"strconv"
	"strings"
)

// Kind categorizes a recoverable failure.
type Kind string

const (
	KindAllocation  Kind = "allocation"   // allocator could not provide a block
	KindConstruct   Kind = "construct"    // Init or an emplace constructor failed
	KindCopy        Kind = "copy"         // CopyFrom failed
	KindMove        Kind = "move"         // MoveFrom failed
	KindNotCopyable Kind = "not_copyable" // copy requested for a MoveOnly type
	KindUnsupported Kind = "unsupported"  // element type not usable with an allocator
)

// Error is the structured error returned by Storage, Vector and the allocators.
type Error struct {
	Cause error
	Op    string
	Kind  Kind
	// Index is the slot the failing hook ran on, or -1.
	Index int
}

// Sentinels for errors.Is. They match any *Error of the same Kind.
var (
	ErrAllocation  = &Error{Kind: KindAllocation, Index: -1}
	ErrConstruct   = &Error{Kind: KindConstruct, Index: -1}
	ErrCopy        = &Error{Kind: KindCopy, Index: -1}
	ErrMove        = &Error{Kind: KindMove, Index: -1}
	ErrNotCopyable = &Error{Kind: KindNotCopyable, Index: -1}
	ErrUnsupported = &Error{Kind: KindUnsupported, Index: -1}
)

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("vector: ")
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Index >= 0 {
		b.WriteString(" at ")
		b.WriteString(strconv.Itoa(e.Index))
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind. A target with an
// empty Op matches any operation.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Op == "" || t.Op == e.Op
}

func newError(op string, kind Kind, index int, cause error) *Error {
	return &Error{Op: op, Kind: kind, Index: index, Cause: cause}
}

// withOp stamps op onto a lower-level *Error so the caller sees the
// operation it invoked. Other errors are wrapped as kind.
func withOp(op string, kind Kind, err error) error {
	if e, ok := err.(*Error); ok {
		c := *e
		c.Op = op
		return &c
	}
	return newError(op, kind, -1, err)
}
