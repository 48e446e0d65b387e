// Package rc implements a single-goroutine reference-counted shared
// pointer. A control block pairs the owned value with a cell-backed
// count; handles clone by incrementing and drop by decrementing, and the
// handle that takes the count to zero destroys the value and detaches the
// block. Not safe to share across goroutines; see package arc for the
// concurrent variant.
package rc

import (
	"math"

	"github.com/joshuapare/memkit/cell"
	"github.com/joshuapare/memkit/internal/goid"
)

// block is the control block shared by every handle to one value.
type block[T any] struct {
	value T
	count cell.Cell[int]
	drop  func(*T)
	owner goid.Owner
}

// Rc is one owning handle to a shared value. Handles are created with New
// and Clone only; copying an Rc any other way aliases the handle itself
// and corrupts drop accounting.
type Rc[T any] struct {
	inner *block[T]
}

// New allocates a control block owning value, with the count at 1.
func New[T any](value T) *Rc[T] {
	return NewWithDrop(value, nil)
}

// NewWithDrop is New with a hook run on the value exactly once, when the
// last handle drops.
func NewWithDrop[T any](value T, drop func(*T)) *Rc[T] {
	b := &block[T]{value: value, drop: drop, owner: goid.Capture()}
	b.count.Set(1)
	return &Rc[T]{inner: b}
}

// Clone increments the count and returns a new handle to the same block.
// Panics on count overflow.
func (r *Rc[T]) Clone() *Rc[T] {
	b := r.block("rc.Clone")
	n := b.count.Get()
	if n == math.MaxInt {
		panic("rc: reference count overflow")
	}
	b.count.Set(n + 1)
	return &Rc[T]{inner: b}
}

// Value returns read access to the shared value. The pointer is shared
// with every other handle; callers must not mutate through it (wrap the
// mutable parts in a cell.Guarded for in-place mutation).
func (r *Rc[T]) Value() *T {
	return &r.block("rc.Value").value
}

// Count returns the number of live handles.
func (r *Rc[T]) Count() int {
	return r.block("rc.Count").count.Get()
}

// Drop releases this handle. The handle that takes the count to zero runs
// the drop hook and detaches the block; the block is destroyed exactly
// once. Panics when this handle was already dropped.
func (r *Rc[T]) Drop() {
	b := r.block("rc.Drop")
	r.inner = nil
	n := b.count.Get()
	if n <= 0 {
		panic("rc: reference count underflow")
	}
	n--
	b.count.Set(n)
	if n == 0 {
		if b.drop != nil {
			b.drop(&b.value)
		}
		// The block is unreachable from here; the collector reclaims it.
	}
}

// block guards every operation against use of a dropped handle and, when
// owner checking is enabled, against use from a foreign goroutine.
func (r *Rc[T]) block(op string) *block[T] {
	if r.inner == nil {
		panic(op + ": use of dropped handle")
	}
	r.inner.owner.Check(op)
	return r.inner
}
