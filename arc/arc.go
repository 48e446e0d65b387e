// Package arc implements the cross-goroutine variant of the shared
// pointer in package rc. The contract is identical; the count is an
// atomic integer, making Clone and Drop safe from concurrently running
// goroutines. Go's atomics are sequentially consistent, so the increment
// of a clone is visible to whichever handle later performs the final
// decrement, and the decrement's return value makes the zero observation
// unique: exactly one handle frees.
package arc

import (
	"math"
	"sync/atomic"
)

// block is the control block shared by every handle to one value.
type block[T any] struct {
	value T
	count atomic.Int64
	drop  func(*T)
}

// Arc is one owning handle to a shared value. Handles are created with
// New and Clone only; each may be dropped from any goroutine.
type Arc[T any] struct {
	inner *block[T]
}

// New allocates a control block owning value, with the count at 1.
func New[T any](value T) *Arc[T] {
	return NewWithDrop(value, nil)
}

// NewWithDrop is New with a hook run on the value exactly once, by the
// handle whose drop takes the count to zero.
func NewWithDrop[T any](value T, drop func(*T)) *Arc[T] {
	b := &block[T]{value: value, drop: drop}
	b.count.Store(1)
	return &Arc[T]{inner: b}
}

// Clone atomically increments the count and returns a new handle to the
// same block. Panics on count overflow.
func (a *Arc[T]) Clone() *Arc[T] {
	b := a.block("arc.Clone")
	switch n := b.count.Add(1); {
	case n == math.MaxInt64:
		panic("arc: reference count overflow")
	case n <= 1:
		// A live handle implies count >= 1 before the increment.
		panic("arc: reference count corrupted")
	}
	return &Arc[T]{inner: b}
}

// Value returns read access to the shared value. Callers must not mutate
// through the pointer; the value itself carries no synchronization.
func (a *Arc[T]) Value() *T {
	return &a.block("arc.Value").value
}

// Count returns the number of live handles at the moment of the load.
// Under concurrent cloning and dropping the value is immediately stale.
func (a *Arc[T]) Count() int64 {
	return a.block("arc.Count").count.Load()
}

// Drop releases this handle. The decrement's return value decides the
// freer: the one handle that observes zero runs the drop hook and
// detaches the block; every other concurrently dropping handle leaves the
// block intact. Panics when this handle was already dropped.
func (a *Arc[T]) Drop() {
	b := a.block("arc.Drop")
	a.inner = nil
	switch n := b.count.Add(-1); {
	case n == 0:
		if b.drop != nil {
			b.drop(&b.value)
		}
		// The block is unreachable from here; the collector reclaims it.
	case n < 0:
		panic("arc: reference count underflow")
	}
}

// block guards every operation against use of a dropped handle.
func (a *Arc[T]) block(op string) *block[T] {
	if a.inner == nil {
		panic(op + ": use of dropped handle")
	}
	return a.inner
}
