package cell

import "github.com/joshuapare/memkit/internal/goid"

// Borrow state, held in a Cell[int]:
//
//	 0  unshared
//	-1  exclusively borrowed
//	 n  shared by n readers (n > 0)
const stateExclusive = -1

// Guarded is a memory slot with a runtime-checked borrow state machine.
// Read access (Ref) may be held by any number of tokens at once; write
// access (RefMut) is exclusive. Single-goroutine only.
type Guarded[T any] struct {
	noCopy noCopy
	state  Cell[int]
	value  T
}

// NewGuarded returns a Guarded slot holding value, in the unshared state.
func NewGuarded[T any](value T) *Guarded[T] {
	g := &Guarded[T]{value: value}
	g.state.owner = goid.Capture()
	return g
}

// TryBorrow grants a read token, or nil while a write token is live.
func (g *Guarded[T]) TryBorrow() *Ref[T] {
	switch s := g.state.Get(); {
	case s == stateExclusive:
		return nil
	default:
		g.state.Set(s + 1)
		return &Ref[T]{cell: g}
	}
}

// Borrow grants a read token.
// Panics "already exclusively borrowed" while a write token is live.
func (g *Guarded[T]) Borrow() *Ref[T] {
	r := g.TryBorrow()
	if r == nil {
		panic("cell: already exclusively borrowed")
	}
	return r
}

// TryBorrowMut grants the write token, or nil unless the state is unshared.
func (g *Guarded[T]) TryBorrowMut() *RefMut[T] {
	if g.state.Get() != 0 {
		return nil
	}
	g.state.Set(stateExclusive)
	return &RefMut[T]{cell: g}
}

// BorrowMut grants the write token.
// Panics "already borrowed" while any token is live.
func (g *Guarded[T]) BorrowMut() *RefMut[T] {
	r := g.TryBorrowMut()
	if r == nil {
		panic("cell: already borrowed")
	}
	return r
}

// Ref is a read token for a Guarded slot. Its Release is the sole path
// that returns the reader's share of the borrow state.
type Ref[T any] struct {
	cell     *Guarded[T]
	released bool
}

// Value returns read access to the guarded value. The pointer is shared
// with every other live read token; callers must not mutate through it.
func (r *Ref[T]) Value() *T {
	if r.released {
		panic("cell: use of released read token")
	}
	return &r.cell.value
}

// Release returns this token's share. The slot becomes unshared when the
// last reader departs. Releasing twice is a no-op.
func (r *Ref[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.state.Set(r.cell.state.Get() - 1)
}

// RefMut is the write token for a Guarded slot.
type RefMut[T any] struct {
	cell     *Guarded[T]
	released bool
}

// Value returns mutable access to the guarded value.
func (r *RefMut[T]) Value() *T {
	if r.released {
		panic("cell: use of released write token")
	}
	return &r.cell.value
}

// Release returns the slot to unshared. Releasing twice is a no-op.
func (r *RefMut[T]) Release() {
	if r.released {
		return
	}
	r.released = true
	r.cell.state.Set(0)
}
