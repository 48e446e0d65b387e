package cell

import "github.com/joshuapare/memkit/internal/goid"

// noCopy flags accidental copies of a cell to go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Cell is a memory slot that can be updated through a shared handle.
// Values only ever enter and leave as copies, so the slot needs no borrow
// tracking. Single-goroutine only.
type Cell[T any] struct {
	noCopy noCopy
	owner  goid.Owner
	value  T
}

// New returns a Cell holding value.
func New[T any](value T) *Cell[T] {
	return &Cell[T]{owner: goid.Capture(), value: value}
}

// Get returns a copy of the current value.
func (c *Cell[T]) Get() T {
	c.owner.Check("cell.Get")
	return c.value
}

// Set overwrites the stored value with a copy of value.
func (c *Cell[T]) Set(value T) {
	c.owner.Check("cell.Set")
	c.value = value
}
