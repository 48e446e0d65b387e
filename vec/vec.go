package vec

import (
	"reflect"
	"unsafe"

	"github.com/joshuapare/memkit/internal/mem"
)

// Vec is a growable contiguous buffer of T backed by a single owned
// region. The zero value is not usable; construct with New or NewWithDrop.
type Vec[T any] struct {
	base unsafe.Pointer // first slot; nil while cap == 0
	len  int            // live slots, always the prefix [0, len)
	cap  int            // allocated slots; len <= cap

	// Exactly one backing is non-nil once cap > 0.
	pages []byte // off-heap region for pointer-free T
	slots []T    // collector-scanned region for pointer-bearing T

	offheap bool
	drop    func(*T)
}

// New returns an empty Vec with no allocation.
// Panics when T has zero size: capacity accounting is pointer arithmetic
// over element slots, which zero-sized types break.
func New[T any]() *Vec[T] {
	return NewWithDrop[T](nil)
}

// NewWithDrop returns an empty Vec whose elements are passed to drop when
// the Vec destroys them (Free, or iterator teardown). Elements handed back
// to the caller by Pop and Remove are not dropped.
func NewWithDrop[T any](drop func(*T)) *Vec[T] {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("vec: zero sized types not supported")
	}
	return &Vec[T]{
		offheap: !mem.HasPointers(reflect.TypeOf((*T)(nil)).Elem()),
		drop:    drop,
	}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the number of allocated slots.
func (v *Vec[T]) Cap() int { return v.cap }

// at returns a pointer to slot i. Callers must keep i within [0, cap).
func (v *Vec[T]) at(i int) *T {
	var zero T
	return (*T)(unsafe.Add(v.base, uintptr(i)*unsafe.Sizeof(zero)))
}

// grow reallocates to the next capacity: 1 from empty, doubled otherwise.
func (v *Vec[T]) grow() {
	newCap := 1
	if v.cap > 0 {
		newCap = v.cap * 2
	}
	layout, err := mem.ArrayOf(mem.LayoutOf[T](), newCap)
	if err != nil {
		panic("vec: allocation too large")
	}
	if v.offheap {
		if v.pages == nil {
			v.pages = mem.MapPages(layout.Size)
		} else {
			v.pages = mem.RemapPages(v.pages, layout.Size)
		}
		v.base = unsafe.Pointer(unsafe.SliceData(v.pages))
	} else {
		next := make([]T, newCap)
		copy(next, v.slots[:v.len])
		v.slots = next
		v.base = unsafe.Pointer(unsafe.SliceData(next))
	}
	v.cap = newCap
}

// Push appends value at index Len(), growing first when full.
func (v *Vec[T]) Push(value T) {
	if v.len == v.cap {
		v.grow()
	}
	*v.at(v.len) = value
	v.len++
}

// Pop removes and returns the last element, or reports absence when empty.
// Ownership transfers to the caller; the drop hook does not run.
// Capacity never shrinks.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.len == 0 {
		return zero, false
	}
	v.len--
	out := *v.at(v.len)
	*v.at(v.len) = zero
	return out, true
}

// Insert places value at index, shifting [index, Len()) one slot right.
// index may equal Len(), which appends. Panics on any other index outside
// the live prefix.
func (v *Vec[T]) Insert(index int, value T) {
	if index < 0 || index > v.len {
		panic("vec: index out of bounds")
	}
	if v.len == v.cap {
		v.grow()
	}
	for i := v.len; i > index; i-- {
		*v.at(i) = *v.at(i - 1)
	}
	*v.at(index) = value
	v.len++
}

// Remove removes and returns the element at index, shifting
// [index+1, Len()) one slot left. Ownership transfers to the caller.
// Panics when index is outside the live prefix.
func (v *Vec[T]) Remove(index int) T {
	if index < 0 || index >= v.len {
		panic("vec: index out of bounds")
	}
	var zero T
	out := *v.at(index)
	for i := index; i < v.len-1; i++ {
		*v.at(i) = *v.at(i + 1)
	}
	v.len--
	*v.at(v.len) = zero
	return out
}

// View returns the live prefix [0, Len()) as a slice, readable and
// writable in place. The slice is invalidated by any operation that grows
// or destroys the Vec.
func (v *Vec[T]) View() []T {
	if v.len == 0 {
		return nil
	}
	return unsafe.Slice((*T)(v.base), v.len)
}

// Free destroys all live elements in index order (running the drop hook,
// when set) and releases the region. The Vec is empty afterwards; Free on
// an empty Vec is a no-op.
func (v *Vec[T]) Free() {
	for i := 0; i < v.len; i++ {
		if v.drop != nil {
			v.drop(v.at(i))
		}
	}
	v.release()
}

// release returns the backing region and resets the Vec to empty.
func (v *Vec[T]) release() {
	if v.offheap {
		mem.UnmapPages(v.pages)
	}
	v.pages = nil
	v.slots = nil
	v.base = nil
	v.len = 0
	v.cap = 0
}
