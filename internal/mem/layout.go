// Package mem provides the raw allocation substrate for the memkit
// primitives: layout arithmetic with overflow checking, anonymous page
// regions obtained from the host allocator, and pointer-free type
// classification.
package mem

import (
	"errors"
	"math"
	"unsafe"
)

// ErrLayoutOverflow indicates a size computation that does not fit in int.
var ErrLayoutOverflow = errors.New("mem: layout size overflow")

// Layout describes a memory request: a byte size and a required alignment.
// Align is always a power of two and Size is always a multiple of Align,
// matching the contract the page mapper relies on.
type Layout struct {
	Size  int
	Align int
}

// LayoutOf returns the layout of a single value of type T.
func LayoutOf[T any]() Layout {
	var v T
	return Layout{
		Size:  int(unsafe.Sizeof(v)),
		Align: int(unsafe.Alignof(v)),
	}
}

// ArrayOf returns the layout of n contiguous elements with layout elem.
// Returns ErrLayoutOverflow when n*elem.Size does not fit in int.
func ArrayOf(elem Layout, n int) (Layout, error) {
	if n < 0 {
		return Layout{}, ErrLayoutOverflow
	}
	total, ok := MulOverflowSafe(elem.Size, n)
	if !ok {
		return Layout{}, ErrLayoutOverflow
	}
	return Layout{Size: total, Align: elem.Align}, nil
}

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result
// would overflow int. This is essential for count * elementSize calculations.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}
