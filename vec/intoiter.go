package vec

// IntoIter is a consuming iterator over a Vec. It owns the Vec's region
// and releases it exactly once: when the last element has been yielded,
// or when Close is called before that.
type IntoIter[T any] struct {
	v    Vec[T]
	next int
	done bool
}

// IntoIter consumes the Vec, transferring the region and all live
// elements to the returned iterator. The Vec is reset to empty.
func (v *Vec[T]) IntoIter() *IntoIter[T] {
	it := &IntoIter[T]{v: *v}
	v.pages = nil
	v.slots = nil
	v.base = nil
	v.len = 0
	v.cap = 0
	return it
}

// Next yields the next element in index order, transferring ownership to
// the caller. After the last element the region is released and Next
// reports exhaustion from then on.
func (it *IntoIter[T]) Next() (T, bool) {
	var zero T
	if it.done || it.next >= it.v.len {
		it.Close()
		return zero, false
	}
	out := *it.v.at(it.next)
	*it.v.at(it.next) = zero
	it.next++
	if it.next == it.v.len {
		it.Close()
	}
	return out, true
}

// Close destroys any not-yet-yielded elements (running the drop hook,
// when set) and releases the region. Close is idempotent and implied by
// exhausting the iterator.
func (it *IntoIter[T]) Close() {
	if it.done {
		return
	}
	it.done = true
	for i := it.next; i < it.v.len; i++ {
		if it.v.drop != nil {
			it.v.drop(it.v.at(i))
		}
	}
	it.v.release()
}
