package cell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuarded_SharedBorrows(t *testing.T) {
	g := NewGuarded(7)

	a := g.Borrow()
	b := g.Borrow()
	require.NotNil(t, a)
	require.NotNil(t, b)

	assert.Equal(t, 7, *a.Value())
	assert.Equal(t, 7, *b.Value())
	assert.Same(t, a.Value(), b.Value(), "both tokens observe the same slot")

	a.Release()
	b.Release()
}

func TestGuarded_WriteExcludesReads(t *testing.T) {
	g := NewGuarded("hello")

	w := g.BorrowMut()
	assert.Nil(t, g.TryBorrow(), "read denied while write token live")
	assert.Nil(t, g.TryBorrowMut(), "second write denied")

	*w.Value() = "foo"
	w.Release()

	r := g.TryBorrow()
	require.NotNil(t, r)
	assert.Equal(t, "foo", *r.Value())
	r.Release()
}

func TestGuarded_ReadsExcludeWrite(t *testing.T) {
	g := NewGuarded(1)

	a := g.Borrow()
	b := g.Borrow()
	assert.Nil(t, g.TryBorrowMut(), "write denied while readers live")

	a.Release()
	assert.Nil(t, g.TryBorrowMut(), "write still denied with one reader left")

	b.Release()
	w := g.TryBorrowMut()
	require.NotNil(t, w, "write granted once the last reader departs")
	w.Release()
}

func TestGuarded_BorrowPanics(t *testing.T) {
	g := NewGuarded(0)

	w := g.BorrowMut()
	assert.PanicsWithValue(t, "cell: already exclusively borrowed", func() { g.Borrow() })
	assert.PanicsWithValue(t, "cell: already borrowed", func() { g.BorrowMut() })
	w.Release()

	r := g.Borrow()
	assert.PanicsWithValue(t, "cell: already borrowed", func() { g.BorrowMut() })
	r.Release()
}

// TestGuarded_MutateThenRead is the canonical scenario: mutate through the
// write token, observe through a read token.
func TestGuarded_MutateThenRead(t *testing.T) {
	g := NewGuarded([3]int{1, 2, 3})

	w := g.BorrowMut()
	w.Value()[0] = 5
	w.Release()

	r := g.Borrow()
	assert.Equal(t, [3]int{5, 2, 3}, *r.Value())
	r.Release()
}

func TestGuarded_ReleaseIdempotent(t *testing.T) {
	g := NewGuarded(0)

	a := g.Borrow()
	b := g.Borrow()
	a.Release()
	a.Release() // second release of the same token must not steal b's share

	assert.Nil(t, g.TryBorrowMut(), "b still holds its share")
	b.Release()

	w := g.BorrowMut()
	w.Release()
	w.Release()
	require.NotNil(t, g.TryBorrowMut())
}

func TestGuarded_ReleasedTokenUnusable(t *testing.T) {
	g := NewGuarded(0)

	r := g.Borrow()
	r.Release()
	assert.PanicsWithValue(t, "cell: use of released read token", func() { r.Value() })

	w := g.BorrowMut()
	w.Release()
	assert.PanicsWithValue(t, "cell: use of released write token", func() { w.Value() })
}
