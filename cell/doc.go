// Package cell provides single-goroutine interior-mutability slots.
//
// Cell is a plain slot: values are copied in with Set and copied out with
// Get, and no reference to the interior ever escapes, so no tracking is
// needed.
//
// Guarded adds a runtime borrow state machine on top of a slot. Borrow
// and BorrowMut hand out scoped access tokens (Ref, RefMut); releasing a
// token is the only way the state machine moves back toward unshared.
// Shared and exclusive access are mutually exclusive, checked at runtime
// rather than at compile time.
//
// Neither type is safe for concurrent use. Both carry a vet-visible
// no-copy marker, and when MEMKIT_CHECK_OWNER is set every operation
// verifies it runs on the constructing goroutine.
package cell
