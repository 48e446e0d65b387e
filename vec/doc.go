// Package vec implements a growable contiguous buffer over a manually
// managed memory region.
//
// # Overview
//
// A Vec owns exactly one region sized to a power-of-two capacity of
// element slots. The first Len() slots hold live values; the remaining
// slots are uninitialized and never exposed. The region is released
// exactly once, by Free(), or by the consuming iterator's teardown after
// IntoIter().
//
// # Region backends
//
// Element types are classified at construction:
//
//   - Pointer-free types (integers, floats, arrays/structs of them) are
//     stored in an off-heap region obtained from anonymous page mappings.
//     The collector never scans these regions; growth uses the host's
//     remap facility where available.
//   - Pointer-bearing types stay in collector-scanned typed slots so the
//     values they reference remain reachable.
//
// Both backends share the same pointer-arithmetic access path and the
// same growth policy: capacity 1 on first growth, doubling thereafter.
//
// # Ownership and destruction
//
// Go has no destructors, so destruction is explicit. Free() runs the
// optional per-element drop hook over the live prefix in index order and
// then releases the region. Pop() and Remove() transfer ownership of the
// element to the caller and do not run the hook. Slots vacated by any
// operation are zeroed so the collector can reclaim what they referenced.
//
// # Failure modes
//
//   - Out-of-bounds Insert/Remove indexes panic ("vec: index out of bounds").
//   - A capacity whose byte size would overflow int panics
//     ("vec: allocation too large").
//   - Page-mapping failure terminates the process; recoverable
//     allocation-failure handling is out of scope.
//   - Pop on an empty Vec is not an error; it reports absence.
//
// # Thread safety
//
// A Vec is not safe for concurrent use. Callers must synchronize access
// externally.
package vec
