package mem

import "reflect"

// HasPointers reports whether values of type t contain pointers the
// garbage collector must be able to see. Pointer-bearing values must stay
// in collector-scanned slots; only pointer-free values may live in the
// off-heap regions produced by MapPages.
//
// The classification is conservative: any kind not explicitly known to be
// pointer-free counts as pointer-bearing.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Pointers, maps, slices, strings, chans, funcs, interfaces,
		// unsafe.Pointer, and anything future.
		return true
	}
}
