package mem

import (
	"reflect"
	"testing"
	"unsafe"
)

func TestHasPointers(t *testing.T) {
	type flat struct {
		A int32
		B [4]float64
	}
	type nested struct {
		F flat
		S string
	}

	cases := []struct {
		name string
		typ  reflect.Type
		want bool
	}{
		{"int", reflect.TypeOf((*(int))(nil)).Elem(), false},
		{"uint8", reflect.TypeOf((*(uint8))(nil)).Elem(), false},
		{"float64", reflect.TypeOf((*(float64))(nil)).Elem(), false},
		{"complex128", reflect.TypeOf((*(complex128))(nil)).Elem(), false},
		{"uintptr", reflect.TypeOf((*(uintptr))(nil)).Elem(), false},
		{"array of int", reflect.TypeOf((*[8]int)(nil)).Elem(), false},
		{"flat struct", reflect.TypeOf((*(flat))(nil)).Elem(), false},
		{"string", reflect.TypeOf((*(string))(nil)).Elem(), true},
		{"pointer", reflect.TypeOf((*(*int))(nil)).Elem(), true},
		{"slice", reflect.TypeOf((*[]byte)(nil)).Elem(), true},
		{"map", reflect.TypeOf((*map[string]int)(nil)).Elem(), true},
		{"chan", reflect.TypeOf((*(chan int))(nil)).Elem(), true},
		{"func", reflect.TypeOf((*(func()))(nil)).Elem(), true},
		{"interface", reflect.TypeOf((*(any))(nil)).Elem(), true},
		{"unsafe.Pointer", reflect.TypeOf((*(unsafe.Pointer))(nil)).Elem(), true},
		{"struct with string", reflect.TypeOf((*(nested))(nil)).Elem(), true},
		{"array of pointers", reflect.TypeOf((*[2]*int)(nil)).Elem(), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasPointers(tc.typ); got != tc.want {
				t.Fatalf("HasPointers(%s)=%v want %v", tc.typ, got, tc.want)
			}
		})
	}
}
