package vec

import "testing"

func BenchmarkVec_PushOffHeap(b *testing.B) {
	v := New[int64]()
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Push(int64(i))
	}
}

func BenchmarkVec_PushGoSlots(b *testing.B) {
	v := New[string]()
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Push("payload")
	}
}

func BenchmarkVec_PushPop(b *testing.B) {
	v := New[int64]()
	defer v.Free()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		v.Push(1)
		v.Pop()
	}
}
