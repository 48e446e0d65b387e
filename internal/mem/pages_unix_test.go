//go:build unix

package mem

import "testing"

func TestMapPagesRoundTrip(t *testing.T) {
	data := MapPages(4096)
	if len(data) != 4096 {
		t.Fatalf("MapPages returned %d bytes, want 4096", len(data))
	}
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zero-filled: 0x%x", i, b)
		}
	}
	data[0] = 0xde
	data[4095] = 0xad
	UnmapPages(data)
}

func TestMapPagesZero(t *testing.T) {
	if data := MapPages(0); data != nil {
		t.Fatalf("MapPages(0) should return nil, got %d bytes", len(data))
	}
	UnmapPages(nil) // no-op
}

func TestRemapPagesPreservesContents(t *testing.T) {
	data := MapPages(64)
	for i := range data {
		data[i] = byte(i)
	}

	grown := RemapPages(data, 8192)
	if len(grown) != 8192 {
		t.Fatalf("RemapPages returned %d bytes, want 8192", len(grown))
	}
	for i := 0; i < 64; i++ {
		if grown[i] != byte(i) {
			t.Fatalf("byte %d lost across remap: got 0x%x want 0x%x", i, grown[i], byte(i))
		}
	}
	UnmapPages(grown)
}

func TestRemapPagesFromNil(t *testing.T) {
	data := RemapPages(nil, 128)
	if len(data) != 128 {
		t.Fatalf("RemapPages(nil,128) returned %d bytes", len(data))
	}
	UnmapPages(data)
}
