//go:build !unix

package mem

// MapPages falls back to a heap allocation when anonymous mappings are not
// available. The Go allocator aligns byte slices of this size to at least
// 8 bytes, which satisfies every natural element alignment.
func MapPages(size int) []byte {
	if size <= 0 {
		return nil
	}
	return make([]byte, size)
}

// RemapPages resizes a region from MapPages, preserving its contents.
func RemapPages(old []byte, size int) []byte {
	data := make([]byte, size)
	copy(data, old)
	return data
}

// UnmapPages is a no-op; the collector reclaims the region once the caller
// drops its reference.
func UnmapPages(data []byte) {}
