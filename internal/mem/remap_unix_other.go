//go:build unix && !linux

package mem

// RemapPages resizes a mapping obtained from MapPages to size bytes,
// preserving its contents. Without mremap() the portable sequence is
// map-copy-unmap.
//
// The old slice must not be used after RemapPages returns.
func RemapPages(old []byte, size int) []byte {
	if old == nil {
		return MapPages(size)
	}
	data := MapPages(size)
	copy(data, old)
	UnmapPages(old)
	return data
}
