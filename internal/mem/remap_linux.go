//go:build linux

package mem

import "golang.org/x/sys/unix"

// RemapPages resizes a mapping obtained from MapPages to size bytes,
// preserving its contents. On Linux mremap() lets the kernel extend the
// mapping in place or move it wholesale, so no copy happens in userspace.
//
// The old slice must not be used after RemapPages returns.
func RemapPages(old []byte, size int) []byte {
	if old == nil {
		return MapPages(size)
	}
	data, err := unix.Mremap(old, size, unix.MREMAP_MAYMOVE)
	if err != nil {
		fatalf("mremap %d -> %d bytes: %v", len(old), size, err)
	}
	debugLogf("remap %d -> %d bytes at %p", len(old), size, &data[0])
	return data
}
