//go:build unix

package mem

import (
	"errors"

	"golang.org/x/sys/unix"
)

// MapPages obtains a zero-filled anonymous read/write mapping of at least
// size bytes. The returned slice lives outside the Go heap; the collector
// never scans it, so callers must only store pointer-free data in it.
//
// Mapping failure is fatal: there is no recovery path from the host
// allocator refusing memory.
func MapPages(size int) []byte {
	if size <= 0 {
		return nil
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		fatalf("anonymous mmap of %d bytes: %v", size, err)
	}
	debugLogf("map %d bytes at %p", size, &data[0])
	return data
}

// UnmapPages returns a mapping obtained from MapPages or RemapPages to the
// host. A nil or already-unmapped slice is a no-op.
func UnmapPages(data []byte) {
	if data == nil {
		return
	}
	if err := unix.Munmap(data); err != nil {
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return
		}
		fatalf("munmap of %d bytes: %v", len(data), err)
	}
}
