// Package goid extracts the current goroutine's id so the single-goroutine
// primitives can verify they never cross a goroutine boundary. The check is
// off by default and enabled with MEMKIT_CHECK_OWNER; when disabled every
// call is a no-op with no runtime.Stack cost.
package goid

import (
	"fmt"
	"os"
	"runtime"
)

var enabled = os.Getenv("MEMKIT_CHECK_OWNER") != ""

// Enabled reports whether owner checking is active for this process.
func Enabled() bool {
	return enabled
}

// ID returns the current goroutine's id by parsing the first line of its
// stack trace ("goroutine 123 [running]:"). Returns 0 if parsing fails.
func ID() int64 {
	// Only the first line is needed, so a small buffer is sufficient.
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	return parseGID(buf[:n])
}

func parseGID(buf []byte) int64 {
	const prefix = "goroutine "
	if len(buf) < len(prefix) || string(buf[:len(prefix)]) != prefix {
		return 0
	}
	var gid int64
	for _, c := range buf[len(prefix):] {
		if c < '0' || c > '9' {
			break
		}
		gid = gid*10 + int64(c-'0')
	}
	return gid
}

// Owner records the goroutine a value is pinned to. The zero Owner (or any
// Owner captured while checking is disabled) passes every check.
type Owner struct {
	id int64
}

// Capture pins the owner to the calling goroutine when checking is enabled.
func Capture() Owner {
	if !enabled {
		return Owner{}
	}
	return Owner{id: ID()}
}

// Check panics when op is invoked from a goroutine other than the owner.
// Crossing a goroutine boundary with a single-goroutine primitive is a
// programmer error, not a recoverable condition.
func (o Owner) Check(op string) {
	if o.id == 0 {
		return
	}
	if g := ID(); g != o.id {
		panic(fmt.Sprintf("%s: used from goroutine %d, owned by goroutine %d", op, g, o.id))
	}
}
