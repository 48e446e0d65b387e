package mem

import (
	"fmt"
	"os"
)

// Runtime debug flag for region logging - controlled by MEMKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// fatalf reports an unrecoverable allocation failure and terminates the
// process. A panic would unwind, and unwinding may itself need memory, so
// allocation failure never propagates as an error or a panic.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "memkit: fatal: "+format+"\n", args...)
	os.Exit(2)
}

// debugLogf prints region diagnostics when MEMKIT_LOG_ALLOC is set.
func debugLogf(format string, args ...any) {
	if logAlloc {
		fmt.Fprintf(os.Stderr, "[MEM] "+format+"\n", args...)
	}
}
