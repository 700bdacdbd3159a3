package engine

import "fmt"

// assertf panics on a violated internal invariant. These are the
// programmer-error conditions spec.md §7 calls contract violations -
// a null buffer with a nonzero length, an internal state-machine
// invariant broken - never a condition a well-behaved caller can hit
// through the public API.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
