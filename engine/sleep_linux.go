//go:build linux

package engine

import "golang.org/x/sys/unix"

// lowPowerSleep parks the CPU until the next signal, the deepest sleep
// primitive available without device-specific power-management code.
// Grounded on ptt.go/cm108.go's existing use of golang.org/x/sys/unix
// for direct kernel interaction on this platform.
func lowPowerSleep() {
	_ = unix.Pause()
}
