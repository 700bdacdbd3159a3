package engine

import "time"

// Clock supplies the engine's notion of "now" as a free-running
// millisecond counter, the way an embedded target's millis() does.
// Using a narrow uint32 counter (instead of time.Time) keeps the
// modular-subtraction wraparound behaviour spec.md §4.2 and §9 call out
// explicit in the arithmetic rather than relying on time.Time's
// internal monotonic reading.
type Clock interface {
	NowMillis() uint32
}

// RealClock is a Clock backed by the host's monotonic clock, zeroed at
// construction time.
type RealClock struct {
	start time.Time
}

// NewRealClock returns a RealClock whose epoch is the call time.
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

func (c *RealClock) NowMillis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}

// elapsedMillis returns now-since, tolerating wraparound of both values
// via unsigned modular subtraction (spec.md §4.2: "Timestamp arithmetic
// uses modular subtraction so the cache tolerates monotonic-clock
// wraparound").
func elapsedMillis(now, since uint32) uint32 {
	return now - since
}

// deadlineElapsed reports whether now has reached or passed deadline,
// tolerating wraparound by reading the modular difference now-deadline
// as a signed 32-bit value (elapsedMillis uses the same subtraction,
// unsigned).
func deadlineElapsed(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}
