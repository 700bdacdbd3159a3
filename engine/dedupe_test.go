package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDedupeCacheFirstObservationNeverDuplicate(t *testing.T) {
	c := NewDedupeCache()
	assert.False(t, c.Observe(Address(1), PacketID(7), 1000))
}

func TestDedupeCacheSamePacketIDIsDuplicate(t *testing.T) {
	c := NewDedupeCache()
	c.Observe(Address(1), PacketID(7), 1000)
	assert.True(t, c.Observe(Address(1), PacketID(7), 1001))
}

func TestDedupeCacheNewPacketIDNotDuplicate(t *testing.T) {
	c := NewDedupeCache()
	c.Observe(Address(1), PacketID(7), 1000)
	assert.False(t, c.Observe(Address(1), PacketID(8), 1001))
}

// S6 from spec.md §8: 11 distinct sources fill the 10-slot cache, the
// oldest is evicted, and its next retransmit is seen as first-seen.
func TestDedupeCacheEvictsOldestWhenFull(t *testing.T) {
	c := NewDedupeCache()
	for src := 0; src < CacheCapacity; src++ {
		assert.False(t, c.Observe(Address(src), PacketID(1), uint32(src)))
	}
	assert.Equal(t, CacheCapacity, c.Len())

	// Source 0 has the oldest timestamp (0) and should be evicted to
	// admit source 10.
	assert.False(t, c.Observe(Address(CacheCapacity), PacketID(1), uint32(CacheCapacity)))
	assert.Equal(t, CacheCapacity, c.Len())

	// Source 0's next observation looks first-seen, since its entry
	// was evicted.
	assert.False(t, c.Observe(Address(0), PacketID(1), uint32(CacheCapacity+1)))
}

func TestDedupeCacheAgeBasedEviction(t *testing.T) {
	c := NewDedupeCache()
	c.SetDiscardDelay(100)
	c.Observe(Address(1), PacketID(7), 0)
	// Past the discard delay: the entry is swept away, so the same
	// packet-id again looks first-seen rather than a duplicate.
	assert.False(t, c.Observe(Address(1), PacketID(7), 200))
}

func TestDedupeCacheToleratesClockWraparound(t *testing.T) {
	c := NewDedupeCache()
	c.Observe(Address(1), PacketID(7), 0xFFFFFFF0)
	// now wrapped past the uint32 boundary; elapsed is still small via
	// modular subtraction.
	assert.True(t, c.Observe(Address(1), PacketID(7), 0x0000000A))
}

// At most one in-use entry per source, under any sequence of observations.
func TestDedupeCacheAtMostOneEntryPerSource(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := NewDedupeCache()
		now := uint32(0)
		srcGen := rapid.IntRange(0, 3)
		pktGen := rapid.IntRange(0, 5)

		seen := map[Address]bool{}
		steps := rapid.IntRange(0, 50).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			src := Address(srcGen.Draw(t, "src"))
			pkt := PacketID(pktGen.Draw(t, "pkt"))
			c.Observe(src, pkt, now)
			seen[src] = true
			now++
		}

		inUse := 0
		for _, e := range c.entries {
			if e.inUse {
				inUse++
				count := 0
				for _, e2 := range c.entries {
					if e2.inUse && e2.source == e.source {
						count++
					}
				}
				if count != 1 {
					t.Fatalf("source %d has %d in-use entries, want 1", e.source, count)
				}
			}
		}
		if inUse > CacheCapacity {
			t.Fatalf("inUse=%d exceeds capacity %d", inUse, CacheCapacity)
		}
	})
}
