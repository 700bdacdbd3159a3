package engine

/*------------------------------------------------------------------
 *
 * Purpose:	Suppress duplicate deliveries of retransmitted packets.
 *
 * Description:	Unlike a digipeater's content checksum cache (which must
 *		tolerate an unbounded number of distinct stations), this
 *		table is keyed directly on the 1-byte source address: at
 *		most one in-use entry per source, holding only the last
 *		packet-id seen from it. A source retransmitting the same
 *		packet-id is a duplicate; a new packet-id from a known
 *		source, or any packet-id from an unknown source, is not.
 *
 *------------------------------------------------------------------*/

// CacheCapacity is the fixed number of duplicate-cache slots.
const CacheCapacity = 10

// CacheDiscardDelayMillis is ~49h, the age past which an entry is
// evicted regardless of pressure (spec.md §3, §4.2).
const CacheDiscardDelayMillis uint32 = 176_400_000

type cacheEntry struct {
	inUse      bool
	source     Address
	lastPktID  PacketID
	lastUpdate uint32
}

// DedupeCache is the fixed-capacity (source -> last packet-id) table.
// Invariant: at most one in-use entry per source address.
type DedupeCache struct {
	entries      [CacheCapacity]cacheEntry
	discardDelay uint32
}

// NewDedupeCache returns an empty cache using the default discard delay.
func NewDedupeCache() *DedupeCache {
	return &DedupeCache{discardDelay: CacheDiscardDelayMillis}
}

// SetDiscardDelay overrides the age-based eviction threshold, mainly for
// tests that want to exercise eviction without waiting 49 hours.
func (c *DedupeCache) SetDiscardDelay(d uint32) {
	c.discardDelay = d
}

// Observe records that (source, id) was seen at time now and reports
// whether it is a repeat of the last thing seen from that source.
//
// Per spec.md §4.2:
//  1. Sweep the table; entries older than the discard delay are freed.
//  2. If source already has an entry, update its timestamp; report a
//     duplicate iff the stored packet-id matches, otherwise overwrite
//     it and report not-a-duplicate.
//  3. Otherwise claim a free slot, or evict the entry with the
//     greatest age, and install a fresh entry.
func (c *DedupeCache) Observe(source Address, id PacketID, now uint32) bool {
	oldestIdx := -1
	var oldestAge uint32

	for i := range c.entries {
		e := &c.entries[i]
		if e.inUse && elapsedMillis(now, e.lastUpdate) > c.discardDelay {
			e.inUse = false
		}
	}

	for i := range c.entries {
		e := &c.entries[i]
		if e.inUse && e.source == source {
			dup := e.lastPktID == id
			e.lastPktID = id
			e.lastUpdate = now
			return dup
		}
	}

	for i := range c.entries {
		e := &c.entries[i]
		age := elapsedMillis(now, e.lastUpdate)
		if !e.inUse {
			oldestIdx = i
			break
		}
		if oldestIdx == -1 || age > oldestAge {
			oldestIdx = i
			oldestAge = age
		}
	}

	e := &c.entries[oldestIdx]
	e.inUse = true
	e.source = source
	e.lastPktID = id
	e.lastUpdate = now
	return false
}

// Len reports the number of currently in-use entries. Exposed for tests
// and operational introspection (cmd/rflink-dedupe-bench).
func (c *DedupeCache) Len() int {
	n := 0
	for i := range c.entries {
		if c.entries[i].inUse {
			n++
		}
	}
	return n
}
