package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleOffsetsAreMonotonicallyIncreasing(t *testing.T) {
	for _, sched := range [][]ScheduleEntry{SND, SndExpAck, SndAck} {
		for i := 1; i < len(sched); i++ {
			assert.Greater(t, sched[i].OffsetMillis, sched[i-1].OffsetMillis)
		}
	}
}

// Open question resolved in SPEC_FULL.md §5: only SndExpAck's trailing
// entry is a non-transmitting listen window.
func TestOnlySndExpAckHasATrailingListenWindow(t *testing.T) {
	for _, entry := range SND {
		assert.True(t, entry.Transmit)
	}
	for _, entry := range SndAck {
		assert.True(t, entry.Transmit)
	}

	last := SndExpAck[len(SndExpAck)-1]
	assert.False(t, last.Transmit)
	for _, entry := range SndExpAck[:len(SndExpAck)-1] {
		assert.True(t, entry.Transmit)
	}
}

func TestSndExpAckMatchesDocumentedGrid(t *testing.T) {
	want := []uint32{0, 100, 450, 800, 900}
	for i, entry := range SndExpAck {
		assert.Equal(t, want[i], entry.OffsetMillis)
	}
}

func TestSndMatchesDocumentedGrid(t *testing.T) {
	want := []uint32{0, 200, 550, 900}
	for i, entry := range SND {
		assert.Equal(t, want[i], entry.OffsetMillis)
	}
}
