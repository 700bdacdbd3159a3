// Package engine implements the link-layer protocol engine: the task
// state machine, the retransmission/ACK protocol, the duplicate
// suppression cache, and the cooperative event pump that drives them.
// Everything outside this package - the radio driver, chip-specific
// wiring, sample applications, timing source - is an external
// collaborator reached only through the Radio and Clock interfaces.
package engine

import (
	"sync/atomic"

	"github.com/sebmillet/rflink/engine/config"
	"github.com/sebmillet/rflink/engine/rlog"
)

// Engine is the protocol engine / event pump described in spec.md §4.5.
// It is not safe for concurrent use: all state transitions happen
// inside DoEvents, called from a single cooperative loop.
type Engine struct {
	own    Address
	radio  Radio
	clock  Clock
	cfg    config.Config
	pool   *TaskPool
	cache  *DedupeCache
	scratch []byte

	maxFrameLen int
	maxPayload  int

	// nextPacketID is the per-engine counter behind PacketID's
	// monotonically-incremented-per-outgoing-non-ACK-packet contract
	// (spec.md §3). ACKs never consume it; they carry the packet-id of
	// the frame they acknowledge instead (see scheduleAck).
	nextPacketID PacketID

	// interruptPending is written only from the ISR callback handed to
	// Radio.SetInterrupt and read/cleared only inside DoEvents, with
	// the interrupt disarmed during the drain to prevent reentrancy
	// (spec.md §5). atomic.Bool gives it the ordering guarantee
	// spec.md §9 asks for without the compiler hoisting the read out
	// of the pump loop.
	interruptPending atomic.Bool
	interruptArmed   bool

	lastResetTime     uint32
	haveResetBaseline bool
}

// New constructs an Engine bound to radio, initializing the device and
// applying cfg's own-address and snif-mode options.
func New(radio Radio, clock Clock, cfg config.Config) (*Engine, error) {
	maxFrameLen, err := radio.Init(false)
	if err != nil {
		return nil, errStatus(StatusDeviceNotRegistered)
	}
	if maxFrameLen <= HeaderSize {
		return nil, errStatus(StatusDeviceNotRegistered)
	}

	maxPayload := maxFrameLen - HeaderSize
	if maxPayload > MaxEncodablePayload {
		maxPayload = MaxEncodablePayload
	}

	e := &Engine{
		own:         Address(cfg.OwnAddress),
		radio:       radio,
		clock:       clock,
		cfg:         cfg,
		pool:        NewTaskPool(),
		cache:       NewDedupeCache(),
		maxFrameLen: maxFrameLen,
		maxPayload:  maxPayload,
		scratch:     make([]byte, maxFrameLen),
	}
	e.cache.SetDiscardDelay(cfg.CacheDiscardDelayMillis)

	if err := radio.SetOption(OptionAddress, []byte{byte(e.own)}); err != nil {
		return nil, errStatus(StatusDeviceNotRegistered)
	}
	snif := byte(0)
	if cfg.SnifMode {
		snif = 1
	}
	if err := radio.SetOption(OptionSnifMode, []byte{snif}); err != nil {
		return nil, errStatus(StatusDeviceNotRegistered)
	}

	return e, nil
}

// MaxPayload returns the largest application payload this engine's
// radio can carry in one frame.
func (e *Engine) MaxPayload() int { return e.maxPayload }

// OwnAddress returns the device's configured own address.
func (e *Engine) OwnAddress() Address { return e.own }

func (e *Engine) now() uint32 { return e.clock.NowMillis() }

// allocatePacketID returns the next packet-id for an outgoing non-ACK
// packet, wrapping on overflow like PacketID's wire definition allows.
func (e *Engine) allocatePacketID() PacketID {
	id := e.nextPacketID
	e.nextPacketID++
	return id
}

// isr is handed to Radio.SetInterrupt. It must do as little as
// possible: just raise the flag, per spec.md §5.
func (e *Engine) isr() {
	e.interruptPending.Store(true)
}

// DoEvents performs one tick of the event pump (spec.md §4.5):
// drains at most one received frame, dispatches it to matching tasks,
// advances timers, fires scheduled retransmissions, destroys
// terminated tasks, recovers a wedged radio, and optionally sleeps.
func (e *Engine) DoEvents() {
	now := e.now()

	// Step 1: arm or disarm the receive interrupt based on whether any
	// task still wants frames.
	wantArmed := false
	e.pool.ForEach(func(t *Task) bool {
		if t.SubscribedFrame {
			wantArmed = true
		}
		return false
	})
	if wantArmed != e.interruptArmed {
		if wantArmed {
			e.radio.SetInterrupt(e.isr)
		} else {
			e.radio.ResetInterrupt()
		}
		e.interruptArmed = wantArmed
	}

	// Step 2: drain at most one frame.
	var pkt *Packet
	var alreadySeen bool
	haveValidFrame := false

	if e.interruptPending.Load() {
		e.radio.ResetInterrupt()
		n, err := e.radio.Receive(e.scratch)
		e.interruptPending.Store(false)
		if wantArmed {
			e.radio.SetInterrupt(e.isr)
		}

		if err == nil && n > 0 {
			if candidate, ok := DecodePacket(e.scratch[:n]); ok && candidate.Validate(n, e.maxPayload) {
				pkt = candidate
				haveValidFrame = true
				alreadySeen = e.cache.Observe(pkt.Header.Src, pkt.Header.PacketID, now)
				rlog.Recv("frame received", "src", pkt.Header.Src, "dst", pkt.Header.Dest, "pktid", pkt.Header.PacketID, "dup", alreadySeen)
			} else {
				rlog.Debug("dropped malformed frame", "bytes", n)
			}
		}
	}

	frameConsumed := false
	var destroyedNeedingAck []TaskID

	// Step 3: dispatch frame then timer to each task, in pool order.
	e.pool.ForEach(func(t *Task) bool {
		stateBefore := t.State

		if t.SubscribedFrame && haveValidFrame && !frameConsumed {
			consumed, newState := e.dispatchFrame(t, pkt, alreadySeen, now)
			if consumed {
				frameConsumed = true
			}
			t.State = newState
		}

		if t.State == stateBefore && t.SubscribedTimer && deadlineElapsed(now, t.Deadline) {
			t.State = e.dispatchTimer(t, now)
		}

		if t.State == TaskFinished {
			if t.NeedsAck && !t.HasReceivedAck && !t.IsAck {
				destroyedNeedingAck = append(destroyedNeedingAck, t.ID)
			}
			return true
		}
		return false
	})

	// Step 4: recover a wedged transceiver.
	if len(destroyedNeedingAck) > 0 {
		elapsed := now - e.lastResetTime
		if !e.haveResetBaseline || elapsed >= e.cfg.MinDeviceResetDelayMs {
			rlog.Error("no ACK received, resetting radio", "tasks", len(destroyedNeedingAck))
			if _, err := e.radio.Init(true); err != nil {
				rlog.Error("radio reset failed", "err", err)
			}
			e.lastResetTime = now
			e.haveResetBaseline = true
		}
	}

	// Step 5: optionally sleep.
	if e.cfg.AutoSleepEnabled && e.sleepEligible() {
		if _, err := e.radio.Init(true); err == nil {
			lowPowerSleep()
		}
	}
}

// sleepEligible implements spec.md §4.5 step 5: exactly one task
// exists, it listens only for frames (not the timer), and no other
// task is in a non-NOTHING state (trivially true with one task total).
func (e *Engine) sleepEligible() bool {
	if e.pool.Count() != 1 {
		return false
	}
	eligible := false
	e.pool.ForEach(func(t *Task) bool {
		eligible = t.SubscribedFrame && !t.SubscribedTimer
		return false
	})
	return eligible
}

// dispatchFrame applies the frame-received transition for t (spec.md
// §4.3). It returns whether the frame was consumed and the resulting
// state.
func (e *Engine) dispatchFrame(t *Task, pkt *Packet, alreadySeen bool, now uint32) (consumed bool, next TaskState) {
	switch t.State {
	case TaskSend:
		isAck := pkt.Header.Flags&FlagACK != 0
		matches := isAck && pkt.Header.PacketID == t.Buf.Header.PacketID && pkt.Header.Src == t.Buf.Header.Dest
		if !matches {
			return false, t.State
		}
		t.HasReceivedAck = true
		t.Buf.ShrinkToHeader()
		t.SubscribedFrame = false
		t.Deadline = now
		t.FinalStatus = StatusOK
		return true, TaskSendDone

	case TaskReceive:
		if pkt.Header.Flags&FlagACK != 0 {
			return false, t.State
		}
		if alreadySeen {
			return false, t.State
		}
		if t.SingleSender && pkt.Header.Src != t.FilterAddress {
			return false, t.State
		}
		t.Buf.CopyFrom(pkt)
		t.SubscribedTimer = true
		t.Deadline = now + e.cfg.DataAvailDelayMillis
		return true, TaskReceiveDataAvailable

	case TaskReceiveDataAvailable:
		// A retransmit of the same frame can arrive before the
		// application has retrieved it. spec.md §8's idempotence law
		// requires an ACK per arrival regardless of whether the
		// receiver is still RECEIVE_DATA_AVAILABLE or has already
		// reached RECEIVE_DATA_RETRIEVED, so this mirrors that case
		// rather than silently dropping the duplicate.
		if pkt.Header.Flags&FlagACK != 0 {
			return false, t.State
		}
		if pkt.Header.Src != t.Buf.Header.Src || pkt.Header.PacketID != t.Buf.Header.PacketID {
			return false, t.State
		}
		if t.Buf.Header.Flags&FlagSIN != 0 {
			e.scheduleAck(t.Buf.Header.Src, t.Buf.Header.PacketID, now)
		}
		return true, t.State

	case TaskReceiveDataRetrieved:
		if pkt.Header.Src != t.Buf.Header.Src || pkt.Header.PacketID != t.Buf.Header.PacketID {
			return false, t.State
		}
		if pkt.Header.Flags&FlagACK != 0 {
			return false, t.State
		}
		if t.Buf.Header.Flags&FlagSIN != 0 {
			e.scheduleAck(t.Buf.Header.Src, t.Buf.Header.PacketID, now)
		}
		return true, t.State

	default:
		return false, t.State
	}
}

// dispatchTimer applies the timer-elapsed transition for t (spec.md §4.3).
func (e *Engine) dispatchTimer(t *Task, now uint32) TaskState {
	switch t.State {
	case TaskSend:
		entry := t.Schedule[t.Cursor]
		if entry.Transmit {
			if !t.IsAck {
				t.Buf.Header = t.Buf.Header.WithSeqCounter(byte(t.TxCount + 1))
			}
			t.LastDriverStatus = e.radio.Send(t.Buf.Bytes())
			t.TxCount++
			rlog.Xmit("transmit", "dst", t.Buf.Header.Dest, "pktid", t.Buf.Header.PacketID, "attempt", t.TxCount)
		}
		t.Cursor++
		if t.Cursor < len(t.Schedule) {
			t.Deadline = t.RefTime + t.Schedule[t.Cursor].OffsetMillis
			return TaskSend
		}

		if t.NeedsAck {
			if t.HasReceivedAck {
				t.FinalStatus = StatusOK
			} else {
				t.FinalStatus = StatusSendNoAckRcvd
			}
		} else {
			t.FinalStatus = t.LastDriverStatus
		}
		t.SubscribedFrame = false
		if t.Unattended {
			t.Deadline = now
		} else {
			t.Deadline = now + e.cfg.SendPurgeDelayMillis
		}
		return TaskSendDone

	case TaskSendDone:
		return TaskFinished

	case TaskReceive:
		return TaskReceiveTimedOut

	case TaskReceiveDataAvailable:
		return TaskReceiveTimedOut

	case TaskReceiveDataRetrieved:
		return TaskFinished

	case TaskReceiveTimedOut:
		return TaskFinished

	default:
		return t.State
	}
}

// scheduleAck creates a fresh, unattended SEND task carrying an ACK for
// (dest, id). Per spec.md §5, an ACK is always scheduled as a new task
// rather than transmitted inline, so it fires no earlier than the next
// tick after the frame that triggered it.
func (e *Engine) scheduleAck(dest Address, id PacketID, now uint32) {
	t, status := e.pool.Create()
	if status != StatusTaskCreatedOK {
		rlog.Error("could not schedule ACK, task pool full", "dest", dest, "pktid", id)
		return
	}
	header := Header{Dest: dest, Src: e.own, Flags: FlagACK, PacketID: id, Len: 0}
	t.Buf = PrepareForSend(header, nil)
	t.State = TaskSend
	t.RefTime = now
	t.Deadline = now
	t.Schedule = SndAck
	t.Cursor = 0
	t.SubscribedTimer = true
	t.SubscribedFrame = false
	t.IsAck = true
	t.Unattended = true
}
