package engine

import "github.com/sebmillet/rflink/engine/rlog"

// SendNoBlock creates a SEND task for payload addressed to dst and
// returns immediately (spec.md §4.6). The schedule used is SndExpAck
// when wantAck is true, SND otherwise; broadcast destinations never
// expect an ACK regardless of wantAck (spec.md §3, GLOSSARY). The task's
// header gets a freshly allocated, monotonically incrementing packet-id
// (spec.md §3); ACKs don't go through here, so they never consume one.
func (e *Engine) SendNoBlock(dst Address, payload []byte, wantAck bool) (TaskID, Status) {
	if len(payload) > MaxEncodablePayload {
		return 0, StatusSendBadArguments
	}
	if len(payload) > e.maxPayload {
		return 0, StatusSendDataLenAboveLimit
	}

	t, status := e.pool.Create()
	if status != StatusTaskCreatedOK {
		return 0, status
	}

	needsAck := wantAck && dst != Broadcast
	now := e.now()

	flags := byte(0)
	if needsAck {
		flags |= FlagSIN
	}
	header := Header{Dest: dst, Src: e.own, Flags: flags, PacketID: e.allocatePacketID(), Len: byte(len(payload))}
	t.Buf = PrepareForSend(header, payload)
	t.State = TaskSend
	t.RefTime = now
	t.Deadline = now
	if needsAck {
		t.Schedule = SndExpAck
	} else {
		t.Schedule = SND
	}
	t.Cursor = 0
	t.NeedsAck = needsAck
	t.SubscribedTimer = true
	t.SubscribedFrame = needsAck

	return t.ID, StatusTaskCreatedOK
}

// ReceiveNoBlock creates a RECEIVE task filtered by cfg and returns
// immediately (spec.md §4.6).
func (e *Engine) ReceiveNoBlock(cfg RxConfig) (TaskID, Status) {
	t, status := e.pool.Create()
	if status != StatusTaskCreatedOK {
		return 0, status
	}

	now := e.now()
	t.Buf = NewPacket()
	t.State = TaskReceive
	t.RefTime = now
	t.SubscribedFrame = true
	t.RxCallback = cfg.RxCallback

	if cfg.Sender != nil {
		t.SingleSender = true
		t.FilterAddress = *cfg.Sender
	}
	if cfg.Timeout > 0 {
		t.SubscribedTimer = true
		t.Deadline = now + cfg.Timeout
	}

	return t.ID, StatusTaskCreatedOK
}

// TaskGetStatus reports a task's current state.
func (e *Engine) TaskGetStatus(id TaskID) (TaskState, error) {
	t, ok := e.pool.Lookup(id)
	if !ok {
		return TaskNothing, errStatus(StatusUnknownTaskID)
	}
	return t.State, nil
}

// SendGetFinalStatus reports a SEND task's outcome once it has left
// the SEND state, along with the number of transmit attempts made.
func (e *Engine) SendGetFinalStatus(id TaskID) (Status, int, error) {
	t, ok := e.pool.Lookup(id)
	if !ok {
		return StatusUndefined, 0, errStatus(StatusUnknownTaskID)
	}
	if t.State == TaskSend {
		return StatusUndefined, t.TxCount, errStatus(StatusTaskUnderway)
	}
	return t.FinalStatus, t.TxCount, nil
}

// RetrievePayload implements the application-retrieves-payload
// transition from spec.md §4.3: RECEIVE_DATA_AVAILABLE ->
// RECEIVE_DATA_RETRIEVED, shrinking the buffer and scheduling an ACK
// if the sender's SIN bit was set.
func (e *Engine) RetrievePayload(id TaskID) (payload []byte, sender Address, err error) {
	t, ok := e.pool.Lookup(id)
	if !ok {
		return nil, 0, errStatus(StatusUnknownTaskID)
	}
	if t.State != TaskReceiveDataAvailable {
		return nil, 0, errStatus(StatusTaskUnderway)
	}

	payload = t.Buf.Payload
	sender = t.Buf.Header.Src
	needsAck := t.Buf.Header.Flags&FlagSIN != 0
	pktID := t.Buf.Header.PacketID

	t.Buf.ShrinkToHeader()
	now := e.now()
	t.State = TaskReceiveDataRetrieved
	t.SubscribedFrame = true
	t.SubscribedTimer = true
	t.Deadline = now + e.cfg.ReceivePurgeDelayMillis

	if needsAck {
		e.scheduleAck(sender, pktID, now)
	}

	if t.RxCallback != nil {
		t.RxCallback(sender, payload)
	}

	return payload, sender, nil
}

// Send is the blocking wrapper around SendNoBlock: it drives DoEvents
// until the task leaves SEND, then reports the final status.
func (e *Engine) Send(dst Address, payload []byte, wantAck bool) (Status, int, error) {
	id, status := e.SendNoBlock(dst, payload, wantAck)
	if status != StatusTaskCreatedOK {
		return status, 0, errStatus(status)
	}
	for {
		state, err := e.TaskGetStatus(id)
		if err != nil {
			return StatusUndefined, 0, err
		}
		if state != TaskSend {
			break
		}
		e.DoEvents()
	}
	finalStatus, txCount, err := e.SendGetFinalStatus(id)
	return finalStatus, txCount, err
}

// Receive is the blocking wrapper around ReceiveNoBlock: it drives
// DoEvents until the task leaves RECEIVE, then retrieves the payload
// or reports a timeout.
func (e *Engine) Receive(cfg RxConfig) (payload []byte, sender Address, err error) {
	id, status := e.ReceiveNoBlock(cfg)
	if status != StatusTaskCreatedOK {
		return nil, 0, errStatus(status)
	}
	for {
		state, lookupErr := e.TaskGetStatus(id)
		if lookupErr != nil {
			return nil, 0, lookupErr
		}
		if state != TaskReceive {
			break
		}
		e.DoEvents()
	}

	state, err := e.TaskGetStatus(id)
	if err != nil {
		return nil, 0, err
	}
	switch state {
	case TaskReceiveDataAvailable:
		return e.RetrievePayload(id)
	case TaskReceiveTimedOut:
		rlog.Debug("receive timed out", "task", id)
		return nil, 0, errStatus(StatusTimeout)
	default:
		return nil, 0, errStatus(StatusUndefined)
	}
}
