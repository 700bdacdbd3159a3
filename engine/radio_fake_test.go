package engine

import "sync"

// manualClock is a Clock whose value only changes when a test calls
// Advance, letting scenario tests cross retransmission deadlines
// instantly instead of sleeping for real milliseconds.
type manualClock struct {
	mu  sync.Mutex
	now uint32
}

func newManualClock() *manualClock { return &manualClock{} }

func (c *manualClock) NowMillis() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) Advance(d uint32) {
	c.mu.Lock()
	c.now += d
	c.mu.Unlock()
}

// fakeMedium is a shared broadcast bus joining every FakeRadio attached
// to it, with an optional frame-drop percentage (dropPct) for exercising
// lossy links.
type fakeMedium struct {
	mu      sync.Mutex
	radios  []*fakeRadio
	dropPct int
	seed    uint32
}

func newFakeMedium() *fakeMedium { return &fakeMedium{seed: 12345} }

func (m *fakeMedium) attach(r *fakeRadio) {
	m.mu.Lock()
	m.radios = append(m.radios, r)
	m.mu.Unlock()
}

func (m *fakeMedium) broadcast(from *fakeRadio, frame []byte) {
	m.mu.Lock()
	peers := append([]*fakeRadio(nil), m.radios...)
	drop := m.dropPct
	m.mu.Unlock()

	for _, r := range peers {
		if r == from {
			continue
		}
		if drop > 0 && m.nextDrop(drop) {
			continue
		}
		r.deliver(append([]byte(nil), frame...))
	}
}

// nextDrop is a tiny deterministic LCG, enough to exercise packet loss
// in a test without pulling in math/rand's global state.
func (m *fakeMedium) nextDrop(pct int) bool {
	m.mu.Lock()
	m.seed = m.seed*1103515245 + 12345
	v := int((m.seed >> 16) % 100)
	m.mu.Unlock()
	return v < pct
}

// fakeRadio is an in-memory Radio over fakeMedium, standing in for real
// hardware in scenario tests.
type fakeRadio struct {
	medium      *fakeMedium
	maxFrameLen int

	mu          sync.Mutex
	inbox       [][]byte
	interruptFn func()
	armed       bool
	online      bool
	resets      int
}

func newFakeRadio(medium *fakeMedium, maxFrameLen int) *fakeRadio {
	r := &fakeRadio{medium: medium, maxFrameLen: maxFrameLen, online: true}
	medium.attach(r)
	return r
}

func (r *fakeRadio) Init(resetOnly bool) (int, error) {
	if resetOnly {
		r.mu.Lock()
		r.resets++
		r.mu.Unlock()
	}
	return r.maxFrameLen, nil
}

func (r *fakeRadio) Send(frame []byte) Status {
	r.mu.Lock()
	online := r.online
	r.mu.Unlock()
	if !online {
		return StatusSendIO
	}
	r.medium.broadcast(r, frame)
	return StatusOK
}

func (r *fakeRadio) Receive(buf []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.inbox) == 0 {
		return 0, nil
	}
	frame := r.inbox[0]
	r.inbox = r.inbox[1:]
	return copy(buf, frame), nil
}

func (r *fakeRadio) SetOption(opt Option, data []byte) error { return nil }

func (r *fakeRadio) SetInterrupt(fn func()) {
	r.mu.Lock()
	r.interruptFn = fn
	r.armed = true
	r.mu.Unlock()
}

func (r *fakeRadio) ResetInterrupt() {
	r.mu.Lock()
	r.armed = false
	r.mu.Unlock()
}

func (r *fakeRadio) deliver(frame []byte) {
	r.mu.Lock()
	r.inbox = append(r.inbox, frame)
	fn, armed := r.interruptFn, r.armed
	r.mu.Unlock()
	if armed && fn != nil {
		fn()
	}
}

func (r *fakeRadio) goOffline() {
	r.mu.Lock()
	r.online = false
	r.mu.Unlock()
}

func (r *fakeRadio) resetCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resets
}
