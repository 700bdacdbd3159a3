// Package ptyloopback builds a pair of engine.Radio values that exchange
// real bytes over a pseudo-terminal instead of physical hardware, for
// exercising two stations end-to-end in tests. It is grounded on
// kiss.go's existing use of github.com/creack/pty (there opened to offer
// a KISS pseudo-TNC device to another process); here the master and
// slave ends of one pty are wrapped as the two peers' transport.
//
// This package exists to serve tests (engine/loopback_test.go) and is
// not meant for production
// wiring - a real deployment uses radiodriver/serial against actual
// hardware - but it is not itself a _test.go file because it is shared
// across package boundaries, which Go does not allow for test-only files.
package ptyloopback

import (
	"os"
	"sync"

	"github.com/creack/pty"

	"github.com/sebmillet/rflink/engine"
)

// Pair holds both ends of a loopback link; each end implements
// engine.Radio.
type Pair struct {
	A *Radio
	B *Radio
}

// New opens one pseudo-terminal pair and wraps both ends as Radios with
// maxFrameLen advertised from Init.
func New(maxFrameLen int) (*Pair, error) {
	master, slave, err := pty.Open()
	if err != nil {
		return nil, err
	}
	a := newRadio(master, maxFrameLen)
	b := newRadio(slave, maxFrameLen)
	return &Pair{A: a, B: b}, nil
}

// Close closes both ends.
func (p *Pair) Close() {
	p.A.close()
	p.B.close()
}

// Radio is one end of a Pair, framing each packet with a one-byte
// length prefix exactly like radiodriver/serial.Radio, since both sit
// on top of an unframed byte stream.
type Radio struct {
	f           *os.File
	maxFrameLen int

	mu          sync.Mutex
	interruptFn func()
	armed       bool

	rx   chan []byte
	done chan struct{}
}

func newRadio(f *os.File, maxFrameLen int) *Radio {
	r := &Radio{f: f, maxFrameLen: maxFrameLen, rx: make(chan []byte, 8), done: make(chan struct{})}
	go r.readLoop()
	return r
}

func (r *Radio) readLoop() {
	hdr := make([]byte, 1)
	for {
		n, err := r.f.Read(hdr)
		if err != nil || n != 1 {
			return
		}
		length := int(hdr[0])
		buf := make([]byte, length)
		read := 0
		for read < length {
			n, err := r.f.Read(buf[read:])
			if err != nil {
				return
			}
			read += n
		}
		select {
		case r.rx <- buf:
		case <-r.done:
			return
		}
		r.mu.Lock()
		fn, armed := r.interruptFn, r.armed
		r.mu.Unlock()
		if armed && fn != nil {
			fn()
		}
	}
}

func (r *Radio) close() {
	close(r.done)
	_ = r.f.Close()
}

func (r *Radio) Init(resetOnly bool) (int, error) { return r.maxFrameLen, nil }

func (r *Radio) Send(frame []byte) engine.Status {
	out := append([]byte{byte(len(frame))}, frame...)
	n, err := r.f.Write(out)
	if err != nil || n != len(out) {
		return engine.StatusSendIO
	}
	return engine.StatusOK
}

func (r *Radio) Receive(buf []byte) (int, error) {
	select {
	case frame := <-r.rx:
		return copy(buf, frame), nil
	default:
		return 0, nil
	}
}

func (r *Radio) SetOption(opt engine.Option, data []byte) error { return nil }

func (r *Radio) SetInterrupt(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interruptFn = fn
	r.armed = true
}

func (r *Radio) ResetInterrupt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.armed = false
}
