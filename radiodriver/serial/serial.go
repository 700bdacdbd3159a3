// Package serial implements engine.Radio over a UART connection to an
// attached radio module, the way the teacher's serial_port.go wraps
// github.com/pkg/term for the KISS TNC's serial link - open/write/read/close,
// translated here to the engine's four-call Radio contract (spec.md §6).
package serial

import (
	"errors"
	"sync"

	"github.com/pkg/term"

	"github.com/sebmillet/rflink/engine"
	"github.com/sebmillet/rflink/engine/rlog"
)

// MaxFrameLen is the largest frame this adapter exchanges: small enough
// for the radios spec.md targets (tens of bytes of payload) while
// leaving room for the 6-byte header.
const MaxFrameLen = 64

// Radio implements engine.Radio over a raw UART. The underlying link is
// an unframed byte stream, so each packet is framed with a single
// length-prefix byte (the radio hardware itself is assumed to do the
// actual over-the-air framing/CRC; this adapter only has to get bytes
// across a serial cable reliably).
type Radio struct {
	device string
	baud   int

	mu sync.Mutex
	fd *term.Term

	rx      chan []byte
	closeRx chan struct{}

	interruptFn func()
	armed       bool
}

// New returns a Radio bound to devicename (e.g. "/dev/ttyUSB0") at baud
// bits/second. Passing baud=0 leaves the port's current speed alone,
// mirroring serial_port_open's behaviour.
func New(devicename string, baud int) *Radio {
	return &Radio{device: devicename, baud: baud}
}

// Init opens the serial port and reports MaxFrameLen. When resetOnly is
// true and the port is already open, it leaves the open port as it is
// and only reports MaxFrameLen.
func (r *Radio) Init(resetOnly bool) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if resetOnly && r.fd != nil {
		rlog.Info("serial radio: re-armed without reopening", "device", r.device)
		return MaxFrameLen, nil
	}

	if r.fd != nil {
		r.stopReaderLocked()
		_ = r.fd.Close()
		r.fd = nil
	}

	fd, err := term.Open(r.device, term.RawMode)
	if err != nil {
		rlog.Error("serial radio: could not open port", "device", r.device, "err", err)
		return 0, err
	}
	if r.baud != 0 {
		if err := fd.SetSpeed(r.baud); err != nil {
			_ = fd.Close()
			return 0, err
		}
	}

	r.fd = fd
	r.rx = make(chan []byte, 8)
	r.closeRx = make(chan struct{})
	go r.readLoop(fd, r.rx, r.closeRx)

	rlog.Info("serial radio: opened", "device", r.device, "baud", r.baud)
	return MaxFrameLen, nil
}

// readLoop runs in its own goroutine (there is no non-blocking read in
// pkg/term) reading one length-prefixed frame at a time and forwarding
// it on rx, firing the armed interrupt callback exactly as a falling
// edge on a real data-ready line would.
func (r *Radio) readLoop(fd *term.Term, rx chan []byte, done chan struct{}) {
	hdr := make([]byte, 1)
	for {
		select {
		case <-done:
			return
		default:
		}

		n, err := fd.Read(hdr)
		if err != nil || n != 1 {
			return
		}
		length := int(hdr[0])
		buf := make([]byte, length)
		read := 0
		for read < length {
			n, err := fd.Read(buf[read:])
			if err != nil {
				return
			}
			read += n
		}

		select {
		case rx <- buf:
		case <-done:
			return
		}

		r.mu.Lock()
		fn := r.interruptFn
		armed := r.armed
		r.mu.Unlock()
		if armed && fn != nil {
			fn()
		}
	}
}

func (r *Radio) stopReaderLocked() {
	if r.closeRx != nil {
		close(r.closeRx)
		r.closeRx = nil
	}
}

// Send writes one length-prefixed frame synchronously.
func (r *Radio) Send(frame []byte) engine.Status {
	r.mu.Lock()
	fd := r.fd
	r.mu.Unlock()

	if fd == nil {
		return engine.StatusDeviceNotRegistered
	}
	if len(frame) > 255 {
		return engine.StatusSendDataLenAboveLimit
	}

	out := append([]byte{byte(len(frame))}, frame...)
	n, err := fd.Write(out)
	if err != nil || n != len(out) {
		rlog.Error("serial radio: write failed", "err", err, "written", n)
		return engine.StatusSendIO
	}
	return engine.StatusOK
}

// Receive performs a non-blocking drain of one frame already buffered
// by readLoop. It returns (0, nil) when nothing is pending.
func (r *Radio) Receive(buf []byte) (int, error) {
	r.mu.Lock()
	rx := r.rx
	r.mu.Unlock()
	if rx == nil {
		return 0, errors.New("serial radio: not initialized")
	}

	select {
	case frame := <-rx:
		n := copy(buf, frame)
		return n, nil
	default:
		return 0, nil
	}
}

// SetOption applies the address/snif-mode/power options. This bare
// adapter has no hardware register for any of them (a real radio chip's
// convenience layer would translate these into its own command set), so
// it accepts them without error and only logs them at debug level.
// Wrapping this Radio in radiodriver/hamlibpower gives EMISSION_POWER a
// real effect; ADDRESS and SNIF_MODE have none at this layer.
func (r *Radio) SetOption(opt engine.Option, data []byte) error {
	rlog.Debug("serial radio: set option (no-op at this layer)", "opt", opt, "data", data)
	return nil
}

// SetInterrupt registers fn to be invoked by readLoop when a frame
// arrives while armed.
func (r *Radio) SetInterrupt(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.interruptFn = fn
	r.armed = true
}

// ResetInterrupt disarms frame-arrival notifications.
func (r *Radio) ResetInterrupt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.armed = false
}
