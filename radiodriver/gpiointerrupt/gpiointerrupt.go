// Package gpiointerrupt decorates an engine.Radio so its SetInterrupt /
// ResetInterrupt calls are backed by a real GPIO data-ready line instead
// of whatever notification (or lack of one) the wrapped Radio provides
// natively, using github.com/warthog618/go-gpiocdev. It also drives a
// transmit-enable (PTT) output line around Send, generalizing the
// teacher's ptt.go GPIO-as-control-signal idiom (there applied to keying
// a transmitter) to this link layer's single data-ready input line plus
// one PTT output line.
package gpiointerrupt

import (
	"github.com/warthog618/go-gpiocdev"

	"github.com/sebmillet/rflink/engine"
	"github.com/sebmillet/rflink/engine/rlog"
)

// Radio wraps an inner engine.Radio, replacing its interrupt plumbing
// with a real falling-edge watch on dataReadyLine and toggling
// pttLine around every Send, the way ptt.go keys a transmitter before
// writing audio and un-keys it afterward.
type Radio struct {
	inner engine.Radio

	chipName string
	dataLine int
	pttLine  int

	dataReady *gpiocdev.Line
	ptt       *gpiocdev.Line

	fn func()
}

// New wraps inner, watching dataLine on chip for falling edges and
// driving pttLine as an output for transmit-enable.
func New(inner engine.Radio, chipName string, dataLine, pttLine int) *Radio {
	return &Radio{inner: inner, chipName: chipName, dataLine: dataLine, pttLine: pttLine}
}

func (r *Radio) Init(resetOnly bool) (int, error) {
	maxFrameLen, err := r.inner.Init(resetOnly)
	if err != nil {
		return 0, err
	}

	if r.dataReady == nil {
		line, err := gpiocdev.RequestLine(r.chipName, r.dataLine,
			gpiocdev.WithPullUp,
			gpiocdev.WithFallingEdge,
			gpiocdev.WithEventHandler(r.onEdge),
		)
		if err != nil {
			rlog.Error("gpiointerrupt: could not request data-ready line", "chip", r.chipName, "line", r.dataLine, "err", err)
			return 0, err
		}
		r.dataReady = line
	}

	if r.ptt == nil {
		line, err := gpiocdev.RequestLine(r.chipName, r.pttLine, gpiocdev.AsOutput(0))
		if err != nil {
			rlog.Error("gpiointerrupt: could not request PTT line", "chip", r.chipName, "line", r.pttLine, "err", err)
			return 0, err
		}
		r.ptt = line
	}

	return maxFrameLen, nil
}

// onEdge is the go-gpiocdev event handler: it must do as little as
// possible, same discipline as engine.Engine.isr (spec.md §5) - just
// invoke the registered callback, which itself only raises a flag.
func (r *Radio) onEdge(evt gpiocdev.LineEvent) {
	if evt.Type == gpiocdev.LineEventFallingEdge && r.fn != nil {
		r.fn()
	}
}

// Send keys the PTT line, delegates to inner, then un-keys it.
func (r *Radio) Send(frame []byte) engine.Status {
	if r.ptt != nil {
		_ = r.ptt.SetValue(1)
		defer func() { _ = r.ptt.SetValue(0) }()
	}
	return r.inner.Send(frame)
}

func (r *Radio) Receive(buf []byte) (int, error) { return r.inner.Receive(buf) }

func (r *Radio) SetOption(opt engine.Option, data []byte) error { return r.inner.SetOption(opt, data) }

// SetInterrupt registers fn; the actual arm/disarm is implicit in
// whether fn is non-nil, since the GPIO line is requested with edge
// detection permanently enabled once Init succeeds.
func (r *Radio) SetInterrupt(fn func()) { r.fn = fn }

// ResetInterrupt disarms notifications without releasing the GPIO line.
func (r *Radio) ResetInterrupt() { r.fn = nil }

// Close releases both GPIO lines.
func (r *Radio) Close() error {
	var firstErr error
	if r.dataReady != nil {
		if err := r.dataReady.Close(); err != nil {
			firstErr = err
		}
	}
	if r.ptt != nil {
		if err := r.ptt.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
