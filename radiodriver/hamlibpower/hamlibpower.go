// Package hamlibpower decorates an engine.Radio so that
// device_set_option(EMISSION_POWER, ...) (spec.md §6) reaches a real
// Hamlib-controlled transceiver's RF power level via
// github.com/xylo04/goHamlib, instead of being silently accepted by the
// wrapped transport-layer Radio. Every other call passes through
// unchanged, so this composes with radiodriver/serial or
// radiodriver/gpiointerrupt without touching framing or interrupt logic.
package hamlibpower

import (
	"github.com/xylo04/goHamlib"

	"github.com/sebmillet/rflink/engine"
	"github.com/sebmillet/rflink/engine/rlog"
)

// Watts used for the engine's two-level power option (spec.md §6:
// EMISSION_POWER is 1 byte, 0 = low, nonzero = high).
const (
	LowPowerWatts  = 5
	HighPowerWatts = 50
)

// Radio wraps inner, routing EMISSION_POWER through a Hamlib rig handle.
type Radio struct {
	inner engine.Radio
	rig   *goHamlib.Rig
}

// New wraps inner, controlling power on the already-opened rig.
func New(inner engine.Radio, rig *goHamlib.Rig) *Radio {
	return &Radio{inner: inner, rig: rig}
}

func (r *Radio) Init(resetOnly bool) (int, error) { return r.inner.Init(resetOnly) }
func (r *Radio) Send(frame []byte) engine.Status  { return r.inner.Send(frame) }
func (r *Radio) Receive(buf []byte) (int, error)  { return r.inner.Receive(buf) }
func (r *Radio) SetInterrupt(fn func())           { r.inner.SetInterrupt(fn) }
func (r *Radio) ResetInterrupt()                  { r.inner.ResetInterrupt() }

// SetOption passes ADDRESS and SNIF_MODE straight through to inner;
// EMISSION_POWER is translated into a Hamlib power-level call instead.
func (r *Radio) SetOption(opt engine.Option, data []byte) error {
	if opt != engine.OptionEmissionPower {
		return r.inner.SetOption(opt, data)
	}

	watts := LowPowerWatts
	if len(data) > 0 && data[0] != 0 {
		watts = HighPowerWatts
	}

	if err := r.rig.SetLevel(goHamlib.LevelRfPower, float64(watts)); err != nil {
		rlog.Error("hamlibpower: set RF power failed", "watts", watts, "err", err)
		return err
	}
	rlog.Info("hamlibpower: RF power set", "watts", watts)
	return nil
}
