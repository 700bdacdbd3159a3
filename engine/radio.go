package engine

// Option identifies a device_set_option target (spec.md §6).
type Option int

const (
	// OptionAddress sets the device's own address (1 byte).
	OptionAddress Option = iota
	// OptionSnifMode toggles the hardware address filter: 1 byte,
	// 0 = filter on, nonzero = filter off (accept any destination).
	OptionSnifMode
	// OptionEmissionPower sets transmit power: 1 byte, 0 = low,
	// nonzero = high.
	OptionEmissionPower
)

// Radio is the narrow, synchronous contract the engine binds to. It is
// deliberately the only point of contact with actual hardware - see
// radiodriver/ for concrete adapters (serial port, GPIO interrupt line,
// Hamlib-controlled power, ...). Nothing in engine/ depends on a
// specific chip.
type Radio interface {
	// Init initializes the hardware and reports the maximum frame size
	// it can exchange. If resetOnly is true, it re-arms a previously
	// initialized device without changing its configuration (used for
	// the wedged-transceiver recovery path, spec.md §4.5 step 4).
	Init(resetOnly bool) (maxFrameLen int, err error)

	// Send transmits one frame synchronously and reports the driver's
	// result as a Status (StatusOK on success).
	Send(frame []byte) Status

	// Receive performs a non-blocking drain of one pending frame into
	// buf, returning the number of bytes written. It returns (0, nil)
	// when nothing is pending.
	Receive(buf []byte) (n int, err error)

	// SetOption applies one of the enumerated Option values.
	SetOption(opt Option, data []byte) error

	// SetInterrupt arms the falling-edge data-ready interrupt, invoking
	// fn from whatever context the underlying driver uses. The engine
	// disarms the interrupt before draining a frame to prevent
	// reentrancy (spec.md §5).
	SetInterrupt(fn func())

	// ResetInterrupt disarms the interrupt.
	ResetInterrupt()
}
