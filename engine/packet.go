package engine

import "encoding/binary"

// Address is the device's 1-byte link-layer identifier. Broadcast is
// reserved and never assigned to a real station.
type Address uint8

// Broadcast is the reserved destination meaning "every station", per
// spec.md §3. No ACK is ever expected for a broadcast destination
// regardless of the SIN flag.
const Broadcast Address = 0xFF

// PacketID is the 2-byte monotonic, wrap-on-overflow sequence number
// assigned to every outgoing non-ACK packet.
type PacketID uint16

// Flag bits occupy the low nibble of the header's flags byte. The high
// nibble is a 4-bit retransmission-attempt counter, diagnostic only -
// receivers MUST NOT use it for duplicate suppression (spec.md §9).
const (
	FlagSIN byte = 1 << 0 // sender is requesting an acknowledgement
	FlagACK byte = 1 << 1 // this frame is an acknowledgement
)

// HeaderSize is the fixed 6-byte wire header: dest, src, flags, packet-id
// (2 bytes little-endian), payload length.
const HeaderSize = 6

// MaxEncodablePayload is the largest payload Header.Len can represent at
// all, independent of any particular radio's frame size: Len is one
// wire byte. A radio reporting a larger frame still gets MaxPayload
// clamped to this (engine.New); going past it is SEND_BAD_ARGUMENTS,
// not SEND_DATA_LEN_ABOVE_LIMIT, since no device capacity is involved.
const MaxEncodablePayload = 255

// Header is the fixed-layout frame header. Destination comes first on
// the wire because the radio's hardware address filter inspects only
// the leading byte.
type Header struct {
	Dest     Address
	Src      Address
	Flags    byte
	PacketID PacketID
	Len      byte
}

// SeqCounter returns the 4-bit diagnostic retransmission counter
// carried in the flags byte's high nibble.
func (h Header) SeqCounter() byte {
	return h.Flags >> 4
}

// WithSeqCounter returns a copy of h with the high nibble set to the
// low 4 bits of seq, leaving the option bits untouched.
func (h Header) WithSeqCounter(seq byte) Header {
	h.Flags = (h.Flags & 0x0F) | ((seq & 0x0F) << 4)
	return h
}

// Encode writes the 6-byte wire representation of h. Packet-id is
// little-endian; this is an explicit, arbitrary choice documented here
// for interoperability (spec.md §9) rather than left to memcpy layout.
func (h Header) Encode() [HeaderSize]byte {
	var b [HeaderSize]byte
	b[0] = byte(h.Dest)
	b[1] = byte(h.Src)
	b[2] = h.Flags
	binary.LittleEndian.PutUint16(b[3:5], uint16(h.PacketID))
	b[5] = h.Len
	return b
}

// DecodeHeader parses the first HeaderSize bytes of b into a Header.
// The caller must ensure len(b) >= HeaderSize.
func DecodeHeader(b []byte) Header {
	assertf(len(b) >= HeaderSize, "engine: DecodeHeader needs %d bytes, got %d", HeaderSize, len(b))
	return Header{
		Dest:     Address(b[0]),
		Src:      Address(b[1]),
		Flags:    b[2],
		PacketID: PacketID(binary.LittleEndian.Uint16(b[3:5])),
		Len:      b[5],
	}
}

// Packet is a frame buffer: a header plus at most MAX_PAYLOAD bytes of
// application data. The enclosing Task exclusively owns its Packet; the
// engine owns one scratch buffer for the interrupt-driven reception path.
type Packet struct {
	Header  Header
	Payload []byte
}

// NewPacket returns an empty packet buffer ("allocate").
func NewPacket() *Packet {
	return &Packet{}
}

// Free clears the buffer's contents. Present for symmetry with the
// original allocate/free pairing; Go's GC reclaims the backing array.
func (p *Packet) Free() {
	p.Header = Header{}
	p.Payload = nil
}

// CopyFrom duplicates other's header and payload into p.
func (p *Packet) CopyFrom(other *Packet) {
	p.Header = other.Header
	if other.Payload == nil {
		p.Payload = nil
		return
	}
	p.Payload = append([]byte(nil), other.Payload...)
}

// PrepareForSend materializes a full frame from a header and payload.
// Precondition: (len(payload) == 0) == (header.Len == 0). SendNoBlock
// never violates it, since it rejects any payload too long for
// header.Len to represent (SEND_BAD_ARGUMENTS) before it ever builds a
// Header here - so a violation reaching this point comes from a direct
// caller of PrepareForSend, is a programmer error rather than a request
// a caller can make legally, and panics rather than returning a Status.
func PrepareForSend(header Header, payload []byte) *Packet {
	assertf((len(payload) == 0) == (header.Len == 0),
		"engine: PrepareForSend precondition violated: len(payload)=%d header.Len=%d", len(payload), header.Len)
	p := &Packet{Header: header}
	if len(payload) > 0 {
		p.Payload = append([]byte(nil), payload...)
	}
	return p
}

// DecodePacket parses a received frame buffer into a Packet. It does
// not perform cross-field validation; call Validate separately with the
// actual byte count and the radio's max payload, exactly as spec.md
// §4.1 splits "decode" from "validate".
func DecodePacket(buf []byte) (*Packet, bool) {
	if len(buf) < HeaderSize {
		return nil, false
	}
	h := DecodeHeader(buf[:HeaderSize])
	p := &Packet{Header: h}
	if rest := buf[HeaderSize:]; len(rest) > 0 {
		p.Payload = append([]byte(nil), rest...)
	}
	return p, true
}

// Validate reports whether p is a well-formed frame for nbBytesReceived
// raw bytes, given the radio's maxPayload. A nil receiver is invalid.
func (p *Packet) Validate(nbBytesReceived, maxPayload int) bool {
	if p == nil {
		return false
	}
	if int(p.Header.Len) > maxPayload {
		return false
	}
	return HeaderSize+int(p.Header.Len) == nbBytesReceived
}

// ShrinkToHeader frees the payload once it is no longer needed, e.g.
// after ACK receipt or application retrieval. The header - including
// the original source/packet-id used to recognize a repeated ACK
// request - is retained.
func (p *Packet) ShrinkToHeader() {
	p.Payload = nil
}

// FrameLen returns the total on-wire length of the buffer.
func (p *Packet) FrameLen() int {
	return HeaderSize + len(p.Payload)
}

// Bytes returns the full on-wire frame: header followed by payload.
func (p *Packet) Bytes() []byte {
	hb := p.Header.Encode()
	out := make([]byte, 0, HeaderSize+len(p.Payload))
	out = append(out, hb[:]...)
	out = append(out, p.Payload...)
	return out
}
