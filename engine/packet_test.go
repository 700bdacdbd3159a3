package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		h := Header{
			Dest:     Address(rapid.Byte().Draw(t, "dest")),
			Src:      Address(rapid.Byte().Draw(t, "src")),
			Flags:    rapid.Byte().Draw(t, "flags"),
			PacketID: PacketID(rapid.Uint16().Draw(t, "pktid")),
			Len:      rapid.Byte().Draw(t, "len"),
		}
		encoded := h.Encode()
		decoded := DecodeHeader(encoded[:])
		assert.Equal(t, h, decoded)
	})
}

func TestHeaderEncodeIsLittleEndian(t *testing.T) {
	h := Header{PacketID: 0x0102}
	b := h.Encode()
	assert.Equal(t, byte(0x02), b[3])
	assert.Equal(t, byte(0x01), b[4])
}

func TestWithSeqCounterPreservesOptionBits(t *testing.T) {
	h := Header{Flags: FlagSIN}
	h = h.WithSeqCounter(0xFF)
	assert.Equal(t, byte(0x0F), h.SeqCounter())
	assert.NotZero(t, h.Flags&FlagSIN)
	assert.Zero(t, h.Flags&FlagACK)
}

func TestPrepareForSendPrecondition(t *testing.T) {
	assert.Panics(t, func() {
		PrepareForSend(Header{Len: 1}, nil)
	})
	assert.Panics(t, func() {
		PrepareForSend(Header{Len: 0}, []byte{1})
	})
	assert.NotPanics(t, func() {
		PrepareForSend(Header{Len: 0}, nil)
	})
}

func TestValidateRejectsLengthMismatch(t *testing.T) {
	p := &Packet{Header: Header{Len: 3}, Payload: []byte("abc")}
	assert.True(t, p.Validate(HeaderSize+3, 64))
	assert.False(t, p.Validate(HeaderSize+2, 64))
	assert.False(t, p.Validate(HeaderSize+3, 2))
}

func TestValidateRejectsNilPacket(t *testing.T) {
	var p *Packet
	assert.False(t, p.Validate(10, 64))
}

func TestDecodePacketRoundTrip(t *testing.T) {
	h := Header{Dest: 1, Src: 2, Flags: FlagSIN, PacketID: 42, Len: 3}
	sent := PrepareForSend(h, []byte("abc"))
	wire := sent.Bytes()

	got, ok := DecodePacket(wire)
	require.True(t, ok)
	assert.True(t, got.Validate(len(wire), 64))
	assert.Equal(t, h, got.Header)
	assert.Equal(t, []byte("abc"), got.Payload)
}

func TestShrinkToHeaderDropsPayload(t *testing.T) {
	p := PrepareForSend(Header{Len: 3}, []byte("abc"))
	p.ShrinkToHeader()
	assert.Nil(t, p.Payload)
	assert.Equal(t, HeaderSize, p.FrameLen())
}
