package wire

import (
	"fmt"

	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

// SupportedVersion is the only PFCP version this codec accepts in incoming
// headers (this codec targets TS 29.244 Release 18; earlier wire versions are a
// deliberate non-goal).
const SupportedVersion uint8 = 1

const (
	flagS  = 0x01 // SEID present
	flagMP = 0x02 // message priority present in the trailing spare byte
)

// minHeaderLen is the header size with S=0: version/flags(1) + msgtype(1) +
// length(2) + sequence(3) + spare(1).
const minHeaderLen = 8

// seidHeaderLen is the header size with S=1: the above plus the 8-byte SEID.
const seidHeaderLen = minHeaderLen + 8

// postLengthBytes is how many header bytes follow the 16-bit length field,
// per the S flag. It is exactly what the length field counts before any
// message body is added.
func postLengthBytes(s bool) int {
	if s {
		return 12 // SEID(8) + sequence(3) + spare(1)
	}
	return 4 // sequence(3) + spare(1)
}

// Header is the fixed PFCP message header.
type Header struct {
	Version  uint8
	S        bool // SEID present; must be true for all session-scoped messages
	MP       bool // message priority present
	MsgType  uint8
	Length   uint16 // byte count after the length field itself
	Seid     uint64 // valid iff S
	Sequence uint32 // 24-bit, stored widened
	Priority uint8  // low nibble valid iff MP
}

// HeaderLen returns the on-wire size of h (8 or 16 bytes).
func (h Header) HeaderLen() int {
	if h.S {
		return seidHeaderLen
	}
	return minHeaderLen
}

// EncodeHeader serializes h with bodyLen being the number of message-body
// bytes (the concatenated IEs) that follow the header on the wire. The
// Length field is computed, not taken from h.Length.
func EncodeHeader(h Header, bodyLen int) ([]byte, error) {
	if bodyLen < 0 {
		return nil, &pfcperr.EncodingError{Reason: "negative body length"}
	}
	length := postLengthBytes(h.S) + bodyLen
	if length > 0xFFFF {
		return nil, &pfcperr.EncodingError{Reason: "header: length field exceeds u16"}
	}

	out := make([]byte, 0, h.HeaderLen())
	var b0 uint8 = h.Version << 5
	if h.S {
		b0 |= flagS
	}
	if h.MP {
		b0 |= flagMP
	}
	out = WriteU8(out, b0)
	out = WriteU8(out, h.MsgType)
	out = WriteU16(out, uint16(length))
	if h.S {
		out = WriteU64(out, h.Seid)
	}
	out = WriteU24(out, h.Sequence)
	var spare uint8
	if h.MP {
		spare = h.Priority & 0x0F
	}
	out = WriteU8(out, spare)
	return out, nil
}

// DecodeHeader parses the fixed header from the front of buf and returns
// the parsed Header along with the remaining (body) bytes.
//
// An unknown Version returns a recoverable *pfcperr.MessageParseError
// carrying the observed version, so the caller can synthesize a Version Not
// Supported Response without attempting to parse the body.
func DecodeHeader(buf []byte) (Header, []byte, error) {
	if len(buf) < minHeaderLen {
		return Header{}, nil, &pfcperr.InvalidLength{Context: "header", Expected: fmt.Sprintf(">=%d", minHeaderLen), Actual: len(buf)}
	}

	b0 := buf[0]
	h := Header{
		Version: b0 >> 5,
		S:       b0&flagS != 0,
		MP:      b0&flagMP != 0,
		MsgType: buf[1],
	}
	length, err := ReadU16(buf[2:4])
	if err != nil {
		return Header{}, nil, err
	}
	h.Length = length

	need := minHeaderLen
	if h.S {
		need = seidHeaderLen
	}
	if len(buf) < need {
		return Header{}, nil, &pfcperr.InvalidLength{Context: "header", Expected: fmt.Sprintf(">=%d", need), Actual: len(buf)}
	}
	total := 4 + int(length)
	if len(buf) < total {
		return Header{}, nil, &pfcperr.InvalidLength{Context: "header: declared length", Expected: fmt.Sprintf(">=%d", total), Actual: len(buf)}
	}

	off := 4
	if h.S {
		seid, err := ReadU64(buf[off:])
		if err != nil {
			return Header{}, nil, err
		}
		h.Seid = seid
		off += 8
	}
	seq, err := ReadU24(buf[off:])
	if err != nil {
		return Header{}, nil, err
	}
	h.Sequence = seq
	off += 3
	spare, err := ReadU8(buf[off:])
	if err != nil {
		return Header{}, nil, err
	}
	if h.MP {
		h.Priority = spare & 0x0F
	}
	off++

	if h.Version != SupportedVersion {
		return h, buf[off:total], pfcperr.NewRecoverableMessageParseError(
			fmt.Sprintf("unsupported version %d", h.Version))
	}

	return h, buf[off:total], nil
}
