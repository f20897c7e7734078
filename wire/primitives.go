// Package wire implements the lowest layer of the PFCP codec: big-endian
// integer helpers and the fixed message header. Every exported function is
// pure and operates only on its arguments, matching the rest of the codec's
// no-shared-state design.
package wire

import (
	"encoding/binary"

	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

// ReadU8 reads a single byte from b at offset 0.
func ReadU8(b []byte) (uint8, error) {
	if len(b) < 1 {
		return 0, &pfcperr.InvalidLength{Context: "u8", Expected: ">=1", Actual: len(b)}
	}
	return b[0], nil
}

// ReadU16 reads a big-endian uint16 from the first 2 bytes of b.
func ReadU16(b []byte) (uint16, error) {
	if len(b) < 2 {
		return 0, &pfcperr.InvalidLength{Context: "u16", Expected: ">=2", Actual: len(b)}
	}
	return binary.BigEndian.Uint16(b), nil
}

// ReadU24 reads a big-endian 24-bit unsigned integer, widened to uint32.
func ReadU24(b []byte) (uint32, error) {
	if len(b) < 3 {
		return 0, &pfcperr.InvalidLength{Context: "u24", Expected: ">=3", Actual: len(b)}
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// ReadU32 reads a big-endian uint32 from the first 4 bytes of b.
func ReadU32(b []byte) (uint32, error) {
	if len(b) < 4 {
		return 0, &pfcperr.InvalidLength{Context: "u32", Expected: ">=4", Actual: len(b)}
	}
	return binary.BigEndian.Uint32(b), nil
}

// ReadU64 reads a big-endian uint64 from the first 8 bytes of b.
func ReadU64(b []byte) (uint64, error) {
	if len(b) < 8 {
		return 0, &pfcperr.InvalidLength{Context: "u64", Expected: ">=8", Actual: len(b)}
	}
	return binary.BigEndian.Uint64(b), nil
}

// WriteU8 appends a single byte to dst.
func WriteU8(dst []byte, v uint8) []byte {
	return append(dst, v)
}

// WriteU16 appends a big-endian uint16 to dst.
func WriteU16(dst []byte, v uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, v)
}

// WriteU24 appends a big-endian 24-bit unsigned integer (low 24 bits of v).
func WriteU24(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>16), byte(v>>8), byte(v))
}

// WriteU32 appends a big-endian uint32 to dst.
func WriteU32(dst []byte, v uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, v)
}

// WriteU64 appends a big-endian uint64 to dst.
func WriteU64(dst []byte, v uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, v)
}

// NewBuffer preallocates a byte slice of length 0 with the given expected
// capacity, for encoders that can compute their output size up front (e.g.
// grouped IE encoders summing child lengths) to avoid repeated reallocation.
func NewBuffer(capacityHint int) []byte {
	return make([]byte, 0, capacityHint)
}
