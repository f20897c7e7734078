// Package ids provides compile-time distinct identifier types so a
// sequence number can never be mixed up with a session identifier at the
// type level. Each newtype exposes explicit conversion from the raw
// integer and a String() for diagnostics; equality/ordering fall out of
// the underlying primitive.
package ids

import (
	"fmt"
	"net"
)

// Seid is a 64-bit Session Endpoint Identifier.
type Seid uint64

func FromUint64(v uint64) Seid { return Seid(v) }
func (s Seid) Uint64() uint64  { return uint64(s) }
func (s Seid) String() string  { return fmt.Sprintf("SEID(0x%016x)", uint64(s)) }

// SequenceNumber is the header's 24-bit sequence number, stored widened to
// 32 bits. Construction truncates to 24 bits.
type SequenceNumber uint32

func SequenceNumberFromUint32(v uint32) SequenceNumber { return SequenceNumber(v & 0x00FFFFFF) }
func (s SequenceNumber) Uint32() uint32                { return uint32(s) }
func (s SequenceNumber) String() string                { return fmt.Sprintf("Seq(%d)", uint32(s)) }

// Teid is a 32-bit GTP-U Tunnel Endpoint Identifier.
type Teid uint32

func TeidFromUint32(v uint32) Teid { return Teid(v) }
func (t Teid) Uint32() uint32      { return uint32(t) }
func (t Teid) String() string      { return fmt.Sprintf("TEID(0x%08x)", uint32(t)) }

// PdrId identifies a Packet Detection Rule.
type PdrId uint16

func PdrIdFromUint16(v uint16) PdrId { return PdrId(v) }
func (i PdrId) Uint16() uint16       { return uint16(i) }
func (i PdrId) String() string       { return fmt.Sprintf("PDR#%d", uint16(i)) }

// FarId identifies a Forwarding Action Rule.
type FarId uint32

func FarIdFromUint32(v uint32) FarId { return FarId(v) }
func (i FarId) Uint32() uint32       { return uint32(i) }
func (i FarId) String() string       { return fmt.Sprintf("FAR#%d", uint32(i)) }

// QerId identifies a QoS Enforcement Rule.
type QerId uint32

func QerIdFromUint32(v uint32) QerId { return QerId(v) }
func (i QerId) Uint32() uint32       { return uint32(i) }
func (i QerId) String() string       { return fmt.Sprintf("QER#%d", uint32(i)) }

// UrrId identifies a Usage Reporting Rule.
type UrrId uint32

func UrrIdFromUint32(v uint32) UrrId { return UrrId(v) }
func (i UrrId) Uint32() uint32       { return uint32(i) }
func (i UrrId) String() string       { return fmt.Sprintf("URR#%d", uint32(i)) }

// BarId identifies a Buffering Action Rule.
type BarId uint8

func BarIdFromUint8(v uint8) BarId { return BarId(v) }
func (i BarId) Uint8() uint8       { return uint8(i) }
func (i BarId) String() string     { return fmt.Sprintf("BAR#%d", uint8(i)) }

// EncodeIPv4 returns the 4-byte big-endian encoding of a v4 address. The
// caller must ensure ip is a valid IPv4 address (ip.To4() != nil).
func EncodeIPv4(ip net.IP) []byte {
	v4 := ip.To4()
	out := make([]byte, 4)
	copy(out, v4)
	return out
}

// DecodeIPv4 decodes a 4-byte big-endian IPv4 address.
func DecodeIPv4(b []byte) (net.IP, error) {
	if len(b) != 4 {
		return nil, fmt.Errorf("ids: DecodeIPv4: need 4 bytes, got %d", len(b))
	}
	out := make(net.IP, 4)
	copy(out, b)
	return out, nil
}

// EncodeIPv6 returns the 16-byte encoding of a v6 address.
func EncodeIPv6(ip net.IP) []byte {
	v6 := ip.To16()
	out := make([]byte, 16)
	copy(out, v6)
	return out
}

// DecodeIPv6 decodes a 16-byte IPv6 address.
func DecodeIPv6(b []byte) (net.IP, error) {
	if len(b) != 16 {
		return nil, fmt.Errorf("ids: DecodeIPv6: need 16 bytes, got %d", len(b))
	}
	out := make(net.IP, 16)
	copy(out, b)
	return out, nil
}
