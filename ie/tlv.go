package ie

import (
	"fmt"

	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

// envelopeMinLen is the non-vendor TLV header size: 2-byte type + 2-byte
// length.
const envelopeMinLen = 4

// enterpriseHeaderLen is the additional bytes a vendor-specific TLV's
// header carries beyond envelopeMinLen: the 32-bit enterprise ID.
const enterpriseHeaderLen = 4

// Ie is the generic, untyped form every IE round-trips through. Typed
// codecs (FTEID, Cause, CreatePDR, ...) convert to/from this form; it is
// also the shape Compare and the message dispatcher walk when they don't
// care about a specific IE's internal layout.
type Ie struct {
	Type         Type
	EnterpriseID *uint32 // non-nil for a decoded vendor-specific IE; DecodeIe clears the vendor bit in Type
	Payload      []byte  // raw value bytes; for Grouped kinds this is the full child region
	Children     []*Ie   // populated iff the registry classifies Type as KindGrouped
}

// ParseTLV reads one TLV envelope from the front of buf, returning the
// type, optional enterprise ID, the value slice (zero-copy into buf), and
// the number of bytes consumed.
func ParseTLV(buf []byte) (t Type, enterpriseID *uint32, value []byte, consumed int, err error) {
	if len(buf) < envelopeMinLen {
		return 0, nil, nil, 0, &pfcperr.InvalidLength{Context: "tlv header", Expected: fmt.Sprintf(">=%d", envelopeMinLen), Actual: len(buf)}
	}
	rawType, _ := wire.ReadU16(buf[0:2])
	t = Type(rawType)
	length, _ := wire.ReadU16(buf[2:4])

	off := envelopeMinLen
	if t.IsVendorSpecific() {
		if len(buf) < off+enterpriseHeaderLen {
			return 0, nil, nil, 0, &pfcperr.InvalidLength{Context: fmt.Sprintf("tlv %s: enterprise id", t), Expected: fmt.Sprintf(">=%d", off+enterpriseHeaderLen), Actual: len(buf)}
		}
		eid, _ := wire.ReadU32(buf[off:])
		enterpriseID = &eid
		off += enterpriseHeaderLen
	}

	need := off + int(length)
	if len(buf) < need {
		return 0, nil, nil, 0, &pfcperr.InvalidLength{Context: fmt.Sprintf("tlv %s: value", t), Expected: fmt.Sprintf(">=%d", need), Actual: len(buf)}
	}
	value = buf[off:need]
	consumed = need
	return t, enterpriseID, value, consumed, nil
}

// EncodeTLV prepends the envelope header to value and returns the full TLV.
// The vendor form (with a trailing enterprise ID right after the 4-byte
// header) is chosen iff enterpriseID is non-nil or t's top bit is set.
func EncodeTLV(t Type, value []byte, enterpriseID *uint32) ([]byte, error) {
	if len(value) > 0xFFFF {
		return nil, &pfcperr.EncodingError{Reason: fmt.Sprintf("%s: value exceeds u16 length (%d bytes)", t, len(value))}
	}
	vendor := enterpriseID != nil || t.IsVendorSpecific()
	if vendor {
		t |= vendorBit
	}

	capHint := envelopeMinLen + len(value)
	if vendor {
		capHint += enterpriseHeaderLen
	}
	out := wire.NewBuffer(capHint)
	out = wire.WriteU16(out, uint16(t))
	out = wire.WriteU16(out, uint16(len(value)))
	if vendor {
		var eid uint32
		if enterpriseID != nil {
			eid = *enterpriseID
		}
		out = wire.WriteU32(out, eid)
	}
	out = append(out, value...)
	return out, nil
}

// DecodeIe parses one TLV into its generic form, recursing into children
// when the registry classifies the type as KindGrouped. It enforces the
// zero-length allowlist (security-critical) and the
// exact-consumption rule for grouped children.
func DecodeIe(buf []byte) (*Ie, int, error) {
	t, eid, value, consumed, err := ParseTLV(buf)
	if err != nil {
		return nil, 0, err
	}

	baseType := t &^ vendorBit
	if len(value) == 0 && !ZeroLengthAllowed[baseType] {
		return nil, 0, &pfcperr.ZeroLengthNotAllowed{IEType: baseType.String()}
	}

	gie := &Ie{Type: baseType, EnterpriseID: eid, Payload: value}

	if kind, ok := KindOf(baseType); ok && kind == KindGrouped && eid == nil {
		children, err := decodeChildren(value)
		if err != nil {
			return nil, 0, pfcperr.WithPath(baseType.String(), err)
		}
		gie.Children = children
	}

	return gie, consumed, nil
}

// decodeChildren parses value as a flat concatenation of child TLVs,
// requiring the children to exactly consume value with no residual bytes.
func decodeChildren(value []byte) ([]*Ie, error) {
	var children []*Ie
	off := 0
	for off < len(value) {
		child, n, err := DecodeIe(value[off:])
		if err != nil {
			return nil, err
		}
		children = append(children, child)
		off += n
	}
	if off != len(value) {
		return nil, &pfcperr.EncodingError{Reason: fmt.Sprintf("grouped IE: %d residual bytes after children", len(value)-off)}
	}
	return children, nil
}

// DecodeAll parses buf as a flat sequence of TLVs until exhausted — the
// shape of a message body or a manually-assembled grouped-IE value.
func DecodeAll(buf []byte) ([]*Ie, error) {
	return decodeChildren(buf)
}

// Encode serializes the generic Ie back to its TLV form. For grouped IEs
// with populated Children, the children are re-encoded and concatenated
// (ignoring any stale Payload); this is what makes marshal(parse(x)) == x
// even after a caller mutates Children.
func (g *Ie) Encode() ([]byte, error) {
	value := g.Payload
	if g.Children != nil {
		var err error
		value, err = EncodeChildren(g.Children)
		if err != nil {
			return nil, err
		}
	}
	return EncodeTLV(g.Type, value, g.EnterpriseID)
}

// EncodeChildren concatenates the TLV encoding of each child, preallocating
// the exact total length.
func EncodeChildren(children []*Ie) ([]byte, error) {
	total := 0
	encoded := make([][]byte, len(children))
	for i, c := range children {
		b, err := c.Encode()
		if err != nil {
			return nil, err
		}
		encoded[i] = b
		total += len(b)
	}
	out := wire.NewBuffer(total)
	for _, b := range encoded {
		out = append(out, b...)
	}
	return out, nil
}

// Find returns the first child of g with the given type, or nil.
func (g *Ie) Find(t Type) *Ie {
	for _, c := range g.Children {
		if c.Type == t {
			return c
		}
	}
	return nil
}

// FindAll returns every child of g with the given type, in order.
func (g *Ie) FindAll(t Type) []*Ie {
	var out []*Ie
	for _, c := range g.Children {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// ParseIe is the ergonomic typed-access entry point:
// given a generic IE and a decode function for the desired type, produce
// the strongly-typed value (or a parse error with IE-path context already
// attached by the decode function).
func ParseIe[T any](gie *Ie, decode func(*Ie) (T, error)) (T, error) {
	return decode(gie)
}
