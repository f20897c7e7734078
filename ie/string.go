package ie

import (
	"strings"

	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

// Variable-length string IEs:
// Network Instance and APN/DNN both use RFC 1035 DNS-label encoding (a
// length-prefixed byte per label, no trailing root label), and both sit on
// the zero-length allowlist alongside Forwarding Policy (security-critical
// — see ZeroLengthAllowed in registry.go).

// encodeLabels renders dot-separated labels in RFC 1035 form: each label is
// preceded by its own length byte, with no terminating zero-length label
// (PFCP IEs are length-delimited by the TLV envelope, not by a root label).
func encodeLabels(name string) ([]byte, error) {
	if name == "" {
		return nil, nil
	}
	labels := strings.Split(name, ".")
	var out []byte
	for _, l := range labels {
		if len(l) > 0xFF {
			return nil, &pfcperr.EncodingError{Reason: "label exceeds 255 bytes: " + l}
		}
		out = append(out, byte(len(l)))
		out = append(out, l...)
	}
	return out, nil
}

// decodeLabels is the inverse of encodeLabels: it walks the length-prefixed
// label sequence until the value is exhausted, rejoining with dots.
func decodeLabels(kind string, value []byte) (string, error) {
	if len(value) == 0 {
		return "", nil
	}
	var labels []string
	off := 0
	for off < len(value) {
		n := int(value[off])
		off++
		if off+n > len(value) {
			return "", &pfcperr.InvalidLength{Context: kind + ": label", Expected: "label within value bounds", Actual: len(value)}
		}
		labels = append(labels, string(value[off:off+n]))
		off += n
	}
	return strings.Join(labels, "."), nil
}

// NetworkInstance names a local routing/forwarding context (e.g. an APN's
// data-plane VRF). Zero-length is explicitly allowed.
type NetworkInstanceValue string

func DecodeNetworkInstance(gie *Ie) (NetworkInstanceValue, error) {
	s, err := decodeLabels("Network Instance", gie.Payload)
	return NetworkInstanceValue(s), err
}

func (n NetworkInstanceValue) Encode() (*Ie, error) {
	v, err := encodeLabels(string(n))
	if err != nil {
		return nil, err
	}
	return &Ie{Type: NetworkInstance, Payload: v}, nil
}

// APNDNNValue is the Access Point Name / Data Network Name. Zero-length is
// explicitly allowed.
type APNDNNValue string

func DecodeAPNDNN(gie *Ie) (APNDNNValue, error) {
	s, err := decodeLabels("APN/DNN", gie.Payload)
	return APNDNNValue(s), err
}

func (a APNDNNValue) Encode() (*Ie, error) {
	v, err := encodeLabels(string(a))
	if err != nil {
		return nil, err
	}
	return &Ie{Type: APNDNN, Payload: v}, nil
}

// ForwardingPolicyValue is an opaque identifier the SMF passes through to
// local UPF forwarding policy configuration — free-form bytes, not RFC 1035
// labels. Zero-length is explicitly allowed.
type ForwardingPolicyValue []byte

func DecodeForwardingPolicy(gie *Ie) (ForwardingPolicyValue, error) {
	out := make([]byte, len(gie.Payload))
	copy(out, gie.Payload)
	return ForwardingPolicyValue(out), nil
}

func (f ForwardingPolicyValue) Encode() *Ie {
	return &Ie{Type: ForwardingPolicy, Payload: []byte(f)}
}
