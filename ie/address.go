package ie

import (
	"net"

	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

// Address IEs: a leading type-discriminator octet
// selects whether the value is an IPv4 address, an IPv6 address, or an FQDN
// encoded as RFC 1035 labels. Node ID is the reference example.

const (
	nodeIDTypeIPv4 = 0
	nodeIDTypeIPv6 = 1
	nodeIDTypeFQDN = 2
)

// NodeIDValue identifies a CP or UP function by address or fully-qualified
// domain name. Exactly one of IPv4, IPv6, or FQDN is populated. Named
// distinctly from the NodeID Type constant so the IE type code and its
// decoded value don't collide in this package.
type NodeIDValue struct {
	IPv4 net.IP
	IPv6 net.IP
	FQDN string
}

func DecodeNodeID(gie *Ie) (NodeIDValue, error) {
	p := gie.Payload
	if len(p) < 1 {
		return NodeIDValue{}, pfcperr.WithPath("Node ID", &pfcperr.InvalidLength{Context: "Node ID", Expected: ">=1", Actual: 0})
	}
	discriminator := p[0] & 0x0F
	rest := p[1:]
	switch discriminator {
	case nodeIDTypeIPv4:
		if len(rest) != 4 {
			return NodeIDValue{}, pfcperr.WithPath("Node ID", &pfcperr.InvalidLength{Context: "Node ID: ipv4", Expected: "4", Actual: len(rest)})
		}
		return NodeIDValue{IPv4: net.IP(append([]byte(nil), rest...))}, nil
	case nodeIDTypeIPv6:
		if len(rest) != 16 {
			return NodeIDValue{}, pfcperr.WithPath("Node ID", &pfcperr.InvalidLength{Context: "Node ID: ipv6", Expected: "16", Actual: len(rest)})
		}
		return NodeIDValue{IPv6: net.IP(append([]byte(nil), rest...))}, nil
	case nodeIDTypeFQDN:
		name, err := decodeLabels("Node ID: fqdn", rest)
		if err != nil {
			return NodeIDValue{}, err
		}
		return NodeIDValue{FQDN: name}, nil
	default:
		return NodeIDValue{}, &pfcperr.InvalidValue{IEType: "Node ID", Field: "type", Value: string(rune(discriminator))}
	}
}

func (n NodeIDValue) Encode() (*Ie, error) {
	switch {
	case n.IPv4 != nil:
		v4 := n.IPv4.To4()
		if v4 == nil {
			return nil, &pfcperr.EncodingError{Reason: "Node ID: IPv4 field holds a non-v4 address"}
		}
		out := append([]byte{nodeIDTypeIPv4}, v4...)
		return &Ie{Type: NodeID, Payload: out}, nil
	case n.IPv6 != nil:
		v6 := n.IPv6.To16()
		if v6 == nil {
			return nil, &pfcperr.EncodingError{Reason: "Node ID: IPv6 field holds an invalid address"}
		}
		out := append([]byte{nodeIDTypeIPv6}, v6...)
		return &Ie{Type: NodeID, Payload: out}, nil
	case n.FQDN != "":
		labels, err := encodeLabels(n.FQDN)
		if err != nil {
			return nil, err
		}
		out := append([]byte{nodeIDTypeFQDN}, labels...)
		return &Ie{Type: NodeID, Payload: out}, nil
	default:
		return nil, &pfcperr.ValidationError{Reason: "Node ID: exactly one of IPv4, IPv6, or FQDN is required"}
	}
}
