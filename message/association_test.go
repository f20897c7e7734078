package message

import (
	"net"
	"testing"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

func TestAssociationSetupRoundTrip(t *testing.T) {
	req := &AssociationSetupRequest{
		base:              base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}},
		NodeID:            ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 1)},
		RecoveryTimeStamp: 100,
	}
	enc, err := req.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := parsed.(*AssociationSetupRequest)
	if !ok {
		t.Fatalf("got %T", parsed)
	}
	if got.RecoveryTimeStamp != 100 || got.NodeID.IPv4 == nil || !got.NodeID.IPv4.Equal(net.IPv4(192, 0, 2, 1)) {
		t.Fatalf("got %+v", got)
	}

	resp := &AssociationSetupResponse{
		base:              base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}},
		NodeID:            ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 2)},
		Cause:             ie.CauseValueRequestAccepted,
		RecoveryTimeStamp: 200,
	}
	enc2, err := resp.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed2, err := Parse(enc2)
	if err != nil {
		t.Fatal(err)
	}
	gotResp, ok := parsed2.(*AssociationSetupResponse)
	if !ok {
		t.Fatalf("got %T", parsed2)
	}
	if gotResp.Cause != ie.CauseValueRequestAccepted || gotResp.RecoveryTimeStamp != 200 {
		t.Fatalf("got %+v", gotResp)
	}
}

func TestAssociationUpdateRoundTrip(t *testing.T) {
	req := &AssociationUpdateRequest{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 2}},
		NodeID: ie.NodeIDValue{FQDN: "cp.example.com"},
	}
	enc, err := req.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.(*AssociationUpdateRequest).NodeID.FQDN != "cp.example.com" {
		t.Fatalf("got %+v", parsed)
	}

	resp := &AssociationUpdateResponse{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 2}},
		NodeID: ie.NodeIDValue{FQDN: "up.example.com"},
		Cause:  ie.CauseValueRequestAccepted,
	}
	enc2, err := resp.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed2, err := Parse(enc2)
	if err != nil {
		t.Fatal(err)
	}
	if parsed2.(*AssociationUpdateResponse).Cause != ie.CauseValueRequestAccepted {
		t.Fatalf("got %+v", parsed2)
	}
}

func TestAssociationReleaseRoundTrip(t *testing.T) {
	req := &AssociationReleaseRequest{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 3}},
		NodeID: ie.NodeIDValue{FQDN: "cp.example.com"},
	}
	enc, err := req.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	if parsed.(*AssociationReleaseRequest).NodeID.FQDN != "cp.example.com" {
		t.Fatalf("got %+v", parsed)
	}

	resp := &AssociationReleaseResponse{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 3}},
		NodeID: ie.NodeIDValue{FQDN: "up.example.com"},
		Cause:  ie.CauseValueRequestRejected,
	}
	enc2, err := resp.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed2, err := Parse(enc2)
	if err != nil {
		t.Fatal(err)
	}
	if parsed2.(*AssociationReleaseResponse).Cause != ie.CauseValueRequestRejected {
		t.Fatalf("got %+v", parsed2)
	}
}
