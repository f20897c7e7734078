package message

import (
	"net"
	"testing"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

func TestSessionSetDeletionRoundTrip(t *testing.T) {
	req := &SessionSetDeletionRequest{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}},
		NodeID: ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 5)},
	}
	enc, err := req.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.(*SessionSetDeletionRequest).NodeID.IPv4.Equal(net.IPv4(192, 0, 2, 5)) {
		t.Fatalf("got %+v", parsed)
	}

	resp := &SessionSetDeletionResponse{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}},
		NodeID: ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 6)},
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
	if parsed2.(*SessionSetDeletionResponse).Cause != ie.CauseValueRequestAccepted {
		t.Fatalf("got %+v", parsed2)
	}
}

func TestSessionSetModificationRoundTrip(t *testing.T) {
	oci := ie.OverloadControlInformationValue{SequenceNumber: 1, Metric: 50, TimerSeconds: 30}
	req := &SessionSetModificationRequest{
		base:                       base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 4}},
		NodeID:                     ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 7)},
		OverloadControlInformation: &oci,
	}
	enc, err := req.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := parsed.(*SessionSetModificationRequest)
	if !ok {
		t.Fatalf("got %T", parsed)
	}
	if got.OverloadControlInformation == nil || got.OverloadControlInformation.Metric != 50 {
		t.Fatalf("got %+v", got.OverloadControlInformation)
	}

	resp := &SessionSetModificationResponse{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 4}},
		NodeID: ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 8)},
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
	if parsed2.(*SessionSetModificationResponse).Cause != ie.CauseValueRequestAccepted {
		t.Fatalf("got %+v", parsed2)
	}
}
