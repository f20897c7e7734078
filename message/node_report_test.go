package message

import (
	"net"
	"testing"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

func TestNodeReportRoundTrip(t *testing.T) {
	failure := ie.UserPlanePathFailureReportValue{RemoteGTPUPeer: ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 9)}}
	req := &NodeReportRequest{
		base:                       base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}},
		NodeID:                     ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 10)},
		NodeReportType:             0x01,
		UserPlanePathFailureReport: &failure,
	}
	enc, err := req.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := parsed.(*NodeReportRequest)
	if !ok {
		t.Fatalf("got %T", parsed)
	}
	if got.NodeReportType != 0x01 {
		t.Fatalf("node report type = %v", got.NodeReportType)
	}
	if got.UserPlanePathFailureReport == nil || !got.UserPlanePathFailureReport.RemoteGTPUPeer.IPv4.Equal(net.IPv4(192, 0, 2, 9)) {
		t.Fatalf("got %+v", got.UserPlanePathFailureReport)
	}

	resp := &NodeReportResponse{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}},
		NodeID: ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 11)},
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
	if parsed2.(*NodeReportResponse).Cause != ie.CauseValueRequestAccepted {
		t.Fatalf("got %+v", parsed2)
	}
}

func TestNodeReportRequest_MissingNodeReportType(t *testing.T) {
	req := &NodeReportRequest{
		base:   base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}},
		NodeID: ie.NodeIDValue{IPv4: net.IPv4(192, 0, 2, 10)},
	}
	node, err := req.NodeID.Encode()
	if err != nil {
		t.Fatal(err)
	}
	nb, err := node.Encode()
	if err != nil {
		t.Fatal(err)
	}
	buf, err := marshalWith(req.header, req.MsgType(), nb)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(buf)
	mm, ok := err.(*pfcperr.MissingMandatoryIe)
	if !ok {
		t.Fatalf("got %T, want *pfcperr.MissingMandatoryIe", err)
	}
	if mm.IEType != "Node Report Type" {
		t.Errorf("got %q", mm.IEType)
	}
}
