package message

import (
	"testing"

	"github.com/pfcpcodec/pfcpcodec/ie"
	"github.com/pfcpcodec/pfcpcodec/wire"
)

func TestPFDManagementRoundTrip(t *testing.T) {
	appID, err := ie.APNDNNValue("app-1").Encode()
	if err != nil {
		t.Fatal(err)
	}
	req := &PFDManagementRequest{
		base: base{header: wire.Header{Version: wire.SupportedVersion, Sequence: 1}, ies: []*ie.Ie{appID}},
	}
	enc, err := req.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := parsed.(*PFDManagementRequest)
	if !ok {
		t.Fatalf("got %T", parsed)
	}
	if len(got.AllIEs()) != 1 || got.AllIEs()[0].Type != ie.APNDNN {
		t.Fatalf("passthrough IEs = %+v", got.AllIEs())
	}

	resp := NewPFDManagementResponse(1, ie.CauseValueRequestAccepted)
	enc2, err := resp.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	parsed2, err := Parse(enc2)
	if err != nil {
		t.Fatal(err)
	}
	if parsed2.(*PFDManagementResponse).Cause != ie.CauseValueRequestAccepted {
		t.Fatalf("got %+v", parsed2)
	}
}
