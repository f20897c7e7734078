package message

import (
	"testing"

	"github.com/pfcpcodec/pfcpcodec/wire"
)

func TestVersionNotSupportedResponseRoundTrip(t *testing.T) {
	resp := NewVersionNotSupportedResponse(17)
	enc, err := resp.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if len(enc) != minHeaderLenForTest {
		t.Fatalf("encoded length = %d, want %d (header-only message)", len(enc), minHeaderLenForTest)
	}
	parsed, err := Parse(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := parsed.(*VersionNotSupportedResponse)
	if !ok {
		t.Fatalf("got %T", parsed)
	}
	if got.Sequence().Uint32() != 17 {
		t.Fatalf("sequence = %v", got.Sequence())
	}
}

// minHeaderLenForTest mirrors wire's unexported minHeaderLen: version-not-
// supported responses carry no SEID and no body.
const minHeaderLenForTest = 8

func TestParse_VersionNotSupported_TriggersSynthesizedResponse(t *testing.T) {
	h := wire.Header{Version: 7, MsgType: 99}
	buf, err := wire.EncodeHeader(h, 0)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Parse(buf)
	if err == nil {
		t.Fatal("expected a version parse error")
	}
	resp := NewVersionNotSupportedResponse(0)
	if _, merr := resp.Marshal(); merr != nil {
		t.Fatalf("synthesized response should always marshal cleanly: %v", merr)
	}
}
