package wire

import (
	"bytes"
	"testing"

	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

func TestEncodeDecodeHeaderRoundTrip_NoSEID(t *testing.T) {
	h := Header{Version: SupportedVersion, MsgType: 1, Sequence: 1}
	body := []byte{0x00, 0x60, 0x00, 0x04, 0xe7, 0x8f, 0xb6, 0x80}

	enc, err := EncodeHeader(h, len(body))
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	want := []byte{0x20, 0x01, 0x00, 0x0c, 0x00, 0x00, 0x01, 0x00}
	if !bytes.Equal(enc, want) {
		t.Fatalf("got % x, want % x", enc, want)
	}

	full := append(append([]byte(nil), enc...), body...)
	dec, rest, err := DecodeHeader(full)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if dec.Version != h.Version || dec.MsgType != h.MsgType || dec.Sequence != h.Sequence || dec.S {
		t.Fatalf("decoded header mismatch: %+v", dec)
	}
	if !bytes.Equal(rest, body) {
		t.Fatalf("rest = % x, want % x", rest, body)
	}
}

func TestEncodeDecodeHeaderRoundTrip_WithSEID(t *testing.T) {
	h := Header{Version: SupportedVersion, S: true, MsgType: 50, Seid: 0x1122334455667788, Sequence: 9}
	body := []byte{0xAA, 0xBB}

	enc, err := EncodeHeader(h, len(body))
	if err != nil {
		t.Fatalf("EncodeHeader: %v", err)
	}
	if len(enc) != seidHeaderLen {
		t.Fatalf("len(enc) = %d, want %d", len(enc), seidHeaderLen)
	}

	full := append(append([]byte(nil), enc...), body...)
	dec, rest, err := DecodeHeader(full)
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	if !dec.S || dec.Seid != h.Seid || dec.Sequence != h.Sequence {
		t.Fatalf("decoded header mismatch: %+v", dec)
	}
	if !bytes.Equal(rest, body) {
		t.Fatalf("rest = % x, want % x", rest, body)
	}
}

func TestDecodeHeader_UnsupportedVersion(t *testing.T) {
	// version=2, S=0, MP=0: b0 = 0x40
	buf := []byte{0x40, 0x01, 0x00, 0x04, 0x00, 0x00, 0x01, 0x00}
	_, _, err := DecodeHeader(buf)
	if err == nil {
		t.Fatal("expected error")
	}
	mpe, ok := err.(*pfcperr.MessageParseError)
	if !ok {
		t.Fatalf("got %T, want *pfcperr.MessageParseError", err)
	}
	if !mpe.Recoverable() {
		t.Error("unsupported version should be recoverable")
	}
	if mpe.ToCauseCode() != pfcperr.CauseVersionNotSupported {
		t.Errorf("cause = %v, want %v", mpe.ToCauseCode(), pfcperr.CauseVersionNotSupported)
	}
}

func TestDecodeHeader_TooShort(t *testing.T) {
	_, _, err := DecodeHeader([]byte{0x20, 0x01, 0x00})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*pfcperr.InvalidLength); !ok {
		t.Fatalf("got %T, want *pfcperr.InvalidLength", err)
	}
}

func TestDecodeHeader_DeclaredLengthExceedsBuffer(t *testing.T) {
	// length field claims 100 bytes follow, but buffer only has the header.
	buf := []byte{0x20, 0x01, 0x00, 0x64, 0x00, 0x00, 0x01, 0x00}
	_, _, err := DecodeHeader(buf)
	if err == nil {
		t.Fatal("expected error")
	}
	if _, ok := err.(*pfcperr.InvalidLength); !ok {
		t.Fatalf("got %T, want *pfcperr.InvalidLength", err)
	}
}

func TestEncodeHeader_BodyTooLarge(t *testing.T) {
	h := Header{Version: SupportedVersion, MsgType: 1}
	_, err := EncodeHeader(h, 0xFFFF)
	if err == nil {
		t.Fatal("expected error for body length overflowing u16 length field")
	}
}

func TestMPFlagPriorityNibble(t *testing.T) {
	h := Header{Version: SupportedVersion, MP: true, MsgType: 1, Priority: 0x0F, Sequence: 1}
	enc, err := EncodeHeader(h, 0)
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeHeader(enc)
	if err != nil {
		t.Fatal(err)
	}
	if !dec.MP || dec.Priority != 0x0F {
		t.Fatalf("decoded = %+v", dec)
	}
}
