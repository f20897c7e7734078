package ie

import (
	"testing"

	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

func TestCauseRoundTrip(t *testing.T) {
	gie := CauseValueRequestAccepted.Encode()
	v, err := DecodeCause(gie)
	if err != nil {
		t.Fatalf("DecodeCause: %v", err)
	}
	if v != CauseValueRequestAccepted {
		t.Fatalf("got %v, want %v", v, CauseValueRequestAccepted)
	}
}

func TestSourceInterfaceMasksHighNibble(t *testing.T) {
	gie := &Ie{Type: SourceInterface, Payload: []byte{0xF0 | uint8(InterfaceCore)}}
	v, err := DecodeSourceInterface(gie)
	if err != nil {
		t.Fatalf("DecodeSourceInterface: %v", err)
	}
	if v != InterfaceCore {
		t.Fatalf("got %v, want %v", v, InterfaceCore)
	}
}

func TestRecoveryTimeStampRoundTrip(t *testing.T) {
	const ntp uint32 = 3884955264 // 0xE78FB680, the value in the heartbeat fixture vectors
	gie := EncodeRecoveryTimeStamp(ntp)
	v, err := DecodeRecoveryTimeStamp(gie)
	if err != nil {
		t.Fatalf("DecodeRecoveryTimeStamp: %v", err)
	}
	if v != ntp {
		t.Fatalf("got %d, want %d", v, ntp)
	}
	enc, err := gie.Encode()
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0x60, 0x00, 0x04, 0xe7, 0x8f, 0xb6, 0x80}
	if len(enc) != len(want) {
		t.Fatalf("got % x, want % x", enc, want)
	}
	for i := range want {
		if enc[i] != want[i] {
			t.Fatalf("got % x, want % x", enc, want)
		}
	}
}

func TestScalarDecode_TooShort(t *testing.T) {
	gie := &Ie{Type: PDRID, Payload: []byte{0x01}}
	_, err := DecodePDRID(gie)
	if _, ok := err.(*pfcperr.InvalidLength); !ok {
		t.Fatalf("got %T, want *pfcperr.InvalidLength", err)
	}
}

func TestPrecedenceRoundTrip(t *testing.T) {
	gie := &Ie{Type: Precedence, Payload: []byte{0x00, 0x00, 0x00, 0x2A}}
	v, err := DecodePrecedence(gie)
	if err != nil {
		t.Fatalf("DecodePrecedence: %v", err)
	}
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}
