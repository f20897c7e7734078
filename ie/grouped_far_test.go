package ie

import (
	"testing"

	"github.com/pfcpcodec/pfcpcodec/ids"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

func TestCreateFARRoundTrip(t *testing.T) {
	teid := ids.TeidFromUint32(0x200)
	v4 := [4]byte{172, 16, 0, 1}
	ohc := NewGTPUOuterHeaderCreation(teid, &v4, nil)
	c := CreateFARValue{
		FARID:       5,
		ApplyAction: ApplyActionForward,
		ForwardingParameters: &ForwardingParametersValue{
			DestinationInterface: InterfaceCore,
			OuterHeaderCreation:   &ohc,
		},
	}
	gie, err := c.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	enc, err := gie.Encode()
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeIe(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeCreateFAR(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got.FARID != 5 || got.ApplyAction != ApplyActionForward {
		t.Fatalf("got %+v", got)
	}
	if got.ForwardingParameters == nil || got.ForwardingParameters.DestinationInterface != InterfaceCore {
		t.Fatalf("forwarding parameters = %+v", got.ForwardingParameters)
	}
	if got.ForwardingParameters.OuterHeaderCreation == nil || got.ForwardingParameters.OuterHeaderCreation.Teid == nil ||
		got.ForwardingParameters.OuterHeaderCreation.Teid.Uint32() != 0x200 {
		t.Fatalf("outer header creation = %+v", got.ForwardingParameters.OuterHeaderCreation)
	}
}

func TestDecodeCreateFAR_MissingApplyAction(t *testing.T) {
	gie := &Ie{Type: CreateFAR, Children: []*Ie{EncodeFARID(1)}}
	_, err := DecodeCreateFAR(gie)
	mm, ok := err.(*pfcperr.MissingMandatoryIe)
	if !ok {
		t.Fatalf("got %T, want *pfcperr.MissingMandatoryIe", err)
	}
	if mm.IEType != "Apply Action" {
		t.Errorf("got %q", mm.IEType)
	}
}

func TestDecodeForwardingParameters_MissingDestinationInterface(t *testing.T) {
	_, err := DecodeForwardingParameters(&Ie{Type: ForwardingParameters})
	if _, ok := err.(*pfcperr.MissingMandatoryIe); !ok {
		t.Fatalf("got %T", err)
	}
}

func TestUpdateFAR_OptionalFieldsOmitted(t *testing.T) {
	u := UpdateFARValue{FARID: 11}
	gie, err := u.Encode()
	if err != nil {
		t.Fatal(err)
	}
	enc, err := gie.Encode()
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeIe(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeUpdateFAR(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got.FARID != 11 || got.ApplyAction != nil || got.UpdateForwardingParameters != nil {
		t.Fatalf("got %+v", got)
	}
}

func TestRemoveFARRoundTrip(t *testing.T) {
	r := RemoveFARValue{FARID: 42}
	enc, err := r.Encode().Encode()
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeIe(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeRemoveFAR(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got.FARID != 42 {
		t.Fatalf("got %+v", got)
	}
}

func TestDuplicatingParametersRoundTrip(t *testing.T) {
	d := DuplicatingParametersValue{DestinationInterface: InterfaceSGiLANN6LAN}
	enc, err := d.Encode().Encode()
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeIe(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeDuplicatingParameters(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got.DestinationInterface != InterfaceSGiLANN6LAN {
		t.Fatalf("got %+v", got)
	}
}
