package ie

import (
	"testing"

	"github.com/pfcpcodec/pfcpcodec/ids"
	"github.com/pfcpcodec/pfcpcodec/pfcperr"
)

func buildSampleCreatePDR(t *testing.T) CreatePDRValue {
	t.Helper()
	fteid, err := NewFTEIDBuilder().
		WithTeid(ids.TeidFromUint32(0x100)).
		WithIPv4([4]byte{10, 1, 1, 1}).
		Build()
	if err != nil {
		t.Fatalf("FTEID Build: %v", err)
	}
	farID := uint32(7)
	return CreatePDRValue{
		PDRID:      1,
		Precedence: 100,
		PDI: PDIValue{
			SourceInterface: InterfaceAccess,
			FTEID:           &fteid,
			NetworkInstance: ptrNI("internet"),
		},
		FARID: &farID,
	}
}

func ptrNI(s string) *NetworkInstanceValue {
	v := NetworkInstanceValue(s)
	return &v
}

// TestCreatePDRNestedRoundTrip exercises the nested-grouped
// scenario: CreatePDR -> PDI -> F-TEID/Network Instance/Source Interface.
func TestCreatePDRNestedRoundTrip(t *testing.T) {
	c := buildSampleCreatePDR(t)
	gie, err := c.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	enc, err := gie.Encode()
	if err != nil {
		t.Fatalf("TLV Encode: %v", err)
	}

	dec, n, err := DecodeIe(enc)
	if err != nil {
		t.Fatalf("DecodeIe: %v", err)
	}
	if n != len(enc) {
		t.Fatalf("consumed %d, want %d", n, len(enc))
	}

	got, err := DecodeCreatePDR(dec)
	if err != nil {
		t.Fatalf("DecodeCreatePDR: %v", err)
	}
	if got.PDRID != 1 || got.Precedence != 100 {
		t.Fatalf("got %+v", got)
	}
	if got.PDI.SourceInterface != InterfaceAccess {
		t.Fatalf("source interface = %v", got.PDI.SourceInterface)
	}
	if got.PDI.FTEID == nil || got.PDI.FTEID.Teid.Uint32() != 0x100 {
		t.Fatalf("fteid = %+v", got.PDI.FTEID)
	}
	if got.PDI.NetworkInstance == nil || *got.PDI.NetworkInstance != "internet" {
		t.Fatalf("network instance = %v", got.PDI.NetworkInstance)
	}
	if got.FARID == nil || *got.FARID != 7 {
		t.Fatalf("far id = %v", got.FARID)
	}
}

func TestDecodeCreatePDR_MissingMandatoryChildren(t *testing.T) {
	cases := []struct {
		name   string
		gie    *Ie
		inWant string
	}{
		{
			name: "missing PDR ID",
			gie: &Ie{Type: CreatePDR, Children: []*Ie{
				EncodePrecedence(1),
				{Type: PDI, Children: []*Ie{InterfaceAccess.EncodeSource()}},
			}},
			inWant: "PDR ID",
		},
		{
			name: "missing Precedence",
			gie: &Ie{Type: CreatePDR, Children: []*Ie{
				EncodePDRID(1),
				{Type: PDI, Children: []*Ie{InterfaceAccess.EncodeSource()}},
			}},
			inWant: "Precedence",
		},
		{
			name: "missing PDI",
			gie: &Ie{Type: CreatePDR, Children: []*Ie{
				EncodePDRID(1),
				EncodePrecedence(1),
			}},
			inWant: "PDI",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeCreatePDR(c.gie)
			if err == nil {
				t.Fatal("expected MissingMandatoryIe")
			}
			mm, ok := err.(*pfcperr.MissingMandatoryIe)
			if !ok {
				t.Fatalf("got %T, want *pfcperr.MissingMandatoryIe", err)
			}
			if mm.IEType != c.inWant {
				t.Errorf("IEType = %q, want %q", mm.IEType, c.inWant)
			}
			if mm.ToCauseCode() != pfcperr.CauseMandatoryIEMissing {
				t.Errorf("cause = %v", mm.ToCauseCode())
			}
		})
	}
}

func TestDecodePDI_MissingSourceInterface(t *testing.T) {
	_, err := DecodePDI(&Ie{Type: PDI, Children: nil})
	if err == nil {
		t.Fatal("expected MissingMandatoryIe for Source Interface")
	}
	if _, ok := err.(*pfcperr.MissingMandatoryIe); !ok {
		t.Fatalf("got %T", err)
	}
}

func TestRemovePDRRoundTrip(t *testing.T) {
	r := RemovePDRValue{PDRID: 3}
	gie := r.Encode()
	enc, err := gie.Encode()
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeIe(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeRemovePDR(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got.PDRID != 3 {
		t.Fatalf("got %+v", got)
	}
}

func TestRemovePDR_MissingPDRID(t *testing.T) {
	_, err := DecodeRemovePDR(&Ie{Type: RemovePDR})
	if _, ok := err.(*pfcperr.MissingMandatoryIe); !ok {
		t.Fatalf("got %T, want *pfcperr.MissingMandatoryIe", err)
	}
}

func TestUpdatePDR_OptionalFieldsOmitted(t *testing.T) {
	u := UpdatePDRValue{PDRID: 9}
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
	got, err := DecodeUpdatePDR(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got.PDRID != 9 || got.Precedence != nil || got.PDI != nil || got.FARID != nil {
		t.Fatalf("got %+v", got)
	}
}
