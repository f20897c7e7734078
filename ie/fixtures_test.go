package ie

import (
	"strings"
	"testing"

	"github.com/pfcpcodec/pfcpcodec/internal/fixtures"
)

// TestFixtureVectors_TLV drives the bare-TLV vectors from
// internal/fixtures/testdata/vectors.yaml through DecodeIe, covering the
// round-trip and negative cases without duplicating the byte literals here.
func TestFixtureVectors_TLV(t *testing.T) {
	manifest, err := fixtures.Load("../internal/fixtures/testdata/vectors.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	for _, v := range manifest.Vectors {
		if v.Kind != "tlv" {
			continue
		}
		v := v
		t.Run(v.Name, func(t *testing.T) {
			raw, err := v.Bytes()
			if err != nil {
				t.Fatalf("Bytes: %v", err)
			}

			gie, consumed, err := DecodeIe(raw)
			switch v.Classification {
			case fixtures.RoundTrip:
				if err != nil {
					t.Fatalf("DecodeIe: %v", err)
				}
				if consumed != len(raw) {
					t.Fatalf("consumed %d, want %d", consumed, len(raw))
				}
				enc, err := gie.Encode()
				if err != nil {
					t.Fatalf("Encode: %v", err)
				}
				if string(enc) != string(raw) {
					t.Fatalf("got % x, want % x", enc, raw)
				}
			case fixtures.Negative:
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if v.ExpectedErrText != "" && !strings.Contains(err.Error(), v.ExpectedErrText) {
					t.Fatalf("error %q does not contain %q", err.Error(), v.ExpectedErrText)
				}
			default:
				t.Fatalf("unhandled classification %q for vector %q", v.Classification, v.Name)
			}
		})
	}
}
