package ie

import (
	"testing"
)

func TestNetworkInstanceRoundTrip(t *testing.T) {
	n := NetworkInstanceValue("internet.apn")
	gie, err := n.Encode()
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
	got, err := DecodeNetworkInstance(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Fatalf("got %q, want %q", got, n)
	}
}

func TestNetworkInstanceZeroLengthRoundTrip(t *testing.T) {
	n := NetworkInstanceValue("")
	gie, err := n.Encode()
	if err != nil {
		t.Fatal(err)
	}
	enc, err := gie.Encode()
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeIe(enc)
	if err != nil {
		t.Fatalf("zero-length Network Instance should decode cleanly: %v", err)
	}
	got, err := DecodeNetworkInstance(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got != "" {
		t.Fatalf("got %q, want empty", got)
	}
}

func TestAPNDNNRoundTrip(t *testing.T) {
	a := APNDNNValue("ims.mnc001.mcc001.gprs")
	gie, err := a.Encode()
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
	got, err := DecodeAPNDNN(dec)
	if err != nil {
		t.Fatal(err)
	}
	if got != a {
		t.Fatalf("got %q, want %q", got, a)
	}
}

func TestForwardingPolicyRoundTrip(t *testing.T) {
	f := ForwardingPolicyValue([]byte{0x01, 0x02, 0x03})
	enc, err := f.Encode().Encode()
	if err != nil {
		t.Fatal(err)
	}
	dec, _, err := DecodeIe(enc)
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeForwardingPolicy(dec)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 1 || got[1] != 2 || got[2] != 3 {
		t.Fatalf("got %v", got)
	}
}

func TestDecodeLabels_TruncatedLabel(t *testing.T) {
	// length byte claims 10 bytes follow but only 2 are present.
	_, err := decodeLabels("test", []byte{10, 'a', 'b'})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestEncodeLabels_EmptyString(t *testing.T) {
	out, err := encodeLabels("")
	if err != nil {
		t.Fatal(err)
	}
	if out != nil {
		t.Fatalf("got %v, want nil", out)
	}
}
