package fixtures

import "testing"

func TestLoad(t *testing.T) {
	m, err := Load("testdata/vectors.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Vectors) == 0 {
		t.Fatal("expected at least one vector")
	}

	v, ok := m.ByName("heartbeat_request_basic")
	if !ok {
		t.Fatal("expected heartbeat_request_basic vector")
	}
	if v.Classification != RoundTrip {
		t.Errorf("classification = %q, want %q", v.Classification, RoundTrip)
	}

	b, err := v.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}
	want := []byte{0x20, 0x01, 0x00, 0x0c, 0x00, 0x00, 0x01, 0x00, 0x00, 0x60, 0x00, 0x04, 0xe7, 0x8f, 0xb6, 0x80}
	if len(b) != len(want) {
		t.Fatalf("len = %d, want %d", len(b), len(want))
	}
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("byte %d = 0x%02x, want 0x%02x", i, b[i], want[i])
		}
	}
}

func TestByClassification(t *testing.T) {
	m, err := Load("testdata/vectors.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	neg := m.ByClassification(Negative)
	if len(neg) == 0 {
		t.Fatal("expected at least one negative vector")
	}
	for _, v := range neg {
		if v.ExpectedErrText == "" {
			t.Errorf("negative vector %q should carry an expected_error substring", v.Name)
		}
	}
}

func TestByName_Missing(t *testing.T) {
	m, err := Load("testdata/vectors.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := m.ByName("does-not-exist"); ok {
		t.Error("expected ok=false for missing vector name")
	}
}

func TestBytes_InvalidHex(t *testing.T) {
	v := Vector{Name: "bad", Hex: "zz"}
	if _, err := v.Bytes(); err == nil {
		t.Error("expected error for invalid hex")
	}
}
