package wire

import "testing"

func TestReadWriteRoundTrip(t *testing.T) {
	t.Run("u8", func(t *testing.T) {
		b := WriteU8(nil, 0xAB)
		v, err := ReadU8(b)
		if err != nil || v != 0xAB {
			t.Fatalf("got %x, %v", v, err)
		}
	})
	t.Run("u16", func(t *testing.T) {
		b := WriteU16(nil, 0x1234)
		v, err := ReadU16(b)
		if err != nil || v != 0x1234 {
			t.Fatalf("got %x, %v", v, err)
		}
	})
	t.Run("u24", func(t *testing.T) {
		b := WriteU24(nil, 0x00ABCDEF)
		v, err := ReadU24(b)
		if err != nil || v != 0x00ABCDEF {
			t.Fatalf("got %x, %v", v, err)
		}
	})
	t.Run("u32", func(t *testing.T) {
		b := WriteU32(nil, 0xDEADBEEF)
		v, err := ReadU32(b)
		if err != nil || v != 0xDEADBEEF {
			t.Fatalf("got %x, %v", v, err)
		}
	})
	t.Run("u64", func(t *testing.T) {
		b := WriteU64(nil, 0x0102030405060708)
		v, err := ReadU64(b)
		if err != nil || v != 0x0102030405060708 {
			t.Fatalf("got %x, %v", v, err)
		}
	})
}

func TestReadShortBuffer(t *testing.T) {
	cases := []struct {
		name string
		fn   func([]byte) error
	}{
		{"u8", func(b []byte) error { _, err := ReadU8(b); return err }},
		{"u16", func(b []byte) error { _, err := ReadU16(b); return err }},
		{"u24", func(b []byte) error { _, err := ReadU24(b); return err }},
		{"u32", func(b []byte) error { _, err := ReadU32(b); return err }},
		{"u64", func(b []byte) error { _, err := ReadU64(b); return err }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.fn(nil); err == nil {
				t.Fatal("expected error on empty buffer")
			}
		})
	}
}

func TestU24TruncatesHighByte(t *testing.T) {
	b := WriteU24(nil, 0xFFABCDEF)
	v, err := ReadU24(b)
	if err != nil {
		t.Fatal(err)
	}
	if v != 0x00ABCDEF {
		t.Fatalf("got %#x, want %#x", v, 0x00ABCDEF)
	}
}
