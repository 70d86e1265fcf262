package tlv

import (
	"bytes"
	"net/netip"
	"strings"
	"testing"
)

func TestVariant_Sizes(t *testing.T) {
	testCases := []struct {
		name      string
		variant   Variant
		raw       []byte
		wantTotal int
		wantData  int
	}{
		{
			name:      "standard counts value only",
			variant:   Standard{},
			raw:       []byte{0x01, 0x04, 0xAA, 0xBB, 0xCC, 0xDD},
			wantTotal: 6,
			wantData:  4,
		},
		{
			name:      "standard zero-length value",
			variant:   Standard{},
			raw:       []byte{0x01, 0x00},
			wantTotal: 2,
			wantData:  0,
		},
		{
			name:      "standard truncated header",
			variant:   Standard{},
			raw:       []byte{0x01},
			wantTotal: 0,
			wantData:  0,
		},
		{
			name:      "inclusive counts whole record",
			variant:   Inclusive{},
			raw:       []byte{0x01, 0x06, 0xAA, 0xBB, 0xCC, 0xDD},
			wantTotal: 6,
			wantData:  4,
		},
		{
			name:      "inclusive clamps corrupt length below header size",
			variant:   Inclusive{},
			raw:       []byte{0x01, 0x00, 0xAA},
			wantTotal: 2,
			wantData:  0,
		},
		{
			name:      "padded rounds total up to alignment",
			variant:   Padded{Align: 4},
			raw:       []byte{0x01, 0x01, 0xFF},
			wantTotal: 4,
			wantData:  1,
		},
		{
			name:      "padded leaves aligned total alone",
			variant:   Padded{Align: 4},
			raw:       []byte{0x01, 0x02, 0xFF, 0xFF},
			wantTotal: 4,
			wantData:  2,
		},
		{
			name:      "padded align one is standard",
			variant:   Padded{Align: 1},
			raw:       []byte{0x01, 0x03, 0xFF, 0xFF, 0xFF},
			wantTotal: 5,
			wantData:  3,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.variant.TotalSize(tc.raw); got != tc.wantTotal {
				t.Errorf("TotalSize mismatch: got %d, want %d", got, tc.wantTotal)
			}
			if got := tc.variant.DataSize(tc.raw); got != tc.wantData {
				t.Errorf("DataSize mismatch: got %d, want %d", got, tc.wantData)
			}
		})
	}
}

func TestRecord_NullSentinel(t *testing.T) {
	var rec Record[Standard]

	if !rec.IsNull() {
		t.Fatal("zero-value record should be null")
	}
	if rec.TotalSize() != 0 || rec.DataSize() != 0 {
		t.Error("null record sizes should be zero")
	}

	if got := View[Standard](nil, Standard{}); !got.IsNull() {
		t.Error("View over empty bytes should be null")
	}
}

func TestRecord_NullAccessPanics(t *testing.T) {
	var rec Record[Standard]

	accessors := map[string]func(){
		"Type":           func() { rec.Type() },
		"Value":          func() { rec.Value() },
		"Bytes":          func() { rec.Bytes() },
		"DeclaredLength": func() { rec.DeclaredLength() },
	}

	for name, access := range accessors {
		t.Run(name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("%s on null record should panic", name)
				}
				msg, ok := r.(string)
				if !ok || !strings.HasPrefix(msg, nullAccessPanic) {
					t.Errorf("unexpected panic value: %v", r)
				}
			}()
			access()
		})
	}
}

func TestRecord_Accessors(t *testing.T) {
	buf := []byte{0x07, 0x04, 0xDE, 0xAD, 0xBE, 0xEF}
	rec := View(buf, Standard{})

	if rec.Type() != 0x07 {
		t.Errorf("Type mismatch: got %d, want 7", rec.Type())
	}
	if rec.DeclaredLength() != 4 {
		t.Errorf("DeclaredLength mismatch: got %d, want 4", rec.DeclaredLength())
	}
	if !bytes.Equal(rec.Value(), []byte{0xDE, 0xAD, 0xBE, 0xEF}) {
		t.Errorf("Value mismatch: got %x", rec.Value())
	}
	if !bytes.Equal(rec.Bytes(), buf) {
		t.Errorf("Bytes mismatch: got %x", rec.Bytes())
	}
	if rec.Offset() != 0 {
		t.Errorf("Offset mismatch: got %d, want 0", rec.Offset())
	}
}

func TestRecord_ValueIsBorrowedNotCopied(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x00, 0x00}
	rec := View(buf, Standard{})

	buf[2] = 0x42
	if rec.Value()[0] != 0x42 {
		t.Error("Value should view into the underlying buffer, not copy it")
	}
}

func TestRecord_ValueClampedToBuffer(t *testing.T) {
	// length byte claims 200 bytes but only one follows
	buf := []byte{0x03, 0xC8, 0x61}
	rec := View(buf, Standard{})

	if got := rec.Value(); !bytes.Equal(got, []byte{0x61}) {
		t.Errorf("lying length should clamp to buffer: got %x", got)
	}
	if got := rec.Bytes(); !bytes.Equal(got, buf) {
		t.Errorf("Bytes should clamp to buffer: got %x", got)
	}
}

func TestRecord_ScalarShortReadReturnsZero(t *testing.T) {
	// value is 2 bytes, too short for a uint32
	buf := []byte{0x01, 0x02, 0x12, 0x34}
	rec := View(buf, Standard{})

	if got := rec.Uint32(); got != 0 {
		t.Errorf("short read should return 0, got %d", got)
	}
	if got := rec.Uint16(); got != 0x1234 {
		t.Errorf("Uint16 mismatch: got %#x, want 0x1234", got)
	}

	empty := View([]byte{0x01, 0x00}, Standard{})
	if empty.Uint8() != 0 || empty.Uint16() != 0 || empty.Uint32() != 0 {
		t.Error("scalar reads on empty value should all return 0")
	}
	if empty.IPv4().IsValid() {
		t.Error("IPv4 on empty value should return the zero Addr")
	}
}

func TestRecord_ScalarBigEndian(t *testing.T) {
	rec := View([]byte{0x01, 0x04, 0x01, 0x02, 0x03, 0x04}, Standard{})

	if got := rec.Uint32(); got != 0x01020304 {
		t.Errorf("Uint32 mismatch: got %#x, want 0x01020304", got)
	}
}

func TestRecord_IPv4(t *testing.T) {
	rec := View([]byte{0x01, 0x04, 192, 0, 2, 1}, Standard{})

	want := netip.MustParseAddr("192.0.2.1")
	if got := rec.IPv4(); got != want {
		t.Errorf("IPv4 mismatch: got %s, want %s", got, want)
	}
}

func TestRecord_Clone(t *testing.T) {
	buf := []byte{0x05, 0x02, 0xAA, 0xBB}
	rec := View(buf, Standard{})
	clone := rec.Clone()

	buf[2] = 0x00
	if rec.Value()[0] != 0x00 {
		t.Fatal("original record should observe the mutation")
	}
	if clone.Value()[0] != 0xAA {
		t.Error("clone should not observe mutation of the source buffer")
	}
	if clone.Type() != 0x05 || clone.DataSize() != 2 {
		t.Error("clone header mismatch")
	}

	var null Record[Standard]
	if !null.Clone().IsNull() {
		t.Error("clone of null record should be null")
	}
}

func TestRecord_ShallowCopySharesBuffer(t *testing.T) {
	buf := []byte{0x05, 0x01, 0x10}
	rec := View(buf, Standard{})
	dup := rec

	buf[2] = 0x20
	if dup.Value()[0] != 0x20 {
		t.Error("copying a record should copy the reference, not the bytes")
	}
}
