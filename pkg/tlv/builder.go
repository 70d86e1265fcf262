package tlv

import (
	"encoding/binary"
	"fmt"
	"net/netip"
)

// Builder constructs a standalone TLV record buffer from a type tag and a
// value, independent of any destination packet. The builder owns a private
// copy of the value; the buffers it produces alias nothing, in contrast to
// reader-produced views which always borrow.
type Builder struct {
	typ   byte
	value []byte
}

// NewBuilder returns a Builder for a record of the given type carrying a
// copy of value. Values longer than MaxValueLen cannot be represented in
// the single-byte length field and are rejected with ErrValueTooLarge,
// never truncated.
func NewBuilder(typ byte, value []byte) (*Builder, error) {
	if len(value) > MaxValueLen {
		return nil, fmt.Errorf("record type %d with %d-byte value: %w", typ, len(value), ErrValueTooLarge)
	}
	v := make([]byte, len(value))
	copy(v, value)
	return &Builder{typ: typ, value: v}, nil
}

// NewUint8Builder returns a Builder whose value is the single byte v.
func NewUint8Builder(typ byte, v uint8) *Builder {
	return &Builder{typ: typ, value: []byte{v}}
}

// NewUint16Builder returns a Builder whose value is v encoded big-endian,
// matching the Record.Uint16 accessor.
func NewUint16Builder(typ byte, v uint16) *Builder {
	value := make([]byte, 2)
	binary.BigEndian.PutUint16(value, v)
	return &Builder{typ: typ, value: value}
}

// NewUint32Builder returns a Builder whose value is v encoded big-endian,
// matching the Record.Uint32 accessor.
func NewUint32Builder(typ byte, v uint32) *Builder {
	value := make([]byte, 4)
	binary.BigEndian.PutUint32(value, v)
	return &Builder{typ: typ, value: value}
}

// NewIPv4Builder returns a Builder whose value is the 4-byte wire form of
// addr. Addresses without a 4-byte representation are rejected with
// ErrNotIPv4.
func NewIPv4Builder(typ byte, addr netip.Addr) (*Builder, error) {
	if !addr.Is4() {
		return nil, fmt.Errorf("record type %d with address %s: %w", typ, addr, ErrNotIPv4)
	}
	v4 := addr.As4()
	return &Builder{typ: typ, value: v4[:]}, nil
}

// NewStringBuilder returns a Builder whose value is the raw bytes of s,
// with no added terminator. The same MaxValueLen limit applies.
func NewStringBuilder(typ byte, s string) (*Builder, error) {
	return NewBuilder(typ, []byte(s))
}

// Type returns the type tag the record will carry.
func (b *Builder) Type() byte {
	return b.typ
}

// ValueLength returns the length of the value in bytes.
func (b *Builder) ValueLength() byte {
	return byte(len(b.value))
}

// Size returns the total on-wire size of the record Bytes will produce.
func (b *Builder) Size() int {
	return HeaderSize + len(b.value)
}

// Clone returns a Builder with its own copy of the value, so the two
// builders never alias the same bytes.
func (b *Builder) Clone() *Builder {
	v := make([]byte, len(b.value))
	copy(v, b.value)
	return &Builder{typ: b.typ, value: v}
}

// Bytes allocates and returns the record's on-wire form: exactly
// HeaderSize + value length bytes, with the type tag at offset 0, the
// value length at offset 1 and the value bytes after. Each call returns a
// fresh buffer.
func (b *Builder) Bytes() []byte {
	buf := make([]byte, HeaderSize+len(b.value))
	buf[0] = b.typ
	buf[1] = byte(len(b.value))
	copy(buf[HeaderSize:], b.value)
	return buf
}

// Build wraps a freshly built record buffer in a Record sized by variant.
// The returned record's backing allocation is private to the caller; it
// does not point into any shared packet buffer.
func Build[V Variant](b *Builder, variant V) Record[V] {
	return Record[V]{raw: b.Bytes(), variant: variant}
}
