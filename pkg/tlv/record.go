package tlv

import (
	"encoding/binary"
	"net/netip"
)

// HeaderSize is the fixed size of a record header: one type byte followed
// by one length byte.
const HeaderSize = 2

// MaxValueLen is the largest value representable in the single-byte length
// field.
const MaxValueLen = 255

// Variant computes record sizes for one wire format. The raw slice passed
// to both methods begins at a record header and extends to the end of the
// enclosing buffer; implementations must never index past len(raw) and
// must return 0 when the header itself is truncated (len(raw) < HeaderSize).
//
// TotalSize is the number of bytes the record occupies on the wire,
// including its header. DataSize is the number of bytes in the value.
// How the two derive from the declared length byte is the variant's whole
// purpose: some protocols count only the value, some count the header too,
// some round up to an alignment.
type Variant interface {
	TotalSize(raw []byte) int
	DataSize(raw []byte) int
}

// Standard is the common TLV convention: the declared length counts only
// the value, so TotalSize = HeaderSize + length.
type Standard struct{}

func (Standard) TotalSize(raw []byte) int {
	if len(raw) < HeaderSize {
		return 0
	}
	return HeaderSize + int(raw[1])
}

func (Standard) DataSize(raw []byte) int {
	if len(raw) < HeaderSize {
		return 0
	}
	return int(raw[1])
}

// Inclusive is the convention where the declared length counts the whole
// record, header included: TotalSize = length. A declared length below
// HeaderSize is clamped up to HeaderSize so a corrupt length byte cannot
// make traversal walk backwards or stall.
type Inclusive struct{}

func (Inclusive) TotalSize(raw []byte) int {
	if len(raw) < HeaderSize {
		return 0
	}
	if int(raw[1]) < HeaderSize {
		return HeaderSize
	}
	return int(raw[1])
}

func (v Inclusive) DataSize(raw []byte) int {
	total := v.TotalSize(raw)
	if total == 0 {
		return 0
	}
	return total - HeaderSize
}

// Padded is the Standard convention with the record's total size rounded
// up to a multiple of Align, as used by formats that keep records aligned
// in the buffer. The padding bytes belong to the record but not to its
// value. An Align of 0 or 1 behaves exactly like Standard.
type Padded struct {
	Align int
}

func (p Padded) TotalSize(raw []byte) int {
	total := Standard{}.TotalSize(raw)
	if total == 0 || p.Align <= 1 {
		return total
	}
	if rem := total % p.Align; rem != 0 {
		total += p.Align - rem
	}
	return total
}

func (p Padded) DataSize(raw []byte) int {
	return Standard{}.DataSize(raw)
}

// Record is a non-owning view of one TLV record inside a caller-owned
// buffer. The zero value is the null record, the sentinel for "no record
// here": end of traversal, failed search, or an empty buffer.
//
// A Record never copies or owns the bytes it points at. Copying a Record
// copies the reference only; both copies observe the same buffer. The
// buffer must outlive every Record viewing into it.
type Record[V Variant] struct {
	// raw starts at the record header and is bounded by the end of the
	// enclosing buffer, not by the record's own size. nil means null.
	raw     []byte
	off     int
	variant V
}

// View wraps a view over the record starting at raw[0], bounded by
// len(raw). It performs no validation; a subsequent TotalSize or DataSize
// call is where a truncated or lying header surfaces. Most callers obtain
// records from a Reader instead.
func View[V Variant](raw []byte, variant V) Record[V] {
	if len(raw) == 0 {
		return Record[V]{}
	}
	return Record[V]{raw: raw, variant: variant}
}

// IsNull reports whether this is the null record. Every other accessor
// must only be called on a non-null record.
func (r Record[V]) IsNull() bool {
	return r.raw == nil
}

// Type returns the record's type tag. Panics on a null record.
func (r Record[V]) Type() byte {
	if r.IsNull() {
		panic(nullAccessPanic + "Type")
	}
	return r.raw[0]
}

// DeclaredLength returns the raw length byte from the header, whose
// meaning is variant-defined. Returns 0 when the header is truncated.
// Panics on a null record.
func (r Record[V]) DeclaredLength() byte {
	if r.IsNull() {
		panic(nullAccessPanic + "DeclaredLength")
	}
	if len(r.raw) < HeaderSize {
		return 0
	}
	return r.raw[1]
}

// TotalSize returns the on-wire size of the record including its header,
// per the variant. Returns 0 on a null record.
func (r Record[V]) TotalSize() int {
	if r.IsNull() {
		return 0
	}
	return r.variant.TotalSize(r.raw)
}

// DataSize returns the size of the record's value, per the variant.
// Returns 0 on a null record.
func (r Record[V]) DataSize() int {
	if r.IsNull() {
		return 0
	}
	return r.variant.DataSize(r.raw)
}

// Value returns the record's value bytes as a sub-slice of the underlying
// buffer, not a copy. The slice is clamped to the buffer end, so a length
// byte that claims more data than the buffer holds yields a short value
// rather than an out-of-bounds read. Panics on a null record.
func (r Record[V]) Value() []byte {
	if r.IsNull() {
		panic(nullAccessPanic + "Value")
	}
	if len(r.raw) < HeaderSize {
		return nil
	}
	n := r.variant.DataSize(r.raw)
	if n < 0 {
		n = 0
	}
	if n > len(r.raw)-HeaderSize {
		n = len(r.raw) - HeaderSize
	}
	return r.raw[HeaderSize : HeaderSize+n]
}

// Uint8 interprets the first value byte as an unsigned 8-bit scalar.
// Returns 0 when the value is empty; the short-read fallback is
// documented, non-failing behavior.
func (r Record[V]) Uint8() uint8 {
	v := r.Value()
	if len(v) < 1 {
		return 0
	}
	return v[0]
}

// Uint16 interprets the first two value bytes as a big-endian unsigned
// scalar, returning 0 on a short value.
func (r Record[V]) Uint16() uint16 {
	v := r.Value()
	if len(v) < 2 {
		return 0
	}
	return binary.BigEndian.Uint16(v)
}

// Uint32 interprets the first four value bytes as a big-endian unsigned
// scalar, returning 0 on a short value.
func (r Record[V]) Uint32() uint32 {
	v := r.Value()
	if len(v) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(v)
}

// IPv4 interprets the first four value bytes as an IPv4 address in wire
// order, returning the zero Addr on a short value.
func (r Record[V]) IPv4() netip.Addr {
	v := r.Value()
	if len(v) < 4 {
		return netip.Addr{}
	}
	return netip.AddrFrom4([4]byte(v[:4]))
}

// Offset returns the record's header offset from the base of the buffer
// it was read from. Builder-produced records sit at offset 0 of their own
// buffer. Returns 0 on a null record.
func (r Record[V]) Offset() int {
	return r.off
}

// Bytes returns the record's on-wire bytes (header plus value plus any
// variant padding) as a sub-slice of the underlying buffer, clamped to the
// buffer end. Panics on a null record.
func (r Record[V]) Bytes() []byte {
	if r.IsNull() {
		panic(nullAccessPanic + "Bytes")
	}
	n := r.variant.TotalSize(r.raw)
	if n < HeaderSize {
		n = HeaderSize
	}
	if n > len(r.raw) {
		n = len(r.raw)
	}
	return r.raw[:n]
}

// Clone copies the record's on-wire bytes into a private buffer and
// returns a view over that copy. Use it when a record must outlive the
// buffer it was read from. Cloning the null record returns the null
// record.
func (r Record[V]) Clone() Record[V] {
	if r.IsNull() {
		return Record[V]{}
	}
	src := r.Bytes()
	buf := make([]byte, len(src))
	copy(buf, src)
	return Record[V]{raw: buf, variant: r.variant}
}
