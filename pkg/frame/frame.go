// Package frame provides the owning buffer layer that TLV views borrow
// from: a Frame allocates and owns a contiguous region of back-to-back
// records and supports splicing records in and out at record boundaries.
//
// The frame performs the mutations the read path cannot: tlv.Reader views
// never modify the buffer, and a reader's count cache only stays honest if
// every Append, InsertAt and RemoveAt is paired with a matching
// Reader.AdjustCount call on the caller's side.
//
// Views obtained over Bytes are invalidated by any mutation; re-read them
// after splicing.
package frame

import (
	"errors"
	"fmt"

	"github.com/wirebyte/tlvkit/pkg/tlv"
)

// ErrOffsetOutOfRange is returned when a splice offset does not lie within
// the frame.
var ErrOffsetOutOfRange = errors.New("offset out of range")

// Frame owns a buffer of back-to-back TLV records.
type Frame struct {
	buf []byte
}

// New returns an empty frame.
func New() *Frame {
	return &Frame{}
}

// FromBytes returns a frame owning a copy of buf, so later splices never
// write into the caller's memory.
func FromBytes(buf []byte) *Frame {
	b := make([]byte, len(buf))
	copy(b, buf)
	return &Frame{buf: b}
}

// Bytes exposes the records region for traversal. The slice borrows the
// frame's storage and is invalidated by the next mutation.
func (f *Frame) Bytes() []byte {
	return f.buf
}

// Len returns the size of the records region in bytes.
func (f *Frame) Len() int {
	return len(f.buf)
}

// Append splices a built record onto the end of the frame and returns the
// offset its header landed at.
func (f *Frame) Append(b *tlv.Builder) int {
	off := len(f.buf)
	f.buf = append(f.buf, b.Bytes()...)
	return off
}

// InsertAt splices a built record in at the given offset, shifting every
// record from that offset onward. The offset must lie on a record boundary
// for the result to stay well-formed; the frame only checks that it lies
// within the buffer.
func (f *Frame) InsertAt(off int, b *tlv.Builder) error {
	if off < 0 || off > len(f.buf) {
		return fmt.Errorf("insert at %d in %d-byte frame: %w", off, len(f.buf), ErrOffsetOutOfRange)
	}
	rec := b.Bytes()
	// grow, shift the tail right, then drop the record in
	f.buf = append(f.buf, rec...)
	copy(f.buf[off+len(rec):], f.buf[off:])
	copy(f.buf[off:], rec)
	return nil
}

// RemoveAt splices out the record whose header starts at the given offset,
// sized by variant, and returns the number of bytes removed. A record
// whose declared size overruns the buffer is trimmed to the buffer end.
func RemoveAt[V tlv.Variant](f *Frame, off int, variant V) (int, error) {
	if off < 0 || off >= len(f.buf) {
		return 0, fmt.Errorf("remove at %d in %d-byte frame: %w", off, len(f.buf), ErrOffsetOutOfRange)
	}

	total := variant.TotalSize(f.buf[off:])
	if total < tlv.HeaderSize {
		total = len(f.buf) - off // truncated header: drop the dangling tail
	}
	if total > len(f.buf)-off {
		total = len(f.buf) - off
	}

	f.buf = append(f.buf[:off], f.buf[off+total:]...)
	return total, nil
}
