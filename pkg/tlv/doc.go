// Package tlv provides zero-copy access to Type-Length-Value records packed
// in a byte buffer.
//
// The package is protocol-agnostic: it knows the common 2-byte header shape
// (type tag, declared length) but delegates all size computation to a
// Variant, because different wire formats interpret the length byte
// differently. This is the foundation tlvkit's framing, CLI and decode
// service are built on.
//
// # Wire Format
//
// A record occupies a contiguous region of the buffer:
//
//	byte 0       : type tag (0-255)
//	byte 1       : declared length (0-255), meaning is variant-defined
//	bytes 2..N-1 : value bytes, where N = Variant.TotalSize
//
// Records are packed back to back with no separator. The buffer and its
// length always come from the caller; the package never infers buffer
// bounds from the data itself.
//
// # Variants
//
// A Variant supplies the two size computations the header alone cannot
// determine:
//   - Standard: the length byte counts only the value, total = 2 + L
//   - Inclusive: the length byte counts the whole record, total = L
//   - Padded: like Standard, with the total rounded up to an alignment
//
// Protocols with other length conventions implement the Variant interface
// themselves; TotalSize and DataSize are the only extension point.
//
// # Reading
//
// Record is a non-owning view into a caller-owned buffer. Views are cheap
// to copy (they copy the reference, never the bytes) and remain valid only
// as long as the underlying buffer does. A Record is either null (the "no
// record here" sentinel returned at end of traversal or when a search
// misses) or valid; check IsNull before calling accessors, which panic on
// a null view rather than returning garbage.
//
// Reader walks, searches and counts records:
//
//	reader := tlv.NewReader(tlv.Standard{})
//	for rec := reader.First(buf); !rec.IsNull(); rec = reader.Next(rec, buf) {
//		fmt.Printf("type=%d len=%d\n", rec.Type(), rec.DataSize())
//	}
//
// Traversal never returns an error: a malformed or truncated buffer simply
// ends the walk early with a null view. Callers that must distinguish
// "ended early" from "not found" compare consumed bytes against the buffer
// length themselves.
//
// # Counting
//
// Reader.Count caches its result after the first full scan. The reader
// cannot observe buffer mutation, so callers that splice records in or out
// must report the delta with AdjustCount to keep the cache honest.
//
// # Building
//
// Builder constructs a standalone record buffer from a type tag and a
// value. Values are capped at 255 bytes (the length field is one byte);
// oversized values are rejected with ErrValueTooLarge, never truncated.
// The buffer returned by Bytes (or wrapped by Build) is a fresh private
// allocation that aliases nothing, in contrast to reader-produced views
// which always borrow.
//
// # Byte Order
//
// Scalar convenience forms on both sides use network byte order: the
// Builder's uint16/uint32 constructors encode big-endian, and Record's
// Uint16/Uint32 accessors decode big-endian. A scalar accessor on a value
// shorter than the scalar's width returns 0; this short-read fallback is
// deliberate, documented behavior, not an error.
//
// # Concurrency
//
// Records and Builders are plain values with no hidden state. Concurrent
// traversal of the same immutable buffer is safe when each goroutine uses
// its own Reader; a single Reader's count cache is not synchronized.
package tlv
