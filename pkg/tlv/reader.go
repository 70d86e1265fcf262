package tlv

// Reader walks, searches and counts the back-to-back records packed in a
// caller-supplied buffer. It knows nothing about any concrete wire format
// beyond what its Variant computes.
//
// Traversal never returns an error: a null record means the walk ended,
// whether because the buffer ran out, a search missed, or the input was
// malformed. Callers that need to tell those apart compare consumed bytes
// against the buffer length themselves.
//
// A Reader is created once per buffer and reused across queries against
// the same logical sequence; its count cache is not synchronized for
// concurrent use.
type Reader[V Variant] struct {
	variant V
	count   int // cached record count, -1 when unknown
}

// NewReader returns a Reader that sizes records with the given variant.
func NewReader[V Variant](variant V) *Reader[V] {
	return &Reader[V]{variant: variant, count: -1}
}

// First returns a view of the record at the start of buf, or the null
// record when buf is empty. It does not validate that the first record's
// declared size fits within buf; that surfaces when sizes are computed,
// and Next re-checks bounds on every step. First is a cheap constructor,
// not a validator.
func (r *Reader[V]) First(buf []byte) Record[V] {
	if len(buf) == 0 {
		return Record[V]{}
	}
	return Record[V]{raw: buf, variant: r.variant}
}

// Next returns the record following rec in buf, or the null record when
// rec is null, rec does not lie within buf, or advancing would land at or
// past the end of the buffer. A record flush against the exact end of the
// buffer is terminal: there is no further record, not an empty one.
//
// The bounds arithmetic runs in int64 so an adversarial TotalSize cannot
// wrap the comparison before it is made.
func (r *Reader[V]) Next(rec Record[V], buf []byte) Record[V] {
	if rec.IsNull() {
		return Record[V]{}
	}

	// rec must have come from this buffer
	off := int64(rec.off)
	if off < 0 || off >= int64(len(buf)) {
		return Record[V]{}
	}

	total := int64(rec.TotalSize())
	// a record cannot be smaller than its header; treating it as one
	// would stall the walk in place
	if total < HeaderSize {
		return Record[V]{}
	}
	if off+total >= int64(len(buf)) {
		return Record[V]{}
	}

	next := off + total
	return Record[V]{raw: buf[next:], off: int(next), variant: r.variant}
}

// Find returns the first record in buf whose type tag equals typ, or the
// null record when the scan reaches the end without a match. Duplicate
// tags are legal; the earliest occurrence wins. A null result does not
// distinguish "not present" from "sequence ended early".
func (r *Reader[V]) Find(typ byte, buf []byte) Record[V] {
	for rec := r.First(buf); !rec.IsNull(); rec = r.Next(rec, buf) {
		if rec.Type() == typ {
			return rec
		}
	}
	return Record[V]{}
}

// Count returns the number of records in buf. The first call scans the
// whole sequence and caches the result; subsequent calls return the cache
// in O(1) until AdjustCount reports a change. The cache is a performance
// optimization only: the Reader cannot detect buffer mutation itself.
func (r *Reader[V]) Count(buf []byte) int {
	if r.count >= 0 {
		return r.count
	}
	n := 0
	for rec := r.First(buf); !rec.IsNull(); rec = r.Next(rec, buf) {
		n++
	}
	r.count = n
	return n
}

// AdjustCount shifts the cached count by delta: positive after records
// were spliced into the buffer, negative after removals. This is the only
// way to keep the cache consistent across mutation. A no-op until a count
// has been cached.
func (r *Reader[V]) AdjustCount(delta int) {
	if r.count < 0 {
		return
	}
	r.count += delta
}
