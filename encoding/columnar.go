package encoding

import "iter"

// ColumnarEncoder encodes one column of entry data (timestamps, validities or
// values) into a compact byte payload.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice.
	// The returned slice is valid until the next call to Write, WriteSlice or
	// Finish; the caller must not modify it.
	Bytes() []byte

	// Len returns the number of encoded values.
	Len() int

	// Size returns the size in bytes of the encoded payload.
	Size() int

	// Reset clears the encoder's prediction state (previous value, previous
	// delta) without discarding the accumulated payload, so a new independent
	// sequence can be appended to the same buffer.
	Reset()

	// Finish finalizes the encoding session and returns buffer resources to
	// the pool. After Finish the encoder starts over empty; retrieve the
	// payload with Bytes before calling it.
	Finish()

	// Write encodes a single value.
	Write(value T)

	// WriteSlice encodes a slice of values in one pass.
	// Preferred over repeated Write calls for bulk encoding.
	WriteSlice(values []T)
}

// ColumnarDecoder decodes one column payload produced by the matching
// ColumnarEncoder.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator yielding all decoded values in sequence.
	//
	// The count parameter is the expected number of encoded values. If the
	// payload is malformed or truncated the iterator stops early; the caller
	// is responsible for checking the yielded count when it matters.
	All(data []byte, count int) iter.Seq[T]

	// At retrieves the value at the given zero-based index.
	// Returns false when the index is out of bounds or the payload is
	// malformed before the index is reached.
	At(data []byte, index int, count int) (T, bool)
}
