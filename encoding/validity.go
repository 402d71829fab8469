package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/stepseries/internal/pool"
)

// ValidityEncoder encodes entry validities as plain varints.
//
// Validities are always strictly positive and, for regularly sampled step
// functions, small and highly repetitive, so a varint per validity costs one
// or two bytes in the common case without any prediction state.
type ValidityEncoder struct {
	temp  [binary.MaxVarintLen64]byte
	buf   *pool.ByteBuffer
	count int
}

var _ ColumnarEncoder[int64] = (*ValidityEncoder)(nil)

// NewValidityEncoder creates a new validity encoder.
func NewValidityEncoder() *ValidityEncoder {
	return &ValidityEncoder{
		buf: pool.GetBlobBuffer(),
	}
}

// Write encodes a single validity.
func (e *ValidityEncoder) Write(validity int64) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64)

	n := binary.PutUvarint(e.temp[:], uint64(validity)) //nolint:gosec
	e.buf.MustWrite(e.temp[:n])
}

// WriteSlice encodes a slice of validities in one pass.
func (e *ValidityEncoder) WriteSlice(validities []int64) {
	if len(validities) == 0 {
		return
	}

	e.buf.Grow(2 * len(validities))
	for _, v := range validities {
		e.Write(v)
	}
}

// Bytes returns the encoded payload accumulated so far.
// The returned slice references the internal buffer and is valid until the
// next Write or Finish; the caller must not modify it.
func (e *ValidityEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded validities.
func (e *ValidityEncoder) Len() int {
	return e.count
}

// Size returns the encoded payload size in bytes.
func (e *ValidityEncoder) Size() int {
	return e.buf.Len()
}

// Reset restarts the value count while keeping the accumulated payload.
func (e *ValidityEncoder) Reset() {
	e.count = 0
}

// Finish ends the encoding session and returns the internal buffer to the pool.
func (e *ValidityEncoder) Finish() {
	pool.PutBlobBuffer(e.buf)
	e.buf = pool.GetBlobBuffer()
	e.count = 0
}

// ValidityDecoder decodes payloads produced by ValidityEncoder.
type ValidityDecoder struct{}

var _ ColumnarDecoder[int64] = ValidityDecoder{}

// NewValidityDecoder creates a new validity decoder.
func NewValidityDecoder() ValidityDecoder {
	return ValidityDecoder{}
}

// All returns an iterator yielding all validities in the payload.
// The iterator stops early on malformed or truncated payloads.
func (d ValidityDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		offset := 0
		for yielded := 0; yielded < count && offset < len(data); yielded++ {
			raw, n := binary.Uvarint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n

			if !yield(int64(raw)) { //nolint:gosec
				return
			}
		}
	}
}

// At returns the validity at the given index.
func (d ValidityDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	i := 0
	for v := range d.All(data, count) {
		if i == index {
			return v, true
		}
		i++
	}

	return 0, false
}
