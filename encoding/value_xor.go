package encoding

import (
	"encoding/binary"
	"iter"
	"math"

	"github.com/arloliu/stepseries/internal/pool"
)

// ValueXOREncoder encodes float64 values by XORing each value's bit pattern
// with the previous one and storing the XOR result as a varint.
//
// Step-function values repeat by nature (that is why entries exist at all),
// and even across distinct entries consecutive values tend to share sign,
// exponent and high mantissa bits. The XOR of similar values has mostly-zero
// high bits, which varint encoding exploits; an exact repeat costs one byte.
//
// This is the byte-aligned relative of Gorilla compression: it gives up the
// sub-byte packing of meaningful-bit windows in exchange for varint
// simplicity and sequential decode without a bit reader.
type ValueXOREncoder struct {
	prevBits uint64
	temp     [binary.MaxVarintLen64]byte
	buf      *pool.ByteBuffer
	count    int
}

var _ ColumnarEncoder[float64] = (*ValueXOREncoder)(nil)

// NewValueXOREncoder creates a new XOR value encoder.
func NewValueXOREncoder() *ValueXOREncoder {
	return &ValueXOREncoder{
		buf: pool.GetBlobBuffer(),
	}
}

// Write encodes a single value.
func (e *ValueXOREncoder) Write(val float64) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64)

	bits := math.Float64bits(val)
	n := binary.PutUvarint(e.temp[:], bits^e.prevBits)
	e.buf.MustWrite(e.temp[:n])
	e.prevBits = bits
}

// WriteSlice encodes a slice of values in one pass.
func (e *ValueXOREncoder) WriteSlice(values []float64) {
	if len(values) == 0 {
		return
	}

	e.buf.Grow(binary.MaxVarintLen64 * len(values) / 2)
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the encoded payload accumulated so far.
// The returned slice references the internal buffer and is valid until the
// next Write or Finish; the caller must not modify it.
func (e *ValueXOREncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *ValueXOREncoder) Len() int {
	return e.count
}

// Size returns the encoded payload size in bytes.
func (e *ValueXOREncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the XOR prediction state while keeping the accumulated payload.
func (e *ValueXOREncoder) Reset() {
	e.prevBits = 0
	e.count = 0
}

// Finish ends the encoding session and returns the internal buffer to the pool.
func (e *ValueXOREncoder) Finish() {
	pool.PutBlobBuffer(e.buf)
	e.buf = pool.GetBlobBuffer()
	e.prevBits = 0
	e.count = 0
}

// ValueXORDecoder decodes payloads produced by ValueXOREncoder.
type ValueXORDecoder struct{}

var _ ColumnarDecoder[float64] = ValueXORDecoder{}

// NewValueXORDecoder creates a new XOR value decoder.
func NewValueXORDecoder() ValueXORDecoder {
	return ValueXORDecoder{}
}

// All returns an iterator yielding all values in the payload.
// The iterator stops early on malformed or truncated payloads.
func (d ValueXORDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		offset := 0
		prevBits := uint64(0)
		for yielded := 0; yielded < count && offset < len(data); yielded++ {
			raw, n := binary.Uvarint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n

			prevBits ^= raw
			if !yield(math.Float64frombits(prevBits)) {
				return
			}
		}
	}
}

// At returns the value at the given index. XOR decoding is sequential, so
// this decodes the payload prefix up to the index.
func (d ValueXORDecoder) At(data []byte, index int, count int) (float64, bool) {
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
