package encoding

import (
	"iter"
	"math"

	"github.com/arloliu/stepseries/endian"
	"github.com/arloliu/stepseries/internal/pool"
)

// ValueRawEncoder stores each float64 value as its fixed 8-byte IEEE 754 bit
// pattern in the byte order of the configured endian engine.
//
// Raw encoding is the fallback for value streams that do not benefit from XOR
// prediction, such as noisy measurements where consecutive values share few
// bits. It gives O(1) random access at a fixed 8 bytes per value.
type ValueRawEncoder struct {
	buf    *pool.ByteBuffer
	count  int
	engine endian.EndianEngine
	temp   [8]byte
}

var _ ColumnarEncoder[float64] = (*ValueRawEncoder)(nil)

// NewValueRawEncoder creates a new raw value encoder using the specified
// endian engine. The engine must match the one given to the decoder.
func NewValueRawEncoder(engine endian.EndianEngine) *ValueRawEncoder {
	return &ValueRawEncoder{
		engine: engine,
		buf:    pool.GetBlobBuffer(),
	}
}

// Write encodes a single value as a fixed 8-byte IEEE 754 bit pattern.
func (e *ValueRawEncoder) Write(val float64) {
	e.count++
	e.engine.PutUint64(e.temp[:], math.Float64bits(val))
	e.buf.MustWrite(e.temp[:])
}

// WriteSlice encodes a slice of values in one pass, pre-growing the internal
// buffer so at most one reallocation occurs.
func (e *ValueRawEncoder) WriteSlice(values []float64) {
	if len(values) == 0 {
		return
	}

	e.buf.Grow(len(values) * 8)
	for _, v := range values {
		e.Write(v)
	}
}

// Bytes returns the encoded payload accumulated so far.
// The returned slice references the internal buffer and is valid until the
// next Write or Finish; the caller must not modify it.
func (e *ValueRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded values.
func (e *ValueRawEncoder) Len() int {
	return e.count
}

// Size returns the encoded payload size in bytes.
func (e *ValueRawEncoder) Size() int {
	return e.buf.Len()
}

// Reset is a no-op: raw encoding keeps no prediction state between values,
// and the accumulated payload is retained.
func (e *ValueRawEncoder) Reset() {}

// Finish ends the encoding session and returns the internal buffer to the pool.
func (e *ValueRawEncoder) Finish() {
	pool.PutBlobBuffer(e.buf)
	e.buf = pool.GetBlobBuffer()
	e.count = 0
}

// ValueRawDecoder decodes payloads produced by ValueRawEncoder.
// It is stateless and safe to reuse across payloads.
type ValueRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[float64] = ValueRawDecoder{}

// NewValueRawDecoder creates a new raw value decoder using the specified
// endian engine. The engine must match the encoder's engine.
func NewValueRawDecoder(engine endian.EndianEngine) ValueRawDecoder {
	return ValueRawDecoder{engine: engine}
}

// All returns an iterator yielding all values in the payload.
// The iterator stops early on truncated payloads.
func (d ValueRawDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := 0; i < count; i++ {
			start := i * 8
			if start+8 > len(data) {
				return
			}

			v := math.Float64frombits(d.engine.Uint64(data[start : start+8]))
			if !yield(v) {
				return
			}
		}
	}
}

// At returns the value at the given index in O(1).
func (d ValueRawDecoder) At(data []byte, index int, count int) (float64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	return math.Float64frombits(d.engine.Uint64(data[start : start+8])), true
}
