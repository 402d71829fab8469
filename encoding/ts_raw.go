package encoding

import (
	"iter"

	"github.com/arloliu/stepseries/endian"
	"github.com/arloliu/stepseries/internal/pool"
)

// TimestampRawEncoder stores each timestamp as a fixed 8-byte integer in the
// byte order of the configured endian engine.
//
// Raw encoding trades size for speed and random access: every timestamp costs
// exactly 8 bytes, decode is a single load, and At is O(1). Prefer it when
// timestamps are irregular enough that delta-of-delta encoding does not pay
// off, or when random access matters more than payload size.
type TimestampRawEncoder struct {
	buf    *pool.ByteBuffer
	count  int
	engine endian.EndianEngine
	temp   [8]byte
}

var _ ColumnarEncoder[int64] = (*TimestampRawEncoder)(nil)

// NewTimestampRawEncoder creates a new raw timestamp encoder using the
// specified endian engine. The engine must match the one given to the decoder.
func NewTimestampRawEncoder(engine endian.EndianEngine) *TimestampRawEncoder {
	return &TimestampRawEncoder{
		engine: engine,
		buf:    pool.GetBlobBuffer(),
	}
}

// Write encodes a single timestamp as a fixed 8-byte integer.
func (e *TimestampRawEncoder) Write(timestamp int64) {
	e.count++
	e.engine.PutUint64(e.temp[:], uint64(timestamp)) //nolint:gosec
	e.buf.MustWrite(e.temp[:])
}

// WriteSlice encodes a slice of timestamps in one pass, pre-growing the
// internal buffer so at most one reallocation occurs.
func (e *TimestampRawEncoder) WriteSlice(timestamps []int64) {
	if len(timestamps) == 0 {
		return
	}

	e.buf.Grow(len(timestamps) * 8)
	for _, ts := range timestamps {
		e.Write(ts)
	}
}

// Bytes returns the encoded payload accumulated so far.
// The returned slice references the internal buffer and is valid until the
// next Write or Finish; the caller must not modify it.
func (e *TimestampRawEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded timestamps.
func (e *TimestampRawEncoder) Len() int {
	return e.count
}

// Size returns the encoded payload size in bytes.
func (e *TimestampRawEncoder) Size() int {
	return e.buf.Len()
}

// Reset is a no-op: raw encoding keeps no prediction state between values,
// and the accumulated payload is retained.
func (e *TimestampRawEncoder) Reset() {}

// Finish ends the encoding session and returns the internal buffer to the pool.
func (e *TimestampRawEncoder) Finish() {
	pool.PutBlobBuffer(e.buf)
	e.buf = pool.GetBlobBuffer()
	e.count = 0
}

// TimestampRawDecoder decodes payloads produced by TimestampRawEncoder.
// It is stateless and safe to reuse across payloads.
type TimestampRawDecoder struct {
	engine endian.EndianEngine
}

var _ ColumnarDecoder[int64] = TimestampRawDecoder{}

// NewTimestampRawDecoder creates a new raw timestamp decoder using the
// specified endian engine. The engine must match the encoder's engine.
func NewTimestampRawDecoder(engine endian.EndianEngine) TimestampRawDecoder {
	return TimestampRawDecoder{engine: engine}
}

// All returns an iterator yielding all timestamps in the payload.
// The iterator stops early on truncated payloads.
func (d TimestampRawDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for i := 0; i < count; i++ {
			start := i * 8
			if start+8 > len(data) {
				return
			}

			ts := int64(d.engine.Uint64(data[start : start+8])) //nolint:gosec
			if !yield(ts) {
				return
			}
		}
	}
}

// At returns the timestamp at the given index in O(1).
func (d TimestampRawDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	start := index * 8
	if start+8 > len(data) {
		return 0, false
	}

	return int64(d.engine.Uint64(data[start : start+8])), true //nolint:gosec
}
