package encoding

import (
	"encoding/binary"
	"iter"

	"github.com/arloliu/stepseries/internal/pool"
)

// TimestampDeltaEncoder encodes entry start timestamps using delta-of-delta
// encoding with zigzag and varint compression.
//
// Layout of the produced payload:
//  1. First timestamp: full varint-encoded value
//  2. Second timestamp: zigzag + varint encoded delta
//  3. Subsequent timestamps: zigzag + varint encoded delta-of-deltas
//
// Step-function series commonly advance by one validity per entry, so the
// deltas between starts are near-constant and the delta-of-deltas collapse to
// zero, costing one byte per timestamp. Decoding is strictly sequential.
type TimestampDeltaEncoder struct {
	prevTS    int64
	prevDelta int64
	temp      [binary.MaxVarintLen64]byte
	buf       *pool.ByteBuffer
	count     int
}

var _ ColumnarEncoder[int64] = (*TimestampDeltaEncoder)(nil)

// NewTimestampDeltaEncoder creates a new delta-of-delta timestamp encoder.
func NewTimestampDeltaEncoder() *TimestampDeltaEncoder {
	return &TimestampDeltaEncoder{
		buf: pool.GetBlobBuffer(),
	}
}

// Write encodes a single timestamp.
func (e *TimestampDeltaEncoder) Write(timestamp int64) {
	e.count++
	e.buf.Grow(binary.MaxVarintLen64)

	if e.count == 1 {
		// First timestamp: full value, varint only.
		n := binary.PutUvarint(e.temp[:], uint64(timestamp)) //nolint:gosec
		e.buf.MustWrite(e.temp[:n])
		e.prevTS = timestamp

		return
	}

	delta := timestamp - e.prevTS
	valToEncode := delta
	if e.count > 2 {
		valToEncode = delta - e.prevDelta
	}

	n := binary.PutUvarint(e.temp[:], zigzag(valToEncode))
	e.buf.MustWrite(e.temp[:n])

	e.prevTS = timestamp
	e.prevDelta = delta
}

// WriteSlice encodes a slice of timestamps in one pass.
func (e *TimestampDeltaEncoder) WriteSlice(timestamps []int64) {
	if len(timestamps) == 0 {
		return
	}

	// Optimistic estimate: full first value plus ~2 bytes per delta.
	e.buf.Grow(binary.MaxVarintLen64 + 2*len(timestamps))
	for _, ts := range timestamps {
		e.Write(ts)
	}
}

// Bytes returns the encoded payload accumulated so far.
// The returned slice references the internal buffer and is valid until the
// next Write or Finish; the caller must not modify it.
func (e *TimestampDeltaEncoder) Bytes() []byte {
	return e.buf.Bytes()
}

// Len returns the number of encoded timestamps.
func (e *TimestampDeltaEncoder) Len() int {
	return e.count
}

// Size returns the encoded payload size in bytes.
func (e *TimestampDeltaEncoder) Size() int {
	return e.buf.Len()
}

// Reset clears the delta prediction state while keeping the accumulated
// payload, so an independent timestamp sequence can follow in the same buffer.
func (e *TimestampDeltaEncoder) Reset() {
	e.prevTS = 0
	e.prevDelta = 0
	e.count = 0
}

// Finish ends the encoding session and returns the internal buffer to the
// pool. The encoder is empty and reusable afterwards.
func (e *TimestampDeltaEncoder) Finish() {
	pool.PutBlobBuffer(e.buf)
	e.buf = pool.GetBlobBuffer()
	e.prevTS = 0
	e.prevDelta = 0
	e.count = 0
}

// TimestampDeltaDecoder decodes payloads produced by TimestampDeltaEncoder.
// The decoder is stateless; each call operates independently on the data.
type TimestampDeltaDecoder struct{}

var _ ColumnarDecoder[int64] = TimestampDeltaDecoder{}

// NewTimestampDeltaDecoder creates a new delta-of-delta timestamp decoder.
func NewTimestampDeltaDecoder() TimestampDeltaDecoder {
	return TimestampDeltaDecoder{}
}

// All returns an iterator yielding all timestamps in the payload, decoding
// each on demand with no intermediate allocations. The iterator stops early
// on malformed or truncated payloads.
func (d TimestampDeltaDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if len(data) == 0 || count <= 0 {
			return
		}

		first, offset := binary.Uvarint(data)
		if offset <= 0 {
			return
		}

		curTS := int64(first) //nolint:gosec
		if !yield(curTS) {
			return
		}

		var prevDelta int64
		for yielded := 1; yielded < count && offset < len(data); yielded++ {
			raw, n := binary.Uvarint(data[offset:])
			if n <= 0 {
				return
			}
			offset += n

			if yielded == 1 {
				prevDelta = unzigzag(raw)
			} else {
				prevDelta += unzigzag(raw)
			}
			curTS += prevDelta

			if !yield(curTS) {
				return
			}
		}
	}
}

// At returns the timestamp at the given index, decoding only the prefix of
// the payload needed to reach it.
func (d TimestampDeltaDecoder) At(data []byte, index int, count int) (int64, bool) {
	if index < 0 || index >= count {
		return 0, false
	}

	var result int64
	found := false
	i := 0
	for ts := range d.All(data, count) {
		if i == index {
			result = ts
			found = true
			break
		}
		i++
	}

	return result, found
}
