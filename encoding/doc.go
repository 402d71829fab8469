// Package encoding provides columnar encoders and decoders for the three
// columns of a serialized step-function series: timestamps, validities and
// values.
//
// Each column has a compact encoding tuned to its statistics and a raw
// fixed-width fallback:
//
//   - Timestamps: delta-of-delta with zigzag varint (TimestampDeltaEncoder),
//     or fixed 8-byte integers (TimestampRawEncoder).
//   - Validities: plain unsigned varint (ValidityEncoder).
//   - Values: XOR-with-previous varint (ValueXOREncoder), or fixed 8-byte
//     IEEE 754 bit patterns (ValueRawEncoder).
//
// Encoders accumulate into pooled buffers and expose the payload via Bytes;
// decoders are stateless and yield values through iter.Seq iterators. All
// encoder and decoder pairs implement the ColumnarEncoder and ColumnarDecoder
// interfaces, which lets the blob package select codecs by flag at runtime.
package encoding
