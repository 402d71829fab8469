package blob

import (
	"math"

	"github.com/arloliu/stepseries/compress"
	"github.com/arloliu/stepseries/encoding"
	"github.com/arloliu/stepseries/format"
	"github.com/arloliu/stepseries/internal/hash"
	"github.com/arloliu/stepseries/internal/options"
	"github.com/arloliu/stepseries/internal/pool"
	"github.com/arloliu/stepseries/series"
)

// Encoder serializes float64 series into the binary blob format.
//
// The encoder is configured once and can encode any number of series of the
// same name; each Encode call produces an independent blob.
//
// Note: the Encoder is NOT thread-safe. Each instance should be used by a
// single goroutine at a time.
type Encoder struct {
	header   *Header
	tsCodec  compress.Codec
	valCodec compress.Codec
}

// NewEncoder creates an Encoder for the named series.
//
// The series name is hashed with xxhash64 and stored in the blob header as
// the series ID. Options select endianness, the timestamp and value
// encodings, and per-section compression; the defaults are little-endian,
// delta-of-delta timestamps, XOR values and no compression.
func NewEncoder(seriesName string, opts ...EncoderOption) (*Encoder, error) {
	enc := &Encoder{
		header: NewHeader(hash.ID(seriesName)),
	}

	if err := options.Apply(enc, opts...); err != nil {
		return nil, err
	}

	var err error
	enc.tsCodec, err = compress.CreateCodec(enc.header.Flag.TimestampCompression(), "timestamp")
	if err != nil {
		return nil, err
	}

	enc.valCodec, err = compress.CreateCodec(enc.header.Flag.ValueCompression(), "value")
	if err != nil {
		return nil, err
	}

	return enc, nil
}

// SeriesID returns the xxhash64 ID the encoder stamps into blob headers.
func (e *Encoder) SeriesID() uint64 {
	return e.header.SeriesID
}

// Encode serializes the series into a new blob.
//
// The three entry columns are staged into pooled slices, run through the
// configured columnar encoders, compressed per section and laid out after
// the fixed header. An empty series produces a valid blob with zero entries.
func (e *Encoder) Encode(s series.Series[float64]) ([]byte, error) {
	entries := s.Entries()
	if len(entries) > math.MaxUint32 {
		return nil, ErrSeriesTooLarge
	}

	timestamps, cleanupTS := pool.GetInt64Slice(len(entries))
	defer cleanupTS()
	validities, cleanupValidity := pool.GetInt64Slice(len(entries))
	defer cleanupValidity()
	values, cleanupVal := pool.GetFloat64Slice(len(entries))
	defer cleanupVal()

	for i, entry := range entries {
		timestamps[i] = entry.Timestamp
		validities[i] = entry.Validity
		values[i] = entry.Value
	}

	engine := e.header.Flag.GetEndianEngine()

	var tsEncoder encoding.ColumnarEncoder[int64]
	if e.header.Flag.TimestampEncoding() == format.TypeDelta {
		tsEncoder = encoding.NewTimestampDeltaEncoder()
	} else {
		tsEncoder = encoding.NewTimestampRawEncoder(engine)
	}
	defer tsEncoder.Finish()

	validityEncoder := encoding.NewValidityEncoder()
	defer validityEncoder.Finish()

	var valEncoder encoding.ColumnarEncoder[float64]
	if e.header.Flag.ValueEncoding() == format.TypeXOR {
		valEncoder = encoding.NewValueXOREncoder()
	} else {
		valEncoder = encoding.NewValueRawEncoder(engine)
	}
	defer valEncoder.Finish()

	tsEncoder.WriteSlice(timestamps)
	validityEncoder.WriteSlice(validities)
	valEncoder.WriteSlice(values)

	tsPayload, err := e.tsCodec.Compress(tsEncoder.Bytes())
	if err != nil {
		return nil, err
	}

	validityPayload, err := e.tsCodec.Compress(validityEncoder.Bytes())
	if err != nil {
		return nil, err
	}

	valPayload, err := e.valCodec.Compress(valEncoder.Bytes())
	if err != nil {
		return nil, err
	}

	totalSize := HeaderSize + len(tsPayload) + len(validityPayload) + len(valPayload)
	if totalSize > math.MaxUint32 {
		return nil, ErrSeriesTooLarge
	}

	header := *e.header
	header.EntryCount = uint32(len(entries))                                               //nolint:gosec
	header.TimestampPayloadOffset = HeaderSize
	header.ValidityPayloadOffset = uint32(HeaderSize + len(tsPayload))                     //nolint:gosec
	header.ValuePayloadOffset = header.ValidityPayloadOffset + uint32(len(validityPayload)) //nolint:gosec
	header.TotalSize = uint32(totalSize)                                                   //nolint:gosec

	out := make([]byte, 0, totalSize)
	out = append(out, header.Bytes()...)
	out = append(out, tsPayload...)
	out = append(out, validityPayload...)
	out = append(out, valPayload...)

	return out, nil
}
