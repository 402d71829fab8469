package blob

import (
	"iter"

	"github.com/arloliu/stepseries/compress"
	"github.com/arloliu/stepseries/encoding"
	"github.com/arloliu/stepseries/format"
	"github.com/arloliu/stepseries/series"
)

// Decoder reads a step-series blob produced by Encoder.
//
// NewDecoder parses and validates the header and decompresses the payload
// sections once; entry decoding itself is lazy through All.
//
// The decoder does not retain the input slice after NewDecoder returns when
// compression is enabled; with compression disabled the payload sections
// alias the input, which must stay unmodified while the decoder is in use.
type Decoder struct {
	header     Header
	timestamps []byte
	validities []byte
	values     []byte
}

// NewDecoder creates a Decoder over the given blob.
func NewDecoder(data []byte) (*Decoder, error) {
	d := &Decoder{}
	if err := d.header.Parse(data); err != nil {
		return nil, err
	}

	if int(d.header.TotalSize) != len(data) {
		return nil, ErrInvalidBlobSize
	}

	tsCodec, err := compress.GetCodec(d.header.Flag.TimestampCompression())
	if err != nil {
		return nil, err
	}

	valCodec, err := compress.GetCodec(d.header.Flag.ValueCompression())
	if err != nil {
		return nil, err
	}

	d.timestamps, err = tsCodec.Decompress(data[d.header.TimestampPayloadOffset:d.header.ValidityPayloadOffset])
	if err != nil {
		return nil, err
	}

	d.validities, err = tsCodec.Decompress(data[d.header.ValidityPayloadOffset:d.header.ValuePayloadOffset])
	if err != nil {
		return nil, err
	}

	d.values, err = valCodec.Decompress(data[d.header.ValuePayloadOffset:d.header.TotalSize])
	if err != nil {
		return nil, err
	}

	return d, nil
}

// SeriesID returns the xxhash64 series ID stored in the blob header.
func (d *Decoder) SeriesID() uint64 {
	return d.header.SeriesID
}

// Len returns the number of entries stored in the blob.
func (d *Decoder) Len() int {
	return int(d.header.EntryCount)
}

// Flag returns the parsed header flag.
func (d *Decoder) Flag() Flag {
	return d.header.Flag
}

// All returns an iterator yielding the blob's entries in order, decoding the
// three columns on demand.
func (d *Decoder) All() iter.Seq[series.Entry[float64]] {
	return func(yield func(series.Entry[float64]) bool) {
		count := d.Len()
		if count == 0 {
			return
		}

		nextTS, stopTS := iter.Pull(d.timestampDecoder().All(d.timestamps, count))
		defer stopTS()
		nextValidity, stopValidity := iter.Pull(encoding.NewValidityDecoder().All(d.validities, count))
		defer stopValidity()
		nextVal, stopVal := iter.Pull(d.valueDecoder().All(d.values, count))
		defer stopVal()

		for {
			ts, ok := nextTS()
			if !ok {
				return
			}

			validity, ok := nextValidity()
			if !ok {
				return
			}

			val, ok := nextVal()
			if !ok {
				return
			}

			if !yield(series.Entry[float64]{Timestamp: ts, Value: val, Validity: validity}) {
				return
			}
		}
	}
}

// Entries materializes all entries into a new slice.
func (d *Decoder) Entries() []series.Entry[float64] {
	entries := make([]series.Entry[float64], 0, d.Len())
	for entry := range d.All() {
		entries = append(entries, entry)
	}

	return entries
}

// Series reconstructs the stored series, validating ordering, validity
// positivity and non-overlap on the way in so corrupted blobs cannot produce
// an inconsistent series.
func (d *Decoder) Series() (series.Series[float64], error) {
	return series.New(d.Entries()...)
}

func (d *Decoder) timestampDecoder() encoding.ColumnarDecoder[int64] {
	if d.header.Flag.TimestampEncoding() == format.TypeDelta {
		return encoding.NewTimestampDeltaDecoder()
	}

	return encoding.NewTimestampRawDecoder(d.header.Flag.GetEndianEngine())
}

func (d *Decoder) valueDecoder() encoding.ColumnarDecoder[float64] {
	if d.header.Flag.ValueEncoding() == format.TypeXOR {
		return encoding.NewValueXORDecoder()
	}

	return encoding.NewValueRawDecoder(d.header.Flag.GetEndianEngine())
}
