package blob

// HeaderSize is the fixed header size in bytes.
const HeaderSize = 32

// Header is the fixed-size header section at the start of a step-series blob.
//
// Layout (byte offsets):
//
//	0-3    Flag (options, encoding type, compression type)
//	4-11   SeriesID (xxhash64 of the series name)
//	12-15  EntryCount
//	16-19  TimestampPayloadOffset
//	20-23  ValidityPayloadOffset
//	24-27  ValuePayloadOffset
//	28-31  TotalSize
//
// The Options field of the flag is always little-endian; the remaining fields
// use the byte order the endianness bit selects.
type Header struct {
	// SeriesID is the xxhash64 hash of the series name.
	SeriesID uint64
	// EntryCount is the number of entries stored in the blob.
	EntryCount uint32
	// TimestampPayloadOffset is the byte offset of the timestamp section.
	TimestampPayloadOffset uint32
	// ValidityPayloadOffset is the byte offset of the validity section.
	ValidityPayloadOffset uint32
	// ValuePayloadOffset is the byte offset of the value section.
	ValuePayloadOffset uint32
	// TotalSize is the total blob size in bytes, header included.
	TotalSize uint32

	// Flag packs the endianness, encoding and compression settings.
	Flag Flag
}

// NewHeader creates a Header with default flags for the given series ID.
// Counts and offsets are filled in when the encoder finishes.
func NewHeader(seriesID uint64) *Header {
	return &Header{
		SeriesID:               seriesID,
		Flag:                   NewFlag(),
		TimestampPayloadOffset: HeaderSize,
	}
}

// Parse parses and validates a header from a byte slice.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return ErrInvalidHeaderSize
	}

	// The Options field itself is always little-endian so the endianness bit
	// can be read before an engine is chosen.
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.EncodingType = data[2]
	h.Flag.CompressionType = data[3]

	if err := h.Flag.Validate(); err != nil {
		return err
	}

	engine := h.Flag.GetEndianEngine()
	h.SeriesID = engine.Uint64(data[4:12])
	h.EntryCount = engine.Uint32(data[12:16])
	h.TimestampPayloadOffset = engine.Uint32(data[16:20])
	h.ValidityPayloadOffset = engine.Uint32(data[20:24])
	h.ValuePayloadOffset = engine.Uint32(data[24:28])
	h.TotalSize = engine.Uint32(data[28:32])

	if h.TimestampPayloadOffset != HeaderSize ||
		h.ValidityPayloadOffset < h.TimestampPayloadOffset ||
		h.ValuePayloadOffset < h.ValidityPayloadOffset ||
		h.TotalSize < h.ValuePayloadOffset {
		return ErrInvalidBlobSize
	}

	return nil
}

// Bytes serializes the header into a new 32-byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.EncodingType
	b[3] = h.Flag.CompressionType

	engine := h.Flag.GetEndianEngine()
	engine.PutUint64(b[4:12], h.SeriesID)
	engine.PutUint32(b[12:16], h.EntryCount)
	engine.PutUint32(b[16:20], h.TimestampPayloadOffset)
	engine.PutUint32(b[20:24], h.ValidityPayloadOffset)
	engine.PutUint32(b[24:28], h.ValuePayloadOffset)
	engine.PutUint32(b[28:32], h.TotalSize)

	return b
}
