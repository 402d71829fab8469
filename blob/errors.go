package blob

import "errors"

var (
	// ErrInvalidHeaderSize is returned when the blob is shorter than the
	// fixed header.
	ErrInvalidHeaderSize = errors.New("blob: invalid header size")

	// ErrInvalidMagicNumber is returned when the header magic number does not
	// identify a step-series blob.
	ErrInvalidMagicNumber = errors.New("blob: invalid magic number")

	// ErrInvalidReservedBits is returned when reserved header bits are set.
	ErrInvalidReservedBits = errors.New("blob: reserved flag bits must be zero")

	// ErrInvalidTimestampEncoding is returned for an unknown timestamp
	// encoding type in the header.
	ErrInvalidTimestampEncoding = errors.New("blob: invalid timestamp encoding")

	// ErrInvalidValueEncoding is returned for an unknown value encoding type
	// in the header.
	ErrInvalidValueEncoding = errors.New("blob: invalid value encoding")

	// ErrInvalidTimestampCompression is returned for an unknown timestamp
	// compression type in the header.
	ErrInvalidTimestampCompression = errors.New("blob: invalid timestamp compression")

	// ErrInvalidValueCompression is returned for an unknown value compression
	// type in the header.
	ErrInvalidValueCompression = errors.New("blob: invalid value compression")

	// ErrInvalidBlobSize is returned when the blob length does not match the
	// section offsets recorded in the header.
	ErrInvalidBlobSize = errors.New("blob: blob size does not match header")

	// ErrSeriesTooLarge is returned when a series exceeds the format's entry
	// count or payload size limits.
	ErrSeriesTooLarge = errors.New("blob: series exceeds format limits")
)
