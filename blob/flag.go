package blob

import (
	"github.com/arloliu/stepseries/endian"
	"github.com/arloliu/stepseries/format"
)

const (
	// Bit masks for the packed Options field.
	EndiannessMask   = 0x0001 // endianness bit (bit 0), 0=little, 1=big
	ReservedBitsMask = 0x000E // reserved bits (bits 1-3), must be zero
	MagicNumberMask  = 0xFFF0 // magic number (bits 4-15)

	// MagicStepV1Opt identifies version 1 of the step-series blob format.
	MagicStepV1Opt = 0x5D10
)

// Flag is the packed flag field at the start of the blob header.
type Flag struct {
	// Options packs the endianness bit and the format magic number.
	// Bit 0 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 1-3 are reserved and must be zero.
	// Bits 4-15 are the magic number identifying the blob format.
	Options uint16

	// EncodingType holds the timestamp encoding in bits 0-3 and the value
	// encoding in bits 4-7.
	EncodingType uint8

	// CompressionType holds the timestamp section compression in bits 0-3 and
	// the value section compression in bits 4-7. The validity section shares
	// the timestamp compression, the two columns have similar statistics.
	CompressionType uint8
}

var (
	validTimestampEncodings = map[format.EncodingType]struct{}{
		format.TypeRaw:   {},
		format.TypeDelta: {},
	}

	validValueEncodings = map[format.EncodingType]struct{}{
		format.TypeRaw: {},
		format.TypeXOR: {},
	}

	validCompressions = map[format.CompressionType]struct{}{
		format.CompressionNone: {},
		format.CompressionZstd: {},
		format.CompressionS2:   {},
		format.CompressionLZ4:  {},
	}
)

// NewFlag creates a Flag with the default settings: little-endian,
// delta-of-delta timestamps, XOR values, no compression.
func NewFlag() Flag {
	flag := Flag{Options: MagicStepV1Opt}
	flag.SetTimestampEncoding(format.TypeDelta)
	flag.SetValueEncoding(format.TypeXOR)
	flag.SetTimestampCompression(format.CompressionNone)
	flag.SetValueCompression(format.CompressionNone)

	return flag
}

// IsLittleEndian returns whether payload fields are little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// WithLittleEndian sets the endianness flag to little-endian.
func (f *Flag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets the endianness flag to big-endian.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// GetEndianEngine returns the endian engine matching the endianness flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// TimestampEncoding returns the timestamp encoding type.
func (f Flag) TimestampEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType & 0x0F)
}

// SetTimestampEncoding sets the timestamp encoding type.
func (f *Flag) SetTimestampEncoding(enc format.EncodingType) {
	f.EncodingType = (f.EncodingType &^ 0x0F) | uint8(enc)
}

// ValueEncoding returns the value encoding type.
func (f Flag) ValueEncoding() format.EncodingType {
	return format.EncodingType(f.EncodingType >> 4)
}

// SetValueEncoding sets the value encoding type.
func (f *Flag) SetValueEncoding(enc format.EncodingType) {
	f.EncodingType = (f.EncodingType & 0x0F) | (uint8(enc) << 4)
}

// TimestampCompression returns the compression applied to the timestamp and
// validity sections.
func (f Flag) TimestampCompression() format.CompressionType {
	return format.CompressionType(f.CompressionType & 0x0F)
}

// SetTimestampCompression sets the compression for the timestamp and validity
// sections.
func (f *Flag) SetTimestampCompression(comp format.CompressionType) {
	f.CompressionType = (f.CompressionType &^ 0x0F) | uint8(comp)
}

// ValueCompression returns the compression applied to the value section.
func (f Flag) ValueCompression() format.CompressionType {
	return format.CompressionType(f.CompressionType >> 4)
}

// SetValueCompression sets the compression for the value section.
func (f *Flag) SetValueCompression(comp format.CompressionType) {
	f.CompressionType = (f.CompressionType & 0x0F) | (uint8(comp) << 4)
}

// Validate checks the magic number, reserved bits and the encoding and
// compression enums.
func (f Flag) Validate() error {
	if f.Options&MagicNumberMask != MagicStepV1Opt {
		return ErrInvalidMagicNumber
	}

	if f.Options&ReservedBitsMask != 0 {
		return ErrInvalidReservedBits
	}

	if _, ok := validTimestampEncodings[f.TimestampEncoding()]; !ok {
		return ErrInvalidTimestampEncoding
	}

	if _, ok := validValueEncodings[f.ValueEncoding()]; !ok {
		return ErrInvalidValueEncoding
	}

	if _, ok := validCompressions[f.TimestampCompression()]; !ok {
		return ErrInvalidTimestampCompression
	}

	if _, ok := validCompressions[f.ValueCompression()]; !ok {
		return ErrInvalidValueCompression
	}

	return nil
}
