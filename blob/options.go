package blob

import (
	"fmt"

	"github.com/arloliu/stepseries/format"
	"github.com/arloliu/stepseries/internal/options"
)

// EncoderOption configures an Encoder.
type EncoderOption = options.Option[*Encoder]

// WithLittleEndian sets the encoder to use little-endian byte order.
// It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets the encoder to use big-endian byte order.
// It rarely needs to be used unless interoperability with big-endian systems
// is required.
func WithBigEndian() EncoderOption {
	return options.NoError(func(e *Encoder) {
		e.header.Flag.WithBigEndian()
	})
}

// WithTimestampEncoding sets the timestamp encoding type.
// Valid types are format.TypeRaw and format.TypeDelta; the default is
// format.TypeDelta.
func WithTimestampEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch enc {
		case format.TypeRaw, format.TypeDelta:
			e.header.Flag.SetTimestampEncoding(enc)
			return nil
		case format.TypeXOR:
			return fmt.Errorf("XOR encoding is not supported for timestamps")
		default:
			return fmt.Errorf("invalid timestamp encoding: %v", enc)
		}
	})
}

// WithValueEncoding sets the value encoding type.
// Valid types are format.TypeRaw and format.TypeXOR; the default is
// format.TypeXOR.
func WithValueEncoding(enc format.EncodingType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch enc { //nolint:exhaustive
		case format.TypeRaw, format.TypeXOR:
			e.header.Flag.SetValueEncoding(enc)
			return nil
		default:
			return fmt.Errorf("invalid value encoding: %v", enc)
		}
	})
}

// WithTimestampCompression sets the compression applied to the timestamp and
// validity sections. The default is format.CompressionNone.
func WithTimestampCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.header.Flag.SetTimestampCompression(comp)
			return nil
		default:
			return fmt.Errorf("invalid timestamp compression: %v", comp)
		}
	})
}

// WithValueCompression sets the compression applied to the value section.
// The default is format.CompressionNone.
func WithValueCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		switch comp {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			e.header.Flag.SetValueCompression(comp)
			return nil
		default:
			return fmt.Errorf("invalid value compression: %v", comp)
		}
	})
}
