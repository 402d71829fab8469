package compress

import (
	"bytes"
	"testing"

	"github.com/arloliu/stepseries/format"
	"github.com/stretchr/testify/require"
)

// compressiblePayload mimics a delta-encoded timestamp column: long runs of
// small repeated values.
func compressiblePayload(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 8)
	}

	return data
}

func TestCreateCodec_AllTypes(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(ct, "payload")
		require.NoError(t, err, "type %s", ct)
		require.NotNil(t, codec)
	}
}

func TestCreateCodec_Invalid(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(0xFF), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodec_Builtin(t *testing.T) {
	codec, err := GetCodec(format.CompressionZstd)
	require.NoError(t, err)
	require.NotNil(t, codec)

	_, err = GetCodec(format.CompressionType(0))
	require.Error(t, err)
}

func TestCodecs_RoundTrip(t *testing.T) {
	payload := compressiblePayload(4096)

	for _, ct := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "compress with %s", ct)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err, "decompress with %s", ct)
		require.True(t, bytes.Equal(payload, restored), "round trip with %s", ct)
	}
}

func TestCodecs_CompressReducesRepetitivePayload(t *testing.T) {
	payload := compressiblePayload(64 * 1024)

	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should compress repetitive data", ct)
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, ct := range []format.CompressionType{
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		restored, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, restored)
	}
}

func TestNoOpCompressor_Bypass(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	restored, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, restored)
}

func TestLZ4Compressor_CorruptedInput(t *testing.T) {
	codec := NewLZ4Compressor()

	_, err := codec.Decompress([]byte{0xFF, 0xFF, 0xFF, 0xFF})
	require.Error(t, err)
}

func TestZstdCompressor_CorruptedInput(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Error(t, err)
}
