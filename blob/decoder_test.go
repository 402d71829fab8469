package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stepseries/format"
	"github.com/arloliu/stepseries/series"
)

func TestDecoder_RoundTrip_Configurations(t *testing.T) {
	tests := []struct {
		name string
		opts []EncoderOption
	}{
		{name: "defaults"},
		{name: "raw timestamps", opts: []EncoderOption{WithTimestampEncoding(format.TypeRaw)}},
		{name: "raw values", opts: []EncoderOption{WithValueEncoding(format.TypeRaw)}},
		{name: "zstd timestamps", opts: []EncoderOption{WithTimestampCompression(format.CompressionZstd)}},
		{name: "s2 values", opts: []EncoderOption{WithValueCompression(format.CompressionS2)}},
		{
			name: "lz4 both sections",
			opts: []EncoderOption{
				WithTimestampCompression(format.CompressionLZ4),
				WithValueCompression(format.CompressionLZ4),
			},
		},
		{
			name: "big endian raw",
			opts: []EncoderOption{
				WithBigEndian(),
				WithTimestampEncoding(format.TypeRaw),
				WithValueEncoding(format.TypeRaw),
			},
		},
	}

	original := testSeries(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := NewEncoder("round.trip", tt.opts...)
			require.NoError(t, err)

			data, err := enc.Encode(original)
			require.NoError(t, err)

			dec, err := NewDecoder(data)
			require.NoError(t, err)
			require.Equal(t, enc.SeriesID(), dec.SeriesID())
			require.Equal(t, original.Len(), dec.Len())

			got, err := dec.Series()
			require.NoError(t, err)
			require.True(t, original.Equal(got))
		})
	}
}

func TestDecoder_All_EarlyBreak(t *testing.T) {
	enc, err := NewEncoder("early.break")
	require.NoError(t, err)

	data, err := enc.Encode(testSeries(t))
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	var got []series.Entry[float64]
	for entry := range dec.All() {
		got = append(got, entry)
		if len(got) == 2 {
			break
		}
	}

	require.Len(t, got, 2)
	require.Equal(t, int64(1_000), got[0].Timestamp)
	require.Equal(t, int64(1_060), got[1].Timestamp)
}

func TestDecoder_All_Restartable(t *testing.T) {
	enc, err := NewEncoder("restart")
	require.NoError(t, err)

	data, err := enc.Encode(testSeries(t))
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)

	first := dec.Entries()
	second := dec.Entries()
	require.Equal(t, first, second)
}

func TestNewDecoder_TruncatedHeader(t *testing.T) {
	_, err := NewDecoder(make([]byte, HeaderSize-1))
	require.ErrorIs(t, err, ErrInvalidHeaderSize)
}

func TestNewDecoder_InvalidMagic(t *testing.T) {
	enc, err := NewEncoder("magic")
	require.NoError(t, err)

	data, err := enc.Encode(testSeries(t))
	require.NoError(t, err)

	data[1] ^= 0xFF
	_, err = NewDecoder(data)
	require.ErrorIs(t, err, ErrInvalidMagicNumber)
}

func TestNewDecoder_SizeMismatch(t *testing.T) {
	enc, err := NewEncoder("size")
	require.NoError(t, err)

	data, err := enc.Encode(testSeries(t))
	require.NoError(t, err)

	_, err = NewDecoder(data[:len(data)-1])
	require.ErrorIs(t, err, ErrInvalidBlobSize)

	_, err = NewDecoder(append(data, 0))
	require.ErrorIs(t, err, ErrInvalidBlobSize)
}

func TestNewDecoder_CorruptedCompressedSection(t *testing.T) {
	enc, err := NewEncoder("corrupt", WithValueCompression(format.CompressionZstd))
	require.NoError(t, err)

	data, err := enc.Encode(testSeries(t))
	require.NoError(t, err)

	var header Header
	require.NoError(t, header.Parse(data))
	for i := int(header.ValuePayloadOffset); i < len(data); i++ {
		data[i] = 0xAA
	}

	_, err = NewDecoder(data)
	require.Error(t, err)
}
