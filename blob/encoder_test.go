package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stepseries/format"
	"github.com/arloliu/stepseries/internal/hash"
	"github.com/arloliu/stepseries/series"
)

func testSeries(t *testing.T) series.Series[float64] {
	t.Helper()

	return series.MustNew(
		series.MustNewEntry(1_000, 20.5, 60),
		series.MustNewEntry(1_060, 20.5, 60),
		series.MustNewEntry(1_120, 21.0, 120),
		series.MustNewEntry(2_000, 19.75, 30),
	)
}

func TestNewEncoder_Defaults(t *testing.T) {
	enc, err := NewEncoder("cpu.temperature")
	require.NoError(t, err)

	require.Equal(t, hash.ID("cpu.temperature"), enc.SeriesID())
	require.Equal(t, format.TypeDelta, enc.header.Flag.TimestampEncoding())
	require.Equal(t, format.TypeXOR, enc.header.Flag.ValueEncoding())
	require.Equal(t, format.CompressionNone, enc.header.Flag.TimestampCompression())
	require.Equal(t, format.CompressionNone, enc.header.Flag.ValueCompression())
	require.True(t, enc.header.Flag.IsLittleEndian())
}

func TestNewEncoder_InvalidOptions(t *testing.T) {
	_, err := NewEncoder("m", WithTimestampEncoding(format.TypeXOR))
	require.Error(t, err)

	_, err = NewEncoder("m", WithValueEncoding(format.TypeDelta))
	require.Error(t, err)

	_, err = NewEncoder("m", WithTimestampCompression(format.CompressionType(0xF)))
	require.Error(t, err)

	_, err = NewEncoder("m", WithValueCompression(format.CompressionType(0)))
	require.Error(t, err)
}

func TestEncoder_Encode_HeaderLayout(t *testing.T) {
	enc, err := NewEncoder("mem.used")
	require.NoError(t, err)

	data, err := enc.Encode(testSeries(t))
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), HeaderSize)

	var header Header
	require.NoError(t, header.Parse(data))
	require.Equal(t, hash.ID("mem.used"), header.SeriesID)
	require.Equal(t, uint32(4), header.EntryCount)
	require.Equal(t, uint32(HeaderSize), header.TimestampPayloadOffset)
	require.Equal(t, uint32(len(data)), header.TotalSize)
}

func TestEncoder_Encode_EmptySeries(t *testing.T) {
	enc, err := NewEncoder("empty")
	require.NoError(t, err)

	data, err := enc.Encode(series.Empty[float64]())
	require.NoError(t, err)

	dec, err := NewDecoder(data)
	require.NoError(t, err)
	require.Equal(t, 0, dec.Len())
	require.Empty(t, dec.Entries())

	got, err := dec.Series()
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}

func TestEncoder_Encode_Reusable(t *testing.T) {
	enc, err := NewEncoder("reuse")
	require.NoError(t, err)

	s := testSeries(t)
	first, err := enc.Encode(s)
	require.NoError(t, err)
	second, err := enc.Encode(s)
	require.NoError(t, err)

	require.Equal(t, first, second)
}
