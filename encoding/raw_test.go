package encoding

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/stepseries/endian"
)

func TestTimestampRawEncoder_RoundTrip(t *testing.T) {
	timestamps := []int64{0, -5, 1_700_000_000_000_000, 42}

	for _, engine := range []endian.EndianEngine{
		endian.GetLittleEndianEngine(),
		endian.GetBigEndianEngine(),
	} {
		enc := NewTimestampRawEncoder(engine)
		enc.WriteSlice(timestamps)

		require.Equal(t, len(timestamps), enc.Len())
		require.Equal(t, len(timestamps)*8, enc.Size())

		dec := NewTimestampRawDecoder(engine)
		decoded := slices.Collect(dec.All(enc.Bytes(), enc.Len()))
		require.Equal(t, timestamps, decoded)

		enc.Finish()
	}
}

func TestTimestampRawDecoder_At(t *testing.T) {
	timestamps := []int64{10, 20, 30}
	engine := endian.GetLittleEndianEngine()

	enc := NewTimestampRawEncoder(engine)
	defer enc.Finish()
	enc.WriteSlice(timestamps)

	dec := NewTimestampRawDecoder(engine)
	for i, want := range timestamps {
		got, ok := dec.At(enc.Bytes(), i, len(timestamps))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := dec.At(enc.Bytes(), 3, len(timestamps))
	require.False(t, ok)
}

func TestTimestampRawDecoder_All_TruncatedPayload(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	enc := NewTimestampRawEncoder(engine)
	defer enc.Finish()
	enc.WriteSlice([]int64{1, 2, 3})

	dec := NewTimestampRawDecoder(engine)
	decoded := slices.Collect(dec.All(enc.Bytes()[:20], 3))
	require.Equal(t, []int64{1, 2}, decoded)
}

func TestValueRawEncoder_RoundTrip(t *testing.T) {
	values := []float64{0, 1.5, -2.25, math.Inf(1), math.MaxFloat64}

	for _, engine := range []endian.EndianEngine{
		endian.GetLittleEndianEngine(),
		endian.GetBigEndianEngine(),
	} {
		enc := NewValueRawEncoder(engine)
		enc.WriteSlice(values)

		require.Equal(t, len(values), enc.Len())
		require.Equal(t, len(values)*8, enc.Size())

		dec := NewValueRawDecoder(engine)
		decoded := slices.Collect(dec.All(enc.Bytes(), enc.Len()))
		require.Equal(t, values, decoded)

		enc.Finish()
	}
}

func TestValueRawDecoder_At(t *testing.T) {
	values := []float64{7.5, -1.25, 0.125}
	engine := endian.GetLittleEndianEngine()

	enc := NewValueRawEncoder(engine)
	defer enc.Finish()
	enc.WriteSlice(values)

	dec := NewValueRawDecoder(engine)
	for i, want := range values {
		got, ok := dec.At(enc.Bytes(), i, len(values))
		require.True(t, ok)
		require.Equal(t, want, got)
	}

	_, ok := dec.At(enc.Bytes(), -1, len(values))
	require.False(t, ok)
}

func TestRawEncoders_EndianMismatch_Detectable(t *testing.T) {
	enc := NewTimestampRawEncoder(endian.GetLittleEndianEngine())
	defer enc.Finish()
	enc.Write(1)

	dec := NewTimestampRawDecoder(endian.GetBigEndianEngine())
	got, ok := dec.At(enc.Bytes(), 0, 1)
	require.True(t, ok)
	require.NotEqual(t, int64(1), got)
}
