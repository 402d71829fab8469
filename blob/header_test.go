package blob

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeader_ParseBytes_RoundTrip(t *testing.T) {
	header := NewHeader(0xDEADBEEF12345678)
	header.EntryCount = 7
	header.ValidityPayloadOffset = 100
	header.ValuePayloadOffset = 150
	header.TotalSize = 300

	var parsed Header
	require.NoError(t, parsed.Parse(header.Bytes()))
	require.Equal(t, *header, parsed)
}

func TestHeader_ParseBytes_RoundTrip_BigEndian(t *testing.T) {
	header := NewHeader(42)
	header.Flag.WithBigEndian()
	header.EntryCount = 3
	header.ValidityPayloadOffset = 64
	header.ValuePayloadOffset = 80
	header.TotalSize = 128

	var parsed Header
	require.NoError(t, parsed.Parse(header.Bytes()))
	require.Equal(t, *header, parsed)
	require.False(t, parsed.Flag.IsLittleEndian())
}

func TestHeader_Parse_RejectsBadOffsets(t *testing.T) {
	header := NewHeader(1)
	header.EntryCount = 1
	header.ValidityPayloadOffset = 40
	header.ValuePayloadOffset = 36 // before validity section
	header.TotalSize = 60

	var parsed Header
	require.ErrorIs(t, parsed.Parse(header.Bytes()), ErrInvalidBlobSize)
}

func TestHeader_Parse_TooShort(t *testing.T) {
	var parsed Header
	require.ErrorIs(t, parsed.Parse(make([]byte, 10)), ErrInvalidHeaderSize)
}
