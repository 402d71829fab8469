package series

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeries_At_GapAndBoundary(t *testing.T) {
	// Reference scenario: [(1,111,10),(12,222,10)].
	s := MustNew(
		MustNewEntry(1, 111, 10),
		MustNewEntry(12, 222, 10),
	)

	_, ok := s.At(11) // gap instant
	require.False(t, ok)

	v, ok := s.At(12)
	require.True(t, ok)
	require.Equal(t, 222, v)
}

func TestSeries_At_DomainEdges(t *testing.T) {
	s := MustNew(
		MustNewEntry(10, "a", 5),
		MustNewEntry(20, "b", 5),
	)

	_, ok := s.At(9)
	require.False(t, ok)

	v, ok := s.At(10)
	require.True(t, ok)
	require.Equal(t, "a", v)

	v, ok = s.At(14)
	require.True(t, ok)
	require.Equal(t, "a", v)

	_, ok = s.At(15) // exclusive end of first entry, gap
	require.False(t, ok)

	v, ok = s.At(24)
	require.True(t, ok)
	require.Equal(t, "b", v)

	_, ok = s.At(25) // past the whole domain
	require.False(t, ok)
}

func TestSeries_At_Empty(t *testing.T) {
	_, ok := Empty[int]().At(0)
	require.False(t, ok)
}

func TestSeries_Defined(t *testing.T) {
	s := MustNew(
		MustNewEntry(0, 1, 10),
		MustNewEntry(20, 2, 10),
	)

	require.True(t, s.Defined(0))
	require.True(t, s.Defined(9))
	require.False(t, s.Defined(10))
	require.False(t, s.Defined(15))
	require.True(t, s.Defined(20))
	require.False(t, s.Defined(30))
}

func TestSeries_HeadLast(t *testing.T) {
	s := MustNew(
		MustNewEntry(1, "first", 5),
		MustNewEntry(10, "last", 5),
	)

	head, err := s.Head()
	require.NoError(t, err)
	require.Equal(t, MustNewEntry(1, "first", 5), head)

	last, err := s.Last()
	require.NoError(t, err)
	require.Equal(t, MustNewEntry(10, "last", 5), last)

	hv, err := s.HeadValue()
	require.NoError(t, err)
	require.Equal(t, "first", hv)

	lv, err := s.LastValue()
	require.NoError(t, err)
	require.Equal(t, "last", lv)
}

func TestSeries_HeadLast_EmptyErrors(t *testing.T) {
	empty := Empty[int]()

	_, err := empty.Head()
	require.ErrorIs(t, err, ErrEmptySeries)
	_, err = empty.Last()
	require.ErrorIs(t, err, ErrEmptySeries)
	_, err = empty.HeadValue()
	require.ErrorIs(t, err, ErrEmptySeries)
	_, err = empty.LastValue()
	require.ErrorIs(t, err, ErrEmptySeries)
}

func TestSeries_HeadLastOptions(t *testing.T) {
	s := MustNew(MustNewEntry(1, 42, 5))

	head, ok := s.HeadOption()
	require.True(t, ok)
	require.Equal(t, MustNewEntry(1, 42, 5), head)

	last, ok := s.LastOption()
	require.True(t, ok)
	require.Equal(t, head, last) // singleton: head == last

	hv, ok := s.HeadValueOption()
	require.True(t, ok)
	require.Equal(t, 42, hv)

	lv, ok := s.LastValueOption()
	require.True(t, ok)
	require.Equal(t, 42, lv)

	empty := Empty[int]()
	_, ok = empty.HeadOption()
	require.False(t, ok)
	_, ok = empty.LastOption()
	require.False(t, ok)
	_, ok = empty.HeadValueOption()
	require.False(t, ok)
	_, ok = empty.LastValueOption()
	require.False(t, ok)
}
