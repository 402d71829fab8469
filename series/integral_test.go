package series

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimeUnit_Convert(t *testing.T) {
	require.InDelta(t, 10.0, UnitTick.Convert(10), 1e-9)

	msToSec := NewTimeUnit(1e-3)
	require.InDelta(t, 1.5, msToSec.Convert(1500), 1e-9)

	require.Zero(t, UnitTick.Convert(0))
}

func TestSeries_SplitEntriesLongerThan(t *testing.T) {
	s := MustNew(
		MustNewEntry(0, 1, 25),
		MustNewEntry(30, 2, 5),
	)

	split, err := s.SplitEntriesLongerThan(10)

	require.NoError(t, err)
	require.Equal(t, []Entry[int]{
		MustNewEntry(0, 1, 10),
		MustNewEntry(10, 1, 10),
		MustNewEntry(20, 1, 5), // remainder
		MustNewEntry(30, 2, 5), // short enough, untouched
	}, split.Entries())
}

func TestSeries_SplitEntriesLongerThan_NoopWhenShort(t *testing.T) {
	s := MustNew(
		MustNewEntry(0, 1, 10),
		MustNewEntry(10, 2, 10),
	)

	split, err := s.SplitEntriesLongerThan(10)

	require.NoError(t, err)
	require.True(t, split.Equal(s))

	empty, err := Empty[int]().SplitEntriesLongerThan(10)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

func TestSeries_SplitEntriesLongerThan_InvalidLength(t *testing.T) {
	s := MustNew(MustNewEntry(0, 1, 10))

	_, err := s.SplitEntriesLongerThan(0)
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = s.SplitEntriesLongerThan(-5)
	require.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestStepIntegral_ReferenceScenario(t *testing.T) {
	// Reference scenario: [(100,1,10),(110,2,10),(120,3,10)].stepIntegral(10).
	s := MustNew(
		MustNewEntry(100, 1, 10),
		MustNewEntry(110, 2, 10),
		MustNewEntry(120, 3, 10),
	)

	integrated, err := StepIntegral(s, 10, UnitTick)

	require.NoError(t, err)
	require.Equal(t, []Entry[float64]{
		MustNewEntry(100, 10.0, 10),
		MustNewEntry(110, 30.0, 10),
		MustNewEntry(120, 60.0, 10),
	}, integrated.Entries())
}

func TestStepIntegral_SplitsLongEntries(t *testing.T) {
	s := MustNew(MustNewEntry(0, 2, 25))

	integrated, err := StepIntegral(s, 10, UnitTick)

	require.NoError(t, err)
	require.Equal(t, []Entry[float64]{
		MustNewEntry(0, 20.0, 10),
		MustNewEntry(10, 40.0, 10),
		MustNewEntry(20, 50.0, 5),
	}, integrated.Entries())
}

func TestStepIntegral_GapsContributeNothing(t *testing.T) {
	s := MustNew(
		MustNewEntry(0, 1, 10),
		MustNewEntry(50, 1, 10), // long gap in between
	)

	integrated, err := StepIntegral(s, 10, UnitTick)

	require.NoError(t, err)
	require.Equal(t, []Entry[float64]{
		MustNewEntry(0, 10.0, 10),
		MustNewEntry(50, 20.0, 10),
	}, integrated.Entries())
}

func TestStepIntegral_UnitConversion(t *testing.T) {
	s := MustNew(MustNewEntry(0, 4, 500)) // validity in milliseconds

	integrated, err := StepIntegral(s, 1000, NewTimeUnit(1e-3))

	require.NoError(t, err)
	require.InDelta(t, 2.0, integrated.Entries()[0].Value, 1e-9) // 4 * 0.5s
}

func TestStepIntegral_Errors(t *testing.T) {
	s := MustNew(MustNewEntry(0, 1, 10))

	_, err := StepIntegral(s, 0, UnitTick)
	require.ErrorIs(t, err, ErrInvalidPeriod)

	empty, err := StepIntegral(Empty[int](), 10, UnitTick)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}

func TestSlidingIntegral_TrailingWindow(t *testing.T) {
	s := MustNew(
		MustNewEntry(0, 1, 10),
		MustNewEntry(10, 2, 10),
	)

	result, err := SlidingIntegral(s, 10, 10, UnitTick)

	require.NoError(t, err)
	require.Equal(t, []Entry[float64]{
		MustNewEntry(0, 0.0, 10),   // window [-10,0): nothing defined yet
		MustNewEntry(10, 10.0, 10), // window [0,10): 1*10
	}, result.Entries())
}

func TestSlidingIntegral_PartialOverlaps(t *testing.T) {
	s := MustNew(
		MustNewEntry(0, 2, 10),
		MustNewEntry(10, 4, 10),
	)

	result, err := SlidingIntegral(s, 10, 5, UnitTick)

	require.NoError(t, err)
	// Samples at 0, 5, 10, 15 with trailing windows of length 10:
	//   [−10,0): 0, [−5,5): 2*5=10, [0,10): 2*10=20, [5,15): 2*5+4*5=30.
	require.Equal(t, []Entry[float64]{
		MustNewEntry(0, 0.0, 5),
		MustNewEntry(5, 10.0, 5),
		MustNewEntry(10, 20.0, 5),
		MustNewEntry(15, 30.0, 5),
	}, result.Entries())
}

func TestSlidingIntegral_MergesEqualSamples(t *testing.T) {
	s := MustNew(MustNewEntry(0, 0, 20))

	result, err := SlidingIntegral(s, 10, 5, UnitTick)

	require.NoError(t, err)
	// Every sample integrates to 0 over a zero-valued series; equal adjacent
	// samples merge into a single entry spanning the domain.
	require.Equal(t, []Entry[float64]{MustNewEntry(0, 0.0, 20)}, result.Entries())
}

func TestSlidingIntegral_FinalValidityReachesDomainEnd(t *testing.T) {
	s := MustNew(MustNewEntry(0, 1, 12))

	result, err := SlidingIntegral(s, 5, 5, UnitTick)

	require.NoError(t, err)
	last, err := result.Last()
	require.NoError(t, err)
	require.Equal(t, int64(12), last.DefinedUntil())
}

func TestSlidingIntegral_Errors(t *testing.T) {
	s := MustNew(MustNewEntry(0, 1, 10))

	_, err := SlidingIntegral(s, 0, 5, UnitTick)
	require.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = SlidingIntegral(s, 5, 0, UnitTick)
	require.ErrorIs(t, err, ErrInvalidPeriod)

	empty, err := SlidingIntegral(Empty[int](), 5, 5, UnitTick)
	require.NoError(t, err)
	require.True(t, empty.IsEmpty())
}
