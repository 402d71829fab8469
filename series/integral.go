package series

import "sort"

// Number constrains the value types usable with integral operations.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// TimeUnit converts validities expressed in the series' native time
// granularity into the duration units used by integral operations.
//
// The conversion is an explicit multiplicative factor so it can be tested and
// reasoned about independently of the integral computations. UnitTick is the
// identity: an entry's validity is used as its duration unchanged.
type TimeUnit struct {
	factor float64
}

// UnitTick treats one native tick as one duration unit (identity conversion).
var UnitTick = TimeUnit{factor: 1.0}

// NewTimeUnit creates a TimeUnit scaling native ticks by factor. For example,
// a series keyed in milliseconds integrates in seconds with factor 1e-3.
func NewTimeUnit(factor float64) TimeUnit {
	return TimeUnit{factor: factor}
}

// Convert returns the duration of validity native ticks in this unit.
func (u TimeUnit) Convert(validity int64) float64 {
	return float64(validity) * u.factor
}

// SplitEntriesLongerThan cuts every entry whose validity exceeds maxLength
// into consecutive sub-entries of length at most maxLength, carrying the same
// value, with no gaps introduced. The final sub-entry of each cut carries any
// remainder shorter than maxLength.
//
// Returns ErrInvalidPeriod when maxLength is not strictly positive.
func (s Series[V]) SplitEntriesLongerThan(maxLength int64) (Series[V], error) {
	if maxLength <= 0 {
		return Series[V]{}, ErrInvalidPeriod
	}
	if len(s.entries) == 0 {
		return s, nil
	}

	needsSplit := false
	for _, e := range s.entries {
		if e.Validity > maxLength {
			needsSplit = true
			break
		}
	}
	if !needsSplit {
		return s, nil
	}

	split := make([]Entry[V], 0, len(s.entries)+1)
	for _, e := range s.entries {
		split = append(split, e.SplitLongerThan(maxLength)...)
	}

	return fromTrusted(split), nil
}

// StepIntegral computes the running definite integral of the step function.
//
// Entries longer than samplingPeriod are first cut into sub-entries of at
// most that length; then each (sub-)entry's contribution value*duration is
// accumulated left to right, with duration the entry's validity converted by
// unit. Each output entry keeps its timestamp and validity but carries the
// cumulative sum through and including itself: output entry i's value is the
// integral of the step function from the domain start up to its DefinedUntil.
//
// Gaps contribute nothing. Returns ErrInvalidPeriod when samplingPeriod is
// not strictly positive.
func StepIntegral[V Number](s Series[V], samplingPeriod int64, unit TimeUnit) (Series[float64], error) {
	split, err := s.SplitEntriesLongerThan(samplingPeriod)
	if err != nil {
		return Series[float64]{}, err
	}
	if split.Len() == 0 {
		return Series[float64]{}, nil
	}

	sum := 0.0
	integrated := make([]Entry[float64], split.Len())
	for i, e := range split.entries {
		sum += float64(e.Value) * unit.Convert(e.Validity)
		integrated[i] = Entry[float64]{Timestamp: e.Timestamp, Value: sum, Validity: e.Validity}
	}

	return fromTrusted(integrated), nil
}

// SlidingIntegral re-samples the step function at multiples of step starting
// at the domain start. Each output entry's value is the exact definite
// integral of the original step function over the trailing interval of length
// window ending at that sample point, computed from entry overlaps, and its
// validity extends to the next sample point (or to the domain end for the
// final one). Adjacent output entries with equal values are merged.
//
// Returns ErrInvalidPeriod when window or step is not strictly positive.
func SlidingIntegral[V Number](s Series[V], window, step int64, unit TimeUnit) (Series[float64], error) {
	if window <= 0 || step <= 0 {
		return Series[float64]{}, ErrInvalidPeriod
	}
	loose, ok := s.LooseDomain()
	if !ok {
		return Series[float64]{}, nil
	}

	acc := newIntegralAccumulator(s, unit)
	sampled := make([]Entry[float64], 0, (loose.Length()+step-1)/step)
	for ts := loose.Start; ts < loose.End; ts += step {
		validity := min(step, loose.End-ts)
		sampled = append(sampled, Entry[float64]{
			Timestamp: ts,
			Value:     acc.integralOver(ts-window, ts),
			Validity:  validity,
		})
	}

	return fromTrusted(compressEntries(sampled)), nil
}

// integralAccumulator answers exact definite-integral queries over arbitrary
// intervals in O(log n) using per-entry prefix sums.
type integralAccumulator[V Number] struct {
	entries []Entry[V]
	unit    TimeUnit
	// prefix[i] is the integral of entries[0..i-1] in unit-converted duration.
	prefix []float64
}

func newIntegralAccumulator[V Number](s Series[V], unit TimeUnit) *integralAccumulator[V] {
	prefix := make([]float64, len(s.entries)+1)
	for i, e := range s.entries {
		prefix[i+1] = prefix[i] + float64(e.Value)*unit.Convert(e.Validity)
	}

	return &integralAccumulator[V]{entries: s.entries, unit: unit, prefix: prefix}
}

// integralOver returns the exact integral of the step function over [from, to).
func (a *integralAccumulator[V]) integralOver(from, to int64) float64 {
	if from >= to || len(a.entries) == 0 {
		return 0.0
	}

	return a.integralUpTo(to) - a.integralUpTo(from)
}

// integralUpTo returns the integral over (-inf, t).
func (a *integralAccumulator[V]) integralUpTo(t int64) float64 {
	// First entry starting at or after t: all entries before idx may contribute.
	idx := sort.Search(len(a.entries), func(i int) bool {
		return a.entries[i].Timestamp >= t
	})
	if idx == 0 {
		return 0.0
	}

	total := a.prefix[idx-1]
	last := a.entries[idx-1]
	covered := min(t, last.DefinedUntil()) - last.Timestamp
	total += float64(last.Value) * a.unit.Convert(covered)

	return total
}
