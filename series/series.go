package series

// Series is an immutable, ordered sequence of non-overlapping entries
// describing a step function over time: piecewise constant where defined,
// undefined in the gaps between entries.
//
// Invariants, established at construction and preserved by every operation:
//   - timestamps are strictly increasing
//   - an entry never overlaps its successor (DefinedUntil <= next.Timestamp)
//   - every entry has a strictly positive validity
//
// The zero value is the empty series and is ready to use. A series never
// mutates in place: every transformation returns a new value, so sharing a
// series across goroutines needs no synchronization.
type Series[V comparable] struct {
	entries []Entry[V]
}

// New constructs a series from entries, validating the series invariants.
//
// The entries must already be sorted by timestamp; New rejects out-of-order or
// overlapping input rather than repairing it (use Builder for unsorted input).
//
// Returns ErrInvalidValidity, ErrUnordered or ErrOverlap on the first
// violation encountered. The input slice is copied; the caller keeps ownership
// of its argument.
func New[V comparable](entries ...Entry[V]) (Series[V], error) {
	for i := range entries {
		if entries[i].Validity <= 0 {
			return Series[V]{}, ErrInvalidValidity
		}
		if i == 0 {
			continue
		}
		if entries[i].Timestamp <= entries[i-1].Timestamp {
			return Series[V]{}, ErrUnordered
		}
		if entries[i-1].DefinedUntil() > entries[i].Timestamp {
			return Series[V]{}, ErrOverlap
		}
	}

	if len(entries) == 0 {
		return Series[V]{}, nil
	}

	owned := make([]Entry[V], len(entries))
	copy(owned, entries)

	return Series[V]{entries: owned}, nil
}

// MustNew is like New but panics on invalid input.
// Intended for literals in tests and examples.
func MustNew[V comparable](entries ...Entry[V]) Series[V] {
	s, err := New(entries...)
	if err != nil {
		panic(err)
	}

	return s
}

// Empty returns the empty series.
func Empty[V comparable]() Series[V] {
	return Series[V]{}
}

// fromTrusted wraps entries that are known to satisfy the series invariants,
// without copying or re-validating. Internal construction path for operations
// that derive new entry slices from an already valid series.
func fromTrusted[V comparable](entries []Entry[V]) Series[V] {
	if len(entries) == 0 {
		return Series[V]{}
	}

	return Series[V]{entries: entries}
}

// Len returns the number of entries in the series.
func (s Series[V]) Len() int {
	return len(s.entries)
}

// IsEmpty reports whether the series holds no entries.
func (s Series[V]) IsEmpty() bool {
	return len(s.entries) == 0
}

// Entries returns the ordered entry sequence backing the series.
//
// The returned slice is the series' internal storage: the caller must not
// modify it. This accessor is the hand-off point for collaborators such as
// the binary blob codec.
func (s Series[V]) Entries() []Entry[V] {
	return s.entries
}

// Values returns the entry values in timestamp order as a fresh slice.
func (s Series[V]) Values() []V {
	if len(s.entries) == 0 {
		return nil
	}

	values := make([]V, len(s.entries))
	for i, e := range s.entries {
		values[i] = e.Value
	}

	return values
}

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start int64
	End   int64
}

// Length returns End - Start.
func (iv Interval) Length() int64 {
	return iv.End - iv.Start
}

// LooseDomain returns the single contiguous interval spanning from the first
// entry's start to the last entry's end, ignoring internal gaps.
// The second return value is false for the empty series.
func (s Series[V]) LooseDomain() (Interval, bool) {
	if len(s.entries) == 0 {
		return Interval{}, false
	}

	return Interval{
		Start: s.entries[0].Timestamp,
		End:   s.entries[len(s.entries)-1].DefinedUntil(),
	}, true
}

// Domain returns the distinct intervals on which the series is defined, in
// order. Contiguous entries are coalesced into a single interval regardless
// of their values; the result has one interval per maximal gap-free run.
func (s Series[V]) Domain() []Interval {
	if len(s.entries) == 0 {
		return nil
	}

	intervals := make([]Interval, 0, 1)
	cur := Interval{Start: s.entries[0].Timestamp, End: s.entries[0].DefinedUntil()}
	for _, e := range s.entries[1:] {
		if e.Timestamp == cur.End {
			cur.End = e.DefinedUntil()
			continue
		}
		intervals = append(intervals, cur)
		cur = Interval{Start: e.Timestamp, End: e.DefinedUntil()}
	}

	return append(intervals, cur)
}

// SupportRatio returns the fraction of the loose domain actually covered by
// entries: 1.0 for a fully contiguous series, smaller when gaps exist, and
// 0.0 for the empty series.
func (s Series[V]) SupportRatio() float64 {
	loose, ok := s.LooseDomain()
	if !ok {
		return 0.0
	}

	var covered int64
	for _, e := range s.entries {
		covered += e.Validity
	}

	return float64(covered) / float64(loose.Length())
}

// Equal reports whether the two series hold identical entry sequences.
func (s Series[V]) Equal(other Series[V]) bool {
	if len(s.entries) != len(other.entries) {
		return false
	}
	for i := range s.entries {
		if s.entries[i] != other.entries[i] {
			return false
		}
	}

	return true
}
