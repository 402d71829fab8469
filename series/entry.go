package series

// Entry represents a value held constant over a half-open time interval.
//
// An entry with timestamp T and validity D defines its value for every instant
// t with T <= t < T+D. Timestamps and validities are plain int64 ticks in a
// caller-defined granularity (seconds, milliseconds, ...); the algebra never
// interprets them as wall-clock time.
//
// The validity of a well-formed entry is always strictly positive. Use
// NewEntry to construct entries with that guarantee; operations in this
// package never produce an entry violating it.
type Entry[V comparable] struct {
	// Timestamp is the inclusive start of the entry's interval.
	Timestamp int64
	// Value is the constant value held over the interval.
	Value V
	// Validity is the length of the interval. Always > 0 for well-formed entries.
	Validity int64
}

// NewEntry creates an entry for value val holding over [timestamp, timestamp+validity).
//
// Returns ErrInvalidValidity if validity is not strictly positive; a zero or
// negative validity describes no instant and is never silently repaired.
func NewEntry[V comparable](timestamp int64, val V, validity int64) (Entry[V], error) {
	if validity <= 0 {
		return Entry[V]{}, ErrInvalidValidity
	}

	return Entry[V]{Timestamp: timestamp, Value: val, Validity: validity}, nil
}

// MustNewEntry is like NewEntry but panics on non-positive validity.
// Intended for literals in tests and examples.
func MustNewEntry[V comparable](timestamp int64, val V, validity int64) Entry[V] {
	e, err := NewEntry(timestamp, val, validity)
	if err != nil {
		panic(err)
	}

	return e
}

// DefinedUntil returns the exclusive end of the entry's interval.
func (e Entry[V]) DefinedUntil() int64 {
	return e.Timestamp + e.Validity
}

// Contains reports whether instant t falls within the entry's half-open interval.
func (e Entry[V]) Contains(t int64) bool {
	return t >= e.Timestamp && t < e.DefinedUntil()
}

// Intersects reports whether the entry's interval overlaps the half-open
// interval [start, end). Empty or inverted query intervals never intersect.
func (e Entry[V]) Intersects(start, end int64) bool {
	return start < end && e.Timestamp < end && start < e.DefinedUntil()
}

// overlapLength returns the length of the intersection between the entry's
// interval and [start, end), or 0 when they are disjoint.
func (e Entry[V]) overlapLength(start, end int64) int64 {
	lo := max(start, e.Timestamp)
	hi := min(end, e.DefinedUntil())
	if hi <= lo {
		return 0
	}

	return hi - lo
}

// Split cuts the entry at instant t into a left part covering [Timestamp, t)
// and a right part covering [t, DefinedUntil()), both carrying the entry's value.
//
// The split only happens for instants strictly inside the interval; for any
// other t the method returns false with zero-valued parts, since slicing at a
// boundary (or outside) would create an empty entry.
func (e Entry[V]) Split(t int64) (left, right Entry[V], ok bool) {
	if t <= e.Timestamp || t >= e.DefinedUntil() {
		return Entry[V]{}, Entry[V]{}, false
	}

	left = Entry[V]{Timestamp: e.Timestamp, Value: e.Value, Validity: t - e.Timestamp}
	right = Entry[V]{Timestamp: t, Value: e.Value, Validity: e.DefinedUntil() - t}

	return left, right, true
}

// SplitLongerThan cuts the entry into consecutive sub-entries of length at
// most maxLength, all carrying the entry's value, with no gaps introduced.
// The final sub-entry carries any remainder shorter than maxLength.
//
// An entry no longer than maxLength is returned unchanged as a single-element
// slice. maxLength must be strictly positive; non-positive values return the
// entry unchanged.
func (e Entry[V]) SplitLongerThan(maxLength int64) []Entry[V] {
	if maxLength <= 0 || e.Validity <= maxLength {
		return []Entry[V]{e}
	}

	parts := make([]Entry[V], 0, (e.Validity+maxLength-1)/maxLength)
	end := e.DefinedUntil()
	for ts := e.Timestamp; ts < end; ts += maxLength {
		parts = append(parts, Entry[V]{
			Timestamp: ts,
			Value:     e.Value,
			Validity:  min(maxLength, end-ts),
		})
	}

	return parts
}

// MergeableWith reports whether next can be merged into the receiver: the two
// entries carry equal values and next starts exactly where the receiver ends.
func (e Entry[V]) MergeableWith(next Entry[V]) bool {
	return e.Value == next.Value && e.DefinedUntil() == next.Timestamp
}

// merged returns the single entry spanning the receiver and next.
// Callers must ensure MergeableWith(next) holds.
func (e Entry[V]) merged(next Entry[V]) Entry[V] {
	return Entry[V]{Timestamp: e.Timestamp, Value: e.Value, Validity: e.Validity + next.Validity}
}
