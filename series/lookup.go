package series

import "sort"

// At returns the value of the entry whose interval contains instant t.
//
// The second return value is false when t falls in a gap between entries or
// outside the series' domain entirely. The lookup is a binary search over the
// ordered entry sequence, O(log n).
func (s Series[V]) At(t int64) (V, bool) {
	idx, ok := s.indexAt(t)
	if !ok {
		var zero V
		return zero, false
	}

	return s.entries[idx].Value, true
}

// Defined reports whether the series holds a value at instant t.
func (s Series[V]) Defined(t int64) bool {
	_, ok := s.indexAt(t)
	return ok
}

// indexAt returns the index of the entry containing t, if any.
func (s Series[V]) indexAt(t int64) (int, bool) {
	// First entry starting strictly after t; the candidate is its predecessor.
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Timestamp > t
	})
	if idx == 0 {
		return 0, false
	}
	if s.entries[idx-1].Contains(t) {
		return idx - 1, true
	}

	return 0, false
}

// Head returns the first entry of the series, or ErrEmptySeries when empty.
func (s Series[V]) Head() (Entry[V], error) {
	if len(s.entries) == 0 {
		return Entry[V]{}, ErrEmptySeries
	}

	return s.entries[0], nil
}

// HeadOption returns the first entry and true, or a zero entry and false when
// the series is empty.
func (s Series[V]) HeadOption() (Entry[V], bool) {
	if len(s.entries) == 0 {
		return Entry[V]{}, false
	}

	return s.entries[0], true
}

// HeadValue returns the value of the first entry, or ErrEmptySeries when empty.
func (s Series[V]) HeadValue() (V, error) {
	if len(s.entries) == 0 {
		var zero V
		return zero, ErrEmptySeries
	}

	return s.entries[0].Value, nil
}

// HeadValueOption returns the value of the first entry and true, or a zero
// value and false when the series is empty.
func (s Series[V]) HeadValueOption() (V, bool) {
	if len(s.entries) == 0 {
		var zero V
		return zero, false
	}

	return s.entries[0].Value, true
}

// Last returns the final entry of the series, or ErrEmptySeries when empty.
func (s Series[V]) Last() (Entry[V], error) {
	if len(s.entries) == 0 {
		return Entry[V]{}, ErrEmptySeries
	}

	return s.entries[len(s.entries)-1], nil
}

// LastOption returns the final entry and true, or a zero entry and false when
// the series is empty.
func (s Series[V]) LastOption() (Entry[V], bool) {
	if len(s.entries) == 0 {
		return Entry[V]{}, false
	}

	return s.entries[len(s.entries)-1], true
}

// LastValue returns the value of the final entry, or ErrEmptySeries when empty.
func (s Series[V]) LastValue() (V, error) {
	if len(s.entries) == 0 {
		var zero V
		return zero, ErrEmptySeries
	}

	return s.entries[len(s.entries)-1].Value, nil
}

// LastValueOption returns the value of the final entry and true, or a zero
// value and false when the series is empty.
func (s Series[V]) LastValueOption() (V, bool) {
	if len(s.entries) == 0 {
		var zero V
		return zero, false
	}

	return s.entries[len(s.entries)-1].Value, true
}
