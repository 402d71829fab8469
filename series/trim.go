package series

import "sort"

// TrimLeft keeps only the domain at or after instant t.
//
// Entries ending at or before t are dropped; an entry straddling t is sliced
// so its kept portion begins exactly at t, preserving its value. Trimming at
// or before the domain start is a no-op returning the receiver verbatim;
// trimming at or past the domain end yields the empty series.
func (s Series[V]) TrimLeft(t int64) Series[V] {
	if len(s.entries) == 0 || t <= s.entries[0].Timestamp {
		return s
	}

	// First entry whose interval extends past t.
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].DefinedUntil() > t
	})
	if idx == len(s.entries) {
		return Series[V]{}
	}

	kept := s.entries[idx:]
	first := kept[0]
	if first.Timestamp >= t {
		return fromTrusted(kept)
	}

	// Straddling entry: slice it to begin at t.
	trimmed := make([]Entry[V], len(kept))
	copy(trimmed, kept)
	trimmed[0] = Entry[V]{Timestamp: t, Value: first.Value, Validity: first.DefinedUntil() - t}

	return fromTrusted(trimmed)
}

// TrimRight keeps only the domain strictly before instant t.
//
// Entries starting at or after t are dropped; an entry straddling t is sliced
// so its kept portion ends exactly at t, preserving its value. Trimming at or
// past the domain end is a no-op returning the receiver verbatim; trimming at
// or before the domain start yields the empty series.
func (s Series[V]) TrimRight(t int64) Series[V] {
	if len(s.entries) == 0 || t >= s.entries[len(s.entries)-1].DefinedUntil() {
		return s
	}

	// First entry starting at or after t; everything before it survives at
	// least partially.
	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Timestamp >= t
	})
	if idx == 0 {
		return Series[V]{}
	}

	kept := s.entries[:idx]
	last := kept[len(kept)-1]
	if last.DefinedUntil() <= t {
		return fromTrusted(kept)
	}

	// Straddling entry: slice it to end at t.
	trimmed := make([]Entry[V], len(kept))
	copy(trimmed, kept)
	trimmed[len(trimmed)-1] = Entry[V]{Timestamp: last.Timestamp, Value: last.Value, Validity: t - last.Timestamp}

	return fromTrusted(trimmed)
}

// TrimLeftDiscrete keeps only entries at or after instant t at whole-entry
// granularity: entries are kept whole or dropped whole, never sliced.
//
// When t falls strictly inside an entry, includeCurrent decides whether that
// entry is kept (true) or dropped (false). When t lands exactly on an entry's
// start, the entry is always kept regardless of the flag.
func (s Series[V]) TrimLeftDiscrete(t int64, includeCurrent bool) Series[V] {
	if len(s.entries) == 0 || t <= s.entries[0].Timestamp {
		return s
	}

	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].DefinedUntil() > t
	})
	if idx == len(s.entries) {
		return Series[V]{}
	}

	first := s.entries[idx]
	if first.Timestamp < t && !includeCurrent {
		// t strictly inside first: drop it whole.
		idx++
	}
	if idx == len(s.entries) {
		return Series[V]{}
	}

	return fromTrusted(s.entries[idx:])
}

// TrimRightDiscrete keeps only entries at or before instant t at whole-entry
// granularity: entries are kept whole or dropped whole, never sliced.
//
// When t falls strictly inside an entry, includeCurrent decides whether that
// entry is kept (true) or dropped (false). When t lands exactly on an entry's
// end (its DefinedUntil), the entry is always kept regardless of the flag.
func (s Series[V]) TrimRightDiscrete(t int64, includeCurrent bool) Series[V] {
	if len(s.entries) == 0 || t >= s.entries[len(s.entries)-1].DefinedUntil() {
		return s
	}

	idx := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].Timestamp >= t
	})
	if idx == 0 {
		return Series[V]{}
	}

	last := s.entries[idx-1]
	if last.DefinedUntil() > t && !includeCurrent {
		// t strictly inside last: drop it whole.
		idx--
	}
	if idx == 0 {
		return Series[V]{}
	}

	return fromTrusted(s.entries[:idx])
}

// SplitAt partitions the series around instant t into the part strictly
// before t and the part at or after t, equivalent to
// (TrimRight(t), TrimLeft(t)).
//
// For t outside the domain one side is empty and the other equals the
// receiver verbatim; the two sides together always cover exactly the
// receiver's domain.
func (s Series[V]) SplitAt(t int64) (before, after Series[V]) {
	return s.TrimRight(t), s.TrimLeft(t)
}
