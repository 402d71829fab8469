package series

// compressEntries merges every run of contiguous equal-valued entries in a
// valid entry slice into a single entry. Returns the input slice unchanged
// when no run is mergeable.
func compressEntries[V comparable](entries []Entry[V]) []Entry[V] {
	mergeable := false
	for i := 1; i < len(entries); i++ {
		if entries[i-1].MergeableWith(entries[i]) {
			mergeable = true
			break
		}
	}
	if !mergeable {
		return entries
	}

	merged := make([]Entry[V], 0, len(entries))
	cur := entries[0]
	for _, e := range entries[1:] {
		if cur.MergeableWith(e) {
			cur = cur.merged(e)
			continue
		}
		merged = append(merged, cur)
		cur = e
	}

	return append(merged, cur)
}

// Compress merges every run of contiguous equal-valued entries into a single
// entry spanning the whole run. A series without mergeable runs is returned
// unchanged. The result is canonical: no two adjacent entries are mergeable.
func (s Series[V]) Compress() Series[V] {
	if len(s.entries) < 2 {
		return s
	}

	compressed := compressEntries(s.entries)
	if len(compressed) == len(s.entries) {
		return s
	}

	return fromTrusted(compressed)
}

// Map applies f to every entry value, preserving all entry boundaries.
//
// With compress set, any run of resulting contiguous equal-valued entries is
// merged into a single entry as a post-pass; the timestamps f observes are
// never affected.
func (s Series[V]) Map(f func(V) V, compress bool) Series[V] {
	if len(s.entries) == 0 {
		return s
	}

	mapped := make([]Entry[V], len(s.entries))
	for i, e := range s.entries {
		mapped[i] = Entry[V]{Timestamp: e.Timestamp, Value: f(e.Value), Validity: e.Validity}
	}
	if compress {
		mapped = compressEntries(mapped)
	}

	return fromTrusted(mapped)
}

// MapEntries applies f to every whole entry, enabling time-dependent
// transforms; the resulting value replaces the entry's value while its
// boundaries are preserved. Same compression contract as Map.
func (s Series[V]) MapEntries(f func(Entry[V]) V, compress bool) Series[V] {
	if len(s.entries) == 0 {
		return s
	}

	mapped := make([]Entry[V], len(s.entries))
	for i, e := range s.entries {
		mapped[i] = Entry[V]{Timestamp: e.Timestamp, Value: f(e), Validity: e.Validity}
	}
	if compress {
		mapped = compressEntries(mapped)
	}

	return fromTrusted(mapped)
}

// Filter removes every entry whose value fails the predicate.
//
// Removed entries open gaps: surviving entries are kept untouched, never
// sliced or merged with neighbors. Filtering out everything yields the empty
// series.
func (s Series[V]) Filter(predicate func(V) bool) Series[V] {
	return s.FilterEntries(func(e Entry[V]) bool { return predicate(e.Value) })
}

// FilterEntries removes every entry failing the whole-entry predicate.
// Same gap semantics as Filter.
func (s Series[V]) FilterEntries(predicate func(Entry[V]) bool) Series[V] {
	if len(s.entries) == 0 {
		return s
	}

	kept := make([]Entry[V], 0, len(s.entries))
	for _, e := range s.entries {
		if predicate(e) {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.entries) {
		return s
	}

	return fromTrusted(kept)
}

// FilterMap combines filtering and mapping in one pass: f returns the
// replacement value and whether the entry is kept. Entries mapped to nothing
// are dropped, opening gaps; kept entries preserve their boundaries and take
// the new value. Same compression contract as Map.
func (s Series[V]) FilterMap(f func(V) (V, bool), compress bool) Series[V] {
	return s.FilterMapEntries(func(e Entry[V]) (V, bool) { return f(e.Value) }, compress)
}

// FilterMapEntries is the whole-entry form of FilterMap.
func (s Series[V]) FilterMapEntries(f func(Entry[V]) (V, bool), compress bool) Series[V] {
	if len(s.entries) == 0 {
		return s
	}

	kept := make([]Entry[V], 0, len(s.entries))
	for _, e := range s.entries {
		if v, ok := f(e); ok {
			kept = append(kept, Entry[V]{Timestamp: e.Timestamp, Value: v, Validity: e.Validity})
		}
	}
	if compress {
		kept = compressEntries(kept)
	}

	return fromTrusted(kept)
}

// MapTo applies f to every entry value of s, producing a series over a new
// value type. Boundaries are preserved and the compression contract matches
// Series.Map. Package-level because Go methods cannot introduce type
// parameters.
func MapTo[V, R comparable](s Series[V], f func(V) R, compress bool) Series[R] {
	return MapEntriesTo(s, func(e Entry[V]) R { return f(e.Value) }, compress)
}

// MapEntriesTo is the whole-entry, type-changing form of MapTo.
func MapEntriesTo[V, R comparable](s Series[V], f func(Entry[V]) R, compress bool) Series[R] {
	if s.Len() == 0 {
		return Series[R]{}
	}

	mapped := make([]Entry[R], s.Len())
	for i, e := range s.entries {
		mapped[i] = Entry[R]{Timestamp: e.Timestamp, Value: f(e), Validity: e.Validity}
	}
	if compress {
		mapped = compressEntries(mapped)
	}

	return fromTrusted(mapped)
}

// FilterMapTo is the type-changing form of FilterMap.
func FilterMapTo[V, R comparable](s Series[V], f func(V) (R, bool), compress bool) Series[R] {
	return FilterMapEntriesTo(s, func(e Entry[V]) (R, bool) { return f(e.Value) }, compress)
}

// FilterMapEntriesTo is the whole-entry, type-changing form of FilterMapTo.
func FilterMapEntriesTo[V, R comparable](s Series[V], f func(Entry[V]) (R, bool), compress bool) Series[R] {
	if s.Len() == 0 {
		return Series[R]{}
	}

	kept := make([]Entry[R], 0, s.Len())
	for _, e := range s.entries {
		if v, ok := f(e); ok {
			kept = append(kept, Entry[R]{Timestamp: e.Timestamp, Value: v, Validity: e.Validity})
		}
	}
	if compress {
		kept = compressEntries(kept)
	}

	return fromTrusted(kept)
}
