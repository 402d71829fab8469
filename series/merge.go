package series

// Append combines the receiver with other, letting other win wherever the two
// domains overlap: the receiver is cut off at other's first timestamp, with a
// straddling receiver entry sliced down to its non-overlapping remainder, and
// all of other's entries follow.
//
// With compress set, a mergeable pair across the junction is merged after
// slicing. Appending an empty series returns the receiver verbatim; if other
// starts at or before the receiver's domain, the result equals other's
// entries verbatim; disjoint, correctly ordered operands concatenate plainly.
//
// The incoming series must itself be valid; Append does not reorder it.
func (s Series[V]) Append(other Series[V], compress bool) Series[V] {
	if other.IsEmpty() {
		return s
	}

	kept := s.TrimRight(other.entries[0].Timestamp)
	if kept.IsEmpty() {
		return other
	}

	return joined(kept.entries, other.entries, compress)
}

// Prepend combines the receiver with other, again letting other win on
// overlap, but the receiver's surviving remainder forms the suffix: the
// receiver is cut off below other's domain end and concatenated after all of
// other's entries.
//
// Same compression and degenerate-case contract as Append.
func (s Series[V]) Prepend(other Series[V], compress bool) Series[V] {
	if other.IsEmpty() {
		return s
	}

	kept := s.TrimLeft(other.entries[len(other.entries)-1].DefinedUntil())
	if kept.IsEmpty() {
		return other
	}

	return joined(other.entries, kept.entries, compress)
}

// joined concatenates two valid entry runs where every entry of left ends at
// or before the first entry of right, optionally merging the junction pair.
func joined[V comparable](left, right []Entry[V], compress bool) Series[V] {
	entries := make([]Entry[V], 0, len(left)+len(right))
	entries = append(entries, left...)
	entries = append(entries, right...)

	junction := len(left) - 1
	if compress && entries[junction].MergeableWith(entries[junction+1]) {
		entries[junction] = entries[junction].merged(entries[junction+1])
		entries = append(entries[:junction+1], entries[junction+2:]...)
	}

	return fromTrusted(entries)
}
