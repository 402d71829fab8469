package series

// Fill closes every gap in the domain with an entry carrying defaultValue and
// spanning exactly the gap.
//
// A fill entry is merged with its neighbors wherever the merge is possible:
// filling with a value equal to an adjacent entry's value silently extends
// that entry instead of creating a new one. Pre-existing mergeable runs not
// touched by a fill entry are left as they are. A fully contiguous series is
// returned unchanged.
func (s Series[V]) Fill(defaultValue V) Series[V] {
	if len(s.entries) < 2 {
		return s
	}

	hasGap := false
	for i := 1; i < len(s.entries); i++ {
		if s.entries[i-1].DefinedUntil() < s.entries[i].Timestamp {
			hasGap = true
			break
		}
	}
	if !hasGap {
		return s
	}

	filled := make([]Entry[V], 0, 2*len(s.entries)-1)
	filled = append(filled, s.entries[0])
	for _, next := range s.entries[1:] {
		prev := filled[len(filled)-1]
		gapStart := prev.DefinedUntil()
		if gapStart < next.Timestamp {
			gap := Entry[V]{Timestamp: gapStart, Value: defaultValue, Validity: next.Timestamp - gapStart}
			if prev.MergeableWith(gap) {
				filled[len(filled)-1] = prev.merged(gap)
			} else {
				filled = append(filled, gap)
			}
			// The gap entry may also merge forward into next.
			prev = filled[len(filled)-1]
			if prev.Value == defaultValue && prev.MergeableWith(next) {
				filled[len(filled)-1] = prev.merged(next)
				continue
			}
		}
		filled = append(filled, next)
	}

	return fromTrusted(filled)
}
