package series

import "slices"

// Builder accumulates entries in arbitrary order and produces a valid Series.
//
// It is the construction path for input that is not already sorted and
// validated: Add calls may arrive in any timestamp order, and overlaps are
// resolved at Build time with the newest-data-wins rule of Series.Append: an
// entry starting later wins over an overlapping earlier one, which is sliced
// down to its non-overlapping remainder; among entries sharing a start
// timestamp, the later-added one wins.
//
// A Builder is single-use: after Build it can keep accumulating, and a later
// Build reflects all entries added so far. It is not safe for concurrent use.
type Builder[V comparable] struct {
	entries  []Entry[V]
	compress bool
}

// NewBuilder creates an empty builder. With compress set, Build additionally
// merges contiguous equal-valued runs into single entries.
func NewBuilder[V comparable](compress bool) *Builder[V] {
	return &Builder[V]{compress: compress}
}

// Add appends a (timestamp, value, validity) triple to the builder.
// Returns ErrInvalidValidity for a non-positive validity.
func (b *Builder[V]) Add(timestamp int64, val V, validity int64) error {
	e, err := NewEntry(timestamp, val, validity)
	if err != nil {
		return err
	}
	b.entries = append(b.entries, e)

	return nil
}

// AddEntry appends an existing entry to the builder.
// Returns ErrInvalidValidity for a non-positive validity.
func (b *Builder[V]) AddEntry(e Entry[V]) error {
	if e.Validity <= 0 {
		return ErrInvalidValidity
	}
	b.entries = append(b.entries, e)

	return nil
}

// Len returns the number of entries accumulated so far.
func (b *Builder[V]) Len() int {
	return len(b.entries)
}

// Build sorts the accumulated entries, resolves overlaps and returns the
// resulting series. A later-starting entry wins over an overlapping earlier
// one, which is sliced down to its non-overlapping remainder exactly as
// Series.Append slices a straddling entry; entries sharing a start timestamp
// resolve in favor of the one added last.
//
// Building with no entries yields the empty series. The builder's
// accumulated state is left untouched.
func (b *Builder[V]) Build() Series[V] {
	if len(b.entries) == 0 {
		return Series[V]{}
	}

	// Stable sort keeps insertion order among equal timestamps, so the
	// later-added entry is the one that survives the overlap pass below.
	sorted := make([]Entry[V], len(b.entries))
	copy(sorted, b.entries)
	slices.SortStableFunc(sorted, func(a, c Entry[V]) int {
		switch {
		case a.Timestamp < c.Timestamp:
			return -1
		case a.Timestamp > c.Timestamp:
			return 1
		default:
			return 0
		}
	})

	resolved := make([]Entry[V], 0, len(sorted))
	for _, e := range sorted {
		for len(resolved) > 0 {
			prev := resolved[len(resolved)-1]
			if prev.Timestamp == e.Timestamp {
				// Same start: the later-added entry replaces the earlier one.
				resolved = resolved[:len(resolved)-1]
				continue
			}
			if prev.DefinedUntil() > e.Timestamp {
				// Straddling predecessor: slice it to end where e begins.
				resolved[len(resolved)-1] = Entry[V]{
					Timestamp: prev.Timestamp,
					Value:     prev.Value,
					Validity:  e.Timestamp - prev.Timestamp,
				}
			}
			break
		}
		resolved = append(resolved, e)
	}

	if b.compress {
		resolved = compressEntries(resolved)
	}

	return fromTrusted(resolved)
}
