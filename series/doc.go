// Package series implements an immutable algebra for step-function time
// series: values that are piecewise constant over time, held as an ordered
// collection of (timestamp, value, validity) entries.
//
// A Series is defined on the union of its entries' half-open intervals and
// undefined in the gaps between them. Every operation is a pure function
// returning a new series and preserving the structural invariants (strict
// timestamp ordering, non-overlap, positive validities), which makes series
// values safe to share across goroutines without locking.
//
// # Core Operations
//
//   - Lookup: At, Defined, binary-search point queries into the step function
//   - Windowing: TrimLeft, TrimRight, TrimLeftDiscrete, TrimRightDiscrete, SplitAt
//   - Transformation: Map, MapEntries, Filter, FilterMap and their
//     type-changing package-level forms, each with an optional compression
//     pass merging contiguous equal-valued runs
//   - Gap handling: Fill
//   - Merging: Append, Prepend with newest-provided-data-wins semantics
//   - Aggregation: StepIntegral, SlidingIntegral, SplitEntriesLongerThan, Bucket
//
// # Basic Usage
//
//	s := series.MustNew(
//	    series.MustNewEntry(0, 1.5, 10),
//	    series.MustNewEntry(10, 2.0, 10),
//	    series.MustNewEntry(30, 2.0, 5),
//	)
//
//	v, ok := s.At(12)         // 2.0, true
//	_, ok = s.At(25)          // gap: false
//	left, right := s.SplitAt(10)
//	contiguous := s.Fill(0.0) // close the [20,30) gap with 0.0
//
// Unsorted input goes through Builder, which sorts and canonicalizes before
// constructing a valid series. The blob package consumes the Entries accessor
// to serialize numeric series into compact binary blocks for archival.
package series
