package series

import "iter"

// Bucket slices the series along an increasing sequence of bucket-start
// timestamps, yielding one (bucketStart, subSeries) pair per boundary.
//
// Each sub-series is the receiver continuously trimmed to
// [bucketStart, nextBucketStart), its straddling entries sliced at the bucket
// edges; the final boundary's bucket extends to the end of the domain. A
// bucket with no overlap with the domain yields the empty series.
//
// The result is lazy: boundaries are consumed one at a time and nothing is
// materialized up front. It has the same length and ordering as the boundary
// sequence and is restartable and finite iff that sequence is.
func (s Series[V]) Bucket(boundaries iter.Seq[int64]) iter.Seq2[int64, Series[V]] {
	return func(yield func(int64, Series[V]) bool) {
		var (
			pending    int64
			hasPending bool
		)
		for boundary := range boundaries {
			if hasPending {
				sub := s.TrimLeft(pending).TrimRight(boundary)
				if !yield(pending, sub) {
					return
				}
			}
			pending = boundary
			hasPending = true
		}
		if hasPending {
			yield(pending, s.TrimLeft(pending))
		}
	}
}

// Boundaries returns a finite, restartable boundary sequence spanning
// [start, end) at the given stride, for use with Bucket. The stride must be
// strictly positive; a non-positive stride yields an empty sequence.
func Boundaries(start, end, stride int64) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		if stride <= 0 {
			return
		}
		for ts := start; ts < end; ts += stride {
			if !yield(ts) {
				return
			}
		}
	}
}
