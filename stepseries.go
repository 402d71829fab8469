// Package stepseries provides an immutable algebra for step-function time
// series together with a compact binary serialization format.
//
// A step function maps time to values that hold for a known duration: every
// entry carries a start timestamp, a value and a validity, and defines the
// value over the half-open interval [timestamp, timestamp+validity). A series
// is a strictly ordered, non-overlapping collection of such entries; where no
// entry covers a point in time, the series is undefined there.
//
// # Core Features
//
//   - Immutable Series values, every operation returns a new series
//   - Point lookup, trimming, splitting and domain inspection
//   - Transformations: map, filter, fill and run compression
//   - Merging with newest-data-wins append and prepend semantics
//   - Step and sliding-window integrals, bucketed iteration
//   - Columnar binary blobs with delta-of-delta, XOR and varint encodings
//     plus optional Zstd, S2 or LZ4 compression
//
// # Basic Usage
//
// Building and querying a series:
//
//	import "github.com/arloliu/stepseries"
//
//	builder := stepseries.NewBuilder[float64](true)
//	builder.Add(1_000, 20.5, 60)
//	builder.Add(1_060, 20.5, 60)
//	builder.Add(1_120, 21.0, 120)
//	s, err := builder.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if val, ok := s.At(1_030); ok {
//	    fmt.Println(val) // 20.5
//	}
//
// Serializing a float64 series:
//
//	data, err := stepseries.EncodeNumeric("cpu.temperature", s)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	restored, err := stepseries.DecodeNumeric(data)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the series and
// blob packages, simplifying the most common use cases. For the full algebra
// use the series package directly; for fine-grained serialization control
// (encodings, compression, endianness) use the blob package.
package stepseries

import (
	"github.com/arloliu/stepseries/blob"
	"github.com/arloliu/stepseries/internal/hash"
	"github.com/arloliu/stepseries/series"
)

// Entry is an alias for series.Entry.
type Entry[V comparable] = series.Entry[V]

// Series is an alias for series.Series.
type Series[V comparable] = series.Series[V]

// New creates a series from entries that are already ordered, non-overlapping
// and carry positive validities. See series.New.
func New[V comparable](entries ...Entry[V]) (Series[V], error) {
	return series.New(entries...)
}

// NewEntry creates a single validated entry. See series.NewEntry.
func NewEntry[V comparable](timestamp int64, val V, validity int64) (Entry[V], error) {
	return series.NewEntry(timestamp, val, validity)
}

// NewBuilder creates a builder that accepts entries in any order and resolves
// overlaps when building. When compress is true, mergeable runs of equal
// values are compressed into single entries. See series.NewBuilder.
func NewBuilder[V comparable](compress bool) *series.Builder[V] {
	return series.NewBuilder[V](compress)
}

// SeriesID returns the xxhash64 hash of a series name, the same ID stamped
// into blob headers by the encoder.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}

// NewEncoder creates a blob encoder for the named series with custom options.
//
// Available options:
//   - blob.WithLittleEndian() / blob.WithBigEndian()
//   - blob.WithTimestampEncoding(format.TypeRaw|TypeDelta)
//   - blob.WithValueEncoding(format.TypeRaw|TypeXOR)
//   - blob.WithTimestampCompression(format.CompressionNone|Zstd|S2|LZ4)
//   - blob.WithValueCompression(format.CompressionNone|Zstd|S2|LZ4)
func NewEncoder(seriesName string, opts ...blob.EncoderOption) (*blob.Encoder, error) {
	return blob.NewEncoder(seriesName, opts...)
}

// NewDecoder creates a blob decoder. The decoder detects the blob's encoding
// configuration from the header.
func NewDecoder(data []byte) (*blob.Decoder, error) {
	return blob.NewDecoder(data)
}

// EncodeNumeric serializes a float64 series into a blob in one call.
func EncodeNumeric(seriesName string, s Series[float64], opts ...blob.EncoderOption) ([]byte, error) {
	enc, err := blob.NewEncoder(seriesName, opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(s)
}

// DecodeNumeric reconstructs a float64 series from a blob in one call,
// validating the decoded entries.
func DecodeNumeric(data []byte) (Series[float64], error) {
	dec, err := blob.NewDecoder(data)
	if err != nil {
		return series.Empty[float64](), err
	}

	return dec.Series()
}
