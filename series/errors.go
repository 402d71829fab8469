package series

import "errors"

var (
	// ErrInvalidValidity is returned when constructing an entry whose validity
	// is zero or negative.
	ErrInvalidValidity = errors.New("series: entry validity must be positive")

	// ErrUnordered is returned when constructing a series whose entry
	// timestamps are not strictly increasing.
	ErrUnordered = errors.New("series: entry timestamps must be strictly increasing")

	// ErrOverlap is returned when constructing a series in which an entry
	// overlaps its successor.
	ErrOverlap = errors.New("series: entries must not overlap")

	// ErrEmptySeries is returned by Head, Last and their value variants when
	// the series holds no entries.
	ErrEmptySeries = errors.New("series: series is empty")

	// ErrInvalidPeriod is returned by temporal aggregation operations when a
	// sampling period, window or step is not strictly positive.
	ErrInvalidPeriod = errors.New("series: period must be positive")
)
