// Package blob implements the binary serialization format for float64
// step-function series.
//
// A blob is a fixed 32-byte header followed by three columnar payload
// sections: entry start timestamps, validities and values. Each column uses
// an encoding tuned to step-function statistics (delta-of-delta timestamps,
// varint validities, XOR values) with raw fixed-width fallbacks, and the
// timestamp/validity and value sections can be independently compressed with
// Zstd, S2 or LZ4.
//
// The header stores an xxhash64 hash of the series name so blobs can be
// routed and grouped without decoding payloads.
//
// Basic usage:
//
//	enc, err := blob.NewEncoder("cpu.temperature",
//		blob.WithValueCompression(format.CompressionZstd),
//	)
//	if err != nil {
//		return err
//	}
//
//	data, err := enc.Encode(s)
//	if err != nil {
//		return err
//	}
//
//	dec, err := blob.NewDecoder(data)
//	if err != nil {
//		return err
//	}
//	for entry := range dec.All() {
//		// process entry
//	}
package blob
