package compress

// ZstdCompressor provides Zstandard compression for blob payloads.
//
// Zstd trades compression speed for ratio, which suits archival of entry
// blocks that are written once and decompressed rarely. Two implementations
// exist behind build tags: the default pure-Go one (klauspost/compress) and a
// cgo one backed by the reference libzstd (valyala/gozstd), selected with the
// gozstd build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
