package compress

// ZstdCompressor provides Zstandard compression for ved containers.
//
// Zstd gives the best ratio on hex color text and is the recommended
// choice when documents are archived or sent over the network. Two
// implementations are provided: the default pure-Go encoder from
// klauspost/compress, and a gozstd-backed variant selected with the
// "gozstd" build tag for deployments that already link libzstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
