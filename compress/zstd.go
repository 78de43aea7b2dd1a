package compress

// ZstdCompressor stores a dataset as a Zstandard frame. It suits archived
// measurement runs, where the repetitive fixed-notation columns compress
// well and decompression happens once per fit.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd codec with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
