// Package compress provides the codecs used to read and write compressed
// regression datasets.
//
// Measurement harnesses often produce thousands of `<x>\t<y>` lines per run
// and archive them next to the results. A dataset may therefore be stored as
// plain text or as a single compressed block; the dataset package picks the
// codec from the file extension and hands the decoded text to the parser.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): plain text, returned as-is
//   - Zstd (format.CompressionZstd, ".zst"): best ratio for archived runs
//   - S2 (format.CompressionS2, ".s2"): fast block format
//   - LZ4 (format.CompressionLZ4, ".lz4"): fast block format, raw LZ4 blocks
//     without a frame header
//
// # Build Tags
//
// Zstd is implemented with github.com/klauspost/compress/zstd by default.
// Building with both cgo and the `gozstd` tag switches to the cgo binding
// github.com/valyala/gozstd. Both produce standard Zstandard frames, so files
// written by one are readable by the other.
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionFromPath(path), "dataset")
//	if err != nil {
//	    return err
//	}
//	text, err := codec.Decompress(raw)
//
// Codecs are stateless values and safe for concurrent use; encoder and
// decoder state is pooled internally.
package compress
