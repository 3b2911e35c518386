// Package compress provides the compression codecs used to compress
// individual row groups inside a column body (see the column package).
//
// A row group's compressed payload is opaque to the column codecs: they
// only need a Codec for the id recorded once in the column block's header
// (format.CodecID), which every row group of that block shares. This
// package supplies one for each id plus a passthrough for CodecNone.
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - NoOp (format.CodecNone): passthrough, zero overhead.
//   - LZ4 (format.CodecLZ4): very fast decompression, moderate ratio.
//   - Zstd (format.CodecZstd): best ratio, moderate speed; store.Write
//     uses it for every column when compressionLevel is above 50.
//   - S2 (format.CodecS2): fast, Snappy-derived; an extension beyond
//     spec.md's required None/LZ4/Zstd trio, opt-in only (store.WithS2Compression).
//
// # Selecting a codec
//
//	codec, err := compress.GetCodec(format.CodecZstd)
//	compressed, err := codec.Compress(rowGroupPayload)
//	...
//	original, err := codec.Decompress(compressed)
//
// # Thread safety
//
// All codec implementations are safe for concurrent use; compressors and
// decompressors hold no per-call mutable state visible to callers (pooled
// encoder/decoder instances are internal and synchronized via sync.Pool).
package compress
