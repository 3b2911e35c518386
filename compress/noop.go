package compress

// NoOpCompressor stores row-group payloads uncompressed (format.CodecNone).
//
// Useful for:
//   - columns whose values don't compress well (already-dense floats, high-cardinality strings)
//   - benchmarking the encode/decode path without compression overhead in the mix
//   - small row groups where a codec's fixed overhead would outweigh any size win
//
// Performance characteristics:
//   - Compression: 0 ns/byte (returns the input slice, no copy)
//   - Decompression: 0 ns/byte (returns the input slice, no copy)
//   - Memory overhead: none (no allocation; the output aliases the input)
//   - Compression ratio: 1.0 (no size reduction)
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-operation compressor.
//
// The returned value implements all three interfaces (Compressor, Decompressor,
// and Codec) and simply passes data through unmodified.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data directly without copying.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
