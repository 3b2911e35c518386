package compress

import (
	"fmt"

	"github.com/go-fst/fst/format"
)

// Compressor compresses a row group's payload bytes.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a row group's compressed payload back to its
// original bytes.
//
// Error conditions:
//   - Returns error if input data is corrupted or invalid
//   - Returns error if data was compressed with an incompatible algorithm
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec is a factory function that creates a Codec for a codec id.
//
// Parameters:
//   - id: codec id (None, LZ4, Zstd, or S2)
//   - target: description of target usage (for error messages)
func CreateCodec(id format.CodecID, target string) (Codec, error) {
	switch id {
	case format.CodecNone:
		return NewNoOpCompressor(), nil
	case format.CodecZstd:
		return NewZstdCompressor(), nil
	case format.CodecS2:
		return NewS2Compressor(), nil
	case format.CodecLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s codec id: %s", target, id)
	}
}

var builtinCodecs = map[format.CodecID]Codec{
	format.CodecNone: NewNoOpCompressor(),
	format.CodecZstd: NewZstdCompressor(),
	format.CodecS2:   NewS2Compressor(),
	format.CodecLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the given codec id.
func GetCodec(id format.CodecID) (Codec, error) {
	if codec, ok := builtinCodecs[id]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported codec id: %s", id)
}
