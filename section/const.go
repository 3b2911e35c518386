// Package section defines the fixed-layout structures that make up the
// head of an fst file: the table-meta block (§4.2), the chunkset header
// (§4.3), and the chunk index + column-position directory (§4.4). Each
// struct mirrors the teacher's NumericHeader shape: a Parse([]byte) error
// / Bytes() []byte pair that walks the layout at fixed byte offsets via
// an endian.EndianEngine, with no bit-packed flags — this format's
// header carries none.
package section

const (
	// TableMetaFixedSize is the size of the table-meta block's fixed
	// fields (fileId, formatVersion, tableClassType, keyLength,
	// nrOfColsFirstChunk), not counting the variable-length keyColPos
	// array that follows at offset 24 (spec.md §4.2).
	TableMetaFixedSize = 24

	// FileIDSize is the width of the magic fileId field.
	FileIDSize = 8

	// ChunksetHeaderFixedSize is the size of the chunkset header's fixed
	// region, not counting the variable-length colAttributesType/colTypes/
	// colBaseTypes arrays (each 2N bytes).
	ChunksetHeaderFixedSize = 32

	// ChunkIndexSize is the fixed size of the chunk index, not counting
	// the variable-length 8N-byte positionData directory.
	ChunkIndexSize = 144

	// MaxReservedChunks is the number of reserved chunkPos/chunkRows
	// slots in the chunk index (8 each, 64 bytes).
	MaxReservedChunks = 8

	// DefaultTableClassType is the value the writer emits for
	// tableClassType: "default table".
	DefaultTableClassType = 1

	// CurrentFormatVersion is the format version this implementation
	// writes and the ceiling a reader accepts; files with a higher
	// formatVersion are rejected (errs.ErrVersionTooNew).
	CurrentFormatVersion = 1

	// DefaultNrOfChunksPerIndexRow and DefaultNrOfChunks are the only
	// values this implementation ever writes; on read, a file with
	// nrOfChunks > 1 is rejected (errs.ErrMultiChunkUnsupported).
	DefaultNrOfChunksPerIndexRow = 1
	DefaultNrOfChunks            = 1
)

// FileMagic is the 8-byte fileId recorded at offset 0 of every file this
// package writes. A file whose leading 8 bytes don't match this exactly
// is rejected with errs.ErrNotFstFile.
var FileMagic = [FileIDSize]byte{'F', 'S', 'T', 'F', 'I', 'L', 'E', 0x01}
