package section

import (
	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/errs"
)

// ChunkIndex is the fixed 144-byte chunk index plus its variable-length
// 8N-byte position directory (spec.md §4.4). This implementation only
// ever writes a single chunk (NrOfChunksPerIndexRow and NrOfChunks are
// 1, and the reserved chunkPos/chunkRows slots beyond index 0 stay zero)
// and Parse rejects a file that records more than one.
type ChunkIndex struct {
	ChunkPos              [MaxReservedChunks]uint64
	ChunkRows             [MaxReservedChunks]uint64
	NrOfChunksPerIndexRow uint64
	NrOfChunks            uint64

	// PositionData holds, per column, the absolute file offset of that
	// column's body. Length N, written immediately after the chunk index.
	PositionData []uint64
}

// NewChunkIndex builds a ChunkIndex sized for n columns, with the
// single-chunk fields pre-filled.
func NewChunkIndex(n int) *ChunkIndex {
	return &ChunkIndex{
		NrOfChunksPerIndexRow: DefaultNrOfChunksPerIndexRow,
		NrOfChunks:            DefaultNrOfChunks,
		PositionData:          make([]uint64, n),
	}
}

// Size returns ChunkIndexSize + 8*N.
func (ci *ChunkIndex) Size() int {
	return ChunkIndexSize + 8*len(ci.PositionData)
}

// Parse decodes a ChunkIndex from data, which must be at least
// ChunkIndexSize + 8*n bytes. It rejects any file whose nrOfChunks is
// greater than 1 — multi-chunk layouts are not implemented.
func (ci *ChunkIndex) Parse(data []byte, n int, engine endian.EndianEngine) error {
	need := ChunkIndexSize + 8*n
	if len(data) < need {
		return errs.Wrap(errs.ErrCorruptHeader, "chunk index shorter than expected")
	}

	for i := 0; i < MaxReservedChunks; i++ {
		ci.ChunkPos[i] = engine.Uint64(data[8*i : 8*i+8])
	}

	for i := 0; i < MaxReservedChunks; i++ {
		off := 64 + 8*i
		ci.ChunkRows[i] = engine.Uint64(data[off : off+8])
	}

	ci.NrOfChunksPerIndexRow = engine.Uint64(data[128:136])
	ci.NrOfChunks = engine.Uint64(data[136:144])

	if ci.NrOfChunks > 1 {
		return errs.Wrapf(errs.ErrMultiChunkUnsupported, "nrOfChunks=%d", ci.NrOfChunks)
	}

	ci.PositionData = make([]uint64, n)
	for i := 0; i < n; i++ {
		off := ChunkIndexSize + 8*i
		ci.PositionData[i] = engine.Uint64(data[off : off+8])
	}

	return nil
}

// Bytes serializes the ChunkIndex into its on-disk layout.
func (ci *ChunkIndex) Bytes(engine endian.EndianEngine) []byte {
	n := len(ci.PositionData)
	b := make([]byte, ci.Size())

	for i := 0; i < MaxReservedChunks; i++ {
		engine.PutUint64(b[8*i:8*i+8], ci.ChunkPos[i])
	}

	for i := 0; i < MaxReservedChunks; i++ {
		off := 64 + 8*i
		engine.PutUint64(b[off:off+8], ci.ChunkRows[i])
	}

	engine.PutUint64(b[128:136], ci.NrOfChunksPerIndexRow)
	engine.PutUint64(b[136:144], ci.NrOfChunks)

	for i := 0; i < n; i++ {
		off := ChunkIndexSize + 8*i
		engine.PutUint64(b[off:off+8], ci.PositionData[i])
	}

	return b
}
