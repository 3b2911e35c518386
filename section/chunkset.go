package section

import (
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"

	"github.com/go-fst/fst/endian"
)

// ChunksetHeader is the fixed-layout block immediately following the
// table-meta's keyColPos array (spec.md §4.3). It carries the row count
// and, per column, a reserved attributes slot plus the logical and
// physical (base) type ids.
type ChunksetHeader struct {
	NextHorzChunkSet uint64 // reserved, writer emits 0
	NextVertChunkSet uint64 // reserved, writer emits 0
	NrOfRows         uint64
	FormatVersion    uint32 // duplicate of table-meta's formatVersion
	NrOfCols         uint32 // duplicate of table-meta's nrOfColsFirstChunk

	ColAttributesType []uint16 // reserved, N entries
	ColTypes          []format.ColumnType
	ColBaseTypes      []format.ColumnType
}

// NewChunksetHeader builds a ChunksetHeader sized for n columns with
// nrOfRows rows; colTypes/colBaseTypes must be filled in by the caller
// before Bytes is called.
func NewChunksetHeader(formatVersion uint32, n int, nrOfRows uint64) *ChunksetHeader {
	return &ChunksetHeader{
		NrOfRows:          nrOfRows,
		FormatVersion:     formatVersion,
		NrOfCols:          uint32(n),
		ColAttributesType: make([]uint16, n),
		ColTypes:          make([]format.ColumnType, n),
		ColBaseTypes:      make([]format.ColumnType, n),
	}
}

// Size returns the total byte length of this chunkset header, including
// the three N-entry arrays: ChunksetHeaderFixedSize + 6*N.
func (c *ChunksetHeader) Size() int {
	return ChunksetHeaderFixedSize + 6*len(c.ColTypes)
}

// Parse decodes a ChunksetHeader from data, which must be at least
// ChunksetHeaderFixedSize + 6*n bytes where n is nrOfColsFirstChunk from
// the table-meta block (the caller already knows n and passes it here
// since it is not self-describing within this block alone).
func (c *ChunksetHeader) Parse(data []byte, n int, engine endian.EndianEngine) error {
	need := ChunksetHeaderFixedSize + 6*n
	if len(data) < need {
		return errs.Wrap(errs.ErrCorruptHeader, "chunkset header shorter than expected")
	}

	c.NextHorzChunkSet = engine.Uint64(data[0:8])
	c.NextVertChunkSet = engine.Uint64(data[8:16])
	c.NrOfRows = engine.Uint64(data[16:24])
	c.FormatVersion = engine.Uint32(data[24:28])
	c.NrOfCols = engine.Uint32(data[28:32])

	c.ColAttributesType = make([]uint16, n)
	c.ColTypes = make([]format.ColumnType, n)
	c.ColBaseTypes = make([]format.ColumnType, n)

	base := ChunksetHeaderFixedSize
	for i := 0; i < n; i++ {
		c.ColAttributesType[i] = engine.Uint16(data[base+2*i : base+2*i+2])
	}

	base += 2 * n
	for i := 0; i < n; i++ {
		c.ColTypes[i] = format.ColumnType(engine.Uint16(data[base+2*i : base+2*i+2]))
	}

	base += 2 * n
	for i := 0; i < n; i++ {
		c.ColBaseTypes[i] = format.ColumnType(engine.Uint16(data[base+2*i : base+2*i+2]))
	}

	return nil
}

// Bytes serializes the ChunksetHeader into its on-disk layout.
func (c *ChunksetHeader) Bytes(engine endian.EndianEngine) []byte {
	n := len(c.ColTypes)
	b := make([]byte, c.Size())

	engine.PutUint64(b[0:8], c.NextHorzChunkSet)
	engine.PutUint64(b[8:16], c.NextVertChunkSet)
	engine.PutUint64(b[16:24], c.NrOfRows)
	engine.PutUint32(b[24:28], c.FormatVersion)
	engine.PutUint32(b[28:32], c.NrOfCols)

	base := ChunksetHeaderFixedSize
	for i := 0; i < n; i++ {
		engine.PutUint16(b[base+2*i:base+2*i+2], c.ColAttributesType[i])
	}

	base += 2 * n
	for i := 0; i < n; i++ {
		engine.PutUint16(b[base+2*i:base+2*i+2], uint16(c.ColTypes[i]))
	}

	base += 2 * n
	for i := 0; i < n; i++ {
		engine.PutUint16(b[base+2*i:base+2*i+2], uint16(c.ColBaseTypes[i]))
	}

	return b
}
