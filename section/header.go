package section

import (
	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/errs"
)

// TableMeta is the leading table-meta block of the file (spec.md §4.2):
// an 8-byte magic, a monotone format version, a table class tag, the key
// column count, the column count of the single chunk, and the variable-
// length key column position array.
type TableMeta struct {
	FileID             [FileIDSize]byte
	FormatVersion      uint32
	TableClassType     uint32
	KeyLength          int32   // K
	NrOfColsFirstChunk int32   // N
	KeyColPos          []int32 // K entries, 0-based positions of key columns
}

// NewTableMeta builds a TableMeta ready to be filled in and serialized by
// a writer: magic and version set, everything else zero.
func NewTableMeta() *TableMeta {
	return &TableMeta{
		FileID:        FileMagic,
		FormatVersion: CurrentFormatVersion,
	}
}

// Size returns the total byte length of this table-meta block, including
// the variable-length KeyColPos array: TableMetaFixedSize + 4*K.
func (h *TableMeta) Size() int {
	return TableMetaFixedSize + 4*int(h.KeyLength)
}

// Parse decodes a TableMeta from data. data must be at least TableMetaFixedSize
// bytes (the fixed region); once KeyLength is known, data must extend to
// cover h.Size() bytes total.
func (h *TableMeta) Parse(data []byte, engine endian.EndianEngine) error {
	if len(data) < TableMetaFixedSize {
		return errs.Wrap(errs.ErrCorruptHeader, "table-meta shorter than fixed region")
	}

	copy(h.FileID[:], data[0:8])
	if h.FileID != FileMagic {
		return errs.Wrap(errs.ErrNotFstFile, "fileId magic mismatch")
	}

	h.FormatVersion = engine.Uint32(data[8:12])
	if h.FormatVersion > CurrentFormatVersion {
		return errs.Wrapf(errs.ErrVersionTooNew, "file format version %d exceeds reader version %d", h.FormatVersion, CurrentFormatVersion)
	}

	h.TableClassType = engine.Uint32(data[12:16])
	h.KeyLength = int32(engine.Uint32(data[16:20]))
	h.NrOfColsFirstChunk = int32(engine.Uint32(data[20:24]))

	k := int(h.KeyLength)
	if k < 0 {
		return errs.Wrap(errs.ErrCorruptHeader, "negative keyLength")
	}

	if len(data) < TableMetaFixedSize+4*k {
		return errs.Wrap(errs.ErrCorruptHeader, "table-meta shorter than keyColPos region")
	}

	h.KeyColPos = make([]int32, k)
	for i := range h.KeyColPos {
		off := TableMetaFixedSize + 4*i
		h.KeyColPos[i] = int32(engine.Uint32(data[off : off+4]))
	}

	return nil
}

// Bytes serializes the TableMeta into its on-disk layout.
func (h *TableMeta) Bytes(engine endian.EndianEngine) []byte {
	k := len(h.KeyColPos)
	b := make([]byte, TableMetaFixedSize+4*k)

	copy(b[0:8], h.FileID[:])
	engine.PutUint32(b[8:12], h.FormatVersion)
	engine.PutUint32(b[12:16], h.TableClassType)
	engine.PutUint32(b[16:20], uint32(h.KeyLength))
	engine.PutUint32(b[20:24], uint32(h.NrOfColsFirstChunk))

	for i, pos := range h.KeyColPos {
		off := TableMetaFixedSize + 4*i
		engine.PutUint32(b[off:off+4], uint32(pos))
	}

	return b
}
