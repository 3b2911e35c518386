// Package column implements the per-type column body codecs of spec.md
// §4.5-§4.7: a length-prefixed string block (shared by CHARACTER columns
// and the column-name block), a fixed-width primitive block (INT_32,
// DOUBLE_64, BOOL_32), and a factor column that composes the two.
//
// Every codec in this package shares one on-disk frame, grounded on the
// teacher's ColumnarEncoder/ColumnarDecoder shape generalized from "one
// flat buffer" to "row groups of a flat buffer" so that a row-range
// decode only reads the groups it overlaps:
//
//	codecID      u8
//	rowCount     u32
//	rowGroupSize u32
//	nrOfGroups   u32
//	groupDir[nrOfGroups]  { offset u64, compressedLen u32, uncompressedLen u32 }
//	groupBody[0..nrOfGroups)
//
// groupDir entries hold absolute file offsets, patched after the group
// bodies are written, the same rewind-and-overwrite idiom the table
// writer uses for the chunk index (spec.md §4.4/§4.8 step 6-8).
package column

import (
	"github.com/go-fst/fst/compress"
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/stream"
)

// DefaultRowGroupSize is the number of rows per compression-alignment
// group when a caller does not request a specific size.
const DefaultRowGroupSize = 1024

const groupDirEntrySize = 8 + 4 + 4 // offset + compressedLen + uncompressedLen

type blockHeader struct {
	codecID      format.CodecID
	rowCount     uint32
	rowGroupSize uint32
	nrOfGroups   uint32
}

func nrOfGroupsFor(rowCount, rowGroupSize int) int {
	if rowCount == 0 {
		return 0
	}

	return (rowCount + rowGroupSize - 1) / rowGroupSize
}

func writeBlockHeader(w *stream.Writer, h blockHeader) error {
	if err := w.WriteBytes([]byte{byte(h.codecID)}); err != nil {
		return err
	}
	if err := w.WriteUint32(h.rowCount); err != nil {
		return err
	}
	if err := w.WriteUint32(h.rowGroupSize); err != nil {
		return err
	}

	return w.WriteUint32(h.nrOfGroups)
}

func readBlockHeader(r *stream.Reader) (blockHeader, error) {
	idByte, err := r.ReadBytes(1)
	if err != nil {
		return blockHeader{}, err
	}

	h := blockHeader{codecID: format.CodecID(idByte[0])}
	if h.rowCount, err = r.ReadUint32(); err != nil {
		return blockHeader{}, err
	}
	if h.rowGroupSize, err = r.ReadUint32(); err != nil {
		return blockHeader{}, err
	}
	if h.nrOfGroups, err = r.ReadUint32(); err != nil {
		return blockHeader{}, err
	}

	return h, nil
}

type groupDirEntry struct {
	offset          uint64
	compressedLen   uint32
	uncompressedLen uint32
}

// reserveGroupDir writes nrOfGroups placeholder entries and returns the
// stream position at which the directory begins, so it can be patched
// once the real offsets and sizes are known.
func reserveGroupDir(w *stream.Writer, nrOfGroups int) (int64, error) {
	start, err := w.Tell()
	if err != nil {
		return 0, err
	}

	placeholder := make([]byte, nrOfGroups*groupDirEntrySize)
	if err := w.WriteBytes(placeholder); err != nil {
		return 0, err
	}

	return start, nil
}

func writeGroupDir(w *stream.Writer, entries []groupDirEntry) error {
	for _, e := range entries {
		if err := w.WriteUint64(e.offset); err != nil {
			return err
		}
		if err := w.WriteUint32(e.compressedLen); err != nil {
			return err
		}
		if err := w.WriteUint32(e.uncompressedLen); err != nil {
			return err
		}
	}

	return nil
}

func readGroupDir(r *stream.Reader, n int) ([]groupDirEntry, error) {
	entries := make([]groupDirEntry, n)
	for i := range entries {
		offset, err := r.ReadUint64()
		if err != nil {
			return nil, err
		}

		compressedLen, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		uncompressedLen, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		entries[i] = groupDirEntry{offset: offset, compressedLen: compressedLen, uncompressedLen: uncompressedLen}
	}

	return entries, nil
}

// groupRange returns the inclusive [startGroup, endGroup] range of row
// groups overlapping [firstRow, firstRow+length).
func groupRange(rowGroupSize, nrOfGroups, firstRow, length int) (int, int) {
	if length <= 0 || nrOfGroups == 0 {
		return 0, -1
	}

	lastRow := firstRow + length - 1
	startGroup := firstRow / rowGroupSize
	endGroup := lastRow / rowGroupSize

	if endGroup >= nrOfGroups {
		endGroup = nrOfGroups - 1
	}

	return startGroup, endGroup
}

// groupBounds returns the [start, end) row range covered by group g.
func groupBounds(g, rowGroupSize, rowCount int) (int, int) {
	start := g * rowGroupSize
	end := start + rowGroupSize
	if end > rowCount {
		end = rowCount
	}

	return start, end
}

func compressGroup(codecID format.CodecID, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(codecID)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCorruptHeader, err.Error())
	}

	return codec.Compress(data)
}

// blockEnd returns the absolute offset immediately after the last group
// body, so a composed codec (factor.go) can seek past a sub-block
// without tracking its size independently. afterDir is the position
// right after the group directory, used when there are no groups.
func blockEnd(dir []groupDirEntry, afterDir int64) int64 {
	if len(dir) == 0 {
		return afterDir
	}

	last := dir[len(dir)-1]

	return int64(last.offset + uint64(last.compressedLen))
}

func decompressGroup(codecID format.CodecID, data []byte) ([]byte, error) {
	codec, err := compress.GetCodec(codecID)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCorruptHeader, err.Error())
	}

	return codec.Decompress(data)
}
