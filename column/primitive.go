package column

import (
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/pool"
	"github.com/go-fst/fst/internal/stream"
)

// encodePrimitiveBlock writes rowCount fixed-width rows as a row-group
// partitioned frame (spec.md §4.6). writeRow fills the width-byte slice
// for row i; it is called once per row in file order.
func encodePrimitiveBlock(w *stream.Writer, rowCount, width, rowGroupSize int, codecID format.CodecID, writeRow func(dst []byte, i int)) error {
	if rowGroupSize <= 0 {
		rowGroupSize = DefaultRowGroupSize
	}

	nrOfGroups := nrOfGroupsFor(rowCount, rowGroupSize)

	if err := writeBlockHeader(w, blockHeader{
		codecID:      codecID,
		rowCount:     uint32(rowCount),
		rowGroupSize: uint32(rowGroupSize),
		nrOfGroups:   uint32(nrOfGroups),
	}); err != nil {
		return err
	}

	dirStart, err := reserveGroupDir(w, nrOfGroups)
	if err != nil {
		return err
	}

	entries := make([]groupDirEntry, nrOfGroups)

	for g := 0; g < nrOfGroups; g++ {
		start, end := groupBounds(g, rowGroupSize, rowCount)
		n := end - start

		buf := pool.GetRowGroupBuffer()
		buf.ExtendOrGrow(n * width)
		for i := 0; i < n; i++ {
			writeRow(buf.Slice(i*width, i*width+width), start+i)
		}

		payload := make([]byte, buf.Len())
		copy(payload, buf.Bytes())
		pool.PutRowGroupBuffer(buf)

		compressed, err := compressGroup(codecID, payload)
		if err != nil {
			return err
		}

		offset, err := w.Tell()
		if err != nil {
			return err
		}

		if err := w.WriteBytes(compressed); err != nil {
			return err
		}

		entries[g] = groupDirEntry{
			offset:          uint64(offset),
			compressedLen:   uint32(len(compressed)),
			uncompressedLen: uint32(len(payload)),
		}
	}

	endPos, err := w.Tell()
	if err != nil {
		return err
	}

	if err := w.SeekTo(dirStart); err != nil {
		return err
	}
	if err := writeGroupDir(w, entries); err != nil {
		return err
	}

	return w.SeekTo(endPos)
}

// decodePrimitiveBlock reads a frame written by encodePrimitiveBlock and
// calls readRow once for every row in [firstRow, firstRow+length), in
// ascending row order, with the width-byte slice for that row.
func decodePrimitiveBlock(r *stream.Reader, width int, firstRow, length int, readRow func(globalRow int, raw []byte)) error {
	h, err := readBlockHeader(r)
	if err != nil {
		return err
	}

	dir, err := readGroupDir(r, int(h.nrOfGroups))
	if err != nil {
		return err
	}

	afterDir, err := r.Tell()
	if err != nil {
		return err
	}

	if length > 0 {
		if err := decodePrimitiveGroups(r, h, dir, width, firstRow, length, readRow); err != nil {
			return err
		}
	}

	return r.SeekTo(blockEnd(dir, afterDir))
}

func decodePrimitiveGroups(r *stream.Reader, h blockHeader, dir []groupDirEntry, width, firstRow, length int, readRow func(globalRow int, raw []byte)) error {
	rowGroupSize := int(h.rowGroupSize)
	rowCount := int(h.rowCount)
	startGroup, endGroup := groupRange(rowGroupSize, int(h.nrOfGroups), firstRow, length)

	for g := startGroup; g <= endGroup; g++ {
		gStart, gEnd := groupBounds(g, rowGroupSize, rowCount)

		if err := r.SeekTo(int64(dir[g].offset)); err != nil {
			return err
		}

		compressed, err := r.ReadBytes(int(dir[g].compressedLen))
		if err != nil {
			return err
		}

		payload, err := decompressGroup(h.codecID, compressed)
		if err != nil {
			return errs.Wrap(errs.ErrCorruptHeader, err.Error())
		}

		n := gEnd - gStart
		if len(payload) < n*width {
			return errs.Wrap(errs.ErrCorruptHeader, "primitive row group shorter than expected")
		}

		for i := 0; i < n; i++ {
			globalRow := gStart + i
			if globalRow < firstRow || globalRow >= firstRow+length {
				continue
			}

			readRow(globalRow, payload[i*width:i*width+width])
		}
	}

	return nil
}
