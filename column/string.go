package column

import (
	"math"

	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/pool"
	"github.com/go-fst/fst/internal/stream"
)

// missingStringLen is the sentinel row length that marks a missing
// string as distinct from an empty one (spec.md §4.5).
const missingStringLen = math.MaxUint32

// StringSource is the abstract provider spec.md §4.5 describes: given a
// row index it yields that row's bytes, or ok=false for a missing row.
type StringSource interface {
	Len() int
	StringAt(i int) (s []byte, ok bool)
}

// StringSink is the abstract receiver spec.md §4.5 describes: it accepts
// string i (relative to the decoded window) with its bytes, or ok=false
// if row i is missing.
type StringSink interface {
	SetStringAt(i int, s []byte, ok bool)
}

// EncodeStringBlock writes src as a length-prefixed, row-group-partitioned
// string block (spec.md §4.5). rowGroupSize <= 0 selects DefaultRowGroupSize.
// Passing format.CodecNone disables compression, as required for the
// column-name block (spec.md §4.3).
func EncodeStringBlock(w *stream.Writer, engine endian.EndianEngine, src StringSource, codecID format.CodecID, rowGroupSize int) error {
	if rowGroupSize <= 0 {
		rowGroupSize = DefaultRowGroupSize
	}

	rowCount := src.Len()
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

		payload := encodeStringGroup(engine, src, start, end)

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

// encodeStringGroup builds the uncompressed payload for rows [start, end):
// a uint32 length table (missingStringLen for missing rows) followed by
// the concatenated present-row bytes.
func encodeStringGroup(engine endian.EndianEngine, src StringSource, start, end int) []byte {
	n := end - start

	buf := pool.GetRowGroupBuffer()
	defer pool.PutRowGroupBuffer(buf)

	buf.ExtendOrGrow(n * 4) // reserve the length table up front

	for i := 0; i < n; i++ {
		s, ok := src.StringAt(start + i)

		var l uint32
		if !ok {
			l = missingStringLen
		} else {
			l = uint32(len(s))
			dataOff := buf.Len()
			buf.ExtendOrGrow(len(s))
			copy(buf.Slice(dataOff, dataOff+len(s)), s)
		}

		engine.PutUint32(buf.Slice(i*4, i*4+4), l)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// DecodeStringBlock reads a string block written by EncodeStringBlock and
// delivers rows [firstRow, firstRow+length) to dst, indexed from 0.
func DecodeStringBlock(r *stream.Reader, engine endian.EndianEngine, dst StringSink, firstRow, length int) error {
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
		if err := decodeStringGroups(r, engine, h, dir, dst, firstRow, length); err != nil {
			return err
		}
	}

	return r.SeekTo(blockEnd(dir, afterDir))
}

func decodeStringGroups(r *stream.Reader, engine endian.EndianEngine, h blockHeader, dir []groupDirEntry, dst StringSink, firstRow, length int) error {
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
		if len(payload) < n*4 {
			return errs.Wrap(errs.ErrCorruptHeader, "string row group shorter than its length table")
		}

		offset := n * 4

		for i := 0; i < n; i++ {
			globalRow := gStart + i
			if globalRow < firstRow || globalRow >= firstRow+length {
				l := engine.Uint32(payload[i*4 : i*4+4])
				if l != missingStringLen {
					offset += int(l)
				}

				continue
			}

			l := engine.Uint32(payload[i*4 : i*4+4])
			if l == missingStringLen {
				dst.SetStringAt(globalRow-firstRow, nil, false)
				continue
			}

			if offset+int(l) > len(payload) {
				return errs.Wrap(errs.ErrCorruptHeader, "string row group payload truncated")
			}

			dst.SetStringAt(globalRow-firstRow, payload[offset:offset+int(l)], true)
			offset += int(l)
		}
	}

	return nil
}
