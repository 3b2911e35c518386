package store

import (
	"os"

	"github.com/go-fst/fst/column"
	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/pool"
	"github.com/go-fst/fst/internal/stream"
	"github.com/go-fst/fst/section"
)

// Write lays out table to s's path in the nine steps of spec.md §4.8:
// table-meta + chunkset header, the column-name block, a placeholder
// chunk index, per-column bodies (recording each column's start
// position), then a rewind to patch the positions that weren't known
// up front. compressionLevel is in [0,100]: 0 (or below) disables
// compression, 1-50 selects LZ4, and 51-100 selects Zstd; opts can
// override the row-group size or force S2.
func Write(s *Store, table SourceTable, compressionLevel int, opts ...WriteOption) (err error) {
	cfg, err := newWriteConfig(compressionLevel, opts)
	if err != nil {
		return err
	}

	n := table.NrOfColumns()
	m := table.NrOfRows()
	if n < 1 || m < 1 {
		return errs.ErrEmptyDataset
	}

	f, err := os.Create(s.path)
	if err != nil {
		return errs.Wrap(errs.ErrOpenFailure, err.Error())
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	engine := endian.GetLittleEndianEngine()
	w := stream.NewWriter(f, engine)

	// headerBuf and indexBuf stage the two regions this function writes
	// twice each (provisional, then patched once the final offsets and
	// row count are known): table-meta+chunkset header, and the chunk
	// index+position directory. Both are built in a pooled whole-table
	// buffer and reset between the provisional and patched write instead
	// of allocating fresh byte slices each pass.
	headerBuf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(headerBuf)

	indexBuf := pool.GetTableBuffer()
	defer pool.PutTableBuffer(indexBuf)

	meta := section.NewTableMeta()
	meta.TableClassType = section.DefaultTableClassType
	meta.KeyLength = int32(table.NrOfKeys())
	meta.NrOfColsFirstChunk = int32(n)
	meta.KeyColPos = table.KeyColPos()

	chunkset := section.NewChunksetHeader(meta.FormatVersion, n, uint64(m))
	for c := 0; c < n; c++ {
		t := table.ColumnType(c)
		if !t.IsValid() {
			return errs.Wrapf(errs.ErrUnknownType, "column %d has type id %d", c, t)
		}

		chunkset.ColTypes[c] = t
		chunkset.ColBaseTypes[c] = t
	}

	// Step 2: table-meta + chunkset header (provisional; rewritten in step 7).
	if err := writeHeaderRegion(w, headerBuf, meta, chunkset, engine); err != nil {
		return err
	}

	// Step 3: column-name block, uncompressed.
	names := make([]string, n)
	for c := 0; c < n; c++ {
		names[c] = table.ColumnName(c)
	}
	if err := column.EncodeStringBlock(w, engine, nameSource(names), format.CodecNone, cfg.rowGroupSize); err != nil {
		return err
	}

	// Step 4: placeholder chunk index + position directory.
	chunkIdxStart, err := w.Tell()
	if err != nil {
		return err
	}

	idx := section.NewChunkIndex(n)
	if err := writeIndexRegion(w, indexBuf, idx, engine); err != nil {
		return err
	}

	// Step 5: column bodies.
	for c := 0; c < n; c++ {
		pos, err := w.Tell()
		if err != nil {
			return err
		}
		idx.PositionData[c] = uint64(pos)

		if err := writeColumnBody(w, engine, table, c, cfg); err != nil {
			return err
		}
	}

	// Step 6: chunkPos[0] = positionData[0] - 8N (start of the directory).
	idx.ChunkPos[0] = idx.PositionData[0] - uint64(8*n)
	idx.ChunkRows[0] = uint64(m)

	// Step 7: rewrite table-meta + chunkset header (values now final).
	if err := w.SeekTo(0); err != nil {
		return err
	}
	if err := writeHeaderRegion(w, headerBuf, meta, chunkset, engine); err != nil {
		return err
	}

	// Step 8: rewrite chunk index + position directory.
	if err := w.SeekTo(chunkIdxStart); err != nil {
		return err
	}
	if err := writeIndexRegion(w, indexBuf, idx, engine); err != nil {
		return err
	}

	// Step 9: close happens in the deferred func above, which also
	// surfaces a close failure if everything up to here succeeded.
	return nil
}

// writeHeaderRegion stages meta's and chunkset's bytes in buf, reusing
// its backing array across the provisional (step 2) and patched
// (step 7) writes, then writes the staged bytes in one call.
func writeHeaderRegion(w *stream.Writer, buf *pool.ByteBuffer, meta *section.TableMeta, chunkset *section.ChunksetHeader, engine endian.EndianEngine) error {
	buf.Reset()
	buf.MustWrite(meta.Bytes(engine))
	buf.MustWrite(chunkset.Bytes(engine))

	return w.WriteBytes(buf.Bytes())
}

// writeIndexRegion stages idx's bytes in buf, reusing its backing array
// across the placeholder (step 4) and patched (step 8) writes.
func writeIndexRegion(w *stream.Writer, buf *pool.ByteBuffer, idx *section.ChunkIndex, engine endian.EndianEngine) error {
	buf.Reset()
	buf.MustWrite(idx.Bytes(engine))

	return w.WriteBytes(buf.Bytes())
}

func writeColumnBody(w *stream.Writer, engine endian.EndianEngine, table SourceTable, c int, cfg *writeConfig) error {
	switch table.ColumnType(c) {
	case format.CharacterType:
		return column.EncodeStringBlock(w, engine, table.StringColumn(c), cfg.codecID, cfg.rowGroupSize)
	case format.Int32Type:
		return column.EncodeInt32Block(w, engine, table.IntegerColumn(c), cfg.codecID, cfg.rowGroupSize)
	case format.Double64Type:
		return column.EncodeDouble64Block(w, engine, table.DoubleColumn(c), cfg.codecID, cfg.rowGroupSize)
	case format.Bool32Type:
		return column.EncodeBool32Block(w, engine, table.LogicalColumn(c), cfg.codecID, cfg.rowGroupSize)
	case format.FactorType:
		return column.EncodeFactorBlock(w, engine, table.FactorColumn(c), cfg.codecID, cfg.rowGroupSize)
	default:
		return errs.Wrapf(errs.ErrUnknownType, "column %d has type id %d", c, table.ColumnType(c))
	}
}

// nameSource adapts a []string of column (or level) names to column.StringSource.
type nameSource []string

func (n nameSource) Len() int { return len(n) }
func (n nameSource) StringAt(i int) ([]byte, bool) {
	return []byte(n[i]), true
}
