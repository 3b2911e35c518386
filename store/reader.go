package store

import (
	"bytes"
	"os"

	"github.com/go-fst/fst/column"
	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/stream"
	"github.com/go-fst/fst/section"
)

// ReadRange implements spec.md §4.9's readRange: it re-runs the readMeta
// parse, resolves the requested column selection and row range, and
// dispatches each selected column to its decoder over [startRow, endRow].
// A nil columnSelection selects every column in file order. endRow=-1
// means "through the last row." It returns the selected column names (in
// projection order) and keyIndex, the longest prefix of the table's key
// columns present in the projection, mapped to projection positions.
func ReadRange(s *Store, dest DestTable, columnSelection []string, startRow, endRow int) (selectedNames []string, keyIndex []int, err error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, nil, errs.Wrap(errs.ErrOpenFailure, err.Error())
	}
	defer f.Close()

	meta, r, err := readMetaFrom(f)
	if err != nil {
		return nil, nil, err
	}

	engine := endian.GetLittleEndianEngine()

	if err := r.SeekTo(meta.chunkIndexPos); err != nil {
		return nil, nil, err
	}

	idxBytes, err := r.ReadBytes(section.ChunkIndexSize + 8*meta.NrOfCols)
	if err != nil {
		return nil, nil, err
	}

	idx := &section.ChunkIndex{}
	if err := idx.Parse(idxBytes, meta.NrOfCols, engine); err != nil {
		return nil, nil, err
	}

	colIndex, selectedNames, err := resolveColumnSelection(meta.ColNames, columnSelection)
	if err != nil {
		return nil, nil, err
	}

	firstRow, length, err := resolveRowRange(startRow, endRow, meta.NrOfRows)
	if err != nil {
		return nil, nil, err
	}

	dest.InitTable(len(colIndex), length)

	for projPos, c := range colIndex {
		dest.SetColumnName(projPos, meta.ColNames[c])

		if err := r.SeekTo(int64(idx.PositionData[c])); err != nil {
			return nil, nil, err
		}

		if err := decodeColumnBody(r, engine, dest, meta.ColTypes[c], projPos, c, firstRow, length); err != nil {
			return nil, nil, err
		}
	}

	keyIndex = resolveKeyIndex(meta.KeyColPos, colIndex)

	return selectedNames, keyIndex, nil
}

func decodeColumnBody(r *stream.Reader, engine endian.EndianEngine, dest DestTable, colType format.ColumnType, projPos, c, firstRow, length int) error {
	switch colType {
	case format.CharacterType:
		return column.DecodeStringBlock(r, engine, dest.SetStringColumn(projPos, length), firstRow, length)
	case format.Int32Type:
		return column.DecodeInt32Block(r, engine, dest.SetIntegerColumn(projPos, length), firstRow, length)
	case format.Double64Type:
		return column.DecodeDouble64Block(r, engine, dest.SetDoubleColumn(projPos, length), firstRow, length)
	case format.Bool32Type:
		return column.DecodeBool32Block(r, engine, dest.SetLogicalColumn(projPos, length), firstRow, length)
	case format.FactorType:
		return column.DecodeFactorBlock(r, engine, dest.SetFactorColumn(projPos, length), firstRow, length)
	default:
		return errs.Wrapf(errs.ErrUnknownType, "column %d has type id %d", c, colType)
	}
}

// resolveColumnSelection implements spec.md §4.9 step 3: nil selects all
// columns in file order; otherwise each requested name is matched by an
// exact byte-equal linear scan, first match wins, in caller order.
func resolveColumnSelection(colNames []string, selection []string) ([]int, []string, error) {
	if selection == nil {
		idx := make([]int, len(colNames))
		names := make([]string, len(colNames))
		for i := range colNames {
			idx[i] = i
			names[i] = colNames[i]
		}

		return idx, names, nil
	}

	idx := make([]int, len(selection))
	names := make([]string, len(selection))

	for s, want := range selection {
		found := -1

		for c, have := range colNames {
			if bytes.Equal([]byte(have), []byte(want)) {
				found = c
				break
			}
		}

		if found < 0 {
			return nil, nil, errs.Wrapf(errs.ErrColumnNotFound, "column %q not found", want)
		}

		idx[s] = found
		names[s] = colNames[found]
	}

	return idx, names, nil
}

// resolveRowRange implements spec.md §4.9 step 4.
func resolveRowRange(startRow, endRow, nrOfRows int) (firstRow, length int, err error) {
	firstRow = startRow - 1
	if firstRow < 0 {
		return 0, 0, errs.Wrap(errs.ErrRangeError, "fromRow must be positive")
	}
	if firstRow >= nrOfRows {
		return 0, 0, errs.Wrap(errs.ErrRangeError, "row selection out of range")
	}

	if endRow == -1 {
		return firstRow, nrOfRows - firstRow, nil
	}

	if endRow <= firstRow {
		return 0, 0, errs.Wrap(errs.ErrRangeError, "incorrect row range")
	}

	length = endRow - firstRow
	if max := nrOfRows - firstRow; length > max {
		length = max
	}

	return firstRow, length, nil
}

// resolveKeyIndex implements spec.md §4.9 step 7: keys are a prefix;
// breaking the prefix (a key column absent from the projection) truncates
// keyIndex at that point.
func resolveKeyIndex(keyColPos []int32, colIndex []int) []int {
	keyIndex := make([]int, 0, len(keyColPos))

	for _, p := range keyColPos {
		found := -1

		for s, c := range colIndex {
			if c == int(p) {
				found = s
				break
			}
		}

		if found < 0 {
			break
		}

		keyIndex = append(keyIndex, found)
	}

	return keyIndex
}
