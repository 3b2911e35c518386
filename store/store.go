// Package store is the table writer/reader driver (spec.md §4.8-§4.9):
// it lays out the table-meta, chunkset header, column-name block, and
// chunk index, dispatches each column to its codec in package column,
// and patches the positions that aren't known until the column bodies
// have been written.
//
// Grounded on the teacher's blob/numeric_encoder.go Finish() two-pass
// pattern (encode everything, then seek back and patch what wasn't
// known up front) and blob/numeric_decoder.go's eager-header-parse
// shape, generalized from "one blob, fixed schema" to "N columns,
// column selection, row-range selection."
package store

import (
	"github.com/go-fst/fst/column"
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"
)

// DefaultRowGroupSize is the number of rows per compression-alignment
// group a Write uses when no WithRowGroupSize option is given.
const DefaultRowGroupSize = column.DefaultRowGroupSize

// Store names an fst file on disk. Per spec.md §5 the file handle is
// exclusively owned for the duration of a single Write or read call;
// Store itself holds no open handle between calls, only the path.
type Store struct {
	path string
}

// Open attaches a Store to path. The file is not created or truncated
// here; Write creates it, and ReadMeta/ReadRange open it read-only.
func Open(path string) (*Store, error) {
	return &Store{path: path}, nil
}

// Append is a stub: the append/colbind path is an open question in
// spec.md §9(a), commented out in the source this format was distilled
// from. It is exposed as a typed error rather than silently missing so
// callers probing for the capability get a clear answer.
func (s *Store) Append(table SourceTable) error {
	return errs.ErrAppendUnsupported
}

func compressionLevelToCodec(level int) format.CodecID {
	switch {
	case level <= 0:
		return format.CodecNone
	case level <= 50:
		return format.CodecLZ4
	default:
		return format.CodecZstd
	}
}
