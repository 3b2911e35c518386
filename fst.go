package fst

import "github.com/go-fst/fst/store"

// WriteOption configures a Write call beyond the mandatory compression
// level (row-group size, opt-in codec selection); see store.WriteOption.
type WriteOption = store.WriteOption

// MetaHandle is the result of ReadMeta: the file's schema plus its
// fingerprint. Read parses the header again itself and takes no
// MetaHandle.
type MetaHandle = store.MetaHandle

// DefaultRowGroupSize is the number of rows per compression-alignment
// group a Write uses when no WithRowGroupSize option is given.
const DefaultRowGroupSize = store.DefaultRowGroupSize

// WithRowGroupSize overrides DefaultRowGroupSize for a single Write call.
func WithRowGroupSize(n int) WriteOption { return store.WithRowGroupSize(n) }

// WithS2Compression selects the S2 codec instead of the
// compressionLevel-based LZ4/Zstd choice (extension beyond spec.md's
// required codec pair).
func WithS2Compression() WriteOption { return store.WithS2Compression() }

// Store names an fst file on disk (spec.md §6's Store). Open attaches to
// an existing or new path without touching it; Write creates the file,
// ReadMeta/Read open it read-only.
type Store struct {
	s *store.Store
}

// Open attaches a Store to path.
func Open(path string) (*Store, error) {
	s, err := store.Open(path)
	if err != nil {
		return nil, err
	}

	return &Store{s: s}, nil
}

// Write lays out table to the store's path (spec.md §4.8).
// compressionLevel is in [0,100]: 0 disables compression, 1-50 selects
// LZ4, 51-100 selects Zstd. opts can override row-group size or opt into
// the S2 codec.
func Write(s *Store, table SourceTable, compressionLevel int, opts ...WriteOption) error {
	return store.Write(s.s, table, compressionLevel, opts...)
}

// ReadMeta parses the file's header and column-name block without
// touching any column body (spec.md §4.9 readMeta).
func ReadMeta(s *Store) (*MetaHandle, error) {
	return store.ReadMeta(s.s)
}

// Append is a stub: the append/colbind path is an open question in
// spec.md §9(a) and is not implemented. See store.Store.Append.
func (s *Store) Append(table SourceTable) error {
	return s.s.Append(table)
}

// Read resolves columnSelection and the [startRow, endRow] row range and
// decodes the selected columns into dest (spec.md §4.9 readRange). A nil
// columnSelection selects every column in file order; endRow=-1 means
// "through the last row." It returns the selected column names in
// projection order and keyIndex, the longest prefix of the file's key
// columns present in the projection.
func Read(s *Store, dest DestTable, columnSelection []string, startRow, endRow int) (selectedNames []string, keyIndex []int, err error) {
	return store.ReadRange(s.s, dest, columnSelection, startRow, endRow)
}
