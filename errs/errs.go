// Package errs defines the sentinel errors returned by this module.
//
// Every failure kind in spec.md §7 has exactly one sentinel here. Callers
// that need to distinguish failure kinds use errors.Is against these
// values; call sites that want to attach context wrap them with Wrap,
// which keeps errors.Is working through the wrap.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrOpenFailure means the path could not be opened for the required mode.
	ErrOpenFailure = errors.New("fst: path cannot be opened")

	// ErrCorruptHeader means a short read or structural check failed while
	// parsing the table-meta, chunkset header, or chunk index.
	ErrCorruptHeader = errors.New("fst: corrupt header")

	// ErrNotFstFile means the fileId magic did not match.
	ErrNotFstFile = errors.New("fst: not an fst file")

	// ErrVersionTooNew means the file's formatVersion exceeds the reader's own.
	ErrVersionTooNew = errors.New("fst: file from newer version")

	// ErrEmptyDataset means a write was attempted with zero columns or zero rows.
	ErrEmptyDataset = errors.New("fst: empty dataset")

	// ErrUnknownType means a column's type id fell outside {6,7,8,9,10}.
	ErrUnknownType = errors.New("fst: unknown column type")

	// ErrColumnNotFound means a selected column name matched no stored name.
	ErrColumnNotFound = errors.New("fst: selected column not found")

	// ErrRangeError means startRow/endRow failed the range checks in spec.md §4.9 step 4.
	ErrRangeError = errors.New("fst: incorrect row range")

	// ErrMultiChunkUnsupported means nrOfChunks > 1 in the chunk index.
	ErrMultiChunkUnsupported = errors.New("fst: multiple chunks not implemented")

	// ErrIOError wraps an underlying stream read/write failure.
	ErrIOError = errors.New("fst: io error")

	// ErrAppendUnsupported is returned by Store.Append: the append/colbind
	// path is an open question in spec.md §9 and is not implemented.
	ErrAppendUnsupported = errors.New("fst: append not supported")
)

// Wrap attaches detail to a sentinel error while keeping it matchable by
// errors.Is(err, sentinel).
func Wrap(sentinel error, detail string) error {
	return fmt.Errorf("%w: %s", sentinel, detail)
}

// Wrapf is Wrap with printf-style formatting.
func Wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}
