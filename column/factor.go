package column

import (
	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/stream"
)

// FactorSource is the abstract provider for a FACTOR column: M integer
// level codes in [1..L] (or missing), plus L level names (spec.md §4.7).
type FactorSource interface {
	Len() int
	CodeAt(i int) (code int32, ok bool)
	Levels() []string
}

// FactorSink is the abstract receiver for a FACTOR column.
type FactorSink interface {
	SetCodeAt(i int, code int32, ok bool)
	SetLevels(levels []string)
}

type levelSource []string

func (l levelSource) Len() int { return len(l) }
func (l levelSource) StringAt(i int) ([]byte, bool) {
	return []byte(l[i]), true
}

type levelSink struct {
	levels []string
}

func (s *levelSink) SetStringAt(i int, b []byte, ok bool) {
	if ok {
		s.levels[i] = string(b)
	}
}

type factorCodeSource struct {
	src FactorSource
}

func (f factorCodeSource) Len() int { return f.src.Len() }
func (f factorCodeSource) Int32At(i int) (int32, bool) {
	return f.src.CodeAt(i)
}

type factorCodeSink struct {
	dst FactorSink
}

func (f factorCodeSink) SetInt32At(i int, v int32, ok bool) {
	f.dst.SetCodeAt(i, v, ok)
}

// EncodeFactorBlock writes src as a FACTOR column body: the int32
// level-code sub-block (§4.6) immediately followed by the CHARACTER
// levels sub-block (§4.5). Levels are never compressed independently of
// the codec chosen for the codes; both sub-blocks share codecID.
func EncodeFactorBlock(w *stream.Writer, engine endian.EndianEngine, src FactorSource, codecID format.CodecID, rowGroupSize int) error {
	if err := EncodeInt32Block(w, engine, factorCodeSource{src}, codecID, rowGroupSize); err != nil {
		return err
	}

	return EncodeStringBlock(w, engine, levelSource(src.Levels()), codecID, rowGroupSize)
}

// DecodeFactorBlock reads a FACTOR column body. The level-code sub-block
// is partially decoded over [firstRow, firstRow+length); the levels
// sub-block is always read in full, since levels are typically small
// (spec.md §4.7).
func DecodeFactorBlock(r *stream.Reader, engine endian.EndianEngine, dst FactorSink, firstRow, length int) error {
	if err := DecodeInt32Block(r, engine, factorCodeSink{dst}, firstRow, length); err != nil {
		return err
	}

	// The code sub-block's own header records its total row count, so the
	// stream is already positioned at the start of the levels sub-block
	// regardless of firstRow/length.
	h, err := peekLevelCount(r)
	if err != nil {
		return err
	}

	levels := make([]string, h)
	sink := &levelSink{levels: levels}

	if err := DecodeStringBlock(r, engine, sink, 0, h); err != nil {
		return err
	}

	dst.SetLevels(levels)

	return nil
}

// peekLevelCount reads the levels sub-block's row count without
// consuming the stream position needed by DecodeStringBlock, by reading
// the header then seeking back.
func peekLevelCount(r *stream.Reader) (int, error) {
	start, err := r.Tell()
	if err != nil {
		return 0, err
	}

	h, err := readBlockHeader(r)
	if err != nil {
		return 0, err
	}

	if err := r.SeekTo(start); err != nil {
		return 0, err
	}

	return int(h.rowCount), nil
}
