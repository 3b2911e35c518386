package column

import (
	"math"

	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/stream"
)

// MissingDoubleBits is the reserved NaN bit pattern that marks a missing
// DOUBLE_64 value (spec.md §3), the same payload R's NA_REAL uses so a
// file produced by this encoder round-trips through any reader that
// shares the convention.
const MissingDoubleBits uint64 = 0x7FF00000000007A2

// Double64Source is the abstract provider for a DOUBLE_64 column.
type Double64Source interface {
	Len() int
	Float64At(i int) (v float64, ok bool)
}

// Double64Sink is the abstract receiver for a DOUBLE_64 column.
type Double64Sink interface {
	SetFloat64At(i int, v float64, ok bool)
}

// EncodeDouble64Block writes src as a DOUBLE_64 column body (spec.md §4.6).
func EncodeDouble64Block(w *stream.Writer, engine endian.EndianEngine, src Double64Source, codecID format.CodecID, rowGroupSize int) error {
	return encodePrimitiveBlock(w, src.Len(), 8, rowGroupSize, codecID, func(dst []byte, i int) {
		v, ok := src.Float64At(i)

		bits := MissingDoubleBits
		if ok {
			bits = math.Float64bits(v)
		}

		engine.PutUint64(dst, bits)
	})
}

// DecodeDouble64Block reads rows [firstRow, firstRow+length) of a
// DOUBLE_64 column body into dst, indexed from 0.
func DecodeDouble64Block(r *stream.Reader, engine endian.EndianEngine, dst Double64Sink, firstRow, length int) error {
	return decodePrimitiveBlock(r, 8, firstRow, length, func(globalRow int, raw []byte) {
		bits := engine.Uint64(raw)
		if bits == MissingDoubleBits {
			dst.SetFloat64At(globalRow-firstRow, 0, false)
			return
		}

		dst.SetFloat64At(globalRow-firstRow, math.Float64frombits(bits), true)
	})
}
