package column

import (
	"math"

	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/stream"
)

// MissingInt32 is the reserved bit pattern that marks a missing INT_32
// value (spec.md §3); it is also the sentinel used for the level-code
// sub-block of a FACTOR column (spec.md §4.7) and, remapped, for BOOL_32.
const MissingInt32 = math.MinInt32

// Int32Source is the abstract provider for an INT_32 column.
type Int32Source interface {
	Len() int
	Int32At(i int) (v int32, ok bool)
}

// Int32Sink is the abstract receiver for an INT_32 column.
type Int32Sink interface {
	SetInt32At(i int, v int32, ok bool)
}

// EncodeInt32Block writes src as an INT_32 column body (spec.md §4.6).
func EncodeInt32Block(w *stream.Writer, engine endian.EndianEngine, src Int32Source, codecID format.CodecID, rowGroupSize int) error {
	return encodePrimitiveBlock(w, src.Len(), 4, rowGroupSize, codecID, func(dst []byte, i int) {
		v, ok := src.Int32At(i)
		if !ok {
			v = MissingInt32
		}

		engine.PutUint32(dst, uint32(v))
	})
}

// DecodeInt32Block reads rows [firstRow, firstRow+length) of an INT_32
// column body into dst, indexed from 0.
func DecodeInt32Block(r *stream.Reader, engine endian.EndianEngine, dst Int32Sink, firstRow, length int) error {
	return decodePrimitiveBlock(r, 4, firstRow, length, func(globalRow int, raw []byte) {
		v := int32(engine.Uint32(raw))
		if v == MissingInt32 {
			dst.SetInt32At(globalRow-firstRow, 0, false)
			return
		}

		dst.SetInt32At(globalRow-firstRow, v, true)
	})
}
