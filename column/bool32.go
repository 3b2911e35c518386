package column

import (
	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/stream"
)

// Bool32Source is the abstract provider for a BOOL_32 column.
type Bool32Source interface {
	Len() int
	Bool32At(i int) (v bool, ok bool)
}

// Bool32Sink is the abstract receiver for a BOOL_32 column.
type Bool32Sink interface {
	SetBool32At(i int, v bool, ok bool)
}

// EncodeBool32Block writes src as a BOOL_32 column body (spec.md §4.6):
// a tri-state reusing the INT_32 frame, 1/0 for true/false and
// MissingInt32 for missing.
func EncodeBool32Block(w *stream.Writer, engine endian.EndianEngine, src Bool32Source, codecID format.CodecID, rowGroupSize int) error {
	return encodePrimitiveBlock(w, src.Len(), 4, rowGroupSize, codecID, func(dst []byte, i int) {
		v, ok := src.Bool32At(i)

		var wire int32
		switch {
		case !ok:
			wire = MissingInt32
		case v:
			wire = 1
		default:
			wire = 0
		}

		engine.PutUint32(dst, uint32(wire))
	})
}

// DecodeBool32Block reads rows [firstRow, firstRow+length) of a BOOL_32
// column body into dst, indexed from 0.
func DecodeBool32Block(r *stream.Reader, engine endian.EndianEngine, dst Bool32Sink, firstRow, length int) error {
	return decodePrimitiveBlock(r, 4, firstRow, length, func(globalRow int, raw []byte) {
		wire := int32(engine.Uint32(raw))
		if wire == MissingInt32 {
			dst.SetBool32At(globalRow-firstRow, false, false)
			return
		}

		dst.SetBool32At(globalRow-firstRow, wire != 0, true)
	})
}
