// Package format defines the wire-level type enumerations shared by the
// section, compress, column, and store packages: column type ids and
// row-group compression codec ids.
package format

type (
	// ColumnType is the logical/base type discriminator for a column, as
	// stored in the chunkset header's colTypes/colBaseTypes arrays.
	ColumnType uint8

	// CodecID identifies the compression codec applied to a row group.
	CodecID uint8
)

const (
	CharacterType ColumnType = 6 // CharacterType: variable-length string column.
	FactorType    ColumnType = 7 // FactorType: integer level codes + string levels.
	Int32Type     ColumnType = 8 // Int32Type: 32-bit signed integer column.
	Double64Type  ColumnType = 9 // Double64Type: IEEE-754 binary64 column.
	Bool32Type    ColumnType = 10 // Bool32Type: tri-state boolean stored as int32.

	CodecNone CodecID = 0 // CodecNone: row group stored uncompressed.
	CodecLZ4  CodecID = 1 // CodecLZ4: row group compressed with LZ4.
	CodecZstd CodecID = 2 // CodecZstd: row group compressed with Zstandard.
	CodecS2   CodecID = 3 // CodecS2: row group compressed with S2 (extension, opt-in only).
)

// IsValid reports whether c is one of the five column types this format knows.
func (c ColumnType) IsValid() bool {
	switch c {
	case CharacterType, FactorType, Int32Type, Double64Type, Bool32Type:
		return true
	default:
		return false
	}
}

func (c ColumnType) String() string {
	switch c {
	case CharacterType:
		return "Character"
	case FactorType:
		return "Factor"
	case Int32Type:
		return "Int32"
	case Double64Type:
		return "Double64"
	case Bool32Type:
		return "Bool32"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is a codec id this format knows how to decode.
func (c CodecID) IsValid() bool {
	switch c {
	case CodecNone, CodecLZ4, CodecZstd, CodecS2:
		return true
	default:
		return false
	}
}

func (c CodecID) String() string {
	switch c {
	case CodecNone:
		return "None"
	case CodecLZ4:
		return "LZ4"
	case CodecZstd:
		return "Zstd"
	case CodecS2:
		return "S2"
	default:
		return "Unknown"
	}
}
