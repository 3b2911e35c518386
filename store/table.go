package store

import (
	"github.com/go-fst/fst/column"
	"github.com/go-fst/fst/format"
)

// SourceTable is the abstract source table collaborator of spec.md §6:
// it yields column types, lengths, and typed data accessors. Write
// dispatches on ColumnType(c) to pick which accessor to call.
//
// It lives in this package rather than the root package so the root
// package's table.go (which provides a concrete MemTable) can depend on
// store without store depending back on it.
type SourceTable interface {
	NrOfColumns() int
	NrOfRows() int
	NrOfKeys() int
	KeyColPos() []int32
	ColumnName(c int) string
	ColumnType(c int) format.ColumnType

	StringColumn(c int) column.StringSource
	IntegerColumn(c int) column.Int32Source
	DoubleColumn(c int) column.Double64Source
	LogicalColumn(c int) column.Bool32Source
	FactorColumn(c int) column.FactorSource
}

// DestTable is the abstract destination table collaborator of spec.md §6.
// InitTable is called once with the projection's final shape; each
// SetXColumn call both allocates that column (the role spec.md's
// "column factory" plays) and returns the sink ReadRange decodes into.
type DestTable interface {
	InitTable(nrOfCols, nrOfRows int)
	SetColumnName(c int, name string)

	SetStringColumn(c, length int) column.StringSink
	SetIntegerColumn(c, length int) column.Int32Sink
	SetDoubleColumn(c, length int) column.Double64Sink
	SetLogicalColumn(c, length int) column.Bool32Sink
	SetFactorColumn(c, length int) column.FactorSink
}
