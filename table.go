// Package fst is the top-level convenience API for the columnar table
// file format (spec.md §6): Open attaches to a path, Write/ReadMeta/Read
// wrap the store package's driver, and MemTable is a default in-memory
// implementation of the SourceTable/DestTable collaborator interfaces
// for callers that don't bring their own table type.
package fst

import (
	"github.com/go-fst/fst/column"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/store"
)

// SourceTable is the abstract source table collaborator of spec.md §6:
// it yields column types, lengths, and typed data accessors for Write to
// dispatch on. It is the same shape as store.SourceTable, re-exported
// here so callers implementing their own table type only need to import
// the root package.
type SourceTable = store.SourceTable

// DestTable is the abstract destination table collaborator of spec.md
// §6, re-exported from store.DestTable for the same reason.
type DestTable = store.DestTable

// StringArray is the abstract string-array collaborator of spec.md §6:
// Length/GetElement/SetElement/AllocateArray, used for column-name I/O
// and column selection by callers that want to reuse MemTable's string
// storage convention for their own columns.
type StringArray interface {
	Length() int
	GetElement(i int) (string, bool)
	SetElement(i int, s string, ok bool)
	AllocateArray(n int)
}

// memStringArray is the StringArray implementation backing MemTable's
// CHARACTER columns: a []string of present values plus a parallel
// []bool tracking which rows are missing.
type memStringArray struct {
	vals []string
	ok   []bool
}

func newMemStringArray(n int) *memStringArray {
	return &memStringArray{vals: make([]string, n), ok: make([]bool, n)}
}

func (a *memStringArray) Length() int { return len(a.vals) }

func (a *memStringArray) GetElement(i int) (string, bool) { return a.vals[i], a.ok[i] }

func (a *memStringArray) SetElement(i int, s string, ok bool) {
	a.vals[i] = s
	a.ok[i] = ok
}

func (a *memStringArray) AllocateArray(n int) {
	a.vals = make([]string, n)
	a.ok = make([]bool, n)
}

func (a *memStringArray) Len() int { return a.Length() }

func (a *memStringArray) StringAt(i int) ([]byte, bool) {
	if !a.ok[i] {
		return nil, false
	}

	return []byte(a.vals[i]), true
}

func (a *memStringArray) SetStringAt(i int, s []byte, ok bool) {
	a.ok[i] = ok
	if ok {
		a.vals[i] = string(s)
	}
}

// memIntColumn is MemTable's INT_32 column storage.
type memIntColumn struct {
	vals []int32
	ok   []bool
}

func (c *memIntColumn) Len() int { return len(c.vals) }
func (c *memIntColumn) Int32At(i int) (int32, bool) { return c.vals[i], c.ok[i] }

func (c *memIntColumn) SetInt32At(i int, v int32, ok bool) {
	c.vals[i] = v
	c.ok[i] = ok
}

// memDoubleColumn is MemTable's DOUBLE_64 column storage.
type memDoubleColumn struct {
	vals []float64
	ok   []bool
}

func (c *memDoubleColumn) Len() int { return len(c.vals) }
func (c *memDoubleColumn) Float64At(i int) (float64, bool) { return c.vals[i], c.ok[i] }

func (c *memDoubleColumn) SetFloat64At(i int, v float64, ok bool) {
	c.vals[i] = v
	c.ok[i] = ok
}

// memBoolColumn is MemTable's BOOL_32 column storage.
type memBoolColumn struct {
	vals []bool
	ok   []bool
}

func (c *memBoolColumn) Len() int { return len(c.vals) }
func (c *memBoolColumn) Bool32At(i int) (bool, bool) { return c.vals[i], c.ok[i] }

func (c *memBoolColumn) SetBool32At(i int, v bool, ok bool) {
	c.vals[i] = v
	c.ok[i] = ok
}

// memFactorColumn is MemTable's FACTOR column storage: a parallel
// (code, ok) pair per row plus the shared level-name table.
type memFactorColumn struct {
	codes  []int32
	ok     []bool
	levels []string
}

func (c *memFactorColumn) Len() int { return len(c.codes) }
func (c *memFactorColumn) CodeAt(i int) (int32, bool) { return c.codes[i], c.ok[i] }
func (c *memFactorColumn) Levels() []string { return c.levels }

func (c *memFactorColumn) SetCodeAt(i int, code int32, ok bool) {
	c.codes[i] = code
	c.ok[i] = ok
}

func (c *memFactorColumn) SetLevels(levels []string) { c.levels = levels }

// memColumn is a tagged union over MemTable's five column storage
// kinds, the "tagged variant + capability set" re-architecture spec.md
// §9 recommends in place of the source's polymorphic column access.
type memColumn struct {
	name     string
	colType  format.ColumnType
	str      *memStringArray
	intCol   *memIntColumn
	dblCol   *memDoubleColumn
	boolCol  *memBoolColumn
	factor   *memFactorColumn
}

// MemTable is a default in-memory implementation of SourceTable and
// DestTable (spec.md §6), used by round-trip tests and by callers that
// don't bring their own table type.
type MemTable struct {
	cols     []memColumn
	nrOfRows int
	keyPos   []int32
}

// NewMemTable builds an empty MemTable with nrOfRows rows and no columns
// or keys yet; use AddXColumn to populate it before passing it to
// store.Write.
func NewMemTable(nrOfRows int) *MemTable {
	return &MemTable{nrOfRows: nrOfRows}
}

// SetKeyColPos sets the ordered list of key column positions (spec.md
// §3's keyColPos), must refer to valid positions added via AddXColumn.
func (t *MemTable) SetKeyColPos(pos ...int32) {
	t.keyPos = pos
}

// AddStringColumn appends a CHARACTER column. vals[i]=="" with
// ok[i]==false marks row i missing (distinct from an empty string).
func (t *MemTable) AddStringColumn(name string, vals []string, ok []bool) {
	arr := &memStringArray{vals: vals, ok: ok}
	t.cols = append(t.cols, memColumn{name: name, colType: format.CharacterType, str: arr})
}

// AddIntegerColumn appends an INT_32 column.
func (t *MemTable) AddIntegerColumn(name string, vals []int32, ok []bool) {
	c := &memIntColumn{vals: vals, ok: ok}
	t.cols = append(t.cols, memColumn{name: name, colType: format.Int32Type, intCol: c})
}

// AddDoubleColumn appends a DOUBLE_64 column.
func (t *MemTable) AddDoubleColumn(name string, vals []float64, ok []bool) {
	c := &memDoubleColumn{vals: vals, ok: ok}
	t.cols = append(t.cols, memColumn{name: name, colType: format.Double64Type, dblCol: c})
}

// AddLogicalColumn appends a BOOL_32 column.
func (t *MemTable) AddLogicalColumn(name string, vals []bool, ok []bool) {
	c := &memBoolColumn{vals: vals, ok: ok}
	t.cols = append(t.cols, memColumn{name: name, colType: format.Bool32Type, boolCol: c})
}

// AddFactorColumn appends a FACTOR column: codes are 1-based level
// indices into levels (ok[i]==false marks row i missing).
func (t *MemTable) AddFactorColumn(name string, codes []int32, ok []bool, levels []string) {
	c := &memFactorColumn{codes: codes, ok: ok, levels: levels}
	t.cols = append(t.cols, memColumn{name: name, colType: format.FactorType, factor: c})
}

// NrOfColumns implements SourceTable.
func (t *MemTable) NrOfColumns() int { return len(t.cols) }

// NrOfRows implements SourceTable.
func (t *MemTable) NrOfRows() int { return t.nrOfRows }

// NrOfKeys implements SourceTable.
func (t *MemTable) NrOfKeys() int { return len(t.keyPos) }

// KeyColPos implements SourceTable.
func (t *MemTable) KeyColPos() []int32 { return t.keyPos }

// ColumnName implements SourceTable.
func (t *MemTable) ColumnName(c int) string { return t.cols[c].name }

// ColumnType implements SourceTable.
func (t *MemTable) ColumnType(c int) format.ColumnType { return t.cols[c].colType }

// StringColumn implements SourceTable.
func (t *MemTable) StringColumn(c int) column.StringSource { return t.cols[c].str }

// IntegerColumn implements SourceTable.
func (t *MemTable) IntegerColumn(c int) column.Int32Source { return t.cols[c].intCol }

// DoubleColumn implements SourceTable.
func (t *MemTable) DoubleColumn(c int) column.Double64Source { return t.cols[c].dblCol }

// LogicalColumn implements SourceTable.
func (t *MemTable) LogicalColumn(c int) column.Bool32Source { return t.cols[c].boolCol }

// FactorColumn implements SourceTable.
func (t *MemTable) FactorColumn(c int) column.FactorSource { return t.cols[c].factor }

// InitTable implements DestTable: it resets MemTable to hold nrOfCols
// columns of nrOfRows rows each, types unset until each SetXColumn call.
func (t *MemTable) InitTable(nrOfCols, nrOfRows int) {
	t.cols = make([]memColumn, nrOfCols)
	t.nrOfRows = nrOfRows
}

// SetColumnName implements DestTable.
func (t *MemTable) SetColumnName(c int, name string) { t.cols[c].name = name }

// SetStringColumn implements DestTable: it allocates column c as a
// CHARACTER column of length rows and returns the sink to decode into.
func (t *MemTable) SetStringColumn(c, length int) column.StringSink {
	arr := newMemStringArray(length)
	t.cols[c].colType = format.CharacterType
	t.cols[c].str = arr

	return arr
}

// SetIntegerColumn implements DestTable.
func (t *MemTable) SetIntegerColumn(c, length int) column.Int32Sink {
	col := &memIntColumn{vals: make([]int32, length), ok: make([]bool, length)}
	t.cols[c].colType = format.Int32Type
	t.cols[c].intCol = col

	return col
}

// SetDoubleColumn implements DestTable.
func (t *MemTable) SetDoubleColumn(c, length int) column.Double64Sink {
	col := &memDoubleColumn{vals: make([]float64, length), ok: make([]bool, length)}
	t.cols[c].colType = format.Double64Type
	t.cols[c].dblCol = col

	return col
}

// SetLogicalColumn implements DestTable.
func (t *MemTable) SetLogicalColumn(c, length int) column.Bool32Sink {
	col := &memBoolColumn{vals: make([]bool, length), ok: make([]bool, length)}
	t.cols[c].colType = format.Bool32Type
	t.cols[c].boolCol = col

	return col
}

// SetFactorColumn implements DestTable.
func (t *MemTable) SetFactorColumn(c, length int) column.FactorSink {
	col := &memFactorColumn{codes: make([]int32, length), ok: make([]bool, length)}
	t.cols[c].colType = format.FactorType
	t.cols[c].factor = col

	return col
}

// ColumnNames returns the names of every column currently held, in
// column-position order.
func (t *MemTable) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.name
	}

	return names
}

// StringValues returns column c's values and per-row presence, panicking
// if c is not a CHARACTER column.
func (t *MemTable) StringValues(c int) (vals []string, ok []bool) {
	a := t.cols[c].str
	return a.vals, a.ok
}

// IntegerValues returns column c's values and per-row presence,
// panicking if c is not an INT_32 column.
func (t *MemTable) IntegerValues(c int) (vals []int32, ok []bool) {
	col := t.cols[c].intCol
	return col.vals, col.ok
}

// DoubleValues returns column c's values and per-row presence, panicking
// if c is not a DOUBLE_64 column.
func (t *MemTable) DoubleValues(c int) (vals []float64, ok []bool) {
	col := t.cols[c].dblCol
	return col.vals, col.ok
}

// LogicalValues returns column c's values and per-row presence,
// panicking if c is not a BOOL_32 column.
func (t *MemTable) LogicalValues(c int) (vals []bool, ok []bool) {
	col := t.cols[c].boolCol
	return col.vals, col.ok
}

// FactorValues returns column c's codes, per-row presence, and levels,
// panicking if c is not a FACTOR column.
func (t *MemTable) FactorValues(c int) (codes []int32, ok []bool, levels []string) {
	col := t.cols[c].factor
	return col.codes, col.ok, col.levels
}
