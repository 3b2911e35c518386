package store

import (
	"github.com/go-fst/fst/column"
	"github.com/go-fst/fst/format"
)

// memTable is a minimal SourceTable/DestTable implementation for store
// package tests, independent of the root package's MemTable so this
// package doesn't have to import it (which would be a cycle: the root
// package imports store).
type memTable struct {
	names    []string
	types    []format.ColumnType
	keyPos   []int32
	nrOfRows int

	strVals [][]string
	strOk   [][]bool

	intVals [][]int32
	intOk   [][]bool

	dblVals [][]float64
	dblOk   [][]bool

	boolVals [][]bool
	boolOk   [][]bool

	factorCodes  [][]int32
	factorOk     [][]bool
	factorLevels [][]string
}

func (t *memTable) NrOfColumns() int    { return len(t.names) }
func (t *memTable) NrOfRows() int       { return t.nrOfRows }
func (t *memTable) NrOfKeys() int       { return len(t.keyPos) }
func (t *memTable) KeyColPos() []int32  { return t.keyPos }
func (t *memTable) ColumnName(c int) string         { return t.names[c] }
func (t *memTable) ColumnType(c int) format.ColumnType { return t.types[c] }

type memStrSrc struct {
	vals []string
	ok   []bool
}

func (s memStrSrc) Len() int { return len(s.vals) }
func (s memStrSrc) StringAt(i int) ([]byte, bool) {
	if !s.ok[i] {
		return nil, false
	}
	return []byte(s.vals[i]), true
}

type memIntSrc struct {
	vals []int32
	ok   []bool
}

func (s memIntSrc) Len() int                      { return len(s.vals) }
func (s memIntSrc) Int32At(i int) (int32, bool)    { return s.vals[i], s.ok[i] }

type memDblSrc struct {
	vals []float64
	ok   []bool
}

func (s memDblSrc) Len() int                         { return len(s.vals) }
func (s memDblSrc) Float64At(i int) (float64, bool)  { return s.vals[i], s.ok[i] }

type memBoolSrc struct {
	vals []bool
	ok   []bool
}

func (s memBoolSrc) Len() int                     { return len(s.vals) }
func (s memBoolSrc) Bool32At(i int) (bool, bool)  { return s.vals[i], s.ok[i] }

type memFactorSrc struct {
	codes  []int32
	ok     []bool
	levels []string
}

func (s memFactorSrc) Len() int                      { return len(s.codes) }
func (s memFactorSrc) CodeAt(i int) (int32, bool)    { return s.codes[i], s.ok[i] }
func (s memFactorSrc) Levels() []string              { return s.levels }

func (t *memTable) StringColumn(c int) column.StringSource {
	return memStrSrc{vals: t.strVals[c], ok: t.strOk[c]}
}

func (t *memTable) IntegerColumn(c int) column.Int32Source {
	return memIntSrc{vals: t.intVals[c], ok: t.intOk[c]}
}

func (t *memTable) DoubleColumn(c int) column.Double64Source {
	return memDblSrc{vals: t.dblVals[c], ok: t.dblOk[c]}
}

func (t *memTable) LogicalColumn(c int) column.Bool32Source {
	return memBoolSrc{vals: t.boolVals[c], ok: t.boolOk[c]}
}

func (t *memTable) FactorColumn(c int) column.FactorSource {
	return memFactorSrc{codes: t.factorCodes[c], ok: t.factorOk[c], levels: t.factorLevels[c]}
}

func newIntTable(name string, vals []int32, ok []bool, keyPos ...int32) *memTable {
	return &memTable{
		names:    []string{name},
		types:    []format.ColumnType{format.Int32Type},
		keyPos:   keyPos,
		nrOfRows: len(vals),
		intVals:  [][]int32{vals},
		intOk:    [][]bool{ok},
	}
}

// memDest is a minimal DestTable for store package tests.
type memDest struct {
	names []string

	intSinks []*memIntSink
}

type memIntSink struct {
	vals []int32
	ok   []bool
}

func (s *memIntSink) SetInt32At(i int, v int32, ok bool) {
	s.vals[i] = v
	s.ok[i] = ok
}

func (d *memDest) InitTable(nrOfCols, nrOfRows int) {
	d.names = make([]string, nrOfCols)
	d.intSinks = make([]*memIntSink, nrOfCols)
}

func (d *memDest) SetColumnName(c int, name string) { d.names[c] = name }

func (d *memDest) SetStringColumn(c, length int) column.StringSink { panic("not used in these tests") }

func (d *memDest) SetIntegerColumn(c, length int) column.Int32Sink {
	s := &memIntSink{vals: make([]int32, length), ok: make([]bool, length)}
	d.intSinks[c] = s
	return s
}

func (d *memDest) SetDoubleColumn(c, length int) column.Double64Sink { panic("not used in these tests") }
func (d *memDest) SetLogicalColumn(c, length int) column.Bool32Sink { panic("not used in these tests") }
func (d *memDest) SetFactorColumn(c, length int) column.FactorSink  { panic("not used in these tests") }
