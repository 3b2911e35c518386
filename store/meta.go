package store

import (
	"os"

	"github.com/go-fst/fst/column"
	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/errs"
	"github.com/go-fst/fst/format"
	"github.com/go-fst/fst/internal/fingerprint"
	"github.com/go-fst/fst/internal/stream"
	"github.com/go-fst/fst/section"
)

// MetaHandle is the result of ReadMeta (spec.md §6): the file's schema
// plus its fingerprint. ReadRange does not take a MetaHandle; it parses
// the header again itself.
type MetaHandle struct {
	Version   uint32
	NrOfCols  int
	KeyLength int
	NrOfRows  int
	KeyColPos []int32
	ColTypes  []format.ColumnType
	ColNames  []string

	chunkIndexPos int64
	fingerprint   uint64
}

// Fingerprint returns the xxhash64 digest over the table-meta and
// chunkset header bytes plus the decoded column names, each followed by
// a zero byte (SPEC_FULL.md §5.3), computed once during ReadMeta.
func (h *MetaHandle) Fingerprint() uint64 {
	return h.fingerprint
}

// ReadMeta opens the file at s's path, parses the header (spec.md §4.2),
// validates file ID and version, reads the chunkset header, and reads
// the column-name block. No column body is touched.
func ReadMeta(s *Store) (*MetaHandle, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, errs.Wrap(errs.ErrOpenFailure, err.Error())
	}
	defer f.Close()

	h, _, err := readMetaFrom(f)

	return h, err
}

// readMetaFrom does the §4.9 readMeta parse against an already-open file
// and leaves r positioned at the start of the chunk index, for ReadRange
// to continue from.
func readMetaFrom(f *os.File) (*MetaHandle, *stream.Reader, error) {
	engine := endian.GetLittleEndianEngine()
	r := stream.NewReader(f, engine)

	fixedMeta, err := r.ReadBytes(section.TableMetaFixedSize)
	if err != nil {
		return nil, nil, err
	}

	// Peek keyLength so we know how many more bytes to pull off the
	// stream before handing the whole table-meta block to Parse, which
	// validates magic/version/length together.
	k := int(int32(engine.Uint32(fixedMeta[16:20])))

	var keyBytes []byte
	if k > 0 {
		keyBytes, err = r.ReadBytes(4 * k)
		if err != nil {
			return nil, nil, err
		}
	}

	fullMeta := append(append([]byte{}, fixedMeta...), keyBytes...)

	meta := &section.TableMeta{}
	if err := meta.Parse(fullMeta, engine); err != nil {
		return nil, nil, err
	}

	n := int(meta.NrOfColsFirstChunk)

	chunksetBytes, err := r.ReadBytes(section.ChunksetHeaderFixedSize + 6*n)
	if err != nil {
		return nil, nil, err
	}

	chunkset := &section.ChunksetHeader{}
	if err := chunkset.Parse(chunksetBytes, n, engine); err != nil {
		return nil, nil, err
	}

	names := make([]string, n)
	sink := &stringSliceSink{vals: names}
	if err := column.DecodeStringBlock(r, engine, sink, 0, n); err != nil {
		return nil, nil, err
	}

	chunkIndexPos, err := r.Tell()
	if err != nil {
		return nil, nil, err
	}

	digest := fingerprint.Digest(fullMeta, chunksetBytes, nameBlockDigestBytes(names))

	handle := &MetaHandle{
		Version:       meta.FormatVersion,
		NrOfCols:      n,
		KeyLength:     k,
		NrOfRows:      int(chunkset.NrOfRows),
		KeyColPos:     meta.KeyColPos,
		ColTypes:      chunkset.ColTypes,
		ColNames:      names,
		chunkIndexPos: chunkIndexPos,
		fingerprint:   digest,
	}

	return handle, r, nil
}

func nameBlockDigestBytes(names []string) []byte {
	var total int
	for _, n := range names {
		total += len(n) + 1
	}

	b := make([]byte, 0, total)
	for _, n := range names {
		b = append(b, n...)
		b = append(b, 0)
	}

	return b
}

type stringSliceSink struct {
	vals []string
}

func (s *stringSliceSink) SetStringAt(i int, b []byte, ok bool) {
	if ok {
		s.vals[i] = string(b)
	}
}
