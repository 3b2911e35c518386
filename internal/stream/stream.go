// Package stream provides the byte-framing primitives (spec.md §4.1)
// that every read/write path in this module goes through: little-endian
// fixed-width integers and fixed-size byte buffers against a seekable
// binary stream. No endianness conversion occurs — the engine parameter
// is always endian.GetLittleEndianEngine() in practice, since the file
// format is little-endian only, but the primitives stay engine-generic
// the way the teacher's encoder/decoder pair takes an endian.EndianEngine
// rather than hardcoding byte order.
package stream

import (
	"fmt"
	"io"

	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/errs"
)

// Writer wraps an io.WriteSeeker with little-endian fixed-width encoding
// helpers. It keeps no internal buffering; every Write call is a direct
// write to the underlying stream.
type Writer struct {
	w      io.WriteSeeker
	engine endian.EndianEngine
	tmp    [8]byte
}

// NewWriter wraps w for framed little-endian writes.
func NewWriter(w io.WriteSeeker, engine endian.EndianEngine) *Writer {
	return &Writer{w: w, engine: engine}
}

// Tell returns the current stream position.
func (sw *Writer) Tell() (int64, error) {
	pos, err := sw.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errs.Wrap(errs.ErrIOError, err.Error())
	}

	return pos, nil
}

// SeekTo moves the stream to an absolute offset.
func (sw *Writer) SeekTo(offset int64) error {
	if _, err := sw.w.Seek(offset, io.SeekStart); err != nil {
		return errs.Wrap(errs.ErrIOError, err.Error())
	}

	return nil
}

// WriteBytes writes data verbatim.
func (sw *Writer) WriteBytes(data []byte) error {
	if _, err := sw.w.Write(data); err != nil {
		return errs.Wrap(errs.ErrIOError, err.Error())
	}

	return nil
}

// WriteUint16 writes v as a little-endian u16.
func (sw *Writer) WriteUint16(v uint16) error {
	sw.engine.PutUint16(sw.tmp[:2], v)
	return sw.WriteBytes(sw.tmp[:2])
}

// WriteUint32 writes v as a little-endian u32.
func (sw *Writer) WriteUint32(v uint32) error {
	sw.engine.PutUint32(sw.tmp[:4], v)
	return sw.WriteBytes(sw.tmp[:4])
}

// WriteInt32 writes v as a little-endian i32 (two's complement).
func (sw *Writer) WriteInt32(v int32) error {
	return sw.WriteUint32(uint32(v))
}

// WriteUint64 writes v as a little-endian u64.
func (sw *Writer) WriteUint64(v uint64) error {
	sw.engine.PutUint64(sw.tmp[:8], v)
	return sw.WriteBytes(sw.tmp[:8])
}

// Reader wraps an io.ReadSeeker with little-endian fixed-width decoding
// helpers.
type Reader struct {
	r      io.ReadSeeker
	engine endian.EndianEngine
	tmp    [8]byte
}

// NewReader wraps r for framed little-endian reads.
func NewReader(r io.ReadSeeker, engine endian.EndianEngine) *Reader {
	return &Reader{r: r, engine: engine}
}

// Tell returns the current stream position.
func (sr *Reader) Tell() (int64, error) {
	pos, err := sr.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, errs.Wrap(errs.ErrIOError, err.Error())
	}

	return pos, nil
}

// SeekTo moves the stream to an absolute offset.
func (sr *Reader) SeekTo(offset int64) error {
	if _, err := sr.r.Seek(offset, io.SeekStart); err != nil {
		return errs.Wrap(errs.ErrIOError, err.Error())
	}

	return nil
}

// ReadBytes reads exactly n bytes.
func (sr *Reader) ReadBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(sr.r, buf); err != nil {
		return nil, errs.Wrap(errs.ErrIOError, fmt.Sprintf("short read: %v", err))
	}

	return buf, nil
}

// ReadUint16 reads a little-endian u16.
func (sr *Reader) ReadUint16() (uint16, error) {
	b, err := sr.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return sr.engine.Uint16(b), nil
}

// ReadUint32 reads a little-endian u32.
func (sr *Reader) ReadUint32() (uint32, error) {
	b, err := sr.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return sr.engine.Uint32(b), nil
}

// ReadInt32 reads a little-endian i32 (two's complement).
func (sr *Reader) ReadInt32() (int32, error) {
	v, err := sr.ReadUint32()
	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

// ReadUint64 reads a little-endian u64.
func (sr *Reader) ReadUint64() (uint64, error) {
	b, err := sr.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return sr.engine.Uint64(b), nil
}
