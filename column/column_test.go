package column

import (
	"bytes"

	"github.com/go-fst/fst/endian"
	"github.com/go-fst/fst/internal/stream"
)

// seekableBuffer adapts a growable []byte into an io.ReadWriteSeeker for
// tests, since *bytes.Buffer has no Seek.
type seekableBuffer struct {
	data []byte
	pos  int64
}

func (s *seekableBuffer) Write(p []byte) (int, error) {
	end := s.pos + int64(len(p))
	if end > int64(len(s.data)) {
		grown := make([]byte, end)
		copy(grown, s.data)
		s.data = grown
	}

	n := copy(s.data[s.pos:end], p)
	s.pos = end

	return n, nil
}

func (s *seekableBuffer) Read(p []byte) (int, error) {
	n := copy(p, s.data[s.pos:])
	s.pos += int64(n)

	if n < len(p) {
		return n, bytes.ErrTooLarge
	}

	return n, nil
}

func (s *seekableBuffer) Seek(offset int64, whence int) (int64, error) {
	switch whence {
	case 0:
		s.pos = offset
	case 1:
		s.pos += offset
	case 2:
		s.pos = int64(len(s.data)) + offset
	}

	return s.pos, nil
}

func newTestWriter(buf *seekableBuffer) *stream.Writer {
	return stream.NewWriter(buf, endian.GetLittleEndianEngine())
}

func newTestReader(buf *seekableBuffer) *stream.Reader {
	buf.pos = 0
	return stream.NewReader(buf, endian.GetLittleEndianEngine())
}
