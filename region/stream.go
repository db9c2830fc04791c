package region

import (
	"errors"
	"io"
)

// Reader reads a Region sequentially from its start. It implements io.Reader
// and io.Seeker with offsets relative to the region.
type Reader struct {
	r   Region
	pos uint64
}

// NewReader returns a Reader positioned at the start of r.
func (r Region) NewReader() *Reader {
	return &Reader{r: r}
}

// Read implements io.Reader. It returns io.EOF at the region's end, or
// earlier if the underlying file ends inside the region.
func (rd *Reader) Read(p []byte) (int, error) {
	if rd.pos >= rd.r.Len() {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	n, err := rd.r.Read(rd.pos, p)
	rd.pos += uint64(n)
	if err != nil {
		return n, err
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Seek implements io.Seeker relative to the region. Seeking past the end is
// allowed; the next Read returns io.EOF.
func (rd *Reader) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = int64(rd.pos)
	case io.SeekEnd:
		base = int64(rd.r.Len())
	default:
		return 0, errors.New("region: invalid whence")
	}
	abs := base + offset
	if abs < 0 {
		return 0, errors.New("region: negative position")
	}
	rd.pos = uint64(abs)
	return abs, nil
}

// Offset returns the current region-relative position.
func (rd *Reader) Offset() uint64 { return rd.pos }

// Writer writes a Region sequentially from its start. It implements
// io.Writer. A write that does not fit in the remaining space is rejected
// whole with a *RangeError and advances nothing.
type Writer struct {
	r   Region
	pos uint64
}

// NewWriter returns a Writer positioned at the start of r.
func (r Region) NewWriter() *Writer {
	return &Writer{r: r}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := w.r.Write(w.pos, p)
	w.pos += uint64(n)
	if err != nil {
		return n, err
	}
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Offset returns the current region-relative position.
func (w *Writer) Offset() uint64 { return w.pos }
