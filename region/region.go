package region

import (
	"errors"
	"io"

	"github.com/joshuapare/fileregion/internal/buf"
)

// Region restricts I/O on a borrowed Handle to an absolute byte range.
//
// A Region is a small value: copying it copies the range and the handle
// reference, never the file. It must not be used after the handle is closed;
// File enforces this by returning ErrClosed.
type Region struct {
	h Handle
	r Range
}

// New returns a Region over r without performing I/O or validation.
// Use Validate or IsValid to check r against the file.
func New(h Handle, r Range) Region {
	return Region{h: h, r: r}
}

// NewValidated returns a Region over r after checking it against the
// current file length.
func NewValidated(h Handle, r Range) (Region, error) {
	reg := New(h, r)
	if err := reg.Validate(); err != nil {
		return Region{}, err
	}
	return reg, nil
}

// Span returns a Region covering the whole file, [0, Length()). The result is
// valid by construction.
func Span(h Handle) (Region, error) {
	n, err := h.Length()
	if err != nil {
		return Region{}, ioErr("length", err)
	}
	return New(h, Range{Start: 0, End: n}), nil
}

// Handle returns the borrowed handle.
func (r Region) Handle() Handle { return r.h }

// Range returns the absolute range of the region.
func (r Region) Range() Range { return r.r }

// Len returns the length of the region in bytes.
func (r Region) Len() uint64 { return r.r.Len() }

// IsEmpty reports whether the region has zero length.
func (r Region) IsEmpty() bool { return r.r.IsEmpty() }

// FileLength returns the current length of the underlying file.
func (r Region) FileLength() (uint64, error) {
	n, err := r.h.Length()
	if err != nil {
		return 0, ioErr("length", err)
	}
	return n, nil
}

// Read reads into p starting at the region-relative offset off.
//
// A read that starts inside the region is truncated at the region's end, and
// may be shorter still if the file itself ends first; neither case is an
// error. A read that starts at or past the region's end fails with
// StartOutOfBounds and performs no I/O.
func (r Region) Read(off uint64, p []byte) (int, error) {
	start, ok := buf.AddU64(r.r.Start, off)
	if !ok {
		return 0, &RangeError{Op: "read", Kind: StartOverflow, Bound: r.r.End}
	}
	if err := checkBounds("read", Range{Start: start, End: start}, r.r.End, boundRegion); err != nil {
		return 0, err
	}

	n := buf.ClampLen(len(p), r.r.End-start)
	if err := r.h.Seek(start); err != nil {
		return 0, ioErr("seek", err)
	}
	got, err := io.ReadFull(r.h, p[:n])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = nil
	}
	if err != nil {
		return got, ioErr("read", err)
	}
	return got, nil
}

// Write writes p starting at the region-relative offset off.
//
// Unlike Read, Write never truncates: if any byte of p would land outside the
// region the whole write is rejected with StartOutOfBounds or EndOutOfBounds
// and nothing is written. An empty p is still subject to the start check.
func (r Region) Write(off uint64, p []byte) (int, error) {
	start, end, startOK, endOK := buf.SpanU64(r.r.Start, off, uint64(len(p)))
	if !startOK {
		return 0, &RangeError{Op: "write", Kind: StartOverflow, Bound: r.r.End}
	}
	if !endOK {
		return 0, &RangeError{Op: "write", Kind: EndOverflow, Bound: r.r.End}
	}
	if err := checkBounds("write", Range{Start: start, End: end}, r.r.End, boundRegion); err != nil {
		return 0, err
	}

	if err := r.h.Seek(start); err != nil {
		return 0, ioErr("seek", err)
	}
	n, err := r.h.Write(p)
	if err != nil {
		return n, ioErr("write", err)
	}
	return n, nil
}

// Subregion returns a narrower Region over the same handle. child is relative
// to the start of r and must lie within r; an empty region has no valid
// subregions.
//
// Subregion is pure arithmetic. The result is not checked against the file
// length; call Validate for that.
func (r Region) Subregion(child Range) (Region, error) {
	start, ok := buf.AddU64(r.r.Start, child.Start)
	if !ok {
		return Region{}, &RangeError{Op: "subregion", Kind: StartOverflow, Bound: r.r.End}
	}
	end, ok := buf.AddU64(r.r.Start, child.End)
	if !ok {
		return Region{}, &RangeError{Op: "subregion", Kind: EndOverflow, Bound: r.r.End}
	}
	abs := Range{Start: start, End: end}
	if err := checkBounds("subregion", abs, r.r.End, boundRegion); err != nil {
		return Region{}, err
	}
	return New(r.h, abs), nil
}

// Sync flushes written data to stable storage when the handle implements
// Syncer. It is a no-op otherwise.
func (r Region) Sync() error {
	s, ok := r.h.(Syncer)
	if !ok {
		return nil
	}
	if err := s.Sync(); err != nil {
		return ioErr("sync", err)
	}
	return nil
}
