// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"errors"
	"io"
)

// maxMemFileSize bounds how far a MemFile grows on Write so a test with a
// huge offset fails instead of allocating.
const maxMemFileSize = 1 << 30

// ErrMemFileTooLarge is returned when a Write would grow a MemFile past 1 GiB.
var ErrMemFileTooLarge = errors.New("memfile: write beyond size limit")

// MemFile is an in-memory file with a single cursor. It satisfies
// region.Handle and records every call so tests can assert that rejected
// operations performed no I/O.
//
// Setting one of the *Err fields makes the matching method fail with it.
// MaxRead > 0 caps the bytes returned per Read call.
type MemFile struct {
	Data []byte
	pos  uint64

	LengthErr error
	SeekErr   error
	ReadErr   error
	WriteErr  error
	MaxRead   int

	Lengths int
	Seeks   int
	Reads   int
	Writes  int
}

// NewMemFile returns a MemFile holding a copy of data.
func NewMemFile(data []byte) *MemFile {
	return &MemFile{Data: append([]byte(nil), data...)}
}

// Length returns len(Data).
func (m *MemFile) Length() (uint64, error) {
	m.Lengths++
	if m.LengthErr != nil {
		return 0, m.LengthErr
	}
	return uint64(len(m.Data)), nil
}

// Seek moves the cursor. Seeking past the end is allowed.
func (m *MemFile) Seek(off uint64) error {
	m.Seeks++
	if m.SeekErr != nil {
		return m.SeekErr
	}
	m.pos = off
	return nil
}

// Read copies from the cursor. It returns io.EOF at or past the end of Data.
func (m *MemFile) Read(p []byte) (int, error) {
	m.Reads++
	if m.ReadErr != nil {
		return 0, m.ReadErr
	}
	if len(p) == 0 {
		return 0, nil
	}
	if m.pos >= uint64(len(m.Data)) {
		return 0, io.EOF
	}
	if m.MaxRead > 0 && len(p) > m.MaxRead {
		p = p[:m.MaxRead]
	}
	n := copy(p, m.Data[m.pos:])
	m.pos += uint64(n)
	return n, nil
}

// Write copies p to the cursor, zero-filling any gap and growing Data as a
// sparse file would.
func (m *MemFile) Write(p []byte) (int, error) {
	m.Writes++
	if m.WriteErr != nil {
		return 0, m.WriteErr
	}
	end := m.pos + uint64(len(p))
	if end < m.pos || end > maxMemFileSize {
		return 0, ErrMemFileTooLarge
	}
	if end > uint64(len(m.Data)) {
		grown := make([]byte, end)
		copy(grown, m.Data)
		m.Data = grown
	}
	n := copy(m.Data[m.pos:], p)
	m.pos += uint64(n)
	return n, nil
}

// Pos returns the cursor position.
func (m *MemFile) Pos() uint64 { return m.pos }

// IOCalls returns the number of Seek, Read and Write calls made so far.
func (m *MemFile) IOCalls() int {
	return m.Seeks + m.Reads + m.Writes
}
