package region

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/joshuapare/fileregion/internal/buf"
	"github.com/joshuapare/fileregion/internal/fsys"
)

// Handle is the file capability a Region borrows.
//
// A Handle carries a single cursor. Seek moves it; Read and Write transfer
// from it and advance it. Every Region operation seeks before transferring,
// so two operations interleaved on the same Handle from different goroutines
// can move each other's cursor. Callers must serialize access to a Handle;
// Region does no locking of its own.
type Handle interface {
	// Length returns the current size of the file in bytes.
	Length() (uint64, error)
	// Seek moves the cursor to the absolute offset off.
	Seek(off uint64) error
	// Read transfers from the cursor into p.
	Read(p []byte) (int, error)
	// Write transfers p to the cursor.
	Write(p []byte) (int, error)
}

// Syncer is implemented by handles that can flush written data to stable
// storage.
type Syncer interface {
	Sync() error
}

// File adapts an *os.File to Handle.
//
// File does not own the lifecycle of regions built over it, but it does
// enforce the borrow at runtime: after Close every method returns ErrClosed,
// so a Region that outlives its file fails loudly instead of touching a
// recycled descriptor.
type File struct {
	f      *os.File
	closed atomic.Bool

	// FullSync requests F_FULLFSYNC on macOS when syncing. Ignored elsewhere.
	FullSync bool
}

// NewFile wraps f. The returned File takes over closing f.
func NewFile(f *os.File) *File {
	return &File{f: f}
}

// OpenFile opens path with os.OpenFile and wraps the result.
func OpenFile(path string, flag int, perm os.FileMode) (*File, error) {
	f, err := os.OpenFile(path, flag, perm)
	if err != nil {
		return nil, err
	}
	return NewFile(f), nil
}

// CreateTemp creates a new temporary file with os.CreateTemp and wraps it.
func CreateTemp(dir, pattern string) (*File, error) {
	f, err := os.CreateTemp(dir, pattern)
	if err != nil {
		return nil, err
	}
	return NewFile(f), nil
}

// Name returns the name of the underlying file.
func (f *File) Name() string {
	return f.f.Name()
}

// OS returns the wrapped *os.File, or nil after Close.
func (f *File) OS() *os.File {
	if f.closed.Load() {
		return nil
	}
	return f.f
}

// Length implements Handle.
func (f *File) Length() (uint64, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	return fsys.Size(f.f)
}

// Seek implements Handle. Offsets beyond the platform's int64 seek range are
// rejected.
func (f *File) Seek(off uint64) error {
	if f.closed.Load() {
		return ErrClosed
	}
	pos, ok := buf.ToInt64(off)
	if !ok {
		return fmt.Errorf("seek %s: offset %d exceeds int64", f.f.Name(), off)
	}
	_, err := f.f.Seek(pos, io.SeekStart)
	return err
}

// Read implements Handle.
func (f *File) Read(p []byte) (int, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	return f.f.Read(p)
}

// Write implements Handle.
func (f *File) Write(p []byte) (int, error) {
	if f.closed.Load() {
		return 0, ErrClosed
	}
	return f.f.Write(p)
}

// Sync implements Syncer.
func (f *File) Sync() error {
	if f.closed.Load() {
		return ErrClosed
	}
	return fsys.Datasync(f.f, f.FullSync)
}

// Close closes the underlying file. Subsequent calls return ErrClosed.
func (f *File) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return f.f.Close()
}
