//go:build darwin

package fsys

import (
	"os"

	"golang.org/x/sys/unix"
)

// Datasync flushes the data of f to disk.
//
// On macOS, if full is true, use F_FULLFSYNC so the data reaches the physical
// disk, not just the drive cache. Otherwise, use regular fsync.
func Datasync(f *os.File, full bool) error {
	fd := int(f.Fd())
	if full {
		_, err := unix.FcntlInt(uintptr(fd), unix.F_FULLFSYNC, 0)
		return err
	}
	// macOS doesn't have fdatasync
	return unix.Fsync(fd)
}
