//go:build linux

package fsys

import (
	"os"

	"golang.org/x/sys/unix"
)

// Datasync flushes the data of f to disk.
//
// On Linux, fdatasync() provides sufficient guarantees.
// The full parameter is ignored.
func Datasync(f *os.File, _ bool) error {
	return unix.Fdatasync(int(f.Fd()))
}
