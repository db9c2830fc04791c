//go:build windows

package fsys

import (
	"os"

	"golang.org/x/sys/windows"
)

// Datasync flushes file data and metadata using FlushFileBuffers.
// The full parameter is ignored on Windows.
func Datasync(f *os.File, _ bool) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}
