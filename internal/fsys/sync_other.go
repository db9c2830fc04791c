//go:build !linux && !darwin && !windows

package fsys

import "os"

// Datasync falls back to os.File.Sync.
func Datasync(f *os.File, _ bool) error {
	return f.Sync()
}
