//go:build !unix && !windows

package fsys

import (
	"fmt"
	"os"
)

// Size returns the current length of f in bytes using os.File.Stat when no
// descriptor-level call is available.
func Size(f *os.File) (uint64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	if info.Size() < 0 {
		return 0, fmt.Errorf("stat %s: negative size %d", f.Name(), info.Size())
	}
	return uint64(info.Size()), nil
}
