//go:build unix

package fsys

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Size returns the current length of f in bytes.
func Size(f *os.File) (uint64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(int(f.Fd()), &st); err != nil {
		return 0, fmt.Errorf("fstat %s: %w", f.Name(), err)
	}
	if st.Size < 0 {
		return 0, fmt.Errorf("fstat %s: negative size %d", f.Name(), st.Size)
	}
	return uint64(st.Size), nil
}
