//go:build windows

package fsys

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows"
)

// Size returns the current length of f in bytes.
func Size(f *os.File) (uint64, error) {
	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(windows.Handle(f.Fd()), &info); err != nil {
		return 0, fmt.Errorf("GetFileInformationByHandle %s: %w", f.Name(), err)
	}
	return uint64(info.FileSizeHigh)<<32 | uint64(info.FileSizeLow), nil
}
