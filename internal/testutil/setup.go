package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// OpenTempFile writes content to a fresh file under t.TempDir and returns it
// opened read-write with the cursor at offset 0. The file is closed on test
// cleanup; a close error from a file the test already closed is ignored.
//
// Example:
//
//	f := testutil.OpenTempFile(t, []byte("0123456789"))
//	h := region.NewFile(f)
func OpenTempFile(t *testing.T, content []byte) *os.File {
	t.Helper()

	path := filepath.Join(t.TempDir(), "region.bin")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		t.Fatalf("open temp file: %v", err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}

// ReadAll returns the full content of the file at path.
func ReadAll(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return data
}
