// Package fsys provides platform-specific helpers for querying and flushing
// open files.
//
// Size reports the current length of a file straight from the descriptor
// (fstat on Unix, GetFileInformationByHandle on Windows) so callers observe
// writes made through the same handle without going through os.FileInfo.
// Datasync pushes written data to stable storage using the strongest cheap
// primitive the platform offers.
package fsys
