// Package region provides bounds-checked windows over a byte range of an open
// file.
//
// # Overview
//
// A Region pairs a borrowed Handle with an absolute half-open range
// [Start, End). Every read and write goes through the region and is confined
// to that range; offsets passed to Read, Write and Subregion are relative to
// Start. All offset arithmetic is checked for uint64 overflow, and overflow is
// reported separately from out-of-bounds access.
//
// # Creating Regions
//
//	f, err := region.OpenFile("/path/to/data.bin", os.O_RDWR, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer f.Close()
//
//	whole, err := region.Span(f)                       // [0, length)
//	hdr := region.New(f, region.Range{Start: 0, End: 512}) // unchecked
//	body, err := region.NewValidated(f, region.Range{Start: 512, End: 4096})
//	rec, err := body.Subregion(region.Range{Start: 64, End: 128}) // [576, 640)
//
// New performs no I/O. NewValidated and Validate compare the range with the
// current file length: the region is valid when Start < length and
// End <= length. The empty region [0, 0) is always valid, so Span over an empty
// file validates.
//
// # Reads and Writes
//
// Read and Write deliberately differ at the region's far edge:
//
//   - Read truncates. A read that starts inside the region returns at most the
//     bytes remaining in the region, and fewer if the file ends first.
//   - Write rejects. If any byte of the buffer would fall outside the region,
//     nothing is written and a *RangeError is returned.
//
// A read or write whose start is at or beyond the region's end always fails
// with StartOutOfBounds; it never silently returns zero bytes.
//
// # Errors
//
// Range errors (*RangeError) come from local arithmetic and never cause I/O.
// Their Kind is one of StartOverflow, EndOverflow, StartOutOfBounds and
// EndOutOfBounds, and matches with errors.Is:
//
//	_, err := rec.Write(0, payload)
//	switch {
//	case errors.Is(err, region.EndOutOfBounds):
//	    // payload too large for the record
//	case region.IsIOError(err):
//	    // the file failed; errors.Unwrap gives the original error
//	}
//
// I/O errors (*IOError) wrap failures from the Handle verbatim. Nothing is
// retried.
//
// # Concurrency
//
// Regions hold no locks. A Handle has one cursor, and each operation seeks
// before transferring, so concurrent operations on the same Handle race on
// that cursor. Serialize access per Handle, or give each goroutine its own
// Handle over the file.
package region
