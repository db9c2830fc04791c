package region

// boundMode selects how strictly checkBounds treats empty ranges.
type boundMode uint8

const (
	// boundRegion requires the range to start below the bound, so an empty
	// range sitting exactly at the bound is rejected.
	boundRegion boundMode = iota
	// boundFile is boundRegion plus one exception: the empty range at offset
	// zero is always accepted. This is what Span returns for an empty file.
	boundFile
)

// checkBounds is the single bounds rule shared by validation, read, write
// and subregion. bound is either the file length or a region's end.
func checkBounds(op string, r Range, bound uint64, mode boundMode) error {
	if mode == boundFile && r.Start == 0 && r.End == 0 {
		return nil
	}
	if r.Start >= bound {
		return &RangeError{Op: op, Kind: StartOutOfBounds, Range: r, Bound: bound}
	}
	if r.End > bound {
		return &RangeError{Op: op, Kind: EndOutOfBounds, Range: r, Bound: bound}
	}
	return nil
}

// Validate checks the region against the current file length. It returns an
// *IOError when the length cannot be queried and a *RangeError with kind
// StartOutOfBounds or EndOutOfBounds when the region does not fit.
//
// A region is valid when Start < length and End <= length. The empty region
// [0, 0) is always valid.
func (r Region) Validate() error {
	n, err := r.h.Length()
	if err != nil {
		return ioErr("length", err)
	}
	return checkBounds("validate", r.r, n, boundFile)
}

// IsValid is Validate collapsed to a boolean. Only I/O failures are returned
// as errors.
func (r Region) IsValid() (bool, error) {
	err := r.Validate()
	switch {
	case err == nil:
		return true, nil
	case IsRangeError(err):
		return false, nil
	default:
		return false, err
	}
}
