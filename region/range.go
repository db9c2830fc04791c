package region

import "fmt"

// Range is a half-open byte interval [Start, End).
//
// All methods assume Start <= End. Use WellFormed to check a Range built from
// untrusted input.
type Range struct {
	// Start is the inclusive start of the range.
	Start uint64

	// End is the exclusive end of the range.
	End uint64
}

// WellFormed reports whether r.Start <= r.End.
func (r Range) WellFormed() bool {
	return r.Start <= r.End
}

// Len returns the length of the range.
func (r Range) Len() uint64 {
	return r.End - r.Start
}

// IsEmpty reports whether the range has zero length.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether r contains off.
func (r Range) Contains(off uint64) bool {
	return r.Start <= off && off < r.End
}

// IsSupersetOf reports whether r2 lies entirely within r.
func (r Range) IsSupersetOf(r2 Range) bool {
	return r.Start <= r2.Start && r.End >= r2.End
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
