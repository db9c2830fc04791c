// Package buf contains overflow-checked offset arithmetic used by the region
// package.
package buf

import (
	"math"
	"math/bits"
)

// AddU64 adds a and b, returning ok = false when the result would overflow uint64.
func AddU64(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, false
	}
	return sum, true
}

// SpanU64 computes the absolute interval [base+off, base+off+n).
//
// startOK and endOK report the two additions independently so callers can tell
// which endpoint overflowed. When startOK is false end is meaningless.
func SpanU64(base, off, n uint64) (start, end uint64, startOK, endOK bool) {
	start, startOK = AddU64(base, off)
	if !startOK {
		return 0, 0, false, false
	}
	end, endOK = AddU64(start, n)
	return start, end, true, endOK
}

// ClampLen returns min(n, limit) as an int. n is a buffer length, so the
// result always fits in int.
func ClampLen(n int, limit uint64) int {
	if n < 0 {
		return 0
	}
	if uint64(n) > limit {
		return int(limit)
	}
	return n
}

// ToInt64 converts off to int64, returning ok = false when it does not fit.
// Seekers in the standard library take int64 offsets.
func ToInt64(off uint64) (int64, bool) {
	if off > math.MaxInt64 {
		return 0, false
	}
	return int64(off), true
}
