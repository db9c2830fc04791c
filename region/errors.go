package region

import (
	"errors"
	"fmt"
)

// Kind classifies a range error. The set of kinds is closed.
//
// Kind implements error so callers can match with errors.Is:
//
//	if errors.Is(err, region.EndOutOfBounds) { ... }
type Kind uint8

const (
	// StartOverflow indicates the absolute start offset overflowed uint64.
	StartOverflow Kind = iota + 1
	// EndOverflow indicates the absolute end offset overflowed uint64.
	EndOverflow
	// StartOutOfBounds indicates the start is at or beyond the bound checked against.
	StartOutOfBounds
	// EndOutOfBounds indicates the end is beyond the bound checked against.
	EndOutOfBounds
)

func (k Kind) String() string {
	switch k {
	case StartOverflow:
		return "start overflow"
	case EndOverflow:
		return "end overflow"
	case StartOutOfBounds:
		return "start out of bounds"
	case EndOutOfBounds:
		return "end out of bounds"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

func (k Kind) Error() string {
	return "region: " + k.String()
}

// ErrClosed is reported by File once Close has been called.
var ErrClosed = errors.New("region: file already closed")

// RangeError reports a request rejected by offset arithmetic or bounds
// checking. No I/O was attempted.
type RangeError struct {
	Op    string // "validate", "read", "write", "subregion"
	Kind  Kind
	Range Range  // absolute range that was checked; zero when the start overflowed
	Bound uint64 // region end or file length the range was checked against
}

func (e *RangeError) Error() string {
	switch e.Kind {
	case StartOverflow, EndOverflow:
		return fmt.Sprintf("region: %s: %s", e.Op, e.Kind.String())
	default:
		return fmt.Sprintf("region: %s: %s: %s exceeds bound %d", e.Op, e.Kind.String(), e.Range, e.Bound)
	}
}

func (e *RangeError) Unwrap() error { return e.Kind }

// IOError wraps a failure reported by the underlying Handle.
type IOError struct {
	Op  string // "length", "seek", "read", "write", "sync"
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("region: %s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsRangeError reports whether err contains a *RangeError.
func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// IsIOError reports whether err contains an *IOError.
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}

// KindOf returns the Kind of the first *RangeError in err's chain, or 0.
func KindOf(err error) Kind {
	var re *RangeError
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}

func ioErr(op string, err error) error {
	return &IOError{Op: op, Err: err}
}
