package beap

import (
	"errors"
)

var (
	// ErrIndexOutOfRange is panicked by Delete when given an index outside
	// [0, Len()). Out-of-range deletion is a programming error, not a
	// recoverable condition.
	ErrIndexOutOfRange = errors.New("beap: index out of range")
)
