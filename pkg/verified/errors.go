package verified

import (
	"errors"
)

var (
	// ErrHeightMismatch is the root error wrapped by CheckInvariants when
	// the recomputed level of the last element disagrees with the beap's
	// own height counter.
	ErrHeightMismatch = errors.New("verified: height does not match recomputed level")

	// ErrHeapViolation is the root error wrapped by CheckInvariants when
	// some element exceeds one of its existing parents.
	ErrHeapViolation = errors.New("verified: child exceeds parent")
)
