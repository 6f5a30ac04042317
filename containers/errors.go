package containers

import "errors"

// Sentinel errors returned by container operations.
var (
	// ErrIndexOutOfRange is returned when a position is outside the valid
	// range of the receiver: list indexes outside [0, Count()), window
	// bounds that do not fit the list, and window indexes outside the
	// window's extent.
	ErrIndexOutOfRange = errors.New("containers: index out of range")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// item satisfies the predicate.
	ErrNoMatchingItems = errors.New("containers: no items match the given condition")
)
