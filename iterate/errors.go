package iterate

import "errors"

// Sentinel errors used by cursors and aggregation functions.
var (
	// ErrExhausted is the panic value raised by [Iterator.Next] (and
	// [Peeker.Peek]) when the cursor has no more elements. Advancing past the
	// end is a contract violation, not a recoverable condition, so it panics
	// rather than returning an error. Test code that needs to observe it can
	// recover and compare with [errors.Is].
	ErrExhausted = errors.New("iterate: cursor exhausted")

	// ErrEmptyCollection is returned by [ReduceLeft] and [ReduceRight] when
	// the source yields no elements, since a reduction without a seed has no
	// value to start from.
	ErrEmptyCollection = errors.New("iterate: operation on empty collection")
)
