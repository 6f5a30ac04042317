package iterate

// Iterator is a single-use cursor over a stream of T.
//
// HasNext is a pure query: it reports whether another element remains without
// advancing or otherwise disturbing the cursor, and may be called any number
// of times between advances. Next returns the next element and advances.
// Once HasNext has returned false it never returns true again.
//
// Calling Next when HasNext is false is a programming error: it panics with
// [ErrExhausted]. Callers that cannot guarantee the check should prefer the
// aggregation functions in this package, which never over-advance.
//
// An Iterator is not safe for concurrent use. Two goroutines advancing the
// same cursor must coordinate externally; handing each goroutine its own
// cursor from the source [Iterable] needs no coordination at all.
type Iterator[T any] interface {
	// HasNext reports whether Next would yield an element.
	HasNext() bool

	// Next returns the next element and advances the cursor.
	// It panics with [ErrExhausted] when the cursor is exhausted.
	Next() T
}

// Peeker is implemented by cursors that can look at the upcoming element
// without consuming it. Buffered cursors such as those returned by [Of],
// [FromFunc] and [Lines] implement it; derived cursors generally do not,
// because peeking through a transformation would force upstream work.
//
//	it := iterate.Of(1, 2, 3)
//	if p, ok := it.(iterate.Peeker[int]); ok {
//	    _ = p.Peek() // 1, cursor still positioned before 1
//	}
type Peeker[T any] interface {
	// Peek returns the element the next call to Next would return, without
	// advancing. It panics with [ErrExhausted] when the cursor is exhausted.
	Peek() T
}

// Iterable is the traversal capability: anything that can produce a fresh
// cursor over its elements. Every container and sequence type in this module
// implements it, and every aggregation function in this package consumes it.
//
// Iterator must not mutate the source; each call returns an independent
// cursor positioned before the first element. Whether two cursors from the
// same Iterable observe the same element order is up to the implementation:
// ordered containers and sequences guarantee it, hash-based containers do not.
type Iterable[T any] interface {
	// Iterator returns a new cursor positioned before the first element.
	Iterator() Iterator[T]
}

// IterableFunc adapts an ordinary function to the [Iterable] interface, in
// the manner of http.HandlerFunc. It is the cheapest way to build a deferred,
// restartable source:
//
//	evens := iterate.IterableFunc[int](func() iterate.Iterator[int] {
//	    return iterate.Of(0, 2, 4, 6)
//	})
type IterableFunc[T any] func() Iterator[T]

// Iterator calls fn.
func (fn IterableFunc[T]) Iterator() Iterator[T] { return fn() }
