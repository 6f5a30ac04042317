package iterate

import "iter"

// ─────────────────────────────────────────────────────────────────────────────
// Slice-backed cursors
// ─────────────────────────────────────────────────────────────────────────────

type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (it *sliceIterator[T]) HasNext() bool { return it.pos < len(it.items) }

func (it *sliceIterator[T]) Next() T {
	if it.pos >= len(it.items) {
		panic(ErrExhausted)
	}
	v := it.items[it.pos]
	it.pos++
	return v
}

func (it *sliceIterator[T]) Peek() T {
	if it.pos >= len(it.items) {
		panic(ErrExhausted)
	}
	return it.items[it.pos]
}

// Of returns a cursor over the given items (copied). The cursor implements
// [Peeker].
func Of[T any](items ...T) Iterator[T] {
	return FromSlice(items)
}

// FromSlice returns a cursor over a copy of items, so later mutation of the
// argument does not affect the traversal. The cursor implements [Peeker].
func FromSlice[T any](items []T) Iterator[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &sliceIterator[T]{items: dst}
}

// Over returns a restartable [Iterable] over the given items (copied).
// Every call to Iterator starts a fresh traversal from the first item.
func Over[T any](items ...T) Iterable[T] {
	return OverSlice(items)
}

// OverSlice returns a restartable [Iterable] over a copy of items.
func OverSlice[T any](items []T) Iterable[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return IterableFunc[T](func() Iterator[T] {
		return &sliceIterator[T]{items: dst}
	})
}

// Range returns a restartable [Iterable] over the half-open interval
// [lo, hi). An empty interval (hi <= lo) yields no elements.
func Range(lo, hi int) Iterable[int] {
	return IterableFunc[int](func() Iterator[int] {
		return &rangeIterator{pos: lo, hi: hi}
	})
}

type rangeIterator struct {
	pos, hi int
}

func (it *rangeIterator) HasNext() bool { return it.pos < it.hi }

func (it *rangeIterator) Next() int {
	if it.pos >= it.hi {
		panic(ErrExhausted)
	}
	v := it.pos
	it.pos++
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// Function-backed cursors
// ─────────────────────────────────────────────────────────────────────────────

// funcIterator buffers one element of lookahead so that HasNext and Peek can
// answer without consuming from the generator.
type funcIterator[T any] struct {
	fn      func() (T, bool)
	pending T
	ok      bool
}

func (it *funcIterator[T]) advance() {
	if it.fn == nil {
		it.ok = false
		return
	}
	it.pending, it.ok = it.fn()
	if !it.ok {
		it.fn = nil // release the generator once drained
	}
}

func (it *funcIterator[T]) HasNext() bool { return it.ok }

func (it *funcIterator[T]) Next() T {
	if !it.ok {
		panic(ErrExhausted)
	}
	v := it.pending
	it.advance()
	return v
}

func (it *funcIterator[T]) Peek() T {
	if !it.ok {
		panic(ErrExhausted)
	}
	return it.pending
}

// FromFunc returns a cursor that pulls elements from fn until it reports
// false. fn is called once per element plus once to detect the end; the
// cursor buffers a single element of lookahead, so fn is invoked for element
// n+1 as element n is handed out. The cursor implements [Peeker].
func FromFunc[T any](fn func() (T, bool)) Iterator[T] {
	it := &funcIterator[T]{fn: fn}
	it.advance()
	return it
}

// ─────────────────────────────────────────────────────────────────────────────
// range-over-func interop
// ─────────────────────────────────────────────────────────────────────────────

// FromSeq adapts a standard-library [iter.Seq] to a cursor. The sequence is
// pulled lazily, one element at a time, and released as soon as the cursor
// is exhausted.
func FromSeq[T any](seq iter.Seq[T]) Iterator[T] {
	next, stop := iter.Pull(seq)
	return FromFunc(func() (T, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	})
}

// Seq adapts an [Iterable] to a standard-library [iter.Seq] so it can be
// used in a range statement:
//
//	for v := range iterate.Seq(iterate.Range(0, 3)) {
//	    fmt.Println(v)
//	}
func Seq[T any](src Iterable[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := src.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}
