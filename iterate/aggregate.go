package iterate

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number constrains the element types accepted by [Sum].
type Number interface {
	constraints.Integer | constraints.Float
}

// Collect drains the cursor into a slice. The cursor is exhausted afterwards.
func Collect[T any](it Iterator[T]) []T {
	out := make([]T, 0)
	for it.HasNext() {
		out = append(out, it.Next())
	}
	return out
}

// Count drains the cursor and returns how many elements it yielded.
// Counting consumes: after Count returns, it.HasNext() is false. To count
// without losing a traversal, take a fresh cursor from the source Iterable.
func Count[T any](it Iterator[T]) int {
	n := 0
	for it.HasNext() {
		it.Next()
		n++
	}
	return n
}

// Each calls fn for every element of src, in traversal order.
func Each[T any](src Iterable[T], fn func(T)) {
	for it := src.Iterator(); it.HasNext(); {
		fn(it.Next())
	}
}

// All reports whether pred holds for every element of src. It stops at the
// first failure; an empty source vacuously satisfies All.
func All[T any](src Iterable[T], pred func(T) bool) bool {
	for it := src.Iterator(); it.HasNext(); {
		if !pred(it.Next()) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element of src. It stops
// at the first match; an empty source never satisfies Any.
func Any[T any](src Iterable[T], pred func(T) bool) bool {
	for it := src.Iterator(); it.HasNext(); {
		if pred(it.Next()) {
			return true
		}
	}
	return false
}

// Contains reports whether v occurs in src. It stops at the first match.
func Contains[T comparable](src Iterable[T], v T) bool {
	return Any(src, func(item T) bool { return item == v })
}

// Sum adds up all elements of src. An empty source sums to zero.
func Sum[T Number](src Iterable[T]) T {
	var sum T
	for it := src.Iterator(); it.HasNext(); {
		sum += it.Next()
	}
	return sum
}

// Min returns the smallest element of src.
// Returns the zero value and false when the source is empty.
func Min[T cmp.Ordered](src Iterable[T]) (T, bool) {
	it := src.Iterator()
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	best := it.Next()
	for it.HasNext() {
		if v := it.Next(); v < best {
			best = v
		}
	}
	return best, true
}

// Max returns the largest element of src.
// Returns the zero value and false when the source is empty.
func Max[T cmp.Ordered](src Iterable[T]) (T, bool) {
	it := src.Iterator()
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	best := it.Next()
	for it.HasNext() {
		if v := it.Next(); v > best {
			best = v
		}
	}
	return best, true
}
