package containers

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hasbyte1/go-collections/iterate"
)

// List is a generic, ordered, index-addressable container backed by a
// contiguous slice.
//
// Mutating methods (Add, Append, Insert, Set, RemoveAt, Clear) change the
// receiver in place. Transformation methods (Filter, Sort, Take, ...) return
// a *new* List and leave the receiver unchanged, so they are safe to chain:
//
//	short := containers.NewList("ox", "zebra", "cat", "bee").
//	    Filter(func(s string, _ int) bool { return len(s) < 4 }).
//	    Sort(func(a, b string) bool { return a < b })
//
// A List is not synchronized. A single mutator with concurrent readers needs
// external locking; read-only sharing does not.
type List[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// NewList creates a List from a variadic list of items (copied).
func NewList[T any](items ...T) *List[T] {
	return ListFrom(items)
}

// ListFrom creates a List from a slice (the slice is copied).
func ListFrom[T any](items []T) *List[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &List[T]{items: dst}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (l *List[T]) All() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// ToSlice is an alias for [List.All].
func (l *List[T]) ToSlice() []T { return l.All() }

// ToJSON serialises the list items to a JSON array.
func (l *List[T]) ToJSON() ([]byte, error) {
	return json.Marshal(l.items)
}

// Count returns the number of items in the list.
func (l *List[T]) Count() int { return len(l.items) }

// IsEmpty reports whether the list contains no items.
func (l *List[T]) IsEmpty() bool { return len(l.items) == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l *List[T]) IsNotEmpty() bool { return len(l.items) > 0 }

// Get returns the item at index together with a presence flag.
// Returns the zero value and false when index is out of range.
func (l *List[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, false
	}
	return l.items[index], true
}

// Has reports whether index is a valid position in the list.
func (l *List[T]) Has(index int) bool {
	return index >= 0 && index < len(l.items)
}

// First returns the first item, optionally matching fns[0].
// Returns the zero value and false when the list is empty or no item
// satisfies the predicate.
func (l *List[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, item := range l.items {
			if fns[0](item) {
				return item, true
			}
		}
		return zero, false
	}
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[0], true
}

// FirstOrFail returns the first item matching fn, or [ErrNoMatchingItems].
func (l *List[T]) FirstOrFail(fn func(T) bool) (T, error) {
	item, ok := l.First(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Last returns the last item, optionally matching fns[0].
// Returns the zero value and false when the list is empty or no item
// satisfies the predicate.
func (l *List[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, item := range l.items {
			if fns[0](item) {
				found = item
				matched = true
			}
		}
		return found, matched
	}
	if len(l.items) == 0 {
		return zero, false
	}
	return l.items[len(l.items)-1], true
}

// LastOrFail returns the last item matching fn, or [ErrNoMatchingItems].
func (l *List[T]) LastOrFail(fn func(T) bool) (T, error) {
	item, ok := l.Last(fn)
	if !ok {
		return item, ErrNoMatchingItems
	}
	return item, nil
}

// Contains reports whether at least one item satisfies fn.
func (l *List[T]) Contains(fn func(T) bool) bool {
	for _, item := range l.items {
		if fn(item) {
			return true
		}
	}
	return false
}

// Search returns the index of the first item for which fn returns true, or -1.
func (l *List[T]) Search(fn func(T) bool) int {
	for i, item := range l.items {
		if fn(item) {
			return i
		}
	}
	return -1
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *List[T]) String() string {
	b, err := l.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", l.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutators
// ─────────────────────────────────────────────────────────────────────────────

// Add appends a single item in place. It is the method through which [Into]
// fills a list.
func (l *List[T]) Add(item T) {
	l.items = append(l.items, item)
}

// Append appends items in place.
func (l *List[T]) Append(items ...T) {
	l.items = append(l.items, items...)
}

// Prepend inserts items at the front in place.
func (l *List[T]) Prepend(items ...T) {
	out := make([]T, len(items)+len(l.items))
	copy(out, items)
	copy(out[len(items):], l.items)
	l.items = out
}

// Insert places item at index, shifting later items right. index may equal
// Count(), in which case Insert appends. Returns [ErrIndexOutOfRange] when
// index is outside [0, Count()].
func (l *List[T]) Insert(index int, item T) error {
	if index < 0 || index > len(l.items) {
		return ErrIndexOutOfRange
	}
	var zero T
	l.items = append(l.items, zero)
	copy(l.items[index+1:], l.items[index:])
	l.items[index] = item
	return nil
}

// Set replaces the item at index.
// Returns [ErrIndexOutOfRange] when index is outside [0, Count()).
func (l *List[T]) Set(index int, item T) error {
	if index < 0 || index >= len(l.items) {
		return ErrIndexOutOfRange
	}
	l.items[index] = item
	return nil
}

// RemoveAt removes and returns the item at index, shifting later items left.
// Returns [ErrIndexOutOfRange] when index is outside [0, Count()).
func (l *List[T]) RemoveAt(index int) (T, error) {
	var zero T
	if index < 0 || index >= len(l.items) {
		return zero, ErrIndexOutOfRange
	}
	item := l.items[index]
	l.items = append(l.items[:index], l.items[index+1:]...)
	return item, nil
}

// Clear removes all items in place.
func (l *List[T]) Clear() {
	l.items = l.items[:0]
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(item, index) for every item.
func (l *List[T]) Each(fn func(T, int)) {
	for i, item := range l.items {
		fn(item, i)
	}
}

// Iterator returns a cursor over the items in index order. The cursor reads
// the list as it was when the cursor was created; mutating the list during
// traversal gives undefined results.
func (l *List[T]) Iterator() iterate.Iterator[T] {
	return &indexIterator[T]{items: l.items}
}

// Elements returns the list as an interface-typed traversal capability, for
// passing to the aggregation functions in the iterate package.
func (l *List[T]) Elements() iterate.Iterable[T] {
	return iterate.IterableFunc[T](l.Iterator)
}

// indexIterator walks a slice without copying it.
type indexIterator[T any] struct {
	items []T
	pos   int
}

func (it *indexIterator[T]) HasNext() bool { return it.pos < len(it.items) }

func (it *indexIterator[T]) Next() T {
	if it.pos >= len(it.items) {
		panic(iterate.ErrExhausted)
	}
	v := it.items[it.pos]
	it.pos++
	return v
}

func (it *indexIterator[T]) Peek() T {
	if it.pos >= len(it.items) {
		panic(iterate.ErrExhausted)
	}
	return it.items[it.pos]
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (returns a new List)
// ─────────────────────────────────────────────────────────────────────────────

// Filter returns a new list with only the items for which fn(item, index)
// returns true.
func (l *List[T]) Filter(fn func(T, int) bool) *List[T] {
	out := make([]T, 0, len(l.items))
	for i, item := range l.items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return &List[T]{items: out}
}

// Reject returns a new list with items for which fn returns true removed.
// It is the complement of [List.Filter].
func (l *List[T]) Reject(fn func(T, int) bool) *List[T] {
	return l.Filter(func(item T, i int) bool { return !fn(item, i) })
}

// Reverse returns a new list with items in reversed order.
func (l *List[T]) Reverse() *List[T] {
	n := len(l.items)
	out := make([]T, n)
	for i, item := range l.items {
		out[n-1-i] = item
	}
	return &List[T]{items: out}
}

// Sort returns a new list sorted by the given less function.
// The sort is stable: equal elements preserve their original order.
func (l *List[T]) Sort(less func(a, b T) bool) *List[T] {
	out := make([]T, len(l.items))
	copy(out, l.items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return &List[T]{items: out}
}

// Take returns a new list with at most the first n items.
func (l *List[T]) Take(n int) *List[T] {
	if n < 0 {
		n = 0
	}
	if n > len(l.items) {
		n = len(l.items)
	}
	return ListFrom(l.items[:n])
}

// TakeWhile returns items from the start while fn returns true.
func (l *List[T]) TakeWhile(fn func(T) bool) *List[T] {
	for i, item := range l.items {
		if !fn(item) {
			return ListFrom(l.items[:i])
		}
	}
	return ListFrom(l.items)
}

// Skip returns a new list without the first n items.
func (l *List[T]) Skip(n int) *List[T] {
	if n < 0 {
		n = 0
	}
	if n >= len(l.items) {
		return NewList[T]()
	}
	return ListFrom(l.items[n:])
}

// SkipWhile skips items while fn returns true, then returns the rest.
func (l *List[T]) SkipWhile(fn func(T) bool) *List[T] {
	for i, item := range l.items {
		if !fn(item) {
			return ListFrom(l.items[i:])
		}
	}
	return NewList[T]()
}

// Concat returns a new list with all items of other appended.
func (l *List[T]) Concat(other *List[T]) *List[T] {
	out := make([]T, 0, len(l.items)+len(other.items))
	out = append(out, l.items...)
	out = append(out, other.items...)
	return &List[T]{items: out}
}

// ─────────────────────────────────────────────────────────────────────────────
// Windowing
// ─────────────────────────────────────────────────────────────────────────────

// Window returns a mutable view over positions [offset, offset+length) of
// the list. Reads and writes through the window alias the list's storage;
// see [Window] for the full contract. Returns [ErrIndexOutOfRange] when the
// requested range does not fit the list.
func (l *List[T]) Window(offset, length int) (*Window[T], error) {
	if offset < 0 || length < 0 || offset+length > len(l.items) {
		return nil, ErrIndexOutOfRange
	}
	return &Window[T]{base: l, offset: offset, length: length}, nil
}
