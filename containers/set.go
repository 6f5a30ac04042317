package containers

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-collections/iterate"
)

// Set is an unordered container of unique comparable items, backed by a
// native Go map. Adding an item that is already present has no effect.
//
// Traversal order is unspecified and may differ between cursors taken from
// the same set. When a stable order matters, use [SortedSet] instead or sort
// the result of ToSlice.
type Set[T comparable] struct {
	items map[T]struct{}
}

// NewSet creates a Set holding the given items, duplicates collapsed.
func NewSet[T comparable](items ...T) *Set[T] {
	s := &Set[T]{items: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.items[item] = struct{}{}
	}
	return s
}

// SetFrom creates a Set from a slice, duplicates collapsed.
func SetFrom[T comparable](items []T) *Set[T] {
	return NewSet(items...)
}

// Count returns the number of distinct items.
func (s *Set[T]) Count() int { return len(s.items) }

// IsEmpty reports whether the set contains no items.
func (s *Set[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsNotEmpty reports whether the set has at least one item.
func (s *Set[T]) IsNotEmpty() bool { return len(s.items) > 0 }

// Add inserts item; inserting an item already present has no effect.
// It is the method through which [Into] fills a set.
func (s *Set[T]) Add(item T) {
	s.items[item] = struct{}{}
}

// Remove deletes item, reporting whether it was present.
func (s *Set[T]) Remove(item T) bool {
	_, ok := s.items[item]
	delete(s.items, item)
	return ok
}

// Contains reports whether item is in the set.
func (s *Set[T]) Contains(item T) bool {
	_, ok := s.items[item]
	return ok
}

// Clear removes all items.
func (s *Set[T]) Clear() {
	clear(s.items)
}

// Union returns a new set with every item that is in s or in other.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for item := range s.items {
		out.items[item] = struct{}{}
	}
	for item := range other.items {
		out.items[item] = struct{}{}
	}
	return out
}

// Intersect returns a new set with the items present in both s and other.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for item := range s.items {
		if other.Contains(item) {
			out.items[item] = struct{}{}
		}
	}
	return out
}

// Diff returns a new set with the items of s that are not in other.
func (s *Set[T]) Diff(other *Set[T]) *Set[T] {
	out := NewSet[T]()
	for item := range s.items {
		if !other.Contains(item) {
			out.items[item] = struct{}{}
		}
	}
	return out
}

// Each calls fn for every item, in unspecified order.
func (s *Set[T]) Each(fn func(T)) {
	for item := range s.items {
		fn(item)
	}
}

// ToSlice returns the items as a new slice, in unspecified order.
func (s *Set[T]) ToSlice() []T {
	out := make([]T, 0, len(s.items))
	for item := range s.items {
		out = append(out, item)
	}
	return out
}

// Iterator returns a cursor over a snapshot of the items taken now, in
// unspecified order. Mutations after the cursor is created are not observed.
func (s *Set[T]) Iterator() iterate.Iterator[T] {
	return &indexIterator[T]{items: s.ToSlice()}
}

// Elements returns the set as an interface-typed traversal capability.
func (s *Set[T]) Elements() iterate.Iterable[T] {
	return iterate.IterableFunc[T](s.Iterator)
}

// String returns a braced listing of the items, in unspecified order.
func (s *Set[T]) String() string {
	parts := make([]string, 0, len(s.items))
	for item := range s.items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
