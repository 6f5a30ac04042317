package containers

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/v2/trees/redblacktree"

	"github.com/hasbyte1/go-collections/iterate"
)

// ─────────────────────────────────────────────────────────────────────────────
// SortedMap
// ─────────────────────────────────────────────────────────────────────────────

// SortedMap is a key/value container that keeps its entries ordered by key,
// backed by a red-black tree. All traversal (Keys, Values, Each, Iterator,
// String) runs in ascending key order, and [SortedMap.First] and
// [SortedMap.Last] expose the extremes directly.
type SortedMap[K comparable, V any] struct {
	tree *redblacktree.Tree[K, V]
}

// NewSortedMap creates an empty SortedMap ordered by the natural order of K.
func NewSortedMap[K cmp.Ordered, V any]() *SortedMap[K, V] {
	return &SortedMap[K, V]{tree: redblacktree.New[K, V]()}
}

// NewSortedMapBy creates an empty SortedMap ordered by compare, which must
// return a negative number when a sorts before b, zero when they rank
// equally, and a positive number otherwise.
func NewSortedMapBy[K comparable, V any](compare func(a, b K) int) *SortedMap[K, V] {
	return &SortedMap[K, V]{tree: redblacktree.NewWith[K, V](compare)}
}

// Count returns the number of entries.
func (m *SortedMap[K, V]) Count() int { return m.tree.Size() }

// IsEmpty reports whether the map contains no entries.
func (m *SortedMap[K, V]) IsEmpty() bool { return m.tree.Empty() }

// IsNotEmpty reports whether the map has at least one entry.
func (m *SortedMap[K, V]) IsNotEmpty() bool { return !m.tree.Empty() }

// Put stores value under key, replacing any existing entry.
func (m *SortedMap[K, V]) Put(key K, value V) {
	m.tree.Put(key, value)
}

// Get returns the value stored under key together with a presence flag.
func (m *SortedMap[K, V]) Get(key K) (V, bool) {
	return m.tree.Get(key)
}

// Has reports whether key is present.
func (m *SortedMap[K, V]) Has(key K) bool {
	_, ok := m.tree.Get(key)
	return ok
}

// Delete removes the entry under key, reporting whether it was present.
func (m *SortedMap[K, V]) Delete(key K) bool {
	_, ok := m.tree.Get(key)
	if ok {
		m.tree.Remove(key)
	}
	return ok
}

// Clear removes all entries.
func (m *SortedMap[K, V]) Clear() {
	m.tree.Clear()
}

// Keys returns the keys as a new slice, in ascending order.
func (m *SortedMap[K, V]) Keys() []K { return m.tree.Keys() }

// Values returns the values as a new slice, in ascending key order.
func (m *SortedMap[K, V]) Values() []V { return m.tree.Values() }

// First returns the entry with the smallest key.
// Returns a zero pair and false when the map is empty.
func (m *SortedMap[K, V]) First() (iterate.Pair[K, V], bool) {
	n := m.tree.Left()
	if n == nil {
		return iterate.Pair[K, V]{}, false
	}
	return iterate.Pair[K, V]{First: n.Key, Second: n.Value}, true
}

// Last returns the entry with the largest key.
// Returns a zero pair and false when the map is empty.
func (m *SortedMap[K, V]) Last() (iterate.Pair[K, V], bool) {
	n := m.tree.Right()
	if n == nil {
		return iterate.Pair[K, V]{}, false
	}
	return iterate.Pair[K, V]{First: n.Key, Second: n.Value}, true
}

// Each calls fn for every entry, in ascending key order.
func (m *SortedMap[K, V]) Each(fn func(K, V)) {
	keys := m.tree.Keys()
	values := m.tree.Values()
	for i, k := range keys {
		fn(k, values[i])
	}
}

// Iterator returns a cursor over a snapshot of the entries taken now, as
// key/value [iterate.Pair]s in ascending key order.
func (m *SortedMap[K, V]) Iterator() iterate.Iterator[iterate.Pair[K, V]] {
	keys := m.tree.Keys()
	values := m.tree.Values()
	pairs := make([]iterate.Pair[K, V], len(keys))
	for i := range keys {
		pairs[i] = iterate.Pair[K, V]{First: keys[i], Second: values[i]}
	}
	return &indexIterator[iterate.Pair[K, V]]{items: pairs}
}

// Elements returns the map as an interface-typed traversal capability over
// its key/value pairs, in ascending key order.
func (m *SortedMap[K, V]) Elements() iterate.Iterable[iterate.Pair[K, V]] {
	return iterate.IterableFunc[iterate.Pair[K, V]](m.Iterator)
}

// String returns a braced listing of the entries in ascending key order.
func (m *SortedMap[K, V]) String() string {
	parts := make([]string, 0, m.tree.Size())
	m.Each(func(k K, v V) {
		parts = append(parts, fmt.Sprintf("%v:%v", k, v))
	})
	return "{" + strings.Join(parts, " ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// SortedSet
// ─────────────────────────────────────────────────────────────────────────────

// SortedSet is a container of unique items kept in ascending order, backed
// by a red-black tree. Traversal always runs in order, and [SortedSet.Min]
// and [SortedSet.Max] expose the extremes directly.
type SortedSet[T comparable] struct {
	tree    *redblacktree.Tree[T, struct{}]
	compare func(a, b T) int
}

// NewSortedSet creates a SortedSet ordered by the natural order of T,
// holding the given items.
func NewSortedSet[T cmp.Ordered](items ...T) *SortedSet[T] {
	s := NewSortedSetBy[T](cmp.Compare[T])
	for _, item := range items {
		s.Add(item)
	}
	return s
}

// NewSortedSetBy creates an empty SortedSet ordered by compare, which must
// return a negative number when a sorts before b, zero when they rank
// equally, and a positive number otherwise.
func NewSortedSetBy[T comparable](compare func(a, b T) int) *SortedSet[T] {
	return &SortedSet[T]{
		tree:    redblacktree.NewWith[T, struct{}](compare),
		compare: compare,
	}
}

// Count returns the number of distinct items.
func (s *SortedSet[T]) Count() int { return s.tree.Size() }

// IsEmpty reports whether the set contains no items.
func (s *SortedSet[T]) IsEmpty() bool { return s.tree.Empty() }

// IsNotEmpty reports whether the set has at least one item.
func (s *SortedSet[T]) IsNotEmpty() bool { return !s.tree.Empty() }

// Add inserts item; inserting an item already present has no effect.
// It is the method through which [Into] fills a sorted set.
func (s *SortedSet[T]) Add(item T) {
	s.tree.Put(item, struct{}{})
}

// Remove deletes item, reporting whether it was present.
func (s *SortedSet[T]) Remove(item T) bool {
	_, ok := s.tree.Get(item)
	if ok {
		s.tree.Remove(item)
	}
	return ok
}

// Contains reports whether item is in the set.
func (s *SortedSet[T]) Contains(item T) bool {
	_, ok := s.tree.Get(item)
	return ok
}

// Clear removes all items.
func (s *SortedSet[T]) Clear() {
	s.tree.Clear()
}

// Min returns the smallest item.
// Returns the zero value and false when the set is empty.
func (s *SortedSet[T]) Min() (T, bool) {
	n := s.tree.Left()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Key, true
}

// Max returns the largest item.
// Returns the zero value and false when the set is empty.
func (s *SortedSet[T]) Max() (T, bool) {
	n := s.tree.Right()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.Key, true
}

// Union returns a new sorted set, ordered like s, with every item that is in
// s or in other.
func (s *SortedSet[T]) Union(other *SortedSet[T]) *SortedSet[T] {
	out := NewSortedSetBy(s.compare)
	for _, item := range s.tree.Keys() {
		out.Add(item)
	}
	for _, item := range other.tree.Keys() {
		out.Add(item)
	}
	return out
}

// Intersect returns a new sorted set, ordered like s, with the items present
// in both s and other.
func (s *SortedSet[T]) Intersect(other *SortedSet[T]) *SortedSet[T] {
	out := NewSortedSetBy(s.compare)
	for _, item := range s.tree.Keys() {
		if other.Contains(item) {
			out.Add(item)
		}
	}
	return out
}

// Diff returns a new sorted set, ordered like s, with the items of s that
// are not in other.
func (s *SortedSet[T]) Diff(other *SortedSet[T]) *SortedSet[T] {
	out := NewSortedSetBy(s.compare)
	for _, item := range s.tree.Keys() {
		if !other.Contains(item) {
			out.Add(item)
		}
	}
	return out
}

// Each calls fn for every item, in ascending order.
func (s *SortedSet[T]) Each(fn func(T)) {
	for _, item := range s.tree.Keys() {
		fn(item)
	}
}

// ToSlice returns the items as a new slice, in ascending order.
func (s *SortedSet[T]) ToSlice() []T { return s.tree.Keys() }

// Iterator returns a cursor over a snapshot of the items taken now, in
// ascending order.
func (s *SortedSet[T]) Iterator() iterate.Iterator[T] {
	return &indexIterator[T]{items: s.tree.Keys()}
}

// Elements returns the set as an interface-typed traversal capability, in
// ascending order.
func (s *SortedSet[T]) Elements() iterate.Iterable[T] {
	return iterate.IterableFunc[T](s.Iterator)
}

// String returns a braced listing of the items in ascending order.
func (s *SortedSet[T]) String() string {
	parts := make([]string, 0, s.tree.Size())
	for _, item := range s.tree.Keys() {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
