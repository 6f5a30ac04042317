package containers

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/hasbyte1/go-collections/iterate"
)

// LinkedMap is a key/value container that remembers the order in which keys
// were first inserted, backed by go-ordered-map's hash map with a linked
// entry list. Traversal (Keys, Values, Each, Iterator, String) runs in
// insertion order; re-putting an existing key keeps its original position.
type LinkedMap[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

// NewLinkedMap creates an empty LinkedMap.
func NewLinkedMap[K comparable, V any]() *LinkedMap[K, V] {
	return &LinkedMap[K, V]{om: orderedmap.New[K, V]()}
}

// Count returns the number of entries.
func (m *LinkedMap[K, V]) Count() int { return m.om.Len() }

// IsEmpty reports whether the map contains no entries.
func (m *LinkedMap[K, V]) IsEmpty() bool { return m.om.Len() == 0 }

// IsNotEmpty reports whether the map has at least one entry.
func (m *LinkedMap[K, V]) IsNotEmpty() bool { return m.om.Len() > 0 }

// Put stores value under key. A new key goes to the end of the order; an
// existing key keeps its position and only the value is replaced.
func (m *LinkedMap[K, V]) Put(key K, value V) {
	m.om.Set(key, value)
}

// Get returns the value stored under key together with a presence flag.
func (m *LinkedMap[K, V]) Get(key K) (V, bool) {
	return m.om.Get(key)
}

// Has reports whether key is present.
func (m *LinkedMap[K, V]) Has(key K) bool {
	_, ok := m.om.Get(key)
	return ok
}

// Delete removes the entry under key, reporting whether it was present.
func (m *LinkedMap[K, V]) Delete(key K) bool {
	_, ok := m.om.Delete(key)
	return ok
}

// Clear removes all entries.
func (m *LinkedMap[K, V]) Clear() {
	m.om = orderedmap.New[K, V]()
}

// Oldest returns the earliest-inserted entry.
// Returns a zero pair and false when the map is empty.
func (m *LinkedMap[K, V]) Oldest() (iterate.Pair[K, V], bool) {
	p := m.om.Oldest()
	if p == nil {
		return iterate.Pair[K, V]{}, false
	}
	return iterate.Pair[K, V]{First: p.Key, Second: p.Value}, true
}

// Newest returns the latest-inserted entry.
// Returns a zero pair and false when the map is empty.
func (m *LinkedMap[K, V]) Newest() (iterate.Pair[K, V], bool) {
	p := m.om.Newest()
	if p == nil {
		return iterate.Pair[K, V]{}, false
	}
	return iterate.Pair[K, V]{First: p.Key, Second: p.Value}, true
}

// Keys returns the keys as a new slice, in insertion order.
func (m *LinkedMap[K, V]) Keys() []K {
	out := make([]K, 0, m.om.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Values returns the values as a new slice, in insertion order.
func (m *LinkedMap[K, V]) Values() []V {
	out := make([]V, 0, m.om.Len())
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// Each calls fn for every entry, in insertion order.
func (m *LinkedMap[K, V]) Each(fn func(K, V)) {
	for p := m.om.Oldest(); p != nil; p = p.Next() {
		fn(p.Key, p.Value)
	}
}

// Iterator returns a cursor over the entries as key/value [iterate.Pair]s in
// insertion order. The cursor follows the live entry links; mutating the map
// during traversal gives undefined results.
func (m *LinkedMap[K, V]) Iterator() iterate.Iterator[iterate.Pair[K, V]] {
	return &linkedMapIterator[K, V]{entry: m.om.Oldest()}
}

// Elements returns the map as an interface-typed traversal capability over
// its key/value pairs, in insertion order.
func (m *LinkedMap[K, V]) Elements() iterate.Iterable[iterate.Pair[K, V]] {
	return iterate.IterableFunc[iterate.Pair[K, V]](m.Iterator)
}

// String returns a braced listing of the entries in insertion order.
func (m *LinkedMap[K, V]) String() string {
	parts := make([]string, 0, m.om.Len())
	m.Each(func(k K, v V) {
		parts = append(parts, fmt.Sprintf("%v:%v", k, v))
	})
	return "{" + strings.Join(parts, " ") + "}"
}

type linkedMapIterator[K comparable, V any] struct {
	entry *orderedmap.Pair[K, V]
}

func (it *linkedMapIterator[K, V]) HasNext() bool { return it.entry != nil }

func (it *linkedMapIterator[K, V]) Next() iterate.Pair[K, V] {
	if it.entry == nil {
		panic(iterate.ErrExhausted)
	}
	p := iterate.Pair[K, V]{First: it.entry.Key, Second: it.entry.Value}
	it.entry = it.entry.Next()
	return p
}
