package containers

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-collections/iterate"
)

// Map is an unordered key/value container backed by a native Go map.
//
// Traversal order is unspecified and may differ between cursors taken from
// the same map. [SortedMap] orders entries by key, [LinkedMap] by insertion.
type Map[K comparable, V any] struct {
	entries map[K]V
}

// NewMap creates an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{entries: make(map[K]V)}
}

// MapFrom creates a Map with a copy of the entries of m.
func MapFrom[K comparable, V any](m map[K]V) *Map[K, V] {
	entries := make(map[K]V, len(m))
	for k, v := range m {
		entries[k] = v
	}
	return &Map[K, V]{entries: entries}
}

// Count returns the number of entries.
func (m *Map[K, V]) Count() int { return len(m.entries) }

// IsEmpty reports whether the map contains no entries.
func (m *Map[K, V]) IsEmpty() bool { return len(m.entries) == 0 }

// IsNotEmpty reports whether the map has at least one entry.
func (m *Map[K, V]) IsNotEmpty() bool { return len(m.entries) > 0 }

// Put stores value under key, replacing any existing entry.
func (m *Map[K, V]) Put(key K, value V) {
	m.entries[key] = value
}

// Get returns the value stored under key together with a presence flag.
func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.entries[key]
	return ok
}

// Delete removes the entry under key, reporting whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	_, ok := m.entries[key]
	delete(m.entries, key)
	return ok
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	clear(m.entries)
}

// Merge copies every entry of other into m, replacing entries with equal
// keys.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	for k, v := range other.entries {
		m.entries[k] = v
	}
}

// Keys returns the keys as a new slice, in unspecified order.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, len(m.entries))
	for k := range m.entries {
		out = append(out, k)
	}
	return out
}

// Values returns the values as a new slice, in unspecified order.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, len(m.entries))
	for _, v := range m.entries {
		out = append(out, v)
	}
	return out
}

// ToGoMap returns a copy of the entries as a native Go map.
func (m *Map[K, V]) ToGoMap() map[K]V {
	out := make(map[K]V, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// Each calls fn for every entry, in unspecified order.
func (m *Map[K, V]) Each(fn func(K, V)) {
	for k, v := range m.entries {
		fn(k, v)
	}
}

// Iterator returns a cursor over a snapshot of the entries taken now, as
// key/value [iterate.Pair]s in unspecified order. Mutations after the cursor
// is created are not observed.
func (m *Map[K, V]) Iterator() iterate.Iterator[iterate.Pair[K, V]] {
	pairs := make([]iterate.Pair[K, V], 0, len(m.entries))
	for k, v := range m.entries {
		pairs = append(pairs, iterate.Pair[K, V]{First: k, Second: v})
	}
	return &indexIterator[iterate.Pair[K, V]]{items: pairs}
}

// Elements returns the map as an interface-typed traversal capability over
// its key/value pairs.
func (m *Map[K, V]) Elements() iterate.Iterable[iterate.Pair[K, V]] {
	return iterate.IterableFunc[iterate.Pair[K, V]](m.Iterator)
}

// String returns a braced listing of the entries, in unspecified order.
func (m *Map[K, V]) String() string {
	parts := make([]string, 0, len(m.entries))
	for k, v := range m.entries {
		parts = append(parts, fmt.Sprintf("%v:%v", k, v))
	}
	return "{" + strings.Join(parts, " ") + "}"
}
