// Package containers provides the eager collection types of this module:
// ordered lists (contiguous and linked), hash and tree backed sets and maps,
// an insertion-ordered map, and a mutable windowed view over a list.
//
// # Mutability
//
// Unlike the lazy and view types in this module, containers are plain mutable
// values. Mutating methods (Add, Put, RemoveAt, Clear, ...) change the
// receiver in place; transformation methods on [List] (Filter, Sort, Take,
// ...) return a new List and leave the receiver untouched.
//
// Containers perform no internal locking. A single writer with any number of
// concurrent readers requires external synchronization; read-only sharing
// needs none.
//
// # Traversal
//
// Every container implements the iterate.Iterable capability, so all of the
// aggregation in the iterate package applies uniformly:
//
//	l := containers.NewList(3, 1, 4, 1, 5)
//	sum := iterate.Sum(l.Elements())
//
// The Elements method returns the container as an interface-typed capability,
// which keeps type inference happy at call sites. Cursors traverse a
// snapshot of hash-backed containers and the live structure of ordered ones;
// either way, obtaining a cursor never mutates the container.
//
// Traversal order is part of each type's contract: [List], [LinkedList],
// [SortedMap], [SortedSet] and [LinkedMap] have a defined order, while [Set]
// and [Map] traverse in unspecified order.
//
// # Ordered backing stores
//
// [SortedMap] and [SortedSet] keep their elements ordered by key using the
// red-black tree from github.com/emirpasic/gods/v2. [LinkedMap] preserves
// insertion order using github.com/wk8/go-ordered-map. The wrappers expose
// the same surface as their unordered counterparts plus the order-dependent
// extras (First, Last, Min, Max, Oldest, Newest).
//
// # Conversions
//
// [ToList], [ToSet] and [ToMap] materialize any capability into a container;
// [Into] fills any [Sink] (a container accepting Add) from a capability.
// All conversions fully traverse their source, so a source that never ends
// must be bounded first.
package containers
