package containers

import "github.com/hasbyte1/go-collections/iterate"

// Sink is anything elements can be poured into one at a time. [List],
// [LinkedList], [Set] and [SortedSet] implement it, which is what lets
// [Into] target any of them with one function.
type Sink[T any] interface {
	Add(item T)
}

// ToList materializes src into a new [List], preserving traversal order.
//
// ToList traverses src completely: handing it a source that never ends
// (an unbounded lazy sequence, for instance) will not return. Bound such
// sources first, e.g. with Take.
func ToList[T any](src iterate.Iterable[T]) *List[T] {
	return &List[T]{items: iterate.Collect(src.Iterator())}
}

// ToSet materializes src into a new [Set], collapsing duplicates.
// Like [ToList] it traverses src completely.
func ToSet[T comparable](src iterate.Iterable[T]) *Set[T] {
	out := NewSet[T]()
	for it := src.Iterator(); it.HasNext(); {
		out.Add(it.Next())
	}
	return out
}

// ToMap materializes a source of key/value pairs into a new [Map]. When two
// pairs share a key, the later one wins. Like [ToList] it traverses src
// completely.
func ToMap[K comparable, V any](src iterate.Iterable[iterate.Pair[K, V]]) *Map[K, V] {
	out := NewMap[K, V]()
	for it := src.Iterator(); it.HasNext(); {
		p := it.Next()
		out.Put(p.First, p.Second)
	}
	return out
}

// Into pours every element of src into dst and returns dst, so the target
// container kind is the caller's choice:
//
//	sorted := containers.Into(containers.NewSortedSet[int](), nums)
//
// Like [ToList] it traverses src completely.
func Into[T any, S Sink[T]](dst S, src iterate.Iterable[T]) S {
	for it := src.Iterator(); it.HasNext(); {
		dst.Add(it.Next())
	}
	return dst
}
