// Package iterate defines the traversal contract shared by every container
// and sequence type in this module, together with cursor sources and the
// aggregation functions built on top of the contract.
//
// # The contract
//
// Two small interfaces carry the whole module:
//
//	type Iterator[T any] interface {
//	    HasNext() bool
//	    Next() T
//	}
//
//	type Iterable[T any] interface {
//	    Iterator() Iterator[T]
//	}
//
// An [Iterator] is a single-use cursor: HasNext is a pure query, Next yields
// the next element and advances. Exhaustion is final. Calling Next on an
// exhausted cursor is a programming error and panics with [ErrExhausted].
//
// An [Iterable] is anything that can hand out a fresh cursor. Obtaining a
// cursor never mutates the source, so any number of independent traversals
// may be taken from the same Iterable.
//
// # Aggregation
//
// Folds, reductions, scans and zips are defined once, against [Iterable], and
// therefore work uniformly over every container in this module:
//
//	nums := iterate.Over(1, 7, 2, 9)
//	iterate.FoldLeft(nums, 0, func(acc, n int) int { return acc - n })  // → -19
//	iterate.FoldRight(nums, 0, func(n, acc int) int { return n - acc }) // → -13
//
// FoldLeft associates strictly to the left, FoldRight strictly to the right.
// [Zip] stops at the shorter input, [ZipAll] pads the shorter input with a
// default and runs to the longer one, and [ScanLeft] emits every partial
// fold, so its output is always one element longer than its input.
//
// # Interop with range-over-func
//
// [Seq] and [FromSeq] convert between this package's cursors and the standard
// library's [iter.Seq], so an Iterable can appear in a range statement and a
// range-over-func sequence can feed any aggregation here.
//
// # Portability
//
// The cursor protocol maps directly onto Java's Iterator (hasNext/next),
// Python's iterator protocol (__next__ raising StopIteration) and Rust's
// Iterator::next returning Option. The panic on over-advance plays the role
// StopIteration plays in Python code that calls next() without checking.
package iterate
