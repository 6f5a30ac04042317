// Package lazy provides Seq, an immutable sequence whose elements are
// computed on first access and cached, so a Seq can be unbounded and still
// cheap to pass around.
//
// # Realization
//
// A Seq is a chain of nodes. Each node starts unrealized, holding only a
// deferred computation; the first operation that needs the node's content
// (Head, Tail, IsEmpty, a traversal reaching it) runs that computation
// exactly once and caches the result, either an element plus the next node
// or the end of the sequence. Every later access is a cache hit:
//
//	calls := 0
//	s := lazy.From(1, 2, 3).Map(func(n int) int { calls++; return n * n })
//	s.Force() // calls == 3
//	s.Force() // still 3: the mapped values were cached the first time
//
// Realization is per node. Holding a reference to an early node keeps its
// realized suffix alive, and two sequences that share a tail share its
// realized nodes.
//
// # Sharing and concurrency
//
// Each node guards its realization with a mutex: when several goroutines hit
// an unrealized node at once, one runs the computation and the rest wait,
// then read the cache. A realized Seq is immutable and needs no further
// coordination. A computation that (transitively) forces its own node
// deadlocks; do not build self-referential sequences.
//
// # Failure
//
// A panic inside a deferred computation propagates to whichever caller
// forced the node, and nothing is cached: the node stays unrealized and the
// next access runs the computation again. A source that fails transiently
// can therefore be retried simply by accessing the sequence again.
//
// # Unbounded sequences
//
// [Iterate], [Unfold] and [Repeat] build sequences that never end. All
// transformations (Map, Filter, Take, Drop, Zip, Scan, ...) stay lazy, so
// they apply to unbounded sequences as well; only the draining operations
// (Force, Count, Each, FoldLeft over Elements) traverse everything and must
// be given a bounded sequence, usually via [Seq.Take]. Nothing detects
// unboundedness for you: Force on an unbounded Seq does not return. Filter
// has the subtler variant: filtering an unbounded Seq with a predicate that
// never matches again loops forever searching for the next element.
//
// # Printing
//
// String renders only what realization has already paid for, marking the
// unrealized rest with "?": printing never computes elements.
//
//	s := lazy.Iterate(1, func(n int) int { return n * 2 })
//	s.Take(3).Force()
//	fmt.Println(s) // [1 2 4 ?]
package lazy
