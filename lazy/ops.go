package lazy

import (
	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
)

// This file contains the transformations and draining operations on Seq.
// Type-preserving transformations are methods; type-changing ones (Map to a
// different element type, FlatMap, Scan, the zip family) are package-level
// functions, since Go methods cannot introduce type parameters. Every
// transformation is lazy: it builds new nodes in O(1) and computes nothing
// until the result is walked, so all of them apply to unbounded sequences.

// ─────────────────────────────────────────────────────────────────────────────
// Type-preserving transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map returns the sequence of fn applied to each element. fn runs once per
// element, when the corresponding result node is first realized; the result
// is cached in that node, so re-reading a mapped prefix never re-runs fn.
// For a result element type different from T, use the package-level [Map].
func (s *Seq[T]) Map(fn func(T) T) *Seq[T] {
	return Map(s, fn)
}

// Filter returns the sequence of elements satisfying pred. Realizing one
// result node walks the source until the next match, so filtering an
// unbounded sequence with a predicate that never matches again does not
// return. Skipped elements are not re-tested on later traversals: the result
// node caches the match and the position after it.
func (s *Seq[T]) Filter(pred func(T) bool) *Seq[T] {
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		for node := s; ; {
			head, ok := node.Head()
			if !ok {
				var zero T
				return zero, nil, false
			}
			tail, _ := node.Tail()
			if pred(head) {
				return head, tail.Filter(pred), true
			}
			node = tail
		}
	}}
}

// Take returns the sequence of at most the first n elements. Realizing the
// whole result forces at most n source nodes, which is what makes draining
// operations safe on unbounded sequences:
//
//	lazy.Iterate(0, func(n int) int { return n + 1 }).Take(5).Force()
//	// [0 1 2 3 4], in bounded time
func (s *Seq[T]) Take(n int) *Seq[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		head, ok := s.Head()
		if !ok {
			var zero T
			return zero, nil, false
		}
		tail, _ := s.Tail()
		return head, tail.Take(n - 1), true
	}}
}

// TakeWhile returns the longest prefix whose elements all satisfy pred.
// The first failing element is forced but not included.
func (s *Seq[T]) TakeWhile(pred func(T) bool) *Seq[T] {
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		head, ok := s.Head()
		if !ok || !pred(head) {
			var zero T
			return zero, nil, false
		}
		tail, _ := s.Tail()
		return head, tail.TakeWhile(pred), true
	}}
}

// Drop returns the sequence without its first n elements. The skip happens
// when the result is first inspected, forcing n source nodes in one step.
func (s *Seq[T]) Drop(n int) *Seq[T] {
	if n <= 0 {
		return s
	}
	return Defer(func() *Seq[T] {
		node := s
		for i := 0; i < n; i++ {
			tail, ok := node.Tail()
			if !ok {
				return Empty[T]()
			}
			node = tail
		}
		return node
	})
}

// DropWhile returns the sequence from the first element that fails pred.
func (s *Seq[T]) DropWhile(pred func(T) bool) *Seq[T] {
	return Defer(func() *Seq[T] {
		node := s
		for {
			head, ok := node.Head()
			if !ok || !pred(head) {
				return node
			}
			node, _ = node.Tail()
		}
	})
}

// Concat returns the elements of s followed by the elements of other.
// Neither sequence is forced by the call; other is not touched until s is
// exhausted.
func (s *Seq[T]) Concat(other *Seq[T]) *Seq[T] {
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		if head, ok := s.Head(); ok {
			tail, _ := s.Tail()
			return head, tail.Concat(other), true
		}
		head, ok := other.Head()
		if !ok {
			var zero T
			return zero, nil, false
		}
		tail, _ := other.Tail()
		return head, tail, true
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-changing transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map returns the sequence of fn applied to each element of s, with a result
// element type of the caller's choosing. See [Seq.Map] for the evaluation
// and caching contract.
func Map[T, U any](s *Seq[T], fn func(T) U) *Seq[U] {
	return &Seq[U]{expand: func() (U, *Seq[U], bool) {
		head, ok := s.Head()
		if !ok {
			var zero U
			return zero, nil, false
		}
		tail, _ := s.Tail()
		return fn(head), Map(tail, fn), true
	}}
}

// FlatMap maps each element of s to a sequence and concatenates the results
// in order. fn runs once per source element, when its stretch of the result
// is first reached; the inner sequences themselves stay lazy, so fn may
// return unbounded sequences as long as the consumer is bounded.
func FlatMap[T, U any](s *Seq[T], fn func(T) *Seq[U]) *Seq[U] {
	return Defer(func() *Seq[U] {
		head, ok := s.Head()
		if !ok {
			return Empty[U]()
		}
		tail, _ := s.Tail()
		return fn(head).Concat(FlatMap(tail, fn))
	})
}

// Scan returns the running partial folds of s: first init, then the fold of
// each successive prefix. The result is one element longer than s and every
// bit as lazy: scanning an unbounded sequence is fine as long as the
// consumer is bounded.
//
//	lazy.Scan(lazy.From(1, 7, 2, 9), 0,
//	    func(acc, n int) int { return acc + n }) // [0 1 8 10 19]
func Scan[T, A any](s *Seq[T], init A, op func(acc A, item T) A) *Seq[A] {
	return Cons(init, func() *Seq[A] {
		head, ok := s.Head()
		if !ok {
			return Empty[A]()
		}
		tail, _ := s.Tail()
		return Scan(tail, op(init, head), op)
	})
}

// Zip pairs the elements of a and b positionally, stopping at the shorter
// sequence. No node of the longer sequence beyond that point is forced.
func Zip[A, B any](a *Seq[A], b *Seq[B]) *Seq[iterate.Pair[A, B]] {
	return &Seq[iterate.Pair[A, B]]{expand: func() (iterate.Pair[A, B], *Seq[iterate.Pair[A, B]], bool) {
		ha, ok := a.Head()
		if !ok {
			return iterate.Pair[A, B]{}, nil, false
		}
		hb, ok := b.Head()
		if !ok {
			return iterate.Pair[A, B]{}, nil, false
		}
		ta, _ := a.Tail()
		tb, _ := b.Tail()
		return iterate.PairOf(ha, hb), Zip(ta, tb), true
	}}
}

// ZipAll pairs the elements of a and b positionally, running to the longer
// sequence; once one side ends, its default (defA or defB) fills the
// remaining pairs. ZipAll of two unbounded sequences is itself unbounded.
func ZipAll[A, B any](a *Seq[A], b *Seq[B], defA A, defB B) *Seq[iterate.Pair[A, B]] {
	return &Seq[iterate.Pair[A, B]]{expand: func() (iterate.Pair[A, B], *Seq[iterate.Pair[A, B]], bool) {
		ha, okA := a.Head()
		hb, okB := b.Head()
		if !okA && !okB {
			return iterate.Pair[A, B]{}, nil, false
		}
		ta, tb := a, b
		if okA {
			ta, _ = a.Tail()
		} else {
			ha = defA
		}
		if okB {
			tb, _ = b.Tail()
		} else {
			hb = defB
		}
		return iterate.PairOf(ha, hb), ZipAll(ta, tb, defA, defB), true
	}}
}

// ZipWithIndex pairs each element of s with its zero-based position.
func ZipWithIndex[T any](s *Seq[T]) *Seq[iterate.Pair[T, int]] {
	return zipIndex(s, 0)
}

func zipIndex[T any](s *Seq[T], pos int) *Seq[iterate.Pair[T, int]] {
	return &Seq[iterate.Pair[T, int]]{expand: func() (iterate.Pair[T, int], *Seq[iterate.Pair[T, int]], bool) {
		head, ok := s.Head()
		if !ok {
			return iterate.Pair[T, int]{}, nil, false
		}
		tail, _ := s.Tail()
		return iterate.PairOf(head, pos), zipIndex(tail, pos+1), true
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Draining operations
// ─────────────────────────────────────────────────────────────────────────────

// Force realizes every node and returns the elements as an eager list.
// On an unbounded sequence Force does not return; bound the sequence first,
// normally with [Seq.Take]. Nothing detects unboundedness for you.
func (s *Seq[T]) Force() *containers.List[T] {
	return containers.ToList[T](s.Elements())
}

// Each calls fn for every element in order, realizing nodes as it goes.
// Like [Seq.Force] it traverses the whole sequence and must be given a
// bounded one.
func (s *Seq[T]) Each(fn func(T)) {
	iterate.Each(s.Elements(), fn)
}

// Count realizes every node and returns the number of elements. Unlike
// cursor-level counting this does not consume anything: the elements stay
// cached and a later traversal re-reads them for free.
func (s *Seq[T]) Count() int {
	return iterate.Count(s.Iterator())
}
