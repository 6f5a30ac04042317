package views

import (
	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
)

// View is a deferred transformation pipeline over a traversal source.
// Composing stages costs O(1) and touches no elements; a terminal operation
// (Force, Each, Count, First, or any aggregation function applied to the
// View) drives one fresh cursor pull through every stage. Nothing is cached
// between runs: a second terminal call recomputes each stage from the
// source. See the package documentation for when to prefer a View over a
// lazy.Seq.
//
// View is a small immutable value; pass it by value and compose freely.
// Composing never changes an existing View, so pipelines can share prefixes:
//
//	base := views.Of[int](list.Elements())
//	evens := base.Filter(isEven)
//	odds := base.Filter(isOdd) // base is unaffected by evens
type View[T any] struct {
	src iterate.Iterable[T]
}

// Of starts a pipeline over any traversal source: an eager container's
// Elements, a lazy.Seq's Elements, or another View.
func Of[T any](src iterate.Iterable[T]) View[T] {
	return View[T]{src: src}
}

// Over starts a pipeline over the given items (copied).
func Over[T any](items ...T) View[T] {
	return Of[T](iterate.OverSlice(items))
}

// Iterator returns a cursor that pulls elements through the whole pipeline,
// computing each element on demand. View implements [iterate.Iterable], so
// every aggregation function in the iterate package accepts a View directly.
func (v View[T]) Iterator() iterate.Iterator[T] {
	return v.src.Iterator()
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-preserving stages
// ─────────────────────────────────────────────────────────────────────────────

// Map appends a stage that transforms each element with fn. fn runs once
// per element per terminal run, at the moment the element is pulled.
// For a result element type different from T, use the package-level [Map].
func (v View[T]) Map(fn func(T) T) View[T] {
	return Map(v, fn)
}

// Filter appends a stage that keeps only elements satisfying pred.
func (v View[T]) Filter(pred func(T) bool) View[T] {
	return Of[T](iterate.IterableFunc[T](func() iterate.Iterator[T] {
		return &filterIterator[T]{src: v.src.Iterator(), pred: pred}
	}))
}

// Take appends a stage that stops the pipeline after n elements. Because
// elements are pulled one at a time, upstream stages compute nothing beyond
// the n-th element; Take is the usual way to bound a pipeline over an
// unbounded source.
func (v View[T]) Take(n int) View[T] {
	return Of[T](iterate.IterableFunc[T](func() iterate.Iterator[T] {
		return &takeIterator[T]{src: v.src.Iterator(), left: n}
	}))
}

// Skip appends a stage that discards the first n elements. The skip happens
// at the start of each terminal run; the skipped elements are still computed
// by the upstream stages.
func (v View[T]) Skip(n int) View[T] {
	return Of[T](iterate.IterableFunc[T](func() iterate.Iterator[T] {
		src := v.src.Iterator()
		for i := 0; i < n && src.HasNext(); i++ {
			src.Next()
		}
		return src
	}))
}

// TakeWhile appends a stage that stops the pipeline at the first element
// failing pred. That element is computed (to test it) but not emitted.
func (v View[T]) TakeWhile(pred func(T) bool) View[T] {
	return Of[T](iterate.IterableFunc[T](func() iterate.Iterator[T] {
		return &takeWhileIterator[T]{src: v.src.Iterator(), pred: pred}
	}))
}

// Tap appends a pass-through stage that calls fn on each element without
// changing it. Useful for debugging a pipeline mid-chain:
//
//	v.Map(parse).Tap(func(r Record) { log.Println(r) }).Filter(valid)
func (v View[T]) Tap(fn func(T)) View[T] {
	return v.Map(func(item T) T {
		fn(item)
		return item
	})
}

// ─────────────────────────────────────────────────────────────────────────────
// Type-changing stages
// ─────────────────────────────────────────────────────────────────────────────

// Map appends a stage that transforms each element of v with fn, with a
// result element type of the caller's choosing.
func Map[T, U any](v View[T], fn func(T) U) View[U] {
	return Of[U](iterate.IterableFunc[U](func() iterate.Iterator[U] {
		return &mapIterator[T, U]{src: v.src.Iterator(), fn: fn}
	}))
}

// FlatMap appends a stage that expands each element of v into zero or more
// result elements. fn runs once per upstream element per terminal run, when
// the run first reaches that element's stretch of the output.
func FlatMap[T, U any](v View[T], fn func(T) []U) View[U] {
	return Of[U](iterate.IterableFunc[U](func() iterate.Iterator[U] {
		return &flatMapIterator[T, U]{src: v.src.Iterator(), fn: fn}
	}))
}

// ─────────────────────────────────────────────────────────────────────────────
// Terminals
// ─────────────────────────────────────────────────────────────────────────────

// Force runs the pipeline once and materializes the result as an eager
// list. On a pipeline over an unbounded source without a bounding stage,
// Force does not return.
func (v View[T]) Force() *containers.List[T] {
	return containers.ToList[T](v)
}

// Each runs the pipeline once, calling fn for every element in order.
func (v View[T]) Each(fn func(T)) {
	iterate.Each[T](v, fn)
}

// Count runs the pipeline once and returns the number of elements it
// produced.
func (v View[T]) Count() int {
	return iterate.Count(v.Iterator())
}

// First runs the pipeline just far enough to produce one element. Returns
// the zero value and false when the pipeline is empty. Because elements are
// pulled on demand, First over a long or unbounded source computes only one
// element per stage (plus any elements a Filter stage discards).
func (v View[T]) First() (T, bool) {
	it := v.Iterator()
	if !it.HasNext() {
		var zero T
		return zero, false
	}
	return it.Next(), true
}

// ─────────────────────────────────────────────────────────────────────────────
// Stage cursors
// ─────────────────────────────────────────────────────────────────────────────

type mapIterator[T, U any] struct {
	src iterate.Iterator[T]
	fn  func(T) U
}

func (it *mapIterator[T, U]) HasNext() bool { return it.src.HasNext() }

func (it *mapIterator[T, U]) Next() U {
	return it.fn(it.src.Next())
}

// filterIterator looks ahead to the next match lazily, on the first HasNext
// or Next after an emit, so that building the cursor tests nothing.
type filterIterator[T any] struct {
	src     iterate.Iterator[T]
	pred    func(T) bool
	pending T
	ok      bool
	primed  bool
}

func (it *filterIterator[T]) prime() {
	if it.primed {
		return
	}
	it.primed = true
	for it.src.HasNext() {
		v := it.src.Next()
		if it.pred(v) {
			it.pending, it.ok = v, true
			return
		}
	}
	it.ok = false
}

func (it *filterIterator[T]) HasNext() bool {
	it.prime()
	return it.ok
}

func (it *filterIterator[T]) Next() T {
	it.prime()
	if !it.ok {
		panic(iterate.ErrExhausted)
	}
	it.primed, it.ok = false, false
	return it.pending
}

type takeIterator[T any] struct {
	src  iterate.Iterator[T]
	left int
}

func (it *takeIterator[T]) HasNext() bool {
	return it.left > 0 && it.src.HasNext()
}

func (it *takeIterator[T]) Next() T {
	if !it.HasNext() {
		panic(iterate.ErrExhausted)
	}
	it.left--
	return it.src.Next()
}

// takeWhileIterator is exhausted permanently once pred fails, even if the
// upstream cursor still has elements.
type takeWhileIterator[T any] struct {
	src     iterate.Iterator[T]
	pred    func(T) bool
	pending T
	ok      bool
	primed  bool
	done    bool
}

func (it *takeWhileIterator[T]) prime() {
	if it.primed || it.done {
		return
	}
	it.primed = true
	if !it.src.HasNext() {
		it.ok, it.done = false, true
		return
	}
	v := it.src.Next()
	if !it.pred(v) {
		it.ok, it.done = false, true
		return
	}
	it.pending, it.ok = v, true
}

func (it *takeWhileIterator[T]) HasNext() bool {
	it.prime()
	return it.ok
}

func (it *takeWhileIterator[T]) Next() T {
	it.prime()
	if !it.ok {
		panic(iterate.ErrExhausted)
	}
	it.primed, it.ok = false, false
	return it.pending
}

type flatMapIterator[T, U any] struct {
	src iterate.Iterator[T]
	fn  func(T) []U
	buf []U
	pos int
}

func (it *flatMapIterator[T, U]) HasNext() bool {
	for it.pos >= len(it.buf) {
		if !it.src.HasNext() {
			return false
		}
		it.buf = it.fn(it.src.Next())
		it.pos = 0
	}
	return true
}

func (it *flatMapIterator[T, U]) Next() U {
	if !it.HasNext() {
		panic(iterate.ErrExhausted)
	}
	v := it.buf[it.pos]
	it.pos++
	return v
}
