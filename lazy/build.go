package lazy

import "github.com/hasbyte1/go-collections/iterate"

// From returns a lazy sequence over the given items (copied). The values
// already exist, so only the node structure is deferred.
func From[T any](items ...T) *Seq[T] {
	return FromSlice(items)
}

// FromSlice returns a lazy sequence over a copy of items.
func FromSlice[T any](items []T) *Seq[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	var at func(i int) *Seq[T]
	at = func(i int) *Seq[T] {
		if i >= len(dst) {
			return Empty[T]()
		}
		return &Seq[T]{expand: func() (T, *Seq[T], bool) {
			return dst[i], at(i + 1), true
		}}
	}
	return at(0)
}

// Iterate returns the unbounded sequence seed, next(seed), next(next(seed)),
// and so on. next runs once per realized element, at the moment that element
// is first needed:
//
//	powers := lazy.Iterate(1, func(n int) int { return n * 2 })
//	powers.Take(5).Force() // [1 2 4 8 16]
func Iterate[T any](seed T, next func(T) T) *Seq[T] {
	return iterateThunk(func() T { return seed }, next)
}

func iterateThunk[T any](seed func() T, next func(T) T) *Seq[T] {
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		v := seed()
		return v, iterateThunk(func() T { return next(v) }, next), true
	}}
}

// Unfold returns the sequence produced by repeatedly running gen against an
// evolving state: each step emits one element and the state for the next
// step, and ok=false ends the sequence. gen is not called until the first
// element is needed.
//
//	fib := lazy.Unfold([2]int{0, 1}, func(s [2]int) (int, [2]int, bool) {
//	    return s[0], [2]int{s[1], s[0] + s[1]}, true
//	})
func Unfold[S, T any](state S, gen func(S) (elem T, next S, ok bool)) *Seq[T] {
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		elem, next, ok := gen(state)
		if !ok {
			var zero T
			return zero, nil, false
		}
		return elem, Unfold(next, gen), true
	}}
}

// Repeat returns the unbounded sequence v, v, v, ...
func Repeat[T any](v T) *Seq[T] {
	return Iterate(v, func(x T) T { return x })
}

// FromIterable captures one cursor from src and exposes it as a lazy
// sequence. Memoization guarantees each element is pulled from the cursor
// exactly once, no matter how many traversals or shared references read the
// sequence afterwards. No element is pulled before it is first needed.
func FromIterable[T any](src iterate.Iterable[T]) *Seq[T] {
	return Defer(func() *Seq[T] { return FromIterator(src.Iterator()) })
}

// FromIterator exposes an existing cursor as a lazy sequence; see
// [FromIterable]. The cursor must not be advanced by anyone else afterwards.
//
//	lines := lazy.FromIterator(iterate.Lines(r))
func FromIterator[T any](it iterate.Iterator[T]) *Seq[T] {
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		if !it.HasNext() {
			var zero T
			return zero, nil, false
		}
		return it.Next(), FromIterator(it), true
	}}
}
