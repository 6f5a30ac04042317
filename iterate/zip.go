package iterate

// Zip pairs the elements of a and b positionally. The result stops at the
// shorter input: its length is min(len(a), len(b)), and no element of the
// longer input beyond that point is consumed.
//
//	iterate.Zip(iterate.Over("a", "b", "c"), iterate.Range(0, 2))
//	// → (a, 0), (b, 1)
//
// The result is deferred and restartable: each traversal pulls one fresh
// cursor from each input and advances them in lockstep, so zipping two
// unbounded sources is fine as long as the consumer is bounded.
func Zip[A, B any](a Iterable[A], b Iterable[B]) Iterable[Pair[A, B]] {
	return IterableFunc[Pair[A, B]](func() Iterator[Pair[A, B]] {
		return &zipIterator[A, B]{a: a.Iterator(), b: b.Iterator()}
	})
}

type zipIterator[A, B any] struct {
	a Iterator[A]
	b Iterator[B]
}

func (it *zipIterator[A, B]) HasNext() bool {
	return it.a.HasNext() && it.b.HasNext()
}

func (it *zipIterator[A, B]) Next() Pair[A, B] {
	if !it.HasNext() {
		panic(ErrExhausted)
	}
	return Pair[A, B]{First: it.a.Next(), Second: it.b.Next()}
}

// ZipAll pairs the elements of a and b positionally, running to the longer
// input: its length is max(len(a), len(b)). Once one side is exhausted its
// default (defA or defB) fills the remaining pairs.
//
//	iterate.ZipAll(iterate.Over(1, 2, 3), iterate.Over("x"), 0, "?")
//	// → (1, x), (2, ?), (3, ?)
func ZipAll[A, B any](a Iterable[A], b Iterable[B], defA A, defB B) Iterable[Pair[A, B]] {
	return IterableFunc[Pair[A, B]](func() Iterator[Pair[A, B]] {
		return &zipAllIterator[A, B]{a: a.Iterator(), b: b.Iterator(), defA: defA, defB: defB}
	})
}

type zipAllIterator[A, B any] struct {
	a    Iterator[A]
	b    Iterator[B]
	defA A
	defB B
}

func (it *zipAllIterator[A, B]) HasNext() bool {
	return it.a.HasNext() || it.b.HasNext()
}

func (it *zipAllIterator[A, B]) Next() Pair[A, B] {
	if !it.HasNext() {
		panic(ErrExhausted)
	}
	p := Pair[A, B]{First: it.defA, Second: it.defB}
	if it.a.HasNext() {
		p.First = it.a.Next()
	}
	if it.b.HasNext() {
		p.Second = it.b.Next()
	}
	return p
}

// ZipWithIndex pairs each element of src with its zero-based position.
// The result has exactly the length of src.
//
//	iterate.ZipWithIndex(iterate.Over("a", "b", "c"))
//	// → (a, 0), (b, 1), (c, 2)
func ZipWithIndex[T any](src Iterable[T]) Iterable[Pair[T, int]] {
	return IterableFunc[Pair[T, int]](func() Iterator[Pair[T, int]] {
		return &zipIndexIterator[T]{src: src.Iterator()}
	})
}

type zipIndexIterator[T any] struct {
	src Iterator[T]
	pos int
}

func (it *zipIndexIterator[T]) HasNext() bool { return it.src.HasNext() }

func (it *zipIndexIterator[T]) Next() Pair[T, int] {
	p := Pair[T, int]{First: it.src.Next(), Second: it.pos}
	it.pos++
	return p
}
