package iterate

// This file contains the fold family: strict folds and reductions plus the
// deferred ScanLeft. All of them consume a fresh cursor from their source,
// so calling one never disturbs other traversals of the same Iterable.

// FoldLeft folds src into a single value of type A, associating strictly to
// the left: op(op(op(init, x0), x1), x2) and so on.
//
//	iterate.FoldLeft(iterate.Over(1, 7, 2, 9), 0,
//	    func(acc, n int) int { return acc - n }) // → ((((0-1)-7)-2)-9) = -19
//
// FoldLeft runs in constant space and visits each element exactly once, but
// it traverses the whole source: on an unbounded source it does not return.
func FoldLeft[T, A any](src Iterable[T], init A, op func(acc A, item T) A) A {
	acc := init
	for it := src.Iterator(); it.HasNext(); {
		acc = op(acc, it.Next())
	}
	return acc
}

// FoldRight folds src into a single value of type A, associating strictly to
// the right: op(x0, op(x1, op(x2, init))) and so on.
//
//	iterate.FoldRight(iterate.Over(1, 7, 2, 9), 0,
//	    func(n, acc int) int { return n - acc }) // → (1-(7-(2-(9-0)))) = -13
//
// The source is materialized first so the fold can start from the far end;
// FoldRight is therefore unsuitable for unbounded sources and costs O(n)
// space. Prefer [FoldLeft] when the operator is associative.
func FoldRight[T, A any](src Iterable[T], init A, op func(item T, acc A) A) A {
	items := Collect(src.Iterator())
	acc := init
	for i := len(items) - 1; i >= 0; i-- {
		acc = op(items[i], acc)
	}
	return acc
}

// ReduceLeft combines src left-to-right using its first element as the seed:
// op(op(x0, x1), x2) and so on. It returns [ErrEmptyCollection] when the
// source yields no elements.
//
//	iterate.ReduceLeft(iterate.Over(1, 7, 2, 9),
//	    func(a, b int) int { return a - b }) // → ((1-7)-2)-9 = -17
func ReduceLeft[T any](src Iterable[T], op func(a, b T) T) (T, error) {
	it := src.Iterator()
	if !it.HasNext() {
		var zero T
		return zero, ErrEmptyCollection
	}
	acc := it.Next()
	for it.HasNext() {
		acc = op(acc, it.Next())
	}
	return acc, nil
}

// ReduceRight combines src right-to-left using its last element as the seed:
// op(x0, op(x1, x2)) and so on. Like [FoldRight] it materializes the source
// first. It returns [ErrEmptyCollection] when the source yields no elements.
func ReduceRight[T any](src Iterable[T], op func(a, b T) T) (T, error) {
	items := Collect(src.Iterator())
	if len(items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	acc := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		acc = op(items[i], acc)
	}
	return acc, nil
}

// ScanLeft returns the running partial folds of src: first init, then the
// fold of each successive prefix. Its output is always exactly one element
// longer than its input.
//
//	iterate.ScanLeft(iterate.Over(1, 7, 2, 9), 0,
//	    func(acc, n int) int { return acc + n }) // → 0, 1, 8, 10, 19
//
// The result is deferred: no element of src is consumed until the returned
// Iterable is traversed, each traversal pulls a fresh cursor from src, and
// elements are folded one at a time as the consumer advances. ScanLeft is
// therefore safe on unbounded sources as long as the consumer is bounded.
func ScanLeft[T, A any](src Iterable[T], init A, op func(acc A, item T) A) Iterable[A] {
	return IterableFunc[A](func() Iterator[A] {
		return &scanIterator[T, A]{src: src.Iterator(), acc: init, op: op}
	})
}

// scanIterator yields the seed first, then one partial fold per source
// element, pulling from the source only as the consumer advances.
type scanIterator[T, A any] struct {
	src    Iterator[T]
	acc    A
	op     func(A, T) A
	seeded bool
}

func (it *scanIterator[T, A]) HasNext() bool {
	return !it.seeded || it.src.HasNext()
}

func (it *scanIterator[T, A]) Next() A {
	if !it.seeded {
		it.seeded = true
		return it.acc
	}
	if !it.src.HasNext() {
		panic(ErrExhausted)
	}
	it.acc = it.op(it.acc, it.src.Next())
	return it.acc
}
