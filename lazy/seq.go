package lazy

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hasbyte1/go-collections/iterate"
)

// Seq is a lazily computed, memoizing sequence of T. See the package
// documentation for the realization, sharing and failure contracts.
//
// The zero value of Seq is not usable; build sequences with the package
// constructors ([Empty], [Cons], [Defer], [From], [Iterate], [Unfold],
// [Repeat], [FromIterable]) and derive new ones with the methods, all of
// which leave the receiver untouched.
type Seq[T any] struct {
	mu       sync.Mutex
	realized bool
	expand   func() (T, *Seq[T], bool)
	head     T
	tail     *Seq[T]
	ok       bool
}

// force realizes this node if it is still unrealized. The mutex serializes
// concurrent first access; a panic in expand unlocks via the defer and
// leaves the node unrealized, so the caller sees the panic and a later
// access re-runs the computation.
func (s *Seq[T]) force() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.realized {
		return
	}
	head, tail, ok := s.expand()
	s.head, s.tail, s.ok = head, tail, ok
	s.realized = true
	s.expand = nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Node constructors
// ─────────────────────────────────────────────────────────────────────────────

// Empty returns the sequence with no elements. Checking it costs nothing:
// the node is born realized.
func Empty[T any]() *Seq[T] {
	return &Seq[T]{realized: true}
}

// Cons returns a sequence starting with head, followed by the sequence tail
// produces. head is given eagerly, so reading it costs nothing and forces
// nothing; tail is not called until the node after head is first inspected —
// asking for the Tail hands out that node without running it. A nil tail,
// or a tail that returns nil, means the sequence ends after head.
func Cons[T any](head T, tail func() *Seq[T]) *Seq[T] {
	next := Empty[T]()
	if tail != nil {
		next = Defer(func() *Seq[T] {
			if inner := tail(); inner != nil {
				return inner
			}
			return Empty[T]()
		})
	}
	return &Seq[T]{realized: true, head: head, tail: next, ok: true}
}

// Defer returns a sequence that stands for whatever fn produces, without
// calling fn until the sequence is first inspected. Use it to delay even
// the decision of whether a sequence is empty:
//
//	s := lazy.Defer(func() *lazy.Seq[string] {
//	    return lazy.FromIterator(iterate.Lines(openLog()))
//	})
func Defer[T any](fn func() *Seq[T]) *Seq[T] {
	return &Seq[T]{expand: func() (T, *Seq[T], bool) {
		inner := fn()
		head, ok := inner.Head()
		if !ok {
			var zero T
			return zero, nil, false
		}
		tail, _ := inner.Tail()
		return head, tail, true
	}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Node access
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether the sequence has no elements, realizing this node
// if needed (and only this node; the tail stays untouched).
func (s *Seq[T]) IsEmpty() bool {
	s.force()
	return !s.ok
}

// Head returns the first element together with a presence flag, realizing
// this node if needed. Returns the zero value and false on the empty
// sequence.
func (s *Seq[T]) Head() (T, bool) {
	s.force()
	if !s.ok {
		var zero T
		return zero, false
	}
	return s.head, true
}

// HeadOrFail returns the first element, or [ErrEmptySeq].
func (s *Seq[T]) HeadOrFail() (T, error) {
	head, ok := s.Head()
	if !ok {
		return head, ErrEmptySeq
	}
	return head, nil
}

// Tail returns the sequence after the first element together with a presence
// flag, realizing this node if needed. Returns nil and false on the empty
// sequence. The tail itself is not realized.
func (s *Seq[T]) Tail() (*Seq[T], bool) {
	s.force()
	if !s.ok {
		return nil, false
	}
	return s.tail, true
}

// TailOrFail returns the sequence after the first element, or [ErrEmptySeq].
func (s *Seq[T]) TailOrFail() (*Seq[T], error) {
	tail, ok := s.Tail()
	if !ok {
		return nil, ErrEmptySeq
	}
	return tail, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Iterator returns a cursor over the sequence. The cursor realizes nodes as
// it advances; a second cursor over the same Seq re-reads the cache instead
// of recomputing.
func (s *Seq[T]) Iterator() iterate.Iterator[T] {
	return &seqIterator[T]{node: s}
}

// Elements returns the sequence as an interface-typed traversal capability,
// for passing to the aggregation functions in the iterate package.
func (s *Seq[T]) Elements() iterate.Iterable[T] {
	return iterate.IterableFunc[T](s.Iterator)
}

type seqIterator[T any] struct {
	node *Seq[T]
}

func (it *seqIterator[T]) HasNext() bool { return !it.node.IsEmpty() }

func (it *seqIterator[T]) Next() T {
	head, ok := it.node.Head()
	if !ok {
		panic(iterate.ErrExhausted)
	}
	it.node, _ = it.node.Tail()
	return head
}

// String renders the realized prefix of the sequence and marks everything
// not yet computed with "?". Printing never realizes a node, so String is
// safe on unbounded sequences. It implements [fmt.Stringer].
func (s *Seq[T]) String() string {
	var parts []string
	for node := s; ; {
		node.mu.Lock()
		realized, ok, head, tail := node.realized, node.ok, node.head, node.tail
		node.mu.Unlock()
		if !realized {
			parts = append(parts, "?")
			break
		}
		if !ok {
			break
		}
		parts = append(parts, fmt.Sprintf("%v", head))
		node = tail
	}
	return "[" + strings.Join(parts, " ") + "]"
}
