package containers

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-collections/iterate"
)

// LinkedList is a generic, ordered container backed by singly linked nodes.
// Append, Prepend and RemoveFirst are O(1); positional access is not offered
// at all, which is the point: reach for [List] when indexes matter and for
// LinkedList when cheap growth at both ends does.
//
// Like the other containers it is mutable and unsynchronized.
type LinkedList[T any] struct {
	head   *llnode[T]
	tail   *llnode[T]
	length int
}

type llnode[T any] struct {
	value T
	next  *llnode[T]
}

// NewLinkedList creates a LinkedList holding the given items in order.
func NewLinkedList[T any](items ...T) *LinkedList[T] {
	l := &LinkedList[T]{}
	l.Append(items...)
	return l
}

// Count returns the number of items in the list.
func (l *LinkedList[T]) Count() int { return l.length }

// IsEmpty reports whether the list contains no items.
func (l *LinkedList[T]) IsEmpty() bool { return l.length == 0 }

// IsNotEmpty reports whether the list has at least one item.
func (l *LinkedList[T]) IsNotEmpty() bool { return l.length > 0 }

// Add appends a single item. It is the method through which [Into] fills a
// linked list.
func (l *LinkedList[T]) Add(item T) {
	n := &llnode[T]{value: item}
	if l.tail == nil {
		l.head, l.tail = n, n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.length++
}

// Append appends items in order.
func (l *LinkedList[T]) Append(items ...T) {
	for _, item := range items {
		l.Add(item)
	}
}

// Prepend inserts items at the front, preserving their given order:
// Prepend(1, 2) on [3] yields [1 2 3].
func (l *LinkedList[T]) Prepend(items ...T) {
	for i := len(items) - 1; i >= 0; i-- {
		n := &llnode[T]{value: items[i], next: l.head}
		l.head = n
		if l.tail == nil {
			l.tail = n
		}
		l.length++
	}
}

// RemoveFirst removes and returns the first item.
// Returns the zero value and false when the list is empty.
func (l *LinkedList[T]) RemoveFirst() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	n := l.head
	l.head = n.next
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return n.value, true
}

// First returns the first item.
// Returns the zero value and false when the list is empty.
func (l *LinkedList[T]) First() (T, bool) {
	var zero T
	if l.head == nil {
		return zero, false
	}
	return l.head.value, true
}

// Last returns the last item.
// Returns the zero value and false when the list is empty.
func (l *LinkedList[T]) Last() (T, bool) {
	var zero T
	if l.tail == nil {
		return zero, false
	}
	return l.tail.value, true
}

// Clear removes all items.
func (l *LinkedList[T]) Clear() {
	l.head, l.tail, l.length = nil, nil, 0
}

// Each calls fn(item, index) for every item in order.
func (l *LinkedList[T]) Each(fn func(T, int)) {
	i := 0
	for n := l.head; n != nil; n = n.next {
		fn(n.value, i)
		i++
	}
}

// ToSlice returns the items as a new slice, in order.
func (l *LinkedList[T]) ToSlice() []T {
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Iterator returns a cursor over the items in order. The cursor follows the
// live links; mutating the list during traversal gives undefined results.
func (l *LinkedList[T]) Iterator() iterate.Iterator[T] {
	return &linkedIterator[T]{node: l.head}
}

// Elements returns the list as an interface-typed traversal capability.
func (l *LinkedList[T]) Elements() iterate.Iterable[T] {
	return iterate.IterableFunc[T](l.Iterator)
}

// String returns a JSON representation of the list.
// It implements [fmt.Stringer].
func (l *LinkedList[T]) String() string {
	b, err := json.Marshal(l.ToSlice())
	if err != nil {
		return fmt.Sprintf("%v", l.ToSlice())
	}
	return string(b)
}

type linkedIterator[T any] struct {
	node *llnode[T]
}

func (it *linkedIterator[T]) HasNext() bool { return it.node != nil }

func (it *linkedIterator[T]) Next() T {
	if it.node == nil {
		panic(iterate.ErrExhausted)
	}
	v := it.node.value
	it.node = it.node.next
	return v
}
