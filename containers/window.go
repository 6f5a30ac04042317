package containers

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-collections/iterate"
)

// Window is a mutable view over a contiguous range of a [List]. It owns no
// storage: reads and writes go straight through to the backing list, so an
// update made through either side is immediately visible through the other.
//
//	l := containers.NewList(1, 2, 3, 4, 5)
//	w, _ := l.Window(1, 3) // positions 1, 2, 3
//	w.Fill(0)              // l is now [1 0 0 0 5]
//
// A Window denotes positions, not elements: after structural edits to the
// list (Insert, RemoveAt, Prepend) the window still covers the same index
// range, which now holds different elements. If the list shrinks below the
// window's range, accesses to the vanished positions fail with
// [ErrIndexOutOfRange].
//
// Window is the aliasing counterpart of the pipeline views in the views
// package, which never alias and never write through.
type Window[T any] struct {
	base   *List[T]
	offset int
	length int
}

// Count returns the number of positions the window covers.
func (w *Window[T]) Count() int { return w.length }

// IsEmpty reports whether the window covers no positions.
func (w *Window[T]) IsEmpty() bool { return w.length == 0 }

// pos translates a window index to a base-list index, reporting whether the
// position currently exists in the backing list.
func (w *Window[T]) pos(index int) (int, bool) {
	if index < 0 || index >= w.length {
		return 0, false
	}
	p := w.offset + index
	if p >= len(w.base.items) {
		return 0, false
	}
	return p, true
}

// Get returns the item at the window-relative index together with a presence
// flag. Returns the zero value and false when index is outside the window or
// the backing list has shrunk below it.
func (w *Window[T]) Get(index int) (T, bool) {
	var zero T
	p, ok := w.pos(index)
	if !ok {
		return zero, false
	}
	return w.base.items[p], true
}

// Set writes item at the window-relative index, through to the backing list.
// Returns [ErrIndexOutOfRange] when index is outside the window or the
// backing list has shrunk below it.
func (w *Window[T]) Set(index int, item T) error {
	p, ok := w.pos(index)
	if !ok {
		return ErrIndexOutOfRange
	}
	w.base.items[p] = item
	return nil
}

// Fill writes item at every position of the window.
// Positions the backing list has shrunk away are skipped.
func (w *Window[T]) Fill(item T) {
	for i := 0; i < w.length; i++ {
		if p, ok := w.pos(i); ok {
			w.base.items[p] = item
		}
	}
}

// Transform replaces every item in the window with fn(item), in place.
func (w *Window[T]) Transform(fn func(T) T) {
	for i := 0; i < w.length; i++ {
		if p, ok := w.pos(i); ok {
			w.base.items[p] = fn(w.base.items[p])
		}
	}
}

// ToSlice returns a detached copy of the window's current contents.
func (w *Window[T]) ToSlice() []T {
	out := make([]T, 0, w.length)
	for i := 0; i < w.length; i++ {
		if p, ok := w.pos(i); ok {
			out = append(out, w.base.items[p])
		}
	}
	return out
}

// Detach returns a new independent [List] with a copy of the window's
// current contents. Later changes to either side do not affect the other.
func (w *Window[T]) Detach() *List[T] {
	return &List[T]{items: w.ToSlice()}
}

// Each calls fn(item, index) for every current position, with window-relative
// indexes.
func (w *Window[T]) Each(fn func(T, int)) {
	for i := 0; i < w.length; i++ {
		if p, ok := w.pos(i); ok {
			fn(w.base.items[p], i)
		}
	}
}

// Iterator returns a cursor over the window's positions in order. The cursor
// reads through to the backing list as it advances, so writes made through
// the list or the window during traversal are observed.
func (w *Window[T]) Iterator() iterate.Iterator[T] {
	return &windowIterator[T]{w: w}
}

// Elements returns the window as an interface-typed traversal capability.
func (w *Window[T]) Elements() iterate.Iterable[T] {
	return iterate.IterableFunc[T](w.Iterator)
}

// String returns a JSON representation of the window's current contents.
func (w *Window[T]) String() string {
	b, err := json.Marshal(w.ToSlice())
	if err != nil {
		return fmt.Sprintf("%v", w.ToSlice())
	}
	return string(b)
}

type windowIterator[T any] struct {
	w   *Window[T]
	pos int
}

func (it *windowIterator[T]) HasNext() bool {
	_, ok := it.w.pos(it.pos)
	return ok
}

func (it *windowIterator[T]) Next() T {
	p, ok := it.w.pos(it.pos)
	if !ok {
		panic(iterate.ErrExhausted)
	}
	it.pos++
	return it.w.base.items[p]
}
