package iterate

import "fmt"

// Pair holds two values of possibly different types.
// It is the element type produced by the zip family and by key/value
// container traversal.
//
// Portability note: in Python this maps to a 2-tuple; in TypeScript to
// [A, B]; in Rust to (A, B).
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf builds a Pair from its two components.
func PairOf[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// String returns a human-readable representation: "(first, second)".
func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}
