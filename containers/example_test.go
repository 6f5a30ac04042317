package containers_test

import (
	"fmt"

	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
)

func ExampleNewList() {
	l := containers.NewList(1, 2, 3, 4, 5)
	fmt.Println(l.Count(), iterate.Sum(l.Elements()))
	// Output: 5 15
}

func ExampleList_Filter() {
	result := containers.NewList(1, 2, 3, 4, 5, 6).
		Filter(func(n, _ int) bool { return n%2 == 0 }).
		All()
	fmt.Println(result)
	// Output: [2 4 6]
}

func ExampleList_Window() {
	l := containers.NewList(1, 2, 3, 4, 5)
	w, _ := l.Window(1, 3)
	w.Fill(0)
	fmt.Println(l)
	// Output: [1,0,0,0,5]
}

func ExampleWindow_Transform() {
	l := containers.NewList(1, 2, 3, 4)
	w, _ := l.Window(2, 2)
	w.Transform(func(n int) int { return n * 10 })
	fmt.Println(l)
	// Output: [1,2,30,40]
}

func ExampleSortedMap() {
	m := containers.NewSortedMap[string, int]()
	m.Put("cherry", 3)
	m.Put("apple", 1)
	m.Put("banana", 2)
	m.Each(func(k string, v int) { fmt.Printf("%s=%d\n", k, v) })
	// Output:
	// apple=1
	// banana=2
	// cherry=3
}

func ExampleSortedSet() {
	s := containers.NewSortedSet(3, 1, 4, 1, 5)
	lo, _ := s.Min()
	hi, _ := s.Max()
	fmt.Println(s, lo, hi)
	// Output: {1 3 4 5} 1 5
}

func ExampleLinkedMap() {
	m := containers.NewLinkedMap[string, int]()
	m.Put("first", 1)
	m.Put("second", 2)
	m.Put("first", 10) // keeps its position
	fmt.Println(m)
	// Output: {first:10 second:2}
}

func ExampleInto() {
	sorted := containers.Into(
		containers.NewSortedSet[int](),
		iterate.Over(9, 3, 9, 1),
	)
	fmt.Println(sorted)
	// Output: {1 3 9}
}

func ExampleToMap() {
	ages := containers.ToMap(iterate.Zip(
		iterate.Over("ada", "grace"),
		iterate.Over(36, 45),
	))
	v, _ := ages.Get("grace")
	fmt.Println(v)
	// Output: 45
}
