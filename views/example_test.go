package views_test

import (
	"fmt"

	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/lazy"
	"github.com/hasbyte1/go-collections/views"
)

func ExampleOver() {
	squares := views.Over(1, 2, 3, 4).
		Map(func(n int) int { return n * n }).
		Filter(func(n int) bool { return n%2 == 0 })
	fmt.Println(squares.Force().All())
	// Output: [4 16]
}

func ExampleOf_lazySource() {
	naturals := lazy.Iterate(0, func(n int) int { return n + 1 })
	v := views.Of[int](naturals.Elements()).
		Map(func(n int) int { return n * 10 }).
		Take(4)
	fmt.Println(v.Force().All())
	// Output: [0 10 20 30]
}

func ExampleView_Tap() {
	views.Over("a", "b").
		Tap(func(s string) { fmt.Println("saw", s) }).
		Each(func(string) {})
	// Output:
	// saw a
	// saw b
}

func ExampleFlatMap() {
	words := views.FlatMap(views.Over("hi there", "lazy views"),
		func(s string) []string {
			var out []string
			word := ""
			for _, r := range s + " " {
				if r == ' ' {
					out = append(out, word)
					word = ""
					continue
				}
				word += string(r)
			}
			return out
		})
	fmt.Println(words.Count())
	// Output: 4
}

func ExampleView_Force_liveSource() {
	l := containers.NewList(1, 2, 3)
	v := views.Of[int](l.Elements()).Map(func(n int) int { return -n })

	fmt.Println(v.Force().All())
	l.Add(4)
	fmt.Println(v.Force().All()) // re-runs over the list's current contents
	// Output:
	// [-1 -2 -3]
	// [-1 -2 -3 -4]
}
