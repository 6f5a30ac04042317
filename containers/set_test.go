package containers_test

import (
	"sort"
	"testing"

	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
)

func sortedOf(s *containers.Set[int]) []int {
	out := s.ToSlice()
	sort.Ints(out)
	return out
}

func TestSetCollapsesDuplicates(t *testing.T) {
	s := containers.NewSet(1, 2, 2, 3, 1)
	if s.Count() != 3 {
		t.Fatalf("Count = %d; want 3", s.Count())
	}
	assertSlice(t, sortedOf(s), []int{1, 2, 3})
}

func TestSetAddRemoveContains(t *testing.T) {
	s := containers.NewSet[string]()
	s.Add("a")
	s.Add("a")
	if s.Count() != 1 {
		t.Fatal("re-adding must not grow the set")
	}
	if !s.Contains("a") || s.Contains("b") {
		t.Fatal("Contains failed")
	}
	if !s.Remove("a") {
		t.Fatal("Remove of present item should report true")
	}
	if s.Remove("a") {
		t.Fatal("Remove of absent item should report false")
	}
	if s.IsNotEmpty() {
		t.Fatal("set should be empty again")
	}
}

func TestSetAlgebra(t *testing.T) {
	a := containers.NewSet(1, 2, 3)
	b := containers.NewSet(2, 3, 4)
	assertSlice(t, sortedOf(a.Union(b)), []int{1, 2, 3, 4})
	assertSlice(t, sortedOf(a.Intersect(b)), []int{2, 3})
	assertSlice(t, sortedOf(a.Diff(b)), []int{1})
	assertSlice(t, sortedOf(a), []int{1, 2, 3}) // operands untouched
}

func TestSetIteratorSnapshot(t *testing.T) {
	s := containers.NewSet(1, 2, 3)
	it := s.Iterator()
	s.Add(4) // not observed by the existing cursor
	if got := iterate.Count(it); got != 3 {
		t.Fatalf("snapshot cursor counted %d; want 3", got)
	}
	if got := iterate.Count(s.Iterator()); got != 4 {
		t.Fatalf("fresh cursor counted %d; want 4", got)
	}
}

func TestSetClear(t *testing.T) {
	s := containers.NewSet(1, 2)
	s.Clear()
	if !s.IsEmpty() {
		t.Fatal("Clear should empty the set")
	}
	s.Add(9)
	if s.Count() != 1 {
		t.Fatal("set should be usable after Clear")
	}
}

func TestSetEach(t *testing.T) {
	sum := 0
	containers.NewSet(1, 2, 3).Each(func(n int) { sum += n })
	if sum != 6 {
		t.Fatalf("Each sum = %d; want 6", sum)
	}
}

func TestSetElements(t *testing.T) {
	s := containers.NewSet(4, 5, 6)
	if got := iterate.Sum(s.Elements()); got != 15 {
		t.Fatalf("Sum over set = %d; want 15", got)
	}
}
