package containers_test

import (
	"testing"

	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
)

// ─────────────────────────────────────────────────────────────────────────────
// SortedMap
// ─────────────────────────────────────────────────────────────────────────────

func TestSortedMapKeyOrder(t *testing.T) {
	m := containers.NewSortedMap[string, int]()
	m.Put("cherry", 3)
	m.Put("apple", 1)
	m.Put("banana", 2)
	assertSlice(t, m.Keys(), []string{"apple", "banana", "cherry"})
	assertSlice(t, m.Values(), []int{1, 2, 3})
}

func TestSortedMapPutGetDelete(t *testing.T) {
	m := containers.NewSortedMap[int, string]()
	m.Put(2, "two")
	m.Put(1, "one")
	m.Put(2, "TWO") // replace
	if m.Count() != 2 {
		t.Fatalf("Count = %d; want 2", m.Count())
	}
	if v, ok := m.Get(2); !ok || v != "TWO" {
		t.Fatalf("Get(2) = %v, %v; want TWO, true", v, ok)
	}
	if !m.Delete(1) || m.Delete(1) {
		t.Fatal("Delete presence reporting failed")
	}
	if m.Has(1) || !m.Has(2) {
		t.Fatal("Has failed after delete")
	}
}

func TestSortedMapFirstLast(t *testing.T) {
	m := containers.NewSortedMap[int, string]()
	if _, ok := m.First(); ok {
		t.Fatal("First on empty should report false")
	}
	m.Put(5, "five")
	m.Put(1, "one")
	m.Put(9, "nine")
	if p, _ := m.First(); p.First != 1 || p.Second != "one" {
		t.Fatalf("First = %v; want (1, one)", p)
	}
	if p, _ := m.Last(); p.First != 9 || p.Second != "nine" {
		t.Fatalf("Last = %v; want (9, nine)", p)
	}
}

func TestSortedMapBy(t *testing.T) {
	// descending order comparator
	m := containers.NewSortedMapBy[int, string](func(a, b int) int { return b - a })
	m.Put(1, "one")
	m.Put(3, "three")
	m.Put(2, "two")
	assertSlice(t, m.Keys(), []int{3, 2, 1})
	if p, _ := m.First(); p.First != 3 {
		t.Fatalf("First under descending order = %v; want key 3", p)
	}
}

func TestSortedMapIterator(t *testing.T) {
	m := containers.NewSortedMap[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	got := iterate.Collect(m.Iterator())
	assertSlice(t, got, []iterate.Pair[string, int]{
		{First: "a", Second: 1},
		{First: "b", Second: 2},
	})
}

func TestSortedMapString(t *testing.T) {
	m := containers.NewSortedMap[string, int]()
	m.Put("b", 2)
	m.Put("a", 1)
	if s := m.String(); s != "{a:1 b:2}" {
		t.Fatalf("String() = %q; want {a:1 b:2}", s)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// SortedSet
// ─────────────────────────────────────────────────────────────────────────────

func TestSortedSetOrder(t *testing.T) {
	s := containers.NewSortedSet(3, 1, 4, 1, 5, 9, 2, 6)
	assertSlice(t, s.ToSlice(), []int{1, 2, 3, 4, 5, 6, 9})
	if s.Count() != 7 {
		t.Fatalf("Count = %d; want 7 (duplicates collapsed)", s.Count())
	}
}

func TestSortedSetMinMax(t *testing.T) {
	s := containers.NewSortedSet(3, 1, 4)
	if v, ok := s.Min(); !ok || v != 1 {
		t.Fatalf("Min = %v, %v; want 1, true", v, ok)
	}
	if v, ok := s.Max(); !ok || v != 4 {
		t.Fatalf("Max = %v, %v; want 4, true", v, ok)
	}
	empty := containers.NewSortedSet[int]()
	if _, ok := empty.Min(); ok {
		t.Fatal("Min on empty should report false")
	}
}

func TestSortedSetAddRemove(t *testing.T) {
	s := containers.NewSortedSet[int]()
	s.Add(2)
	s.Add(2)
	s.Add(1)
	assertSlice(t, s.ToSlice(), []int{1, 2})
	if !s.Remove(1) || s.Remove(1) {
		t.Fatal("Remove presence reporting failed")
	}
	if s.Contains(1) || !s.Contains(2) {
		t.Fatal("Contains failed after remove")
	}
}

func TestSortedSetAlgebraKeepsOrder(t *testing.T) {
	a := containers.NewSortedSet(3, 1, 2)
	b := containers.NewSortedSet(2, 4)
	assertSlice(t, a.Union(b).ToSlice(), []int{1, 2, 3, 4})
	assertSlice(t, a.Intersect(b).ToSlice(), []int{2})
	assertSlice(t, a.Diff(b).ToSlice(), []int{1, 3})
}

func TestSortedSetBy(t *testing.T) {
	byLen := containers.NewSortedSetBy[string](func(a, b string) int { return len(a) - len(b) })
	byLen.Add("ccc")
	byLen.Add("a")
	byLen.Add("bb")
	assertSlice(t, byLen.ToSlice(), []string{"a", "bb", "ccc"})
}

func TestSortedSetElements(t *testing.T) {
	s := containers.NewSortedSet(5, 1, 3)
	assertSlice(t, iterate.Collect(s.Iterator()), []int{1, 3, 5})
	if got := iterate.Sum(s.Elements()); got != 9 {
		t.Fatalf("Sum over sorted set = %d; want 9", got)
	}
}
