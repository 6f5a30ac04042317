package containers_test

import (
	"testing"

	"github.com/hasbyte1/go-collections/containers"
	"github.com/hasbyte1/go-collections/iterate"
)

func TestLinkedMapInsertionOrder(t *testing.T) {
	m := containers.NewLinkedMap[string, int]()
	m.Put("charlie", 3)
	m.Put("alpha", 1)
	m.Put("bravo", 2)
	assertSlice(t, m.Keys(), []string{"charlie", "alpha", "bravo"})
	assertSlice(t, m.Values(), []int{3, 1, 2})
}

func TestLinkedMapRePutKeepsPosition(t *testing.T) {
	m := containers.NewLinkedMap[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("a", 10) // stays first
	assertSlice(t, m.Keys(), []string{"a", "b"})
	if v, _ := m.Get("a"); v != 10 {
		t.Fatal("re-put should replace the value")
	}
}

func TestLinkedMapOldestNewest(t *testing.T) {
	m := containers.NewLinkedMap[string, int]()
	if _, ok := m.Oldest(); ok {
		t.Fatal("Oldest on empty should report false")
	}
	m.Put("first", 1)
	m.Put("second", 2)
	if p, _ := m.Oldest(); p.First != "first" {
		t.Fatalf("Oldest = %v; want key first", p)
	}
	if p, _ := m.Newest(); p.First != "second" {
		t.Fatalf("Newest = %v; want key second", p)
	}
}

func TestLinkedMapDelete(t *testing.T) {
	m := containers.NewLinkedMap[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	m.Put("c", 3)
	if !m.Delete("b") || m.Delete("b") {
		t.Fatal("Delete presence reporting failed")
	}
	assertSlice(t, m.Keys(), []string{"a", "c"})
}

func TestLinkedMapClear(t *testing.T) {
	m := containers.NewLinkedMap[string, int]()
	m.Put("a", 1)
	m.Clear()
	if m.IsNotEmpty() {
		t.Fatal("Clear should empty the map")
	}
	m.Put("b", 2)
	assertSlice(t, m.Keys(), []string{"b"})
}

func TestLinkedMapIterator(t *testing.T) {
	m := containers.NewLinkedMap[string, int]()
	m.Put("x", 10)
	m.Put("y", 20)
	got := iterate.Collect(m.Iterator())
	assertSlice(t, got, []iterate.Pair[string, int]{
		{First: "x", Second: 10},
		{First: "y", Second: 20},
	})
}

func TestLinkedMapString(t *testing.T) {
	m := containers.NewLinkedMap[string, int]()
	m.Put("z", 26)
	m.Put("a", 1)
	if s := m.String(); s != "{z:26 a:1}" {
		t.Fatalf("String() = %q; want {z:26 a:1}", s)
	}
}
